package dto

type MatchJobsRequest struct {
	Skills []string `json:"skills" validate:"required,max=200"`
}

type MatchJobRequest struct {
	JobID      string   `json:"jobId" validate:"required,max=128"`
	UserSkills []string `json:"userSkills" validate:"required,max=200"`
	Limit      int      `json:"limit" validate:"gte=0,lte=100"`
}
