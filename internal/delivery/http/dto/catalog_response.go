package dto

import (
	"certtrack/internal/domain/skill"
	"certtrack/internal/usecase"
)

type SkillResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Synonyms []string `json:"synonyms"`
}

type JobRequirementResponse struct {
	SkillID     string `json:"skillId"`
	SkillName   string `json:"skillName"`
	Importance  string `json:"importance"`
	Proficiency string `json:"proficiency"`
}

type JobListingResponse struct {
	JobResponse
	Requirements []JobRequirementResponse `json:"requirements"`
}

type CredentialListingResponse struct {
	CredentialResponse
	Skills []string `json:"skills"`
}

type CatalogRefreshResponse struct {
	Skills      int `json:"skills"`
	Jobs        int `json:"jobs"`
	Credentials int `json:"credentials"`
}

func NewSkillResponses(skills []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: string(s.Category),
			Synonyms: nonNil(s.Synonyms),
		})
	}
	return out
}

func NewJobListingResponses(items []usecase.JobListing) []JobListingResponse {
	out := make([]JobListingResponse, 0, len(items))
	for _, it := range items {
		reqs := make([]JobRequirementResponse, 0, len(it.Requirements))
		for _, r := range it.Requirements {
			reqs = append(reqs, JobRequirementResponse{
				SkillID:     r.SkillID,
				SkillName:   r.SkillName,
				Importance:  string(r.Importance),
				Proficiency: string(r.Proficiency),
			})
		}
		out = append(out, JobListingResponse{JobResponse: NewJobResponse(it.Job), Requirements: reqs})
	}
	return out
}

func NewCredentialListingResponses(items []usecase.CredentialListing) []CredentialListingResponse {
	out := make([]CredentialListingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CredentialListingResponse{
			CredentialResponse: NewCredentialResponse(it.Credential),
			Skills:             nonNil(it.Skills),
		})
	}
	return out
}

func NewCatalogRefreshResponse(sum usecase.CatalogSummary) CatalogRefreshResponse {
	return CatalogRefreshResponse{Skills: sum.Skills, Jobs: sum.Jobs, Credentials: sum.Credentials}
}
