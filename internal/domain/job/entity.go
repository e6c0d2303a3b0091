package job

type Importance string

const (
	ImportanceRequired  Importance = "required"
	ImportancePreferred Importance = "preferred"
)

func (i Importance) Valid() bool {
	return i == ImportanceRequired || i == ImportancePreferred
}

type Proficiency string

const (
	ProficiencyBasic    Proficiency = "basic"
	ProficiencyWorking  Proficiency = "working"
	ProficiencyAdvanced Proficiency = "advanced"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyWorking, ProficiencyAdvanced:
		return true
	default:
		return false
	}
}

type Job struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Seniority       string  `json:"seniority"`
	MedianSalaryUSD float64 `json:"medianSalaryUsd"`
	GrowthOutlook   string  `json:"growthOutlook"`
}

// Requirement links a job to a skill. Proficiency is stored but does not
// influence scoring.
type Requirement struct {
	JobID       string      `json:"jobId"`
	SkillID     string      `json:"skillId"`
	Importance  Importance  `json:"importance"`
	Proficiency Proficiency `json:"proficiency"`
}

func (r Requirement) Required() bool {
	return r.Importance == ImportanceRequired
}
