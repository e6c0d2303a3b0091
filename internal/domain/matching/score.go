package matching

import (
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"
)

const (
	requiredWeight  = 2.0
	preferredWeight = 1.0
	softWeightCap   = 0.3
)

type SkillIndex map[string]skill.Skill

func NewSkillIndex(skills []skill.Skill) SkillIndex {
	idx := make(SkillIndex, len(skills))
	for _, s := range skills {
		idx[s.ID] = s
	}
	return idx
}

// Score computes the weighted fraction of a job's requirements covered by
// userSkills, which must already be normalized.
func Score(userSkills []string, reqs []job.Requirement, allSkills []skill.Skill) float64 {
	return NewSkillIndex(allSkills).Score(userSkills, reqs)
}

func (idx SkillIndex) Score(userSkills []string, reqs []job.Requirement) float64 {
	var total, maxScore float64
	for _, r := range reqs {
		s, ok := idx[r.SkillID]
		if !ok {
			continue
		}

		w := requirementWeight(r, s)
		maxScore += w
		if HasSkill(userSkills, s) {
			total += w
		}
	}

	if maxScore <= 0 {
		return 0
	}
	return total / maxScore
}

func HasSkill(userSkills []string, s skill.Skill) bool {
	for _, us := range userSkills {
		if s.Matches(us) {
			return true
		}
	}
	return false
}

func requirementWeight(r job.Requirement, s skill.Skill) float64 {
	w := preferredWeight
	if r.Required() {
		w = requiredWeight
	}
	if s.Category == skill.CategorySoft && w > softWeightCap {
		w = softWeightCap
	}
	return w
}
