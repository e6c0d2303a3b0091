package matching

import (
	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
)

type Gaps struct {
	MatchedSkills []string
	MissingSkills []string
}

// ResolveGaps splits a job's requirements into the skill names the user
// holds and the required skill names they lack, in requirement order.
// Preferred skills the user lacks are not reported.
func (idx SkillIndex) ResolveGaps(userSkills []string, reqs []job.Requirement) Gaps {
	g := Gaps{
		MatchedSkills: make([]string, 0, len(reqs)),
		MissingSkills: make([]string, 0),
	}
	for _, r := range reqs {
		s, ok := idx[r.SkillID]
		if !ok {
			continue
		}
		if HasSkill(userSkills, s) {
			g.MatchedSkills = append(g.MatchedSkills, s.Name)
			continue
		}
		if r.Required() {
			g.MissingSkills = append(g.MissingSkills, s.Name)
		}
	}
	return g
}

// Recommend returns every credential teaching at least one of the missing
// skill names, in catalog order. The result is not ranked or truncated.
func (idx SkillIndex) Recommend(missingSkills []string, creds []CatalogCredential) []credential.Credential {
	out := make([]credential.Credential, 0)
	if len(missingSkills) == 0 {
		return out
	}

	missing := make(map[string]struct{}, len(missingSkills))
	for _, m := range missingSkills {
		missing[m] = struct{}{}
	}

	for _, c := range creds {
		for _, name := range idx.TaughtSkills(c) {
			if _, ok := missing[name]; ok {
				out = append(out, c.Credential)
				break
			}
		}
	}
	return out
}

// TaughtSkills resolves a credential's skill links to skill names, skipping
// links to unknown skills.
func (idx SkillIndex) TaughtSkills(c CatalogCredential) []string {
	names := make([]string, 0, len(c.Links))
	for _, l := range c.Links {
		s, ok := idx[l.SkillID]
		if !ok {
			continue
		}
		names = append(names, s.Name)
	}
	return names
}
