package matching

import (
	"sort"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"
)

type CatalogJob struct {
	Job          job.Job           `json:"job"`
	Requirements []job.Requirement `json:"requirements"`
}

type CatalogCredential struct {
	Credential credential.Credential  `json:"credential"`
	Links      []credential.SkillLink `json:"links"`
}

// Catalog is a read-only snapshot of the reference tables.
type Catalog struct {
	Skills      []skill.Skill       `json:"skills"`
	Jobs        []CatalogJob        `json:"jobs"`
	Credentials []CatalogCredential `json:"credentials"`
}

func (c Catalog) FindJob(jobID string) (CatalogJob, bool) {
	for _, j := range c.Jobs {
		if j.Job.ID == jobID {
			return j, true
		}
	}
	return CatalogJob{}, false
}

type JobMatch struct {
	Job           job.Job
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	Category      Tier
}

type JobDetail struct {
	Job             job.Job
	Score           float64
	Category        *Tier
	MatchedSkills   []string
	MissingSkills   []string
	Recommendations []credential.Credential
}

type Engine struct {
	thresholds Thresholds
}

func NewEngine(t Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// MatchCatalog normalizes rawSkills, scores every job in the catalog and
// keeps those reaching the next threshold, best first. Ties keep catalog
// order.
func (e *Engine) MatchCatalog(rawSkills []string, cat Catalog) []JobMatch {
	userSkills := Normalize(rawSkills)
	idx := NewSkillIndex(cat.Skills)

	out := make([]JobMatch, 0)
	for _, cj := range cat.Jobs {
		score := idx.Score(userSkills, cj.Requirements)
		tier, ok := e.thresholds.Categorize(score)
		if !ok {
			continue
		}

		g := idx.ResolveGaps(userSkills, cj.Requirements)
		out = append(out, JobMatch{
			Job:           cj.Job,
			Score:         score,
			MatchedSkills: g.MatchedSkills,
			MissingSkills: g.MissingSkills,
			Category:      tier,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Detail resolves a single job against rawSkills. It is returned even when
// the score falls below every tier, in which case Category is nil.
func (e *Engine) Detail(rawSkills []string, cj CatalogJob, cat Catalog) JobDetail {
	userSkills := Normalize(rawSkills)
	idx := NewSkillIndex(cat.Skills)

	score := idx.Score(userSkills, cj.Requirements)
	g := idx.ResolveGaps(userSkills, cj.Requirements)

	d := JobDetail{
		Job:             cj.Job,
		Score:           score,
		MatchedSkills:   g.MatchedSkills,
		MissingSkills:   g.MissingSkills,
		Recommendations: idx.Recommend(g.MissingSkills, cat.Credentials),
	}
	if tier, ok := e.thresholds.Categorize(score); ok {
		d.Category = &tier
	}
	return d
}

// DefaultRecommendationLimit is the number of credentials shown per job
// detail unless configured otherwise.
const DefaultRecommendationLimit = 4

// Truncate caps recommendations at limit; limit <= 0 keeps all of them.
func Truncate(recs []credential.Credential, limit int) []credential.Credential {
	if limit <= 0 || len(recs) <= limit {
		return recs
	}
	return recs[:limit]
}
