package usecase

import (
	"context"
	"strings"

	"certtrack/internal/domain/matching"
)

type MatchingUsecase interface {
	MatchJobs(ctx context.Context, skills []string) ([]matching.JobMatch, error)
	MatchJob(ctx context.Context, jobID string, userSkills []string, limit int) (matching.JobDetail, error)
}

type Matching struct {
	catalog             CatalogSource
	engine              *matching.Engine
	recommendationLimit int
}

// NewMatchingUsecase builds the matching use cases. recommendationLimit
// caps credentials per detail when the caller gives no limit; 0 means no
// cap.
func NewMatchingUsecase(catalog CatalogSource, engine *matching.Engine, recommendationLimit int) *Matching {
	return &Matching{catalog: catalog, engine: engine, recommendationLimit: recommendationLimit}
}

func (u *Matching) MatchJobs(ctx context.Context, skills []string) ([]matching.JobMatch, error) {
	if skills == nil {
		return nil, ErrInvalidInput
	}

	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return u.engine.MatchCatalog(skills, cat), nil
}

func (u *Matching) MatchJob(ctx context.Context, jobID string, userSkills []string, limit int) (matching.JobDetail, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" || userSkills == nil || limit < 0 {
		return matching.JobDetail{}, ErrInvalidInput
	}

	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return matching.JobDetail{}, err
	}

	cj, ok := cat.FindJob(jobID)
	if !ok {
		return matching.JobDetail{}, ErrJobNotFound
	}

	d := u.engine.Detail(userSkills, cj, cat)
	if limit == 0 {
		limit = u.recommendationLimit
	}
	d.Recommendations = matching.Truncate(d.Recommendations, limit)
	return d, nil
}
