package usecase

import (
	"context"
	"log"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/matching"
	"certtrack/internal/domain/skill"
)

type CatalogReloader interface {
	CatalogSource
	Reload(ctx context.Context) (matching.Catalog, error)
}

// CatalogNotifier is told about every successful catalog refresh.
type CatalogNotifier interface {
	NotifyCatalogUpdated(skills, jobs, credentials int)
}

type JobRequirement struct {
	SkillID     string
	SkillName   string
	Importance  job.Importance
	Proficiency job.Proficiency
}

type JobListing struct {
	Job          job.Job
	Requirements []JobRequirement
}

type CredentialListing struct {
	Credential credential.Credential
	Skills     []string
}

type CatalogSummary struct {
	Skills      int
	Jobs        int
	Credentials int
}

type CatalogUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	ListJobs(ctx context.Context) ([]JobListing, error)
	ListCredentials(ctx context.Context) ([]CredentialListing, error)
	RefreshCatalog(ctx context.Context) (CatalogSummary, error)
}

type Catalog struct {
	catalog  CatalogReloader
	notifier CatalogNotifier
	logger   *log.Logger
}

func NewCatalogUsecase(catalog CatalogReloader, notifier CatalogNotifier, logger *log.Logger) *Catalog {
	return &Catalog{catalog: catalog, notifier: notifier, logger: logger}
}

func (u *Catalog) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Skills, nil
}

func (u *Catalog) ListJobs(ctx context.Context) ([]JobListing, error) {
	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := matching.NewSkillIndex(cat.Skills)
	out := make([]JobListing, 0, len(cat.Jobs))
	for _, cj := range cat.Jobs {
		reqs := make([]JobRequirement, 0, len(cj.Requirements))
		for _, r := range cj.Requirements {
			name := r.SkillID
			if s, ok := idx[r.SkillID]; ok {
				name = s.Name
			}
			reqs = append(reqs, JobRequirement{
				SkillID:     r.SkillID,
				SkillName:   name,
				Importance:  r.Importance,
				Proficiency: r.Proficiency,
			})
		}
		out = append(out, JobListing{Job: cj.Job, Requirements: reqs})
	}
	return out, nil
}

func (u *Catalog) ListCredentials(ctx context.Context) ([]CredentialListing, error) {
	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := matching.NewSkillIndex(cat.Skills)
	out := make([]CredentialListing, 0, len(cat.Credentials))
	for _, cc := range cat.Credentials {
		out = append(out, CredentialListing{Credential: cc.Credential, Skills: idx.TaughtSkills(cc)})
	}
	return out, nil
}

func (u *Catalog) RefreshCatalog(ctx context.Context) (CatalogSummary, error) {
	cat, err := u.catalog.Reload(ctx)
	if err != nil {
		return CatalogSummary{}, err
	}

	sum := CatalogSummary{Skills: len(cat.Skills), Jobs: len(cat.Jobs), Credentials: len(cat.Credentials)}
	if u.logger != nil {
		u.logger.Printf("[Catalog] refreshed skills=%d jobs=%d credentials=%d", sum.Skills, sum.Jobs, sum.Credentials)
	}
	if u.notifier != nil {
		u.notifier.NotifyCatalogUpdated(sum.Skills, sum.Jobs, sum.Credentials)
	}
	return sum, nil
}
