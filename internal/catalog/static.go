package catalog

import (
	"context"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/matching"
	"certtrack/internal/domain/skill"
)

// Static serves reference data from an in-memory catalog.
type Static struct {
	cat matching.Catalog
}

func NewStatic(doc Document) *Static {
	return &Static{cat: doc.Catalog()}
}

func (s *Static) GetSkills(ctx context.Context) ([]skill.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]skill.Skill, len(s.cat.Skills))
	copy(out, s.cat.Skills)
	return out, nil
}

func (s *Static) GetJobs(ctx context.Context) ([]job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]job.Job, 0, len(s.cat.Jobs))
	for _, j := range s.cat.Jobs {
		out = append(out, j.Job)
	}
	return out, nil
}

func (s *Static) GetJobSkillRequirements(ctx context.Context, jobID string) ([]job.Requirement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j, ok := s.cat.FindJob(jobID)
	if !ok {
		return []job.Requirement{}, nil
	}
	out := make([]job.Requirement, len(j.Requirements))
	copy(out, j.Requirements)
	return out, nil
}

func (s *Static) GetCredentials(ctx context.Context) ([]credential.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]credential.Credential, 0, len(s.cat.Credentials))
	for _, c := range s.cat.Credentials {
		out = append(out, c.Credential)
	}
	return out, nil
}

func (s *Static) GetCredentialSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range s.cat.Credentials {
		if c.Credential.ID == credentialID {
			out := make([]credential.SkillLink, len(c.Links))
			copy(out, c.Links)
			return out, nil
		}
	}
	return []credential.SkillLink{}, nil
}
