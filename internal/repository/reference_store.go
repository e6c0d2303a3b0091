package repository

import (
	"context"

	"certtrack/internal/database"
	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"
)

// ReferenceStore exposes the Postgres reference tables as one read-only
// source of skills, jobs and credentials.
type ReferenceStore struct {
	Skills      SkillRepository
	Jobs        JobRepository
	JobSkills   JobSkillRepository
	Credentials CredentialRepository
}

func NewReferenceStore(db database.Querier) *ReferenceStore {
	return &ReferenceStore{
		Skills:      NewPostgresSkillRepository(db),
		Jobs:        NewPostgresJobRepository(db),
		JobSkills:   NewPostgresJobSkillRepository(db),
		Credentials: NewPostgresCredentialRepository(db),
	}
}

func (s *ReferenceStore) GetSkills(ctx context.Context) ([]skill.Skill, error) {
	return s.Skills.GetSkills(ctx)
}

func (s *ReferenceStore) GetJobs(ctx context.Context) ([]job.Job, error) {
	return s.Jobs.GetJobs(ctx)
}

func (s *ReferenceStore) GetJobSkillRequirements(ctx context.Context, jobID string) ([]job.Requirement, error) {
	return s.JobSkills.FindByJobID(ctx, jobID)
}

func (s *ReferenceStore) GetCredentials(ctx context.Context) ([]credential.Credential, error) {
	return s.Credentials.GetCredentials(ctx)
}

func (s *ReferenceStore) GetCredentialSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error) {
	return s.Credentials.FindSkillLinks(ctx, credentialID)
}
