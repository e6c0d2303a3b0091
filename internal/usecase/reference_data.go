package usecase

import (
	"context"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"
)

// ReferenceData is the read-only source of the skills, jobs and
// credentials catalog. Requirements and links are returned in the order
// they were stored.
type ReferenceData interface {
	GetSkills(ctx context.Context) ([]skill.Skill, error)
	GetJobs(ctx context.Context) ([]job.Job, error)
	GetJobSkillRequirements(ctx context.Context, jobID string) ([]job.Requirement, error)
	GetCredentials(ctx context.Context) ([]credential.Credential, error)
	GetCredentialSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error)
}
