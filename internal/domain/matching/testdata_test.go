package matching

import (
	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"
)

func analystSkills() []skill.Skill {
	return []skill.Skill{
		{ID: "sql", Name: "SQL", Category: skill.CategoryTechnical, Synonyms: []string{"structured query language"}},
		{ID: "excel", Name: "Excel", Category: skill.CategoryTool, Synonyms: []string{"ms excel", "spreadsheets"}},
		{ID: "tableau", Name: "Tableau", Category: skill.CategoryTool},
		{ID: "python", Name: "Python", Category: skill.CategoryTechnical, Synonyms: []string{"py"}},
		{ID: "analytics", Name: "Analytics", Category: skill.CategoryDomain},
		{ID: "communication", Name: "Communication", Category: skill.CategorySoft},
	}
}

func req(jobID, skillID string, imp job.Importance) job.Requirement {
	return job.Requirement{JobID: jobID, SkillID: skillID, Importance: imp, Proficiency: job.ProficiencyWorking}
}

func dataAnalystRequirements() []job.Requirement {
	return []job.Requirement{
		req("data-analyst", "sql", job.ImportanceRequired),
		req("data-analyst", "excel", job.ImportanceRequired),
		req("data-analyst", "tableau", job.ImportanceRequired),
		req("data-analyst", "python", job.ImportancePreferred),
		req("data-analyst", "analytics", job.ImportancePreferred),
	}
}

func analystCatalog() Catalog {
	return Catalog{
		Skills: analystSkills(),
		Jobs: []CatalogJob{
			{
				Job:          job.Job{ID: "data-analyst", Title: "Data Analyst", Seniority: "junior", MedianSalaryUSD: 65000},
				Requirements: dataAnalystRequirements(),
			},
			{
				Job: job.Job{ID: "report-writer", Title: "Report Writer"},
				Requirements: []job.Requirement{
					req("report-writer", "excel", job.ImportanceRequired),
					req("report-writer", "sql", job.ImportancePreferred),
				},
			},
			{
				Job: job.Job{ID: "spreadsheet-clerk", Title: "Spreadsheet Clerk"},
				Requirements: []job.Requirement{
					req("spreadsheet-clerk", "excel", job.ImportanceRequired),
				},
			},
			{
				Job: job.Job{ID: "bi-developer", Title: "BI Developer"},
				Requirements: []job.Requirement{
					req("bi-developer", "sql", job.ImportanceRequired),
					req("bi-developer", "excel", job.ImportanceRequired),
					req("bi-developer", "tableau", job.ImportancePreferred),
				},
			},
		},
		Credentials: []CatalogCredential{
			{
				Credential: credential.Credential{ID: "tableau-desktop", Name: "Tableau Desktop Specialist", Type: credential.TypeCertification, Level: credential.LevelFoundation},
				Links:      []credential.SkillLink{{CredentialID: "tableau-desktop", SkillID: "tableau"}},
			},
			{
				Credential: credential.Credential{ID: "pcep", Name: "PCEP Python", Type: credential.TypeCertification, Level: credential.LevelFoundation},
				Links:      []credential.SkillLink{{CredentialID: "pcep", SkillID: "python"}},
			},
			{
				Credential: credential.Credential{ID: "google-da", Name: "Google Data Analytics", Type: credential.TypeCertificate, Level: credential.LevelFoundation},
				Links: []credential.SkillLink{
					{CredentialID: "google-da", SkillID: "sql"},
					{CredentialID: "google-da", SkillID: "tableau"},
					{CredentialID: "google-da", SkillID: "analytics"},
				},
			},
		},
	}
}
