package seeder

import (
	"context"
	"fmt"

	"certtrack/internal/catalog"
	"certtrack/internal/database"
)

// CatalogSeeder upserts a reference catalog document. Requirements and
// credential links of every job and credential in the document are
// replaced; rows absent from the document are left untouched.
type CatalogSeeder struct {
	Doc catalog.Document
}

func (CatalogSeeder) Name() string { return "catalog" }

var catalogTables = []struct {
	table   string
	columns []string
}{
	{"skills", []string{"id", "name", "category", "synonyms"}},
	{"jobs", []string{"id", "title", "description", "seniority", "median_salary_usd", "growth_outlook", "position"}},
	{"job_skills", []string{"job_id", "skill_id", "importance", "proficiency", "position"}},
	{"credentials", []string{"id", "name", "provider", "type", "level", "url", "description", "position"}},
	{"credential_skills", []string{"credential_id", "skill_id"}},
}

func (s CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := s.Doc.Validate(); err != nil {
		return err
	}
	for _, t := range catalogTables {
		if err := EnsureTableColumns(ctx, db, t.table, t.columns...); err != nil {
			return err
		}
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if err := s.seedSkills(ctx, tx); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		if err := s.seedJobs(ctx, tx); err != nil {
			return fmt.Errorf("jobs: %w", err)
		}
		if err := s.seedCredentials(ctx, tx); err != nil {
			return fmt.Errorf("credentials: %w", err)
		}
		return nil
	})
}

func (s CatalogSeeder) seedSkills(ctx context.Context, tx database.Tx) error {
	for _, sk := range s.Doc.Skills {
		synonyms := sk.Synonyms
		if synonyms == nil {
			synonyms = []string{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name, category, synonyms)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE
			 SET name = EXCLUDED.name, category = EXCLUDED.category, synonyms = EXCLUDED.synonyms, updated_at = now()`,
			sk.ID, sk.Name, sk.Category, synonyms,
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", sk.ID, err)
		}
	}
	return nil
}

func (s CatalogSeeder) seedJobs(ctx context.Context, tx database.Tx) error {
	for pos, j := range s.Doc.Jobs {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, description, seniority, median_salary_usd, growth_outlook, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO UPDATE
			 SET title = EXCLUDED.title, description = EXCLUDED.description, seniority = EXCLUDED.seniority,
			     median_salary_usd = EXCLUDED.median_salary_usd, growth_outlook = EXCLUDED.growth_outlook,
			     position = EXCLUDED.position, updated_at = now()`,
			j.ID, j.Title, j.Description, j.Seniority, j.MedianSalaryUSD, j.GrowthOutlook, pos,
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", j.ID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, j.ID); err != nil {
			return fmt.Errorf("clear requirements %s: %w", j.ID, err)
		}
		for rpos, r := range j.Requirements {
			_, err := tx.Exec(ctx,
				`INSERT INTO job_skills (job_id, skill_id, importance, proficiency, position) VALUES ($1, $2, $3, $4, $5)`,
				j.ID, r.Skill, r.Importance, r.Proficiency, rpos,
			)
			if err != nil {
				return fmt.Errorf("insert requirement %s/%s: %w", j.ID, r.Skill, err)
			}
		}
	}
	return nil
}

func (s CatalogSeeder) seedCredentials(ctx context.Context, tx database.Tx) error {
	for pos, c := range s.Doc.Credentials {
		_, err := tx.Exec(ctx,
			`INSERT INTO credentials (id, name, provider, type, level, url, description, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (id) DO UPDATE
			 SET name = EXCLUDED.name, provider = EXCLUDED.provider, type = EXCLUDED.type, level = EXCLUDED.level,
			     url = EXCLUDED.url, description = EXCLUDED.description, position = EXCLUDED.position, updated_at = now()`,
			c.ID, c.Name, c.Provider, c.Type, c.Level, c.URL, c.Description, pos,
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", c.ID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM credential_skills WHERE credential_id = $1`, c.ID); err != nil {
			return fmt.Errorf("clear links %s: %w", c.ID, err)
		}
		for _, sk := range c.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO credential_skills (credential_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				c.ID, sk,
			)
			if err != nil {
				return fmt.Errorf("insert link %s/%s: %w", c.ID, sk, err)
			}
		}
	}
	return nil
}
