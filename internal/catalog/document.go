// Package catalog reads reference-data documents: the skills, jobs and
// credentials an administrator seeds into the store.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/matching"
	"certtrack/internal/domain/skill"

	"gopkg.in/yaml.v3"
)

type Document struct {
	Skills      []SkillEntry      `yaml:"skills"`
	Jobs        []JobEntry        `yaml:"jobs"`
	Credentials []CredentialEntry `yaml:"credentials"`
}

type SkillEntry struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Synonyms []string `yaml:"synonyms"`
}

type JobEntry struct {
	ID              string             `yaml:"id"`
	Title           string             `yaml:"title"`
	Description     string             `yaml:"description"`
	Seniority       string             `yaml:"seniority"`
	MedianSalaryUSD float64            `yaml:"median_salary_usd"`
	GrowthOutlook   string             `yaml:"growth_outlook"`
	Requirements    []RequirementEntry `yaml:"requirements"`
}

type RequirementEntry struct {
	Skill       string `yaml:"skill"`
	Importance  string `yaml:"importance"`
	Proficiency string `yaml:"proficiency"`
}

type CredentialEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Provider    string   `yaml:"provider"`
	Type        string   `yaml:"type"`
	Level       string   `yaml:"level"`
	URL         string   `yaml:"url"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

var ErrInvalidDocument = errors.New("invalid catalog document")

func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return Document{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks identity and referential integrity of the document and
// reports every problem found, not only the first. Ids and skill references
// must already be trimmed.
func (d Document) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	padded := func(v string) bool {
		return v != strings.TrimSpace(v)
	}

	skills := map[string]struct{}{}
	for i, s := range d.Skills {
		id := s.ID
		if strings.TrimSpace(id) == "" {
			fail("skills[%d]: empty id", i)
			continue
		}
		if padded(id) {
			fail("skills[%d]: id %q has surrounding whitespace", i, id)
		}
		if _, dup := skills[id]; dup {
			fail("skills[%d]: duplicate id %q", i, id)
		}
		skills[id] = struct{}{}
		if strings.TrimSpace(s.Name) == "" {
			fail("skill %q: empty name", id)
		}
		if !skill.Category(s.Category).Valid() {
			fail("skill %q: unknown category %q", id, s.Category)
		}
		for _, syn := range s.Synonyms {
			if strings.TrimSpace(syn) == "" {
				fail("skill %q: empty synonym", id)
			}
		}
	}

	jobs := map[string]struct{}{}
	for i, j := range d.Jobs {
		id := j.ID
		if strings.TrimSpace(id) == "" {
			fail("jobs[%d]: empty id", i)
			continue
		}
		if padded(id) {
			fail("jobs[%d]: id %q has surrounding whitespace", i, id)
		}
		if _, dup := jobs[id]; dup {
			fail("jobs[%d]: duplicate id %q", i, id)
		}
		jobs[id] = struct{}{}
		if j.MedianSalaryUSD < 0 {
			fail("job %q: negative median salary", id)
		}
		seen := map[string]struct{}{}
		for _, r := range j.Requirements {
			if padded(r.Skill) {
				fail("job %q: skill reference %q has surrounding whitespace", id, r.Skill)
			} else if _, ok := skills[r.Skill]; !ok {
				fail("job %q: unknown skill %q", id, r.Skill)
			}
			if _, dup := seen[r.Skill]; dup {
				fail("job %q: duplicate requirement %q", id, r.Skill)
			}
			seen[r.Skill] = struct{}{}
			if !job.Importance(r.Importance).Valid() {
				fail("job %q: skill %q: unknown importance %q", id, r.Skill, r.Importance)
			}
			if !job.Proficiency(r.Proficiency).Valid() {
				fail("job %q: skill %q: unknown proficiency %q", id, r.Skill, r.Proficiency)
			}
		}
	}

	creds := map[string]struct{}{}
	for i, c := range d.Credentials {
		id := c.ID
		if strings.TrimSpace(id) == "" {
			fail("credentials[%d]: empty id", i)
			continue
		}
		if padded(id) {
			fail("credentials[%d]: id %q has surrounding whitespace", i, id)
		}
		if _, dup := creds[id]; dup {
			fail("credentials[%d]: duplicate id %q", i, id)
		}
		creds[id] = struct{}{}
		if !credential.Type(c.Type).Valid() {
			fail("credential %q: unknown type %q", id, c.Type)
		}
		if !credential.Level(c.Level).Valid() {
			fail("credential %q: unknown level %q", id, c.Level)
		}
		for _, s := range c.Skills {
			if padded(s) {
				fail("credential %q: skill reference %q has surrounding whitespace", id, s)
			} else if _, ok := skills[s]; !ok {
				fail("credential %q: unknown skill %q", id, s)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
}

func (d Document) Catalog() matching.Catalog {
	cat := matching.Catalog{
		Skills:      make([]skill.Skill, 0, len(d.Skills)),
		Jobs:        make([]matching.CatalogJob, 0, len(d.Jobs)),
		Credentials: make([]matching.CatalogCredential, 0, len(d.Credentials)),
	}

	for _, s := range d.Skills {
		cat.Skills = append(cat.Skills, s.toSkill())
	}
	for _, j := range d.Jobs {
		cat.Jobs = append(cat.Jobs, matching.CatalogJob{Job: j.toJob(), Requirements: j.requirements()})
	}
	for _, c := range d.Credentials {
		cat.Credentials = append(cat.Credentials, matching.CatalogCredential{Credential: c.toCredential(), Links: c.links()})
	}
	return cat
}

func (s SkillEntry) toSkill() skill.Skill {
	syn := make([]string, 0, len(s.Synonyms))
	syn = append(syn, s.Synonyms...)
	return skill.Skill{ID: s.ID, Name: s.Name, Category: skill.Category(s.Category), Synonyms: syn}
}

func (j JobEntry) toJob() job.Job {
	return job.Job{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Seniority:       j.Seniority,
		MedianSalaryUSD: j.MedianSalaryUSD,
		GrowthOutlook:   j.GrowthOutlook,
	}
}

func (j JobEntry) requirements() []job.Requirement {
	out := make([]job.Requirement, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		out = append(out, job.Requirement{
			JobID:       j.ID,
			SkillID:     r.Skill,
			Importance:  job.Importance(r.Importance),
			Proficiency: job.Proficiency(r.Proficiency),
		})
	}
	return out
}

func (c CredentialEntry) toCredential() credential.Credential {
	return credential.Credential{
		ID:          c.ID,
		Name:        c.Name,
		Provider:    c.Provider,
		Type:        credential.Type(c.Type),
		Level:       credential.Level(c.Level),
		URL:         c.URL,
		Description: c.Description,
	}
}

func (c CredentialEntry) links() []credential.SkillLink {
	out := make([]credential.SkillLink, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, credential.SkillLink{CredentialID: c.ID, SkillID: s})
	}
	return out
}
