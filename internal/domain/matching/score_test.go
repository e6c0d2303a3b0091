package matching

import (
	"testing"

	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"

	"github.com/stretchr/testify/assert"
)

func TestScore_DataAnalystExample(t *testing.T) {
	user := Normalize([]string{"SQL", "Excel"})
	got := Score(user, dataAnalystRequirements(), analystSkills())
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestScore_AllSkillsScoresOne(t *testing.T) {
	user := Normalize([]string{" sql", "EXCEL", "Tableau", "python", "Analytics "})
	assert.InDelta(t, 1.0, Score(user, dataAnalystRequirements(), analystSkills()), 1e-9)
}

func TestScore_NoSkillsScoresZero(t *testing.T) {
	user := Normalize([]string{"cobol"})
	assert.Equal(t, 0.0, Score(user, dataAnalystRequirements(), analystSkills()))
}

func TestScore_SynonymMatch(t *testing.T) {
	reqs := []job.Requirement{req("j", "excel", job.ImportanceRequired)}
	user := Normalize([]string{"MS Excel"})
	assert.InDelta(t, 1.0, Score(user, reqs, analystSkills()), 1e-9)
}

func TestScore_UnresolvableRequirementsSkipped(t *testing.T) {
	reqs := []job.Requirement{
		req("j", "sql", job.ImportanceRequired),
		req("j", "does-not-exist", job.ImportanceRequired),
	}
	assert.InDelta(t, 1.0, Score([]string{"sql"}, reqs, analystSkills()), 1e-9)
}

func TestScore_NoResolvableRequirements(t *testing.T) {
	reqs := []job.Requirement{req("j", "ghost", job.ImportanceRequired)}
	assert.Equal(t, 0.0, Score([]string{"ghost"}, reqs, analystSkills()))
	assert.Equal(t, 0.0, Score([]string{"sql"}, nil, analystSkills()))
}

func TestScore_SoftSkillCap(t *testing.T) {
	onlySoft := []job.Requirement{req("j", "communication", job.ImportanceRequired)}
	assert.InDelta(t, 1.0, Score([]string{"communication"}, onlySoft, analystSkills()), 1e-9)
	assert.Equal(t, 0.0, Score([]string{"sql"}, onlySoft, analystSkills()))

	mixed := []job.Requirement{
		req("j", "sql", job.ImportanceRequired),
		req("j", "communication", job.ImportanceRequired),
	}
	assert.InDelta(t, 0.3/2.3, Score([]string{"communication"}, mixed, analystSkills()), 1e-9)
	assert.InDelta(t, 2.0/2.3, Score([]string{"sql"}, mixed, analystSkills()), 1e-9)
}

func TestScore_Bounds(t *testing.T) {
	inputs := [][]string{
		nil,
		{"sql"},
		{"sql", "python"},
		{"analytics", "tableau", "py"},
		{"sql", "excel", "tableau", "python", "analytics", "communication"},
	}
	for _, in := range inputs {
		s := Score(Normalize(in), dataAnalystRequirements(), analystSkills())
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScore_Idempotent(t *testing.T) {
	user := Normalize([]string{"SQL", "py"})
	first := Score(user, dataAnalystRequirements(), analystSkills())
	second := Score(user, dataAnalystRequirements(), analystSkills())
	assert.Equal(t, first, second)
}

func TestHasSkill_CaseInsensitive(t *testing.T) {
	s := skill.Skill{ID: "k8s", Name: "Kubernetes", Synonyms: []string{"K8s"}}
	assert.True(t, HasSkill([]string{"kubernetes"}, s))
	assert.True(t, HasSkill([]string{"k8s"}, s))
	assert.False(t, HasSkill([]string{"docker"}, s))
	assert.False(t, HasSkill(nil, s))
}
