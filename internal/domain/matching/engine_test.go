package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCatalog_FiltersAndSorts(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	got := e.MatchCatalog([]string{"SQL", "Excel"}, analystCatalog())

	// data-analyst scores 0.5 and is dropped; bi-developer 4/5 = 0.8.
	require.Len(t, got, 3)
	assert.Equal(t, "report-writer", got[0].Job.ID)
	assert.Equal(t, "spreadsheet-clerk", got[1].Job.ID)
	assert.Equal(t, "bi-developer", got[2].Job.ID)

	assert.Equal(t, TierNow, got[0].Category)
	assert.Equal(t, TierNow, got[1].Category)
	assert.Equal(t, TierNext, got[2].Category)
	assert.InDelta(t, 0.8, got[2].Score, 1e-9)
	assert.Equal(t, []string{"SQL", "Excel"}, got[2].MatchedSkills)
	assert.Empty(t, got[2].MissingSkills)
}

func TestMatchCatalog_StableTies(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	got := e.MatchCatalog([]string{"excel", "sql"}, analystCatalog())

	require.GreaterOrEqual(t, len(got), 2)
	// report-writer and spreadsheet-clerk both score 1.0; catalog order wins.
	assert.Equal(t, "report-writer", got[0].Job.ID)
	assert.Equal(t, "spreadsheet-clerk", got[1].Job.ID)
}

func TestMatchCatalog_EmptyInput(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	got := e.MatchCatalog(nil, analystCatalog())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDetail_BelowThresholdStillResolved(t *testing.T) {
	cat := analystCatalog()
	cj, ok := cat.FindJob("data-analyst")
	require.True(t, ok)

	d := NewEngine(DefaultThresholds()).Detail([]string{"SQL", "Excel"}, cj, cat)
	assert.InDelta(t, 0.5, d.Score, 1e-9)
	assert.Nil(t, d.Category)
	assert.Equal(t, []string{"SQL", "Excel"}, d.MatchedSkills)
	assert.Equal(t, []string{"Tableau"}, d.MissingSkills)
	assert.Equal(t, []string{"tableau-desktop", "google-da"}, credentialIDs(d.Recommendations))
}

func TestDetail_Tiered(t *testing.T) {
	cat := analystCatalog()
	cj, ok := cat.FindJob("bi-developer")
	require.True(t, ok)

	d := NewEngine(DefaultThresholds()).Detail([]string{"sql", "excel"}, cj, cat)
	require.NotNil(t, d.Category)
	assert.Equal(t, TierNext, *d.Category)
	assert.Empty(t, d.Recommendations)
}

func TestFindJob_Unknown(t *testing.T) {
	_, ok := analystCatalog().FindJob("astronaut")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	cat := analystCatalog()
	idx := NewSkillIndex(cat.Skills)
	recs := idx.Recommend([]string{"Tableau", "Python"}, cat.Credentials)
	require.Len(t, recs, 3)

	assert.Len(t, Truncate(recs, 2), 2)
	assert.Len(t, Truncate(recs, 0), 3)
	assert.Len(t, Truncate(recs, 10), 3)
	assert.Equal(t, "tableau-desktop", Truncate(recs, 1)[0].ID)
}
