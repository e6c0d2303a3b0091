package integration

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"certtrack/internal/catalog"
	"certtrack/internal/config"
	"certtrack/internal/database"
	"certtrack/internal/database/migration"
	dbpostgres "certtrack/internal/database/postgres"
	"certtrack/internal/database/seeder"
	"certtrack/internal/delivery/http/handler"
	"certtrack/internal/delivery/http/middleware"
	"certtrack/internal/delivery/http/routes"
	"certtrack/internal/domain/matching"
	"certtrack/internal/repository"
	"certtrack/internal/usecase"
	"certtrack/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestIntegration_SeedLoadAndMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	require.NoError(t, migration.Runner{FS: migrations.FS}.Run(ctx, db.SQLDB()))

	prefix := "it-" + uuid.NewString()[:8] + "-"
	doc := prefixedDocument(t, prefix)
	defer cleanup(t, db, doc)

	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults(doc)}.Run(ctx, db))
	// Seeding twice must converge on the same rows.
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults(doc)}.Run(ctx, db))

	store := repository.NewReferenceStore(db)

	reqs, err := store.GetJobSkillRequirements(ctx, prefix+"data-analyst")
	require.NoError(t, err)
	require.Len(t, reqs, 5)
	assert.Equal(t, prefix+"sql", reqs[0].SkillID)
	assert.Equal(t, prefix+"analytics", reqs[4].SkillID)

	skills, err := store.GetSkills(ctx)
	require.NoError(t, err)
	var synonyms []string
	for _, s := range skills {
		if s.ID == prefix+"sql" {
			synonyms = s.Synonyms
		}
	}
	assert.Equal(t, []string{"structured query language", "postgresql", "mysql"}, synonyms)

	loader := usecase.NewCatalogLoader(store, nil, 4, log.New(io.Discard, "", 0))
	app := newTestFiberApp(loader)

	body := `{"skills":["sql","Excel","tableau","py"]}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/matches", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var env semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var items []struct {
		Job struct {
			ID              string  `json:"id"`
			MedianSalaryUSD float64 `json:"medianSalaryUsd"`
		} `json:"job"`
		Score    float64 `json:"score"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))

	var found bool
	for _, it := range items {
		if it.Job.ID != prefix+"data-analyst" {
			continue
		}
		found = true
		assert.InDelta(t, 0.875, it.Score, 1e-9)
		assert.Equal(t, "now", it.Category)
		assert.Equal(t, 65000.0, it.Job.MedianSalaryUSD)
	}
	assert.True(t, found, "seeded job missing from matches")
}

func newTestFiberApp(loader *usecase.CatalogLoader) *fiber.App {
	discard := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(discard).Middleware())
	routes.NewRegistry(
		routes.Handlers{
			Match:   handler.NewMatchHandler(usecase.NewMatchingUsecase(loader, matching.NewEngine(matching.DefaultThresholds()), 4)),
			Catalog: handler.NewCatalogHandler(usecase.NewCatalogUsecase(loader, nil, discard)),
		},
		routes.Guards{},
	).Register(app)
	return app
}

func prefixedDocument(t *testing.T, prefix string) catalog.Document {
	t.Helper()

	doc, err := catalog.LoadFile("../catalog/testdata/catalog.yaml")
	require.NoError(t, err)

	for i := range doc.Skills {
		doc.Skills[i].ID = prefix + doc.Skills[i].ID
	}
	for i := range doc.Jobs {
		doc.Jobs[i].ID = prefix + doc.Jobs[i].ID
		for k := range doc.Jobs[i].Requirements {
			doc.Jobs[i].Requirements[k].Skill = prefix + doc.Jobs[i].Requirements[k].Skill
		}
	}
	for i := range doc.Credentials {
		doc.Credentials[i].ID = prefix + doc.Credentials[i].ID
		for k := range doc.Credentials[i].Skills {
			doc.Credentials[i].Skills[k] = prefix + doc.Credentials[i].Skills[k]
		}
	}
	return doc
}

func cleanup(t *testing.T, db database.DB, doc catalog.Document) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, j := range doc.Jobs {
		_, _ = db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, j.ID)
	}
	for _, c := range doc.Credentials {
		_, _ = db.Exec(ctx, `DELETE FROM credentials WHERE id = $1`, c.ID)
	}
	for _, s := range doc.Skills {
		_, _ = db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, s.ID)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CERTTRACK_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CERTTRACK_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  stringsOrDefault(ssl, "disable"),
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
