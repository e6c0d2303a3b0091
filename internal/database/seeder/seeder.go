package seeder

import (
	"context"

	"certtrack/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
