package migration

import (
	"cmp"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// lockKey serializes concurrent server starts and CLI runs against the
// same database.
const lockKey int64 = 0x63657274

var ErrChecksumMismatch = errors.New("applied migration was modified")

// Runner applies versioned reference-schema migrations from FS in order.
// Already-applied versions are skipped after their checksum is verified.
type Runner struct {
	FS     fs.FS
	Logger *log.Logger
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

func (m Migration) String() string {
	return fmt.Sprintf("V%d__%s", m.Version, m.Name)
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("migration: nil db")
	}
	if r.FS == nil {
		return errors.New("migration: nil fs")
	}

	migs, err := Load(r.FS)
	if err != nil {
		return err
	}
	if len(migs) == 0 {
		r.logf("[Migration] no migration files found")
		return nil
	}

	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration: create schema_migrations: %w", err)
	}

	// Session-level advisory locks need a single connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("migration: acquire lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	applied, err := appliedChecksums(ctx, conn)
	if err != nil {
		return fmt.Errorf("migration: read applied versions: %w", err)
	}

	todo, err := pending(migs, applied)
	if err != nil {
		return err
	}
	if len(todo) == 0 {
		r.logf("[Migration] schema up to date version=%d", migs[len(migs)-1].Version)
		return nil
	}

	r.logf("[Migration] applying pending=%d", len(todo))
	for _, m := range todo {
		start := time.Now()
		if err := apply(ctx, conn, m); err != nil {
			return err
		}
		r.logf("[Migration] applied %s took=%s", m, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (r Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// pending returns the migrations not yet recorded in applied, failing when a
// recorded version no longer matches its file.
func pending(migs []Migration, applied map[int64]string) ([]Migration, error) {
	out := make([]Migration, 0, len(migs))
	for _, m := range migs {
		sum, ok := applied[m.Version]
		if !ok {
			out = append(out, m)
			continue
		}
		if sum != m.Checksum {
			return nil, fmt.Errorf("migration %s: %w", m, ErrChecksumMismatch)
		}
	}
	return out, nil
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Load reads V<n>__<name>.sql files from the root of fsys, sorted by
// version. Other files are ignored.
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	migs := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version: %s", e.Name())
		}

		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(raw))
		if body == "" {
			return nil, fmt.Errorf("empty migration file: %s", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		migs = append(migs, Migration{
			Version:  version,
			Name:     m[2],
			Filename: e.Name(),
			SQL:      body,
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	slices.SortFunc(migs, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}
	return migs, nil
}

func ensureSchemaMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func appliedChecksums(ctx context.Context, conn *sql.Conn) (map[int64]string, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var (
			version int64
			sum     string
		)
		if err := rows.Scan(&version, &sum); err != nil {
			return nil, err
		}
		out[version] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// apply runs one migration and records it in the same transaction.
func apply(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration %s (%s): %w", m, m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
		m.Version, m.Name, m.Checksum, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("migration %s: record: %w", m, err)
	}
	return tx.Commit()
}
