// Package catalog records converted grids in a SQLite database so recent
// output can be listed without walking the output tree.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS grids (
	id               TEXT PRIMARY KEY,
	product          TEXT    NOT NULL,
	valid_time       INTEGER NOT NULL,
	forecast_seconds INTEGER NOT NULL DEFAULT 0,
	nx               INTEGER NOT NULL,
	ny               INTEGER NOT NULL,
	nz               INTEGER NOT NULL,
	nw_lat           REAL    NOT NULL,
	nw_lon           REAL    NOT NULL,
	dx               REAL    NOT NULL,
	dy               REAL    NOT NULL,
	radars           TEXT    NOT NULL DEFAULT '',
	source           TEXT    NOT NULL DEFAULT '',
	output_path      TEXT    NOT NULL,
	converted_at     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS grids_product_time ON grids (product, valid_time DESC);
`

// DefaultLimit bounds Recent when the caller passes no limit.
const DefaultLimit = 50

// Entry is one catalog row.
type Entry struct {
	ID              string    `json:"id"`
	Product         string    `json:"product"`
	ValidTime       time.Time `json:"valid_time"`
	ForecastSeconds int64     `json:"forecast_seconds"`
	NX              int       `json:"nx"`
	NY              int       `json:"ny"`
	NZ              int       `json:"nz"`
	NWLat           float64   `json:"nw_lat"`
	NWLon           float64   `json:"nw_lon"`
	DX              float64   `json:"dx"`
	DY              float64   `json:"dy"`
	Radars          []string  `json:"radars"`
	Source          string    `json:"source"`
	OutputPath      string    `json:"output_path"`
	ConvertedAt     time.Time `json:"converted_at"`
}

// Catalog is a SQLite-backed grid index. It implements the pipeline's batch
// loader.
type Catalog struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens or creates the catalog at path. ":memory:" gives a private
// in-memory catalog.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Catalog, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: ensure dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	// One connection serializes writers and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range []string{"pragma busy_timeout=5000", "pragma journal_mode=WAL", schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("catalog: init: %w", err)
		}
	}
	logger.Info("catalog opened", "path", path)
	return &Catalog{db: db, logger: logger}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// LoadBatch upserts one row per grid in a single transaction.
func (c *Catalog) LoadBatch(ctx context.Context, grids []domain.ConvertedGrid) error {
	if len(grids) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO grids (id, product, valid_time, forecast_seconds, nx, ny, nz,
			nw_lat, nw_lon, dx, dy, radars, source, output_path, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			output_path = excluded.output_path,
			converted_at = excluded.converted_at`)
	if err != nil {
		return fmt.Errorf("catalog: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range grids {
		g := &grids[i]
		f := g.Field
		_, err := stmt.ExecContext(ctx,
			g.ID, g.Product.CFName, f.ValidTime, g.Product.ForecastSeconds,
			f.NX, f.NY, f.NZ, f.NWLat, f.NWLon, f.DX, f.DY,
			strings.Join(f.Radars, ","), g.Source, g.OutputPath, g.ConvertedAt.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("catalog: insert %s: %w", g.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit: %w", err)
	}
	c.logger.Debug("catalog updated", "grids", len(grids))
	return nil
}

// Recent lists the newest grids, optionally for one product. limit <= 0
// uses DefaultLimit.
func (c *Catalog) Recent(ctx context.Context, product string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := `SELECT id, product, valid_time, forecast_seconds, nx, ny, nz, nw_lat, nw_lon,
		dx, dy, radars, source, output_path, converted_at FROM grids`
	args := []any{}
	if product != "" {
		query += ` WHERE product = ?`
		args = append(args, product)
	}
	query += ` ORDER BY valid_time DESC, product, id LIMIT ?`
	args = append(args, limit)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query: %w", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e           Entry
			validTime   int64
			radars      string
			convertedAt int64
		)
		if err := rows.Scan(&e.ID, &e.Product, &validTime, &e.ForecastSeconds, &e.NX, &e.NY, &e.NZ,
			&e.NWLat, &e.NWLon, &e.DX, &e.DY, &radars, &e.Source, &e.OutputPath, &convertedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		e.ValidTime = time.Unix(validTime, 0).UTC()
		e.ConvertedAt = time.UnixMilli(convertedAt).UTC()
		if radars != "" {
			e.Radars = strings.Split(radars, ",")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: rows: %w", err)
	}
	return out, nil
}
