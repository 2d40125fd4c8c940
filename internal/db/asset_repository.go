package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/slopworks/cultivator/internal/model"
)

// AssetRepository handles SVG art asset storage.
type AssetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new asset repository.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

func scanAsset(row pgx.Row) (model.Asset, error) {
	var a model.Asset
	var kind string
	err := row.Scan(&a.ID, &a.Key, &kind, &a.SVG, &a.Checksum, &a.UpdatedAt)
	if err != nil {
		return model.Asset{}, err
	}
	a.Kind = model.AssetKind(kind)
	return a, nil
}

// Get loads an asset by key.
func (r *AssetRepository) Get(ctx context.Context, key string) (model.Asset, error) {
	a, err := scanAsset(r.pool.QueryRow(ctx,
		`SELECT id, key, kind, svg, checksum, updated_at FROM assets WHERE key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Asset{}, fmt.Errorf("asset %q: %w", key, ErrNotFound)
		}
		return model.Asset{}, fmt.Errorf("loading asset %q: %w", key, err)
	}
	return a, nil
}

// ListManifest returns the asset manifest: every key, kind and checksum,
// without the SVG bodies. Clients diff checksums to decide what to fetch.
func (r *AssetRepository) ListManifest(ctx context.Context) ([]model.Asset, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, key, kind, checksum, updated_at FROM assets ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing asset manifest: %w", err)
	}
	defer rows.Close()

	var out []model.Asset
	for rows.Next() {
		var a model.Asset
		var kind string
		if err := rows.Scan(&a.ID, &a.Key, &kind, &a.Checksum, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning asset row: %w", err)
		}
		a.Kind = model.AssetKind(kind)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating asset rows: %w", err)
	}
	return out, nil
}

// Save upserts an asset by key, recomputing its checksum.
func (r *AssetRepository) Save(ctx context.Context, a model.Asset) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Checksum = model.ChecksumSVG(a.SVG)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO assets (id, key, kind, svg, checksum, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (key) DO UPDATE SET
		   kind = EXCLUDED.kind,
		   svg = EXCLUDED.svg,
		   checksum = EXCLUDED.checksum,
		   updated_at = EXCLUDED.updated_at`,
		a.ID, a.Key, string(a.Kind), a.SVG, a.Checksum, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving asset %q: %w", a.Key, err)
	}
	return nil
}

// Delete removes an asset by key.
func (r *AssetRepository) Delete(ctx context.Context, key string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("deleting asset %q: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %q: %w", key, ErrNotFound)
	}
	return nil
}
