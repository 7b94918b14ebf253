package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/errors"
	"github.com/lueurxax/tastelog/internal/platform/observability"
)

const wineColumns = `id, name, region, grape, vintage, rating, photo_uri, notes, created_at, updated_at`

const (
	listWinesSQL  = `SELECT ` + wineColumns + ` FROM wines ORDER BY created_at, id`
	getWineSQL    = `SELECT ` + wineColumns + ` FROM wines WHERE id = $1`
	createWineSQL = `
		INSERT INTO wines (id, name, region, grape, vintage, rating, photo_uri, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`
	updateWineSQL = `
		UPDATE wines
		SET name = $2, region = $3, grape = $4, vintage = $5, rating = $6,
		    photo_uri = $7, notes = $8, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	deleteWineSQL = `DELETE FROM wines WHERE id = $1`
)

func scanWine(row pgx.Row) (domain.Wine, error) {
	var (
		id                             pgtype.UUID
		name                           string
		region, grape, photoURI, notes pgtype.Text
		vintage                        pgtype.Int4
		rating                         int32
		createdAt, updatedAt           pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &region, &grape, &vintage, &rating, &photoURI, &notes, &createdAt, &updatedAt); err != nil {
		return domain.Wine{}, err //nolint:wrapcheck // wrapped by callers
	}

	return domain.Wine{
		ID:        fromUUID(id),
		Name:      name,
		Region:    fromText(region),
		Grape:     fromText(grape),
		Vintage:   fromInt4(vintage),
		Rating:    int(rating),
		PhotoURI:  fromText(photoURI),
		Notes:     fromText(notes),
		CreatedAt: fromTimestamptz(createdAt),
		UpdatedAt: fromTimestamptz(updatedAt),
	}, nil
}

// ListWines returns all wines ordered by creation time.
func (db *DB) ListWines(ctx context.Context) ([]domain.Wine, error) {
	rows, err := db.Pool.Query(ctx, listWinesSQL)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	defer rows.Close()

	wines := make([]domain.Wine, 0)

	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wine: %w", err)
		}

		wines = append(wines, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wines: %w", err)
	}

	return wines, nil
}

// GetWine returns a wine by id.
func (db *DB) GetWine(ctx context.Context, id string) (*domain.Wine, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	w, err := scanWine(db.Pool.QueryRow(ctx, getWineSQL, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wine %s: %w", id, errors.ErrNotFound)
		}

		return nil, fmt.Errorf("get wine: %w", err)
	}

	return &w, nil
}

// CreateWine inserts a wine and fills in its id and timestamps.
func (db *DB) CreateWine(ctx context.Context, wine *domain.Wine) error {
	if err := wine.Validate(); err != nil {
		return err //nolint:wrapcheck // sentinel already wrapped
	}

	uid := newID()

	var createdAt, updatedAt pgtype.Timestamptz

	err := db.Pool.QueryRow(ctx, createWineSQL,
		uid, SanitizeUTF8(wine.Name), toText(wine.Region), toText(wine.Grape),
		toNullableInt4(wine.Vintage), safeIntToInt32(wine.Rating),
		toText(wine.PhotoURI), toText(wine.Notes),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create wine: %w", err)
	}

	wine.ID = fromUUID(uid)
	wine.CreatedAt = fromTimestamptz(createdAt)
	wine.UpdatedAt = fromTimestamptz(updatedAt)

	observability.RecordsWritten.WithLabelValues(string(domain.CategoryWine), opCreate).Inc()

	return nil
}

// UpdateWine replaces the stored fields of an existing wine.
func (db *DB) UpdateWine(ctx context.Context, wine *domain.Wine) error {
	uid, err := parseID(wine.ID)
	if err != nil {
		return err
	}

	if err := wine.Validate(); err != nil {
		return err //nolint:wrapcheck // sentinel already wrapped
	}

	var createdAt, updatedAt pgtype.Timestamptz

	err = db.Pool.QueryRow(ctx, updateWineSQL,
		uid, SanitizeUTF8(wine.Name), toText(wine.Region), toText(wine.Grape),
		toNullableInt4(wine.Vintage), safeIntToInt32(wine.Rating),
		toText(wine.PhotoURI), toText(wine.Notes),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("wine %s: %w", wine.ID, errors.ErrNotFound)
		}

		return fmt.Errorf("update wine: %w", err)
	}

	wine.CreatedAt = fromTimestamptz(createdAt)
	wine.UpdatedAt = fromTimestamptz(updatedAt)

	observability.RecordsWritten.WithLabelValues(string(domain.CategoryWine), opUpdate).Inc()

	return nil
}

// DeleteWine removes a wine by id.
func (db *DB) DeleteWine(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := db.Pool.Exec(ctx, deleteWineSQL, uid)
	if err != nil {
		return fmt.Errorf("delete wine: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wine %s: %w", id, errors.ErrNotFound)
	}

	observability.RecordsWritten.WithLabelValues(string(domain.CategoryWine), opDelete).Inc()

	return nil
}
