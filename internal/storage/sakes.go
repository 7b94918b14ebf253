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

const sakeColumns = `id, name, brewery, type, region, rating, photo_uri, notes, created_at, updated_at`

const (
	listSakesSQL  = `SELECT ` + sakeColumns + ` FROM sakes ORDER BY created_at, id`
	getSakeSQL    = `SELECT ` + sakeColumns + ` FROM sakes WHERE id = $1`
	createSakeSQL = `
		INSERT INTO sakes (id, name, brewery, type, region, rating, photo_uri, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`
	updateSakeSQL = `
		UPDATE sakes
		SET name = $2, brewery = $3, type = $4, region = $5, rating = $6,
		    photo_uri = $7, notes = $8, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	deleteSakeSQL = `DELETE FROM sakes WHERE id = $1`
)

func scanSake(row pgx.Row) (domain.Sake, error) {
	var (
		id                                         pgtype.UUID
		name                                       string
		brewery, sakeType, region, photoURI, notes pgtype.Text
		rating                                     int32
		createdAt, updatedAt                       pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &brewery, &sakeType, &region, &rating, &photoURI, &notes, &createdAt, &updatedAt); err != nil {
		return domain.Sake{}, err //nolint:wrapcheck // wrapped by callers
	}

	return domain.Sake{
		ID:        fromUUID(id),
		Name:      name,
		Brewery:   fromText(brewery),
		Type:      domain.SakeType(fromText(sakeType)),
		Region:    fromText(region),
		Rating:    int(rating),
		PhotoURI:  fromText(photoURI),
		Notes:     fromText(notes),
		CreatedAt: fromTimestamptz(createdAt),
		UpdatedAt: fromTimestamptz(updatedAt),
	}, nil
}

// ListSakes returns all sakes ordered by creation time.
func (db *DB) ListSakes(ctx context.Context) ([]domain.Sake, error) {
	rows, err := db.Pool.Query(ctx, listSakesSQL)
	if err != nil {
		return nil, fmt.Errorf("list sakes: %w", err)
	}
	defer rows.Close()

	sakes := make([]domain.Sake, 0)

	for rows.Next() {
		s, err := scanSake(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sake: %w", err)
		}

		sakes = append(sakes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sakes: %w", err)
	}

	return sakes, nil
}

// GetSake returns a sake by id.
func (db *DB) GetSake(ctx context.Context, id string) (*domain.Sake, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s, err := scanSake(db.Pool.QueryRow(ctx, getSakeSQL, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sake %s: %w", id, errors.ErrNotFound)
		}

		return nil, fmt.Errorf("get sake: %w", err)
	}

	return &s, nil
}

// CreateSake inserts a sake and fills in its id and timestamps.
func (db *DB) CreateSake(ctx context.Context, sake *domain.Sake) error {
	if err := sake.Validate(); err != nil {
		return err //nolint:wrapcheck // sentinel already wrapped
	}

	uid := newID()

	var createdAt, updatedAt pgtype.Timestamptz

	err := db.Pool.QueryRow(ctx, createSakeSQL,
		uid, SanitizeUTF8(sake.Name), toText(sake.Brewery), toText(string(sake.Type)),
		toText(sake.Region), safeIntToInt32(sake.Rating),
		toText(sake.PhotoURI), toText(sake.Notes),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create sake: %w", err)
	}

	sake.ID = fromUUID(uid)
	sake.CreatedAt = fromTimestamptz(createdAt)
	sake.UpdatedAt = fromTimestamptz(updatedAt)

	observability.RecordsWritten.WithLabelValues(string(domain.CategorySake), opCreate).Inc()

	return nil
}

// UpdateSake replaces the stored fields of an existing sake.
func (db *DB) UpdateSake(ctx context.Context, sake *domain.Sake) error {
	uid, err := parseID(sake.ID)
	if err != nil {
		return err
	}

	if err := sake.Validate(); err != nil {
		return err //nolint:wrapcheck // sentinel already wrapped
	}

	var createdAt, updatedAt pgtype.Timestamptz

	err = db.Pool.QueryRow(ctx, updateSakeSQL,
		uid, SanitizeUTF8(sake.Name), toText(sake.Brewery), toText(string(sake.Type)),
		toText(sake.Region), safeIntToInt32(sake.Rating),
		toText(sake.PhotoURI), toText(sake.Notes),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("sake %s: %w", sake.ID, errors.ErrNotFound)
		}

		return fmt.Errorf("update sake: %w", err)
	}

	sake.CreatedAt = fromTimestamptz(createdAt)
	sake.UpdatedAt = fromTimestamptz(updatedAt)

	observability.RecordsWritten.WithLabelValues(string(domain.CategorySake), opUpdate).Inc()

	return nil
}

// DeleteSake removes a sake by id.
func (db *DB) DeleteSake(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := db.Pool.Exec(ctx, deleteSakeSQL, uid)
	if err != nil {
		return fmt.Errorf("delete sake: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sake %s: %w", id, errors.ErrNotFound)
	}

	observability.RecordsWritten.WithLabelValues(string(domain.CategorySake), opDelete).Inc()

	return nil
}
