package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/errors"
)

// RecordStore is a thread-safe in-memory implementation of ports.RecordStore.
// List operations return records in insertion order.
type RecordStore struct {
	mu    sync.RWMutex
	wines []domain.Wine
	sakes []domain.Sake

	// ListWinesFn allows overriding ListWines behavior.
	ListWinesFn func(ctx context.Context) ([]domain.Wine, error)

	// ListSakesFn allows overriding ListSakes behavior.
	ListSakesFn func(ctx context.Context) ([]domain.Sake, error)

	// Now supplies timestamps for created and updated records.
	Now func() time.Time

	// PingErr is returned by Ping.
	PingErr error
}

// NewRecordStore creates a new mock record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{Now: time.Now}
}

// Ping reports PingErr.
func (s *RecordStore) Ping(_ context.Context) error {
	return s.PingErr
}

// AddWines appends wines directly, bypassing CreateWine.
func (s *RecordStore) AddWines(wines ...domain.Wine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wines = append(s.wines, wines...)
}

// AddSakes appends sakes directly, bypassing CreateSake.
func (s *RecordStore) AddSakes(sakes ...domain.Sake) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sakes = append(s.sakes, sakes...)
}

// ListWines returns a copy of all wines.
func (s *RecordStore) ListWines(ctx context.Context) ([]domain.Wine, error) {
	if s.ListWinesFn != nil {
		return s.ListWinesFn(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Wine, len(s.wines))
	copy(out, s.wines)

	return out, nil
}

// GetWine returns the wine with the given id.
func (s *RecordStore) GetWine(_ context.Context, id string) (*domain.Wine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.wines {
		if s.wines[i].ID == id {
			w := s.wines[i]
			return &w, nil
		}
	}

	return nil, errors.ErrNotFound
}

// CreateWine stores a wine, assigning an id and timestamps.
func (s *RecordStore) CreateWine(_ context.Context, wine *domain.Wine) error {
	if err := wine.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	wine.ID = uuid.NewString()
	wine.CreatedAt = now
	wine.UpdatedAt = now
	s.wines = append(s.wines, *wine)

	return nil
}

// UpdateWine replaces the stored wine with the same id.
func (s *RecordStore) UpdateWine(_ context.Context, wine *domain.Wine) error {
	if err := wine.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wines {
		if s.wines[i].ID == wine.ID {
			wine.CreatedAt = s.wines[i].CreatedAt
			wine.UpdatedAt = s.Now()
			s.wines[i] = *wine

			return nil
		}
	}

	return errors.ErrNotFound
}

// DeleteWine removes the wine with the given id.
func (s *RecordStore) DeleteWine(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wines {
		if s.wines[i].ID == id {
			s.wines = append(s.wines[:i], s.wines[i+1:]...)
			return nil
		}
	}

	return errors.ErrNotFound
}

// ListSakes returns a copy of all sakes.
func (s *RecordStore) ListSakes(ctx context.Context) ([]domain.Sake, error) {
	if s.ListSakesFn != nil {
		return s.ListSakesFn(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sake, len(s.sakes))
	copy(out, s.sakes)

	return out, nil
}

// GetSake returns the sake with the given id.
func (s *RecordStore) GetSake(_ context.Context, id string) (*domain.Sake, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sakes {
		if s.sakes[i].ID == id {
			sk := s.sakes[i]
			return &sk, nil
		}
	}

	return nil, errors.ErrNotFound
}

// CreateSake stores a sake, assigning an id and timestamps.
func (s *RecordStore) CreateSake(_ context.Context, sake *domain.Sake) error {
	if err := sake.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	sake.ID = uuid.NewString()
	sake.CreatedAt = now
	sake.UpdatedAt = now
	s.sakes = append(s.sakes, *sake)

	return nil
}

// UpdateSake replaces the stored sake with the same id.
func (s *RecordStore) UpdateSake(_ context.Context, sake *domain.Sake) error {
	if err := sake.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sakes {
		if s.sakes[i].ID == sake.ID {
			sake.CreatedAt = s.sakes[i].CreatedAt
			sake.UpdatedAt = s.Now()
			s.sakes[i] = *sake

			return nil
		}
	}

	return errors.ErrNotFound
}

// DeleteSake removes the sake with the given id.
func (s *RecordStore) DeleteSake(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sakes {
		if s.sakes[i].ID == id {
			s.sakes = append(s.sakes[:i], s.sakes[i+1:]...)
			return nil
		}
	}

	return errors.ErrNotFound
}
