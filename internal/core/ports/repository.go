// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern,
// allowing business logic to remain independent of infrastructure concerns.
package ports

import (
	"context"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

// WineReader lists the full wine collection in a stable order.
type WineReader interface {
	ListWines(ctx context.Context) ([]domain.Wine, error)
}

// SakeReader lists the full sake collection in a stable order.
type SakeReader interface {
	ListSakes(ctx context.Context) ([]domain.Sake, error)
}

// SnapshotReader is what the recommendation engine needs from the record store.
type SnapshotReader interface {
	WineReader
	SakeReader
}

// WineRepository handles wine CRUD operations.
type WineRepository interface {
	WineReader
	GetWine(ctx context.Context, id string) (*domain.Wine, error)
	CreateWine(ctx context.Context, wine *domain.Wine) error
	UpdateWine(ctx context.Context, wine *domain.Wine) error
	DeleteWine(ctx context.Context, id string) error
}

// SakeRepository handles sake CRUD operations.
type SakeRepository interface {
	SakeReader
	GetSake(ctx context.Context, id string) (*domain.Sake, error)
	CreateSake(ctx context.Context, sake *domain.Sake) error
	UpdateSake(ctx context.Context, sake *domain.Sake) error
	DeleteSake(ctx context.Context, id string) error
}

// RecordStore combines both collections.
type RecordStore interface {
	WineRepository
	SakeRepository
}
