// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package tradition

import (
	"context"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
)

// # Storage Contract

// Repository defines the persistence operations for traditions.
//
// List and Count satisfy [listing.Lister]; FindByID and IncrementViewCount
// satisfy [listing.Detailer].
type Repository interface {
	List(ctx context.Context, filter listing.Filter, limit, offset int) ([]*Tradition, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	FindByID(ctx context.Context, id string) (*Tradition, error)
	IncrementViewCount(ctx context.Context, id string) error

	Create(ctx context.Context, record *Tradition) error
	Update(ctx context.Context, record *Tradition) error
	AddImage(ctx context.Context, recordID string, image media.Image) error
	SetPolicyFileURL(ctx context.Context, recordID, url string) error
}
