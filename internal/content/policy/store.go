// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package policy

import (
	"context"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
)

// # Storage Contract

// Repository defines the persistence operations for public policies.
//
// List and Count satisfy [listing.Lister]; FindByID and IncrementViewCount
// satisfy [listing.Detailer].
type Repository interface {
	List(ctx context.Context, filter listing.Filter, limit, offset int) ([]*PublicPolicy, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	FindByID(ctx context.Context, id string) (*PublicPolicy, error)
	IncrementViewCount(ctx context.Context, id string) error

	Create(ctx context.Context, record *PublicPolicy) error
	Update(ctx context.Context, record *PublicPolicy) error
	AddImage(ctx context.Context, recordID string, image media.Image) error
	SetPolicyFileURL(ctx context.Context, recordID, url string) error
}
