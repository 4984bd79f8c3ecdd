// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package creative

import (
	"context"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
)

// # Storage Contract

// Repository defines the persistence operations for creative activities.
//
// List and Count satisfy [listing.Lister]; FindByID and IncrementViewCount
// satisfy [listing.Detailer].
type Repository interface {
	List(ctx context.Context, filter listing.Filter, limit, offset int) ([]*CreativeActivity, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	FindByID(ctx context.Context, id string) (*CreativeActivity, error)
	IncrementViewCount(ctx context.Context, id string) error

	Create(ctx context.Context, record *CreativeActivity) error
	Update(ctx context.Context, record *CreativeActivity) error
	AddImage(ctx context.Context, recordID string, image media.Image) error
	SetReportFileURL(ctx context.Context, recordID, url string) error
}
