// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package category

import "context"

// # Storage Contract

// Repository defines the read operations over the reference category trees.
// Every listing is ordered by category name ascending.
type Repository interface {
	ListTraditionCategories(ctx context.Context) ([]TraditionCategory, error)
	ListCreativeCategories(ctx context.Context) ([]CreativeCategory, error)
	ListEthnicCategories(ctx context.Context) ([]EthnicCategory, error)
}
