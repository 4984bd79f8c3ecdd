// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package category

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/prachasan/heritage-api/internal/platform/apperr"
)

// Recognised values of the type query parameter.
const (
	TypeTradition        = "tradition"
	TypeCreativeActivity = "creative"
	TypeEthnicGroup      = "ethnic"
)

// # Service Layer

// Service assembles the category trees for the filter menus.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
Get returns the category groups for the requested record kind.

An empty kind loads all three trees concurrently. An unrecognised kind
yields empty groups rather than an error.
*/
func (service *Service) Get(context context.Context, kind string) (*Groups, error) {
	groups := emptyGroups()

	switch kind {
	case TypeTradition:
		categories, err := service.repo.ListTraditionCategories(context)
		if err != nil {
			return nil, apperr.FetchFailed("categories", err)
		}
		groups.TraditionCategories = categories

	case TypeCreativeActivity:
		categories, err := service.repo.ListCreativeCategories(context)
		if err != nil {
			return nil, apperr.FetchFailed("categories", err)
		}
		groups.CreativeCategories = categories

	case TypeEthnicGroup:
		categories, err := service.repo.ListEthnicCategories(context)
		if err != nil {
			return nil, apperr.FetchFailed("categories", err)
		}
		groups.EthnicCategories = categories

	case "":
		group, groupCtx := errgroup.WithContext(context)

		group.Go(func() error {
			categories, err := service.repo.ListTraditionCategories(groupCtx)
			if err == nil {
				groups.TraditionCategories = categories
			}
			return err
		})
		group.Go(func() error {
			categories, err := service.repo.ListCreativeCategories(groupCtx)
			if err == nil {
				groups.CreativeCategories = categories
			}
			return err
		})
		group.Go(func() error {
			categories, err := service.repo.ListEthnicCategories(groupCtx)
			if err == nil {
				groups.EthnicCategories = categories
			}
			return err
		})

		if err := group.Wait(); err != nil {
			return nil, apperr.FetchFailed("categories", err)
		}
	}

	return groups, nil
}
