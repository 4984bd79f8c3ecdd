// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/category"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
)

// fakeRepository serves fixed category trees.
type fakeRepository struct {
	traditions []category.TraditionCategory
	creative   []category.CreativeCategory
	ethnic     []category.EthnicCategory
	err        error
}

func (r *fakeRepository) ListTraditionCategories(context.Context) ([]category.TraditionCategory, error) {
	return r.traditions, r.err
}

func (r *fakeRepository) ListCreativeCategories(context.Context) ([]category.CreativeCategory, error) {
	return r.creative, r.err
}

func (r *fakeRepository) ListEthnicCategories(context.Context) ([]category.EthnicCategory, error) {
	return r.ethnic, r.err
}

func fixtureRepository() *fakeRepository {
	return &fakeRepository{
		traditions: []category.TraditionCategory{{ID: "t1", Name: "Festivals", TraditionCount: 3}},
		creative: []category.CreativeCategory{{
			ID: "c1", Name: "Crafts", ActivityCount: 2,
			SubCategories: []category.CreativeSubCategory{{ID: "s1", Name: "Weaving", ActivityCount: 2}},
		}},
		ethnic: []category.EthnicCategory{{ID: "e1", Name: "Highland", EthnicGroupCount: 1}},
	}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("single_kind_leaves_others_empty", func(t *testing.T) {
		groups, err := category.NewService(fixtureRepository()).Get(ctx, category.TypeTradition)

		require.NoError(t, err)
		assert.Len(t, groups.TraditionCategories, 1)
		assert.Equal(t, 3, groups.TraditionCategories[0].TraditionCount)
		assert.Empty(t, groups.CreativeCategories)
		assert.Empty(t, groups.EthnicCategories)
	})

	t.Run("creative_kind_includes_subcategories", func(t *testing.T) {
		groups, err := category.NewService(fixtureRepository()).Get(ctx, category.TypeCreativeActivity)

		require.NoError(t, err)
		require.Len(t, groups.CreativeCategories, 1)
		assert.Len(t, groups.CreativeCategories[0].SubCategories, 1)
	})

	// The query values are part of the public contract, so pin the literal
	// strings rather than the constants.
	t.Run("documented_kind_values_are_recognised", func(t *testing.T) {
		for kind, want := range map[string]func(category.Groups) int{
			"tradition": func(g category.Groups) int { return len(g.TraditionCategories) },
			"creative":  func(g category.Groups) int { return len(g.CreativeCategories) },
			"ethnic":    func(g category.Groups) int { return len(g.EthnicCategories) },
		} {
			groups, err := category.NewService(fixtureRepository()).Get(ctx, kind)

			require.NoError(t, err)
			assert.Equal(t, 1, want(*groups), "kind %q", kind)
		}
	})

	t.Run("omitted_kind_returns_all_trees", func(t *testing.T) {
		groups, err := category.NewService(fixtureRepository()).Get(ctx, "")

		require.NoError(t, err)
		assert.Len(t, groups.TraditionCategories, 1)
		assert.Len(t, groups.CreativeCategories, 1)
		assert.Len(t, groups.EthnicCategories, 1)
	})

	t.Run("unknown_kind_returns_empty_groups", func(t *testing.T) {
		groups, err := category.NewService(fixtureRepository()).Get(ctx, "festival")

		require.NoError(t, err)
		assert.NotNil(t, groups.TraditionCategories)
		assert.Empty(t, groups.TraditionCategories)
		assert.Empty(t, groups.CreativeCategories)
		assert.Empty(t, groups.EthnicCategories)
	})

	t.Run("storage_failure_is_wrapped", func(t *testing.T) {
		repo := fixtureRepository()
		repo.err = errors.New("connection reset")

		_, err := category.NewService(repo).Get(ctx, "")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Failed to fetch categories", ae.Message)
	})
}
