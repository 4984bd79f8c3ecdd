// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package category exposes the reference category trees together with derived
record counts, backing the browsing frontend's filter menus.

Categories are reference data maintained by the foundation; this package
only reads them. Counts are computed from the live content tables on every
request.
*/
package category

// TraditionCategory is one tradition classification with its record count.
type TraditionCategory struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TraditionCount int    `json:"traditionCount"`
}

// CreativeSubCategory is a second-level creative classification.
type CreativeSubCategory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ActivityCount int    `json:"activityCount"`
}

// CreativeCategory is a top-level creative classification with its nested
// subcategories.
type CreativeCategory struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	ActivityCount int                   `json:"activityCount"`
	SubCategories []CreativeSubCategory `json:"subCategories"`
}

// EthnicCategory is one ethnic-group classification with its record count.
type EthnicCategory struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EthnicGroupCount int    `json:"ethnicGroupCount"`
}

// Groups bundles the category trees returned by the categories endpoint.
// A request scoped to one record kind leaves the other groups empty.
type Groups struct {
	TraditionCategories []TraditionCategory `json:"traditionCategories"`
	CreativeCategories  []CreativeCategory  `json:"creativeCategories"`
	EthnicCategories    []EthnicCategory    `json:"ethnicCategories"`
}

// emptyGroups returns a [Groups] whose slices serialize as [] rather than null.
func emptyGroups() *Groups {
	return &Groups{
		TraditionCategories: []TraditionCategory{},
		CreativeCategories:  []CreativeCategory{},
		EthnicCategories:    []EthnicCategory{},
	}
}
