// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package dashboard aggregates record counts, category breakdowns, and known
locations across all four content kinds for the admin landing page.

Every aggregate honours the shared year/region/province filter. The year is
a Buddhist Era year; it matches the stored start year for traditions,
creative activities, and ethnic groups, and the signing date for public
policies.
*/
package dashboard

// Overview is the headline record count per content kind.
type Overview struct {
	TraditionCount        int `json:"traditionCount"`
	CreativeActivityCount int `json:"creativeActivityCount"`
	EthnicGroupCount      int `json:"ethnicGroupCount"`
	PublicPolicyCount     int `json:"publicPolicyCount"`
	TotalCount            int `json:"totalCount"`
}

// CategoryCount is one slice of a per-category breakdown chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LevelCount is one slice of the policy-level breakdown chart.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// Charts bundles the breakdown series rendered on the dashboard.
type Charts struct {
	TraditionCategories []CategoryCount `json:"traditionCategories"`
	CreativeCategories  []CategoryCount `json:"creativeCategories"`
	EthnicCategories    []CategoryCount `json:"ethnicCategories"`
	PolicyLevels        []LevelCount    `json:"policyLevels"`
}

// Locations lists every region and province that appears on any record,
// sorted ascending with blanks removed.
type Locations struct {
	Regions   []string `json:"regions"`
	Provinces []string `json:"provinces"`
}

// Filters echoes the filter values the aggregates were computed under, so
// the frontend can label the dashboard state.
type Filters struct {
	Year     *string `json:"year"`
	Region   *string `json:"region"`
	Province *string `json:"province"`
}

// Dashboard is the full aggregate payload.
type Dashboard struct {
	Overview  Overview  `json:"overview"`
	Charts    Charts    `json:"charts"`
	Locations Locations `json:"locations"`
	Filters   Filters   `json:"filters"`
}
