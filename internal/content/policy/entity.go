// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package policy implements the public-policy content domain.

A public policy is a signed local commitment (sub-district, district,
provincial or health-region level) to alcohol-free community events. Unlike
the other record kinds it is browsed by signing date: the year filter is a
Buddhist Era year matched against the Gregorian signing date as a half-open
range.
*/
package policy

import (
	"time"

	"github.com/prachasan/heritage-api/internal/content/media"
)

// Levels a policy can be signed at.
const (
	LevelSubDistrict  = "subdistrict"
	LevelDistrict     = "district"
	LevelProvincial   = "provincial"
	LevelHealthRegion = "healthregion"
)

// PublicPolicy is the domain entity for one signed policy.
type PublicPolicy struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// SigningDate is the Gregorian date the policy was signed.
	SigningDate time.Time `json:"signingDate"`

	Level        string  `json:"level"`
	HealthRegion *string `json:"healthRegion"`

	// Location
	District     string  `json:"district"`
	Amphoe       string  `json:"amphoe"`
	Province     string  `json:"province"`
	Village      *string `json:"village"`
	Type         string  `json:"type"`
	Zipcode      *string `json:"zipcode"`
	DistrictCode *string `json:"districtCode"`
	AmphoeCode   *string `json:"amphoeCode"`
	ProvinceCode *string `json:"provinceCode"`

	// Content holds the individual policy clauses in order.
	Content []string `json:"content"`
	Summary string   `json:"summary"`
	Results *string  `json:"results"`

	VideoLink     *string `json:"videoLink"`
	PolicyFileURL *string `json:"policyFileUrl"`

	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Images []media.Image `json:"images"`
}
