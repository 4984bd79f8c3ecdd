// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package ethnic implements the ethnic-group content domain.

Each record documents an ethnic community, the history of its settlement,
and one signature cultural activity together with the group's alcohol-free
approach to practising it.
*/
package ethnic

import (
	"time"

	"github.com/prachasan/heritage-api/internal/content/media"
)

// Category is the reference category an ethnic group belongs to.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EthnicGroup is the domain entity for one documented community.
type EthnicGroup struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`

	// Content
	History             string  `json:"history"`
	ActivityName        string  `json:"activityName"`
	ActivityOrigin      string  `json:"activityOrigin"`
	ActivityDetails     string  `json:"activityDetails"`
	AlcoholFreeApproach string  `json:"alcoholFreeApproach"`
	Results             *string `json:"results"`

	// StartYear is the Buddhist Era year the documentation effort started.
	StartYear int `json:"startYear"`

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

	VideoLink *string `json:"videoLink"`
	FileURL   *string `json:"fileUrl"`

	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Category *Category     `json:"category,omitempty"`
	Images   []media.Image `json:"images"`
}
