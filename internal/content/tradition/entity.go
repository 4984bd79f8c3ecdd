// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package tradition implements the cultural-tradition content domain.

A tradition is a community practice (festival, rite, local ceremony) recorded
by the foundation together with its location, its alcohol-free approach, and
supporting images and documents. The package follows the standard content
layout: entity, HTTP handler, service, and PostgreSQL repository.
*/
package tradition

import (
	"time"

	"github.com/prachasan/heritage-api/internal/content/media"
)

// Category is the reference category a tradition belongs to.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tradition is the domain entity for one recorded cultural tradition.
//
// Pointer fields are optional attributes stored as NULL when absent.
type Tradition struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`

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

	// Contact
	CoordinatorName *string `json:"coordinatorName"`
	Phone           *string `json:"phone"`

	// Content
	History             string  `json:"history"`
	AlcoholFreeApproach string  `json:"alcoholFreeApproach"`
	Results             *string `json:"results"`

	// StartYear is the Buddhist Era year the practice started.
	StartYear int `json:"startYear"`

	VideoLink     *string `json:"videoLink"`
	PolicyFileURL *string `json:"policyFileUrl"`

	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Category *Category     `json:"category,omitempty"`
	Images   []media.Image `json:"images"`
}
