// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package creative implements the creative-activity content domain.

Creative activities are community projects (youth camps, craft workshops,
performance troupes) classified by a two-level category tree: every activity
belongs to one category and one subcategory within it.
*/
package creative

import (
	"time"

	"github.com/prachasan/heritage-api/internal/content/media"
)

// Category is a top-level activity classification.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SubCategory is a second-level classification nested under a [Category].
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreativeActivity is the domain entity for one recorded activity.
type CreativeActivity struct {
	ID            string `json:"id"`
	CategoryID    string `json:"categoryId"`
	SubCategoryID string `json:"subCategoryId"`
	Name          string `json:"name"`

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
	Description string  `json:"description"`
	Summary     string  `json:"summary"`
	Results     *string `json:"results"`

	// StartYear is the Buddhist Era year the activity started.
	StartYear int `json:"startYear"`

	VideoLink     *string `json:"videoLink"`
	ReportFileURL *string `json:"reportFileUrl"`

	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Category    *Category     `json:"category,omitempty"`
	SubCategory *SubCategory  `json:"subCategory,omitempty"`
	Images      []media.Image `json:"images"`
}
