// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

// Package thaiyear converts Buddhist-calendar years to their Gregorian
// equivalents for date-range filtering.
//
// # Background
//
// Thai public records carry Buddhist Era (B.E.) years, offset from the
// Gregorian calendar by +543 (B.E. 2564 is A.D. 2021). Records stored with a
// full calendar date are filtered by converting the requested B.E. year into
// a half-open Gregorian date range covering that year.
package thaiyear

import "time"

// Offset is the difference between a Buddhist Era year and its Gregorian
// counterpart.
const Offset = 543

// ToGregorian converts a Buddhist Era year to the Gregorian year.
func ToGregorian(beYear int) int {
	return beYear - Offset
}

// GregorianRange returns the half-open UTC date range [Jan 1st, next Jan 1st)
// covering the Gregorian year that corresponds to beYear.
//
// The upper bound is exclusive: a date of exactly the following January 1st
// is outside the range.
func GregorianRange(beYear int) (from, until time.Time) {
	adYear := ToGregorian(beYear)
	from = time.Date(adYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	until = time.Date(adYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, until
}
