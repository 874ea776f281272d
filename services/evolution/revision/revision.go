// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package revision defines the five revision buckets of the evolution matrix
// and the classification rules that place years, periods, and technologies
// into them.
//
// # Description
//
// The matrix divides 2000-2025 into five contiguous, non-overlapping
// revisions (rev1..rev5). This package holds the single authoritative
// year-range table; every other component classifies through it rather than
// keeping inline copies. Historical UI labels that disagreed with this table
// (e.g. "Rev 2 (2015-2020)") were display bugs and are not reproduced.
//
// # Thread Safety
//
// All data is immutable after package initialization. All functions are pure.
package revision

import (
	"fmt"
	"regexp"
)

// =============================================================================
// Revision Table
// =============================================================================

// Key identifies one of the five revision buckets.
type Key string

const (
	Rev1 Key = "rev1"
	Rev2 Key = "rev2"
	Rev3 Key = "rev3"
	Rev4 Key = "rev4"
	Rev5 Key = "rev5"
)

// Meta describes a single revision bucket.
//
// # Fields
//
//   - Key: The bucket identifier (rev1..rev5).
//   - Label: Human-readable label shown in matrix headers.
//   - Period: Display string of the inclusive year range.
//   - Years: Inclusive [start, end] year range.
type Meta struct {
	Key    Key    `json:"key"`
	Label  string `json:"label"`
	Period string `json:"period"`
	Years  [2]int `json:"years"`
}

// Order lists the revision keys in chronological order.
var Order = []Key{Rev1, Rev2, Rev3, Rev4, Rev5}

// Revisions is the authoritative revision table. Ranges are inclusive,
// contiguous, and non-overlapping; rev5 is treated as open-ended when
// classifying future years.
var Revisions = map[Key]Meta{
	Rev1: {Key: Rev1, Label: "Rev 1 (2015)", Period: "2000-2015", Years: [2]int{2000, 2015}},
	Rev2: {Key: Rev2, Label: "Rev 2 (2020)", Period: "2016-2020", Years: [2]int{2016, 2020}},
	Rev3: {Key: Rev3, Label: "Rev 3 (2022)", Period: "2021-2022", Years: [2]int{2021, 2022}},
	Rev4: {Key: Rev4, Label: "Rev 4 (2023)", Period: "2023-2023", Years: [2]int{2023, 2023}},
	Rev5: {Key: Rev5, Label: "Rev 5 (2024)", Period: "2024-2025", Years: [2]int{2024, 2025}},
}

// Index returns the chronological position of a key (0 for rev1 .. 4 for
// rev5), or -1 for an unknown key.
func Index(k Key) int {
	for i, key := range Order {
		if key == k {
			return i
		}
	}
	return -1
}

// Valid reports whether k is one of the five defined revision keys.
func Valid(k Key) bool {
	return Index(k) >= 0
}

// =============================================================================
// Classification
// =============================================================================

// ForYear classifies a calendar year into a revision bucket.
//
// # Description
//
// Walks the buckets in chronological order and returns the first whose upper
// bound is >= year. Years past 2025 fall into rev5 (open-ended future
// bucket); years before 2000 clamp to rev1. The function is total: every
// integer year maps to exactly one bucket.
//
// # Inputs
//
//   - year: Calendar year, any integer.
//
// # Outputs
//
//   - Key: The bucket containing (or clamped to contain) the year.
func ForYear(year int) Key {
	for _, k := range Order {
		if year <= Revisions[k].Years[1] {
			return k
		}
	}
	return Rev5
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// ForPeriod classifies a free-text period string such as "2015-2017" or
// "2020+".
//
// # Description
//
// Extracts the first 4-digit number from the string and classifies it with
// ForYear. A string with no 4-digit substring (the crude importer's "unknown"
// fallback is the common offender) is a data-quality error: callers must skip
// that record's contribution rather than guessing a bucket. The previous
// behavior of parseInt-style silent NaN propagation is deliberately not
// reproduced.
//
// # Inputs
//
//   - period: Free-text period, expected "YYYY-YYYY" or "YYYY+".
//
// # Outputs
//
//   - Key: Bucket of the period's start year.
//   - error: *PeriodError when no year could be extracted.
func ForPeriod(period string) (Key, error) {
	match := yearPattern.FindString(period)
	if match == "" {
		return "", &PeriodError{Period: period}
	}
	year := 0
	for _, ch := range match {
		year = year*10 + int(ch-'0')
	}
	return ForYear(year), nil
}

// PeriodError reports a period string that yields no parseable year.
type PeriodError struct {
	Period string
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("no 4-digit year in period %q", e.Period)
}

// ForTechnologyYears classifies a technology by its peak year, falling back
// to its start year. A technology is bucketed by when it was most prominent,
// not when it first appeared.
//
// # Inputs
//
//   - start: Mandatory first year of use.
//   - peak: Peak-adoption year, or 0 when unrecorded.
func ForTechnologyYears(start, peak int) Key {
	if peak != 0 {
		return ForYear(peak)
	}
	return ForYear(start)
}

// Intersects reports whether the bucket's inclusive year range overlaps the
// inclusive [from, to] interval.
func Intersects(k Key, from, to int) bool {
	meta, ok := Revisions[k]
	if !ok {
		return false
	}
	return from <= meta.Years[1] && to >= meta.Years[0]
}
