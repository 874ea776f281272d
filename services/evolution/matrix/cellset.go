// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package matrix derives the integrated and dynamic evolution matrices and
// the flattened technology rows from the catalog stores. All derivations
// are pure, synchronous, and recomputed per request; nothing in this
// package holds state.
package matrix

import (
	"strings"
)

// =============================================================================
// Cell Set
// =============================================================================

// CellSet is the working representation of a matrix cell's technology list:
// an ordered list of names joined to a display string only at the
// serialization boundary.
//
// # Description
//
// Membership is a case-insensitive substring check against the joined text,
// so a name already embedded in authored cell content ("CCXT" inside
// "WebSocket, FIX, CCXT") is never appended again. Near-duplicate names that
// are not substrings of each other remain distinct entries.
type CellSet struct {
	entries []string
}

// NewCellSet seeds a set with a cell's existing display text as a single
// authored entry. Empty text yields an empty set.
func NewCellSet(text string) *CellSet {
	s := &CellSet{}
	if text != "" {
		s.entries = append(s.entries, text)
	}
	return s
}

// Contains reports whether name already appears, case-insensitively, as a
// substring of the joined cell text.
func (s *CellSet) Contains(name string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s.String()), strings.ToLower(name))
}

// Add appends name unless it is already substring-present. Returns true when
// the name was appended.
func (s *CellSet) Add(name string) bool {
	if name == "" || s.Contains(name) {
		return false
	}
	s.entries = append(s.entries, name)
	return true
}

// Len returns the number of entries.
func (s *CellSet) Len() int {
	return len(s.entries)
}

// String joins the entries with ", " for display.
func (s *CellSet) String() string {
	return strings.Join(s.entries, ", ")
}
