// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// RowRevisions holds a technology row's five display cells, keyed rev1..rev5.
type RowRevisions struct {
	Rev1 string `json:"rev1"`
	Rev2 string `json:"rev2"`
	Rev3 string `json:"rev3"`
	Rev4 string `json:"rev4"`
	Rev5 string `json:"rev5"`
}

// Cell returns a pointer to the cell for a revision key, or nil for an
// unknown key.
func (r *RowRevisions) Cell(key string) *string {
	switch key {
	case "rev1":
		return &r.Rev1
	case "rev2":
		return &r.Rev2
	case "rev3":
		return &r.Rev3
	case "rev4":
		return &r.Rev4
	case "rev5":
		return &r.Rev5
	}
	return nil
}

// TechnologyRow is the flattened technology-by-revision view. Derived per
// request, never stored.
type TechnologyRow struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Category          string       `json:"category"`
	Module            string       `json:"module"`
	ApplicableModules []string     `json:"applicableModules"`
	Revisions         RowRevisions `json:"revisions"`
	Predecessors      []string     `json:"predecessors"`
	Successors        []string     `json:"successors"`
}
