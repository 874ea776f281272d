// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Matrix output shapes: the five-revision evolution grid and the
// technology tree.
package datatypes

// =============================================================================
// Evolution Matrix Types
// =============================================================================

// PeriodClass is the coarse display classification of a matrix cell.
type PeriodClass string

const (
	PeriodEmpty   PeriodClass = "empty"
	PeriodEarly   PeriodClass = "early"
	PeriodModern  PeriodClass = "modern"
	PeriodCurrent PeriodClass = "current"
)

// RevisionData is one cell of the evolution matrix.
//
// # Fields
//
//   - Tech: Comma-joined technology names shown in the cell.
//   - Period: Display classification (empty/early/modern/current).
//   - Desc: Short free-text description, possibly with case provenance
//     suffixes appended by the integrated assembler.
type RevisionData struct {
	Tech   string      `json:"tech"`
	Period PeriodClass `json:"period" validate:"required,oneof=empty early modern current"`
	Desc   string      `json:"desc"`
}

// ModuleRevisions holds a module row's five cells, keyed rev1..rev5.
type ModuleRevisions struct {
	Rev1 RevisionData `json:"rev1"`
	Rev2 RevisionData `json:"rev2"`
	Rev3 RevisionData `json:"rev3"`
	Rev4 RevisionData `json:"rev4"`
	Rev5 RevisionData `json:"rev5"`
}

// Cell returns a pointer to the cell for a revision key, or nil for an
// unknown key. The pointer aliases the receiver; assemblers mutate through
// it.
func (r *ModuleRevisions) Cell(key string) *RevisionData {
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

// ModuleData is one row of the evolution matrix.
type ModuleData struct {
	Name      string          `json:"name" validate:"required"`
	Revisions ModuleRevisions `json:"revisions"`
}

// EvolutionData is the full matrix: an ordered list of module rows.
type EvolutionData struct {
	Modules []ModuleData `json:"modules"`
}

// FindModule returns the row with the given name, or nil when absent.
func (e *EvolutionData) FindModule(name string) *ModuleData {
	for i := range e.Modules {
		if e.Modules[i].Name == name {
			return &e.Modules[i]
		}
	}
	return nil
}

// =============================================================================
// Technology Tree Types
// =============================================================================

// TreeNode is one node of the hierarchical technology tree served by
// /api/tree-data. Leaves carry a Value for treemap-style rendering.
type TreeNode struct {
	Name        string     `json:"name"`
	Children    []TreeNode `json:"children,omitempty"`
	Value       int        `json:"value,omitempty"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
}
