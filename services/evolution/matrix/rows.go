// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package matrix

import (
	"sort"
	"strings"
	"time"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// =============================================================================
// Technology Row Builder
// =============================================================================

// fallbackModule is the row label for technologies whose category maps to no
// canonical module.
const fallbackModule = "Другое"

// moduleFor maps a record's category to its canonical module row name.
func moduleFor(t *datatypes.Technology) string {
	m, ok := revision.ModuleForCategory(revision.Category(t.Category))
	if !ok {
		return fallbackModule
	}
	return m
}

// BuildRows flattens technology records into the per-technology row view.
//
// # Description
//
// Without a filter, records group by canonical module in first-seen order,
// sort within each group by start year, and fill every revision bucket their
// usage interval intersects: the start revision gets the plain name; later
// intersecting buckets get "<name> → <successors>" when successors exist,
// else the plain name again. Successor references resolve against the full
// record set (id, exact name, then reciprocal substring); a resolved
// successor not yet emitted gets its own row right after its parent, with
// predecessors seeded from the parent when its own record lists none.
//
// With a filter, the result is a revision-blind listing: one row per record
// whose canonical module equals the filter or whose applicableModules
// contains it, all revision cells blank.
//
// # Inputs
//
//   - techs: Technology records.
//   - moduleFilter: Optional module display name; empty means the full view.
//
// # Outputs
//
//   - []datatypes.TechnologyRow: Derived rows; never nil, so callers
//     serialize an empty result as [] rather than null.
func BuildRows(techs []datatypes.Technology, moduleFilter string) []datatypes.TechnologyRow {
	if len(techs) == 0 {
		return []datatypes.TechnologyRow{}
	}

	if moduleFilter != "" {
		return buildFilteredRows(techs, moduleFilter)
	}
	return buildEvolutionRows(techs)
}

func buildFilteredRows(techs []datatypes.Technology, filter string) []datatypes.TechnologyRow {
	rows := []datatypes.TechnologyRow{}
	for i := range techs {
		t := &techs[i]
		module := moduleFor(t)
		if module != filter && !containsString(t.ApplicableModules, filter) {
			continue
		}
		rows = append(rows, newRow(t, module))
	}
	return rows
}

func buildEvolutionRows(techs []datatypes.Technology) []datatypes.TechnologyRow {
	currentYear := time.Now().Year()

	// Group by module, preserving first-seen module order.
	var moduleOrder []string
	groups := make(map[string][]*datatypes.Technology)
	for i := range techs {
		t := &techs[i]
		module := moduleFor(t)
		if _, ok := groups[module]; !ok {
			moduleOrder = append(moduleOrder, module)
		}
		groups[module] = append(groups[module], t)
	}

	var rows []datatypes.TechnologyRow
	processed := make(map[string]struct{})

	for _, module := range moduleOrder {
		group := groups[module]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Periods.Start < group[j].Periods.Start
		})

		for _, t := range group {
			if _, done := processed[t.ID]; done {
				continue
			}
			row := newRow(t, module)
			fillRevisionCells(&row, t, currentYear)
			rows = append(rows, row)
			processed[t.ID] = struct{}{}

			// Successor rows follow their parent immediately.
			for _, ref := range t.Successors() {
				successor := Resolve(ref, techs)
				if successor == nil {
					continue
				}
				if _, done := processed[successor.ID]; done {
					continue
				}
				srow := newRow(successor, module)
				if len(srow.Predecessors) == 0 {
					srow.Predecessors = []string{t.ID}
				}
				startRev := revision.ForTechnologyYears(successor.Periods.Start, successor.Periods.Peak)
				*srow.Revisions.Cell(string(startRev)) = successor.Name
				rows = append(rows, srow)
				processed[successor.ID] = struct{}{}
			}
		}
	}
	return rows
}

// fillRevisionCells populates a row's cells for every revision bucket the
// record's usage interval intersects.
func fillRevisionCells(row *datatypes.TechnologyRow, t *datatypes.Technology, currentYear int) {
	startRev := revision.ForTechnologyYears(t.Periods.Start, t.Periods.Peak)
	endYear := t.Periods.End
	if endYear == 0 {
		endYear = currentYear
	}

	for _, key := range revision.Order {
		if !revision.Intersects(key, t.Periods.Start, endYear) {
			continue
		}
		cell := row.Revisions.Cell(string(key))
		meta := revision.Revisions[key]
		switch {
		case key == startRev:
			*cell = t.Name
		case meta.Years[0] > t.Periods.Start:
			if successors := t.Successors(); len(successors) > 0 {
				*cell = t.Name + " → " + strings.Join(successors, ", ")
			} else {
				*cell = t.Name
			}
		}
	}
}

func newRow(t *datatypes.Technology, module string) datatypes.TechnologyRow {
	applicable := t.ApplicableModules
	if len(applicable) == 0 {
		applicable = []string{module}
	}
	preds := t.Predecessors()
	if preds == nil {
		preds = []string{}
	}
	succs := t.Successors()
	if succs == nil {
		succs = []string{}
	}
	return datatypes.TechnologyRow{
		ID:                t.ID,
		Name:              t.Name,
		Category:          t.Category,
		Module:            module,
		ApplicableModules: applicable,
		Predecessors:      preds,
		Successors:        succs,
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
