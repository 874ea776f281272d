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
	"log/slog"
	"sort"
	"strings"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// =============================================================================
// Dynamic Matrix
// =============================================================================

// lineageMarker prefixes the row name of a technology that descends from a
// recorded predecessor.
const lineageMarker = "↳ "

// dynEntry is one distinct technology collected for the dynamic matrix.
type dynEntry struct {
	name       string
	module     string
	start      revision.Key
	hasPred    bool
	successors []string
	desc       string
}

// Dynamic builds the per-technology matrix: one row per distinct technology
// name, sourced from the catalog records and from every label inside any
// case's modules.
//
// # Description
//
// Catalog records are collected first, then case labels; the first writer
// for a name wins, so a catalog record is never overwritten by a same-named
// case label. Each row is named "<module>: <technology>" (rows with a
// recorded predecessor carry a lineage marker prefix), fills its start
// revision cell with the plain name, and fills the single next revision cell
// with either "<name> → <successors>" or, lacking successors, the plain name
// to indicate continued use. All other cells stay empty.
//
// Rows sort by module name, roots before descendants, then row name.
//
// # Inputs
//
//   - techs: Technology records; successor references resolve against this
//     set.
//   - cases: Case records contributing free-text labels.
//   - logger: Structured logger; nil uses slog.Default().
//
// # Outputs
//
//   - datatypes.EvolutionData: The dynamic matrix.
func Dynamic(
	techs []datatypes.Technology,
	cases []datatypes.TradingMachine,
	logger *slog.Logger,
) datatypes.EvolutionData {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{})
	var entries []dynEntry

	for i := range techs {
		t := &techs[i]
		if _, dup := seen[t.Name]; dup {
			continue
		}
		moduleName, ok := revision.ModuleForCategory(revision.Category(t.Category))
		if !ok {
			logger.Warn("technology has unmapped category; skipping dynamic row",
				"id", t.ID, "category", t.Category)
			continue
		}
		var successors []string
		for _, ref := range t.Successors() {
			successors = append(successors, ResolveName(ref, techs))
		}
		seen[t.Name] = struct{}{}
		entries = append(entries, dynEntry{
			name:       t.Name,
			module:     moduleName,
			start:      revision.ForTechnologyYears(t.Periods.Start, t.Periods.Peak),
			hasPred:    len(t.Predecessors()) > 0,
			successors: successors,
			desc:       t.Description,
		})
	}

	for i := range cases {
		c := &cases[i]
		key, err := revision.ForPeriod(c.Period)
		if err != nil {
			logger.Warn("case period has no parseable year; skipping dynamic rows",
				"case", c.ID, "period", c.Period)
			continue
		}
		for _, moduleKey := range revision.CaseModuleKeys {
			labels, _ := c.Modules.ByKey(moduleKey)
			rowModule, ok := revision.CaseModuleName(moduleKey)
			if !ok {
				continue
			}
			for _, label := range labels {
				if _, dup := seen[label]; dup {
					continue
				}
				seen[label] = struct{}{}
				entries = append(entries, dynEntry{
					name:   label,
					module: rowModule,
					start:  key,
				})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.module != b.module {
			return a.module < b.module
		}
		if a.hasPred != b.hasPred {
			return !a.hasPred
		}
		return a.name < b.name
	})

	data := datatypes.EvolutionData{Modules: make([]datatypes.ModuleData, 0, len(entries))}
	for _, e := range entries {
		data.Modules = append(data.Modules, dynamicRow(e))
	}
	return data
}

// dynamicRow renders one collected entry as a matrix row.
func dynamicRow(e dynEntry) datatypes.ModuleData {
	name := e.module + ": " + e.name
	if e.hasPred {
		name = lineageMarker + name
	}
	row := emptyModule(name)

	startCell := row.Revisions.Cell(string(e.start))
	startCell.Tech = e.name
	startCell.Period = classForRevision(e.start)
	startCell.Desc = e.desc

	startIdx := revision.Index(e.start)
	if startIdx >= 0 && startIdx+1 < len(revision.Order) {
		next := revision.Order[startIdx+1]
		cell := row.Revisions.Cell(string(next))
		if len(e.successors) > 0 {
			cell.Tech = e.name + " → " + strings.Join(e.successors, ", ")
		} else {
			cell.Tech = e.name
		}
		cell.Period = classForRevision(next)
	}
	return row
}
