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
	"strings"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// =============================================================================
// Integrated Matrix
// =============================================================================

// Integrated folds the technology catalog and the case records into a copy
// of the baseline matrix.
//
// # Description
//
// Every technology record is classified by peak-then-start year, mapped to
// its canonical module row (an "Инфраструктура" row is appended on first
// need), and its name appended to the matching cell unless already
// substring-present. Every case is classified by its free-text period; a
// period without a parseable year is a data-quality defect, logged and
// skipped rather than guessed into a bucket. Case module labels append the
// same way, plus a one-time provenance suffix on the cell description.
//
// Each call starts from a fresh copy of base, so repeated calls on the same
// inputs produce identical output.
//
// # Inputs
//
//   - base: Baseline matrix; copied, never mutated.
//   - techs: Technology records to fold in.
//   - cases: Case records to fold in.
//   - logger: Structured logger; nil uses slog.Default().
//
// # Outputs
//
//   - datatypes.EvolutionData: The integrated matrix.
func Integrated(
	base datatypes.EvolutionData,
	techs []datatypes.Technology,
	cases []datatypes.TradingMachine,
	logger *slog.Logger,
) datatypes.EvolutionData {
	if logger == nil {
		logger = slog.Default()
	}

	modules := make([]datatypes.ModuleData, len(base.Modules))
	copy(modules, base.Modules)
	data := datatypes.EvolutionData{Modules: modules}

	for i := range techs {
		t := &techs[i]
		moduleName, ok := revision.ModuleForCategory(revision.Category(t.Category))
		if !ok {
			logger.Warn("technology has unmapped category; skipping matrix placement",
				"id", t.ID, "category", t.Category)
			continue
		}
		key := revision.ForTechnologyYears(t.Periods.Start, t.Periods.Peak)
		row := findOrAddModule(&data, moduleName)
		appendToCell(row, key, t.Name)
	}

	for i := range cases {
		foldCase(&data, &cases[i], logger)
	}

	return data
}

// foldCase appends one case's module labels and provenance into the matrix.
func foldCase(data *datatypes.EvolutionData, c *datatypes.TradingMachine, logger *slog.Logger) {
	key, err := revision.ForPeriod(c.Period)
	if err != nil {
		logger.Warn("case period has no parseable year; skipping matrix contribution",
			"case", c.ID, "period", c.Period)
		return
	}

	provenance := `(из кейса "` + c.Name + `")`

	for _, moduleKey := range revision.CaseModuleKeys {
		labels, _ := c.Modules.ByKey(moduleKey)
		if len(labels) == 0 {
			continue
		}
		rowName, ok := revision.CaseModuleName(moduleKey)
		if !ok {
			continue
		}
		row := findOrAddModule(data, rowName)
		cell := row.Revisions.Cell(string(key))

		set := NewCellSet(cell.Tech)
		for _, label := range labels {
			set.Add(label)
		}
		cell.Tech = set.String()
		if cell.Period == datatypes.PeriodEmpty && set.Len() > 0 {
			cell.Period = classForRevision(key)
		}

		if !strings.Contains(cell.Desc, provenance) {
			if cell.Desc != "" {
				cell.Desc += " "
			}
			cell.Desc += provenance
		}
	}
}

// findOrAddModule returns a pointer to the named row, appending an all-empty
// row when absent. Every appended row still carries all five revision keys.
func findOrAddModule(data *datatypes.EvolutionData, name string) *datatypes.ModuleData {
	if row := data.FindModule(name); row != nil {
		return row
	}
	data.Modules = append(data.Modules, emptyModule(name))
	return &data.Modules[len(data.Modules)-1]
}

func emptyModule(name string) datatypes.ModuleData {
	empty := datatypes.RevisionData{Period: datatypes.PeriodEmpty}
	return datatypes.ModuleData{
		Name: name,
		Revisions: datatypes.ModuleRevisions{
			Rev1: empty, Rev2: empty, Rev3: empty, Rev4: empty, Rev5: empty,
		},
	}
}

// appendToCell adds a single technology name to a row's cell for a revision.
func appendToCell(row *datatypes.ModuleData, key revision.Key, name string) {
	cell := row.Revisions.Cell(string(key))
	set := NewCellSet(cell.Tech)
	if !set.Add(name) {
		return
	}
	cell.Tech = set.String()
	if cell.Period == datatypes.PeriodEmpty {
		cell.Period = classForRevision(key)
	}
}

// classForRevision maps a revision bucket to its display period class,
// matching the classes the authored baseline uses per era.
func classForRevision(key revision.Key) datatypes.PeriodClass {
	switch key {
	case revision.Rev1, revision.Rev2:
		return datatypes.PeriodEarly
	case revision.Rev3, revision.Rev4:
		return datatypes.PeriodModern
	default:
		return datatypes.PeriodCurrent
	}
}
