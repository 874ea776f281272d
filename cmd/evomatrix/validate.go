// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/evomatrix/pkg/ux"
	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/matrix"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// validationReport accumulates findings across all checks.
type validationReport struct {
	checks   int
	warnings int
	errors   int
}

func (r *validationReport) warn(subject, detail string) {
	r.warnings++
	ux.CheckStatus(ux.IconWarning, subject, detail)
}

func (r *validationReport) fail(subject, detail string) {
	r.errors++
	ux.CheckStatus(ux.IconError, subject, detail)
}

// runValidate checks the seed catalogs for consistency issues.
//
// Period-ordering violations are warnings, not errors: the curated data
// contains peak-only records and is served as-is. Unparseable case
// periods are errors because the matrix assembler would skip those
// cases entirely.
func runValidate(cmd *cobra.Command, args []string) {
	ux.Title("Catalog consistency check")

	report := &validationReport{}
	techs := catalog.NewTechnologyStore().All()

	checkTechnologies(report, techs)
	checkCases(report, techs)

	ux.Summary(report.checks, report.warnings, report.errors)

	if report.errors > 0 || (strictMode && report.warnings > 0) {
		os.Exit(1)
	}
	ux.Success("catalog is consistent")
}

func checkTechnologies(report *validationReport, techs []datatypes.Technology) {
	for i := range techs {
		t := &techs[i]
		subject := "technology " + t.ID
		report.checks++

		if err := t.Validate(); err != nil {
			report.fail(subject, "schema: "+err.Error())
		}
		checkPeriodOrdering(report, subject, t.Periods)

		if _, ok := revision.ModuleForCategory(revision.Category(t.Category)); !ok {
			report.fail(subject, "category has no module mapping: "+t.Category)
		}

		for _, module := range t.ApplicableModules {
			if !knownModuleName(module) {
				report.warn(subject, "unknown applicable module: "+module)
			}
		}

		if t.Evolution != nil {
			refs := append(append(append([]string{},
				t.Evolution.Predecessors...),
				t.Evolution.Successors...),
				t.Evolution.Variants...)
			for _, ref := range refs {
				if matrix.Resolve(ref, techs) == nil {
					report.warn(subject, "unresolved evolution link: "+ref)
				}
			}
		}
	}
}

// checkPeriodOrdering warns when start <= peak <= decline <= end does
// not hold among the years that are present.
func checkPeriodOrdering(report *validationReport, subject string, p datatypes.TechnologyPeriods) {
	last := p.Start
	for _, year := range []int{p.Peak, p.Decline, p.End} {
		if year == 0 {
			continue
		}
		if year < last {
			report.warn(subject, fmt.Sprintf("period ordering violated: %d before %d", year, last))
			return
		}
		last = year
	}
}

func checkCases(report *validationReport, techs []datatypes.Technology) {
	store, err := catalog.NewCaseStore(resolveCasesPath(), nil)
	if err != nil {
		report.fail("case store", err.Error())
		return
	}

	for _, c := range store.All() {
		subject := "case " + c.ID
		report.checks++

		if err := c.Validate(); err != nil {
			report.fail(subject, "schema: "+err.Error())
		}
		if _, err := revision.ForPeriod(c.Period); err != nil {
			report.fail(subject, "unparseable period: "+c.Period)
		}
	}
}

// resolveCasesPath picks the imported-cases file for validation, using
// the flag when given and the config default otherwise.
func resolveCasesPath() string {
	if casesPath != "" {
		return casesPath
	}
	return loadFileConfig().Storage.ImportedCasesPath
}

// knownModuleName loosely matches a free-form module string against the
// canonical module list, the way the row builder does.
func knownModuleName(name string) bool {
	for _, module := range revision.UIModules {
		if strings.EqualFold(module, name) {
			return true
		}
	}
	for _, key := range revision.CaseModuleKeys {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}
