// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
)

// =============================================================================
// Case Builder
// =============================================================================

// fallbackPeriod marks an imported case whose text yields no year. Such a
// case is served verbatim but contributes nothing to matrix assembly (no
// parseable year means no revision bucket).
const fallbackPeriod = "unknown"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9а-яё]+`)

// BuildCase constructs a minimally valid trading-machine case from an import
// request.
//
// # Description
//
// The raw text is parsed heuristically for a name, description, period, and
// pro/con lists; everything the text does not supply gets a neutral
// placeholder so the record passes full schema validation. The description
// keeps the first ImportDescriptionLimit characters of the raw text. The
// caller validates the result against the schema before persisting; this
// function never touches the file.
//
// # Inputs
//
//   - req: Import request. RawText must be non-empty (checked upstream by
//     req.Validate()); Name and Period override the parsed values.
//
// # Outputs
//
//   - datatypes.TradingMachine: The constructed case.
func BuildCase(req *datatypes.ImportRequest) datatypes.TradingMachine {
	parsed := ParseTechnologyText(req.RawText)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = firstLine(req.RawText)
	}
	if name == "" {
		name = "Imported Trading Machine"
	}

	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = periodFromYears(parsed.StartYear, parsed.EndYear)
	}

	description := req.RawText
	if runes := []rune(description); len(runes) > datatypes.ImportDescriptionLimit {
		description = string(runes[:datatypes.ImportDescriptionLimit])
	}

	empty := func() []string { return []string{} }

	return datatypes.TradingMachine{
		ID:          slugify(name) + "-" + uuid.NewString()[:8],
		Name:        name,
		Period:      period,
		Description: description,
		Strategy:    "Импортировано из текстового описания",
		Timeframe:   fallbackPeriod,
		MarketType:  fallbackPeriod,

		Technologies: []datatypes.TechnologyStack{},
		Modules: datatypes.CaseModules{
			DataCollection:     empty(),
			DataProcessing:     empty(),
			FeatureEngineering: empty(),
			SignalGeneration:   empty(),
			RiskManagement:     empty(),
			Execution:          empty(),
			MarketAdaptation:   empty(),
			Visualization:      empty(),
		},

		Advantages:    orDefault(parsed.Advantages, "Не указаны"),
		Disadvantages: orDefault(parsed.Disadvantages, "Не указаны"),
	}
}

// firstLine returns the first non-empty trimmed line, capped at 80 runes.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if runes := []rune(line); len(runes) > 80 {
			return string(runes[:80])
		}
		return line
	}
	return ""
}

func periodFromYears(start, end int) string {
	switch {
	case start == 0:
		return fallbackPeriod
	case end == 0:
		return fmt.Sprintf("%d+", start)
	default:
		return fmt.Sprintf("%d-%d", start, end)
	}
}

// slugify lowercases the name and collapses everything outside letters and
// digits into single hyphens.
func slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "case"
	}
	return slug
}

func orDefault(list []string, fallback string) []string {
	if len(list) == 0 {
		return []string{fallback}
	}
	return list
}
