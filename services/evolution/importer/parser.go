// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package importer turns free-text technology and case descriptions into
// minimally valid catalog records. Parsing is heuristic and lenient: it
// extracts what it recognizes and leaves the rest blank; schema validation
// happens downstream, never here.
package importer

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// Free-Text Parser
// =============================================================================

// ParsedText is what the heuristic parser recovers from free text.
type ParsedText struct {
	// Description is the first plain line of at least 20 characters that
	// carries no colon and no bullet marker.
	Description string

	Advantages    []string
	Disadvantages []string
	UseCases      []string

	// StartYear/EndYear come from the first line mentioning a period; zero
	// when absent.
	StartYear int
	EndYear   int
}

var yearsPattern = regexp.MustCompile(`\d{4}`)

// section keyword markers, matched case-insensitively anywhere in a line.
var (
	advantageMarkers    = []string{"преимущества", "плюсы"}
	disadvantageMarkers = []string{"недостатки", "минусы"}
	useCaseMarkers      = []string{"применение", "использование"}
	periodMarkers       = []string{"период", "годы"}
)

// ParseTechnologyText scans free text for the sections a human author tends
// to write: an opening description, bulleted advantage/disadvantage/use-case
// lists under Russian section headers, and a period line with years.
//
// # Inputs
//
//   - text: Raw unstructured text, typically pasted by an operator.
//
// # Outputs
//
//   - ParsedText: Whatever was recognized; zero-valued fields mean "not
//     found", never an error.
func ParseTechnologyText(text string) ParsedText {
	var result ParsedText
	section := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)

		if matchesAny(lowered, advantageMarkers) {
			section = "advantages"
			continue
		}
		if matchesAny(lowered, disadvantageMarkers) {
			section = "disadvantages"
			continue
		}
		if matchesAny(lowered, useCaseMarkers) {
			section = "useCases"
			continue
		}
		if matchesAny(lowered, periodMarkers) {
			years := yearsPattern.FindAllString(line, -1)
			if len(years) > 0 {
				result.StartYear, _ = strconv.Atoi(years[0])
				if len(years) > 1 {
					result.EndYear, _ = strconv.Atoi(years[len(years)-1])
				}
			}
			continue
		}

		if isBullet(line) {
			content := strings.TrimSpace(line[bulletPrefixLen(line):])
			switch section {
			case "advantages":
				result.Advantages = append(result.Advantages, content)
			case "disadvantages":
				result.Disadvantages = append(result.Disadvantages, content)
			case "useCases":
				result.UseCases = append(result.UseCases, content)
			}
			continue
		}

		if result.Description == "" && !strings.Contains(line, ":") && len([]rune(line)) >= 20 {
			result.Description = line
		}
	}
	return result
}

func matchesAny(lowered string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lowered, m) {
			return true
		}
	}
	return false
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*")
}

// bulletPrefixLen returns the byte length of the bullet marker ("•" is
// multi-byte).
func bulletPrefixLen(line string) int {
	if strings.HasPrefix(line, "•") {
		return len("•")
	}
	return 1
}
