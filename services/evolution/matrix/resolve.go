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
	"strings"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
)

// =============================================================================
// Reference Resolution
// =============================================================================

// Resolve maps a lineage reference string to a technology record.
//
// # Description
//
// Lineage references in the catalog are weak: some are record ids
// ("random-forest"), some display names ("Random Forest"), some partial
// names. Resolution tries three tiers in order, first match wins:
//
//  1. Exact id match.
//  2. Exact case-sensitive name match.
//  3. Case-insensitive reciprocal substring match (either string contains
//     the other).
//
// An unresolved reference is not an error; callers keep the raw label.
//
// # Inputs
//
//   - ref: The reference string from a record's evolution links.
//   - techs: Candidate records, scanned in order within each tier.
//
// # Outputs
//
//   - *datatypes.Technology: The matched record, or nil.
func Resolve(ref string, techs []datatypes.Technology) *datatypes.Technology {
	if ref == "" {
		return nil
	}
	for i := range techs {
		if techs[i].ID == ref {
			return &techs[i]
		}
	}
	for i := range techs {
		if techs[i].Name == ref {
			return &techs[i]
		}
	}
	lowered := strings.ToLower(ref)
	for i := range techs {
		name := strings.ToLower(techs[i].Name)
		if strings.Contains(name, lowered) || strings.Contains(lowered, name) {
			return &techs[i]
		}
	}
	return nil
}

// ResolveName returns the display name a reference resolves to, or the raw
// reference itself when unresolved.
func ResolveName(ref string, techs []datatypes.Technology) string {
	if t := Resolve(ref, techs); t != nil {
		return t.Name
	}
	return ref
}
