// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides data structures for the evolution service.
//
// This file contains the technology catalog record types. For trading-machine
// case types see trading_machine.go; for matrix output shapes see matrix.go.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// MaxImportTextBytes is the maximum size of an imported raw-text body.
	MaxImportTextBytes = 256 * 1024 // 256KB

	// ImportDescriptionLimit is the number of leading characters of an
	// imported raw text kept as a case's description.
	ImportDescriptionLimit = 2000
)

// =============================================================================
// Shared Validator Instance
// =============================================================================

// evoValidate is the validator instance for evolution datatypes.
// Initialized in init() with custom validators.
var evoValidate *validator.Validate

func init() {
	evoValidate = validator.New()

	_ = evoValidate.RegisterValidation("maxbytes", validateMaxBytes)
}

// validateMaxBytes validates that a string field does not exceed
// MaxImportTextBytes. Checks byte length (not rune count) so oversized
// payloads are rejected before any copying.
func validateMaxBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxImportTextBytes
}

// =============================================================================
// Technology Catalog Types
// =============================================================================

// TechnologyPeriods records the adoption timeline of a technology.
//
// # Fields
//
//   - Start: First year of use. Mandatory.
//   - Peak: Peak-adoption year. Zero when unrecorded.
//   - Decline: Year decline began, if any.
//   - End: Year of obsolescence, if any.
type TechnologyPeriods struct {
	Start   int `json:"start" validate:"required,gte=1950,lte=2100"`
	Peak    int `json:"peak,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	Decline int `json:"decline,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	End     int `json:"end,omitempty" validate:"omitempty,gte=1950,lte=2100"`
}

// TechnologyEvolution links a technology to its lineage. Entries may be
// record ids, display names, or partial names; resolution happens in the
// matrix assembler, not here.
type TechnologyEvolution struct {
	Predecessors []string `json:"predecessors,omitempty"`
	Successors   []string `json:"successors,omitempty"`
	Variants     []string `json:"variants,omitempty"`
}

// Technology is one record of the curated technology catalog.
//
// # Description
//
// Each record names a concrete technique or tool (e.g. "LSTM", "CCXT"),
// classifies it into a stack-layer category, and carries its adoption
// timeline plus lineage links. Matrix assembly derives the revision bucket
// from Periods; the record itself stores no bucket.
type Technology struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	FullName    string `json:"fullName,omitempty"`
	Description string `json:"description" validate:"required"`

	Category string `json:"category" validate:"required,oneof=data processing ml visualization infrastructure risk execution adaptation"`

	Periods   TechnologyPeriods    `json:"periods" validate:"required"`
	Evolution *TechnologyEvolution `json:"evolution,omitempty"`

	// ApplicableModules lists the matrix rows the technology can serve,
	// including virtual groupings like "Feature Engineering".
	ApplicableModules []string `json:"applicableModules" validate:"required"`

	Advantages    []string `json:"advantages" validate:"required"`
	Disadvantages []string `json:"disadvantages" validate:"required"`
	UseCases      []string `json:"useCases" validate:"required"`
	Sources       []string `json:"sources,omitempty"`
}

// Validate checks a Technology record against its schema.
//
// # Outputs
//
//   - error: nil if valid, validator.ValidationErrors otherwise.
func (t *Technology) Validate() error {
	return evoValidate.Struct(t)
}

// Predecessors returns the lineage predecessors, tolerating a nil Evolution.
func (t *Technology) Predecessors() []string {
	if t.Evolution == nil {
		return nil
	}
	return t.Evolution.Predecessors
}

// Successors returns the lineage successors, tolerating a nil Evolution.
func (t *Technology) Successors() []string {
	if t.Evolution == nil {
		return nil
	}
	return t.Evolution.Successors
}
