// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Trading-machine case record types and the raw-text import request.
package datatypes

// =============================================================================
// Trading Machine Case Types
// =============================================================================

// TechnologyStack is one entry of a case's technology inventory.
type TechnologyStack struct {
	Name    string `json:"name" validate:"required"`
	Version string `json:"version,omitempty"`
	Purpose string `json:"purpose" validate:"required"`

	// Category here is a subset of the catalog categories: case stacks
	// never carry risk/execution/adaptation entries directly.
	Category string `json:"category" validate:"required,oneof=data processing ml visualization infrastructure"`
}

// CaseModules maps a case's implementation onto the matrix rows. The eight
// keys are fixed; each holds free-text technology labels, not catalog ids.
type CaseModules struct {
	DataCollection     []string `json:"dataCollection" validate:"required"`
	DataProcessing     []string `json:"dataProcessing" validate:"required"`
	FeatureEngineering []string `json:"featureEngineering" validate:"required"`
	SignalGeneration   []string `json:"signalGeneration" validate:"required"`
	RiskManagement     []string `json:"riskManagement" validate:"required"`
	Execution          []string `json:"execution" validate:"required"`
	MarketAdaptation   []string `json:"marketAdaptation" validate:"required"`
	Visualization      []string `json:"visualization" validate:"required"`
}

// ByKey returns the label list for a camelCase module key, or ok=false for
// an unknown key.
func (m *CaseModules) ByKey(key string) ([]string, bool) {
	switch key {
	case "dataCollection":
		return m.DataCollection, true
	case "dataProcessing":
		return m.DataProcessing, true
	case "featureEngineering":
		return m.FeatureEngineering, true
	case "signalGeneration":
		return m.SignalGeneration, true
	case "riskManagement":
		return m.RiskManagement, true
	case "execution":
		return m.Execution, true
	case "marketAdaptation":
		return m.MarketAdaptation, true
	case "visualization":
		return m.Visualization, true
	}
	return nil, false
}

// Performance holds optional backtest/live metrics of a case.
type Performance struct {
	Accuracy    float64 `json:"accuracy,omitempty"`
	Precision   float64 `json:"precision,omitempty"`
	Recall      float64 `json:"recall,omitempty"`
	F1Score     float64 `json:"f1Score,omitempty"`
	SharpeRatio float64 `json:"sharpeRatio,omitempty"`
	MaxDrawdown float64 `json:"maxDrawdown,omitempty"`
}

// TradingMachine describes one documented trading-system case study.
//
// # Description
//
// A case records a concrete machine someone built: its free-text period
// ("2015-2017", "2020+"), the technology stack, and a per-module breakdown
// that the matrix assemblers fold into the evolution view. Period is
// deliberately free text; classification extracts the first 4-digit year.
type TradingMachine struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description" validate:"required"`
	Strategy    string `json:"strategy" validate:"required"`
	Timeframe   string `json:"timeframe" validate:"required"`
	MarketType  string `json:"marketType" validate:"required"`

	Technologies []TechnologyStack `json:"technologies" validate:"required,dive"`
	Modules      CaseModules       `json:"modules" validate:"required"`

	Performance *Performance `json:"performance,omitempty"`

	CodeExample   string   `json:"codeExample,omitempty"`
	Advantages    []string `json:"advantages" validate:"required"`
	Disadvantages []string `json:"disadvantages" validate:"required"`
}

// Validate checks a TradingMachine record against its schema. Imported cases
// must pass this before being appended to the case store.
func (c *TradingMachine) Validate() error {
	return evoValidate.Struct(c)
}

// =============================================================================
// Import Request Type
// =============================================================================

// ImportRequest is the body of POST /api/import/trading-machine.
//
// # Fields
//
//   - RawText: Unstructured description of a trading machine. Required,
//     capped at MaxImportTextBytes.
//   - Name: Optional display name; derived from the text when absent.
//   - Period: Optional period override, free text.
type ImportRequest struct {
	RawText string `json:"rawText" validate:"required,maxbytes"`
	Name    string `json:"name,omitempty"`
	Period  string `json:"period,omitempty"`
}

// Validate checks an ImportRequest.
func (r *ImportRequest) Validate() error {
	return evoValidate.Struct(r)
}
