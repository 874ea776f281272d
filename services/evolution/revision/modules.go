// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package revision

// =============================================================================
// Module / Category Vocabulary
// =============================================================================
//
// The matrix rows carry Russian display names; technology records carry
// English category codes; trading-machine cases carry camelCase module keys.
// The three vocabularies meet here.

// Category is the stack-layer code attached to technology records.
type Category string

const (
	CategoryData           Category = "data"
	CategoryProcessing     Category = "processing"
	CategoryML             Category = "ml"
	CategoryVisualization  Category = "visualization"
	CategoryRisk           Category = "risk"
	CategoryExecution      Category = "execution"
	CategoryAdaptation     Category = "adaptation"
	CategoryInfrastructure Category = "infrastructure"
)

// categoryToModule maps a category code to the matrix row it feeds.
var categoryToModule = map[Category]string{
	CategoryData:           "Сбор данных",
	CategoryProcessing:     "Обработка данных",
	CategoryML:             "Генерация сигналов",
	CategoryVisualization:  "Визуализация и мониторинг",
	CategoryRisk:           "Риск-менеджмент",
	CategoryExecution:      "Исполнение сделок",
	CategoryAdaptation:     "Адаптация к рынку",
	CategoryInfrastructure: "Инфраструктура",
}

// ModuleForCategory resolves a category code to its matrix row name. The
// second return is false for unknown categories; callers log and skip those
// rather than inventing rows.
func ModuleForCategory(c Category) (string, bool) {
	m, ok := categoryToModule[c]
	return m, ok
}

// UIModules lists the nine matrix row names in canonical display order.
// "Feature Engineering" is a virtual grouping over processing+ml; the
// "Инфраструктура" row exists only as an aggregation target for
// infrastructure-category technologies.
var UIModules = []string{
	"Сбор данных",
	"Обработка данных",
	"Feature Engineering",
	"Генерация сигналов",
	"Риск-менеджмент",
	"Исполнение сделок",
	"Адаптация к рынку",
	"Визуализация и мониторинг",
	"Инфраструктура",
}

// ModuleCategories maps a matrix row (or virtual grouping) back to the
// categories whose technologies belong in it. "Feature Engineering" is a
// virtual filter-only grouping that aggregates both processing and ml.
var ModuleCategories = map[string][]Category{
	"Сбор данных":               {CategoryData},
	"Обработка данных":          {CategoryProcessing},
	"Генерация сигналов":        {CategoryML},
	"Визуализация и мониторинг": {CategoryVisualization},
	"Риск-менеджмент":           {CategoryRisk},
	"Исполнение сделок":         {CategoryExecution},
	"Адаптация к рынку":         {CategoryAdaptation},
	"Инфраструктура":            {CategoryInfrastructure},
	"Feature Engineering":       {CategoryProcessing, CategoryML},
}

// caseModuleNames maps the camelCase module keys used by trading-machine
// cases to matrix row names. "featureEngineering" maps to the virtual
// Feature Engineering grouping, which has no baseline row of its own.
var caseModuleNames = map[string]string{
	"dataCollection":     "Сбор данных",
	"dataProcessing":     "Обработка данных",
	"featureEngineering": "Feature Engineering",
	"signalGeneration":   "Генерация сигналов",
	"riskManagement":     "Риск-менеджмент",
	"execution":          "Исполнение сделок",
	"marketAdaptation":   "Адаптация к рынку",
	"visualization":      "Визуализация и мониторинг",
}

// CaseModuleName resolves a camelCase case-module key to its matrix row
// name. Unknown keys return ok=false and must be skipped with a log entry.
func CaseModuleName(key string) (string, bool) {
	m, ok := caseModuleNames[key]
	return m, ok
}

// CaseModuleKeys lists the eight case-module keys in canonical order,
// matching the field order of the case modules struct.
var CaseModuleKeys = []string{
	"dataCollection",
	"dataProcessing",
	"featureEngineering",
	"signalGeneration",
	"riskManagement",
	"execution",
	"marketAdaptation",
	"visualization",
}
