// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the curated seed data of the evolution matrix: the
// baseline module rows, the technology records, the trading-machine cases,
// and the technology tree. Read stores are populated once at startup and
// never mutated; the imported-case file is the single mutable extension
// point (see cases.go).
package catalog

import (
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
)

// =============================================================================
// Baseline Matrix
// =============================================================================

// baselineModules is the curated eight-row evolution matrix. Cell text is
// authored content, not derived from the technology catalog.
var baselineModules = []datatypes.ModuleData{
	{
		Name: "Сбор данных",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Reuters API, Bloomberg", Period: datatypes.PeriodEarly, Desc: "Базовые рыночные данные через API"},
			Rev2: datatypes.RevisionData{Tech: "WebSocket, FIX, CCXT", Period: datatypes.PeriodEarly, Desc: "Данные в реальном времени + криптобиржи"},
			Rev3: datatypes.RevisionData{Tech: "Market Data Lakes", Period: datatypes.PeriodModern, Desc: "Централизованные хранилища рыночных данных"},
			Rev4: datatypes.RevisionData{Tech: "Streaming Analytics", Period: datatypes.PeriodModern, Desc: "Потоковая обработка данных"},
			Rev5: datatypes.RevisionData{Tech: "Multi-modal Data", Period: datatypes.PeriodCurrent, Desc: "Объединение различных типов данных"},
		},
	},
	{
		Name: "Обработка данных",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Excel, CSV", Period: datatypes.PeriodEarly, Desc: "Ручная обработка в табличных редакторах"},
			Rev2: datatypes.RevisionData{Tech: "Pandas, NumPy", Period: datatypes.PeriodEarly, Desc: "Python библиотеки для анализа данных"},
			Rev3: datatypes.RevisionData{Tech: "Apache Spark", Period: datatypes.PeriodModern, Desc: "Распределённая обработка больших данных"},
			Rev4: datatypes.RevisionData{Tech: "Polars, DuckDB", Period: datatypes.PeriodModern, Desc: "Высокопроизводительная аналитика"},
			Rev5: datatypes.RevisionData{Tech: "Ray, Dask", Period: datatypes.PeriodCurrent, Desc: "Масштабируемые вычисления"},
		},
	},
	{
		Name: "Feature Engineering",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Technical Indicators", Period: datatypes.PeriodEarly, Desc: "RSI, MACD, SMA - классические индикаторы"},
			Rev2: datatypes.RevisionData{Tech: "Statistical Features", Period: datatypes.PeriodEarly, Desc: "Волатильность, корреляции, возвраты"},
			Rev3: datatypes.RevisionData{Tech: "Auto Feature Selection", Period: datatypes.PeriodModern, Desc: "Автоматический отбор признаков"},
			Rev4: datatypes.RevisionData{Tech: "Graph Features", Period: datatypes.PeriodModern, Desc: "Признаки на основе графов"},
			Rev5: datatypes.RevisionData{Tech: "Learned Representations", Period: datatypes.PeriodCurrent, Desc: "Обученные представления данных"},
		},
	},
	{
		Name: "Генерация сигналов",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Rule-based", Period: datatypes.PeriodEarly, Desc: "Системы на основе правил"},
			Rev2: datatypes.RevisionData{Tech: "SVM, Random Forest", Period: datatypes.PeriodEarly, Desc: "Классические алгоритмы ML"},
			Rev3: datatypes.RevisionData{Tech: "LSTM, CNN", Period: datatypes.PeriodModern, Desc: "Глубокие нейронные сети"},
			Rev4: datatypes.RevisionData{Tech: "Transformer LOB", Period: datatypes.PeriodModern, Desc: "Трансформеры для анализа стакана"},
			Rev5: datatypes.RevisionData{Tech: "Multi-Agent RL", Period: datatypes.PeriodCurrent, Desc: "Многоагентное обучение с подкреплением"},
		},
	},
	{
		Name: "Риск-менеджмент",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Fixed Stop-Loss", Period: datatypes.PeriodEarly, Desc: "Фиксированные уровни стоп-лосс"},
			Rev2: datatypes.RevisionData{Tech: "VaR Models", Period: datatypes.PeriodEarly, Desc: "Модели стоимости под риском"},
			Rev3: datatypes.RevisionData{Tech: "Dynamic Hedging", Period: datatypes.PeriodModern, Desc: "Динамическое хеджирование"},
			Rev4: datatypes.RevisionData{Tech: "RL-based Risk", Period: datatypes.PeriodModern, Desc: "Риск-менеджмент на основе RL"},
			Rev5: datatypes.RevisionData{Tech: "Adaptive Risk Models", Period: datatypes.PeriodCurrent, Desc: "Адаптивные модели управления рисками"},
		},
	},
	{
		Name: "Исполнение сделок",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Market Orders", Period: datatypes.PeriodEarly, Desc: "Простые рыночные ордера"},
			Rev2: datatypes.RevisionData{Tech: "Smart Routing", Period: datatypes.PeriodEarly, Desc: "Умная маршрутизация ордеров"},
			Rev3: datatypes.RevisionData{Tech: "TWAP/VWAP", Period: datatypes.PeriodModern, Desc: "Алгоритмы исполнения TWAP/VWAP"},
			Rev4: datatypes.RevisionData{Tech: "RL Execution", Period: datatypes.PeriodModern, Desc: "Исполнение на основе RL"},
			Rev5: datatypes.RevisionData{Tech: "Game-theoretic", Period: datatypes.PeriodCurrent, Desc: "Игровые стратегии исполнения"},
		},
	},
	{
		Name: "Адаптация к рынку",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "", Period: datatypes.PeriodEmpty, Desc: "Отсутствие адаптации"},
			Rev2: datatypes.RevisionData{Tech: "Regime Detection", Period: datatypes.PeriodEarly, Desc: "Детекция режимов рынка"},
			Rev3: datatypes.RevisionData{Tech: "Online Learning", Period: datatypes.PeriodModern, Desc: "Онлайн обучение"},
			Rev4: datatypes.RevisionData{Tech: "Meta-Learning", Period: datatypes.PeriodModern, Desc: "Мета-обучение"},
			Rev5: datatypes.RevisionData{Tech: "Continual Learning", Period: datatypes.PeriodCurrent, Desc: "Непрерывное обучение"},
		},
	},
	{
		Name: "Визуализация и мониторинг",
		Revisions: datatypes.ModuleRevisions{
			Rev1: datatypes.RevisionData{Tech: "Excel Charts", Period: datatypes.PeriodEarly, Desc: "Простые графики в Excel"},
			Rev2: datatypes.RevisionData{Tech: "Matplotlib, R", Period: datatypes.PeriodEarly, Desc: "Программная визуализация данных"},
			Rev3: datatypes.RevisionData{Tech: "Plotly, D3.js", Period: datatypes.PeriodModern, Desc: "Интерактивные веб-дашборды"},
			Rev4: datatypes.RevisionData{Tech: "Real-time Dashboards", Period: datatypes.PeriodModern, Desc: "Мониторинг в реальном времени"},
			Rev5: datatypes.RevisionData{Tech: "AI-powered Analytics", Period: datatypes.PeriodCurrent, Desc: "ИИ-анализ паттернов и аномалий"},
		},
	},
}

// Baseline returns a deep copy of the curated matrix.
//
// # Description
//
// Assemblers mutate cells in place, so every caller gets an independent
// copy. Module rows are value types (no interior pointers), so copying the
// slice copies everything.
//
// # Outputs
//
//   - datatypes.EvolutionData: Fresh eight-row matrix.
func Baseline() datatypes.EvolutionData {
	modules := make([]datatypes.ModuleData, len(baselineModules))
	copy(modules, baselineModules)
	return datatypes.EvolutionData{Modules: modules}
}

// ModuleByName returns a copy of a single baseline row, or ok=false when no
// row carries that name.
func ModuleByName(name string) (datatypes.ModuleData, bool) {
	for _, m := range baselineModules {
		if m.Name == name {
			return m, true
		}
	}
	return datatypes.ModuleData{}, false
}

// ModuleNames lists the baseline row names in display order.
func ModuleNames() []string {
	names := make([]string, len(baselineModules))
	for i, m := range baselineModules {
		names[i] = m.Name
	}
	return names
}
