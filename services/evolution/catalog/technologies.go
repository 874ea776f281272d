// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Technology record store and its query operations.
package catalog

import (
	"strings"
	"time"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// =============================================================================
// Technology Store
// =============================================================================

// TechnologyStore is the read-only catalog of technology records. Populated
// once at construction; safe for concurrent reads.
type TechnologyStore struct {
	records []datatypes.Technology
	byID    map[string]int
}

// NewTechnologyStore builds a store over the curated seed records.
func NewTechnologyStore() *TechnologyStore {
	return newTechnologyStore(seedTechnologies())
}

func newTechnologyStore(records []datatypes.Technology) *TechnologyStore {
	s := &TechnologyStore{
		records: records,
		byID:    make(map[string]int, len(records)),
	}
	for i, t := range records {
		s.byID[t.ID] = i
	}
	return s
}

// All returns every record. The slice is shared; callers must not mutate it.
func (s *TechnologyStore) All() []datatypes.Technology {
	return s.records
}

// ByID returns the record with the given id, or ok=false.
func (s *TechnologyStore) ByID(id string) (datatypes.Technology, bool) {
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Technology{}, false
	}
	return s.records[i], true
}

// ByPeriod returns records whose usage interval [start, end] intersects
// [startYear, endYear]. Records without an end year are treated as still in
// use through the current year, and a zero endYear means an open-ended
// query through the current year.
func (s *TechnologyStore) ByPeriod(startYear, endYear int) []datatypes.Technology {
	currentYear := time.Now().Year()
	if endYear == 0 {
		endYear = currentYear
	}
	out := []datatypes.Technology{}
	for _, t := range s.records {
		end := t.Periods.End
		if end == 0 {
			end = currentYear
		}
		if t.Periods.Start <= endYear && end >= startYear {
			out = append(out, t)
		}
	}
	return out
}

// ByModule returns records listing the module among their applicable
// modules. Matching is exact; the caller passes either a matrix row name or
// a camelCase module key, whichever the records carry.
func (s *TechnologyStore) ByModule(module string) []datatypes.Technology {
	out := []datatypes.Technology{}
	for _, t := range s.records {
		for _, m := range t.ApplicableModules {
			if m == module {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Search returns records whose name, full name, or description contains the
// query, case-insensitively.
func (s *TechnologyStore) Search(query string) []datatypes.Technology {
	q := strings.ToLower(query)
	out := []datatypes.Technology{}
	for _, t := range s.records {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.FullName), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// RevisionFor classifies a record by its peak year (start when no peak is
// recorded). Unknown ids bucket into rev5, matching the open-ended future
// bucket.
func (s *TechnologyStore) RevisionFor(id string) revision.Key {
	t, ok := s.ByID(id)
	if !ok {
		return revision.Rev5
	}
	return revision.ForTechnologyYears(t.Periods.Start, t.Periods.Peak)
}

// =============================================================================
// Seed Records
// =============================================================================

// seedTechnologies returns fresh copies of the curated records so store
// instances never share backing arrays.
func seedTechnologies() []datatypes.Technology {
	return []datatypes.Technology{
		{
			ID:          "random-forest",
			Name:        "Random Forest",
			FullName:    "Random Forest Ensemble",
			Description: "Алгоритм машинного обучения, использующий ансамбль решающих деревьев для классификации и регрессии",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 2001, Peak: 2015, Decline: 2020},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"decision-trees"},
				Successors:   []string{"transformer"},
				Variants:     []string{"extra-trees"},
			},
			ApplicableModules: []string{"signalGeneration", "featureEngineering"},
			Advantages: []string{
				"Устойчивость к переобучению",
				"Работа с пропущенными данными",
				"Оценка важности признаков",
				"Быстрое обучение",
			},
			Disadvantages: []string{
				"Плохо работает с линейными зависимостями",
				"Может переобучаться на шумных данных",
				"Сложность интерпретации отдельных деревьев",
			},
			UseCases: []string{"Классификация направления движения цены", "Скальпинг стратегии", "Отбор признаков"},
			Sources:  []string{"Breiman (2001)", "Chan et al. (2015-2017)"},
		},
		{
			ID:          "lstm",
			Name:        "LSTM",
			FullName:    "Long Short-Term Memory",
			Description: "Рекуррентная нейронная сеть, способная изучать долгосрочные зависимости во временных рядах",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 1997, Peak: 2018, Decline: 2022},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"rnn"},
				Successors:   []string{"transformer"},
				Variants:     []string{"gru"},
			},
			ApplicableModules: []string{"signalGeneration", "marketAdaptation"},
			Advantages: []string{
				"Память о долгосрочных зависимостях",
				"Работа с последовательностями переменной длины",
				"Устойчивость к проблеме исчезающего градиента",
			},
			Disadvantages: []string{
				"Медленное обучение",
				"Требовательность к объему данных",
				"Сложность настройки гиперпараметров",
			},
			UseCases: []string{
				"Предсказание временных рядов",
				"Анализ последовательностей сделок",
				"Моделирование рыночных режимов",
			},
			Sources: []string{"Hochreiter & Schmidhuber (1997)", "Zhang et al. (2017-2020)"},
		},
		{
			ID:          "ccxt",
			Name:        "CCXT",
			FullName:    "CryptoCurrency eXchange Trading Library",
			Description: "JavaScript/Python/PHP библиотека для подключения к криптовалютным биржам",
			Category:    "data",
			Periods:     datatypes.TechnologyPeriods{Start: 2017, Peak: 2021},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{},
				Variants:     []string{"ccxt-pro"},
			},
			ApplicableModules: []string{"dataCollection", "execution"},
			Advantages: []string{
				"Единый интерфейс для множества бирж",
				"Поддержка WebSocket",
				"Активное сообщество",
				"Регулярные обновления",
			},
			Disadvantages: []string{
				"Зависимость от API бирж",
				"Различия в реализации между биржами",
				"Возможные лимиты на запросы",
			},
			UseCases: []string{"Получение рыночных данных", "Исполнение ордеров", "Мониторинг портфеля"},
			Sources:  []string{"CCXT Documentation", "Random Forest Scalper (2015-2017)"},
		},
		{
			ID:          "transformer",
			Name:        "Transformer",
			FullName:    "Transformer Architecture",
			Description: "Архитектура нейронных сетей на основе механизма внимания, революционизировавшая NLP и временные ряды",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 2017, Peak: 2023},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"lstm"},
				Successors:   []string{},
				Variants:     []string{"vision-transformer"},
			},
			ApplicableModules: []string{"signalGeneration", "marketAdaptation", "featureEngineering"},
			Advantages: []string{
				"Параллелизация обучения",
				"Эффективная работа с длинными последовательностями",
				"Механизм внимания для интерпретируемости",
			},
			Disadvantages: []string{
				"Высокие вычислительные требования",
				"Квадратичная сложность по длине последовательности",
				"Требует больших объемов данных",
			},
			UseCases: []string{
				"Анализ стакана ордеров (LOB)",
				"Многомодальный анализ данных",
				"Предсказание временных рядов",
			},
			Sources: []string{"Vaswani et al. (2017)", "LOB-Transformer (2022-2023)"},
		},
		{
			ID:          "matplotlib",
			Name:        "Matplotlib",
			FullName:    "Python plotting library",
			Description: "Основная библиотека для создания статических графиков в Python",
			Category:    "visualization",
			Periods:     datatypes.TechnologyPeriods{Start: 2003, Peak: 2015, Decline: 2020},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"excel-charts"},
				Successors:   []string{"plotly"},
				Variants:     []string{},
			},
			ApplicableModules: []string{"Визуализация и мониторинг"},
			Advantages: []string{
				"Полный контроль над графиками",
				"Широкие возможности настройки",
				"Интеграция с NumPy и Pandas",
			},
			Disadvantages: []string{
				"Сложный синтаксис",
				"Не интерактивные графики",
				"Медленная отрисовка больших данных",
			},
			UseCases: []string{"Статистические графики", "Научные публикации", "Анализ временных рядов"},
			Sources:  []string{"Matplotlib Documentation"},
		},
		{
			ID:          "plotly",
			Name:        "Plotly",
			FullName:    "Interactive plotting library",
			Description: "Библиотека для создания интерактивных веб-графиков",
			Category:    "visualization",
			Periods:     datatypes.TechnologyPeriods{Start: 2012, Peak: 2020},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"matplotlib"},
				Successors:   []string{"real-time-dashboards"},
				Variants:     []string{},
			},
			ApplicableModules: []string{"Визуализация и мониторинг"},
			Advantages:        []string{"Интерактивность из коробки", "Веб-готовые графики", "Поддержка 3D визуализации"},
			Disadvantages: []string{
				"Больший размер файлов",
				"Зависимость от JavaScript",
				"Ограничения в настройке стилей",
			},
			UseCases: []string{"Интерактивные дашборды", "Веб-приложения", "Презентации данных"},
			Sources:  []string{"Plotly Documentation"},
		},
		{
			ID:          "excel-charts",
			Name:        "Excel Charts",
			FullName:    "Microsoft Excel Charting",
			Description: "Стандартные инструменты создания графиков в Microsoft Excel",
			Category:    "visualization",
			Periods:     datatypes.TechnologyPeriods{Start: 1990, Peak: 2010, Decline: 2015},
			Evolution: &datatypes.TechnologyEvolution{
				Successors: []string{"matplotlib"},
			},
			ApplicableModules: []string{"Визуализация и мониторинг"},
			Advantages:        []string{"Простота использования", "Доступность для всех", "Интеграция с таблицами"},
			Disadvantages:     []string{"Ограниченные возможности", "Не программируемые", "Плохая масштабируемость"},
			UseCases:          []string{"Простые отчеты", "Бизнес-презентации", "Быстрый анализ данных"},
			Sources:           []string{"Microsoft Excel Documentation"},
		},
		{
			ID:          "real-time-dashboards",
			Name:        "Real-time Dashboards",
			FullName:    "Real-time Data Dashboards",
			Description: "Системы мониторинга данных в реальном времени",
			Category:    "visualization",
			Periods:     datatypes.TechnologyPeriods{Start: 2018, Peak: 2023},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"plotly"},
			},
			ApplicableModules: []string{"Визуализация и мониторинг"},
			Advantages: []string{
				"Мониторинг в реальном времени",
				"Автоматическое обновление",
				"Алерты и уведомления",
			},
			Disadvantages: []string{
				"Высокое потребление ресурсов",
				"Сложность настройки",
				"Требует постоянного подключения",
			},
			UseCases: []string{"Торговые терминалы", "Мониторинг позиций", "Алгоритмическая торговля"},
			Sources:  []string{"Trading Systems Documentation"},
		},
		{
			ID:          "decision-trees",
			Name:        "Decision Trees",
			FullName:    "Decision Tree Algorithm",
			Description: "Алгоритм машинного обучения, основанный на древовидной структуре решений",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 1990, Peak: 2005, Decline: 2010},
			Evolution: &datatypes.TechnologyEvolution{
				Successors: []string{"random-forest"},
			},
			ApplicableModules: []string{"Генерация сигналов"},
			Advantages: []string{
				"Простота интерпретации",
				"Не требует нормализации данных",
				"Работает с категориальными и численными данными",
			},
			Disadvantages: []string{
				"Склонность к переобучению",
				"Неустойчивость к изменениям в данных",
				"Проблемы с линейными зависимостями",
			},
			UseCases: []string{
				"Классификация рыночных условий",
				"Создание торговых правил",
				"Анализ важности признаков",
			},
			Sources: []string{"Quinlan (1986)", "Machine Learning Literature"},
		},
		{
			ID:          "rnn",
			Name:        "RNN",
			FullName:    "Recurrent Neural Networks",
			Description: "Класс нейронных сетей для работы с последовательными данными",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 1980, Peak: 2010, Decline: 2015},
			Evolution: &datatypes.TechnologyEvolution{
				Successors: []string{"lstm"},
			},
			ApplicableModules: []string{"Генерация сигналов"},
			Advantages: []string{
				"Работа с последовательностями",
				"Память о предыдущих состояниях",
				"Гибкость архитектуры",
			},
			Disadvantages: []string{
				"Проблема исчезающего градиента",
				"Медленное обучение",
				"Сложность с длинными последовательностями",
			},
			UseCases: []string{"Анализ временных рядов", "Предсказание последовательностей", "Обработка текста"},
			Sources:  []string{"Rumelhart et al. (1986)"},
		},
		{
			ID:          "gru",
			Name:        "GRU",
			FullName:    "Gated Recurrent Unit",
			Description: "Упрощенная версия LSTM с меньшим количеством параметров",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 2014, Peak: 2019},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"lstm"},
			},
			ApplicableModules: []string{"Генерация сигналов"},
			Advantages: []string{
				"Меньше параметров чем LSTM",
				"Быстрее обучается",
				"Хорошо работает на коротких последовательностях",
			},
			Disadvantages: []string{
				"Менее выразительный чем LSTM",
				"Требует больших данных",
				"Сложность настройки",
			},
			UseCases: []string{
				"Анализ коротких временных рядов",
				"Быстрое прототипирование",
				"Ресурсно-ограниченные среды",
			},
			Sources: []string{"Cho et al. (2014)"},
		},
		{
			ID:          "vision-transformer",
			Name:        "Vision Transformer",
			FullName:    "Vision Transformer (ViT)",
			Description: "Адаптация архитектуры Transformer для обработки изображений",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 2020, Peak: 2024},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"transformer"},
			},
			ApplicableModules: []string{"Обработка данных"},
			Advantages: []string{
				"Превосходная производительность на больших данных",
				"Масштабируемость",
				"Применимость к различным задачам",
			},
			Disadvantages: []string{
				"Требует огромные объемы данных",
				"Высокие вычислительные затраты",
				"Сложность интерпретации",
			},
			UseCases: []string{
				"Анализ графиков и чартов",
				"Распознавание паттернов на изображениях",
				"Обработка визуальных данных о рынке",
			},
			Sources: []string{"Dosovitskiy et al. (2020)"},
		},
		{
			ID:          "ccxt-pro",
			Name:        "CCXT Pro",
			FullName:    "CCXT Professional",
			Description: "Профессиональная версия CCXT с поддержкой WebSocket и расширенными возможностями",
			Category:    "data",
			Periods:     datatypes.TechnologyPeriods{Start: 2019, Peak: 2023},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"ccxt"},
			},
			ApplicableModules: []string{"Сбор данных", "Исполнение сделок"},
			Advantages: []string{
				"WebSocket соединения",
				"Низкая задержка",
				"Расширенная функциональность",
				"Профессиональная поддержка",
			},
			Disadvantages: []string{"Платная лицензия", "Более сложная настройка", "Зависимость от поставщика"},
			UseCases: []string{
				"Высокочастотная торговля",
				"Real-time мониторинг",
				"Профессиональные торговые системы",
			},
			Sources: []string{"CCXT Pro Documentation"},
		},
		{
			ID:          "extra-trees",
			Name:        "Extra Trees",
			FullName:    "Extremely Randomized Trees",
			Description: "Вариант Random Forest с дополнительной рандомизацией при выборе разбиений",
			Category:    "ml",
			Periods:     datatypes.TechnologyPeriods{Start: 2006, Peak: 2016},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"random-forest"},
			},
			ApplicableModules: []string{"Генерация сигналов"},
			Advantages:        []string{"Быстрее Random Forest", "Меньше переобучения", "Хорошая производительность"},
			Disadvantages: []string{
				"Менее точный чем Random Forest",
				"Сложность интерпретации",
				"Требует настройки параметров",
			},
			UseCases: []string{"Быстрая классификация", "Большие датасеты", "Ансамблевые методы"},
			Sources:  []string{"Geurts et al. (2006)"},
		},
	}
}
