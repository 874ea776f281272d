// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for evolution datatype validation.

package datatypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTechnology() Technology {
	return Technology{
		ID:          "lstm",
		Name:        "LSTM",
		Description: "Рекуррентная сеть с долгой краткосрочной памятью",
		Category:    "ml",
		Periods:     TechnologyPeriods{Start: 2015, Peak: 2018},
		Evolution: &TechnologyEvolution{
			Predecessors: []string{"rnn"},
			Successors:   []string{"transformer"},
		},
		ApplicableModules: []string{"Генерация сигналов"},
		Advantages:        []string{"Учитывает последовательности"},
		Disadvantages:     []string{"Медленное обучение"},
		UseCases:          []string{"Прогноз цены"},
	}
}

func TestTechnology_Validate_Success(t *testing.T) {
	tech := validTechnology()
	assert.NoError(t, tech.Validate())
}

func TestTechnology_Validate_MissingID(t *testing.T) {
	tech := validTechnology()
	tech.ID = ""
	assert.Error(t, tech.Validate())
}

func TestTechnology_Validate_UnknownCategory(t *testing.T) {
	tech := validTechnology()
	tech.Category = "quantum"
	assert.Error(t, tech.Validate())
}

func TestTechnology_Validate_MissingStartYear(t *testing.T) {
	tech := validTechnology()
	tech.Periods = TechnologyPeriods{}
	assert.Error(t, tech.Validate())
}

func TestTechnology_LineageAccessors_NilEvolution(t *testing.T) {
	tech := validTechnology()
	tech.Evolution = nil
	assert.Nil(t, tech.Predecessors())
	assert.Nil(t, tech.Successors())
}

func validCase() TradingMachine {
	return TradingMachine{
		ID:          "random-forest-scalper-2015",
		Name:        "Random Forest Scalper",
		Period:      "2015-2017",
		Description: "Скальпинг на основе Random Forest",
		Strategy:    "Скальпинг",
		Timeframe:   "1 минута",
		MarketType:  "Криптовалюты (BTC/USDT)",
		Technologies: []TechnologyStack{
			{Name: "scikit-learn", Purpose: "Random Forest", Category: "ml"},
		},
		Modules: CaseModules{
			DataCollection:     []string{"Binance API", "CCXT"},
			DataProcessing:     []string{"pandas"},
			FeatureEngineering: []string{"RSI"},
			SignalGeneration:   []string{"Random Forest"},
			RiskManagement:     []string{"Stop-loss"},
			Execution:          []string{"Market orders"},
			MarketAdaptation:   []string{"Переобучение"},
			Visualization:      []string{"matplotlib"},
		},
		Advantages:    []string{"Простота"},
		Disadvantages: []string{"Переобучение"},
	}
}

func TestTradingMachine_Validate_Success(t *testing.T) {
	c := validCase()
	assert.NoError(t, c.Validate())
}

func TestTradingMachine_Validate_MissingPeriod(t *testing.T) {
	c := validCase()
	c.Period = ""
	assert.Error(t, c.Validate())
}

func TestTradingMachine_Validate_InvalidStackCategory(t *testing.T) {
	c := validCase()
	// Case stacks never carry execution-category entries.
	c.Technologies[0].Category = "execution"
	assert.Error(t, c.Validate())
}

func TestCaseModules_ByKey(t *testing.T) {
	c := validCase()
	labels, ok := c.Modules.ByKey("dataCollection")
	require.True(t, ok)
	assert.Equal(t, []string{"Binance API", "CCXT"}, labels)

	_, ok = c.Modules.ByKey("portfolio")
	assert.False(t, ok)
}

func TestImportRequest_Validate(t *testing.T) {
	r := ImportRequest{RawText: "Торговая машина на LSTM"}
	assert.NoError(t, r.Validate())

	r.RawText = ""
	assert.Error(t, r.Validate())

	r.RawText = strings.Repeat("a", MaxImportTextBytes+1)
	assert.Error(t, r.Validate())
}

func TestModuleRevisions_Cell(t *testing.T) {
	var revs ModuleRevisions
	cell := revs.Cell("rev3")
	require.NotNil(t, cell)
	cell.Tech = "Transformer"
	assert.Equal(t, "Transformer", revs.Rev3.Tech)

	assert.Nil(t, revs.Cell("rev6"))
}

func TestEvolutionData_FindModule(t *testing.T) {
	data := EvolutionData{Modules: []ModuleData{{Name: "Сбор данных"}}}
	require.NotNil(t, data.FindModule("Сбор данных"))
	assert.Nil(t, data.FindModule("Нет такого"))
}
