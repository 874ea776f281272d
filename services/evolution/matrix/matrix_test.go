// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the matrix assemblers and reference resolution.

package matrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

func emptyCaseModules() datatypes.CaseModules {
	return datatypes.CaseModules{
		DataCollection:     []string{},
		DataProcessing:     []string{},
		FeatureEngineering: []string{},
		SignalGeneration:   []string{},
		RiskManagement:     []string{},
		Execution:          []string{},
		MarketAdaptation:   []string{},
		Visualization:      []string{},
	}
}

func TestCellSet_SubstringContainment(t *testing.T) {
	set := NewCellSet("WebSocket, FIX, CCXT")
	assert.True(t, set.Contains("ccxt"))
	assert.False(t, set.Add("CCXT"))
	assert.True(t, set.Add("Kafka"))
	assert.Equal(t, "WebSocket, FIX, CCXT, Kafka", set.String())
}

func TestCellSet_EmptySeed(t *testing.T) {
	set := NewCellSet("")
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.Add("LSTM"))
	assert.Equal(t, "LSTM", set.String())
}

func TestResolve_Tiers(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "random-forest", Name: "Random Forest"},
		{ID: "lstm", Name: "LSTM"},
		{ID: "vision-transformer", Name: "Vision Transformer"},
	}

	// Tier 1: exact id.
	got := Resolve("lstm", techs)
	require.NotNil(t, got)
	assert.Equal(t, "lstm", got.ID)

	// Tier 2: exact case-sensitive name.
	got = Resolve("Random Forest", techs)
	require.NotNil(t, got)
	assert.Equal(t, "random-forest", got.ID)

	// Tier 3: case-insensitive reciprocal substring.
	got = Resolve("transformer", techs)
	require.NotNil(t, got)
	assert.Equal(t, "vision-transformer", got.ID)

	// Unresolved references stay raw.
	assert.Nil(t, Resolve("quantum-annealing", techs))
	assert.Equal(t, "quantum-annealing", ResolveName("quantum-annealing", techs))
}

func TestResolve_IDBeatsName(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "other", Name: "lstm"},
		{ID: "lstm", Name: "LSTM"},
	}
	got := Resolve("lstm", techs)
	require.NotNil(t, got)
	assert.Equal(t, "lstm", got.ID)
}

// Running the assembler twice on the same inputs yields identical output and
// never mutates the baseline it was given.
func TestIntegrated_Idempotent(t *testing.T) {
	techs := catalog.NewTechnologyStore().All()
	cases := seedCasesForTest(t)

	first := Integrated(catalog.Baseline(), techs, cases, nil)
	second := Integrated(catalog.Baseline(), techs, cases, nil)
	assert.Equal(t, first, second)

	// Feeding the integrated output back as more folds must not lengthen
	// cells whose names are already substring-present.
	third := Integrated(first, techs, cases, nil)
	assert.Equal(t, first, third)
}

func TestIntegrated_NoDuplicateSubstringInjection(t *testing.T) {
	// Baseline "Сбор данных"/rev2 already contains "CCXT"; the ccxt record
	// peaks 2021 (rev3), so place a tech that lands exactly on rev2.
	techs := []datatypes.Technology{
		{ID: "ccxt", Name: "CCXT", Category: "data",
			Periods: datatypes.TechnologyPeriods{Start: 2017, Peak: 2020}},
	}
	data := Integrated(catalog.Baseline(), techs, nil, nil)
	row := data.FindModule("Сбор данных")
	require.NotNil(t, row)
	assert.Equal(t, "WebSocket, FIX, CCXT", row.Revisions.Rev2.Tech)
}

func TestIntegrated_InfrastructureRowAppended(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "docker", Name: "Docker", Category: "infrastructure",
			Periods: datatypes.TechnologyPeriods{Start: 2013, Peak: 2019}},
	}
	data := Integrated(catalog.Baseline(), techs, nil, nil)
	require.Len(t, data.Modules, 9)

	row := data.FindModule("Инфраструктура")
	require.NotNil(t, row)
	assert.Equal(t, "Docker", row.Revisions.Rev2.Tech)
	assert.Equal(t, datatypes.PeriodEarly, row.Revisions.Rev2.Period)
	// Appended rows still carry all five cells.
	assert.Equal(t, datatypes.PeriodEmpty, row.Revisions.Rev5.Period)
}

// Scenario: one ml record peaking 2015 lands in the signal-generation row's
// rev1 cell.
func TestIntegrated_TechnologyPlacement(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "random-forest", Name: "Random Forest", Category: "ml",
			Periods: datatypes.TechnologyPeriods{Start: 2001, Peak: 2015}},
	}
	data := Integrated(catalog.Baseline(), techs, nil, nil)
	row := data.FindModule("Генерация сигналов")
	require.NotNil(t, row)
	assert.Contains(t, row.Revisions.Rev1.Tech, "Random Forest")
}

// Scenario: a case with period "2020-2022" classifies by start year 2020
// into rev2 and lands its execution label there, with provenance.
func TestIntegrated_CasePlacementAndProvenance(t *testing.T) {
	modules := emptyCaseModules()
	modules.Execution = []string{"TWAP"}
	cases := []datatypes.TradingMachine{
		{ID: "twap-case", Name: "TWAP Executor", Period: "2020-2022", Modules: modules},
	}

	data := Integrated(catalog.Baseline(), nil, cases, nil)
	row := data.FindModule("Исполнение сделок")
	require.NotNil(t, row)
	assert.Contains(t, row.Revisions.Rev2.Tech, "TWAP")
	assert.Contains(t, row.Revisions.Rev2.Desc, `(из кейса "TWAP Executor")`)

	// Other cells keep their authored baseline content. The baseline's own
	// rev3 cell already reads "TWAP/VWAP", so compare against it instead of
	// asserting label absence.
	base := catalog.Baseline()
	baseRow := base.FindModule("Исполнение сделок")
	require.NotNil(t, baseRow)
	assert.Equal(t, baseRow.Revisions.Rev3, row.Revisions.Rev3)
	assert.Equal(t, baseRow.Revisions.Rev1, row.Revisions.Rev1)
}

func TestIntegrated_MalformedCasePeriodSkipped(t *testing.T) {
	modules := emptyCaseModules()
	modules.Execution = []string{"TWAP"}
	cases := []datatypes.TradingMachine{
		{ID: "bad-period", Name: "Broken", Period: "unknown", Modules: modules},
	}

	data := Integrated(catalog.Baseline(), nil, cases, nil)
	base := catalog.Baseline()
	// No cell anywhere changed.
	assert.Equal(t, base, data)
}

// Every record id and every unique case label appears as exactly one row
// name suffix.
func TestDynamic_Completeness(t *testing.T) {
	store := catalog.NewTechnologyStore()
	techs := store.All()
	cases := seedCasesForTest(t)

	data := Dynamic(techs, cases, nil)

	suffixCount := make(map[string]int)
	for _, m := range data.Modules {
		name := strings.TrimPrefix(m.Name, lineageMarker)
		_, suffix, found := strings.Cut(name, ": ")
		require.True(t, found, "row %q lacks module prefix", m.Name)
		suffixCount[suffix]++
	}

	for _, tech := range techs {
		assert.Equal(t, 1, suffixCount[tech.Name], "technology %s", tech.Name)
	}
	for _, c := range cases {
		for _, key := range revision.CaseModuleKeys {
			labels, _ := c.Modules.ByKey(key)
			for _, label := range labels {
				assert.GreaterOrEqual(t, suffixCount[label], 1, "label %s", label)
				assert.LessOrEqual(t, suffixCount[label], 1, "label %s duplicated", label)
			}
		}
	}
}

func TestDynamic_FirstWriterWins(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "ccxt", Name: "CCXT", Category: "data",
			Periods: datatypes.TechnologyPeriods{Start: 2017, Peak: 2021}},
	}
	modules := emptyCaseModules()
	modules.DataCollection = []string{"CCXT"}
	cases := []datatypes.TradingMachine{
		{ID: "c1", Name: "Case", Period: "2015-2017", Modules: modules},
	}

	data := Dynamic(techs, cases, nil)
	require.Len(t, data.Modules, 1)
	// The catalog record won: placed by its peak (rev3), not the case period.
	assert.Equal(t, "Сбор данных: CCXT", data.Modules[0].Name)
	assert.Equal(t, "CCXT", data.Modules[0].Revisions.Rev3.Tech)
	assert.Empty(t, data.Modules[0].Revisions.Rev1.Tech)
}

func TestDynamic_EvolutionCellAndLineageMarker(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "lstm", Name: "LSTM", Category: "ml",
			Periods: datatypes.TechnologyPeriods{Start: 1997, Peak: 2018},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"rnn"},
				Successors:   []string{"transformer"},
			}},
		{ID: "transformer", Name: "Transformer", Category: "ml",
			Periods: datatypes.TechnologyPeriods{Start: 2017, Peak: 2023},
			Evolution: &datatypes.TechnologyEvolution{
				Predecessors: []string{"lstm"},
			}},
	}

	data := Dynamic(techs, nil, nil)
	require.Len(t, data.Modules, 2)

	// Both descend from predecessors, so both carry the marker.
	lstm := data.FindModule(lineageMarker + "Генерация сигналов: LSTM")
	require.NotNil(t, lstm)
	// Start cell rev2 (peak 2018), evolution cell rev3 with resolved successor.
	assert.Equal(t, "LSTM", lstm.Revisions.Rev2.Tech)
	assert.Equal(t, "LSTM → Transformer", lstm.Revisions.Rev3.Tech)
	assert.Empty(t, lstm.Revisions.Rev1.Tech)
	assert.Empty(t, lstm.Revisions.Rev4.Tech)

	transformer := data.FindModule(lineageMarker + "Генерация сигналов: Transformer")
	require.NotNil(t, transformer)
	// No successors: the next cell repeats the name (continued use).
	assert.Equal(t, "Transformer", transformer.Revisions.Rev4.Tech)
	assert.Equal(t, "Transformer", transformer.Revisions.Rev5.Tech)
}

func TestDynamic_SortedModuleThenRootsThenName(t *testing.T) {
	store := catalog.NewTechnologyStore()
	data := Dynamic(store.All(), nil, nil)

	type rowKey struct {
		module  string
		hasPred bool
		name    string
	}
	var prev *rowKey
	for _, m := range data.Modules {
		name := m.Name
		hasPred := strings.HasPrefix(name, lineageMarker)
		name = strings.TrimPrefix(name, lineageMarker)
		module, _, _ := strings.Cut(name, ": ")
		cur := rowKey{module: module, hasPred: hasPred, name: name}
		if prev != nil && prev.module == cur.module {
			if prev.hasPred && !cur.hasPred {
				t.Fatalf("descendant row %q precedes root row %q", prev.name, cur.name)
			}
		}
		prev = &cur
	}
}

func TestBuildRows_ModuleFilter(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "pandas", Name: "Pandas", Category: "processing",
			Periods: datatypes.TechnologyPeriods{Start: 2010}},
		{ID: "docker", Name: "Docker", Category: "infrastructure",
			Periods: datatypes.TechnologyPeriods{Start: 2013}},
	}

	rows := BuildRows(techs, "Обработка данных")
	require.Len(t, rows, 1)
	assert.Equal(t, "Pandas", rows[0].Name)
	// Filter mode is revision-blind.
	assert.Equal(t, datatypes.RowRevisions{}, rows[0].Revisions)
}

func TestBuildRows_FilterMatchesApplicableModules(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "vit", Name: "Vision Transformer", Category: "ml",
			Periods:           datatypes.TechnologyPeriods{Start: 2020},
			ApplicableModules: []string{"Обработка данных"}},
	}
	rows := BuildRows(techs, "Обработка данных")
	require.Len(t, rows, 1)
	assert.Equal(t, "vit", rows[0].ID)
}

func TestBuildRows_EvolutionView(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "rnn", Name: "RNN", Category: "ml",
			Periods: datatypes.TechnologyPeriods{Start: 1980, Peak: 2010, End: 2015},
			Evolution: &datatypes.TechnologyEvolution{
				Successors: []string{"lstm"},
			}},
		{ID: "lstm", Name: "LSTM", Category: "ml",
			Periods: datatypes.TechnologyPeriods{Start: 1997, Peak: 2018}},
	}

	rows := BuildRows(techs, "")
	require.Len(t, rows, 2)

	// RNN sorts first (start 1980); its start revision is rev1 (peak 2010)
	// and its usage ends 2015, so only rev1 intersects.
	rnn := rows[0]
	assert.Equal(t, "rnn", rnn.ID)
	assert.Equal(t, "RNN", rnn.Revisions.Rev1)
	assert.Empty(t, rnn.Revisions.Rev2)

	// LSTM was emitted as RNN's successor row, seeded with its parent as
	// predecessor and only its start revision filled.
	lstm := rows[1]
	assert.Equal(t, "lstm", lstm.ID)
	assert.Equal(t, []string{"rnn"}, lstm.Predecessors)
	assert.Equal(t, "LSTM", lstm.Revisions.Rev2)
	assert.Empty(t, lstm.Revisions.Rev3)
}

func TestBuildRows_ContinuationCells(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "plotly", Name: "Plotly", Category: "visualization",
			Periods: datatypes.TechnologyPeriods{Start: 2012, Peak: 2020},
			Evolution: &datatypes.TechnologyEvolution{
				Successors: []string{"real-time-dashboards"},
			}},
	}

	rows := BuildRows(techs, "")
	require.Len(t, rows, 1)
	row := rows[0]
	// Start revision rev2 gets the plain name; later intersecting buckets
	// show the evolution arrow (successor unresolved, kept raw).
	assert.Equal(t, "Plotly", row.Revisions.Rev2)
	assert.Equal(t, "Plotly → real-time-dashboards", row.Revisions.Rev3)
	assert.Equal(t, "Plotly → real-time-dashboards", row.Revisions.Rev5)
	// rev1 intersects [2012, now] nowhere.
	assert.Empty(t, row.Revisions.Rev1)
}

func TestBuildRows_EmptyInput(t *testing.T) {
	rows := BuildRows(nil, "")
	assert.NotNil(t, rows, "empty result must serialize as [], not null")
	assert.Empty(t, rows)
}

func TestBuildRows_FilterExcludingEverythingReturnsEmptySlice(t *testing.T) {
	techs := []datatypes.Technology{
		{ID: "pandas", Name: "Pandas", Category: "processing",
			Periods: datatypes.TechnologyPeriods{Start: 2008}},
	}
	rows := BuildRows(techs, "Исполнение сделок")
	assert.NotNil(t, rows, "empty result must serialize as [], not null")
	assert.Empty(t, rows)
}

// seedCasesForTest builds a store on a temp file and returns its cases.
func seedCasesForTest(t *testing.T) []datatypes.TradingMachine {
	t.Helper()
	store, err := catalog.NewCaseStore(t.TempDir()+"/cases.json", nil)
	require.NoError(t, err)
	return store.All()
}
