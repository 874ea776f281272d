// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Trading-machine case store: static seed cases plus a file-backed list of
// imported cases.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/revision"
)

// =============================================================================
// Case Store
// =============================================================================

// CaseStore serves the static seed cases and an append-only list of imported
// cases persisted as a JSON array file.
//
// # Description
//
// Reads merge seed and imported cases; the import endpoint is the only
// writer. Writes hold an in-process mutex around the read-modify-write of
// the file, so concurrent imports within one process cannot lose updates.
// Concurrent writers in separate processes can still race; the store only
// guards its own process.
//
// # Thread Safety
//
// Safe for concurrent use.
type CaseStore struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	seed     []datatypes.TradingMachine
	imported []datatypes.TradingMachine
}

// NewCaseStore opens (or initializes) the imported-case file at path.
//
// # Description
//
// A missing file is created holding an empty JSON array. An existing file is
// parsed and each record validated; a file that no longer matches the schema
// is a validation error, surfaced to the caller rather than silently
// truncated.
//
// # Inputs
//
//   - path: Location of the imported-case JSON array file.
//   - logger: Structured logger; nil uses slog.Default().
//
// # Outputs
//
//   - *CaseStore: Ready store.
//   - error: Non-nil on unreadable or schema-violating file content.
func NewCaseStore(path string, logger *slog.Logger) (*CaseStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CaseStore{
		path:   path,
		logger: logger,
		seed:   seedCases(),
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	logger.Info("case store loaded",
		"seed_cases", len(s.seed),
		"imported_cases", len(s.imported),
		"path", path)
	return s, nil
}

// reload reads the imported-case file, initializing it when absent.
func (s *CaseStore) reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

func (s *CaseStore) reloadLocked() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(s.path), 0o755); mkErr != nil {
			return fmt.Errorf("create case store directory: %w", mkErr)
		}
		if wrErr := os.WriteFile(s.path, []byte("[]\n"), 0o644); wrErr != nil {
			return fmt.Errorf("initialize case store file: %w", wrErr)
		}
		s.imported = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read case store file: %w", err)
	}

	var cases []datatypes.TradingMachine
	if err := json.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("parse case store file %s: %w", s.path, err)
	}
	for i := range cases {
		if err := cases[i].Validate(); err != nil {
			return fmt.Errorf("case store file %s: record %q invalid: %w", s.path, cases[i].ID, err)
		}
	}
	s.imported = cases
	return nil
}

// Reload re-reads the imported-case file. Called by the file watcher when
// the file changes outside this process.
func (s *CaseStore) Reload() error {
	if err := s.reload(); err != nil {
		s.logger.Error("case store reload failed", "error", err)
		return err
	}
	s.logger.Info("case store reloaded", "imported_cases", s.Count()-len(s.seed))
	return nil
}

// All returns seed cases followed by imported cases.
func (s *CaseStore) All() []datatypes.TradingMachine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]datatypes.TradingMachine, 0, len(s.seed)+len(s.imported))
	out = append(out, s.seed...)
	out = append(out, s.imported...)
	return out
}

// ByID returns the case with the given id, or ok=false.
func (s *CaseStore) ByID(id string) (datatypes.TradingMachine, bool) {
	for _, c := range s.All() {
		if c.ID == id {
			return c, true
		}
	}
	return datatypes.TradingMachine{}, false
}

// Count returns the total number of cases, seed plus imported.
func (s *CaseStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seed) + len(s.imported)
}

// Append validates a new case and appends it to the imported-case file.
//
// # Description
//
// The record must pass full schema validation before anything touches the
// file; a validation failure aborts with no partial write. The file is
// rewritten whole (read-modify-write) under the store mutex.
//
// # Inputs
//
//   - c: Fully built case record.
//
// # Outputs
//
//   - error: Validation or I/O failure; the file is unchanged on error.
func (s *CaseStore) Append(c datatypes.TradingMachine) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("case %q failed validation: %w", c.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Pick up external edits before appending.
	if err := s.reloadLocked(); err != nil {
		return err
	}

	updated := append(append([]datatypes.TradingMachine{}, s.imported...), c)
	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal case store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write case store file: %w", err)
	}
	s.imported = updated
	s.logger.Info("case imported", "id", c.ID, "name", c.Name, "period", c.Period)
	return nil
}

// =============================================================================
// Case Queries
// =============================================================================

// AllTechnologyLabels returns the distinct technology label strings found
// across every case's modules, sorted.
func (s *CaseStore) AllTechnologyLabels() []string {
	set := make(map[string]struct{})
	for _, c := range s.All() {
		for _, key := range revision.CaseModuleKeys {
			labels, _ := c.Modules.ByKey(key)
			for _, label := range labels {
				set[label] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// FindByTechnology returns cases that mention the label in any module,
// case-insensitively.
func (s *CaseStore) FindByTechnology(label string) []datatypes.TradingMachine {
	q := strings.ToLower(label)
	out := []datatypes.TradingMachine{}
	for _, c := range s.All() {
		if caseMentions(&c, q) {
			out = append(out, c)
		}
	}
	return out
}

func caseMentions(c *datatypes.TradingMachine, lowered string) bool {
	for _, key := range revision.CaseModuleKeys {
		labels, _ := c.Modules.ByKey(key)
		for _, label := range labels {
			if strings.Contains(strings.ToLower(label), lowered) {
				return true
			}
		}
	}
	return false
}

// Coverage maps each matrix row to the distinct case technology labels that
// feed it, keyed by the row's display name.
func (s *CaseStore) Coverage() map[string][]string {
	coverage := make(map[string][]string, len(revision.CaseModuleKeys))
	for _, key := range revision.CaseModuleKeys {
		rowName, ok := revision.CaseModuleName(key)
		if !ok {
			continue
		}
		set := make(map[string]struct{})
		var ordered []string
		for _, c := range s.All() {
			labels, _ := c.Modules.ByKey(key)
			for _, label := range labels {
				if _, seen := set[label]; !seen {
					set[label] = struct{}{}
					ordered = append(ordered, label)
				}
			}
		}
		coverage[rowName] = ordered
	}
	return coverage
}
