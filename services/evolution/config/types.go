// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the evomatrix service configuration from a YAML
// file, falling back to defaults on first run.
package config

import (
	"os"
	"path/filepath"
)

// EvomatrixConfig is the on-disk service configuration.
type EvomatrixConfig struct {
	// Server: HTTP listener settings
	Server ServerConfig `yaml:"server"`

	// Storage: where imported cases are persisted
	Storage StorageConfig `yaml:"storage"`

	// Logging: level and optional file destination
	Logging LoggingConfig `yaml:"logging"`

	// Tracing: OpenTelemetry export, disabled by default
	Tracing TracingConfig `yaml:"tracing"`
}

type ServerConfig struct {
	Port    int    `yaml:"port"`     // e.g. 12230
	GinMode string `yaml:"gin_mode"` // debug, release, test
}

type StorageConfig struct {
	// ImportedCasesPath is the JSON array file the import endpoint
	// appends to. Auto-initialized to [] if absent.
	ImportedCasesPath string `yaml:"imported_cases_path"`

	// WatchImportedCases reloads the file on external modification.
	WatchImportedCases bool `yaml:"watch_imported_cases"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // "" disables file logging
	JSON  bool   `yaml:"json"`
}

type TracingConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"` // e.g. localhost:4317
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() EvomatrixConfig {
	casesPath := "imported-cases.json"
	if home, err := os.UserHomeDir(); err == nil {
		casesPath = filepath.Join(home, ".evomatrix", "imported-cases.json")
	}
	return EvomatrixConfig{
		Server: ServerConfig{
			Port:    12230,
			GinMode: "debug",
		},
		Storage: StorageConfig{
			ImportedCasesPath:  casesPath,
			WatchImportedCases: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			OTLPEndpoint: "localhost:4317",
		},
	}
}
