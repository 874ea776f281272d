// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/evomatrix/pkg/logging"
	"github.com/AleutianAI/evomatrix/services/evolution"
	"github.com/AleutianAI/evomatrix/services/evolution/config"
)

// runServe builds the service configuration and starts the HTTP server.
//
// Precedence, lowest to highest: built-in defaults, the YAML config
// file, environment variables, command-line flags.
func runServe(cmd *cobra.Command, args []string) {
	fileCfg := loadFileConfig()

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(getEnvString("EVOMATRIX_LOG_LEVEL", fileCfg.Logging.Level)),
		LogDir:  fileCfg.Logging.Dir,
		Service: "evomatrix",
		JSON:    fileCfg.Logging.JSON,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	cfg := evolution.Config{
		Port:               fileCfg.Server.Port,
		GinMode:            fileCfg.Server.GinMode,
		ImportedCasesPath:  fileCfg.Storage.ImportedCasesPath,
		WatchImportedCases: fileCfg.Storage.WatchImportedCases,
		TracingEnabled:     fileCfg.Tracing.Enabled,
		OTLPEndpoint:       fileCfg.Tracing.OTLPEndpoint,
		Logger:             logger.Slog(),
	}

	cfg.Port = getEnvInt("EVOMATRIX_PORT", cfg.Port)
	if path := os.Getenv("EVOMATRIX_CASES_PATH"); path != "" {
		cfg.ImportedCasesPath = path
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		cfg.TracingEnabled = true
		cfg.OTLPEndpoint = endpoint
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if casesPath != "" {
		cfg.ImportedCasesPath = casesPath
	}

	svc, err := evolution.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create the evolution service: %v", err)
	}
	if err := svc.Run(); err != nil {
		log.Fatalf("Evolution service error: %v", err)
	}
}

// loadFileConfig resolves the YAML config, from --config when given,
// otherwise the default path (created on first run).
func loadFileConfig() config.EvomatrixConfig {
	if configPath != "" {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", configPath, err)
		}
		return cfg
	}
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return config.Global
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
