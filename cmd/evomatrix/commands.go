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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string
	servePort  int
	casesPath  string
	strictMode bool

	rootCmd = &cobra.Command{
		Use:   "evomatrix",
		Short: "A reference service for the evolution of algorithmic-trading technology",
		Long: `Evomatrix serves a curated knowledge base describing how
algorithmic-trading technology evolved across five revisions (2000-2025):
an evolution matrix per functional module, a per-technology row view, and
a library of end-to-end trading-machine case studies.`,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the evolution HTTP API server",
		Run:   runServe, // Defined in serve.go
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check the technology and case catalogs for consistency issues",
		Run:   runValidate, // Defined in validate.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (default ~/.evomatrix/evomatrix.yaml)")

	serveCmd.Flags().IntVar(&servePort, "port", 0,
		"HTTP port, overrides config and EVOMATRIX_PORT")
	serveCmd.Flags().StringVar(&casesPath, "cases", "",
		"imported-cases JSON file, overrides config and EVOMATRIX_CASES_PATH")

	validateCmd.Flags().BoolVar(&strictMode, "strict", false,
		"treat warnings as errors")
	validateCmd.Flags().StringVar(&casesPath, "cases", "",
		"imported-cases JSON file to check alongside the seed data")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}
