// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command evomatrix starts the technology-evolution reference service or
// runs catalog maintenance tasks.
//
// # Commands
//
//   - serve: start the HTTP server
//   - validate: run catalog consistency checks
//
// # Environment Variables
//
//   - EVOMATRIX_PORT: HTTP server port (default: 12230)
//   - EVOMATRIX_CASES_PATH: imported-cases JSON file path
//   - EVOMATRIX_LOG_LEVEL: debug, info, warn, error (default: info)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OpenTelemetry collector (optional;
//     tracing stays off unless set or enabled in the config file)
//
// # Usage
//
//	# Build
//	go build -o evomatrix ./cmd/evomatrix
//
//	# Run
//	./evomatrix serve
//	./evomatrix validate
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
