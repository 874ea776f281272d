// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides Gin middleware for the evolution service.
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/evomatrix/services/evolution/observability"
)

// RequestLogger emits one structured log line per API request.
//
// # Description
//
// Records method, path, status, and duration for every request whose path
// starts with /api, and feeds the request counters and duration histogram
// when metrics are initialized. Non-API paths (health, metrics, static
// assets) pass through silently.
//
// # Outputs
//
//   - gin.HandlerFunc: The middleware.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if len(path) < 4 || path[:4] != "/api" {
			return
		}

		elapsed := time.Since(start)
		status := c.Writer.Status()
		logger.Info("api request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", elapsed.Milliseconds())

		if m := observability.DefaultMetrics; m != nil {
			m.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
			m.RequestDurationSeconds.WithLabelValues(path).Observe(elapsed.Seconds())
		}
	}
}

// Deprecated wraps a handler registered on a legacy path alias.
//
// # Description
//
// The wrapped handler behaves identically to its canonical counterpart.
// Outside release mode a warn-level line is logged per request so callers
// still on the old path can be found; in release mode the warning is
// suppressed to keep production logs quiet. The deprecated-request counter
// is incremented in all modes.
//
// # Inputs
//
//   - logger: Structured logger; nil uses slog.Default().
//   - handler: The canonical handler for the endpoint.
//
// # Outputs
//
//   - gin.HandlerFunc: The wrapped handler.
func Deprecated(logger *slog.Logger, handler gin.HandlerFunc) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if gin.Mode() != gin.ReleaseMode {
			logger.Warn("deprecated endpoint called, update the client",
				"path", path)
		}
		if m := observability.DefaultMetrics; m != nil {
			m.DeprecatedRequestsTotal.WithLabelValues(path).Inc()
		}
		handler(c)
	}
}
