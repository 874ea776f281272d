// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP handlers for the evolution service.
//
// Handlers are gin.HandlerFunc closures over the stores they read. All
// matrix derivations are pure and recomputed per request; the stores are
// the only shared state and are safe for concurrent reads. This is the
// single layer that maps errors to HTTP status codes.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/matrix"
	"github.com/AleutianAI/evomatrix/services/evolution/observability"
)

// GetModules returns the hand-authored baseline matrix as a flat module list.
func GetModules() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.RecordDerivation("baseline")
		c.JSON(http.StatusOK, catalog.Baseline().Modules)
	}
}

// GetModuleByName returns a single baseline module by exact name match.
//
// # Description
//
// The path parameter is the module's display name (URL-escaped Russian
// string). Unknown names yield 404 with an error body.
func GetModuleByName() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("id")
		module, ok := catalog.ModuleByName(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "module not found"})
			return
		}
		c.JSON(http.StatusOK, module)
	}
}

// GetEvolution returns the baseline matrix wrapped as {modules}.
func GetEvolution() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.RecordDerivation("baseline")
		c.JSON(http.StatusOK, catalog.Baseline())
	}
}

// GetEvolutionIntegrated returns the integrated matrix.
//
// # Description
//
// Folds the technology catalog and every case record into a fresh copy of
// the baseline. Malformed case periods are logged and skipped inside the
// assembler; they never fail the response.
func GetEvolutionIntegrated(techs *catalog.TechnologyStore, cases *catalog.CaseStore,
	logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.RecordDerivation("integrated")
		data := matrix.Integrated(catalog.Baseline(), techs.All(), cases.All(), logger)
		c.JSON(http.StatusOK, data)
	}
}

// GetEvolutionDynamic returns the per-technology dynamic matrix.
func GetEvolutionDynamic(techs *catalog.TechnologyStore, cases *catalog.CaseStore,
	logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.RecordDerivation("dynamic")
		data := matrix.Dynamic(techs.All(), cases.All(), logger)
		c.JSON(http.StatusOK, data)
	}
}

// GetTreeData returns the static ML-technique family tree.
func GetTreeData() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Tree())
	}
}
