// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/enrich"
	"github.com/AleutianAI/evomatrix/services/evolution/matrix"
	"github.com/AleutianAI/evomatrix/services/evolution/observability"
)

// GetTechnologies returns the technology catalog.
//
// # Description
//
// Without query parameters the full record list is returned. Optional
// filters narrow the result:
//   - search: case-insensitive substring over name, fullName, description
//   - module: module display name matched against applicableModules
//   - from, to: inclusive year range intersected with each record's
//     periods; a missing to runs through the current year
//
// Filters do not compose; the first one present wins, checked in the
// order search, module, from/to.
func GetTechnologies(store *catalog.TechnologyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if q := c.Query("search"); q != "" {
			c.JSON(http.StatusOK, store.Search(q))
			return
		}
		if module := c.Query("module"); module != "" {
			c.JSON(http.StatusOK, store.ByModule(module))
			return
		}
		if fromStr := c.Query("from"); fromStr != "" {
			from, err := strconv.Atoi(fromStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a year"})
				return
			}
			to, err := strconv.Atoi(c.DefaultQuery("to", "0"))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a year"})
				return
			}
			c.JSON(http.StatusOK, store.ByPeriod(from, to))
			return
		}
		c.JSON(http.StatusOK, store.All())
	}
}

// GetTechnologyByID returns one technology record by id.
func GetTechnologyByID(store *catalog.TechnologyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, ok := store.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "technology not found"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// GetTechnologyRows returns the flattened per-technology row view.
//
// # Description
//
// An optional module query parameter switches the builder into filter
// mode: only rows whose module (or applicableModules) matches are
// returned, with all intersecting revision cells left unfilled except the
// grouping metadata.
func GetTechnologyRows(store *catalog.TechnologyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.RecordDerivation("rows")
		rows := matrix.BuildRows(store.All(), c.Query("module"))
		c.JSON(http.StatusOK, rows)
	}
}

// EnrichTechnology looks up external reference data for a technology.
//
// # Description
//
// The path parameter is a catalog id when it resolves, otherwise it is
// treated as a raw technology name. Best-effort only: the lookup client
// swallows every upstream failure, so this endpoint answers 200 with a
// partial record or 404 when nothing was found. It never surfaces
// upstream errors and is never on the path of the static-data endpoints.
func EnrichTechnology(store *catalog.TechnologyStore, client *enrich.Client,
	logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		name := c.Param("id")
		if record, ok := store.ByID(name); ok {
			name = record.Name
		}
		result := client.Lookup(c.Request.Context(), name)
		if result == nil {
			logger.Debug("no enrichment data found", "name", name)
			c.JSON(http.StatusNotFound, gin.H{"error": "no enrichment data found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
