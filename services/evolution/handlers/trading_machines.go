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
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/importer"
	"github.com/AleutianAI/evomatrix/services/evolution/observability"
)

// GetTradingMachines returns the case catalog, seed and imported records
// combined. An optional technology query parameter narrows the list to
// cases mentioning the label in their stack or module lists.
func GetTradingMachines(store *catalog.CaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if label := c.Query("technology"); label != "" {
			c.JSON(http.StatusOK, store.FindByTechnology(label))
			return
		}
		c.JSON(http.StatusOK, store.All())
	}
}

// GetTradingMachineByID returns one case record by id.
func GetTradingMachineByID(store *catalog.CaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, ok := store.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "trading machine not found"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// GetCaseTechnologies returns every distinct technology label mentioned
// across all case records, sorted.
func GetCaseTechnologies(store *catalog.CaseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.AllTechnologyLabels())
	}
}

// ImportTradingMachine builds a minimally valid case from pasted free text
// and appends it to the file-backed store.
//
// # Description
//
// The body must carry rawText; name and period are optional overrides. The
// constructed record is validated against the full case schema before the
// store writes it, so a rejected import never corrupts the file. Responds
// 201 with the stored record, 400 on any validation failure, 500 on a
// write error.
func ImportTradingMachine(store *catalog.CaseStore, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		var req datatypes.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observability.RecordImport("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			observability.RecordImport("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "rawText is required"})
			return
		}

		record := importer.BuildCase(&req)
		if err := store.Append(record); err != nil {
			var vErr validator.ValidationErrors
			if errors.As(err, &vErr) {
				observability.RecordImport("rejected")
				c.JSON(http.StatusBadRequest, gin.H{"error": "imported case failed schema validation"})
				return
			}
			observability.RecordImport("write_error")
			logger.Error("failed to persist imported case", "id", record.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist imported case"})
			return
		}

		observability.RecordImport("accepted")
		logger.Info("imported trading machine case", "id", record.ID, "name", record.Name)
		c.JSON(http.StatusCreated, record)
	}
}
