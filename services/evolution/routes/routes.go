// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/enrich"
	"github.com/AleutianAI/evomatrix/services/evolution/handlers"
	"github.com/AleutianAI/evomatrix/services/evolution/middleware"
)

// SetupRoutes registers every endpoint of the evolution service.
//
// # Description
//
// The /api group carries the reference API. The /api/evolution-data tree
// is a set of deprecated aliases kept for callers of the original API;
// each alias shares its canonical handler and logs a deprecation warning
// outside release mode.
func SetupRoutes(router *gin.Engine, techs *catalog.TechnologyStore,
	cases *catalog.CaseStore, enricher *enrich.Client, logger *slog.Logger) {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.RequestLogger(logger))
	{
		api.GET("/modules", handlers.GetModules())
		api.GET("/modules/:id", handlers.GetModuleByName())

		evolution := api.Group("/evolution")
		{
			evolution.GET("", handlers.GetEvolution())
			evolution.GET("/integrated", handlers.GetEvolutionIntegrated(techs, cases, logger))
			evolution.GET("/dynamic", handlers.GetEvolutionDynamic(techs, cases, logger))
		}

		api.GET("/technologies", handlers.GetTechnologies(techs))
		api.GET("/technologies/rows", handlers.GetTechnologyRows(techs))
		api.GET("/technologies/:id", handlers.GetTechnologyByID(techs))
		api.GET("/technologies/:id/enrich", handlers.EnrichTechnology(techs, enricher, logger))

		api.GET("/trading-machines", handlers.GetTradingMachines(cases))
		api.GET("/trading-machines/technologies", handlers.GetCaseTechnologies(cases))
		api.GET("/trading-machines/:id", handlers.GetTradingMachineByID(cases))
		api.POST("/import/trading-machine", handlers.ImportTradingMachine(cases, logger))

		api.GET("/tree-data", handlers.GetTreeData())

		// Deprecated aliases for the pre-rename evolution endpoints.
		deprecated := api.Group("/evolution-data")
		{
			deprecated.GET("", middleware.Deprecated(logger, handlers.GetEvolution()))
			deprecated.GET("/integrated",
				middleware.Deprecated(logger, handlers.GetEvolutionIntegrated(techs, cases, logger)))
			deprecated.GET("/dynamic",
				middleware.Deprecated(logger, handlers.GetEvolutionDynamic(techs, cases, logger)))
		}
	}
}
