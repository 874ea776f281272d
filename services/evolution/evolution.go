// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package evolution provides the technology-evolution reference service.
//
// This package contains the main Service type that coordinates all
// components of the service: HTTP routing, the technology and case
// catalogs, the file-backed import store, the enrichment client, and
// observability infrastructure.
//
// # Usage
//
//	cfg := evolution.Config{Port: 12230}
//	svc, err := evolution.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(svc.Run())
package evolution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/enrich"
	"github.com/AleutianAI/evomatrix/services/evolution/observability"
	"github.com/AleutianAI/evomatrix/services/evolution/routes"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Service defines the contract for the evolution service.
//
// # Description
//
// Service abstracts the service lifecycle, enabling testing and
// alternative implementations. Only essential lifecycle methods are
// exposed.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use. Run() blocks and
// should only be called once per instance.
//
// # Assumptions
//
//   - Service is fully initialized before Run() is called
//   - Run() is called at most once per Service instance
type Service interface {
	// Run starts the HTTP server and blocks until shutdown or error.
	//
	// # Outputs
	//
	//   - error: Non-nil if the server fails to start or encounters a
	//     fatal error
	Run() error

	// Router returns the underlying Gin engine for testing.
	//
	// # Outputs
	//
	//   - *gin.Engine: The configured router with all routes registered
	//
	// # Assumptions
	//
	//   - Caller will not modify the router
	Router() *gin.Engine
}

// =============================================================================
// Configuration
// =============================================================================

// Config holds evolution service configuration options.
//
// # Description
//
// Config centralizes all configuration for the service. Values can be
// populated from environment variables, the YAML config file, or
// programmatically for testing.
//
// # Required Fields
//
// None - all fields have sensible defaults.
type Config struct {
	// Port is the HTTP server port. Default: 12230
	Port int

	// GinMode sets the Gin framework mode.
	// Valid values: "debug", "release", "test"
	// Default: uses GIN_MODE env var or "debug"
	GinMode string

	// ImportedCasesPath is the JSON file the import endpoint appends
	// to. Default: "imported-cases.json" in the working directory.
	ImportedCasesPath string

	// WatchImportedCases starts an fsnotify watcher that reloads the
	// imported-cases file when it is edited outside the process.
	// Default: true
	WatchImportedCases bool

	// DisableMetrics turns off Prometheus metric registration. The zero
	// value keeps metrics on.
	DisableMetrics bool

	// TracingEnabled turns on OTLP span export. Off by default; the
	// service is fully functional without a collector.
	TracingEnabled bool

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	// Default: "localhost:4317"
	OTLPEndpoint string

	// Logger is the structured logger for all components.
	// Default: slog.Default()
	Logger *slog.Logger
}

// =============================================================================
// Implementation
// =============================================================================

// service implements Service for production use.
//
// # Description
//
// service is the main implementation that coordinates:
//   - HTTP routing via Gin
//   - The static technology catalog and the file-backed case store
//   - The best-effort enrichment client
//   - OpenTelemetry tracing (optional)
//   - Prometheus metrics
//
// # Thread Safety
//
// Thread-safe after construction. All fields are read-only after New()
// returns; the case store serializes its own writers.
type service struct {
	config        Config
	router        *gin.Engine
	techs         *catalog.TechnologyStore
	cases         *catalog.CaseStore
	watcher       *catalog.FileWatcher
	enricher      *enrich.Client
	logger        *slog.Logger
	tracerCleanup func(context.Context)
	watcherCancel context.CancelFunc
}

// =============================================================================
// Constructor
// =============================================================================

// New creates a new evolution Service with the given configuration.
//
// # Description
//
// New initializes all service components:
//  1. Applies default configuration for missing values
//  2. Initializes OpenTelemetry tracing (when enabled)
//  3. Initializes Prometheus metrics
//  4. Loads the technology catalog and the case store
//  5. Starts the imported-cases file watcher (when enabled)
//  6. Sets up HTTP routes
//
// # Inputs
//
//   - cfg: Service configuration. Zero values use defaults.
//
// # Outputs
//
//   - Service: Ready-to-run service
//   - error: Non-nil if initialization fails
//
// # Limitations
//
//   - The imported-cases file must live in a writable directory
//
// # Assumptions
//
//   - The OTel collector is reachable when tracing is enabled
func New(cfg Config) (Service, error) {
	s := &service{
		config: applyConfigDefaults(cfg),
	}
	s.logger = s.config.Logger

	if s.config.GinMode != "" {
		gin.SetMode(s.config.GinMode)
	}

	if s.config.TracingEnabled {
		cleanup, err := s.initTracer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer: %w", err)
		}
		s.tracerCleanup = cleanup
	}

	if !s.config.DisableMetrics && observability.DefaultMetrics == nil {
		observability.InitMetrics()
		s.logger.Info("Initialized Prometheus metrics")
	}

	if err := s.initCatalog(); err != nil {
		s.cleanup()
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}

	s.enricher = enrich.NewClient(s.logger)
	s.initRouter()

	return s, nil
}

// =============================================================================
// Service Interface Methods
// =============================================================================

// Run starts the HTTP server and blocks until shutdown or error.
func (s *service) Run() error {
	defer s.cleanup()

	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("Starting evolution service", "port", s.config.Port)

	return s.router.Run(addr)
}

// Router returns the underlying Gin engine for testing.
func (s *service) Router() *gin.Engine {
	return s.router
}

// =============================================================================
// Private Initialization Methods
// =============================================================================

// applyConfigDefaults fills in missing configuration values.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = 12230
	}
	if cfg.ImportedCasesPath == "" {
		cfg.ImportedCasesPath = "imported-cases.json"
	}
	if cfg.OTLPEndpoint == "" {
		cfg.OTLPEndpoint = "localhost:4317"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// initCatalog loads the static stores and the file-backed case store,
// then emits the single startup diagnostic line.
func (s *service) initCatalog() error {
	s.techs = catalog.NewTechnologyStore()

	cases, err := catalog.NewCaseStore(s.config.ImportedCasesPath, s.logger)
	if err != nil {
		return err
	}
	s.cases = cases

	if s.config.WatchImportedCases {
		watcher, err := catalog.NewFileWatcher(cases, s.logger)
		if err != nil {
			s.logger.Warn("imported-cases watcher unavailable", "error", err)
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			s.watcher = watcher
			s.watcherCancel = cancel
			watcher.Start(ctx)
		}
	}

	s.logger.Info("catalog loaded",
		"modules", len(catalog.ModuleNames()),
		"technologies", len(s.techs.All()),
		"cases", s.cases.Count())
	return nil
}

// initTracer initializes OpenTelemetry distributed tracing.
//
// # Description
//
// Sets up an OTLP trace exporter sending spans to the configured
// collector over an insecure gRPC connection (appropriate for internal
// networks).
//
// # Outputs
//
//   - func(context.Context): Cleanup function to call on shutdown
//   - error: Non-nil if tracer setup fails
func (s *service) initTracer() (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(s.config.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("evomatrix-service")))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			s.logger.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}

	return cleanup, nil
}

// initRouter sets up the Gin HTTP router with all routes.
func (s *service) initRouter() {
	s.router = gin.Default()
	if s.config.TracingEnabled {
		s.router.Use(otelgin.Middleware("evomatrix-service"))
	}

	routes.SetupRoutes(s.router, s.techs, s.cases, s.enricher, s.logger)
}

// cleanup releases all resources held by the service.
func (s *service) cleanup() {
	if s.watcherCancel != nil {
		s.watcherCancel()
	}
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.tracerCleanup != nil {
		s.tracerCleanup(context.Background())
	}
}

// =============================================================================
// Compile-time Interface Compliance
// =============================================================================

var _ Service = (*service)(nil)
