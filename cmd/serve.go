// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canonical/tenant-core/internal/config"
	"github.com/canonical/tenant-core/internal/db"
	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring/prometheus"
	"github.com/canonical/tenant-core/internal/storage"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/pkg/directory"
	"github.com/canonical/tenant-core/pkg/jobs"
	"github.com/canonical/tenant-core/pkg/namespace"
	"github.com/canonical/tenant-core/pkg/provisioning"
	"github.com/canonical/tenant-core/pkg/quota"
	"github.com/canonical/tenant-core/pkg/resolver"
	"github.com/canonical/tenant-core/pkg/tenancy"
	"github.com/canonical/tenant-core/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-core", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	namespaceManager, err := namespace.NewManager(specs.DSN, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create namespace manager: %v", err)
	}
	defer namespaceManager.Close()

	directoryService := directory.NewService(s, specs.TrialLength, tracer, monitor, logger)

	resolverService, err := resolver.NewService(
		directoryService,
		specs.SharedHostSuffix,
		specs.ResolverCacheTTL,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create host resolver: %v", err)
	}
	directoryService.SetInvalidator(resolverService)

	quotaService := quota.NewService(directoryService, s, tracer, monitor, logger)

	enqueuer := jobs.NewEnqueuer(specs.RedisAddr, logger)
	defer enqueuer.Close()

	workflow := provisioning.NewService(
		directoryService,
		namespaceManager,
		enqueuer,
		tracer,
		monitor,
		logger,
	)

	var worker *jobs.Worker
	if specs.JobsWorkerEnabled {
		worker = jobs.NewWorker(specs.RedisAddr, specs.JobsConcurrency, workflow, logger)
		if err := worker.Start(); err != nil {
			return fmt.Errorf("failed to start jobs worker: %v", err)
		}
		defer worker.Shutdown()
	}

	scoped := tenancy.NewMiddleware(resolverService, tracer, monitor, logger)
	adminAPI := directory.NewAPI(directoryService, workflow, quotaService, tracer, monitor, logger)

	router := web.NewRouter(
		adminAPI,
		scoped,
		quotaService,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
