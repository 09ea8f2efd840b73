// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Hosts of the form <slug>.<shared suffix> resolve by slug, anything
	// else resolves through a domain binding.
	SharedHostSuffix string        `envconfig:"shared_host_suffix" default:"example.com"`
	ResolverCacheTTL time.Duration `envconfig:"resolver_cache_ttl" default:"5s"`

	TrialLength time.Duration `envconfig:"trial_length" default:"336h"`

	RedisAddr         string `envconfig:"redis_addr" default:"localhost:6379"`
	JobsWorkerEnabled bool   `envconfig:"jobs_worker_enabled" default:"true"`
	JobsConcurrency   int    `envconfig:"jobs_concurrency" default:"4"`
}
