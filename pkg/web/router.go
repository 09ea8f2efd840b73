// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/tenant-core/internal/db"
	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/directory"
	"github.com/canonical/tenant-core/pkg/metrics"
	"github.com/canonical/tenant-core/pkg/quota"
	"github.com/canonical/tenant-core/pkg/status"
	"github.com/canonical/tenant-core/pkg/tenancy"
)

func NewRouter(
	adminAPI *directory.API,
	scoped *tenancy.Middleware,
	quotaService quota.ServiceInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Administrative surface, addressed by tenant id, never by host.
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		adminAPI.RegisterEndpoints(r)
	})

	// Tenant-facing surface. Every request is scoped to the tenant its host
	// resolves to and counted against the api_calls quota.
	router.Group(func(r chi.Router) {
		r.Use(scoped.Scope)
		r.Use(apiCallQuota(quotaService, logger))
		r.Get("/api/v0/whoami", whoami(logger))
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// apiCallQuota charges one api_call per scoped request and turns quota
// denials into 429s.
func apiCallQuota(quotaService quota.ServiceInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope, ok := tenancy.ScopeFromContext(r.Context())
			if !ok {
				http.Error(w, "no tenant scope", http.StatusInternalServerError)
				return
			}

			if err := quotaService.CheckAndReserve(r.Context(), scope.TenantID, types.ResourceAPICalls, 1); err != nil {
				var denied *quota.DeniedError
				if errors.As(err, &denied) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusTooManyRequests)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"error":    "quota_exceeded",
						"resource": string(denied.Resource),
						"ceiling":  denied.Ceiling,
					})
					return
				}
				logger.Errorf("failed to charge api call quota for tenant %s: %v", scope.TenantID, err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// whoami reports the tenancy binding of the request, mostly useful for
// debugging host and domain configuration.
func whoami(logger logging.LoggerInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, ok := tenancy.ScopeFromContext(r.Context())
		if !ok {
			http.Error(w, "no tenant scope", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"tenant_id": scope.TenantID,
			"namespace": scope.NamespaceID,
			"state":     string(scope.State),
			"read_only": scope.ReadOnly,
		}); err != nil {
			logger.Errorf("failed to encode whoami response: %v", err)
		}
	}
}
