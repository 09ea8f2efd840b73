// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/resolver"
)

// Middleware binds a tenancy scope to every request on the tenant-facing
// surface, derived from the request host.
type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	res ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		resolver: res,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Scope resolves the request host and binds the tenant scope for the rest of
// the chain. The binding lives only in the request context and the active
// scope gauge is decremented on every exit path.
func (m *Middleware) Scope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "tenancy.Middleware.Scope")
		defer span.End()

		tenant, err := m.resolver.Resolve(ctx, r.Host)
		if err != nil {
			if errors.Is(err, resolver.ErrNotFound) {
				writeError(w, http.StatusNotFound, "unknown_host", "no tenant for host")
				return
			}
			m.logger.Errorf("failed to resolve host %q: %v", r.Host, err)
			writeError(w, http.StatusInternalServerError, "internal", "internal server error")
			return
		}

		scope, err := scopeFor(tenant, isWrite(r.Method), suspensionExempt(ctx))
		if err != nil {
			writeScopeError(w, err)
			return
		}

		m.monitor.IncActiveTenantScopes()
		defer m.monitor.DecActiveTenantScopes()

		next.ServeHTTP(w, r.WithContext(ContextWithScope(ctx, scope)))
	})
}

// AllowDuringSuspension marks the rest of the chain as writable even while
// the tenant is suspended. Mount it before Scope on routes like billing
// callbacks that must keep working to lift the suspension.
func AllowDuringSuspension(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(contextWithSuspensionExemption(r.Context())))
	})
}

// scopeFor applies the lifecycle gate. PROVISIONING, DEACTIVATING and
// DELETED tenants serve nothing; SUSPENDED tenants serve reads only.
func scopeFor(tenant *types.Tenant, write, exempt bool) (Scope, error) {
	scope := Scope{
		TenantID:    tenant.ID,
		NamespaceID: tenant.NamespaceID,
		State:       tenant.State,
	}

	switch tenant.State {
	case types.StateActive:
		return scope, nil
	case types.StateSuspended:
		if write && !exempt {
			return Scope{}, &TenantSuspendedError{
				TenantID:           tenant.ID,
				Name:               tenant.Name,
				SubscriptionStatus: tenant.SubscriptionStatus,
			}
		}
		scope.ReadOnly = true
		return scope, nil
	default:
		return Scope{}, ErrTenantUnavailable
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func writeScopeError(w http.ResponseWriter, err error) {
	var suspended *TenantSuspendedError
	if errors.As(err, &suspended) {
		writeError(w, http.StatusPaymentRequired, "subscription_inactive", suspended.Error())
		return
	}
	writeError(w, http.StatusServiceUnavailable, "tenant_unavailable", "tenant unavailable")
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": kind, "message": message})
}
