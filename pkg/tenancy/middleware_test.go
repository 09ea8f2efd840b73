// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/resolver"
)

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tenancy.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupMiddleware(t *testing.T) (*Middleware, *MockResolverInterface, *MockMonitorInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockResolver := NewMockResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	// The middleware threads values through the traced context, so the mock
	// must hand back the context it was given.
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockMonitor.EXPECT().IncActiveTenantScopes().AnyTimes()
	mockMonitor.EXPECT().DecActiveTenantScopes().AnyTimes()

	return NewMiddleware(mockResolver, mockTracer, mockMonitor, mockLogger), mockResolver, mockMonitor
}

func TestMiddleware_Scope(t *testing.T) {
	activeTenant := &types.Tenant{
		ID:          "tenant-1",
		NamespaceID: "ns_acme",
		State:       types.StateActive,
	}
	suspendedTenant := &types.Tenant{
		ID:                 "tenant-2",
		NamespaceID:        "ns_other",
		State:              types.StateSuspended,
		SubscriptionStatus: types.SubscriptionPastDue,
	}

	testCases := []struct {
		name           string
		method         string
		tenant         *types.Tenant
		resolveErr     error
		expectedStatus int
		expectScope    bool
		expectReadOnly bool
	}{
		{
			name:           "active tenant write allowed",
			method:         http.MethodPost,
			tenant:         activeTenant,
			expectedStatus: http.StatusOK,
			expectScope:    true,
		},
		{
			name:           "unknown host is 404",
			method:         http.MethodGet,
			resolveErr:     resolver.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "resolver failure is 500",
			method:         http.MethodGet,
			resolveErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "suspended tenant read gets read-only scope",
			method:         http.MethodGet,
			tenant:         suspendedTenant,
			expectedStatus: http.StatusOK,
			expectScope:    true,
			expectReadOnly: true,
		},
		{
			name:           "suspended tenant write rejected",
			method:         http.MethodPost,
			tenant:         suspendedTenant,
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name:           "provisioning tenant unavailable",
			method:         http.MethodGet,
			tenant:         &types.Tenant{ID: "tenant-3", State: types.StateProvisioning},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "deactivating tenant unavailable",
			method:         http.MethodGet,
			tenant:         &types.Tenant{ID: "tenant-4", State: types.StateDeactivating},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "deleted tenant unavailable",
			method:         http.MethodDelete,
			tenant:         &types.Tenant{ID: "tenant-5", State: types.StateDeleted},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, mockResolver, _ := setupMiddleware(t)

			if tc.resolveErr != nil {
				mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, tc.resolveErr)
			} else {
				mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(tc.tenant, nil)
			}

			var gotScope Scope
			var scopeBound bool
			handler := m.Scope(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotScope, scopeBound = ScopeFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tc.method, "/", nil)
			req.Host = "acme.example.com"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
			if scopeBound != tc.expectScope {
				t.Fatalf("scope bound = %v, expected %v", scopeBound, tc.expectScope)
			}
			if tc.expectScope {
				if gotScope.TenantID != tc.tenant.ID || gotScope.NamespaceID != tc.tenant.NamespaceID {
					t.Errorf("unexpected scope %+v", gotScope)
				}
				if gotScope.ReadOnly != tc.expectReadOnly {
					t.Errorf("scope read-only = %v, expected %v", gotScope.ReadOnly, tc.expectReadOnly)
				}
			}
		})
	}
}

func TestMiddleware_AllowDuringSuspension(t *testing.T) {
	m, mockResolver, _ := setupMiddleware(t)

	suspended := &types.Tenant{
		ID:                 "tenant-1",
		NamespaceID:        "ns_acme",
		State:              types.StateSuspended,
		SubscriptionStatus: types.SubscriptionPastDue,
	}
	mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(suspended, nil)

	handler := AllowDuringSuspension(m.Scope(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected exempt write to pass, got %d", rec.Code)
	}
}

// Concurrent requests for different tenants must each observe only their own
// scope; a binding leaking across requests would show up as a mismatched
// namespace here.
func TestMiddleware_ConcurrentScopesAreIsolated(t *testing.T) {
	m, mockResolver, _ := setupMiddleware(t)

	mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, host string) (*types.Tenant, error) {
			return &types.Tenant{
				ID:          "tenant-" + host,
				NamespaceID: "ns_" + host,
				State:       types.StateActive,
			}, nil
		},
	).AnyTimes()

	handler := m.Scope(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := ScopeFromContext(r.Context())
		if !ok || scope.NamespaceID != "ns_"+r.Host {
			http.Error(w, "scope mismatch", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	const workers = 32
	var wg sync.WaitGroup
	failures := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			host := fmt.Sprintf("t%d", i)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = host
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				failures <- host
			}
		}(i)
	}
	wg.Wait()
	close(failures)

	for host := range failures {
		t.Errorf("request for %s observed a foreign scope", host)
	}
}

func TestBinder_RunInTenant(t *testing.T) {
	testCases := []struct {
		name        string
		tenant      *types.Tenant
		expectRun   bool
		expectedErr error
	}{
		{
			name:      "active tenant runs",
			tenant:    &types.Tenant{ID: "tenant-1", NamespaceID: "ns_acme", State: types.StateActive},
			expectRun: true,
		},
		{
			name:        "deleted tenant does not run",
			tenant:      &types.Tenant{ID: "tenant-2", State: types.StateDeleted},
			expectedErr: ErrTenantUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockDirectory.EXPECT().FindByID(gomock.Any(), tc.tenant.ID).Return(tc.tenant, nil)
			if tc.expectRun {
				mockMonitor.EXPECT().IncActiveTenantScopes()
				mockMonitor.EXPECT().DecActiveTenantScopes()
			}

			b := NewBinder(mockDirectory, mockTracer, mockMonitor, mockLogger)

			ran := false
			err := b.RunInTenant(context.Background(), tc.tenant.ID, func(ctx context.Context) error {
				ran = true
				if NamespaceFromContext(ctx) != tc.tenant.NamespaceID {
					t.Errorf("expected namespace %q in scope", tc.tenant.NamespaceID)
				}
				return nil
			})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if ran != tc.expectRun {
				t.Errorf("fn ran = %v, expected %v", ran, tc.expectRun)
			}
		})
	}
}
