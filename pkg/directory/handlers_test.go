// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_directory.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupAPITest(t *testing.T) (*chi.Mux, *MockServiceInterface, *MockWorkflowInterface, *MockQuotaInterface, *MockLoggerInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockWorkflow := NewMockWorkflowInterface(ctrl)
	mockQuota := NewMockQuotaInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockWorkflow, mockQuota, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mux, mockService, mockWorkflow, mockQuota, mockLogger
}

func TestAPI_CreateTenant(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockWorkflowInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"Acme","slug":"acme","email":"ops@acme.test","plan":"TRIAL","primary_host":"acme.example.com"}`,
			setupMocks: func(mockWorkflow *MockWorkflowInterface) {
				mockWorkflow.EXPECT().
					ProvisionTenant(gomock.Any(), "Acme", "acme", "ops@acme.test", types.PlanTrial, "acme.example.com").
					Return(&types.Tenant{ID: "tenant-1", Slug: "acme", State: types.StateActive}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "missing email rejected",
			body:           `{"name":"Acme","slug":"acme","plan":"TRIAL","primary_host":"acme.example.com"}`,
			setupMocks:     func(*MockWorkflowInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown plan rejected",
			body:           `{"name":"Acme","slug":"acme","email":"ops@acme.test","plan":"PLATINUM","primary_host":"acme.example.com"}`,
			setupMocks:     func(*MockWorkflowInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate slug returns conflict",
			body: `{"name":"Acme","slug":"acme","email":"ops@acme.test","plan":"TRIAL","primary_host":"acme.example.com"}`,
			setupMocks: func(mockWorkflow *MockWorkflowInterface) {
				mockWorkflow.EXPECT().
					ProvisionTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, ErrDuplicateSlug)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, _, mockWorkflow, _, _ := setupAPITest(t)
			tc.setupMocks(mockWorkflow)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_GetTenant(t *testing.T) {
	mux, mockService, _, _, _ := setupAPITest(t)

	mockService.EXPECT().FindByID(gomock.Any(), "tenant-1").
		Return(&types.Tenant{ID: "tenant-1", Slug: "acme", State: types.StateActive}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tenantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tenant-1" || resp.Slug != "acme" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAPI_GetTenant_NotFound(t *testing.T) {
	mux, mockService, _, _, _ := setupAPITest(t)

	mockService.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAPI_SuspendTenant_InvalidTransition(t *testing.T) {
	mux, mockService, _, _, _ := setupAPITest(t)

	mockService.EXPECT().SuspendTenant(gomock.Any(), "tenant-1").
		Return(&InvalidTransitionError{From: types.StateDeleted, To: types.StateSuspended})

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/suspend", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAPI_DeleteTenant_Accepted(t *testing.T) {
	mux, _, mockWorkflow, _, _ := setupAPITest(t)

	mockWorkflow.EXPECT().DeprovisionTenant(gomock.Any(), "tenant-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestAPI_BindDomain_Conflict(t *testing.T) {
	mux, mockService, _, _, _ := setupAPITest(t)

	mockService.EXPECT().BindDomain(gomock.Any(), "tenant-1", "crm.acme.com", false).
		Return(nil, ErrHostAlreadyBound)

	body := `{"host":"crm.acme.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/domains", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAPI_GetUsage(t *testing.T) {
	mux, mockService, _, mockQuota, _ := setupAPITest(t)

	mockService.EXPECT().FindByID(gomock.Any(), "tenant-1").
		Return(&types.Tenant{ID: "tenant-1", Plan: types.PlanStarter, State: types.StateActive}, nil)
	mockQuota.EXPECT().Usage(gomock.Any(), "tenant-1").Return([]*types.UsageCounter{
		{TenantID: "tenant-1", Resource: types.ResourceUsers, Period: types.LifetimePeriod, Count: 3},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/usage", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []usageCounterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one counter, got %d", len(resp))
	}
	if resp[0].Limit != types.LimitsFor(types.PlanStarter).For(types.ResourceUsers) {
		t.Errorf("expected plan limit in response, got %d", resp[0].Limit)
	}
}
