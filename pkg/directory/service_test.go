// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/storage"
	"github.com/canonical/tenant-core/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_directory.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const trialLength = 336 * time.Hour

func TestNamespaceIDForSlug(t *testing.T) {
	testCases := []struct {
		slug     string
		expected string
	}{
		{"acme", "ns_acme"},
		{"acme-corp", "ns_acme_corp"},
		{"a-b-c", "ns_a_b_c"},
	}

	for _, tc := range testCases {
		if got := NamespaceIDForSlug(tc.slug); got != tc.expected {
			t.Errorf("NamespaceIDForSlug(%q) = %q, expected %q", tc.slug, got, tc.expected)
		}
	}
}

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name        string
		slug        string
		plan        types.Plan
		setupMocks  func(*MockStorageInterface)
		check       func(*testing.T, *types.Tenant)
		expectedErr error
	}{
		{
			name: "trial tenant gets trialing subscription",
			slug: "acme-corp",
			plan: types.PlanTrial,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						tenant.ID = "tenant-1"
						return tenant, nil
					},
				)
			},
			check: func(t *testing.T, tenant *types.Tenant) {
				if tenant.State != types.StateProvisioning {
					t.Errorf("expected PROVISIONING state, got %s", tenant.State)
				}
				if tenant.SubscriptionStatus != types.SubscriptionTrialing {
					t.Errorf("expected TRIALING subscription, got %s", tenant.SubscriptionStatus)
				}
				if tenant.NamespaceID != "ns_acme_corp" {
					t.Errorf("unexpected namespace id %q", tenant.NamespaceID)
				}
				if remaining := time.Until(tenant.TrialEndsAt); remaining < trialLength-time.Minute {
					t.Errorf("trial window too short: %s", remaining)
				}
			},
		},
		{
			name: "paid tenant gets active subscription",
			slug: "acme",
			plan: types.PlanStarter,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						tenant.ID = "tenant-2"
						return tenant, nil
					},
				)
			},
			check: func(t *testing.T, tenant *types.Tenant) {
				if tenant.SubscriptionStatus != types.SubscriptionActive {
					t.Errorf("expected ACTIVE subscription, got %s", tenant.SubscriptionStatus)
				}
			},
		},
		{
			name:        "invalid slug rejected before storage",
			slug:        "Acme Corp",
			plan:        types.PlanTrial,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidSlug,
		},
		{
			name:        "slug with leading dash rejected",
			slug:        "-acme",
			plan:        types.PlanTrial,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidSlug,
		},
		{
			name: "duplicate slug maps to ErrDuplicateSlug",
			slug: "acme",
			plan: types.PlanTrial,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateSlug,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.CreateTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)

			tenant, err := s.CreateTenant(context.Background(), "Acme", tc.slug, "ops@acme.test", tc.plan)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.check(t, tenant)
		})
	}
}

func TestService_UpdateLifecycleState(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name          string
		currentState  types.LifecycleState
		newState      types.LifecycleState
		expectUpdate  bool
		expectedErrAs bool
	}{
		{
			name:         "provisioning to active",
			currentState: types.StateProvisioning,
			newState:     types.StateActive,
			expectUpdate: true,
		},
		{
			name:         "active to suspended",
			currentState: types.StateActive,
			newState:     types.StateSuspended,
			expectUpdate: true,
		},
		{
			name:          "deleted is terminal",
			currentState:  types.StateDeleted,
			newState:      types.StateActive,
			expectedErrAs: true,
		},
		{
			name:          "suspended cannot jump to deleted",
			currentState:  types.StateSuspended,
			newState:      types.StateDeleted,
			expectedErrAs: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockInvalidator := NewMockInvalidatorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.UpdateLifecycleState").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, State: tc.currentState}, nil)

			if tc.expectUpdate {
				mockStorage.EXPECT().UpdateTenantState(gomock.Any(), tenantID, tc.newState).Return(nil)
				mockInvalidator.EXPECT().InvalidateTenant(tenantID)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			}

			s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)
			s.SetInvalidator(mockInvalidator)

			tenant, err := s.UpdateLifecycleState(context.Background(), tenantID, tc.newState)

			if tc.expectedErrAs {
				var invalidTransition *InvalidTransitionError
				if !errors.As(err, &invalidTransition) {
					t.Fatalf("expected InvalidTransitionError, got %v", err)
				}
				if invalidTransition.From != tc.currentState || invalidTransition.To != tc.newState {
					t.Errorf("unexpected transition error: %v", invalidTransition)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tenant.State != tc.newState {
				t.Errorf("expected state %s, got %s", tc.newState, tenant.State)
			}
		})
	}
}

func TestService_SuspendTenant(t *testing.T) {
	tenantID := "tenant-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockInvalidator := NewMockInvalidatorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, State: types.StateActive}, nil)
	mockStorage.EXPECT().UpdateTenantStatus(gomock.Any(), tenantID, types.StateSuspended, types.SubscriptionPastDue).Return(nil)
	mockInvalidator.EXPECT().InvalidateTenant(tenantID)
	mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

	s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)
	s.SetInvalidator(mockInvalidator)

	if err := s.SuspendTenant(context.Background(), tenantID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_SuspendTenant_UpdateFailureLeavesNoPartialState(t *testing.T) {
	tenantID := "tenant-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockInvalidator := NewMockInvalidatorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, State: types.StateActive}, nil)
	// State and subscription status move in one storage call. When it fails
	// neither column has changed, and no invalidation or audit event fires.
	mockStorage.EXPECT().
		UpdateTenantStatus(gomock.Any(), tenantID, types.StateSuspended, types.SubscriptionPastDue).
		Return(errors.New("connection reset"))

	s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)
	s.SetInvalidator(mockInvalidator)

	if err := s.SuspendTenant(context.Background(), tenantID); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestService_ResumeTenant(t *testing.T) {
	tenantID := "tenant-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockInvalidator := NewMockInvalidatorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, State: types.StateSuspended}, nil)
	mockStorage.EXPECT().UpdateTenantStatus(gomock.Any(), tenantID, types.StateActive, types.SubscriptionActive).Return(nil)
	mockInvalidator.EXPECT().InvalidateTenant(tenantID)
	mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

	s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)
	s.SetInvalidator(mockInvalidator)

	if err := s.ResumeTenant(context.Background(), tenantID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_BindDomain(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		host        string
		setupMocks  func(*MockStorageInterface, *MockInvalidatorInterface)
		expectedErr error
	}{
		{
			name: "host is normalised to lower case",
			host: "CRM.Acme.COM",
			setupMocks: func(mockStorage *MockStorageInterface, mockInvalidator *MockInvalidatorInterface) {
				mockStorage.EXPECT().BindDomain(gomock.Any(), tenantID, "crm.acme.com", true).
					Return(&types.DomainBinding{TenantID: tenantID, Host: "crm.acme.com", IsPrimary: true}, nil)
				mockInvalidator.EXPECT().InvalidateHost("crm.acme.com")
			},
		},
		{
			name: "duplicate host maps to ErrHostAlreadyBound",
			host: "crm.acme.com",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockInvalidatorInterface) {
				mockStorage.EXPECT().BindDomain(gomock.Any(), tenantID, "crm.acme.com", true).
					Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrHostAlreadyBound,
		},
		{
			name: "unknown tenant maps to ErrNotFound",
			host: "crm.acme.com",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockInvalidatorInterface) {
				mockStorage.EXPECT().BindDomain(gomock.Any(), tenantID, "crm.acme.com", true).
					Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockInvalidator := NewMockInvalidatorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.BindDomain").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockInvalidator)

			s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)
			s.SetInvalidator(mockInvalidator)

			binding, err := s.BindDomain(context.Background(), tenantID, tc.host, true)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if binding.Host != "crm.acme.com" {
				t.Errorf("expected normalised host, got %q", binding.Host)
			}
		})
	}
}

func TestService_FindByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.FindByID").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	s := NewService(mockStorage, trialLength, mockTracer, mockMonitor, mockLogger)

	if _, err := s.FindByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
