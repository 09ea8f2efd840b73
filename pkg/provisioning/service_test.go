// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/namespace"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_provisioning.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type workflowMocks struct {
	directory  *MockDirectoryInterface
	namespaces *MockNamespaceManagerInterface
	enqueuer   *MockEnqueuerInterface
	logger     *MockLoggerInterface
}

func setupService(t *testing.T) (*Service, workflowMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := workflowMocks{
		directory:  NewMockDirectoryInterface(ctrl),
		namespaces: NewMockNamespaceManagerInterface(ctrl),
		enqueuer:   NewMockEnqueuerInterface(ctrl),
		logger:     NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(m.directory, m.namespaces, m.enqueuer, mockTracer, mockMonitor, m.logger), m
}

func provisioningTenant() *types.Tenant {
	return &types.Tenant{
		ID:          "tenant-1",
		Slug:        "acme",
		NamespaceID: "ns_acme",
		State:       types.StateProvisioning,
	}
}

func TestService_ProvisionTenant_Success(t *testing.T) {
	s, m := setupService(t)
	tenant := provisioningTenant()

	gomock.InOrder(
		m.directory.EXPECT().CreateTenant(gomock.Any(), "Acme", "acme", "ops@acme.test", types.PlanTrial).Return(tenant, nil),
		m.namespaces.EXPECT().CreateNamespace(gomock.Any(), "ns_acme").Return(nil),
		m.namespaces.EXPECT().SeedNamespace(gomock.Any(), "ns_acme").Return(nil),
		m.directory.EXPECT().BindDomain(gomock.Any(), "tenant-1", "acme.example.com", true).Return(&types.DomainBinding{}, nil),
		m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateActive).
			Return(&types.Tenant{ID: "tenant-1", Slug: "acme", NamespaceID: "ns_acme", State: types.StateActive}, nil),
	)
	m.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

	activated, err := s.ProvisionTenant(context.Background(), "Acme", "acme", "ops@acme.test", types.PlanTrial, "acme.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if activated.State != types.StateActive {
		t.Errorf("expected ACTIVE tenant, got %s", activated.State)
	}
}

func TestService_ProvisionTenant_DirectoryFailureIsNotCompensated(t *testing.T) {
	s, m := setupService(t)

	dirErr := errors.New("duplicate slug")
	m.directory.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dirErr)

	if _, err := s.ProvisionTenant(context.Background(), "Acme", "acme", "ops@acme.test", types.PlanTrial, "acme.example.com"); !errors.Is(err, dirErr) {
		t.Fatalf("expected directory error to pass through, got %v", err)
	}
}

func TestService_ProvisionTenant_Compensation(t *testing.T) {
	stepErr := errors.New("step failed")

	testCases := []struct {
		name       string
		setupMocks func(workflowMocks, *types.Tenant)
	}{
		{
			name: "namespace creation fails",
			setupMocks: func(m workflowMocks, tenant *types.Tenant) {
				m.namespaces.EXPECT().CreateNamespace(gomock.Any(), "ns_acme").Return(stepErr)
				// CreateNamespace cleans up after itself, so only the row is parked.
			},
		},
		{
			name: "seeding fails",
			setupMocks: func(m workflowMocks, tenant *types.Tenant) {
				m.namespaces.EXPECT().CreateNamespace(gomock.Any(), "ns_acme").Return(nil)
				m.namespaces.EXPECT().SeedNamespace(gomock.Any(), "ns_acme").Return(stepErr)
				m.namespaces.EXPECT().DropNamespace(gomock.Any(), "ns_acme").Return(nil)
			},
		},
		{
			name: "primary domain binding fails",
			setupMocks: func(m workflowMocks, tenant *types.Tenant) {
				m.namespaces.EXPECT().CreateNamespace(gomock.Any(), "ns_acme").Return(nil)
				m.namespaces.EXPECT().SeedNamespace(gomock.Any(), "ns_acme").Return(nil)
				m.directory.EXPECT().BindDomain(gomock.Any(), "tenant-1", "acme.example.com", true).Return(nil, stepErr)
				m.namespaces.EXPECT().DropNamespace(gomock.Any(), "ns_acme").Return(nil)
			},
		},
		{
			name: "activation fails",
			setupMocks: func(m workflowMocks, tenant *types.Tenant) {
				m.namespaces.EXPECT().CreateNamespace(gomock.Any(), "ns_acme").Return(nil)
				m.namespaces.EXPECT().SeedNamespace(gomock.Any(), "ns_acme").Return(nil)
				m.directory.EXPECT().BindDomain(gomock.Any(), "tenant-1", "acme.example.com", true).Return(&types.DomainBinding{}, nil)
				m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateActive).Return(nil, stepErr)
				m.directory.EXPECT().UnbindDomain(gomock.Any(), "acme.example.com").Return(nil)
				m.namespaces.EXPECT().DropNamespace(gomock.Any(), "ns_acme").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := setupService(t)
			tenant := provisioningTenant()

			m.directory.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tenant, nil)
			tc.setupMocks(m, tenant)
			// Every compensation path parks the row in DELETED.
			m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateDeleted).
				Return(&types.Tenant{ID: "tenant-1", State: types.StateDeleted}, nil)

			if _, err := s.ProvisionTenant(context.Background(), "Acme", "acme", "ops@acme.test", types.PlanTrial, "acme.example.com"); !errors.Is(err, stepErr) {
				t.Fatalf("expected step error, got %v", err)
			}
		})
	}
}

func TestService_DeprovisionTenant(t *testing.T) {
	s, m := setupService(t)

	gomock.InOrder(
		m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateDeactivating).
			Return(&types.Tenant{ID: "tenant-1", NamespaceID: "ns_acme", State: types.StateDeactivating}, nil),
		m.enqueuer.EXPECT().EnqueueDropNamespace(gomock.Any(), "tenant-1", "ns_acme").Return(nil),
	)

	if err := s.DeprovisionTenant(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_DeprovisionTenant_InvalidStatePassesThrough(t *testing.T) {
	s, m := setupService(t)

	transitionErr := errors.New("invalid lifecycle transition")
	m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateDeactivating).Return(nil, transitionErr)

	if err := s.DeprovisionTenant(context.Background(), "tenant-1"); !errors.Is(err, transitionErr) {
		t.Fatalf("expected transition error, got %v", err)
	}
}

func TestService_CompleteDeprovision(t *testing.T) {
	t.Run("drops namespace and marks deleted", func(t *testing.T) {
		s, m := setupService(t)

		gomock.InOrder(
			m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
				Return(&types.Tenant{ID: "tenant-1", NamespaceID: "ns_acme", State: types.StateDeactivating}, nil),
			m.namespaces.EXPECT().DropNamespace(gomock.Any(), "ns_acme").Return(nil),
			m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateDeleted).
				Return(&types.Tenant{ID: "tenant-1", State: types.StateDeleted}, nil),
		)
		m.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

		if err := s.CompleteDeprovision(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("absent namespace is already done", func(t *testing.T) {
		s, m := setupService(t)

		gomock.InOrder(
			m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
				Return(&types.Tenant{ID: "tenant-1", NamespaceID: "ns_acme", State: types.StateDeactivating}, nil),
			m.namespaces.EXPECT().DropNamespace(gomock.Any(), "ns_acme").Return(namespace.ErrNamespaceNotFound),
			m.directory.EXPECT().UpdateLifecycleState(gomock.Any(), "tenant-1", types.StateDeleted).
				Return(&types.Tenant{ID: "tenant-1", State: types.StateDeleted}, nil),
		)
		m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
		m.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

		if err := s.CompleteDeprovision(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("already deleted is a no-op", func(t *testing.T) {
		s, m := setupService(t)

		m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
			Return(&types.Tenant{ID: "tenant-1", NamespaceID: "ns_acme", State: types.StateDeleted}, nil)

		if err := s.CompleteDeprovision(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestService_AwaitDeprovision(t *testing.T) {
	s, m := setupService(t)

	gomock.InOrder(
		m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
			Return(&types.Tenant{ID: "tenant-1", State: types.StateDeactivating}, nil),
		m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
			Return(&types.Tenant{ID: "tenant-1", State: types.StateDeleted}, nil),
	)

	if err := s.AwaitDeprovision(context.Background(), "tenant-1", time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_AwaitDeprovision_ContextCancelled(t *testing.T) {
	s, m := setupService(t)

	m.directory.EXPECT().FindByID(gomock.Any(), "tenant-1").
		Return(&types.Tenant{ID: "tenant-1", State: types.StateDeactivating}, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := s.AwaitDeprovision(ctx, "tenant-1", 5*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
