// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/directory"
)

//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_resolver.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const sharedSuffix = "example.com"

func setupService(t *testing.T) (*Service, *MockDirectoryInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s, err := NewService(mockDirectory, sharedSuffix, 5*time.Second, mockTracer, mockMonitor, mockLogger)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return s, mockDirectory
}

func TestNormalizeHost(t *testing.T) {
	testCases := []struct {
		host     string
		expected string
	}{
		{"CRM.Acme.COM", "crm.acme.com"},
		{"acme.example.com:8080", "acme.example.com"},
		{"acme.example.com.", "acme.example.com"},
		{" acme.example.com ", "acme.example.com"},
		{"[::1]:8080", "::1"},
	}

	for _, tc := range testCases {
		if got := NormalizeHost(tc.host); got != tc.expected {
			t.Errorf("NormalizeHost(%q) = %q, expected %q", tc.host, got, tc.expected)
		}
	}
}

func TestService_Resolve_SharedSubdomain(t *testing.T) {
	s, mockDirectory := setupService(t)

	expected := &types.Tenant{ID: "tenant-1", Slug: "acme-corp", State: types.StateActive}
	mockDirectory.EXPECT().FindBySlug(gomock.Any(), "acme-corp").Return(expected, nil)

	tenant, err := s.Resolve(context.Background(), "acme-corp.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tenant.ID != expected.ID {
		t.Errorf("expected tenant %s, got %s", expected.ID, tenant.ID)
	}
}

func TestService_Resolve_CustomDomain(t *testing.T) {
	s, mockDirectory := setupService(t)

	expected := &types.Tenant{ID: "tenant-1", Slug: "acme", State: types.StateActive}
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").Return(expected, nil)

	tenant, err := s.Resolve(context.Background(), "crm.acme.com:443")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tenant.ID != expected.ID {
		t.Errorf("expected tenant %s, got %s", expected.ID, tenant.ID)
	}
}

func TestService_Resolve_NestedSubdomainUsesDomainLookup(t *testing.T) {
	s, mockDirectory := setupService(t)

	// A host two levels under the shared suffix is not a slug host.
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "a.b.example.com").Return(nil, directory.ErrNotFound)

	if _, err := s.Resolve(context.Background(), "a.b.example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Resolve_BareSuffixNotResolvable(t *testing.T) {
	s, mockDirectory := setupService(t)

	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "example.com").Return(nil, directory.ErrNotFound)

	if _, err := s.Resolve(context.Background(), "example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Resolve_EmptyHost(t *testing.T) {
	s, _ := setupService(t)

	if _, err := s.Resolve(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Resolve_MissesAreNotCached(t *testing.T) {
	s, mockDirectory := setupService(t)

	gomock.InOrder(
		mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").Return(nil, directory.ErrNotFound),
		mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").
			Return(&types.Tenant{ID: "tenant-1", State: types.StateActive}, nil),
	)

	if _, err := s.Resolve(context.Background(), "crm.acme.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Resolve(context.Background(), "crm.acme.com"); err != nil {
		t.Fatalf("expected host to resolve after binding, got %v", err)
	}
}

func TestService_Resolve_ConcurrentLookupsAreDeduplicated(t *testing.T) {
	s, mockDirectory := setupService(t)

	release := make(chan struct{})
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").DoAndReturn(
		func(context.Context, string) (*types.Tenant, error) {
			<-release
			return &types.Tenant{ID: "tenant-1", State: types.StateActive}, nil
		},
	).Times(1)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Resolve(context.Background(), "crm.acme.com")
			errs <- err
		}()
	}

	// All workers are either in flight or queued on the singleflight key
	// before the lookup completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
}

func TestService_InvalidateTenant_DropsAllHosts(t *testing.T) {
	s, mockDirectory := setupService(t)

	tenant := &types.Tenant{ID: "tenant-1", Slug: "acme", State: types.StateActive}

	mockDirectory.EXPECT().FindBySlug(gomock.Any(), "acme").Return(tenant, nil)
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").Return(tenant, nil)

	if _, err := s.Resolve(context.Background(), "acme.example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := s.Resolve(context.Background(), "crm.acme.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Flush buffered cache writes before invalidating.
	s.cache.Wait()

	s.InvalidateTenant("tenant-1")

	s.mu.Lock()
	_, indexed := s.hostsByTenant["tenant-1"]
	s.mu.Unlock()
	if indexed {
		t.Error("expected reverse index entry to be dropped")
	}

	// Both hosts miss the cache again and hit the directory.
	mockDirectory.EXPECT().FindBySlug(gomock.Any(), "acme").Return(tenant, nil)
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").Return(tenant, nil)

	if _, err := s.Resolve(context.Background(), "acme.example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := s.Resolve(context.Background(), "crm.acme.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_InvalidateHost(t *testing.T) {
	s, mockDirectory := setupService(t)

	tenant := &types.Tenant{ID: "tenant-1", State: types.StateActive}
	mockDirectory.EXPECT().ResolveDomain(gomock.Any(), "crm.acme.com").Return(tenant, nil).Times(2)

	if _, err := s.Resolve(context.Background(), "crm.acme.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s.cache.Wait()
	s.InvalidateHost("CRM.acme.com")

	if _, err := s.Resolve(context.Background(), "crm.acme.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
