// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/storage"
	"github.com/canonical/tenant-core/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_quota.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupService(t *testing.T) (*Service, *MockDirectoryInterface, *MockCounterStorageInterface, *MockLoggerInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockCounters := NewMockCounterStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewService(mockDirectory, mockCounters, mockTracer, mockMonitor, mockLogger), mockDirectory, mockCounters, mockLogger
}

func TestService_CheckAndReserve(t *testing.T) {
	tenantID := "tenant-1"
	currentPeriod := types.PeriodFor(types.ResourceAPICalls, time.Now())

	testCases := []struct {
		name       string
		resource   types.ResourceType
		plan       types.Plan
		delta      int64
		setupMocks func(*MockDirectoryInterface, *MockCounterStorageInterface)
		denied     bool
		invalid    bool
	}{
		{
			name:     "within ceiling",
			resource: types.ResourceUsers,
			plan:     types.PlanStarter,
			delta:    1,
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockCounters *MockCounterStorageInterface) {
				mockDirectory.EXPECT().FindByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanStarter}, nil)
				mockCounters.EXPECT().
					ReserveCounter(gomock.Any(), tenantID, types.ResourceUsers, types.LifetimePeriod, int64(1), types.LimitsFor(types.PlanStarter).For(types.ResourceUsers)).
					Return(int64(3), nil)
			},
		},
		{
			name:     "ceiling exceeded maps to DeniedError",
			resource: types.ResourceUsers,
			plan:     types.PlanTrial,
			delta:    2,
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockCounters *MockCounterStorageInterface) {
				mockDirectory.EXPECT().FindByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanTrial}, nil)
				mockCounters.EXPECT().
					ReserveCounter(gomock.Any(), tenantID, types.ResourceUsers, types.LifetimePeriod, int64(2), gomock.Any()).
					Return(int64(5), storage.ErrCeilingExceeded)
			},
			denied: true,
		},
		{
			name:     "enterprise plan passes unlimited ceiling through",
			resource: types.ResourceRecords,
			plan:     types.PlanEnterprise,
			delta:    100,
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockCounters *MockCounterStorageInterface) {
				mockDirectory.EXPECT().FindByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanEnterprise}, nil)
				mockCounters.EXPECT().
					ReserveCounter(gomock.Any(), tenantID, types.ResourceRecords, types.LifetimePeriod, int64(100), types.Unlimited).
					Return(int64(100), nil)
			},
		},
		{
			name:     "api calls use the monthly period",
			resource: types.ResourceAPICalls,
			plan:     types.PlanStarter,
			delta:    1,
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockCounters *MockCounterStorageInterface) {
				mockDirectory.EXPECT().FindByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Plan: types.PlanStarter}, nil)
				mockCounters.EXPECT().
					ReserveCounter(gomock.Any(), tenantID, types.ResourceAPICalls, currentPeriod, int64(1), gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name:       "non-positive delta rejected",
			resource:   types.ResourceUsers,
			delta:      0,
			setupMocks: func(*MockDirectoryInterface, *MockCounterStorageInterface) {},
			invalid:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockDirectory, mockCounters, _ := setupService(t)
			tc.setupMocks(mockDirectory, mockCounters)

			err := s.CheckAndReserve(context.Background(), tenantID, tc.resource, tc.delta)

			if tc.denied {
				var denied *DeniedError
				if !errors.As(err, &denied) {
					t.Fatalf("expected DeniedError, got %v", err)
				}
				if denied.Resource != tc.resource || denied.Requested != tc.delta {
					t.Errorf("unexpected denial detail: %+v", denied)
				}
				return
			}
			if tc.invalid {
				if err == nil {
					t.Fatal("expected error for invalid delta")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_Release(t *testing.T) {
	s, _, mockCounters, _ := setupService(t)

	mockCounters.EXPECT().
		ReleaseCounter(gomock.Any(), "tenant-1", types.ResourceUsers, types.LifetimePeriod, int64(2)).
		Return(int64(3), nil)

	if err := s.Release(context.Background(), "tenant-1", types.ResourceUsers, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_ResetAPIPeriod(t *testing.T) {
	currentPeriod := types.PeriodFor(types.ResourceAPICalls, time.Now())

	t.Run("stale periods pruned", func(t *testing.T) {
		s, _, mockCounters, mockLogger := setupService(t)

		mockCounters.EXPECT().PruneAPIPeriods(gomock.Any(), "tenant-1", currentPeriod).Return(int64(2), nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

		if err := s.ResetAPIPeriod(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("second run in same period is a no-op", func(t *testing.T) {
		s, _, mockCounters, _ := setupService(t)

		mockCounters.EXPECT().PruneAPIPeriods(gomock.Any(), "tenant-1", currentPeriod).Return(int64(0), nil)

		if err := s.ResetAPIPeriod(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

// fakeCounterStore reproduces the guarded-update semantics of the SQL
// counter storage so the service can be hammered concurrently.
type fakeCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[string]int64)}
}

func (f *fakeCounterStore) key(tenantID string, resource types.ResourceType, period string) string {
	return tenantID + "/" + string(resource) + "/" + period
}

func (f *fakeCounterStore) ReserveCounter(_ context.Context, tenantID string, resource types.ResourceType, period string, delta, ceiling int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(tenantID, resource, period)
	if ceiling != types.Unlimited && f.counts[k]+delta > ceiling {
		return f.counts[k], storage.ErrCeilingExceeded
	}
	f.counts[k] += delta
	return f.counts[k], nil
}

func (f *fakeCounterStore) ReleaseCounter(_ context.Context, tenantID string, resource types.ResourceType, period string, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(tenantID, resource, period)
	f.counts[k] -= delta
	if f.counts[k] < 0 {
		f.counts[k] = 0
	}
	return f.counts[k], nil
}

func (f *fakeCounterStore) GetCounters(context.Context, string) ([]*types.UsageCounter, error) {
	return nil, nil
}

func (f *fakeCounterStore) PruneAPIPeriods(context.Context, string, string) (int64, error) {
	return 0, nil
}

// With N workers racing for K remaining units, exactly K reservations may
// succeed.
func TestService_CheckAndReserve_ConcurrentCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockDirectory.EXPECT().FindByID(gomock.Any(), "tenant-1").
		Return(&types.Tenant{ID: "tenant-1", Plan: types.PlanTrial}, nil).AnyTimes()

	store := newFakeCounterStore()
	s := NewService(mockDirectory, store, mockTracer, mockMonitor, mockLogger)

	ceiling := types.LimitsFor(types.PlanTrial).For(types.ResourceUsers)
	workers := int(ceiling) * 4

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.CheckAndReserve(context.Background(), "tenant-1", types.ResourceUsers, 1)
		}()
	}
	wg.Wait()
	close(results)

	var allowed, denied int
	for err := range results {
		switch {
		case err == nil:
			allowed++
		default:
			var d *DeniedError
			if !errors.As(err, &d) {
				t.Fatalf("unexpected error: %v", err)
			}
			denied++
		}
	}

	if int64(allowed) != ceiling {
		t.Errorf("expected exactly %d reservations to pass, got %d", ceiling, allowed)
	}
	if allowed+denied != workers {
		t.Errorf("lost results: %d + %d != %d", allowed, denied, workers)
	}
}
