// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/storage"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service enforces per-plan usage ceilings. It is the only owner of the
// usage counters; nothing else reads or writes them.
type Service struct {
	directory DirectoryInterface
	counters  CounterStorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	dir DirectoryInterface,
	counters CounterStorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory: dir,
		counters:  counters,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// CheckAndReserve reserves delta units of a resource, or returns DeniedError
// without consuming anything. The ceiling check and the increment are one
// guarded statement in storage, so two racing reservations can never both
// squeeze past a hard ceiling.
func (s *Service) CheckAndReserve(ctx context.Context, tenantID string, resource types.ResourceType, delta int64) error {
	ctx, span := s.tracer.Start(ctx, "quota.Service.CheckAndReserve")
	defer span.End()

	if delta <= 0 {
		return fmt.Errorf("delta must be positive, got %d", delta)
	}

	tenant, err := s.directory.FindByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	ceiling := types.LimitsFor(tenant.Plan).For(resource)
	period := types.PeriodFor(resource, time.Now())

	if _, err := s.counters.ReserveCounter(ctx, tenantID, resource, period, delta, ceiling); err != nil {
		if errors.Is(err, storage.ErrCeilingExceeded) {
			return &DeniedError{Resource: resource, Ceiling: ceiling, Requested: delta}
		}
		return fmt.Errorf("failed to reserve %s quota: %w", resource, err)
	}

	return nil
}

// Release returns delta units of a resource. Counters floor at zero, so
// releasing more than was reserved is harmless.
func (s *Service) Release(ctx context.Context, tenantID string, resource types.ResourceType, delta int64) error {
	ctx, span := s.tracer.Start(ctx, "quota.Service.Release")
	defer span.End()

	if delta <= 0 {
		return fmt.Errorf("delta must be positive, got %d", delta)
	}

	if _, err := s.counters.ReleaseCounter(ctx, tenantID, resource, types.PeriodFor(resource, time.Now()), delta); err != nil {
		return fmt.Errorf("failed to release %s quota: %w", resource, err)
	}
	return nil
}

func (s *Service) Usage(ctx context.Context, tenantID string) ([]*types.UsageCounter, error) {
	ctx, span := s.tracer.Start(ctx, "quota.Service.Usage")
	defer span.End()

	return s.counters.GetCounters(ctx, tenantID)
}

// ResetAPIPeriod drops api_call counters from periods before the current
// one. Running it twice in the same period is a no-op, and counters of other
// resources are untouched.
func (s *Service) ResetAPIPeriod(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "quota.Service.ResetAPIPeriod")
	defer span.End()

	pruned, err := s.counters.PruneAPIPeriods(ctx, tenantID, types.PeriodFor(types.ResourceAPICalls, time.Now()))
	if err != nil {
		return fmt.Errorf("failed to reset api call counters: %w", err)
	}
	if pruned > 0 {
		s.logger.Infof("pruned %d stale api call periods for tenant %s", pruned, tenantID)
	}
	return nil
}
