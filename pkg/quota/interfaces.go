// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type ServiceInterface interface {
	CheckAndReserve(ctx context.Context, tenantID string, resource types.ResourceType, delta int64) error
	Release(ctx context.Context, tenantID string, resource types.ResourceType, delta int64) error
	Usage(ctx context.Context, tenantID string) ([]*types.UsageCounter, error)
	ResetAPIPeriod(ctx context.Context, tenantID string) error
}

// DirectoryInterface supplies the plan the ceilings are derived from.
type DirectoryInterface interface {
	FindByID(ctx context.Context, id string) (*types.Tenant, error)
}

type CounterStorageInterface interface {
	ReserveCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta, ceiling int64) (int64, error)
	ReleaseCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta int64) (int64, error)
	GetCounters(ctx context.Context, tenantID string) ([]*types.UsageCounter, error)
	PruneAPIPeriods(ctx context.Context, tenantID, keepPeriod string) (int64, error)
}
