// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	GetTenantByNamespace(ctx context.Context, namespaceID string) (*types.Tenant, error)
	GetTenantByDomain(ctx context.Context, host string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenantState(ctx context.Context, id string, state types.LifecycleState) error
	UpdateTenantStatus(ctx context.Context, id string, state types.LifecycleState, status types.SubscriptionStatus) error
	BindDomain(ctx context.Context, tenantID, host string, isPrimary bool) (*types.DomainBinding, error)
	UnbindDomain(ctx context.Context, host string) error
	ListDomainsByTenantID(ctx context.Context, tenantID string) ([]*types.DomainBinding, error)
}

type CounterStorageInterface interface {
	ReserveCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta, ceiling int64) (int64, error)
	ReleaseCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta int64) (int64, error)
	GetCounters(ctx context.Context, tenantID string) ([]*types.UsageCounter, error)
	PruneAPIPeriods(ctx context.Context, tenantID, keepPeriod string) (int64, error)
}
