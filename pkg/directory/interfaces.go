// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, slug, email string, plan types.Plan) (*types.Tenant, error)
	FindByID(ctx context.Context, id string) (*types.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	FindByNamespace(ctx context.Context, namespaceID string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateLifecycleState(ctx context.Context, tenantID string, newState types.LifecycleState) (*types.Tenant, error)
	SuspendTenant(ctx context.Context, tenantID string) error
	ResumeTenant(ctx context.Context, tenantID string) error
	BindDomain(ctx context.Context, tenantID, host string, isPrimary bool) (*types.DomainBinding, error)
	UnbindDomain(ctx context.Context, host string) error
	ResolveDomain(ctx context.Context, host string) (*types.Tenant, error)
	ListDomains(ctx context.Context, tenantID string) ([]*types.DomainBinding, error)
}

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

// InvalidatorInterface is implemented by the host resolver cache. Lifecycle
// transitions and domain binding changes invalidate synchronously so a stale
// cached state never outlives the mutation that changed it.
type InvalidatorInterface interface {
	InvalidateHost(host string)
	InvalidateTenant(tenantID string)
}

// WorkflowInterface is the provisioning workflow surface the admin API
// drives.
type WorkflowInterface interface {
	ProvisionTenant(ctx context.Context, name, slug, email string, plan types.Plan, primaryHost string) (*types.Tenant, error)
	DeprovisionTenant(ctx context.Context, tenantID string) error
}

// QuotaInterface is the usage reporting surface the admin API reads.
type QuotaInterface interface {
	Usage(ctx context.Context, tenantID string) ([]*types.UsageCounter, error)
}
