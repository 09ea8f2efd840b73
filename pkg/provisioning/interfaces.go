// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"time"

	"github.com/canonical/tenant-core/internal/types"
)

type WorkflowInterface interface {
	ProvisionTenant(ctx context.Context, name, slug, email string, plan types.Plan, primaryHost string) (*types.Tenant, error)
	DeprovisionTenant(ctx context.Context, tenantID string) error
	CompleteDeprovision(ctx context.Context, tenantID string) error
	AwaitDeprovision(ctx context.Context, tenantID string, interval time.Duration) error
}

// DirectoryInterface is the slice of the tenant directory the workflow
// drives.
type DirectoryInterface interface {
	CreateTenant(ctx context.Context, name, slug, email string, plan types.Plan) (*types.Tenant, error)
	FindByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateLifecycleState(ctx context.Context, tenantID string, newState types.LifecycleState) (*types.Tenant, error)
	BindDomain(ctx context.Context, tenantID, host string, isPrimary bool) (*types.DomainBinding, error)
	UnbindDomain(ctx context.Context, host string) error
}

type NamespaceManagerInterface interface {
	CreateNamespace(ctx context.Context, namespaceID string) error
	SeedNamespace(ctx context.Context, namespaceID string) error
	DropNamespace(ctx context.Context, namespaceID string) error
}

// EnqueuerInterface hands namespace teardown to the background worker.
type EnqueuerInterface interface {
	EnqueueDropNamespace(ctx context.Context, tenantID, namespaceID string) error
}
