// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, host string) (*types.Tenant, error)
	InvalidateHost(host string)
	InvalidateTenant(tenantID string)
}

// DirectoryInterface is the slice of the tenant directory the resolver
// consults on cache misses.
type DirectoryInterface interface {
	ResolveDomain(ctx context.Context, host string) (*types.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*types.Tenant, error)
}
