// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type ResolverInterface interface {
	Resolve(ctx context.Context, host string) (*types.Tenant, error)
}

// DirectoryInterface is the directory slice the background binder needs.
type DirectoryInterface interface {
	FindByID(ctx context.Context, id string) (*types.Tenant, error)
}
