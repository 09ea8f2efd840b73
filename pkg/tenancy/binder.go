// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
)

// Binder scopes background work to a tenant, mirroring what the middleware
// does for requests. Jobs and maintenance tasks have no request host to
// resolve, so they bind by tenant id.
type Binder struct {
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewBinder(
	dir DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Binder {
	return &Binder{
		directory: dir,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// RunInTenant binds a scope for the tenant and invokes fn with it. The same
// lifecycle gate as the request path applies, with background work treated
// as a write, and the scope is released when fn returns whatever the
// outcome.
func (b *Binder) RunInTenant(ctx context.Context, tenantID string, fn func(ctx context.Context) error) error {
	ctx, span := b.tracer.Start(ctx, "tenancy.Binder.RunInTenant")
	defer span.End()

	tenant, err := b.directory.FindByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	scope, err := scopeFor(tenant, true, suspensionExempt(ctx))
	if err != nil {
		return err
	}

	b.monitor.IncActiveTenantScopes()
	defer b.monitor.DecActiveTenantScopes()

	return fn(ContextWithScope(ctx, scope))
}
