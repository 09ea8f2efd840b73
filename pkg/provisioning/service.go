// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v5"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/namespace"
)

var _ WorkflowInterface = (*Service)(nil)

const dropMaxTries = 8

// Service orchestrates tenant creation and teardown across the directory,
// the namespace manager and the job queue. Every step is either completed or
// compensated; a tenant row never stays half-provisioned.
type Service struct {
	directory  DirectoryInterface
	namespaces NamespaceManagerInterface
	enqueuer   EnqueuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	dir DirectoryInterface,
	namespaces NamespaceManagerInterface,
	enqueuer EnqueuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory:  dir,
		namespaces: namespaces,
		enqueuer:   enqueuer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// ProvisionTenant runs directory row -> namespace -> seed -> primary domain
// -> ACTIVE. A failure after the row exists compensates in reverse order and
// parks the row in DELETED.
func (s *Service) ProvisionTenant(ctx context.Context, name, slug, email string, plan types.Plan, primaryHost string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.ProvisionTenant")
	defer span.End()

	tenant, err := s.directory.CreateTenant(ctx, name, slug, email, plan)
	if err != nil {
		return nil, err
	}

	// CreateNamespace drops its own schema when migrations fail, so the
	// namespace needs no compensation here.
	if err := s.namespaces.CreateNamespace(ctx, tenant.NamespaceID); err != nil {
		s.compensate(ctx, tenant, "", false)
		return nil, fmt.Errorf("failed to create namespace for tenant %s: %w", tenant.ID, err)
	}

	if err := s.namespaces.SeedNamespace(ctx, tenant.NamespaceID); err != nil {
		s.compensate(ctx, tenant, "", true)
		return nil, fmt.Errorf("failed to seed namespace for tenant %s: %w", tenant.ID, err)
	}

	if _, err := s.directory.BindDomain(ctx, tenant.ID, primaryHost, true); err != nil {
		s.compensate(ctx, tenant, "", true)
		return nil, fmt.Errorf("failed to bind primary domain for tenant %s: %w", tenant.ID, err)
	}

	activated, err := s.directory.UpdateLifecycleState(ctx, tenant.ID, types.StateActive)
	if err != nil {
		s.compensate(ctx, tenant, primaryHost, true)
		return nil, fmt.Errorf("failed to activate tenant %s: %w", tenant.ID, err)
	}

	s.logger.Security().TenantProvisioned(activated.ID, activated.Slug)
	return activated, nil
}

// compensate unwinds a failed provisioning run. Compensation is best effort;
// each step failure is logged and the remaining steps still run, ending with
// the row parked in DELETED.
func (s *Service) compensate(ctx context.Context, tenant *types.Tenant, boundHost string, namespaceCreated bool) {
	if boundHost != "" {
		if err := s.directory.UnbindDomain(ctx, boundHost); err != nil {
			s.logger.Errorf("compensation: failed to unbind %q for tenant %s: %v", boundHost, tenant.ID, err)
		}
	}

	if namespaceCreated {
		if err := s.namespaces.DropNamespace(ctx, tenant.NamespaceID); err != nil && !errors.Is(err, namespace.ErrNamespaceNotFound) {
			s.logger.Errorf("compensation: failed to drop namespace %s for tenant %s: %v", tenant.NamespaceID, tenant.ID, err)
		}
	}

	if _, err := s.directory.UpdateLifecycleState(ctx, tenant.ID, types.StateDeleted); err != nil {
		s.logger.Errorf("compensation: failed to mark tenant %s deleted: %v", tenant.ID, err)
	}
}

// DeprovisionTenant moves the tenant to DEACTIVATING and enqueues the
// namespace drop. The task id is derived from the tenant id, so repeated
// calls collapse onto one queued job.
func (s *Service) DeprovisionTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.DeprovisionTenant")
	defer span.End()

	tenant, err := s.directory.UpdateLifecycleState(ctx, tenantID, types.StateDeactivating)
	if err != nil {
		return err
	}

	if err := s.enqueuer.EnqueueDropNamespace(ctx, tenant.ID, tenant.NamespaceID); err != nil {
		return fmt.Errorf("failed to enqueue namespace drop for tenant %s: %w", tenantID, err)
	}

	return nil
}

// CompleteDeprovision is the worker-side half of deprovisioning: drop the
// namespace with bounded retries, then mark the row DELETED. Safe to run
// more than once.
func (s *Service) CompleteDeprovision(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.CompleteDeprovision")
	defer span.End()

	tenant, err := s.directory.FindByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	if tenant.State == types.StateDeleted {
		return nil
	}

	if _, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := s.namespaces.DropNamespace(ctx, tenant.NamespaceID)
		if errors.Is(err, namespace.ErrNamespaceNotFound) {
			// Already gone, a previous attempt got this far.
			s.logger.Warnf("namespace %s already absent while deprovisioning tenant %s", tenant.NamespaceID, tenantID)
			return struct{}{}, nil
		}
		return struct{}{}, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(dropMaxTries)); err != nil {
		return fmt.Errorf("failed to drop namespace %s: %w", tenant.NamespaceID, err)
	}

	if _, err := s.directory.UpdateLifecycleState(ctx, tenantID, types.StateDeleted); err != nil {
		return fmt.Errorf("failed to mark tenant %s deleted: %w", tenantID, err)
	}

	s.logger.Security().TenantDeprovisioned(tenantID, tenant.NamespaceID)
	return nil
}

// AwaitDeprovision polls the directory until the tenant reaches DELETED or
// the context expires.
func (s *Service) AwaitDeprovision(ctx context.Context, tenantID string, interval time.Duration) error {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.AwaitDeprovision")
	defer span.End()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		tenant, err := s.directory.FindByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant.State == types.StateDeleted {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
