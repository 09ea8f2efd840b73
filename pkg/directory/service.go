// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/storage"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// slugPattern keeps slugs URL-safe and convertible into namespace
// identifiers.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,48}[a-z0-9])?$`)

const namespacePrefix = "ns_"

type Service struct {
	storage     StorageInterface
	invalidator InvalidatorInterface
	trialLength time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	trialLength time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		invalidator: noopInvalidator{},
		trialLength: trialLength,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// SetInvalidator wires the resolver cache in after construction; the resolver
// itself depends on this service, so the dependency cannot be passed to
// NewService.
func (s *Service) SetInvalidator(inv InvalidatorInterface) {
	if inv != nil {
		s.invalidator = inv
	}
}

// NamespaceIDForSlug derives the immutable namespace identifier from a slug.
// Slugs are never reassigned, so namespace identifiers can never collide or
// be reused, deleted tenants included.
func NamespaceIDForSlug(slug string) string {
	return namespacePrefix + strings.ReplaceAll(slug, "-", "_")
}

func (s *Service) CreateTenant(ctx context.Context, name, slug, email string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.CreateTenant")
	defer span.End()

	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if !plan.Valid() {
		return nil, fmt.Errorf("unknown plan: %q", plan)
	}

	subscription := types.SubscriptionActive
	trialEndsAt := time.Now().UTC()
	if plan == types.PlanTrial {
		subscription = types.SubscriptionTrialing
		trialEndsAt = trialEndsAt.Add(s.trialLength)
	}

	t := &types.Tenant{
		Name:               name,
		Slug:               slug,
		Email:              email,
		NamespaceID:        NamespaceIDForSlug(slug),
		State:              types.StateProvisioning,
		Plan:               plan,
		SubscriptionStatus: subscription,
		TrialEndsAt:        trialEndsAt,
	}

	created, err := s.storage.CreateTenant(ctx, t)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return created, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.FindByID")
	defer span.End()

	return s.mapNotFound(s.storage.GetTenantByID(ctx, id))
}

func (s *Service) FindBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.FindBySlug")
	defer span.End()

	return s.mapNotFound(s.storage.GetTenantBySlug(ctx, slug))
}

func (s *Service) FindByNamespace(ctx context.Context, namespaceID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.FindByNamespace")
	defer span.End()

	return s.mapNotFound(s.storage.GetTenantByNamespace(ctx, namespaceID))
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

// UpdateLifecycleState moves a tenant along the lifecycle state machine,
// rejecting edges the machine does not allow. The resolver cache is
// invalidated synchronously so a just-suspended tenant cannot keep writing
// against a stale ACTIVE entry.
func (s *Service) UpdateLifecycleState(ctx context.Context, tenantID string, newState types.LifecycleState) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.UpdateLifecycleState")
	defer span.End()

	t, err := s.mapNotFound(s.storage.GetTenantByID(ctx, tenantID))
	if err != nil {
		return nil, err
	}

	if !t.State.CanTransitionTo(newState) {
		return nil, &InvalidTransitionError{From: t.State, To: newState}
	}

	if err := s.storage.UpdateTenantState(ctx, tenantID, newState); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tenant state: %w", err)
	}

	s.invalidator.InvalidateTenant(tenantID)
	s.logger.Security().TenantStateChanged(tenantID, string(t.State), string(newState))

	t.State = newState
	return t, nil
}

func (s *Service) SuspendTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.SuspendTenant")
	defer span.End()

	return s.setTenantStatus(ctx, tenantID, types.StateSuspended, types.SubscriptionPastDue)
}

func (s *Service) ResumeTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ResumeTenant")
	defer span.End()

	return s.setTenantStatus(ctx, tenantID, types.StateActive, types.SubscriptionActive)
}

// setTenantStatus moves the lifecycle state and subscription status together.
// The storage layer applies both in a single statement, so a failure leaves
// the tenant exactly where it was rather than suspended with a live
// subscription or vice versa.
func (s *Service) setTenantStatus(ctx context.Context, tenantID string, newState types.LifecycleState, status types.SubscriptionStatus) error {
	t, err := s.mapNotFound(s.storage.GetTenantByID(ctx, tenantID))
	if err != nil {
		return err
	}

	if !t.State.CanTransitionTo(newState) {
		return &InvalidTransitionError{From: t.State, To: newState}
	}

	if err := s.storage.UpdateTenantStatus(ctx, tenantID, newState, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	s.invalidator.InvalidateTenant(tenantID)
	s.logger.Security().TenantStateChanged(tenantID, string(t.State), string(newState))
	return nil
}

func (s *Service) BindDomain(ctx context.Context, tenantID, host string, isPrimary bool) (*types.DomainBinding, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.BindDomain")
	defer span.End()

	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return nil, fmt.Errorf("host must not be empty")
	}

	binding, err := s.storage.BindDomain(ctx, tenantID, host, isPrimary)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrHostAlreadyBound
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to bind domain: %w", err)
	}

	s.invalidator.InvalidateHost(host)
	return binding, nil
}

func (s *Service) UnbindDomain(ctx context.Context, host string) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.UnbindDomain")
	defer span.End()

	host = strings.ToLower(strings.TrimSpace(host))
	if err := s.storage.UnbindDomain(ctx, host); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to unbind domain: %w", err)
	}

	s.invalidator.InvalidateHost(host)
	return nil
}

func (s *Service) ResolveDomain(ctx context.Context, host string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ResolveDomain")
	defer span.End()

	return s.mapNotFound(s.storage.GetTenantByDomain(ctx, host))
}

func (s *Service) ListDomains(ctx context.Context, tenantID string) ([]*types.DomainBinding, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ListDomains")
	defer span.End()

	return s.storage.ListDomainsByTenantID(ctx, tenantID)
}

func (s *Service) mapNotFound(t *types.Tenant, err error) (*types.Tenant, error) {
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateHost(string)   {}
func (noopInvalidator) InvalidateTenant(string) {}
