// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-core/internal/db"
	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const tenantColumns = "id, name, slug, email, namespace_id, state, plan, subscription_status, trial_ends_at, created_at"

var tenantColumnList = []string{"id", "name", "slug", "email", "namespace_id", "state", "plan", "subscription_status", "trial_ends_at", "created_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Email, &t.NamespaceID,
		&t.State, &t.Plan, &t.SubscriptionStatus, &t.TrialEndsAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "email", "namespace_id", "state", "plan", "subscription_status", "trial_ends_at").
		Values(id.String(), t.Name, t.Slug, t.Email, t.NamespaceID, t.State, t.Plan, t.SubscriptionStatus, t.TrialEndsAt).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	return s.getTenantBy(ctx, "storage.GetTenantByID", sq.Eq{"id": id})
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	return s.getTenantBy(ctx, "storage.GetTenantBySlug", sq.Eq{"slug": slug})
}

func (s *Storage) GetTenantByNamespace(ctx context.Context, namespaceID string) (*types.Tenant, error) {
	return s.getTenantBy(ctx, "storage.GetTenantByNamespace", sq.Eq{"namespace_id": namespaceID})
}

func (s *Storage) getTenantBy(ctx context.Context, spanName string, where sq.Eq) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumnList...).
		From("tenants").
		Where(where).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumnList...).
		From("tenants").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Slug, &t.Email, &t.NamespaceID,
			&t.State, &t.Plan, &t.SubscriptionStatus, &t.TrialEndsAt, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenantState(ctx context.Context, id string, state types.LifecycleState) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantState")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("state", state).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateTenantStatus moves the lifecycle state and the subscription status in
// a single statement, so the two columns can never disagree on a failure.
func (s *Storage) UpdateTenantStatus(ctx context.Context, id string, state types.LifecycleState, status types.SubscriptionStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("state", state).
		Set("subscription_status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
