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

	"github.com/canonical/tenant-core/internal/types"
)

// BindDomain inserts a host binding for a tenant. When isPrimary is set, any
// existing primary binding for the same tenant is demoted in the same
// transaction. A host already bound to any tenant surfaces as ErrDuplicateKey
// (the unique index makes the first writer win).
func (s *Storage) BindDomain(ctx context.Context, tenantID, host string, isPrimary bool) (*types.DomainBinding, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BindDomain")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate binding ID: %w", err)
	}

	var binding types.DomainBinding
	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		if isPrimary {
			_, err := s.db.Statement(txCtx).
				Update("domain_bindings").
				Set("is_primary", false).
				Where(sq.Eq{"tenant_id": tenantID, "is_primary": true}).
				ExecContext(txCtx)
			if err != nil {
				return fmt.Errorf("failed to demote existing primary binding: %w", err)
			}
		}

		return s.db.Statement(txCtx).
			Insert("domain_bindings").
			Columns("id", "tenant_id", "host", "is_primary").
			Values(id.String(), tenantID, host, isPrimary).
			Suffix("RETURNING id, tenant_id, host, is_primary, created_at").
			QueryRowContext(txCtx).
			Scan(&binding.ID, &binding.TenantID, &binding.Host, &binding.IsPrimary, &binding.CreatedAt)
	})

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to bind domain: %w", err)
	}

	return &binding, nil
}

func (s *Storage) UnbindDomain(ctx context.Context, host string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnbindDomain")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("domain_bindings").
		Where(sq.Eq{"host": host}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to unbind domain: %w", err)
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

func (s *Storage) GetTenantByDomain(ctx context.Context, host string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByDomain")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(
			"t.id", "t.name", "t.slug", "t.email", "t.namespace_id",
			"t.state", "t.plan", "t.subscription_status", "t.trial_ends_at", "t.created_at",
		).
		From("tenants t").
		Join("domain_bindings d ON t.id = d.tenant_id").
		Where(sq.Eq{"d.host": host}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve domain: %w", err)
	}

	return t, nil
}

func (s *Storage) ListDomainsByTenantID(ctx context.Context, tenantID string) ([]*types.DomainBinding, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDomainsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "host", "is_primary", "created_at").
		From("domain_bindings").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("is_primary DESC", "host ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain bindings: %w", err)
	}
	defer rows.Close()

	var bindings []*types.DomainBinding
	for rows.Next() {
		var b types.DomainBinding
		if err := rows.Scan(&b.ID, &b.TenantID, &b.Host, &b.IsPrimary, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan domain binding: %w", err)
		}
		bindings = append(bindings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating domain binding rows: %w", err)
	}

	return bindings, nil
}
