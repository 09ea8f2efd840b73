// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-core/internal/types"
)

var _ CounterStorageInterface = (*Storage)(nil)

// ReserveCounter atomically adds delta to a usage counter, refusing the
// update when it would push the counter past ceiling. The guard lives in the
// UPDATE itself, so two concurrent reservations against the same counter
// serialize on the row lock and can never both pass a hard ceiling.
// A negative ceiling means unlimited.
func (s *Storage) ReserveCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta, ceiling int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReserveCounter")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("usage_counters").
		Columns("tenant_id", "resource", "period", "count").
		Values(tenantID, resource, period, 0).
		Suffix("ON CONFLICT (tenant_id, resource, period) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure counter row: %w", err)
	}

	update := s.db.Statement(ctx).
		Update("usage_counters").
		Set("count", sq.Expr("count + ?", delta)).
		Where(sq.Eq{"tenant_id": tenantID, "resource": resource, "period": period})

	if ceiling >= 0 {
		update = update.Where(sq.Expr("count + ? <= ?", delta, ceiling))
	}

	var count int64
	err = update.
		Suffix("RETURNING count").
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row exists, so the ceiling guard refused the update.
			current, gerr := s.getCounter(ctx, tenantID, resource, period)
			if gerr != nil {
				return 0, gerr
			}
			return current, ErrCeilingExceeded
		}
		return 0, fmt.Errorf("failed to reserve counter: %w", err)
	}

	return count, nil
}

// ReleaseCounter subtracts delta from a usage counter, flooring at zero.
// Releasing a counter that was never reserved is a no-op.
func (s *Storage) ReleaseCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string, delta int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReleaseCounter")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Update("usage_counters").
		Set("count", sq.Expr("GREATEST(count - ?, 0)", delta)).
		Where(sq.Eq{"tenant_id": tenantID, "resource": resource, "period": period}).
		Suffix("RETURNING count").
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to release counter: %w", err)
	}

	return count, nil
}

func (s *Storage) getCounter(ctx context.Context, tenantID string, resource types.ResourceType, period string) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("count").
		From("usage_counters").
		Where(sq.Eq{"tenant_id": tenantID, "resource": resource, "period": period}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	return count, nil
}

func (s *Storage) GetCounters(ctx context.Context, tenantID string) ([]*types.UsageCounter, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCounters")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("tenant_id", "resource", "period", "count").
		From("usage_counters").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("resource ASC", "period DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	defer rows.Close()

	var counters []*types.UsageCounter
	for rows.Next() {
		var c types.UsageCounter
		if err := rows.Scan(&c.TenantID, &c.Resource, &c.Period, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan counter: %w", err)
		}
		counters = append(counters, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counter rows: %w", err)
	}

	return counters, nil
}

// PruneAPIPeriods removes api_calls counter rows from periods before
// keepPeriod. Period keys sort lexicographically, so a plain comparison is
// enough, and re-running the prune for an already-pruned period deletes
// nothing.
func (s *Storage) PruneAPIPeriods(ctx context.Context, tenantID, keepPeriod string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PruneAPIPeriods")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("usage_counters").
		Where(sq.Eq{"tenant_id": tenantID, "resource": types.ResourceAPICalls}).
		Where(sq.Lt{"period": keepPeriod}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune api periods: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
