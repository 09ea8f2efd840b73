// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
	"database/sql"
)

type ManagerInterface interface {
	CreateNamespace(ctx context.Context, namespaceID string) error
	ApplyPendingMigrations(ctx context.Context, namespaceID string) error
	SeedNamespace(ctx context.Context, namespaceID string) error
	DropNamespace(ctx context.Context, namespaceID string) error
	NamespaceExists(ctx context.Context, namespaceID string) (bool, error)
}

// RunnerInterface is the slice of database/sql the manager drives schema DDL
// and seeding through. Namespace DDL needs raw statements, so it cannot go
// through the shared statement builder.
type RunnerInterface interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) RowInterface
}

type RowInterface interface {
	Scan(dest ...any) error
}

// MigratorInterface brings a single namespace up to the latest structural
// schema version.
type MigratorInterface interface {
	Up(ctx context.Context, namespaceID string) error
}
