// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"

	"github.com/canonical/tenant-core/internal/db"
	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/migrations/tenantschema"
)

var _ ManagerInterface = (*Manager)(nil)

// namespaceIDPattern constrains namespace identifiers to safe Postgres
// schema names. 63 bytes is the Postgres identifier limit.
var namespaceIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// Manager owns the lifecycle of tenant namespaces, realized as Postgres
// schemas. It holds its own database handle rather than the shared statement
// builder because schema DDL and goose runs need raw connections, some of
// them pinned to a namespace via search_path.
type Manager struct {
	db       *sql.DB
	runner   RunnerInterface
	migrator MigratorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewManager(dsn string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Manager, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	handle := stdlib.OpenDB(*config)
	if err := handle.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	m := new(Manager)
	m.db = handle
	m.runner = sqlRunner{db: handle}
	m.migrator = gooseMigrator{dsn: dsn, logger: logger}
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m, nil
}

func (m *Manager) Close() {
	if m.db != nil {
		_ = m.db.Close()
	}
}

// ValidNamespaceID reports whether id is acceptable as a namespace
// identifier.
func ValidNamespaceID(id string) bool {
	return namespaceIDPattern.MatchString(id)
}

// CreateNamespace allocates the schema and brings it to the latest structural
// version. Creation is atomic from the caller's viewpoint: on any failure the
// schema is dropped again before the error is returned, so a namespace either
// fully exists with its schema applied or not at all.
func (m *Manager) CreateNamespace(ctx context.Context, namespaceID string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.CreateNamespace")
	defer span.End()

	if !ValidNamespaceID(namespaceID) {
		return &CreationFailedError{NamespaceID: namespaceID, Err: ErrInvalidNamespaceID}
	}

	exists, err := m.NamespaceExists(ctx, namespaceID)
	if err != nil {
		return &CreationFailedError{NamespaceID: namespaceID, Err: err}
	}
	if exists {
		return &CreationFailedError{NamespaceID: namespaceID, Err: fmt.Errorf("namespace already exists")}
	}

	if _, err := m.runner.ExecContext(ctx, "CREATE SCHEMA "+quoteIdentifier(namespaceID)); err != nil {
		return &CreationFailedError{NamespaceID: namespaceID, Err: err}
	}

	if err := m.migrator.Up(ctx, namespaceID); err != nil {
		if _, dropErr := m.runner.ExecContext(ctx, "DROP SCHEMA IF EXISTS "+quoteIdentifier(namespaceID)+" CASCADE"); dropErr != nil {
			m.logger.Errorf("failed to remove partial namespace %s: %v", namespaceID, dropErr)
		}
		return &CreationFailedError{NamespaceID: namespaceID, Err: err}
	}

	m.logger.Infof("created namespace %s", namespaceID)
	return nil
}

// ApplyPendingMigrations brings an existing namespace up to the latest schema
// version. It is idempotent, and a per-namespace Postgres session lock
// serializes concurrent attempts on the same namespace while leaving
// migrations of unrelated namespaces free to proceed in parallel.
func (m *Manager) ApplyPendingMigrations(ctx context.Context, namespaceID string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.ApplyPendingMigrations")
	defer span.End()

	if !ValidNamespaceID(namespaceID) {
		return ErrInvalidNamespaceID
	}

	return m.migrator.Up(ctx, namespaceID)
}

// SeedNamespace inserts the default reference data every fresh namespace
// starts with. Safe to call more than once.
func (m *Manager) SeedNamespace(ctx context.Context, namespaceID string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.SeedNamespace")
	defer span.End()

	if !ValidNamespaceID(namespaceID) {
		return ErrInvalidNamespaceID
	}

	settings := fmt.Sprintf(
		"INSERT INTO %s (id) VALUES (1) ON CONFLICT (id) DO NOTHING",
		db.Qualify(namespaceID, "tenant_settings"),
	)
	if _, err := m.runner.ExecContext(ctx, settings); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	stages := fmt.Sprintf(
		"INSERT INTO %s (id, name, position, is_terminal) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING",
		db.Qualify(namespaceID, "pipeline_stages"),
	)
	for i, stage := range defaultPipelineStages {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate stage ID: %w", err)
		}
		if _, err := m.runner.ExecContext(ctx, stages, id.String(), stage.name, i, stage.terminal); err != nil {
			return fmt.Errorf("failed to seed pipeline stage %s: %w", stage.name, err)
		}
	}

	return nil
}

// DropNamespace irreversibly destroys the namespace and all data within.
// Success is only reported after the removal has been confirmed; a missing
// namespace is ErrNamespaceNotFound so callers can tell deletion actually
// happened here.
func (m *Manager) DropNamespace(ctx context.Context, namespaceID string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.DropNamespace")
	defer span.End()

	if !ValidNamespaceID(namespaceID) {
		return ErrInvalidNamespaceID
	}

	exists, err := m.NamespaceExists(ctx, namespaceID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNamespaceNotFound
	}

	if _, err := m.runner.ExecContext(ctx, "DROP SCHEMA "+quoteIdentifier(namespaceID)+" CASCADE"); err != nil {
		return fmt.Errorf("failed to drop namespace %s: %w", namespaceID, err)
	}

	exists, err = m.NamespaceExists(ctx, namespaceID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("namespace %s still present after drop", namespaceID)
	}

	m.logger.Infof("dropped namespace %s", namespaceID)
	return nil
}

func (m *Manager) NamespaceExists(ctx context.Context, namespaceID string) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.NamespaceExists")
	defer span.End()

	var exists bool
	err := m.runner.QueryRowContext(
		ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.schemata WHERE schema_name = $1)",
		namespaceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check namespace existence: %w", err)
	}

	return exists, nil
}

// sqlRunner adapts *sql.DB to RunnerInterface.
type sqlRunner struct {
	db *sql.DB
}

func (r sqlRunner) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.db.ExecContext(ctx, query, args...)
}

func (r sqlRunner) QueryRowContext(ctx context.Context, query string, args ...any) RowInterface {
	return r.db.QueryRowContext(ctx, query, args...)
}

// gooseMigrator runs the embedded tenant-schema migrations against one
// namespace at a time.
type gooseMigrator struct {
	dsn    string
	logger logging.LoggerInterface
}

func (g gooseMigrator) Up(ctx context.Context, namespaceID string) error {
	config, err := pgx.ParseConfig(g.dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed: %w", err)
	}
	// Pinning search_path scopes every unqualified statement, including
	// goose's own version table, to the target namespace.
	config.RuntimeParams["search_path"] = namespaceID

	handle := stdlib.OpenDB(*config)
	defer handle.Close()

	locker, err := lock.NewPostgresSessionLocker(lock.WithLockID(namespaceLockID(namespaceID)))
	if err != nil {
		return fmt.Errorf("failed to create session locker: %w", err)
	}

	provider, err := goose.NewProvider(
		goose.DialectPostgres,
		handle,
		tenantschema.EmbedMigrations,
		goose.WithSessionLocker(locker),
	)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate namespace %s: %w", namespaceID, err)
	}

	if len(results) > 0 {
		g.logger.Infof("applied %d migrations to namespace %s", len(results), namespaceID)
	}

	return nil
}

// namespaceLockID derives a stable advisory lock id from the namespace
// identifier.
func namespaceLockID(namespaceID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(namespaceID))
	return int64(h.Sum64())
}

func quoteIdentifier(id string) string {
	return pgx.Identifier{id}.Sanitize()
}

var defaultPipelineStages = []struct {
	name     string
	terminal bool
}{
	{"New", false},
	{"Contacted", false},
	{"Qualified", false},
	{"Proposal", false},
	{"Won", true},
	{"Lost", true},
}
