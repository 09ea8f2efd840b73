// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-core/internal/db"
)

//go:generate mockgen -build_flags=--mod=mod -package namespace -destination ./mock_namespace.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package namespace -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package namespace -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package namespace -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupManager(t *testing.T) (*Manager, *MockRunnerInterface, *MockMigratorInterface, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRunner := NewMockRunnerInterface(ctrl)
	mockMigrator := NewMockMigratorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	m := &Manager{
		runner:   mockRunner,
		migrator: mockMigrator,
		tracer:   mockTracer,
		monitor:  mockMonitor,
		logger:   mockLogger,
	}

	return m, mockRunner, mockMigrator, ctrl
}

// existsRow answers the schemata existence query with a fixed result.
func existsRow(ctrl *gomock.Controller, exists bool) *MockRowInterface {
	row := NewMockRowInterface(ctrl)
	row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		*(dest[0].(*bool)) = exists
		return nil
	})
	return row
}

func TestManager_CreateNamespace_MigrationFailureDropsSchema(t *testing.T) {
	m, mockRunner, mockMigrator, ctrl := setupManager(t)

	migrationErr := errors.New("migration 2 failed")
	gomock.InOrder(
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, false)),
		mockRunner.EXPECT().ExecContext(gomock.Any(), `CREATE SCHEMA "ns_acme"`).Return(nil, nil),
		mockMigrator.EXPECT().Up(gomock.Any(), "ns_acme").Return(migrationErr),
		mockRunner.EXPECT().ExecContext(gomock.Any(), `DROP SCHEMA IF EXISTS "ns_acme" CASCADE`).Return(nil, nil),
	)

	err := m.CreateNamespace(context.Background(), "ns_acme")

	var creationFailed *CreationFailedError
	if !errors.As(err, &creationFailed) {
		t.Fatalf("expected CreationFailedError, got %v", err)
	}
	if !errors.Is(err, migrationErr) {
		t.Errorf("expected error to wrap the migration failure, got %v", err)
	}
}

func TestManager_CreateNamespace(t *testing.T) {
	testCases := []struct {
		name        string
		namespaceID string
		setupMocks  func(*MockRunnerInterface, *MockMigratorInterface, *gomock.Controller)
		expectErr   bool
	}{
		{
			name:        "success",
			namespaceID: "ns_acme",
			setupMocks: func(mockRunner *MockRunnerInterface, mockMigrator *MockMigratorInterface, ctrl *gomock.Controller) {
				gomock.InOrder(
					mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, false)),
					mockRunner.EXPECT().ExecContext(gomock.Any(), `CREATE SCHEMA "ns_acme"`).Return(nil, nil),
					mockMigrator.EXPECT().Up(gomock.Any(), "ns_acme").Return(nil),
				)
			},
		},
		{
			name:        "existing namespace rejected",
			namespaceID: "ns_acme",
			setupMocks: func(mockRunner *MockRunnerInterface, _ *MockMigratorInterface, ctrl *gomock.Controller) {
				mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, true))
			},
			expectErr: true,
		},
		{
			name:        "invalid identifier rejected before touching the database",
			namespaceID: `ns";DROP SCHEMA public;--`,
			setupMocks:  func(*MockRunnerInterface, *MockMigratorInterface, *gomock.Controller) {},
			expectErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, mockRunner, mockMigrator, ctrl := setupManager(t)
			tc.setupMocks(mockRunner, mockMigrator, ctrl)

			err := m.CreateNamespace(context.Background(), tc.namespaceID)

			if tc.expectErr {
				var creationFailed *CreationFailedError
				if !errors.As(err, &creationFailed) {
					t.Fatalf("expected CreationFailedError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestManager_DropNamespace_ConfirmsRemoval(t *testing.T) {
	m, mockRunner, _, ctrl := setupManager(t)

	gomock.InOrder(
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, true)),
		mockRunner.EXPECT().ExecContext(gomock.Any(), `DROP SCHEMA "ns_acme" CASCADE`).Return(nil, nil),
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, false)),
	)

	if err := m.DropNamespace(context.Background(), "ns_acme"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestManager_DropNamespace_StillPresentAfterDrop(t *testing.T) {
	m, mockRunner, _, ctrl := setupManager(t)

	gomock.InOrder(
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, true)),
		mockRunner.EXPECT().ExecContext(gomock.Any(), `DROP SCHEMA "ns_acme" CASCADE`).Return(nil, nil),
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, true)),
	)

	err := m.DropNamespace(context.Background(), "ns_acme")
	if err == nil {
		t.Fatal("expected error when the namespace survives the drop")
	}
	if errors.Is(err, ErrNamespaceNotFound) {
		t.Errorf("unexpected not-found error: %v", err)
	}
}

func TestManager_DropNamespace_SecondDropReportsNotFound(t *testing.T) {
	m, mockRunner, _, ctrl := setupManager(t)

	gomock.InOrder(
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, true)),
		mockRunner.EXPECT().ExecContext(gomock.Any(), `DROP SCHEMA "ns_acme" CASCADE`).Return(nil, nil),
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, false)),
		mockRunner.EXPECT().QueryRowContext(gomock.Any(), gomock.Any(), "ns_acme").Return(existsRow(ctrl, false)),
	)

	if err := m.DropNamespace(context.Background(), "ns_acme"); err != nil {
		t.Fatalf("expected first drop to succeed, got %v", err)
	}

	err := m.DropNamespace(context.Background(), "ns_acme")
	if !errors.Is(err, ErrNamespaceNotFound) {
		t.Fatalf("expected ErrNamespaceNotFound on second drop, got %v", err)
	}
}

func TestManager_SeedNamespace(t *testing.T) {
	m, mockRunner, _, _ := setupManager(t)

	mockRunner.EXPECT().
		ExecContext(gomock.Any(), `INSERT INTO "ns_acme"."tenant_settings" (id) VALUES (1) ON CONFLICT (id) DO NOTHING`).
		Return(nil, nil)
	mockRunner.EXPECT().
		ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(len(defaultPipelineStages))

	if err := m.SeedNamespace(context.Background(), "ns_acme"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidNamespaceID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"simple", "ns_acme", true},
		{"digits", "ns_acme2", true},
		{"single letter", "a", true},
		{"empty", "", false},
		{"leading digit", "1acme", false},
		{"leading underscore", "_acme", false},
		{"hyphen", "ns-acme", false},
		{"uppercase", "NS_ACME", false},
		{"quote injection", `ns";DROP SCHEMA public;--`, false},
		{"max length", "n" + strings.Repeat("a", 62), true},
		{"too long", "n" + strings.Repeat("a", 63), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidNamespaceID(tc.id); got != tc.valid {
				t.Errorf("ValidNamespaceID(%q) = %v, want %v", tc.id, got, tc.valid)
			}
		})
	}
}

func TestNamespaceLockID(t *testing.T) {
	a := namespaceLockID("ns_acme")
	b := namespaceLockID("ns_acme")
	c := namespaceLockID("ns_globex")

	if a != b {
		t.Errorf("lock id should be stable, got %d and %d", a, b)
	}
	if a == c {
		t.Errorf("distinct namespaces should not share a lock id")
	}
}

func TestQualify(t *testing.T) {
	got := db.Qualify("ns_acme", "tenant_settings")
	if got != `"ns_acme"."tenant_settings"` {
		t.Errorf("unexpected qualified name: %s", got)
	}
}
