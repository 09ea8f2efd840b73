// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package jobs -destination ./mock_jobs.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package jobs -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

func TestWorker_HandleDropNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompleter := NewMockCompleterInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	w := &Worker{completer: mockCompleter, logger: mockLogger}

	task, err := NewDropNamespaceTask("tenant-1", "ns_acme")
	if err != nil {
		t.Fatalf("failed to build task: %v", err)
	}
	if task.Type() != TypeDropNamespace {
		t.Errorf("unexpected task type %q", task.Type())
	}

	mockCompleter.EXPECT().CompleteDeprovision(gomock.Any(), "tenant-1").Return(nil)

	if err := w.handleDropNamespace(context.Background(), task); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestWorker_HandleDropNamespace_BadPayloadIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompleter := NewMockCompleterInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	w := &Worker{completer: mockCompleter, logger: mockLogger}

	task := asynq.NewTask(TypeDropNamespace, []byte("not json"))
	err := w.handleDropNamespace(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestDropTaskID(t *testing.T) {
	if got := dropTaskID("tenant-1"); got != "deprovision:tenant-1" {
		t.Errorf("unexpected task id %q", got)
	}
}
