// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/canonical/tenant-core/internal/logging"
)

// Worker consumes tenant teardown jobs.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	completer CompleterInterface
	logger    logging.LoggerInterface
}

func NewWorker(redisAddr string, concurrency int, completer CompleterInterface, logger logging.LoggerInterface) *Worker {
	w := &Worker{
		server: asynq.NewServer(
			asynq.RedisClientOpt{Addr: redisAddr},
			asynq.Config{Concurrency: concurrency},
		),
		mux:       asynq.NewServeMux(),
		completer: completer,
		logger:    logger,
	}
	w.mux.HandleFunc(TypeDropNamespace, w.handleDropNamespace)
	return w
}

func (w *Worker) handleDropNamespace(ctx context.Context, task *asynq.Task) error {
	var payload DropNamespacePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A payload that never parsed will never parse; do not retry.
		return fmt.Errorf("invalid drop namespace payload: %v: %w", err, asynq.SkipRetry)
	}

	w.logger.Infof("dropping namespace %s for tenant %s", payload.NamespaceID, payload.TenantID)
	return w.completer.CompleteDeprovision(ctx, payload.TenantID)
}

func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
