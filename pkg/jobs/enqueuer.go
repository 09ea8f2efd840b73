// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/canonical/tenant-core/internal/logging"
)

const dropMaxRetry = 10

// Enqueuer submits tenant teardown jobs to the queue.
type Enqueuer struct {
	client *asynq.Client
	logger logging.LoggerInterface
}

func NewEnqueuer(redisAddr string, logger logging.LoggerInterface) *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
		logger: logger,
	}
}

// EnqueueDropNamespace queues the namespace drop for a tenant. A task id
// conflict means an identical job is already pending, which is the desired
// state, not a failure.
func (e *Enqueuer) EnqueueDropNamespace(ctx context.Context, tenantID, namespaceID string) error {
	task, err := NewDropNamespaceTask(tenantID, namespaceID)
	if err != nil {
		return err
	}

	_, err = e.client.EnqueueContext(ctx, task,
		asynq.TaskID(dropTaskID(tenantID)),
		asynq.MaxRetry(dropMaxRetry),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			e.logger.Debugf("drop namespace job for tenant %s already queued", tenantID)
			return nil
		}
		return fmt.Errorf("failed to enqueue drop namespace job for tenant %s: %w", tenantID, err)
	}

	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}
