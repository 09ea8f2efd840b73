// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeDropNamespace = "tenant:drop_namespace"

type DropNamespacePayload struct {
	TenantID    string `json:"tenant_id"`
	NamespaceID string `json:"namespace_id"`
}

func NewDropNamespaceTask(tenantID, namespaceID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DropNamespacePayload{TenantID: tenantID, NamespaceID: namespaceID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal drop namespace payload: %w", err)
	}
	return asynq.NewTask(TypeDropNamespace, payload), nil
}

// dropTaskID keys the queue entry by tenant so repeated deprovision calls
// collapse onto one pending job.
func dropTaskID(tenantID string) string {
	return "deprovision:" + tenantID
}
