// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import "context"

// CompleterInterface is the workflow side of asynchronous deprovisioning.
type CompleterInterface interface {
	CompleteDeprovision(ctx context.Context, tenantID string) error
}
