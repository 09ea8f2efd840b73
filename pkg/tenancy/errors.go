// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"
	"fmt"

	"github.com/canonical/tenant-core/internal/types"
)

// ErrTenantUnavailable covers lifecycle states in which no request may be
// served, deleted and half-provisioned tenants included.
var ErrTenantUnavailable = errors.New("tenant unavailable")

// TenantSuspendedError is raised when a write reaches a suspended tenant.
// Reads still succeed on a read-only scope.
type TenantSuspendedError struct {
	TenantID           string
	Name               string
	SubscriptionStatus types.SubscriptionStatus
}

func (e *TenantSuspendedError) Error() string {
	return fmt.Sprintf("tenant %s is suspended (subscription %s)", e.TenantID, e.SubscriptionStatus)
}
