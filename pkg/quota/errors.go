// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"fmt"

	"github.com/canonical/tenant-core/internal/types"
)

// DeniedError is returned when a reservation would push a counter past its
// plan ceiling. The counter is left untouched in that case.
type DeniedError struct {
	Resource  types.ResourceType
	Ceiling   int64
	Requested int64
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("quota exceeded for %s: requested %d over ceiling %d", e.Resource, e.Requested, e.Ceiling)
}
