// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"errors"
	"fmt"

	"github.com/canonical/tenant-core/internal/types"
)

var (
	ErrNotFound         = errors.New("tenant not found")
	ErrDuplicateSlug    = errors.New("slug already taken")
	ErrHostAlreadyBound = errors.New("host already bound to a tenant")
	ErrInvalidSlug      = errors.New("invalid slug")
)

// InvalidTransitionError is returned for lifecycle transitions outside the
// state machine. It is an operator or programming error and is never retried.
type InvalidTransitionError struct {
	From types.LifecycleState
	To   types.LifecycleState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid lifecycle transition %s -> %s", e.From, e.To)
}
