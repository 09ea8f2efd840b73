// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"errors"
	"fmt"
)

var (
	// ErrNamespaceNotFound is returned by operations on a namespace that
	// does not exist. Dropping an already-dropped namespace reports this
	// rather than succeeding silently.
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrInvalidNamespaceID is returned for identifiers that are not safe
	// Postgres schema names.
	ErrInvalidNamespaceID = errors.New("invalid namespace identifier")
)

// CreationFailedError wraps any failure during namespace creation. The
// partial namespace is always removed before this error is returned.
type CreationFailedError struct {
	NamespaceID string
	Err         error
}

func (e *CreationFailedError) Error() string {
	return fmt.Sprintf("failed to create namespace %s: %v", e.NamespaceID, e.Err)
}

func (e *CreationFailedError) Unwrap() error {
	return e.Err
}
