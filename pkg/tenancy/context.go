// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/canonical/tenant-core/internal/types"
)

type scopeContextKey struct{}
type exemptContextKey struct{}

// Scope is the tenancy binding for one request or one background task. It
// lives only in the context it was bound to; there is no process-wide
// current tenant.
type Scope struct {
	TenantID    string
	NamespaceID string
	State       types.LifecycleState
	ReadOnly    bool
}

func ContextWithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

func ScopeFromContext(ctx context.Context) (Scope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(Scope)
	return scope, ok
}

// NamespaceFromContext returns the bound namespace id, or empty when the
// context carries no tenancy scope.
func NamespaceFromContext(ctx context.Context) string {
	scope, ok := ScopeFromContext(ctx)
	if !ok {
		return ""
	}
	return scope.NamespaceID
}

func contextWithSuspensionExemption(ctx context.Context) context.Context {
	return context.WithValue(ctx, exemptContextKey{}, true)
}

func suspensionExempt(ctx context.Context) bool {
	exempt, _ := ctx.Value(exemptContextKey{}).(bool)
	return exempt
}
