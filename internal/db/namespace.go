// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"github.com/jackc/pgx/v5"
)

// Qualify returns a quoted, schema-qualified table reference for use in
// statements that must run inside a tenant namespace. Every storage call made
// on behalf of a tenant goes through this helper so the namespace identifier
// is the only routing key that ever reaches the database.
func Qualify(namespaceID, table string) string {
	return pgx.Identifier{namespaceID, table}.Sanitize()
}
