// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenantschema embeds the goose migrations applied inside every
// tenant namespace. The migrations are unqualified; the namespace manager
// runs them on a connection whose search_path is pinned to the target
// namespace, which also places the goose version table inside it.
package tenantschema

import (
	"embed"
)

//go:embed *.sql
var EmbedMigrations embed.FS
