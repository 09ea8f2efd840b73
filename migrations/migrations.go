// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package migrations embeds the goose migrations for the shared storage area
// (tenant directory and usage counters). Per-tenant namespace migrations live
// in the tenantschema subpackage.
package migrations

import (
	"embed"
)

//go:embed *.sql
var EmbedMigrations embed.FS
