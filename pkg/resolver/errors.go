// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import "errors"

var ErrNotFound = errors.New("no tenant for host")
