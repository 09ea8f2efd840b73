// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// Active tenant scope accounting, used by the tenancy middleware to
	// verify bindings are released on every path.
	IncActiveTenantScopes()
	DecActiveTenantScopes()
}
