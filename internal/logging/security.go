// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger records audit-relevant lifecycle events on a dedicated
// named logger so they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) TenantProvisioned(tenantID, slug string) {
	s.l.Info("tenant provisioned",
		zap.String("event", "tenant.provisioned"),
		zap.String("tenant_id", tenantID),
		zap.String("slug", slug),
	)
}

func (s *SecurityLogger) TenantStateChanged(tenantID, from, to string) {
	s.l.Info("tenant state changed",
		zap.String("event", "tenant.state_changed"),
		zap.String("tenant_id", tenantID),
		zap.String("from", from),
		zap.String("to", to),
	)
}

func (s *SecurityLogger) TenantDeprovisioned(tenantID, namespaceID string) {
	s.l.Info("tenant deprovisioned",
		zap.String("event", "tenant.deprovisioned"),
		zap.String("tenant_id", tenantID),
		zap.String("namespace_id", namespaceID),
	)
}
