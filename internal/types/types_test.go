// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestLifecycleTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    LifecycleState
		to      LifecycleState
		allowed bool
	}{
		{"provisioning to active", StateProvisioning, StateActive, true},
		{"provisioning to deleted", StateProvisioning, StateDeleted, true},
		{"provisioning to suspended", StateProvisioning, StateSuspended, false},
		{"active to suspended", StateActive, StateSuspended, true},
		{"active to deactivating", StateActive, StateDeactivating, true},
		{"active to deleted", StateActive, StateDeleted, false},
		{"suspended to active", StateSuspended, StateActive, true},
		{"suspended to deactivating", StateSuspended, StateDeactivating, true},
		{"deactivating to deleted", StateDeactivating, StateDeleted, true},
		{"deactivating to active", StateDeactivating, StateActive, false},
		{"deleted is terminal", StateDeleted, StateActive, false},
		{"no self loops", StateActive, StateActive, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestLimitsFor(t *testing.T) {
	starter := LimitsFor(PlanStarter)
	if starter.MaxUsers != 5 {
		t.Errorf("expected starter max users 5, got %d", starter.MaxUsers)
	}

	enterprise := LimitsFor(PlanEnterprise)
	for _, r := range []ResourceType{ResourceUsers, ResourceRecords, ResourceStorageBytes, ResourceAPICalls} {
		if enterprise.For(r) != Unlimited {
			t.Errorf("expected enterprise %s unlimited, got %d", r, enterprise.For(r))
		}
	}

	unknown := LimitsFor(Plan("BESPOKE"))
	if unknown != LimitsFor(PlanTrial) {
		t.Errorf("unknown plan should fall back to trial limits")
	}
}

func TestPeriodFor(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	if p := PeriodFor(ResourceAPICalls, now); p != "2026-08" {
		t.Errorf("expected api period 2026-08, got %s", p)
	}
	if p := PeriodFor(ResourceUsers, now); p != LifetimePeriod {
		t.Errorf("expected lifetime period, got %s", p)
	}
}
