// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// LifecycleState is the position of a tenant in its provisioning lifecycle.
type LifecycleState string

const (
	StateProvisioning LifecycleState = "PROVISIONING"
	StateActive       LifecycleState = "ACTIVE"
	StateSuspended    LifecycleState = "SUSPENDED"
	StateDeactivating LifecycleState = "DEACTIVATING"
	StateDeleted      LifecycleState = "DELETED"
)

// lifecycleTransitions enumerates the allowed state machine edges.
// DELETED is terminal, PROVISIONING is only ever observed by the
// provisioning workflow itself.
var lifecycleTransitions = map[LifecycleState][]LifecycleState{
	StateProvisioning: {StateActive, StateDeleted},
	StateActive:       {StateSuspended, StateDeactivating},
	StateSuspended:    {StateActive, StateDeactivating},
	StateDeactivating: {StateDeleted},
	StateDeleted:      {},
}

func (s LifecycleState) Valid() bool {
	_, ok := lifecycleTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> next is part of the state machine.
func (s LifecycleState) CanTransitionTo(next LifecycleState) bool {
	for _, allowed := range lifecycleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Plan is a tenant's subscription plan.
type Plan string

const (
	PlanTrial        Plan = "TRIAL"
	PlanStarter      Plan = "STARTER"
	PlanProfessional Plan = "PROFESSIONAL"
	PlanEnterprise   Plan = "ENTERPRISE"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanTrial, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// SubscriptionStatus mirrors the billing provider's view of the subscription.
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "TRIALING"
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

type Tenant struct {
	ID                 string             `db:"id"`
	Name               string             `db:"name"`
	Slug               string             `db:"slug"`
	Email              string             `db:"email"`
	NamespaceID        string             `db:"namespace_id"`
	State              LifecycleState     `db:"state"`
	Plan               Plan               `db:"plan"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status"`
	TrialEndsAt        time.Time          `db:"trial_ends_at"`
	CreatedAt          time.Time          `db:"created_at"`
}

type DomainBinding struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Host      string    `db:"host"`
	IsPrimary bool      `db:"is_primary"`
	CreatedAt time.Time `db:"created_at"`
}

// ResourceType is a countable, quota-limited resource.
type ResourceType string

const (
	ResourceUsers        ResourceType = "users"
	ResourceRecords      ResourceType = "records"
	ResourceStorageBytes ResourceType = "storage_bytes"
	ResourceAPICalls     ResourceType = "api_calls"
)

// Unlimited marks a plan limit with no ceiling.
const Unlimited int64 = -1

type PlanLimits struct {
	MaxUsers            int64
	MaxRecordsPerObject int64
	MaxStorageBytes     int64
	MaxAPICallsPerMonth int64
}

const gib = int64(1) << 30

var planLimits = map[Plan]PlanLimits{
	PlanTrial: {
		MaxUsers:            5,
		MaxRecordsPerObject: 500,
		MaxStorageBytes:     5 * gib,
		MaxAPICallsPerMonth: 1_000,
	},
	PlanStarter: {
		MaxUsers:            5,
		MaxRecordsPerObject: 500,
		MaxStorageBytes:     5 * gib,
		MaxAPICallsPerMonth: 10_000,
	},
	PlanProfessional: {
		MaxUsers:            20,
		MaxRecordsPerObject: 5_000,
		MaxStorageBytes:     25 * gib,
		MaxAPICallsPerMonth: 100_000,
	},
	PlanEnterprise: {
		MaxUsers:            Unlimited,
		MaxRecordsPerObject: Unlimited,
		MaxStorageBytes:     Unlimited,
		MaxAPICallsPerMonth: Unlimited,
	},
}

// LimitsFor returns the quota ceilings for a plan. Unknown plans fall back to
// the trial limits, the most restrictive set.
func LimitsFor(p Plan) PlanLimits {
	if l, ok := planLimits[p]; ok {
		return l
	}
	return planLimits[PlanTrial]
}

// For returns the ceiling for a single resource type.
func (l PlanLimits) For(r ResourceType) int64 {
	switch r {
	case ResourceUsers:
		return l.MaxUsers
	case ResourceRecords:
		return l.MaxRecordsPerObject
	case ResourceStorageBytes:
		return l.MaxStorageBytes
	case ResourceAPICalls:
		return l.MaxAPICallsPerMonth
	}
	return 0
}

// LifetimePeriod is the counter period for resources that never reset.
const LifetimePeriod = "lifetime"

// APIPeriod returns the monthly billing period key for API call counters.
func APIPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// PeriodFor returns the current counter period for a resource.
func PeriodFor(r ResourceType, now time.Time) string {
	if r == ResourceAPICalls {
		return APIPeriod(now)
	}
	return LifetimePeriod
}

type UsageCounter struct {
	TenantID string       `db:"tenant_id"`
	Resource ResourceType `db:"resource"`
	Period   string       `db:"period"`
	Count    int64        `db:"count"`
}
