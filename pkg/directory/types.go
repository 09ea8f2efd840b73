// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"time"

	"github.com/canonical/tenant-core/internal/types"
)

type createTenantRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Plan        string `json:"plan" validate:"required,oneof=TRIAL STARTER PROFESSIONAL ENTERPRISE"`
	PrimaryHost string `json:"primary_host" validate:"required,hostname"`
}

type bindDomainRequest struct {
	Host      string `json:"host" validate:"required,hostname"`
	IsPrimary bool   `json:"is_primary"`
}

type tenantResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Email              string    `json:"email"`
	NamespaceID        string    `json:"namespace_id"`
	State              string    `json:"state"`
	Plan               string    `json:"plan"`
	SubscriptionStatus string    `json:"subscription_status"`
	TrialEndsAt        time.Time `json:"trial_ends_at"`
	CreatedAt          time.Time `json:"created_at"`
}

type domainBindingResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	Host      string `json:"host"`
	IsPrimary bool   `json:"is_primary"`
}

type usageCounterResponse struct {
	Resource string `json:"resource"`
	Period   string `json:"period"`
	Count    int64  `json:"count"`
	Limit    int64  `json:"limit"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toTenantResponse(t *types.Tenant) *tenantResponse {
	return &tenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Slug:               t.Slug,
		Email:              t.Email,
		NamespaceID:        t.NamespaceID,
		State:              string(t.State),
		Plan:               string(t.Plan),
		SubscriptionStatus: string(t.SubscriptionStatus),
		TrialEndsAt:        t.TrialEndsAt,
		CreatedAt:          t.CreatedAt,
	}
}

func toDomainBindingResponse(b *types.DomainBinding) *domainBindingResponse {
	return &domainBindingResponse{
		ID:        b.ID,
		TenantID:  b.TenantID,
		Host:      b.Host,
		IsPrimary: b.IsPrimary,
	}
}
