// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
)

// API is the administrative surface: tenant creation, lifecycle actions,
// domain bindings and usage reporting.
type API struct {
	service  ServiceInterface
	workflow WorkflowInterface
	quota    QuotaInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	workflow WorkflowInterface,
	quota QuotaInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		workflow: workflow,
		quota:    quota,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)
	mux.Post("/api/v0/tenants/{id}/suspend", a.suspendTenant)
	mux.Post("/api/v0/tenants/{id}/resume", a.resumeTenant)
	mux.Get("/api/v0/tenants/{id}/usage", a.getUsage)
	mux.Get("/api/v0/tenants/{id}/domains", a.listDomains)
	mux.Post("/api/v0/tenants/{id}/domains", a.bindDomain)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.createTenant")
	defer span.End()

	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	tenant, err := a.workflow.ProvisionTenant(ctx, req.Name, req.Slug, req.Email, types.Plan(req.Plan), req.PrimaryHost)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	// Provisioning may still be settling asynchronously when this returns.
	a.writeJSON(w, http.StatusAccepted, toTenantResponse(tenant))
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.listTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	resp := make([]*tenantResponse, 0, len(tenants))
	for _, t := range tenants {
		resp = append(resp, toTenantResponse(t))
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.getTenant")
	defer span.End()

	tenant, err := a.service.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, toTenantResponse(tenant))
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.deleteTenant")
	defer span.End()

	if err := a.workflow.DeprovisionTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.writeDomainError(w, err)
		return
	}

	// Namespace teardown continues asynchronously.
	w.WriteHeader(http.StatusAccepted)
}

func (a *API) suspendTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.suspendTenant")
	defer span.End()

	if err := a.service.SuspendTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) resumeTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.resumeTenant")
	defer span.End()

	if err := a.service.ResumeTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getUsage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.getUsage")
	defer span.End()

	id := chi.URLParam(r, "id")
	tenant, err := a.service.FindByID(ctx, id)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	counters, err := a.quota.Usage(ctx, id)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	limits := types.LimitsFor(tenant.Plan)
	resp := make([]*usageCounterResponse, 0, len(counters))
	for _, c := range counters {
		resp = append(resp, &usageCounterResponse{
			Resource: string(c.Resource),
			Period:   c.Period,
			Count:    c.Count,
			Limit:    limits.For(c.Resource),
		})
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) listDomains(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.listDomains")
	defer span.End()

	bindings, err := a.service.ListDomains(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	resp := make([]*domainBindingResponse, 0, len(bindings))
	for _, b := range bindings {
		resp = append(resp, toDomainBindingResponse(b))
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) bindDomain(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.bindDomain")
	defer span.End()

	var req bindDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	binding, err := a.service.BindDomain(ctx, chi.URLParam(r, "id"), req.Host, req.IsPrimary)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, toDomainBindingResponse(binding))
}

// writeDomainError maps domain error kinds to HTTP outcomes. Recoverable
// caller mistakes come back as 4xx with a machine-readable kind, anything
// else is a 500.
func (a *API) writeDomainError(w http.ResponseWriter, err error) {
	var invalidTransition *InvalidTransitionError

	switch {
	case errors.Is(err, ErrNotFound):
		a.writeError(w, http.StatusNotFound, "not_found", "no such tenant")
	case errors.Is(err, ErrDuplicateSlug):
		a.writeError(w, http.StatusConflict, "duplicate_slug", "slug already taken")
	case errors.Is(err, ErrHostAlreadyBound):
		a.writeError(w, http.StatusConflict, "host_already_bound", "host already bound to a tenant")
	case errors.Is(err, ErrInvalidSlug):
		a.writeError(w, http.StatusBadRequest, "invalid_slug", err.Error())
	case errors.As(err, &invalidTransition):
		a.writeError(w, http.StatusConflict, "invalid_transition", invalidTransition.Error())
	default:
		a.logger.Errorf("admin API internal error: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, kind, message string) {
	a.writeJSON(w, status, &errorResponse{Error: kind, Message: message})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
