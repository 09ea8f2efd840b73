// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"

	"github.com/canonical/tenant-core/internal/logging"
	"github.com/canonical/tenant-core/internal/monitoring"
	"github.com/canonical/tenant-core/internal/tracing"
	"github.com/canonical/tenant-core/internal/types"
	"github.com/canonical/tenant-core/pkg/directory"
)

var _ ServiceInterface = (*Service)(nil)

// Service resolves request hosts to tenants. Lookups are cached with a short
// TTL and deduplicated, so a cold popular host costs one directory query no
// matter how many requests race on it.
type Service struct {
	directory    DirectoryInterface
	sharedSuffix string
	ttl          time.Duration

	cache *ristretto.Cache
	group singleflight.Group

	// mu guards hostsByTenant, the reverse index used to drop every cached
	// host of a tenant when its lifecycle state changes.
	mu            sync.Mutex
	hostsByTenant map[string]map[string]struct{}

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	dir DirectoryInterface,
	sharedSuffix string,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Service, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver cache: %w", err)
	}

	return &Service{
		directory:     dir,
		sharedSuffix:  strings.ToLower(strings.TrimPrefix(sharedSuffix, ".")),
		ttl:           ttl,
		cache:         cache,
		hostsByTenant: make(map[string]map[string]struct{}),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}, nil
}

// Resolve maps a request host to its tenant. Misses are not cached, so a
// host bound moments after a failed lookup resolves on the next request.
func (s *Service) Resolve(ctx context.Context, host string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.Resolve")
	defer span.End()

	host = NormalizeHost(host)
	if host == "" {
		return nil, ErrNotFound
	}

	if v, ok := s.cache.Get(host); ok {
		return v.(*types.Tenant), nil
	}

	v, err, _ := s.group.Do(host, func() (interface{}, error) {
		tenant, err := s.lookup(ctx, host)
		if err != nil {
			return nil, err
		}
		s.store(host, tenant)
		return tenant, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*types.Tenant), nil
}

func (s *Service) lookup(ctx context.Context, host string) (*types.Tenant, error) {
	if slug, ok := s.sharedSubdomainSlug(host); ok {
		tenant, err := s.directory.FindBySlug(ctx, slug)
		return s.mapNotFound(tenant, err)
	}

	tenant, err := s.directory.ResolveDomain(ctx, host)
	return s.mapNotFound(tenant, err)
}

func (s *Service) mapNotFound(tenant *types.Tenant, err error) (*types.Tenant, error) {
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// sharedSubdomainSlug extracts the tenant slug from a host directly under the
// shared suffix. Nested subdomains and the bare suffix itself do not resolve.
func (s *Service) sharedSubdomainSlug(host string) (string, bool) {
	if s.sharedSuffix == "" {
		return "", false
	}
	slug, found := strings.CutSuffix(host, "."+s.sharedSuffix)
	if !found || slug == "" || strings.Contains(slug, ".") {
		return "", false
	}
	// Slugs use dashes, namespace identifiers use underscores.
	return strings.ReplaceAll(slug, "_", "-"), true
}

func (s *Service) store(host string, tenant *types.Tenant) {
	s.cache.SetWithTTL(host, tenant, 1, s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	hosts, ok := s.hostsByTenant[tenant.ID]
	if !ok {
		hosts = make(map[string]struct{})
		s.hostsByTenant[tenant.ID] = hosts
	}
	hosts[host] = struct{}{}
}

func (s *Service) InvalidateHost(host string) {
	host = NormalizeHost(host)
	s.cache.Del(host)

	s.mu.Lock()
	defer s.mu.Unlock()
	for tenantID, hosts := range s.hostsByTenant {
		if _, ok := hosts[host]; ok {
			delete(hosts, host)
			if len(hosts) == 0 {
				delete(s.hostsByTenant, tenantID)
			}
		}
	}
}

func (s *Service) InvalidateTenant(tenantID string) {
	s.mu.Lock()
	hosts := s.hostsByTenant[tenantID]
	delete(s.hostsByTenant, tenantID)
	s.mu.Unlock()

	for host := range hosts {
		s.cache.Del(host)
	}
}

// NormalizeHost canonicalizes a request host for lookup: port stripped,
// lower-cased, trailing dot removed.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
