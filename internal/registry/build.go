package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"resty.dev/v3"

	"github.com/vk/modpin/internal/ctxlog"
	"github.com/vk/modpin/internal/modkey"
)

// pageSize bounds the listing call. Registries with more published modules
// than this are out of scope for a single-page snapshot.
const pageSize = 20

// moduleDescriptor is the per-module shape this core depends on. Public
// registries populate namespace, private ones organization; everything else
// in the response is ignored.
type moduleDescriptor struct {
	Namespace    string `json:"namespace"`
	Organization string `json:"organization"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Version      string `json:"version"`
}

// moduleList is the response envelope of the module-listing endpoint.
type moduleList struct {
	Modules []moduleDescriptor `json:"modules"`
}

// Build issues the single listing call for cfg's organization and returns
// the resulting snapshot. It fails with ErrRegistryUnreachable on any
// transport failure or non-success status, and with
// ErrRegistryResponseInvalid when the payload cannot be decoded.
func Build(ctx context.Context, cfg Config) (*Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	client := resty.New().SetBaseURL(cfg.baseURL())
	defer client.Close()

	req := client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(pageSize))

	var path string
	switch cfg.Mode {
	case Public:
		// Only verified modules count as the "latest" baseline on the public
		// registry; private registries have no such concept.
		req.SetQueryParam("verified", "true")
		path = "/v1/modules/" + cfg.Organization
	default:
		req.SetAuthToken(cfg.Token)
		path = "/api/registry/v1/modules/" + cfg.Organization
	}

	logger.Debug("Building registry snapshot.", "mode", cfg.Mode.String(), "address", cfg.Address, "organization", cfg.Organization)

	res, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: listing modules for %q: %v", ErrRegistryUnreachable, cfg.Organization, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: %s returned status %s", ErrRegistryUnreachable, cfg.Address, res.Status())
	}

	var list moduleList
	if err := json.Unmarshal(res.Bytes(), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryResponseInvalid, err)
	}

	latest := make(map[modkey.Key]string, len(list.Modules))
	for _, m := range list.Modules {
		// Later entries overwrite earlier ones. Registries should not emit
		// duplicate keys, but last-write-wins keeps the behavior defined.
		latest[cfg.keyFor(m)] = m.Version
	}

	logger.Debug("Registry snapshot built.", "modules", len(latest))
	return NewSnapshot(latest), nil
}

// keyFor computes the normalized key for one response entry.
func (c Config) keyFor(m moduleDescriptor) modkey.Key {
	if c.Mode == Public {
		return modkey.Join(m.Namespace, m.Name, m.Provider)
	}
	org := m.Organization
	if org == "" {
		// Some private registries report the owning org under "namespace".
		org = m.Namespace
	}
	return modkey.Join(org, m.Name, m.Provider)
}
