package reconcile

import (
	"context"

	"github.com/vk/modpin/internal/ctxlog"
	"github.com/vk/modpin/internal/model"
	"github.com/vk/modpin/internal/modkey"
	"github.com/vk/modpin/internal/registry"
)

// Options tunes reconciliation behavior.
type Options struct {
	// Strict promotes a private-namespace source that is missing from the
	// snapshot to a finding. The default treats it as "nothing to compare
	// against" and moves on.
	Strict bool
}

// Reconciler checks module invocations against one registry snapshot.
type Reconciler struct {
	snapshot     *registry.Snapshot
	address      string
	organization string
	opts         Options
}

// New creates a Reconciler for the given snapshot. Address and organization
// identify the private registry namespace, so that sources of the form
// "<address>/<organization>/name/provider" can be recognized as private
// references.
func New(snapshot *registry.Snapshot, address, organization string, opts Options) *Reconciler {
	return &Reconciler{
		snapshot:     snapshot,
		address:      address,
		organization: organization,
		opts:         opts,
	}
}

// Reconcile runs the pass over invocations. AllCurrent in the result is true
// if and only if no findings were produced.
func (r *Reconciler) Reconcile(ctx context.Context, invocations []model.Invocation) model.Result {
	logger := ctxlog.FromContext(ctx)

	var findings []model.Finding
	for _, inv := range invocations {
		if f, ok := r.check(inv); ok {
			findings = append(findings, f)
		}
	}

	logger.Debug("Reconciliation complete.", "invocations", len(invocations), "findings", len(findings))
	return model.Result{
		AllCurrent: len(findings) == 0,
		Findings:   findings,
	}
}

// check classifies one invocation and returns its finding, if any.
func (r *Reconciler) check(inv model.Invocation) (model.Finding, bool) {
	var (
		key  modkey.Key
		kind model.RegistryKind
	)

	if k, ok := modkey.FromPrivateSource(r.address, r.organization, inv.Source); ok {
		key, kind = k, model.PrivateRegistry
	} else if k, ok := modkey.PublicCandidate(inv.Source); ok {
		key, kind = k, model.PublicRegistry
	} else {
		// Git, local-path and other non-registry sources have no key shape
		// at all; nothing to validate.
		return model.Finding{}, false
	}

	latest, tracked := r.snapshot.Latest(key)
	if !tracked {
		if kind == model.PrivateRegistry && r.opts.Strict {
			// The source names the private registry's own namespace yet the
			// registry does not list it.
			return r.finding(inv, kind, ""), true
		}
		// Not tracked by this run's registry; a public candidate may simply
		// be someone else's module.
		return model.Finding{}, false
	}

	// Exact string comparison only. "1.0" and "1.0.0" are different versions
	// here even if semantically equal.
	if inv.Version == latest {
		return model.Finding{}, false
	}
	return r.finding(inv, kind, latest), true
}

// finding assembles the immutable finding for a stale or untracked invocation.
func (r *Reconciler) finding(inv model.Invocation, kind model.RegistryKind, latest string) model.Finding {
	scope := model.ScopeRoot
	address := ""
	if len(inv.Path) > 0 {
		scope = model.ScopeNested
		address = inv.Address()
	}
	return model.Finding{
		Scope:         scope,
		ModuleAddress: address,
		Registry:      kind,
		Source:        inv.Source,
		PinnedVersion: inv.Version,
		LatestVersion: latest,
	}
}
