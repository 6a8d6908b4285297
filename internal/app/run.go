package app

import (
	"context"
	"fmt"

	"github.com/vk/modpin/internal/ctxlog"
	"github.com/vk/modpin/internal/model"
	"github.com/vk/modpin/internal/reconcile"
	"github.com/vk/modpin/internal/registry"
)

// Run executes the full validation pass: one registry listing call, one tree
// walk, one reconciliation. A registry or configuration failure is fatal and
// returned as an error; stale modules are business outcomes carried in the
// result, not errors.
func (a *App) Run(ctx context.Context) (model.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	mode := registry.Private
	if a.config.PublicRegistry {
		mode = registry.Public
	}
	snapshot, err := registry.Build(ctx, registry.Config{
		Mode:         mode,
		Address:      a.config.Address,
		Organization: a.config.Organization,
		Token:        a.config.Token,
		BaseURL:      a.config.RegistryBaseURL,
	})
	if err != nil {
		return model.Result{}, err
	}

	invocations, err := a.walker.Walk(ctx, a.config.Path)
	if err != nil {
		return model.Result{}, err
	}

	reconciler := reconcile.New(snapshot, a.config.Address, a.config.Organization, reconcile.Options{
		Strict: a.config.Strict,
	})
	result := reconciler.Reconcile(ctx, invocations)

	for _, finding := range result.Findings {
		fmt.Fprintln(a.outW, finding.Diagnostic())
	}

	if result.AllCurrent {
		a.logger.Info("All modules pin the most recent registry version.", "modules", len(invocations))
	} else {
		a.logger.Info("Stale module pins detected.", "modules", len(invocations), "findings", len(result.Findings))
	}

	return result, nil
}
