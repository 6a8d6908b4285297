package hclwalk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/modpin/internal/ctxlog"
	"github.com/vk/modpin/internal/model"
)

// rootSchema matches only module blocks; every other top-level block in a
// .tf file (resource, provider, variable, ...) falls into the remainder and
// is ignored.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "module", LabelNames: []string{"name"}},
	},
}

// moduleSchema extracts just the attributes this system cares about from a
// module block. Inputs, count, providers and the rest stay in the remainder.
var moduleSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "source", Required: true},
		{Name: "version"},
	},
}

// Walker parses a configuration directory into an ordered sequence of module
// invocations.
type Walker struct {
	parser *hclparse.Parser
}

// NewWalker creates a new configuration tree walker.
func NewWalker() *Walker {
	return &Walker{parser: hclparse.NewParser()}
}

// Walk enumerates every module invocation reachable from dir, recursing into
// local-path child modules. The returned order is stable: files lexically,
// blocks in file order, parents before children.
func (w *Walker) Walk(ctx context.Context, dir string) ([]model.Invocation, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration directory %s: %w", dir, err)
	}

	var out []model.Invocation
	chain := map[string]struct{}{abs: {}}
	if err := w.walkDir(ctx, abs, nil, chain, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// walkDir collects the module calls declared directly in dir, then descends
// into their local-path children. path holds the local names of the call
// chain that led here; chain holds the directories on the current descent
// for cycle detection.
func (w *Walker) walkDir(ctx context.Context, dir string, path []string, chain map[string]struct{}, out *[]model.Invocation) error {
	logger := ctxlog.FromContext(ctx)

	files, err := tfFiles(dir)
	if err != nil {
		return err
	}
	logger.Debug("Scanning configuration directory.", "dir", dir, "files", len(files), "address", model.PathAddress(path))

	var calls []model.Invocation
	for _, file := range files {
		hclFile, diags := w.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		content, _, diags := hclFile.Body.PartialContent(rootSchema)
		if diags.HasErrors() {
			return fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			call, err := decodeModuleBlock(block)
			if err != nil {
				return err
			}
			call.Path = append([]string(nil), path...)
			calls = append(calls, call)
		}
	}

	*out = append(*out, calls...)

	for _, call := range calls {
		if !isLocalPath(call.Source) {
			continue
		}
		childDir := filepath.Clean(filepath.Join(dir, call.Source))
		if _, onChain := chain[childDir]; onChain {
			logger.Warn("Skipping recursive local module reference.", "dir", childDir, "module", call.LocalName)
			continue
		}
		if info, err := os.Stat(childDir); err != nil || !info.IsDir() {
			return fmt.Errorf("module %q: local source %q does not resolve to a directory", call.LocalName, call.Source)
		}

		chain[childDir] = struct{}{}
		childPath := append(append([]string(nil), path...), call.LocalName)
		if err := w.walkDir(ctx, childDir, childPath, chain, out); err != nil {
			return err
		}
		delete(chain, childDir)
	}

	return nil
}

// decodeModuleBlock extracts source and version from a single module block.
func decodeModuleBlock(block *hcl.Block) (model.Invocation, error) {
	name := block.Labels[0]

	content, _, diags := block.Body.PartialContent(moduleSchema)
	if diags.HasErrors() {
		return model.Invocation{}, fmt.Errorf("failed to decode module %q: %w", name, diags)
	}

	source, err := stringAttr(content.Attributes["source"], name)
	if err != nil {
		return model.Invocation{}, err
	}

	version := ""
	if attr := content.Attributes["version"]; attr != nil {
		version, err = stringAttr(attr, name)
		if err != nil {
			return model.Invocation{}, err
		}
	}

	return model.Invocation{LocalName: name, Source: source, Version: version}, nil
}

// stringAttr evaluates an attribute that must be a literal string. Module
// sources and versions cannot reference variables, so evaluation takes no
// context.
func stringAttr(attr *hcl.Attribute, moduleName string) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("module %q: attribute %q must be a literal string: %w", moduleName, attr.Name, diags)
	}
	if val.Type() != cty.String || !val.IsKnown() || val.IsNull() {
		return "", fmt.Errorf("module %q: attribute %q must be a literal string", moduleName, attr.Name)
	}
	return val.AsString(), nil
}

// tfFiles returns the .tf files directly inside dir, lexically sorted.
func tfFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing configuration directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tf" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// isLocalPath reports whether a module source refers to the local filesystem
// rather than a registry or remote address.
func isLocalPath(source string) bool {
	return source == "." || source == ".." ||
		strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../")
}
