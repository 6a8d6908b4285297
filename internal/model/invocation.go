package model

import "strings"

// Invocation is one module call found in the configuration tree.
type Invocation struct {
	// Path holds the local names of the ancestor module calls, outermost
	// first. An empty path means the call lives in the root module.
	Path []string

	// LocalName is the identifier used at the call site, e.g. the "vpc" in
	// `module "vpc" { ... }`.
	LocalName string

	// Source is the raw source string exactly as written in configuration.
	Source string

	// Version is the pinned version string, or empty when the call declares
	// no version attribute.
	Version string
}

// Address renders the path in the configuration language's own addressing
// style: an empty path is "root", and path [a, b] becomes
// "module.a.module.b".
func (inv Invocation) Address() string {
	return PathAddress(inv.Path)
}

// PathAddress builds the module address for a tree path. The exact shape is
// load-bearing for diagnostics: it must match how nested module calls are
// addressed in configuration.
func PathAddress(path []string) string {
	if len(path) == 0 {
		return "root"
	}
	var sb strings.Builder
	for i, segment := range path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString("module.")
		sb.WriteString(segment)
	}
	return sb.String()
}
