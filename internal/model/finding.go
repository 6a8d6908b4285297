package model

import "fmt"

// RegistryKind identifies which kind of registry a finding was matched
// against.
type RegistryKind int

const (
	PrivateRegistry RegistryKind = iota
	PublicRegistry
)

// String implements fmt.Stringer for RegistryKind.
func (k RegistryKind) String() string {
	switch k {
	case PrivateRegistry:
		return "Private registry"
	case PublicRegistry:
		return "Public registry"
	default:
		return "Unknown registry"
	}
}

// Scope identifies where in the configuration tree a finding was raised.
type Scope int

const (
	ScopeRoot Scope = iota
	ScopeNested
)

// Finding is one detected version mismatch for a single module invocation.
// Findings are created during reconciliation and never mutated afterwards.
type Finding struct {
	Scope Scope

	// ModuleAddress is the nested module address, e.g. "module.net.module.db".
	// Empty for root-scoped findings.
	ModuleAddress string

	Registry      RegistryKind
	Source        string
	PinnedVersion string

	// LatestVersion is the most recent version known to the registry. Empty
	// only for strict-mode findings where the module was expected in the
	// registry but absent.
	LatestVersion string
}

// location renders the scope for diagnostics: "root" or the nested address.
func (f Finding) location() string {
	if f.Scope == ScopeRoot {
		return "root"
	}
	return f.ModuleAddress
}

// Diagnostic renders the human-readable description of the finding.
func (f Finding) Diagnostic() string {
	if f.LatestVersion == "" {
		return fmt.Sprintf("%s module %s used in %s has version %s but is not tracked by the registry",
			f.Registry, f.Source, f.location(), f.PinnedVersion)
	}
	return fmt.Sprintf("%s module %s used in %s has version %s that is not the most recent version %s",
		f.Registry, f.Source, f.location(), f.PinnedVersion, f.LatestVersion)
}

// Result aggregates one reconciliation pass. AllCurrent is true if and only
// if Findings is empty.
type Result struct {
	AllCurrent bool
	Findings   []Finding
}
