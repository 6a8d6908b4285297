package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathAddress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "root", path: nil, expected: "root"},
		{name: "single level", path: []string{"net"}, expected: "module.net"},
		{name: "nested", path: []string{"net", "db"}, expected: "module.net.module.db"},
		{name: "deeply nested", path: []string{"a", "b", "c"}, expected: "module.a.module.b.module.c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, PathAddress(tc.path))
		})
	}
}

func TestFinding_Diagnostic(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		finding  Finding
		expected string
	}{
		{
			name: "private registry, root scope",
			finding: Finding{
				Scope:         ScopeRoot,
				Registry:      PrivateRegistry,
				Source:        "app.terraform.io/acme/vpc/aws",
				PinnedVersion: "2.0.0",
				LatestVersion: "2.1.0",
			},
			expected: "Private registry module app.terraform.io/acme/vpc/aws used in root has version 2.0.0 that is not the most recent version 2.1.0",
		},
		{
			name: "public registry, nested scope",
			finding: Finding{
				Scope:         ScopeNested,
				ModuleAddress: "module.net.module.db",
				Registry:      PublicRegistry,
				Source:        "acme/db/aws",
				PinnedVersion: "1.2.0",
				LatestVersion: "1.3.0",
			},
			expected: "Public registry module acme/db/aws used in module.net.module.db has version 1.2.0 that is not the most recent version 1.3.0",
		},
		{
			name: "strict-mode untracked module",
			finding: Finding{
				Scope:         ScopeRoot,
				Registry:      PrivateRegistry,
				Source:        "app.terraform.io/acme/gone/aws",
				PinnedVersion: "0.1.0",
			},
			expected: "Private registry module app.terraform.io/acme/gone/aws used in root has version 0.1.0 but is not tracked by the registry",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.finding.Diagnostic())
		})
	}
}
