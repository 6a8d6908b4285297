package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modpin/internal/modkey"
)

func TestBuild_PublicRegistry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"modules": [
			{"namespace": "terraform-aws-modules", "name": "vpc", "provider": "aws", "version": "5.0.0"},
			{"namespace": "terraform-aws-modules", "name": "eks", "provider": "aws", "version": "20.0.0"}
		]}`))
	}))
	defer srv.Close()

	cfg := Config{
		Mode:         Public,
		Address:      "registry.terraform.io",
		Organization: "terraform-aws-modules",
		BaseURL:      srv.URL,
	}

	// --- Act ---
	snapshot, err := Build(context.Background(), cfg)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, gotReq, "the registry endpoint was never called")

	assert.Equal(t, "/v1/modules/terraform-aws-modules", gotReq.URL.Path)
	assert.Equal(t, "20", gotReq.URL.Query().Get("limit"))
	assert.Equal(t, "true", gotReq.URL.Query().Get("verified"))
	assert.Empty(t, gotReq.Header.Get("Authorization"), "public mode must not authenticate")

	assert.Equal(t, 2, snapshot.Len())
	v, ok := snapshot.Latest(modkey.Key("terraform-aws-modules/vpc/aws"))
	require.True(t, ok)
	assert.Equal(t, "5.0.0", v)
}

func TestBuild_PrivateRegistry(t *testing.T) {
	t.Parallel()

	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"modules": [
			{"organization": "acme", "name": "vpc", "provider": "aws", "version": "2.1.0"}
		]}`))
	}))
	defer srv.Close()

	cfg := Config{
		Mode:         Private,
		Address:      "app.terraform.io",
		Organization: "acme",
		Token:        "t0ken",
		BaseURL:      srv.URL,
	}

	snapshot, err := Build(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, gotReq)

	assert.Equal(t, "/api/registry/v1/modules/acme", gotReq.URL.Path)
	assert.Equal(t, "Bearer t0ken", gotReq.Header.Get("Authorization"))
	assert.Empty(t, gotReq.URL.Query().Get("verified"), "private registries have no verified filter")

	v, ok := snapshot.Latest(modkey.Key("acme/vpc/aws"))
	require.True(t, ok)
	assert.Equal(t, "2.1.0", v)
}

func TestBuild_PrivateRegistryNamespaceFallback(t *testing.T) {
	t.Parallel()

	// Some private registries report the owning org under "namespace".
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modules": [
			{"namespace": "acme", "name": "db", "provider": "aws", "version": "3.0.0"}
		]}`))
	}))
	defer srv.Close()

	snapshot, err := Build(context.Background(), Config{
		Mode:         Private,
		Address:      "app.terraform.io",
		Organization: "acme",
		Token:        "t0ken",
		BaseURL:      srv.URL,
	})

	require.NoError(t, err)
	_, ok := snapshot.Latest(modkey.Key("acme/db/aws"))
	assert.True(t, ok)
}

func TestBuild_DuplicateKeysLastWriteWins(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modules": [
			{"organization": "acme", "name": "vpc", "provider": "aws", "version": "1.0.0"},
			{"organization": "acme", "name": "vpc", "provider": "aws", "version": "2.0.0"}
		]}`))
	}))
	defer srv.Close()

	snapshot, err := Build(context.Background(), Config{
		Mode:         Private,
		Address:      "app.terraform.io",
		Organization: "acme",
		Token:        "t0ken",
		BaseURL:      srv.URL,
	})

	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
	v, _ := snapshot.Latest(modkey.Key("acme/vpc/aws"))
	assert.Equal(t, "2.0.0", v)
}

func TestBuild_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := Build(context.Background(), Config{
		Mode:         Private,
		Address:      "app.terraform.io",
		Organization: "acme",
		Token:        "bad",
		BaseURL:      srv.URL,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistryUnreachable)
}

func TestBuild_TransportFailure(t *testing.T) {
	t.Parallel()

	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := Build(context.Background(), Config{
		Mode:         Public,
		Address:      "registry.terraform.io",
		Organization: "acme",
		BaseURL:      srv.URL,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistryUnreachable)
}

func TestBuild_InvalidResponse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>definitely not json</html>`},
		{name: "wrong shape", body: `{"modules": "a string"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := Build(context.Background(), Config{
				Mode:         Public,
				Address:      "registry.terraform.io",
				Organization: "acme",
				BaseURL:      srv.URL,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRegistryResponseInvalid)
		})
	}
}

func TestBuild_EmptyListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modules": []}`))
	}))
	defer srv.Close()

	snapshot, err := Build(context.Background(), Config{
		Mode:         Public,
		Address:      "registry.terraform.io",
		Organization: "acme",
		BaseURL:      srv.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Len())
}
