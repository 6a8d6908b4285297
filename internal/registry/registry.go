package registry

import "errors"

// Mode selects which registry flavor the snapshot is built from.
type Mode int

const (
	// Private is an organization-scoped registry requiring a bearer token.
	Private Mode = iota
	// Public is the shared, unauthenticated registry with verified publishers.
	Public
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	if m == Public {
		return "public"
	}
	return "private"
}

// Config holds everything needed to reach a module registry. It is passed
// explicitly at build time; there is no process-wide registry state.
type Config struct {
	Mode         Mode
	Address      string // registry host, e.g. "app.terraform.io"
	Organization string
	Token        string // bearer token, private mode only

	// BaseURL overrides the https://<Address> request base. Tests point it
	// at a local server; production leaves it empty.
	BaseURL string
}

// baseURL resolves the request base for this config.
func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.Address
}

var (
	// ErrRegistryUnreachable marks a transport failure or a non-success
	// status from the registry. Fatal: the run aborts before any findings
	// can be computed.
	ErrRegistryUnreachable = errors.New("registry unreachable")

	// ErrRegistryResponseInvalid marks a payload that cannot be decoded into
	// the expected module-list shape. Fatal, same rationale.
	ErrRegistryResponseInvalid = errors.New("registry response invalid")
)
