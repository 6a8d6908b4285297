package modkey

import "strings"

// Key is a normalized module identifier. Keys are opaque strings compared
// byte-for-byte; the only way to construct one is through this package.
type Key string

// Join builds a Key from its segments. This is the single join rule for the
// whole system.
func Join(parts ...string) Key {
	return Key(strings.Join(parts, "/"))
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// FromPrivateSource derives a Key from a source string that references the
// private registry's own namespace, i.e. one that begins with
// "<address>/<organization>/". It strips the "<address>/" prefix, leaving the
// key already in organization/name/provider shape. The second return value
// reports whether the source matched the private namespace at all.
func FromPrivateSource(address, organization, source string) (Key, bool) {
	prefix := address + "/" + organization + "/"
	if !strings.HasPrefix(source, prefix) {
		return "", false
	}
	return Key(strings.TrimPrefix(source, address+"/")), true
}

// PublicCandidate treats a source string as a candidate public-registry key
// in namespace/name/provider shape. A candidate may or may not actually be
// tracked by a snapshot; sources that do not even have the three-segment
// shape (git URLs with extra path components, single-segment names) are
// rejected outright.
func PublicCandidate(source string) (Key, bool) {
	parts := strings.Split(source, "/")
	if len(parts) != 3 {
		return "", false
	}
	for _, p := range parts {
		if p == "" {
			return "", false
		}
	}
	return Key(source), true
}
