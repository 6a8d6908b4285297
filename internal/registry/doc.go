// Package registry builds an immutable snapshot of the latest module
// versions published in a Terraform-style module registry.
//
// The snapshot is built with a single listing call at startup and never
// mutated afterwards. Both registry flavors are supported: the public
// registry's unauthenticated, verified-only listing and a private
// organization registry's bearer-token listing. A transport failure or an
// undecodable response is fatal to the whole run: a partial or empty
// snapshot would silently suppress every finding downstream.
package registry
