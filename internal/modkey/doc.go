// Package modkey defines the normalized module identifier used to join
// configuration source strings to registry entries.
//
// A key is a three-segment "namespace/name/provider" (public registry) or
// "organization/name/provider" (private registry) triple. Both the snapshot
// builder and the source classifier must produce keys through this package so
// that keys referring to the same module are byte-identical. Segments are
// joined by '/' with no case normalization.
package modkey
