// Package hclwalk enumerates the module invocation tree of a Terraform-style
// configuration directory.
//
// It parses every .tf file with HCL's native syntax parser, extracts the
// module blocks (all other block types are ignored), and recurses into child
// modules whose source is a local path. Registry, git and other remote
// sources are leaves: module contents are never fetched. The resulting
// invocation sequence is fully materialized and deterministically ordered,
// parents before children.
package hclwalk
