// Package model defines the plain data types shared between the
// configuration tree walker and the reconciler: module invocations as they
// appear in a configuration tree, and the findings produced when an
// invocation does not pin the most recent registry version.
package model
