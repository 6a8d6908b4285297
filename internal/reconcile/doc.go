// Package reconcile joins a configuration's module invocations against a
// registry snapshot and classifies each one: current, stale, or not tracked
// by the registry at all.
//
// The pass is a single sequential loop over an already-materialized
// invocation sequence. It emits at most one finding per invocation, in input
// order, so repeated runs over the same inputs produce identical output.
package reconcile
