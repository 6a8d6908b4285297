// Package app contains the core application logic: configuration, logger
// construction, and the single-pass run lifecycle (build registry snapshot,
// walk the configuration tree, reconcile, report), decoupled from any
// specific entrypoint like a CLI.
package app
