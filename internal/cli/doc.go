// Package cli translates command-line arguments into an app.Config and owns
// the ExitError type used to carry exit codes back to the entrypoint.
package cli
