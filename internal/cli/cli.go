package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/modpin/internal/app"
)

// tokenEnvVar is consulted for the private registry token when the -token
// flag is not given.
const tokenEnvVar = "TFREG_TOKEN"

// defaultAddress is the registry host used when -address is not given.
const defaultAddress = "app.terraform.io"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("modpin", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modpin - Checks that every module call in a Terraform-style configuration
tree pins the most recent version published in its module registry.

Usage:
  modpin [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to the directory containing the root module. Defaults to ".".

Options:
`)
		flagSet.PrintDefaults()
	}

	pathFlag := flagSet.String("path", "", "Path to the configuration directory.")
	pFlag := flagSet.String("p", "", "Path to the configuration directory (shorthand).")
	orgFlag := flagSet.String("organization", "", "Registry organization to validate against. Required.")
	addressFlag := flagSet.String("address", defaultAddress, "Registry host.")
	publicFlag := flagSet.Bool("public", false, "Query the public registry instead of a private one.")
	tokenFlag := flagSet.String("token", "", "Bearer token for the private registry. Defaults to $"+tokenEnvVar+".")
	strictFlag := flagSet.Bool("strict", false, "Report private-namespace modules that are missing from the registry.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *pathFlag != "" {
		path = *pathFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else {
		path = "."
	}
	slog.Debug("Configuration path determined.", "path", path)

	if *orgFlag == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "the -organization flag is required"}
	}

	token := *tokenFlag
	if token == "" {
		token = os.Getenv(tokenEnvVar)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Path:           path,
		PublicRegistry: *publicFlag,
		Address:        *addressFlag,
		Organization:   *orgFlag,
		Token:          token,
		Strict:         *strictFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
