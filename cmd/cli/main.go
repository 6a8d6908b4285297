package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/modpin/internal/app"
	"github.com/vk/modpin/internal/cli"
)

// main is the entrypoint for the modpin application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. It returns nil only when every module call pins the most recent
// registry version.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	result, err := app.NewApp(outW, appConfig).Run(context.Background())
	if err != nil {
		return err
	}

	if !result.AllCurrent {
		return &cli.ExitError{
			Code:    1,
			Message: fmt.Sprintf("%d module call(s) do not pin the most recent registry version", len(result.Findings)),
		}
	}
	return nil
}
