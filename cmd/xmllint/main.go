// Package main is the entry point for the xmllint CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/thoreinstein/xmllint/cmd/xmllint/commands"
	"github.com/thoreinstein/xmllint/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stderr io.Writer) int {
	err := commands.Execute(ctx)
	if err == nil {
		return errors.ExitSuccess
	}

	exitErr := errors.Classify(err)
	if exitErr.Err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", exitErr)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintf(stderr, "  %s\n", exitErr.Suggestion)
	}
	return exitErr.Code
}
