// Package main is the entry point for the daprgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/daprgen/cli/internal/cmd"
	oerrors "github.com/daprgen/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Commands that already reported the failure mark it as printed.
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
