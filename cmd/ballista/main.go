// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/ballista/main.go
// Summary: Entry point for the ballista launcher.
// Usage: Run `ballista` to see the home list, `ballista --help` for the rest.

package main

import (
	"fmt"
	"os"

	"github.com/framegrace/ballista/internal/cli"
)

func main() {
	if err := cli.Run(cli.OpenDesktop, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
