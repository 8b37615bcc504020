// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package platform

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// RunInPTY is not supported on Windows; terminal apps go through the
// terminal prefix instead.
func RunInPTY(c Command) error {
	return runInPTY(c, os.Stdin, os.Stdout)
}

func runInPTY(Command, *os.File, io.Writer) error {
	return errors.New("platform: foreground terminal apps are not supported on windows")
}
