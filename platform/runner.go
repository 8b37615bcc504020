// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/runner.go
// Summary: Starts resolved launch commands as processes.

package platform

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Command is a fully resolved process to start.
type Command struct {
	Argv     []string
	Dir      string
	Env      []string
	Terminal bool
}

// Runner starts a Command. A nil error means the process was started; how
// it later exits is not a launch failure.
type Runner interface {
	Run(cmd Command) error
}

// DefaultTerminalPrefix wraps terminal apps when stdin is not a tty.
var DefaultTerminalPrefix = []string{"x-terminal-emulator", "-e"}

// Terminal modes for ExecRunner.
const (
	// TerminalAuto uses the PTY when stdin and stdout are terminals and the
	// terminal prefix otherwise.
	TerminalAuto = "auto"
	// TerminalPTY always runs terminal apps in the foreground under a PTY.
	TerminalPTY = "pty"
	// TerminalEmulator always opens terminal apps through the prefix.
	TerminalEmulator = "emulator"
)

// ExecRunner starts GUI apps detached and terminal apps either in the
// foreground under a PTY (interactive shell) or through TerminalPrefix.
type ExecRunner struct {
	TerminalPrefix []string
	TerminalMode   string

	// In and Out are the foreground terminal. Nil means os.Stdin/os.Stdout.
	In  *os.File
	Out io.Writer
}

func (r ExecRunner) in() *os.File {
	if r.In != nil {
		return r.In
	}
	return os.Stdin
}

func (r ExecRunner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r ExecRunner) foreground() bool {
	switch strings.ToLower(r.TerminalMode) {
	case TerminalPTY:
		return true
	case TerminalEmulator:
		return false
	}
	out, ok := r.out().(*os.File)
	return ok && term.IsTerminal(int(r.in().Fd())) && term.IsTerminal(int(out.Fd()))
}

func (r ExecRunner) Run(c Command) error {
	if len(c.Argv) == 0 {
		return errors.New("platform: empty command")
	}

	argv := c.Argv
	if c.Terminal {
		if r.foreground() {
			return runInPTY(c, r.in(), r.out())
		}
		prefix := r.TerminalPrefix
		if len(prefix) == 0 {
			prefix = DefaultTerminalPrefix
		}
		argv = append(append([]string(nil), prefix...), argv...)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %s", argv[0])
	}
	// The launched app outlives us; don't keep it as a zombie child.
	return errors.Wrap(cmd.Process.Release(), "release process")
}
