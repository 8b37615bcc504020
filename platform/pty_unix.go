// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/pty_unix.go
// Summary: Runs terminal apps in the foreground under a pseudo-terminal.

//go:build !windows

package platform

import (
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/framegrace/ballista/internal/logging"
)

// RunInPTY attaches the command to the current terminal through a PTY and
// blocks until it exits. Once started, the app's exit status is logged and
// not returned.
func RunInPTY(c Command) error {
	return runInPTY(c, os.Stdin, os.Stdout)
}

func runInPTY(c Command, in *os.File, out io.Writer) error {
	if len(c.Argv) == 0 {
		return errors.New("platform: empty command")
	}
	log := logging.For("platform")

	cmd := exec.Command(c.Argv[0], c.Argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return errors.Wrapf(err, "start %s in pty", c.Argv[0])
	}
	defer ptmx.Close()

	abort := func(cause error) error {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return cause
	}

	if term.IsTerminal(int(in.Fd())) {
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		go func() {
			for range winch {
				if err := pty.InheritSize(in, ptmx); err != nil {
					log.Debug().Err(err).Msg("Resize pty failed")
				}
			}
		}()
		winch <- syscall.SIGWINCH
		defer func() {
			signal.Stop(winch)
			close(winch)
		}()

		oldState, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return abort(errors.Wrap(err, "set raw mode"))
		}
		defer term.Restore(int(in.Fd()), oldState)
	}

	// The input copy must stop when the app exits, or it would eat the
	// next keystroke meant for whoever reads the terminal after us.
	input := cancelableInput(in)
	defer input.Close()

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		_, _ = io.Copy(ptmx, input)
	}()
	_, _ = io.Copy(out, ptmx)

	if err := cmd.Wait(); err != nil {
		log.Debug().Err(err).Str("app", c.Argv[0]).Msg("Terminal app exited")
	}
	input.Cancel()
	<-copied
	return nil
}

// cancelableInput wraps in so a blocked Read can be interrupted. Regular
// files cannot be polled; they reach EOF on their own, so the plain
// fallback reader is enough for them.
func cancelableInput(in *os.File) cancelreader.CancelReader {
	r, err := cancelreader.NewReader(in)
	if err == nil {
		return r
	}
	logging.For("platform").Debug().Err(err).Str("input", in.Name()).Msg("Input is not pollable")
	r, _ = cancelreader.NewReader(struct{ io.Reader }{in})
	return r
}
