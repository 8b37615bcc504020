// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/sync.go
// Summary: Commands that follow or move preferences outside one invocation.

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/backup"
	"github.com/framegrace/ballista/internal/watch"
)

func (s *session) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the home list every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.app.WatchDirs == nil {
				return errors.New("this platform cannot be watched")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(s.app.WatchDirs(), s.app.Settings.Debounce, s.app.Repo.Refresh)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			p := newPrinter(out)
			updates, cancel := s.app.Repo.Subscribe()
			done := make(chan struct{})
			go func() {
				defer close(done)
				for entries := range updates {
					p.home(entries)
					fmt.Fprintln(out)
				}
			}()

			err = w.Run(ctx)
			cancel()
			<-done
			return err
		},
	}
}

func (s *session) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write order, enabled flags and names as CSV (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return backup.Export(s.app.Repo, cmd.OutOrStdout())
			}
			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrap(err, "create export file")
			}
			if err := backup.Export(s.app.Repo, f); err != nil {
				f.Close()
				return err
			}
			return errors.Wrap(f.Close(), "close export file")
		},
	}
}

func (s *session) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore preferences from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open import file")
				}
				defer f.Close()
				in = f
			}
			n, err := backup.Import(s.app.Repo, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d apps\n", n)
			return nil
		},
	}
}
