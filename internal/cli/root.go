// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/root.go
// Summary: The ballista command tree.
// Usage: cli.Run(cli.OpenDesktop, os.Args[1:], os.Stdout, os.Stderr)

package cli

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/registry"
)

// session carries the opened App from the persistent pre-run into commands.
type session struct {
	open    Opener
	globals Globals
	app     *App
}

// Run executes one command line and closes the App afterwards, whether or
// not the command succeeded.
func Run(open Opener, args []string, stdout, stderr io.Writer) error {
	s := &session{open: open}
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if s.app != nil {
		if cerr := s.app.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close preferences")
		}
	}
	return err
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "ballista",
		Short: "A minimal app launcher",
		Long: `Ballista lists a small, curated set of installed apps and launches them.
Without a subcommand it prints the home list.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.prepare,
		RunE:              s.runList,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.globals.ConfigDir, "config-dir", "", "directory holding ballista.json (default: user config dir)")
	flags.StringVar(&s.globals.Backend, "backend", "", "preference store backend: json, sqlite, badger or memory")
	flags.BoolVar(&s.globals.Ephemeral, "ephemeral", false, "keep preferences in memory for this run only")
	flags.StringVar(&s.globals.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		s.listCommand(),
		s.allCommand(),
		s.toggleCommand("enable", true),
		s.toggleCommand("disable", false),
		s.renameCommand(),
		s.orderCommand(),
		s.moveCommand(),
		s.launchCommand(),
		s.systemSettingsCommand(),
		s.defaultAppsCommand(),
		s.watchCommand(),
		s.exportCommand(),
		s.importCommand(),
		s.pathsCommand(),
		s.configCommand(),
	)
	return root
}

func (s *session) prepare(cmd *cobra.Command, args []string) error {
	if s.globals.LogLevel != "" {
		logging.Init(nil, s.globals.LogLevel)
	}
	app, err := s.open(s.globals)
	if err != nil {
		return err
	}
	s.app = app

	out := cmd.OutOrStdout()
	app.SetSettingsHandler(func(registry.AppEntry) error {
		return newPrinter(out).all(app.Repo.AllApps())
	})
	logging.For("cli").Debug().Str("command", cmd.Name()).Msg("Ready")
	return nil
}

// resolve finds an app by id or display name.
func (s *session) resolve(query string) (registry.AppEntry, error) {
	entry, ok := s.app.Repo.Find(query)
	if !ok {
		return registry.AppEntry{}, errors.Errorf("unknown app %q", query)
	}
	return entry, nil
}
