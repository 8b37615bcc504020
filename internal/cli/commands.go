// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/commands.go
// Summary: Home, settings and sort screens as subcommands.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/registry"
)

func (s *session) runList(cmd *cobra.Command, args []string) error {
	return newPrinter(cmd.OutOrStdout()).home(s.app.Repo.EnabledApps())
}

func (s *session) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"home"},
		Short:   "Show enabled apps in launcher order",
		Args:    cobra.NoArgs,
		RunE:    s.runList,
	}
}

func (s *session) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every installed app with its enabled flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newPrinter(cmd.OutOrStdout()).all(s.app.Repo.AllApps())
		},
	}
}

func (s *session) toggleCommand(name string, enabled bool) *cobra.Command {
	short := "Show apps on the home list"
	if !enabled {
		short = "Hide apps from the home list"
	}
	return &cobra.Command{
		Use:   name + " <app>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, query := range args {
				entry, err := s.resolve(query)
				if err != nil {
					return err
				}
				if entry.IsSettings() && !enabled {
					return errors.New("the settings entry cannot be disabled")
				}
				s.app.Repo.ToggleApp(entry.ID, enabled)
			}
			return nil
		},
	}
}

func (s *session) renameCommand() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "rename <app> [name...]",
		Short: "Set or reset an app's display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := s.resolve(args[0])
			if err != nil {
				return err
			}
			if reset {
				s.app.Repo.ResetDisplayName(entry.ID)
				return nil
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return errors.New("a new name is required (or use --reset)")
			}
			s.app.Repo.SetCustomDisplayName(entry.ID, name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "go back to the app's own label")
	return cmd
}

func (s *session) orderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order <app>...",
		Short: "Put the given apps first, keeping the rest in their current order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first := make([]registry.AppEntry, 0, len(args))
			picked := make(map[string]bool, len(args))
			for _, query := range args {
				entry, err := s.resolve(query)
				if err != nil {
					return err
				}
				if picked[entry.ID] {
					continue
				}
				picked[entry.ID] = true
				first = append(first, entry)
			}
			for _, entry := range s.app.Repo.AllApps() {
				if !picked[entry.ID] {
					first = append(first, entry)
				}
			}
			s.app.Repo.ReorderApps(first)
			return nil
		},
	}
}

func (s *session) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <app> up|down|top|bottom|<delta>",
		Short: "Move one app within the launcher order",
		Long: `Move one app within the launcher order. A numeric delta moves by that
many places; put "--" before negative numbers.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := s.resolve(args[0])
			if err != nil {
				return err
			}
			delta, err := parseDelta(args[1], len(s.app.Repo.AllApps()))
			if err != nil {
				return err
			}
			if !s.app.Repo.MoveApp(entry.ID, delta) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is already there\n", entry.DisplayName)
			}
			return nil
		},
	}
}

func parseDelta(arg string, count int) (int, error) {
	switch strings.ToLower(arg) {
	case "up":
		return -1, nil
	case "down":
		return 1, nil
	case "top":
		return -count, nil
	case "bottom":
		return count, nil
	}
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("invalid move %q", arg)
	}
	return delta, nil
}

func (s *session) launchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <app|number>",
		Short: "Start an app by id, name, or its number on the home list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := s.launchTarget(args[0])
			if err != nil {
				return err
			}
			if !s.app.Dispatcher.Launch(entry) {
				return errors.Errorf("%s could not be started", entry.DisplayName)
			}
			return nil
		},
	}
}

func (s *session) launchTarget(arg string) (registry.AppEntry, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		home := s.app.Repo.EnabledApps()
		if n < 1 || n > len(home) {
			return registry.AppEntry{}, errors.Errorf("no app number %d (home list has %d)", n, len(home))
		}
		return home[n-1], nil
	}
	return s.resolve(arg)
}
