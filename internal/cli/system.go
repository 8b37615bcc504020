// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/system.go
// Summary: Shortcuts into the desktop's settings panels.

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/launch"
)

func (s *session) openAction(action launch.SystemAction) error {
	if len(action.Commands) == 0 {
		return errors.Errorf("no commands configured for %s", action.Name)
	}
	if !s.app.Dispatcher.Open(action) {
		return errors.Errorf("%s could not be opened", action.Name)
	}
	return nil
}

func (s *session) systemSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system-settings",
		Short: "Open the desktop's settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.openAction(launch.SystemSettings(s.app.Settings.SystemSettings))
		},
	}
}

func (s *session) defaultAppsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "default-apps",
		Aliases: []string{"set-default"},
		Short:   "Open the default applications panel to make ballista the default launcher",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := s.app.Settings
			return s.openAction(launch.DefaultApps(st.DefaultApps, st.SystemSettings))
		},
	}
}
