// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/paths.go
// Summary: Standard paths for ballista configuration and preference files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/config"
	"github.com/framegrace/ballista/prefs"
)

// Paths holds the resolved file locations of one App.
type Paths struct {
	ConfigFile  string   // ~/.config/ballista/ballista.json
	ManifestDir string   // ~/.config/ballista/apps
	Preferences string   // ~/.config/ballista/ballista_apps.json, or empty in memory
	WatchDirs   []string // desktop entry and manifest directories
}

// GetPaths resolves the paths used by app.
func GetPaths(app *App) (*Paths, error) {
	cfgFile, err := config.Path()
	if err != nil {
		return nil, err
	}
	manifests, err := config.ManifestDir()
	if err != nil {
		return nil, err
	}
	p := &Paths{
		ConfigFile:  cfgFile,
		ManifestDir: manifests,
		Preferences: prefs.Options{Backend: app.Settings.PrefsBackend, Dir: app.Settings.PrefsDir}.Path(),
	}
	if app.WatchDirs != nil {
		p.WatchDirs = app.WatchDirs()
	}
	return p, nil
}

func (s *session) pathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print where configuration and preferences live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := GetPaths(s.app)
			if err != nil {
				return err
			}
			prefsPath := p.Preferences
			if prefsPath == "" {
				prefsPath = "(in memory)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config       %s\n", p.ConfigFile)
			fmt.Fprintf(out, "manifests    %s\n", p.ManifestDir)
			fmt.Fprintf(out, "preferences  %s (%s)\n", prefsPath, s.app.Settings.PrefsBackend)
			for _, dir := range p.WatchDirs {
				fmt.Fprintf(out, "applications %s\n", dir)
			}
			return nil
		},
	}
}
