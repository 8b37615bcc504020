// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/app.go
// Summary: Wires config, preference store, platform and launcher together.

package cli

import (
	"os"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/config"
	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/launch"
	"github.com/framegrace/ballista/notify"
	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/prefs"
	"github.com/framegrace/ballista/registry"
)

// Globals are the persistent flags shared by every command.
type Globals struct {
	ConfigDir string
	Backend   string
	Ephemeral bool
	LogLevel  string
}

// App is one wired launcher instance.
type App struct {
	Settings   config.Settings
	PM         platform.PackageManager
	Store      prefs.Store
	Repo       *registry.Repository
	Notifier   notify.Notifier
	Dispatcher *launch.Dispatcher

	// WatchDirs lists directories whose changes should trigger a refresh.
	// Nil when the package manager is not backed by the filesystem.
	WatchDirs func() []string
}

// Opener builds the App for a command invocation.
type Opener func(g Globals) (*App, error)

// NewApp wires a repository and dispatcher around pm and store.
func NewApp(s config.Settings, pm platform.PackageManager, store prefs.Store, n notify.Notifier) *App {
	repo := registry.New(pm, store, registry.Options{
		SelfPackage:   s.SelfPackage,
		SystemPackage: s.SystemPackage,
	})
	return &App{
		Settings:   s,
		PM:         pm,
		Store:      store,
		Repo:       repo,
		Notifier:   n,
		Dispatcher: launch.NewDispatcher(pm, launch.Options{Notifier: n}),
	}
}

// SetSettingsHandler rebuilds the dispatcher so the settings entry runs h.
func (a *App) SetSettingsHandler(h launch.SettingsHandler) {
	a.Dispatcher = launch.NewDispatcher(a.PM, launch.Options{Notifier: a.Notifier, Settings: h})
}

// Close flushes and closes the preference store.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

// OpenDesktop is the production Opener.
func OpenDesktop(g Globals) (*App, error) {
	if g.ConfigDir != "" {
		config.SetRoot(g.ConfigDir)
	}
	if err := config.Err(); err != nil {
		logging.For("cli").Warn().Err(err).Msg("Using defaults for unreadable config")
	}

	s := config.Load()
	if g.LogLevel != "" {
		s.LogLevel = g.LogLevel
	}
	logging.Init(nil, s.LogLevel)

	if g.Backend != "" {
		s.PrefsBackend = g.Backend
	}
	if g.Ephemeral {
		s.PrefsBackend = prefs.BackendMemory
	}

	var manifestDir string
	if s.Manifests {
		dir, err := config.ManifestDir()
		if err != nil {
			return nil, err
		}
		manifestDir = dir
	}

	desktop := platform.NewDesktop(platform.DesktopOptions{
		ApplicationDirs: append(platform.DefaultApplicationDirs(), s.ExtraDirs...),
		ManifestDir:     manifestDir,
		Runner:          platform.ExecRunner{TerminalPrefix: s.Terminal, TerminalMode: s.TerminalMode},
	})

	if s.PrefsBackend != prefs.BackendMemory {
		if err := os.MkdirAll(s.PrefsDir, 0755); err != nil {
			return nil, errors.Wrapf(err, "create %s", s.PrefsDir)
		}
	}
	store, err := prefs.Open(prefs.Options{Backend: s.PrefsBackend, Dir: s.PrefsDir})
	if err != nil {
		return nil, err
	}

	app := NewApp(s, desktop, store, notify.Open(s.Notifier, os.Stderr))
	app.WatchDirs = desktop.WatchDirs
	return app, nil
}
