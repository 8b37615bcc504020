// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/desktop.go
// Summary: PackageManager backed by XDG desktop entries and app manifests.
// Usage: Scans $XDG_DATA_HOME/applications, $XDG_DATA_DIRS/*/applications and
// the manifest directory on every launcher query.

package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
)

// DesktopOptions configures a Desktop package manager.
type DesktopOptions struct {
	// ApplicationDirs are searched in order; the first entry for a desktop
	// file ID wins. Defaults to DefaultApplicationDirs().
	ApplicationDirs []string

	// ManifestDir holds <name>/manifest.json apps. Empty disables manifests.
	ManifestDir string

	// Locale selects localized names. Defaults to SystemLocale().
	Locale string

	// Runner starts resolved commands. Defaults to ExecRunner{}.
	Runner Runner
}

// installedApp is one resolved launchable package.
type installedApp struct {
	activity Activity
	argv     []string
	dir      string
	env      []string
	actions  map[string][]string
}

// Desktop implements PackageManager for freedesktop.org environments.
type Desktop struct {
	opts DesktopOptions

	mu      sync.RWMutex
	apps    map[string]*installedApp
	scanned bool
}

// NewDesktop creates a desktop package manager. Nothing is scanned until the
// first query.
func NewDesktop(opts DesktopOptions) *Desktop {
	if opts.ApplicationDirs == nil {
		opts.ApplicationDirs = DefaultApplicationDirs()
	}
	if opts.Locale == "" {
		opts.Locale = SystemLocale()
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	return &Desktop{
		opts: opts,
		apps: make(map[string]*installedApp),
	}
}

// DefaultApplicationDirs follows the XDG base directory specification.
func DefaultApplicationDirs() []string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	var dirs []string
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	for _, d := range filepath.SplitList(dataDirs) {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}
	return dirs
}

// SystemLocale returns the message locale from the environment.
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// WatchDirs lists every directory whose contents affect discovery.
func (d *Desktop) WatchDirs() []string {
	dirs := append([]string(nil), d.opts.ApplicationDirs...)
	if d.opts.ManifestDir != "" {
		dirs = append(dirs, d.opts.ManifestDir)
	}
	return dirs
}

// Scan rebuilds the package index from disk.
func (d *Desktop) Scan() error {
	log := logging.For("platform")

	apps := make(map[string]*installedApp)
	seen := make(map[string]bool)

	if d.opts.ManifestDir != "" {
		d.scanManifests(apps, seen)
	}

	for _, dir := range d.opts.ApplicationDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
				return nil
			}
			if de.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil
			}
			id := desktopFileID(dir, path)
			if seen[id] {
				return nil
			}
			// An earlier entry masks later ones even when it is hidden.
			seen[id] = true

			entry, err := ReadDesktopEntry(path, id, d.opts.Locale)
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("Skipping desktop entry")
				return nil
			}
			if !entry.Launchable() {
				return nil
			}
			app, err := appFromDesktopEntry(entry)
			if err != nil {
				log.Warn().Err(err).Str("id", id).Msg("Bad Exec line")
				return nil
			}
			apps[id] = app
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "scan %s", dir)
		}
	}

	d.mu.Lock()
	d.apps = apps
	d.scanned = true
	d.mu.Unlock()

	log.Debug().Int("apps", len(apps)).Msg("Scan complete")
	return nil
}

func (d *Desktop) scanManifests(apps map[string]*installedApp, seen map[string]bool) {
	log := logging.For("platform")

	entries, err := os.ReadDir(d.opts.ManifestDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("dir", d.opts.ManifestDir).Msg("Cannot read manifest dir")
		}
		return
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		appDir := filepath.Join(d.opts.ManifestDir, e.Name())
		m, err := LoadManifest(appDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", appDir).Msg("Failed to load manifest")
			continue
		}
		if err := m.Validate(appDir); err != nil {
			log.Warn().Err(err).Str("app", m.Name).Msg("Invalid manifest")
			continue
		}
		seen[m.Name] = true
		var cats []string
		if m.Category != "" {
			cats = []string{m.Category}
		}
		apps[m.Name] = &installedApp{
			activity: Activity{
				PackageName: m.Name,
				Label:       m.DisplayName,
				Terminal:    m.Terminal,
				Categories:  cats,
			},
			argv: m.Argv(appDir),
			dir:  appDir,
			env:  m.Environ(),
		}
	}
}

func appFromDesktopEntry(entry *DesktopEntry) (*installedApp, error) {
	argv, err := ExpandExec(entry.Exec, entry)
	if err != nil {
		return nil, err
	}
	label := entry.Name
	if label == "" {
		label = entry.ID
	}
	app := &installedApp{
		activity: Activity{
			PackageName: entry.ID,
			Label:       label,
			Terminal:    entry.Terminal,
			Categories:  entry.Categories,
		},
		argv:    argv,
		dir:     entry.WorkDir,
		actions: make(map[string][]string),
	}
	for _, a := range entry.Actions {
		if actionArgv, err := ExpandExec(a.Exec, entry); err == nil {
			app.actions[a.ID] = actionArgv
		}
	}
	return app, nil
}

// desktopFileID derives the desktop file ID: the path below the applications
// dir with '/' replaced by '-' and the suffix removed.
func desktopFileID(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".desktop")
	return strings.ReplaceAll(rel, "/", "-")
}

func (d *Desktop) ensureScanned() {
	d.mu.RLock()
	scanned := d.scanned
	d.mu.RUnlock()
	if scanned {
		return
	}
	if err := d.Scan(); err != nil {
		logging.For("platform").Error().Err(err).Msg("Desktop scan failed")
	}
}

func (d *Desktop) lookup(pkg string) *installedApp {
	d.ensureScanned()
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.apps[pkg]
}

// QueryLauncherActivities rescans and returns every launchable app, sorted by
// package id.
func (d *Desktop) QueryLauncherActivities() ([]Activity, error) {
	if err := d.Scan(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Activity, 0, len(d.apps))
	for _, app := range d.apps {
		out = append(out, app.activity)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PackageName < out[j].PackageName
	})
	return out, nil
}

func (d *Desktop) LaunchIntentForPackage(pkg string) (*Intent, bool) {
	app := d.lookup(pkg)
	if app == nil {
		return nil, false
	}
	return &Intent{
		Package:  pkg,
		Command:  append([]string(nil), app.argv...),
		Dir:      app.dir,
		Env:      app.env,
		Terminal: app.activity.Terminal,
	}, true
}

func (d *Desktop) ApplicationLabel(pkg string) string {
	if app := d.lookup(pkg); app != nil {
		return app.activity.Label
	}
	return pkg
}

// StartActivity resolves the intent against the index and runs it.
func (d *Desktop) StartActivity(intent Intent) error {
	cmd, err := d.resolve(intent)
	if err != nil {
		return err
	}
	logging.For("platform").Info().Strs("argv", cmd.Argv).Bool("terminal", cmd.Terminal).Msg("Starting")
	return d.opts.Runner.Run(cmd)
}

func (d *Desktop) resolve(intent Intent) (Command, error) {
	switch {
	case intent.Component != nil:
		app := d.lookup(intent.Component.Package)
		if app == nil {
			return Command{}, errors.Wrapf(ErrNotFound, "package %s", intent.Component.Package)
		}
		argv, ok := app.actions[intent.Component.Class]
		if !ok {
			return Command{}, errors.Wrapf(ErrNotFound, "component %s/%s",
				intent.Component.Package, intent.Component.Class)
		}
		return Command{Argv: argv, Dir: app.dir, Env: app.env, Terminal: app.activity.Terminal}, nil

	case len(intent.Command) > 0:
		return Command{Argv: intent.Command, Dir: intent.Dir, Env: intent.Env, Terminal: intent.Terminal}, nil

	case intent.Action == ActionMain && intent.HasCategory(CategoryLauncher) && intent.Package != "":
		activities, err := d.QueryLauncherActivities()
		if err != nil {
			return Command{}, err
		}
		for _, a := range activities {
			if a.PackageName != intent.Package {
				continue
			}
			app := d.lookup(a.PackageName)
			if app == nil {
				break
			}
			return Command{Argv: app.argv, Dir: app.dir, Env: app.env, Terminal: a.Terminal}, nil
		}
		return Command{}, errors.Wrapf(ErrNotFound, "launcher activity for %s", intent.Package)
	}
	return Command{}, errors.New("platform: intent has nothing to start")
}
