// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed view of ballista.json used to wire the launcher together.

package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Settings is the resolved configuration.
type Settings struct {
	SelfPackage   string
	SystemPackage string
	LogLevel      string

	PrefsBackend string
	// PrefsDir holds the preference store. Relative paths are resolved
	// against the config root.
	PrefsDir string

	ExtraDirs []string
	Manifests bool

	Terminal     []string
	TerminalMode string
	Notifier     string

	// SystemSettings and DefaultApps are fallback chains of command lines.
	SystemSettings [][]string
	DefaultApps    [][]string

	Debounce time.Duration
}

// Load resolves Settings from the process-wide config.
func Load() Settings {
	root, _ := Root()
	return FromConfig(System(), root)
}

// FromConfig resolves Settings from cfg. root is the config directory.
func FromConfig(cfg Config, root string) Settings {
	s := Settings{
		SelfPackage:   cfg.GetString("", "selfPackage", "ballista"),
		SystemPackage: cfg.GetString("", "systemPackage", "system"),
		LogLevel:      cfg.GetString("", "logLevel", "warn"),
		PrefsBackend:  cfg.GetString("preferences", "backend", "json"),
		PrefsDir:      cfg.GetString("preferences", "path", ""),
		ExtraDirs:     cfg.GetStringSlice("discovery", "extraDirs", nil),
		Manifests:     cfg.GetBool("discovery", "manifests", true),
		Terminal:      cfg.GetStringSlice("launch", "terminal", []string{"x-terminal-emulator", "-e"}),
		TerminalMode:  cfg.GetString("launch", "terminalMode", "auto"),
		Notifier:      cfg.GetString("launch", "notifier", "dbus"),
		Debounce:      cfg.GetDuration("watch", "debounce_ms", 250*time.Millisecond),
	}
	s.SystemSettings = commandLines(cfg.GetStringSlice("launch", "systemSettings", DefaultSystemSettings))
	s.DefaultApps = commandLines(cfg.GetStringSlice("launch", "defaultApps", DefaultDefaultApps))
	switch {
	case s.PrefsDir == "":
		s.PrefsDir = root
	case !filepath.IsAbs(s.PrefsDir):
		s.PrefsDir = filepath.Join(root, s.PrefsDir)
	}
	return s
}

func commandLines(lines []string) [][]string {
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		if argv := strings.Fields(line); len(argv) > 0 {
			out = append(out, argv)
		}
	}
	return out
}
