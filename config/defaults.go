// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Defaults layered under whatever ballista.json contains.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"selfPackage":   "ballista",
		"systemPackage": "system",
		"logLevel":      "warn",
	})
	cfg.RegisterDefaults("preferences", Section{
		"backend": "json",
		"path":    "",
	})
	cfg.RegisterDefaults("discovery", Section{
		"extraDirs": []interface{}{},
		"manifests": true,
	})
	cfg.RegisterDefaults("launch", Section{
		"terminal":       []interface{}{"x-terminal-emulator", "-e"},
		"terminalMode":   "auto",
		"notifier":       "dbus",
		"systemSettings": toList(DefaultSystemSettings),
		"defaultApps":    toList(DefaultDefaultApps),
	})
	cfg.RegisterDefaults("watch", Section{
		"debounce_ms": 250,
	})
}

// DefaultSystemSettings are tried in order to open the desktop's settings.
var DefaultSystemSettings = []string{
	"gnome-control-center",
	"systemsettings",
	"xfce4-settings-manager",
	"lxqt-config",
}

// DefaultDefaultApps are tried in order to open the default applications
// panel, before falling back to DefaultSystemSettings.
var DefaultDefaultApps = []string{
	"gnome-control-center default-apps",
	"systemsettings kcm_componentchooser",
	"xfce4-mime-settings",
}

func toList(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
