// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for ballista configuration.

package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func configRoot() (string, error) {
	if rootOverride != "" {
		return rootOverride, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(configDir, "ballista"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// Root returns the directory holding ballista.json.
func Root() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	return configRoot()
}

// Path returns the location of ballista.json.
func Path() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	return systemConfigPath()
}

// ManifestDir returns the directory scanned for <name>/manifest.json apps.
func ManifestDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "apps"), nil
}
