// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: First-run and load logic for the config store.

package config

import (
	"github.com/framegrace/ballista/internal/logging"
)

func loadSystemLocked() error {
	log := logging.For("config")

	path, err := systemConfigPath()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to resolve config path")
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Warn().Err(readErr).Str("path", path).Msg("Failed to read config")
		cfg = make(Config)
	}

	// A missing or emptied file is replaced by the embedded defaults.
	if !exists || (readErr == nil && len(cfg) == 0) {
		if def := defaultSystemConfig(); def != nil {
			cfg = def
		} else {
			cfg = make(Config)
		}
		applySystemDefaults(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to write default config")
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applySystemDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log.Debug().Str("path", path).Msg("Loaded config")
	}
	return readErr
}
