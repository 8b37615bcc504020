// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: launch/system.go
// Summary: Opening desktop settings panels through a chain of candidates.

package launch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/platform"
)

// SystemAction is a named list of command lines tried in order until one
// starts, e.g. the settings tools of the common desktops.
type SystemAction struct {
	Name     string
	Commands [][]string
}

// SystemSettings opens the desktop's own settings.
func SystemSettings(commands [][]string) SystemAction {
	return SystemAction{Name: "System settings", Commands: commands}
}

// DefaultApps opens the default applications panel, falling back to the
// general settings tools.
func DefaultApps(panels, settings [][]string) SystemAction {
	commands := append(append([][]string(nil), panels...), settings...)
	return SystemAction{Name: "Default apps settings", Commands: commands}
}

// Open tries each command of action in order. Total failure is reported
// the same way as a failed app launch.
func (d *Dispatcher) Open(action SystemAction) bool {
	log := logging.For("launch")

	for _, argv := range action.Commands {
		if len(argv) == 0 {
			continue
		}
		err := d.pm.StartActivity(platform.Intent{Command: argv})
		if err == nil {
			log.Debug().Str("action", action.Name).Strs("argv", argv).Msg("Opened")
			return true
		}
		log.Warn().Err(errors.Wrapf(err, "start %s", argv[0])).Str("action", action.Name).Msg("Open attempt failed")
	}

	log.Error().Str("action", action.Name).Msg("Every candidate failed")
	if err := d.notifier.Notify(NotificationTitle, fmt.Sprintf("%s cannot be opened", action.Name)); err != nil {
		log.Warn().Err(err).Msg("Failed to post notification")
	}
	return false
}
