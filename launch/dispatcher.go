// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: launch/dispatcher.go
// Summary: Turns a tap on an app entry into a started app, or a notification.
// Usage: Views call Dispatcher.Launch with the selected AppEntry.

package launch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/notify"
	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/registry"
)

// NotificationTitle is the title of launch failure notifications.
const NotificationTitle = "Ballista"

// SettingsHandler opens the launcher's own settings.
type SettingsHandler func(entry registry.AppEntry) error

// Options configures a Dispatcher. Zero values get defaults.
type Options struct {
	Notifier   notify.Notifier
	Settings   SettingsHandler
	Strategies []Strategy
}

// Dispatcher runs the launch strategy chain.
type Dispatcher struct {
	pm         platform.PackageManager
	notifier   notify.Notifier
	settings   SettingsHandler
	strategies []Strategy
}

func NewDispatcher(pm platform.PackageManager, opts Options) *Dispatcher {
	d := &Dispatcher{
		pm:         pm,
		notifier:   opts.Notifier,
		settings:   opts.Settings,
		strategies: opts.Strategies,
	}
	if d.notifier == nil {
		d.notifier = notify.Nop{}
	}
	if len(d.strategies) == 0 {
		d.strategies = DefaultStrategies()
	}
	return d
}

// Launch starts entry and reports whether anything was started. On total
// failure the user gets a notification.
func (d *Dispatcher) Launch(entry registry.AppEntry) bool {
	log := logging.For("launch")

	if entry.IsSettings() {
		if d.settings == nil {
			log.Warn().Msg("No settings handler registered")
			d.fail(entry)
			return false
		}
		if err := d.settings(entry); err != nil {
			log.Error().Err(err).Msg("Failed to open settings")
			d.fail(entry)
			return false
		}
		return true
	}

	for _, s := range d.strategies {
		err := s.Start(d.pm, entry)
		if err == nil {
			log.Debug().Str("app", entry.ID).Str("strategy", s.Name()).Msg("Launched")
			return true
		}
		if errors.Is(err, ErrNotApplicable) {
			continue
		}
		log.Warn().Err(err).Str("app", entry.ID).Str("strategy", s.Name()).Msg("Launch attempt failed")
	}

	log.Error().Str("app", entry.ID).Msg("Every launch strategy failed")
	d.fail(entry)
	return false
}

func (d *Dispatcher) fail(entry registry.AppEntry) {
	if err := d.notifier.Notify(NotificationTitle, FailureMessage(entry)); err != nil {
		logging.For("launch").Warn().Err(err).Msg("Failed to post notification")
	}
}

// FailureMessage is the text shown when entry cannot be started.
func FailureMessage(entry registry.AppEntry) string {
	name := entry.DisplayName
	if name == "" {
		name = entry.ID
	}
	return fmt.Sprintf("%s cannot be launched", name)
}
