// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: launch/strategy.go
// Summary: Ways of starting an app, tried in order by the Dispatcher.

package launch

import (
	"github.com/pkg/errors"

	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/registry"
)

// ErrNotApplicable tells the dispatcher to move on without logging a failure.
var ErrNotApplicable = errors.New("launch: strategy not applicable")

// Strategy is one attempt at starting an app.
type Strategy interface {
	Name() string
	Start(pm platform.PackageManager, entry registry.AppEntry) error
}

// DefaultStrategies is the chain used when none is configured.
func DefaultStrategies() []Strategy {
	return []Strategy{ComponentStrategy{}, LaunchIntentStrategy{}, CategoryStrategy{}}
}

// ComponentStrategy starts the entry's explicit component.
type ComponentStrategy struct{}

func (ComponentStrategy) Name() string { return "component" }

func (ComponentStrategy) Start(pm platform.PackageManager, entry registry.AppEntry) error {
	if entry.LaunchClassName == "" {
		return ErrNotApplicable
	}
	intent := platform.NewComponentIntent(entry.PackageName, entry.LaunchClassName)
	return errors.Wrapf(pm.StartActivity(intent), "start %s/%s", entry.PackageName, entry.LaunchClassName)
}

// LaunchIntentStrategy starts the package's registered launch intent.
type LaunchIntentStrategy struct{}

func (LaunchIntentStrategy) Name() string { return "launch-intent" }

func (LaunchIntentStrategy) Start(pm platform.PackageManager, entry registry.AppEntry) error {
	intent, ok := pm.LaunchIntentForPackage(entry.PackageName)
	if !ok || intent == nil {
		return errors.Errorf("no launch intent for %s", entry.PackageName)
	}
	return errors.Wrapf(pm.StartActivity(*intent), "start %s", entry.PackageName)
}

// CategoryStrategy asks for any main activity of the package in the
// launcher category.
type CategoryStrategy struct{}

func (CategoryStrategy) Name() string { return "launcher-category" }

func (CategoryStrategy) Start(pm platform.PackageManager, entry registry.AppEntry) error {
	intent := platform.NewLauncherIntent(entry.PackageName)
	return errors.Wrapf(pm.StartActivity(intent), "start main activity of %s", entry.PackageName)
}
