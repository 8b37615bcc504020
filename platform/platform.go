// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/platform.go
// Summary: The OS query surface the launcher depends on.
// Usage: registry discovers apps through PackageManager; launch starts them.

package platform

import (
	"github.com/pkg/errors"
)

// Intent action and category understood by every PackageManager.
const (
	ActionMain       = "main"
	CategoryLauncher = "launcher"
)

// ErrNotFound is returned when an intent resolves to no activity.
var ErrNotFound = errors.New("platform: no matching activity")

// Activity is a launchable entry point reported by the package manager.
type Activity struct {
	PackageName string
	// ClassName names a secondary entry point (a desktop action). Empty for the
	// package's main entry.
	ClassName  string
	Label      string
	Terminal   bool
	Categories []string
}

// Component addresses one activity explicitly.
type Component struct {
	Package string
	Class   string
}

// Intent describes something to start. Exactly one of Component, Command, or
// the Action/Categories/Package triple is used, in that order of precedence.
type Intent struct {
	Action     string
	Categories []string
	Package    string
	Component  *Component

	Command  []string
	Dir      string
	Env      []string
	Terminal bool
}

// NewComponentIntent targets a specific activity of a package.
func NewComponentIntent(pkg, class string) Intent {
	return Intent{Package: pkg, Component: &Component{Package: pkg, Class: class}}
}

// NewLauncherIntent is the generic "main activity in the launcher category"
// intent restricted to one package.
func NewLauncherIntent(pkg string) Intent {
	return Intent{
		Action:     ActionMain,
		Categories: []string{CategoryLauncher},
		Package:    pkg,
	}
}

// HasCategory reports whether the intent carries the category.
func (i Intent) HasCategory(category string) bool {
	for _, c := range i.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PackageManager is the OS query surface.
type PackageManager interface {
	// QueryLauncherActivities lists every activity matching the launcher intent.
	QueryLauncherActivities() ([]Activity, error)

	// LaunchIntentForPackage returns the registered launch intent for pkg.
	LaunchIntentForPackage(pkg string) (*Intent, bool)

	// ApplicationLabel returns the display label for pkg, or pkg itself when
	// the package is unknown.
	ApplicationLabel(pkg string) string

	// StartActivity starts whatever the intent resolves to.
	StartActivity(intent Intent) error
}
