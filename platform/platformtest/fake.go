// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/platformtest/fake.go
// Summary: In-memory PackageManager for tests.

package platformtest

import (
	"sync"

	"github.com/framegrace/ballista/platform"
)

// PackageManager is a scriptable platform.PackageManager.
type PackageManager struct {
	mu sync.Mutex

	Activities []platform.Activity
	QueryErr   error

	// NoLaunchIntent lists packages without a registered launch intent.
	NoLaunchIntent map[string]bool

	// StartFunc decides the outcome of StartActivity. Nil means success.
	StartFunc func(platform.Intent) error

	Started []platform.Intent
	Queries int
}

// New returns a fake reporting the given activities.
func New(activities ...platform.Activity) *PackageManager {
	return &PackageManager{Activities: activities}
}

// App is shorthand for an activity with a label.
func App(pkg, label string) platform.Activity {
	return platform.Activity{PackageName: pkg, Label: label}
}

// SetActivities replaces the installed set, as if apps were (un)installed.
func (p *PackageManager) SetActivities(activities ...platform.Activity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Activities = activities
}

func (p *PackageManager) QueryLauncherActivities() ([]platform.Activity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Queries++
	if p.QueryErr != nil {
		return nil, p.QueryErr
	}
	return append([]platform.Activity(nil), p.Activities...), nil
}

func (p *PackageManager) find(pkg string) (platform.Activity, bool) {
	for _, a := range p.Activities {
		if a.PackageName == pkg {
			return a, true
		}
	}
	return platform.Activity{}, false
}

func (p *PackageManager) LaunchIntentForPackage(pkg string) (*platform.Intent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.NoLaunchIntent[pkg] {
		return nil, false
	}
	if _, ok := p.find(pkg); !ok {
		return nil, false
	}
	return &platform.Intent{Package: pkg, Command: []string{pkg}}, true
}

func (p *PackageManager) ApplicationLabel(pkg string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if a, ok := p.find(pkg); ok {
		return a.Label
	}
	return pkg
}

func (p *PackageManager) StartActivity(intent platform.Intent) error {
	p.mu.Lock()
	fn := p.StartFunc
	p.mu.Unlock()

	var err error
	if fn != nil {
		err = fn(intent)
	}
	if err == nil {
		p.mu.Lock()
		p.Started = append(p.Started, intent)
		p.mu.Unlock()
	}
	return err
}

// StartedCount returns how many intents were started successfully.
func (p *PackageManager) StartedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Started)
}
