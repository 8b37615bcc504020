// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/repository.go
// Summary: Reconciles installed apps with the user's launcher preferences.
// Usage: Construct once with New and hand it to whatever view layer is used.
// Views read EnabledApps/AllApps or Subscribe to snapshots; settings views
// call ToggleApp, SetCustomDisplayName and ReorderApps, or group changes
// with Update.

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/prefs"
)

// Default package names used when Options leaves them empty.
const (
	DefaultSelfPackage   = "ballista"
	DefaultSystemPackage = "system"
)

// Options configures discovery.
type Options struct {
	// SelfPackage is the launcher's own package, never listed.
	SelfPackage string

	// SystemPackage is the OS's own package, never listed.
	SystemPackage string

	// ExtraBuiltIns are synthetic entries added after the settings entry.
	ExtraBuiltIns []AppEntry
}

// Repository merges what the package manager reports with the preference
// store. Nothing is cached: every read reconciles afresh.
type Repository struct {
	pm    platform.PackageManager
	store prefs.Store
	opts  Options

	// mu makes each mutation and its republish one step.
	mu     sync.Mutex
	caster *broadcaster
}

// New creates a repository and computes the initial enabled-list snapshot.
func New(pm platform.PackageManager, store prefs.Store, opts Options) *Repository {
	if opts.SelfPackage == "" {
		opts.SelfPackage = DefaultSelfPackage
	}
	if opts.SystemPackage == "" {
		opts.SystemPackage = DefaultSystemPackage
	}
	r := &Repository{
		pm:    pm,
		store: store,
		opts:  opts,
	}
	r.caster = newBroadcaster(r.EnabledApps())
	return r
}

// DiscoverInstalledApps lists launchable apps plus the built-in entries,
// sorted by display name. IsEnabled carries the heuristic default only.
func (r *Repository) DiscoverInstalledApps() []AppEntry {
	log := logging.For("registry")

	activities, err := r.pm.QueryLauncherActivities()
	if err != nil {
		log.Error().Err(err).Msg("App discovery failed")
	}
	log.Debug().Int("activities", len(activities)).Msg("Starting app discovery")

	builtIns := r.opts.builtIns()
	seen := make(map[string]bool, len(activities))
	apps := make([]AppEntry, 0, len(activities)+len(builtIns))

	for _, a := range activities {
		pkg := a.PackageName
		if pkg == "" || pkg == r.opts.SelfPackage || pkg == r.opts.SystemPackage {
			continue
		}
		if seen[pkg] || isBuiltInID(pkg, builtIns) {
			continue
		}
		seen[pkg] = true

		label := a.Label
		if label == "" {
			label = pkg
		}
		apps = append(apps, AppEntry{
			ID:          pkg,
			DisplayName: label,
			PackageName: pkg,
			IsEnabled:   DefaultEnabled(pkg, label),
		})
	}
	apps = append(apps, builtIns...)

	sort.SliceStable(apps, func(i, j int) bool {
		return lessDisplayName(apps[i].DisplayName, apps[j].DisplayName)
	})

	log.Debug().Int("apps", len(apps)).Msg("Discovered apps")
	return apps
}

func lessDisplayName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// OrderedApps applies the stored order to freshly discovered apps. Apps not
// in the stored order follow, in discovery order.
func (r *Repository) OrderedApps() []AppEntry {
	discovered := r.DiscoverInstalledApps()
	if !r.store.Contains(prefs.OrderKey) {
		return discovered
	}

	order := prefs.DecodeOrder(r.store.GetString(prefs.OrderKey, ""))
	byID := make(map[string]AppEntry, len(discovered))
	for _, app := range discovered {
		byID[app.ID] = app
	}

	placed := make(map[string]bool, len(order))
	out := make([]AppEntry, 0, len(discovered))
	for _, id := range order {
		app, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, app)
	}
	for _, app := range discovered {
		if !placed[app.ID] {
			out = append(out, app)
		}
	}
	return out
}

// EnabledApps is the home-screen list: ordered, enabled only, custom names
// applied.
func (r *Repository) EnabledApps() []AppEntry {
	ordered := r.OrderedApps()
	out := make([]AppEntry, 0, len(ordered))
	for _, app := range ordered {
		if !app.IsSettings() && !r.enabled(app) {
			continue
		}
		app.IsEnabled = true
		app.DisplayName = r.CustomDisplayName(app.ID, app.DisplayName)
		out = append(out, app)
	}
	return out
}

// AllApps is the settings-screen list: every ordered app with its effective
// enabled flag and custom name.
func (r *Repository) AllApps() []AppEntry {
	ordered := r.OrderedApps()
	for i, app := range ordered {
		ordered[i].IsEnabled = app.IsSettings() || r.enabled(app)
		ordered[i].DisplayName = r.CustomDisplayName(app.ID, app.DisplayName)
	}
	return ordered
}

// enabled resolves the flag for a discovered entry whose IsEnabled still
// holds the heuristic default.
func (r *Repository) enabled(app AppEntry) bool {
	key := prefs.EnabledKey(app.ID)
	if r.store.Contains(key) {
		return r.store.GetBool(key, false)
	}
	return app.IsEnabled
}

// IsAppEnabled returns the stored flag, or the heuristic default for the
// package and its label when the app was never toggled.
func (r *Repository) IsAppEnabled(id string) bool {
	if id == SettingsID {
		return true
	}
	key := prefs.EnabledKey(id)
	if r.store.Contains(key) {
		return r.store.GetBool(key, false)
	}
	return DefaultEnabled(id, r.pm.ApplicationLabel(id))
}

// CustomDisplayName returns the user's name for id, or fallback.
func (r *Repository) CustomDisplayName(id, fallback string) string {
	name := r.store.GetString(prefs.DisplayNameKey(id), fallback)
	if name == "" {
		return fallback
	}
	return name
}

// ToggleApp stores the enabled flag for id. The settings entry cannot be
// disabled.
func (r *Repository) ToggleApp(id string, enabled bool) {
	if id == SettingsID {
		logging.For("registry").Debug().Msg("Ignoring toggle of settings entry")
		return
	}
	r.Update(func(b *Batch) { b.Toggle(id, enabled) })
}

// SetCustomDisplayName stores a custom name. Blank names are ignored.
func (r *Repository) SetCustomDisplayName(id, name string) {
	if strings.TrimSpace(name) == "" {
		logging.For("registry").Debug().Str("app", id).Msg("Ignoring blank display name")
		return
	}
	r.Update(func(b *Batch) { b.SetName(id, name) })
}

// ResetDisplayName drops the custom name so the app label shows again.
func (r *Repository) ResetDisplayName(id string) {
	r.Update(func(b *Batch) { b.ResetName(id) })
}

// ReorderApps stores the order of the given entries. Ids that cannot be
// encoded (they contain a comma) are left out and end up appended.
func (r *Repository) ReorderApps(entries []AppEntry) {
	r.Update(func(b *Batch) { b.Reorder(entries) })
}

// MoveApp shifts id by delta positions within AllApps and stores the
// resulting order. It reports whether anything moved.
func (r *Repository) MoveApp(id string, delta int) bool {
	all := r.AllApps()
	from := -1
	for i, app := range all {
		if app.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}

	to := from + delta
	if to < 0 {
		to = 0
	}
	if to >= len(all) {
		to = len(all) - 1
	}
	if to == from {
		return false
	}

	moved := all[from]
	all = append(all[:from], all[from+1:]...)
	all = append(all[:to], append([]AppEntry{moved}, all[to:]...)...)
	r.ReorderApps(all)
	return true
}

// Find resolves an app by id, or by display name ignoring case.
func (r *Repository) Find(query string) (AppEntry, bool) {
	all := r.AllApps()
	for _, app := range all {
		if app.ID == query {
			return app, true
		}
	}
	for _, app := range all {
		if strings.EqualFold(app.DisplayName, query) {
			return app, true
		}
	}
	return AppEntry{}, false
}

// Refresh republishes the enabled list, e.g. after apps were installed.
func (r *Repository) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishLocked()
}

func (r *Repository) publishLocked() {
	r.caster.publish(r.EnabledApps())
}

// Snapshot returns the most recently published enabled list.
func (r *Repository) Snapshot() []AppEntry {
	return r.caster.snapshot()
}

// Subscribe returns a channel that receives the current enabled list and
// every replacement after it. Call the returned func to unsubscribe; it
// closes the channel.
func (r *Repository) Subscribe() (<-chan []AppEntry, func()) {
	return r.caster.subscribe()
}
