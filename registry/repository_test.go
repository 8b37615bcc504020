// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/platform/platformtest"
	"github.com/framegrace/ballista/prefs"
)

const (
	phonePkg  = "com.android.dialer"
	cameraPkg = "org.lineageos.snap"
	randomPkg = "com.example.random"
)

func newTestRepo(t *testing.T, activities ...platform.Activity) (*Repository, *platformtest.PackageManager, *prefs.MemoryStore) {
	t.Helper()
	if activities == nil {
		activities = []platform.Activity{
			platformtest.App(phonePkg, "Phone"),
			platformtest.App(cameraPkg, "Camera"),
			platformtest.App(randomPkg, "Random"),
		}
	}
	pm := platformtest.New(activities...)
	store := prefs.NewMemoryStore()
	repo := New(pm, store, Options{SelfPackage: "ballista", SystemPackage: "system"})
	return repo, pm, store
}

func names(entries []AppEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayName
	}
	return out
}

func ids(entries []AppEntry) []string {
	return entryIDs(entries)
}

func requireSettings(t *testing.T, entries []AppEntry) {
	t.Helper()
	for _, e := range entries {
		if e.ID == SettingsID {
			if !e.IsEnabled {
				t.Fatalf("settings entry is disabled: %+v", e)
			}
			return
		}
	}
	t.Fatalf("settings entry missing from %v", ids(entries))
}

func TestEnabledAppsDefaultHeuristic(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	got := names(repo.EnabledApps())
	want := []string{"Camera", "Phone", "Settings"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("enabled apps = %v, want %v", got, want)
	}
	if snap := names(repo.Snapshot()); !reflect.DeepEqual(snap, want) {
		t.Fatalf("initial snapshot = %v, want %v", snap, want)
	}
}

func TestDiscoverExcludesOwnAndSystemPackages(t *testing.T) {
	repo, _, _ := newTestRepo(t,
		platformtest.App("ballista", "Ballista"),
		platformtest.App("system", "System UI"),
		platformtest.App(phonePkg, "Phone"),
		platformtest.App(phonePkg, "Phone (duplicate)"),
		platformtest.App(SettingsID, "Impostor"),
		platformtest.App("com.example.nolabel", ""),
	)

	got := repo.DiscoverInstalledApps()
	want := []string{"com.example.nolabel", phonePkg, SettingsID}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("discovered ids = %v, want %v", ids(got), want)
	}
	if got[0].DisplayName != "com.example.nolabel" {
		t.Fatalf("missing label should fall back to package, got %q", got[0].DisplayName)
	}
	if got[2].DisplayName != "Settings" || got[2].PackageName != "ballista" {
		t.Fatalf("settings entry = %+v", got[2])
	}
}

func TestDiscoverSortsCaseInsensitively(t *testing.T) {
	repo, _, _ := newTestRepo(t,
		platformtest.App("b", "banana"),
		platformtest.App("a", "Apple"),
		platformtest.App("c", "cherry"),
	)
	got := names(repo.DiscoverInstalledApps())
	want := []string{"Apple", "banana", "cherry", "Settings"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

func TestDiscoverSurvivesQueryError(t *testing.T) {
	repo, pm, _ := newTestRepo(t)
	pm.QueryErr = errors.New("boom")

	got := repo.AllApps()
	if !reflect.DeepEqual(ids(got), []string{SettingsID}) {
		t.Fatalf("ids = %v, want only settings", ids(got))
	}
}

func TestIsAppEnabledHeuristicDefault(t *testing.T) {
	repo, _, _ := newTestRepo(t,
		platformtest.App("com.foo.deskclock", "Timer"),
		platformtest.App("com.foo.bar", "Alarm"),
		platformtest.App("com.foo.notes", "Notes"),
	)

	cases := map[string]bool{
		"com.foo.deskclock": true,
		"com.foo.bar":       true,
		"com.foo.notes":     false,
		SettingsID:          true,
	}
	for id, want := range cases {
		if got := repo.IsAppEnabled(id); got != want {
			t.Errorf("IsAppEnabled(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestToggleApp(t *testing.T) {
	repo, _, store := newTestRepo(t)

	repo.ToggleApp(randomPkg, true)
	repo.ToggleApp(phonePkg, false)

	if !repo.IsAppEnabled(randomPkg) || repo.IsAppEnabled(phonePkg) {
		t.Fatalf("stored flags not honoured")
	}
	got := names(repo.EnabledApps())
	want := []string{"Camera", "Random", "Settings"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("enabled apps = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(names(repo.Snapshot()), want) {
		t.Fatalf("snapshot not republished: %v", names(repo.Snapshot()))
	}
	if !store.Contains(prefs.EnabledKey(randomPkg)) {
		t.Fatalf("flag not written to store")
	}
}

func TestToggleSettingsIgnored(t *testing.T) {
	repo, _, store := newTestRepo(t)

	repo.ToggleApp(SettingsID, false)

	if store.Contains(prefs.EnabledKey(SettingsID)) {
		t.Fatalf("settings flag should never be stored")
	}
	requireSettings(t, repo.EnabledApps())
	requireSettings(t, repo.AllApps())
}

func TestAllAppsCarriesEffectiveFlags(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.ToggleApp(cameraPkg, false)

	flags := make(map[string]bool)
	for _, app := range repo.AllApps() {
		flags[app.ID] = app.IsEnabled
	}
	want := map[string]bool{
		cameraPkg:  false,
		phonePkg:   true,
		randomPkg:  false,
		SettingsID: true,
	}
	if !reflect.DeepEqual(flags, want) {
		t.Fatalf("flags = %v, want %v", flags, want)
	}
}

func TestAllAppsIdempotent(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.SetCustomDisplayName(randomPkg, "Dice")
	repo.ReorderApps([]AppEntry{{ID: randomPkg}, {ID: SettingsID}})

	first := repo.AllApps()
	second := repo.AllApps()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("AllApps not idempotent:\n%v\n%v", first, second)
	}
}

func TestSetCustomDisplayName(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	repo.SetCustomDisplayName(phonePkg, "  Foo  ")
	if got := repo.CustomDisplayName(phonePkg, "Phone"); got != "Foo" {
		t.Fatalf("custom name = %q, want Foo", got)
	}
	app, ok := repo.Find(phonePkg)
	if !ok || app.DisplayName != "Foo" {
		t.Fatalf("Find(%q) = %+v, %v", phonePkg, app, ok)
	}
	if got := names(repo.Snapshot()); !reflect.DeepEqual(got, []string{"Camera", "Foo", "Settings"}) {
		t.Fatalf("snapshot = %v", got)
	}

	repo.SetCustomDisplayName(phonePkg, "   ")
	if got := repo.CustomDisplayName(phonePkg, "Phone"); got != "Foo" {
		t.Fatalf("blank name should be ignored, got %q", got)
	}

	repo.ResetDisplayName(phonePkg)
	if got := repo.CustomDisplayName(phonePkg, "Phone"); got != "Phone" {
		t.Fatalf("reset name = %q, want Phone", got)
	}
}

func TestReorderAppsPrefixAndAppend(t *testing.T) {
	repo, pm, _ := newTestRepo(t)

	repo.ReorderApps([]AppEntry{{ID: SettingsID}, {ID: randomPkg}})
	pm.SetActivities(
		platformtest.App(phonePkg, "Phone"),
		platformtest.App(cameraPkg, "Camera"),
		platformtest.App(randomPkg, "Random"),
		platformtest.App("com.example.alpha", "Alpha"),
	)

	got := ids(repo.OrderedApps())
	want := []string{SettingsID, randomPkg, "com.example.alpha", cameraPkg, phonePkg}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ordered ids = %v, want %v", got, want)
	}
}

func TestOrderedAppsSkipsUnknownAndDuplicates(t *testing.T) {
	repo, _, store := newTestRepo(t)
	if err := store.PutString(prefs.OrderKey, "ghost,"+phonePkg+",,"+phonePkg+","+SettingsID); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	got := ids(repo.OrderedApps())
	want := []string{phonePkg, SettingsID, cameraPkg, randomPkg}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ordered ids = %v, want %v", got, want)
	}
}

func TestReorderAppsDropsUnencodableIDs(t *testing.T) {
	repo, _, store := newTestRepo(t)

	repo.ReorderApps([]AppEntry{{ID: "a,b"}, {ID: randomPkg}})
	if got := store.GetString(prefs.OrderKey, ""); got != randomPkg {
		t.Fatalf("stored order = %q, want %q", got, randomPkg)
	}
}

func TestMoveApp(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	if !repo.MoveApp(randomPkg, -2) {
		t.Fatalf("MoveApp reported no move")
	}
	want := []string{randomPkg, cameraPkg, phonePkg, SettingsID}
	if got := ids(repo.AllApps()); !reflect.DeepEqual(got, want) {
		t.Fatalf("after move up: %v, want %v", got, want)
	}

	if repo.MoveApp(randomPkg, -1) {
		t.Fatalf("moving the first entry up should be a no-op")
	}
	if repo.MoveApp("ghost", 1) {
		t.Fatalf("moving an unknown entry should be a no-op")
	}

	if !repo.MoveApp(randomPkg, 10) {
		t.Fatalf("MoveApp past the end reported no move")
	}
	want = []string{cameraPkg, phonePkg, SettingsID, randomPkg}
	if got := ids(repo.AllApps()); !reflect.DeepEqual(got, want) {
		t.Fatalf("after move down: %v, want %v", got, want)
	}
}

func TestFindByName(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	app, ok := repo.Find("camera")
	if !ok || app.ID != cameraPkg {
		t.Fatalf("Find(camera) = %+v, %v", app, ok)
	}
	if _, ok := repo.Find("nope"); ok {
		t.Fatalf("Find(nope) should fail")
	}
}

func TestSubscribeReceivesRepublish(t *testing.T) {
	repo, pm, _ := newTestRepo(t)
	ch, cancel := repo.Subscribe()
	defer cancel()

	initial := <-ch
	if !reflect.DeepEqual(names(initial), []string{"Camera", "Phone", "Settings"}) {
		t.Fatalf("initial = %v", names(initial))
	}

	pm.SetActivities(platformtest.App(phonePkg, "Phone"))
	repo.Refresh()

	got := <-ch
	if !reflect.DeepEqual(names(got), []string{"Phone", "Settings"}) {
		t.Fatalf("after refresh = %v", names(got))
	}
}

type failingStore struct {
	*prefs.MemoryStore
}

func (failingStore) PutBool(string, bool) error { return errors.New("disk full") }
func (failingStore) PutString(string, string) error { return errors.New("disk full") }
func (failingStore) Remove(string) error { return errors.New("disk full") }

func TestStoreFailuresAreSwallowed(t *testing.T) {
	pm := platformtest.New(platformtest.App(phonePkg, "Phone"))
	repo := New(pm, failingStore{prefs.NewMemoryStore()}, Options{})

	repo.ToggleApp(phonePkg, false)
	repo.SetCustomDisplayName(phonePkg, "Foo")
	repo.ResetDisplayName(phonePkg)
	repo.ReorderApps(repo.AllApps())

	if got := names(repo.EnabledApps()); !reflect.DeepEqual(got, []string{"Phone", "Settings"}) {
		t.Fatalf("enabled apps = %v", got)
	}
}
