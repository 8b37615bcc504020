// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"reflect"
	"testing"

	"github.com/framegrace/ballista/prefs"
)

func TestUpdatePublishesOnce(t *testing.T) {
	repo, pm, _ := newTestRepo(t)
	before := pm.Queries

	repo.Update(func(b *Batch) {
		b.Toggle(randomPkg, true)
		b.Toggle(cameraPkg, false)
		b.SetName(phonePkg, "  Calls ")
		b.SetName(randomPkg, "   ")
		b.Reorder([]AppEntry{{ID: randomPkg}, {ID: "bad,id"}, {ID: phonePkg}})
	})

	if got := pm.Queries - before; got != 1 {
		t.Fatalf("update discovered %d times, want 1", got)
	}
	if got := names(repo.Snapshot()); !reflect.DeepEqual(got, []string{"Random", "Calls", "Settings"}) {
		t.Fatalf("snapshot = %v", got)
	}
}

func TestRestoreEnabledLeavesDefaultsUnpinned(t *testing.T) {
	repo, _, store := newTestRepo(t)
	store.PutBool(prefs.EnabledKey(phonePkg), true)

	repo.Update(func(b *Batch) {
		b.RestoreEnabled(phonePkg, true)
		b.RestoreEnabled(randomPkg, false)
		b.RestoreEnabled(cameraPkg, false)
		b.RestoreEnabled(SettingsID, false)
	})

	if store.Contains(prefs.EnabledKey(phonePkg)) || store.Contains(prefs.EnabledKey(randomPkg)) {
		t.Fatalf("default flags pinned: %v", store.Keys())
	}
	if !store.Contains(prefs.EnabledKey(cameraPkg)) {
		t.Fatalf("camera flag not stored")
	}
	if store.Contains(prefs.EnabledKey(SettingsID)) {
		t.Fatalf("settings flag stored")
	}
	if got := names(repo.EnabledApps()); !reflect.DeepEqual(got, []string{"Phone", "Settings"}) {
		t.Fatalf("enabled apps = %v", got)
	}
}
