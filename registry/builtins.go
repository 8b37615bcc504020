// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/builtins.go
// Summary: Synthetic entries that exist regardless of what is installed.

package registry

// SettingsEntry is the always-enabled entry that opens the launcher settings.
func SettingsEntry(selfPackage string) AppEntry {
	return AppEntry{
		ID:          SettingsID,
		DisplayName: "Settings",
		PackageName: selfPackage,
		IsEnabled:   true,
	}
}

// builtIns returns the synthetic entries for a repository. Built-ins take
// priority over discovered apps with the same id.
func (o Options) builtIns() []AppEntry {
	entries := []AppEntry{SettingsEntry(o.SelfPackage)}
	return append(entries, o.ExtraBuiltIns...)
}

func isBuiltInID(id string, builtIns []AppEntry) bool {
	for _, b := range builtIns {
		if b.ID == id {
			return true
		}
	}
	return false
}
