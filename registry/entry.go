// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/entry.go
// Summary: The launcher's view of one app.

package registry

// SettingsID is the id of the synthetic entry that opens Ballista's own
// settings. It is always present and always enabled.
const SettingsID = "settings"

// AppEntry is one app as shown by the launcher.
type AppEntry struct {
	// ID is stable across runs: the package name, or SettingsID.
	ID string `json:"id"`

	// DisplayName is the label, or the user's custom name when one is set.
	DisplayName string `json:"displayName"`

	PackageName string `json:"packageName"`

	// LaunchClassName optionally names an explicit entry point within the
	// package. Empty means "use the package's launch intent".
	LaunchClassName string `json:"launchClassName,omitempty"`

	IsEnabled bool `json:"isEnabled"`
}

// IsSettings reports whether this is the synthetic settings entry.
func (e AppEntry) IsSettings() bool {
	return e.ID == SettingsID
}

func cloneEntries(entries []AppEntry) []AppEntry {
	if entries == nil {
		return nil
	}
	return append([]AppEntry(nil), entries...)
}

func entryIDs(entries []AppEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
