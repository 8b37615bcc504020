// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/batch.go
// Summary: Grouped preference writes that republish once.

package registry

import (
	"strings"

	"github.com/framegrace/ballista/internal/logging"
	"github.com/framegrace/ballista/prefs"
)

// Batch writes preferences without republishing. It is only valid inside
// the Update call that created it.
type Batch struct {
	r *Repository
}

// Update runs fn under the repository lock and publishes one snapshot
// afterwards, however many changes fn made.
func (r *Repository) Update(fn func(b *Batch)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&Batch{r: r})
	r.publishLocked()
}

// Toggle stores the enabled flag for id. The settings entry is skipped.
func (b *Batch) Toggle(id string, enabled bool) {
	if id == SettingsID {
		return
	}
	if err := b.r.store.PutBool(prefs.EnabledKey(id), enabled); err != nil {
		logging.For("registry").Error().Err(err).Str("app", id).Msg("Failed to store enabled flag")
	}
}

// RestoreEnabled sets the effective flag for id like Toggle, but leaves the
// key unset when enabled matches the app's default. Apps restored that way
// keep following the default heuristic.
func (b *Batch) RestoreEnabled(id string, enabled bool) {
	if id == SettingsID {
		return
	}
	if enabled != DefaultEnabled(id, b.r.pm.ApplicationLabel(id)) {
		b.Toggle(id, enabled)
		return
	}
	if err := b.r.store.Remove(prefs.EnabledKey(id)); err != nil {
		logging.For("registry").Error().Err(err).Str("app", id).Msg("Failed to remove enabled flag")
	}
}

// SetName stores a custom name. Blank names are ignored.
func (b *Batch) SetName(id, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if err := b.r.store.PutString(prefs.DisplayNameKey(id), name); err != nil {
		logging.For("registry").Error().Err(err).Str("app", id).Msg("Failed to store display name")
	}
}

// ResetName drops the custom name for id.
func (b *Batch) ResetName(id string) {
	if err := b.r.store.Remove(prefs.DisplayNameKey(id)); err != nil {
		logging.For("registry").Error().Err(err).Str("app", id).Msg("Failed to remove display name")
	}
}

// Reorder stores the order of entries. Ids that cannot be encoded (they
// contain a comma) are left out and end up appended.
func (b *Batch) Reorder(entries []AppEntry) {
	log := logging.For("registry")

	ids := make([]string, 0, len(entries))
	for _, id := range entryIDs(entries) {
		if id == "" || strings.Contains(id, ",") {
			log.Warn().Str("app", id).Msg("Skipping id that cannot be stored in the order")
			continue
		}
		ids = append(ids, id)
	}
	if err := b.r.store.PutString(prefs.OrderKey, prefs.EncodeOrder(ids)); err != nil {
		log.Error().Err(err).Msg("Failed to store app order")
	}
}
