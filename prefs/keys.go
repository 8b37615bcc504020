// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/keys.go
// Summary: Preference key layout shared by every backend.

package prefs

import "strings"

// OrderKey holds the comma-joined ordered list of app ids.
const OrderKey = "app_order"

const displayNamePrefix = "display_name_"

// EnabledKey is the key of an app's enabled flag. It is the bare app id.
func EnabledKey(appID string) string {
	return appID
}

// DisplayNameKey is the key of an app's custom display name.
func DisplayNameKey(appID string) string {
	return displayNamePrefix + appID
}

// EncodeOrder joins ids for storage under OrderKey.
func EncodeOrder(ids []string) string {
	return strings.Join(ids, ",")
}

// DecodeOrder splits a stored order. Empty segments are dropped.
func DecodeOrder(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := parts[:0]
	for _, p := range parts {
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
