// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/heuristic.go
// Summary: Decides which newly seen apps start out enabled.

package registry

import "strings"

// defaultEnabledKeywords are matched as substrings, so unrelated apps that
// happen to contain one (e.g. "call") are enabled too.
var defaultEnabledKeywords = []string{
	"phone", "dialer", "call",
	"messages", "messaging", "sms", "mms", "quik",
	"alarm", "clock", "deskclock",
	"calendar", "etar",
	"camera",
}

// DefaultEnabled reports whether an app with no stored preference is enabled.
func DefaultEnabled(packageName, label string) bool {
	pkg := strings.ToLower(packageName)
	name := strings.ToLower(label)
	for _, kw := range defaultEnabledKeywords {
		if strings.Contains(pkg, kw) || strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
