// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import "testing"

func TestDefaultEnabled(t *testing.T) {
	tests := []struct {
		pkg, label string
		want       bool
	}{
		{"com.android.dialer", "Phone", true},
		{"org.fossify.messages", "Messages", true},
		{"com.moez.QKSMS", "QUIK", true},
		{"org.lineageos.etar", "Etar", true},
		{"com.example.notes", "Camera Roll", true},
		{"com.example.recall", "Recall", true},
		{"org.mozilla.firefox", "Firefox", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := DefaultEnabled(tt.pkg, tt.label); got != tt.want {
			t.Errorf("DefaultEnabled(%q, %q) = %v, want %v", tt.pkg, tt.label, got, tt.want)
		}
	}
}
