// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import (
	_ "embed"
)

//go:embed ballista.json
var systemConfig []byte

// SystemConfig returns the embedded ballista.json.
func SystemConfig() []byte {
	return append([]byte(nil), systemConfig...)
}
