// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"garbage": zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "debug")
	defer Init(nil, "warn")

	log := For("registry")
	log.Info().Int("apps", 3).Msg("loaded")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line: %v (%q)", err, buf.String())
	}
	if line["component"] != "registry" {
		t.Fatalf("expected component registry, got %v", line["component"])
	}
	if line["message"] != "loaded" {
		t.Fatalf("expected message loaded, got %v", line["message"])
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "warn")
	defer Init(nil, "warn")

	log := For("prefs")
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be filtered, got %q", buf.String())
	}
}
