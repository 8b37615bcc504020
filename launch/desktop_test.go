// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package launch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/ballista/platform"
	"github.com/framegrace/ballista/registry"
)

func TestForegroundAppThatExitsNonZeroRunsOnce(t *testing.T) {
	manifests := t.TempDir()
	appDir := filepath.Join(manifests, "tool")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := `{"name":"tool","displayName":"Tool","command":"sh","args":["-c","echo run >> runs; exit 3"],"terminal":true}`
	if err := os.WriteFile(filepath.Join(appDir, "manifest.json"), []byte(manifest), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	in, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	w.Close()
	defer in.Close()

	desktop := platform.NewDesktop(platform.DesktopOptions{
		ApplicationDirs: []string{},
		ManifestDir:     manifests,
		Runner: platform.ExecRunner{
			TerminalMode: platform.TerminalPTY,
			In:           in,
			Out:          &bytes.Buffer{},
		},
	})
	n := &recordingNotifier{}
	d := NewDispatcher(desktop, Options{Notifier: n})

	ok := d.Launch(registry.AppEntry{ID: "tool", DisplayName: "Tool", PackageName: "tool", IsEnabled: true})
	if !ok {
		t.Fatalf("Launch reported failure for an app that ran")
	}
	data, err := os.ReadFile(filepath.Join(appDir, "runs"))
	if err != nil {
		t.Fatalf("read runs: %v", err)
	}
	if string(data) != "run\n" {
		t.Fatalf("runs = %q, want the app started exactly once", data)
	}
	if len(n.bodies) != 0 {
		t.Fatalf("unexpected notifications %v", n.bodies)
	}
}
