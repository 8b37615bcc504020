// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/manifest.go
// Summary: Defines the manifest format for user-defined launcher apps.
// Usage: Each <config>/apps/<name>/manifest.json describes one launchable app.

package platform

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// Manifest describes an app that has no desktop entry, typically a script or a
// terminal program the user wants on the home screen.
type Manifest struct {
	// Name is the unique identifier and becomes the app id (e.g., "htop")
	Name string `json:"name"`

	// DisplayName is the human-readable label
	DisplayName string `json:"displayName"`

	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`

	// Command is looked up in PATH. Example: "htop", "python3"
	Command string `json:"command,omitempty"`

	// Binary is an executable relative to the manifest directory. Used when
	// Command is empty.
	Binary string `json:"binary,omitempty"`

	Args []string          `json:"args,omitempty"`
	Env  map[string]string `json:"env,omitempty"`

	// Terminal marks programs that need a tty
	Terminal bool `json:"terminal,omitempty"`

	Icon     string `json:"icon,omitempty"`
	Category string `json:"category,omitempty"`
}

// LoadManifest reads and parses a manifest.json file from the given directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "manifest.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}

	if m.Name == "" {
		return nil, errors.New("manifest missing required field: name")
	}
	if m.DisplayName == "" {
		m.DisplayName = m.Name
	}
	return &m, nil
}

// Validate checks that the manifest can be launched from dir.
func (m *Manifest) Validate(dir string) error {
	if m.Name == "" {
		return errors.New("name cannot be empty")
	}

	switch {
	case m.Command != "":
		if _, err := exec.LookPath(m.Command); err != nil {
			return errors.Wrapf(err, "command not found: %s", m.Command)
		}
	case m.Binary != "":
		if _, err := os.Stat(m.BinaryPath(dir)); err != nil {
			return errors.Wrapf(err, "binary not found: %s", m.Binary)
		}
	default:
		return errors.New("manifest must specify 'command' or 'binary'")
	}
	return nil
}

// BinaryPath returns the absolute path to the app's binary.
func (m *Manifest) BinaryPath(dir string) string {
	return filepath.Join(dir, m.Binary)
}

// Argv returns the command line for the manifest located in dir.
func (m *Manifest) Argv(dir string) []string {
	prog := m.Command
	if prog == "" {
		prog = m.BinaryPath(dir)
	}
	return append([]string{prog}, m.Args...)
}

// Environ returns Env as KEY=VALUE pairs.
func (m *Manifest) Environ() []string {
	if len(m.Env) == 0 {
		return nil
	}
	env := make([]string, 0, len(m.Env))
	for k, v := range m.Env {
		env = append(env, k+"="+v)
	}
	return env
}
