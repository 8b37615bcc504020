// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backup/backup.go
// Summary: CSV export and import of launcher preferences.
// Usage: ballista export prefs.csv / ballista import prefs.csv

package backup

import (
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/framegrace/ballista/registry"
)

// Row is one app in a backup file.
type Row struct {
	Position int    `csv:"position"`
	ID       string `csv:"id"`
	Name     string `csv:"name"`
	Enabled  bool   `csv:"enabled"`
}

// Repository is the part of registry.Repository a backup touches.
type Repository interface {
	AllApps() []registry.AppEntry
	CustomDisplayName(id, fallback string) string
	Update(fn func(b *registry.Batch))
}

// Rows captures the current order, flags and custom names. Name is empty
// when the app shows its own label.
func Rows(repo Repository) []*Row {
	apps := repo.AllApps()
	rows := make([]*Row, len(apps))
	for i, app := range apps {
		rows[i] = &Row{
			Position: i + 1,
			ID:       app.ID,
			Name:     repo.CustomDisplayName(app.ID, ""),
			Enabled:  app.IsEnabled,
		}
	}
	return rows
}

// Export writes Rows as CSV with a header line.
func Export(repo Repository, w io.Writer) error {
	if err := gocsv.Marshal(Rows(repo), w); err != nil {
		return errors.Wrap(err, "write backup")
	}
	return nil
}

// Read parses a backup without applying it.
func Read(r io.Reader) ([]*Row, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "read backup")
	}
	for i, row := range rows {
		row.ID = strings.TrimSpace(row.ID)
		if row.ID == "" {
			return nil, errors.Errorf("read backup: row %d has no id", i+1)
		}
	}
	return rows, nil
}

// Import applies a backup and returns the number of rows applied. Apps in
// the file that are no longer installed keep their preferences, so they
// come back configured if reinstalled. Flags equal to an app's default are
// not pinned. Subscribers see a single update.
func Import(repo Repository, r io.Reader) (int, error) {
	rows, err := Read(r)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	repo.Update(func(b *registry.Batch) {
		order := make([]registry.AppEntry, 0, len(rows))
		for _, row := range rows {
			order = append(order, registry.AppEntry{ID: row.ID})
			b.RestoreEnabled(row.ID, row.Enabled)
			if strings.TrimSpace(row.Name) == "" {
				b.ResetName(row.ID)
			} else {
				b.SetName(row.ID, row.Name)
			}
		}
		b.Reorder(order)
	})
	return len(rows), nil
}
