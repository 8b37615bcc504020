// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/desktop_entry.go
// Summary: Parser for freedesktop.org desktop entry files.

package platform

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	groupDesktopEntry = "Desktop Entry"
	groupActionPrefix = "Desktop Action "
	typeApplication   = "Application"
)

// DesktopEntry is the subset of a .desktop file the launcher cares about.
type DesktopEntry struct {
	ID         string
	Path       string
	Type       string
	Name       string
	Exec       string
	WorkDir    string
	Icon       string
	Terminal   bool
	NoDisplay  bool
	Hidden     bool
	Categories []string
	Actions    []DesktopAction
}

// DesktopAction is a [Desktop Action <id>] group.
type DesktopAction struct {
	ID   string
	Name string
	Exec string
}

// Launchable reports whether the entry should appear in the launcher.
func (e *DesktopEntry) Launchable() bool {
	return e.Type == typeApplication && !e.NoDisplay && !e.Hidden && e.Exec != ""
}

// Action returns the named action, if declared.
func (e *DesktopEntry) Action(id string) (DesktopAction, bool) {
	for _, a := range e.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return DesktopAction{}, false
}

// ReadDesktopEntry parses the file at path.
func ReadDesktopEntry(path, id, locale string) (*DesktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open desktop entry")
	}
	defer f.Close()

	entry, err := ParseDesktopEntry(f, locale)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	entry.ID = id
	entry.Path = path
	return entry, nil
}

// ParseDesktopEntry reads a desktop entry. Localized Name keys are matched
// against locale (e.g. "de_DE.UTF-8@euro").
func ParseDesktopEntry(r io.Reader, locale string) (*DesktopEntry, error) {
	entry := &DesktopEntry{}
	names := make(map[string]string)
	actionNames := make(map[string]map[string]string)
	actions := make(map[string]*DesktopAction)
	var declared []string

	group := ""
	sawMain := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		if len(line) > 2 && line[0] == '[' && line[len(line)-1] == ']' {
			group = line[1 : len(line)-1]
			if group == groupDesktopEntry {
				sawMain = true
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		base, loc := splitLocaleKey(key)

		switch {
		case group == groupDesktopEntry:
			switch base {
			case "Type":
				entry.Type = value
			case "Name":
				names[loc] = unescapeValue(value)
			case "Exec":
				entry.Exec = value
			case "Path":
				entry.WorkDir = unescapeValue(value)
			case "Icon":
				entry.Icon = unescapeValue(value)
			case "Terminal":
				entry.Terminal = value == "true"
			case "NoDisplay":
				entry.NoDisplay = value == "true"
			case "Hidden":
				entry.Hidden = value == "true"
			case "Categories":
				entry.Categories = splitList(value)
			case "Actions":
				declared = splitList(value)
			}

		case strings.HasPrefix(group, groupActionPrefix):
			id := strings.TrimPrefix(group, groupActionPrefix)
			a := actions[id]
			if a == nil {
				a = &DesktopAction{ID: id}
				actions[id] = a
				actionNames[id] = make(map[string]string)
			}
			switch base {
			case "Name":
				actionNames[id][loc] = unescapeValue(value)
			case "Exec":
				a.Exec = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan desktop entry")
	}
	if !sawMain {
		return nil, errors.New("missing [Desktop Entry] group")
	}

	entry.Name = pickLocalized(names, locale)
	for _, id := range declared {
		a, ok := actions[id]
		if !ok || a.Exec == "" {
			continue
		}
		a.Name = pickLocalized(actionNames[id], locale)
		entry.Actions = append(entry.Actions, *a)
	}
	return entry, nil
}

// splitLocaleKey turns "Name[de_DE]" into ("Name", "de_DE").
func splitLocaleKey(key string) (string, string) {
	open := strings.IndexByte(key, '[')
	if open < 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

// localeCandidates lists the keys to try for a POSIX locale, most specific first.
func localeCandidates(locale string) []string {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		// drop the encoding but keep a trailing @modifier
		rest := locale[i:]
		mod := ""
		if j := strings.IndexByte(rest, '@'); j >= 0 {
			mod = rest[j:]
		}
		locale = locale[:i] + mod
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}

	lang, modifier, _ := strings.Cut(locale, "@")
	lang, country, _ := strings.Cut(lang, "_")

	var out []string
	if country != "" && modifier != "" {
		out = append(out, lang+"_"+country+"@"+modifier)
	}
	if country != "" {
		out = append(out, lang+"_"+country)
	}
	if modifier != "" {
		out = append(out, lang+"@"+modifier)
	}
	return append(out, lang)
}

func pickLocalized(values map[string]string, locale string) string {
	for _, c := range localeCandidates(locale) {
		if v, ok := values[c]; ok && v != "" {
			return v
		}
	}
	return values[""]
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// unescapeValue applies the string escapes \s \n \t \r \\.
func unescapeValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte(' ')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
