// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: platform/exec_line.go
// Summary: Turns a desktop entry Exec value into an argv.

package platform

import (
	"strings"

	"github.com/pkg/errors"
)

// ExpandExec splits an Exec value into arguments and expands field codes.
// The launcher never passes files or URLs, so %f %F %u %U expand to nothing.
func ExpandExec(execLine string, entry *DesktopEntry) ([]string, error) {
	tokens, err := splitExec(unescapeValue(execLine))
	if err != nil {
		return nil, err
	}

	var argv []string
	for _, tok := range tokens {
		switch tok {
		case "%f", "%F", "%u", "%U", "%d", "%D", "%n", "%N", "%v", "%m":
			continue
		case "%i":
			if entry != nil && entry.Icon != "" {
				argv = append(argv, "--icon", entry.Icon)
			}
			continue
		}
		argv = append(argv, expandInline(tok, entry))
	}
	if len(argv) == 0 {
		return nil, errors.Errorf("empty Exec line %q", execLine)
	}
	return argv, nil
}

func expandInline(tok string, entry *DesktopEntry) string {
	if !strings.Contains(tok, "%") {
		return tok
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '%' || i+1 == len(tok) {
			b.WriteByte(tok[i])
			continue
		}
		i++
		switch tok[i] {
		case '%':
			b.WriteByte('%')
		case 'c':
			if entry != nil {
				b.WriteString(entry.Name)
			}
		case 'k':
			if entry != nil {
				b.WriteString(entry.Path)
			}
		}
	}
	return b.String()
}

// splitExec implements the Exec quoting rules: arguments are separated by
// spaces, double quotes group, and inside quotes \" \` \$ \\ are literal.
func splitExec(s string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		hasTok  bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(s) && strings.IndexByte("\"`$\\", s[i+1]) >= 0:
			i++
			cur.WriteByte(s[i])
		case c == '"':
			inQuote = !inQuote
			hasTok = true
		case !inQuote && (c == ' ' || c == '\t'):
			if hasTok {
				out = append(out, cur.String())
				cur.Reset()
				hasTok = false
			}
		default:
			cur.WriteByte(c)
			hasTok = true
		}
	}
	if inQuote {
		return nil, errors.Errorf("unterminated quote in Exec %q", s)
	}
	if hasTok {
		out = append(out, cur.String())
	}
	return out, nil
}
