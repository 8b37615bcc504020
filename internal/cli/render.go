// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/render.go
// Summary: Plain-text renderings of the home and settings lists.

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/framegrace/ballista/registry"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// printer renders lists. Decoration (header, bold, dim) is only used when
// writing to a terminal so the output stays scriptable.
type printer struct {
	w        io.Writer
	decorate bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, decorate: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) style(code, s string) string {
	if !p.decorate {
		return s
	}
	return code + s + ansiReset
}

// home prints the enabled list, numbered for `ballista launch <n>`.
func (p *printer) home(entries []registry.AppEntry) error {
	digits := len(strconv.Itoa(len(entries)))
	for i, e := range entries {
		if _, err := fmt.Fprintf(p.w, "%*d  %s\n", digits, i+1, e.DisplayName); err != nil {
			return err
		}
	}
	return nil
}

// all prints every app with its enabled mark, aligned name and id.
func (p *printer) all(entries []registry.AppEntry) error {
	width := runewidth.StringWidth("NAME")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.DisplayName); w > width {
			width = w
		}
	}

	if p.decorate {
		header := "    " + runewidth.FillRight("NAME", width) + "  ID"
		if _, err := fmt.Fprintln(p.w, p.style(ansiBold, header)); err != nil {
			return err
		}
	}
	for _, e := range entries {
		mark := "[ ]"
		if e.IsEnabled {
			mark = "[x]"
		}
		line := mark + " " + runewidth.FillRight(e.DisplayName, width) + "  " + e.ID
		if !e.IsEnabled {
			line = p.style(ansiDim, line)
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}
