// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: notify/notify.go
// Summary: Transient user-facing messages, such as launch failures.

package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/framegrace/ballista/internal/logging"
)

// Notifier shows a short-lived message to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Kinds accepted by Open.
const (
	KindDBus   = "dbus"
	KindWriter = "stderr"
	KindNone   = "none"
)

// Open returns the notifier for kind. D-Bus falls back to the writer when
// the session bus cannot be reached.
func Open(kind string, w io.Writer) Notifier {
	if w == nil {
		w = os.Stderr
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindNone:
		return Nop{}
	case KindWriter:
		return NewWriter(w)
	case "", KindDBus:
		n, err := NewDBus()
		if err != nil {
			logging.For("notify").Debug().Err(err).Msg("D-Bus unavailable, notifying on stderr")
			return NewWriter(w)
		}
		return n
	default:
		logging.For("notify").Warn().Str("kind", kind).Msg("Unknown notifier, notifying on stderr")
		return NewWriter(w)
	}
}

// Writer prints notifications as single lines.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Notify(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	var err error
	if title == "" {
		_, err = fmt.Fprintln(n.w, body)
	} else {
		_, err = fmt.Fprintf(n.w, "%s: %s\n", title, body)
	}
	return err
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }
