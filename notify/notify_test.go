// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"bytes"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

func TestWriterNotify(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriter(&buf)
	if err := n.Notify("Ballista", "Foo cannot be launched"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := n.Notify("", "plain"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	want := "Ballista: Foo cannot be launched\nplain\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestOpenWriterKinds(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := Open("stderr", &buf).(*Writer); !ok {
		t.Fatalf("stderr kind should give a Writer")
	}
	if _, ok := Open("bogus", &buf).(*Writer); !ok {
		t.Fatalf("unknown kind should fall back to a Writer")
	}
	if _, ok := Open("none", &buf).(Nop); !ok {
		t.Fatalf("none kind should give Nop")
	}
}

type fakeBusObject struct {
	dbus.BusObject
	method string
	args   []interface{}
	err    error
}

func (f *fakeBusObject) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Err: f.err}
}

func TestDBusNotifyArguments(t *testing.T) {
	obj := &fakeBusObject{}
	n := newDBus(nil, obj)

	if err := n.Notify("Ballista", "Foo cannot be launched"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if obj.method != "org.freedesktop.Notifications.Notify" {
		t.Fatalf("method = %q", obj.method)
	}
	if len(obj.args) != 8 {
		t.Fatalf("expected 8 arguments, got %d", len(obj.args))
	}
	if obj.args[3] != "Ballista" || obj.args[4] != "Foo cannot be launched" {
		t.Fatalf("summary/body = %v/%v", obj.args[3], obj.args[4])
	}
	if obj.args[7] != ExpireTimeout {
		t.Fatalf("timeout = %v", obj.args[7])
	}
	if err := n.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestDBusNotifyError(t *testing.T) {
	n := newDBus(nil, &fakeBusObject{err: errors.New("no daemon")})
	if err := n.Notify("t", "b"); err == nil {
		t.Fatalf("expected error")
	}
}
