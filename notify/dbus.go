// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: notify/dbus.go
// Summary: Desktop notifications over org.freedesktop.Notifications.

package notify

import (
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsMethod = notificationsDest + ".Notify"

	appName = "Ballista"

	// ExpireTimeout is short on purpose: these replace a toast.
	ExpireTimeout int32 = 2500
)

// DBus posts notifications to the session notification daemon.
type DBus struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewDBus connects to the session bus.
func NewDBus() (*DBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, errors.Wrap(err, "connect session bus")
	}
	return newDBus(conn, conn.Object(notificationsDest, dbus.ObjectPath(notificationsPath))), nil
}

func newDBus(conn *dbus.Conn, obj dbus.BusObject) *DBus {
	return &DBus{conn: conn, obj: obj}
}

func (n *DBus) Notify(title, body string) error {
	call := n.obj.Call(notificationsMethod, 0,
		appName,
		uint32(0),
		"",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		ExpireTimeout,
	)
	if call.Err != nil {
		return errors.Wrap(call.Err, "post notification")
	}
	return nil
}

// Close releases the private bus connection.
func (n *DBus) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
