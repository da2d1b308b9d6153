// /home/krylon/go/src/github.com/blicero/vigil/center/toast.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 10:18:03 krylon>

package center

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/priority"
	"github.com/godbus/dbus/v5"
)

// Toaster pushes one notification in the user's face, e.g. as a
// desktop alert.
type Toaster interface {
	Toast(title, body string) error
}

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
)

// DBusToaster displays toasts as desktop notifications via the DBus
// session bus.
type DBusToaster struct {
	bus *dbus.Conn
	log *log.Logger
}

// NewDBusToaster connects to the session bus and returns a DBusToaster.
func NewDBusToaster() (*DBusToaster, error) {
	var (
		err error
		t   = &DBusToaster{}
	)

	if t.log, err = common.GetLogger(logdomain.DBus); err != nil {
		return nil, err
	} else if t.bus, err = dbus.SessionBus(); err != nil {
		t.log.Printf("[ERROR] Failed to connect to DBus session bus: %s\n",
			err.Error())
		return nil, err
	}

	return t, nil
} // func NewDBusToaster() (*DBusToaster, error)

// Toast displays one desktop notification.
func (t *DBusToaster) Toast(title, body string) error {
	var obj = t.bus.Object(notifyObj, notifyPath)

	if obj == nil {
		var err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		t.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)

	if res.Err != nil {
		t.log.Printf("[ERROR] Cannot display notification %q: %s\n",
			title,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (t *DBusToaster) Toast(title, body string) error

// MemoryToaster collects toasts in memory, for testing.
type MemoryToaster struct {
	lock   sync.Mutex
	Toasts []string
}

// Toast records the toast's title.
func (t *MemoryToaster) Toast(title, _ string) error {
	t.lock.Lock()
	t.Toasts = append(t.Toasts, title)
	t.lock.Unlock()
	return nil
} // func (t *MemoryToaster) Toast(title, _ string) error

// ToastGate decides which records get a toast. Per session, each
// record ID toasts at most once, no matter how often the store is
// re-read; the seen set is cleared when the day changes.
type ToastGate struct {
	lock   sync.Mutex
	dayKey string
	seen   map[string]bool
}

// NewToastGate creates a ToastGate.
func NewToastGate() *ToastGate {
	return &ToastGate{
		seen: make(map[string]bool),
	}
} // func NewToastGate() *ToastGate

// Pending filters the given records down to the ones that should
// toast now: high priority, not viewed, not deleted, and not toasted
// before in this session and on this day. The returned records count
// as toasted.
func (g *ToastGate) Pending(now time.Time, records []objects.NotificationRecord) []objects.NotificationRecord {
	g.lock.Lock()
	defer g.lock.Unlock()

	var dayKey = common.DayKey(now)

	if dayKey != g.dayKey {
		g.dayKey = dayKey
		g.seen = make(map[string]bool)
	}

	var pending = make([]objects.NotificationRecord, 0, len(records))

	for _, n := range records {
		if n.Priority != priority.High || n.Viewed || n.Deleted {
			continue
		} else if g.seen[n.ID] {
			continue
		}

		g.seen[n.ID] = true
		pending = append(pending, n)
	}

	return pending
} // func (g *ToastGate) Pending(now time.Time, records []objects.NotificationRecord) []objects.NotificationRecord
