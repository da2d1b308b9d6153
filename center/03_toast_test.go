// /home/krylon/go/src/github.com/blicero/vigil/center/03_toast_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 20:40:03 krylon>

package center

import (
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/category"
	"github.com/blicero/vigil/objects/priority"
)

func toastRecords(now time.Time) []objects.NotificationRecord {
	var dayKey = common.DayKey(now)

	return []objects.NotificationRecord{
		{
			ID:       objects.MakeRecordID(category.Expired, "c1", dayKey),
			Category: category.Expired,
			Title:    "Contract expired",
			Priority: priority.High,
			DayKey:   dayKey,
		},
		{
			ID:       objects.MakeRecordID(category.ExpiringToday, "c2", dayKey),
			Category: category.ExpiringToday,
			Title:    "Contract expires today",
			Priority: priority.High,
			DayKey:   dayKey,
			Viewed:   true,
			Read:     true,
		},
		{
			ID:       objects.MakeRecordID(category.Created, "c3", dayKey),
			Category: category.Created,
			Title:    "New contract",
			Priority: priority.Low,
			DayKey:   dayKey,
		},
		{
			ID:       objects.MakeRecordID(category.Expired, "c4", dayKey),
			Category: category.Expired,
			Title:    "Deleted by the user",
			Priority: priority.High,
			DayKey:   dayKey,
			Deleted:  true,
		},
	}
} // func toastRecords(now time.Time) []objects.NotificationRecord

// Only high-priority records the user has neither viewed nor deleted
// get a toast, and each one only once per session.
func TestToastGate(t *testing.T) {
	var (
		now     = time.Now()
		gate    = NewToastGate()
		records = toastRecords(now)
		pending = gate.Pending(now, records)
	)

	if len(pending) != 1 {
		t.Fatalf("Unexpected number of pending toasts: %d (expected 1)",
			len(pending))
	} else if pending[0].ID != records[0].ID {
		t.Fatalf("Unexpected pending toast: %s",
			pending[0].ID)
	}

	// The same records again: nothing new to toast, even though the
	// record is still unviewed.
	if pending = gate.Pending(now, records); len(pending) != 0 {
		t.Errorf("Repeated Pending returned %d records, expected 0",
			len(pending))
	}
} // func TestToastGate(t *testing.T)

// A new day clears the gate's memory.
func TestToastGateDayChange(t *testing.T) {
	var (
		now     = time.Now()
		gate    = NewToastGate()
		records = toastRecords(now)
	)

	if pending := gate.Pending(now, records); len(pending) != 1 {
		t.Fatalf("Unexpected number of pending toasts: %d (expected 1)",
			len(pending))
	}

	var (
		tomorrow = now.AddDate(0, 0, 1)
		regenned = toastRecords(tomorrow)
	)

	if pending := gate.Pending(tomorrow, regenned); len(pending) != 1 {
		t.Errorf("After the day change, Pending returned %d records, expected 1",
			len(pending))
	}
} // func TestToastGateDayChange(t *testing.T)

func TestMemoryToaster(t *testing.T) {
	var (
		err     error
		toaster MemoryToaster
	)

	if err = toaster.Toast("Hello", "Is there anybody in there?"); err != nil {
		t.Fatalf("Cannot toast: %s", err.Error())
	} else if len(toaster.Toasts) != 1 {
		t.Errorf("Unexpected number of recorded toasts: %d (expected 1)",
			len(toaster.Toasts))
	}
} // func TestMemoryToaster(t *testing.T)
