// /home/krylon/go/src/github.com/blicero/vigil/center/02_store_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 20:12:40 krylon>

package center

import (
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/category"
)

var (
	repo  = &MemoryRepository{}
	store *Store
)

func TestCreateStore(t *testing.T) {
	var err error

	if store, err = NewStore(repo); err != nil {
		store = nil
		t.Fatalf("Cannot create Store: %s",
			err.Error())
	}
} // func TestCreateStore(t *testing.T)

func TestStoreGenerate(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err   error
		fresh []objects.NotificationRecord
		now   = time.Now()
	)

	if fresh, err = store.Generate(now, sampleContracts(now)); err != nil {
		t.Fatalf("Cannot generate notifications: %s",
			err.Error())
	} else if len(fresh) != 4 {
		t.Fatalf("Unexpected number of fresh records: %d (expected 4)",
			len(fresh))
	} else if len(repo.Records) != 4 {
		t.Fatalf("Records were not written through to the Repository: %d (expected 4)",
			len(repo.Records))
	}

	// A second run over the same snapshot must not add anything.
	if fresh, err = store.Generate(now, sampleContracts(now)); err != nil {
		t.Fatalf("Cannot re-generate notifications: %s",
			err.Error())
	} else if len(fresh) != 0 {
		t.Errorf("Re-generating added %d records, expected 0",
			len(fresh))
	}
} // func TestStoreGenerate(t *testing.T)

// Marking a record as read, then viewed, then unread again, checking
// the coupling of the two flags along the way.
func TestStoreFlags(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err    error
		n      objects.NotificationRecord
		ok     bool
		dayKey = common.DayKey(time.Now())
		id     = objects.MakeRecordID(category.Expired, "expired", dayKey)
	)

	if err = store.MarkRead(id); err != nil {
		t.Fatalf("Cannot mark %s as read: %s", id, err.Error())
	} else if n, ok = store.Get(id); !ok {
		t.Fatalf("Record %s disappeared from the Store", id)
	} else if !n.Read {
		t.Error("Record should be read")
	} else if n.Viewed {
		t.Error("Reading a record should not mark it as viewed")
	}

	if err = store.MarkViewed(id); err != nil {
		t.Fatalf("Cannot mark %s as viewed: %s", id, err.Error())
	} else if n, _ = store.Get(id); !n.Viewed || !n.Read {
		t.Error("Viewing a record should set both flags")
	}

	if err = store.MarkUnread(id); err != nil {
		t.Fatalf("Cannot mark %s as unread: %s", id, err.Error())
	} else if n, _ = store.Get(id); n.Read || n.Viewed {
		t.Error("Marking a record unread should clear both flags")
	}

	if err = store.MarkRead("no-such-record"); err != ErrNotFound {
		t.Errorf("Marking a nonexistent record should yield ErrNotFound, got %v",
			err)
	}
} // func TestStoreFlags(t *testing.T)

// Deleting a record must keep it out of regeneration for the rest of
// the day, and restoring it must bring it back as it was.
func TestStoreDelete(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err    error
		fresh  []objects.NotificationRecord
		n      objects.NotificationRecord
		now    = time.Now()
		dayKey = common.DayKey(now)
		id     = objects.MakeRecordID(category.ExpiringToday, "expiring", dayKey)
	)

	if err = store.MarkRead(id); err != nil {
		t.Fatalf("Cannot mark %s as read: %s", id, err.Error())
	}

	if err = store.Delete(id); err != nil {
		t.Fatalf("Cannot delete %s: %s", id, err.Error())
	} else if n, _ = store.Get(id); !n.Deleted {
		t.Fatal("Record should be a tombstone now")
	} else if n.State() != objects.StateDeleted {
		t.Errorf("Unexpected state: %s (expected Deleted)",
			n.State())
	}

	if fresh, err = store.Generate(now, sampleContracts(now)); err != nil {
		t.Fatalf("Cannot generate notifications: %s",
			err.Error())
	}

	for idx := range fresh {
		if fresh[idx].ID == id {
			t.Errorf("Deleted record %s came back through regeneration", id)
		}
	}

	if err = store.Restore(id); err != nil {
		t.Fatalf("Cannot restore %s: %s", id, err.Error())
	} else if n, _ = store.Get(id); n.Deleted {
		t.Error("Record should no longer be a tombstone")
	} else if !n.Read {
		t.Error("Restoring a record should keep its read flag")
	} else if n.Viewed {
		t.Error("Restoring a record should not add a viewed flag it never had")
	}
} // func TestStoreDelete(t *testing.T)

// A failed save must leave the Store exactly as it was.
func TestStoreFailedSave(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err    error
		n      objects.NotificationRecord
		dayKey = common.DayKey(time.Now())
		id     = objects.MakeRecordID(category.Expired, "expired", dayKey)
	)

	repo.FailSave = true
	defer func() { repo.FailSave = false }()

	if err = store.MarkViewed(id); err == nil {
		t.Fatal("MarkViewed should fail when the Repository refuses to save")
	} else if n, _ = store.Get(id); n.Viewed {
		t.Error("A failed save must not change the Store's state")
	}
} // func TestStoreFailedSave(t *testing.T)

func TestStoreMarkAllRead(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err    error
		cnt    int
		dayKey = common.DayKey(time.Now())
	)

	if cnt, err = store.MarkAllRead(dayKey); err != nil {
		t.Fatalf("Cannot mark all records read: %s",
			err.Error())
	} else if cnt == 0 {
		t.Error("MarkAllRead should have affected at least one record")
	} else if store.UnreadCount(dayKey) != 0 {
		t.Errorf("There are still %d unread records",
			store.UnreadCount(dayKey))
	}

	// All read now, a second pass is a no-op.
	if cnt, err = store.MarkAllRead(dayKey); err != nil {
		t.Fatalf("Cannot mark all records read: %s",
			err.Error())
	} else if cnt != 0 {
		t.Errorf("Second MarkAllRead affected %d records, expected 0",
			cnt)
	}
} // func TestStoreMarkAllRead(t *testing.T)

// Bulk actions only touch the live records of the day they are given:
// records from other days and tombstones stay as they are.
func TestStoreMarkAllScoped(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err       error
		cnt       int
		n         objects.NotificationRecord
		now       = time.Now()
		today     = common.DayKey(now)
		tomorrow  = common.DayKey(now.AddDate(0, 0, 1))
		yesterday = objects.NotificationRecord{
			ID:        "scope-yesterday",
			Category:  category.Created,
			Title:     "Yesterday's news",
			DayKey:    common.DayKey(now.AddDate(0, 0, -1)),
			Timestamp: now.AddDate(0, 0, -1),
		}
		tomb = objects.NotificationRecord{
			ID:        "scope-tomb",
			Category:  category.Created,
			Title:     "Deleted this morning",
			DayKey:    today,
			Deleted:   true,
			Timestamp: now,
		}
	)

	store.records = append(store.records, yesterday, tomb)

	if cnt, err = store.MarkAllRead(tomorrow); err != nil {
		t.Fatalf("Cannot mark all records read for %s: %s",
			tomorrow,
			err.Error())
	} else if cnt != 0 {
		t.Errorf("MarkAllRead for %s affected %d records, expected 0",
			tomorrow,
			cnt)
	}

	if cnt, err = store.MarkAllViewed(today); err != nil {
		t.Fatalf("Cannot mark all records viewed for %s: %s",
			today,
			err.Error())
	} else if cnt == 0 {
		t.Error("MarkAllViewed should have affected today's live records")
	}

	if n, _ = store.Get("scope-yesterday"); n.Read || n.Viewed {
		t.Error("A record from another day must not be touched by a bulk action")
	}

	if n, _ = store.Get("scope-tomb"); n.Read || n.Viewed {
		t.Error("A tombstone must not be touched by a bulk action")
	} else if !n.Deleted {
		t.Error("The tombstone should still be a tombstone")
	}
} // func TestStoreMarkAllScoped(t *testing.T)

// Live records expire after a week, tombstones after a day.
func TestStoreRetention(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err       error
		now       = time.Now()
		staleLive = objects.NotificationRecord{
			ID:        "stale-live",
			Category:  category.Created,
			Title:     "Old news",
			DayKey:    common.DayKey(now.AddDate(0, 0, -8)),
			Timestamp: now.AddDate(0, 0, -8),
		}
		freshLive = objects.NotificationRecord{
			ID:        "fresh-live",
			Category:  category.Created,
			Title:     "Still fresh",
			DayKey:    common.DayKey(now.AddDate(0, 0, -7)),
			Timestamp: now.AddDate(0, 0, -7),
		}
		staleTomb = objects.NotificationRecord{
			ID:        "stale-tomb",
			Category:  category.Created,
			Title:     "Deleted yesterday's yesterday",
			DayKey:    common.DayKey(now.AddDate(0, 0, -2)),
			Deleted:   true,
			Timestamp: now.AddDate(0, 0, -2),
		}
		freshTomb = objects.NotificationRecord{
			ID:        "fresh-tomb",
			Category:  category.Created,
			Title:     "Deleted yesterday",
			DayKey:    common.DayKey(now.AddDate(0, 0, -1)),
			Deleted:   true,
			Timestamp: now.AddDate(0, 0, -1),
		}
	)

	store.records = append(store.records, staleLive, freshLive, staleTomb, freshTomb)

	if err = store.Sweep(now); err != nil {
		t.Fatalf("Cannot sweep the Store: %s",
			err.Error())
	}

	var checks = []struct {
		id     string
		expect bool
	}{
		{"stale-live", false},
		{"fresh-live", true},
		{"stale-tomb", false},
		{"fresh-tomb", true},
	}

	for _, c := range checks {
		if _, ok := store.Get(c.id); ok != c.expect {
			t.Errorf("Record %s: present = %t, expected %t",
				c.id,
				ok,
				c.expect)
		}
	}

	// The swept record must be gone from every state's view as well.
	for _, state := range []objects.State{objects.StateActive, objects.StateRead, objects.StateDeleted} {
		for _, n := range store.ListByState(staleLive.DayKey, state) {
			if n.ID == staleLive.ID {
				t.Errorf("Swept record %s still shows up as %s",
					n.ID,
					state)
			}
		}
	}

	var (
		found bool
		tombs = store.ListByState(freshTomb.DayKey, objects.StateDeleted)
	)

	for _, n := range tombs {
		if n.ID == freshTomb.ID {
			found = true
		}
	}

	if !found {
		t.Errorf("Record %s should be listed among the deleted for %s",
			freshTomb.ID,
			freshTomb.DayKey)
	}
} // func TestStoreRetention(t *testing.T)
