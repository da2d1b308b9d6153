// /home/krylon/go/src/github.com/blicero/vigil/center/store.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 10:02:36 krylon>

package center

import (
	"fmt"
	"log"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
)

// Retention windows, in days. Live records stay for a week, deleted
// records (tombstones) only need to survive long enough to suppress
// regeneration for the rest of their day.
const (
	retentionLive = 7
	retentionTomb = 1
)

// ErrNotFound is returned when an operation refers to a record that
// is not in the Store.
var ErrNotFound = fmt.Errorf("No such notification record")

var errSaveRefused = fmt.Errorf("Repository refused to save")

// Store is the notification center's record store. It owns the
// lifecycle of NotificationRecords: generation, the read/viewed/
// deleted flags, and retention.
//
// All operations are synchronous; every mutation is written through
// to the Repository before it becomes visible, so a failed save
// leaves the Store exactly as it was. The Store assumes it is the
// only writer to its Repository - if two processes share one, the
// last write wins, which is a known limitation.
type Store struct {
	log     *log.Logger
	repo    Repository
	gen     *Generator
	records []objects.NotificationRecord
}

// NewStore creates a Store on top of the given Repository and loads
// the persisted records.
func NewStore(repo Repository) (*Store, error) {
	var (
		err error
		s   = &Store{repo: repo}
	)

	if s.log, err = common.GetLogger(logdomain.Center); err != nil {
		return nil, err
	} else if s.gen, err = NewGenerator(); err != nil {
		return nil, err
	} else if s.records, err = repo.Load(); err != nil {
		s.log.Printf("[ERROR] Cannot load notification records: %s\n",
			err.Error())
		return nil, err
	}

	return s, nil
} // func NewStore(repo Repository) (*Store, error)

// Generate runs the retention sweep, derives today's candidates from
// the given contract snapshot, and adds the ones that are neither
// present already nor tombstoned. It returns the newly added records.
func (s *Store) Generate(now time.Time, contracts []objects.Contract) ([]objects.NotificationRecord, error) {
	var (
		err    error
		dayKey = common.DayKey(now)
	)

	var next = s.sweep(now, s.records)

	var (
		existing   = make(map[string]bool, len(next))
		tombstones = make(map[string]bool)
	)

	for idx := range next {
		var n = &next[idx]
		existing[n.ID] = true

		if n.Deleted && n.DayKey == dayKey {
			tombstones[n.ID] = true
		}
	}

	var (
		candidates = s.gen.Generate(now, contracts, tombstones)
		fresh      = make([]objects.NotificationRecord, 0, len(candidates))
	)

	for _, n := range candidates {
		if existing[n.ID] {
			continue
		}

		next = append(next, n)
		fresh = append(fresh, n)
	}

	if err = s.commit(next); err != nil {
		return nil, err
	}

	if len(fresh) > 0 {
		s.log.Printf("[INFO] Generated %d new notification(s) for %s\n",
			len(fresh),
			dayKey)
	}

	return fresh, nil
} // func (s *Store) Generate(now time.Time, contracts []objects.Contract) ([]objects.NotificationRecord, error)

// Sweep removes records that have fallen out of their retention
// window: live records older than a week, tombstones older than a
// day.
func (s *Store) Sweep(now time.Time) error {
	return s.commit(s.sweep(now, s.records))
} // func (s *Store) Sweep(now time.Time) error

func (s *Store) sweep(now time.Time, records []objects.NotificationRecord) []objects.NotificationRecord {
	var (
		today      = common.DayStart(now)
		liveCutoff = common.DayKey(today.AddDate(0, 0, -retentionLive))
		tombCutoff = common.DayKey(today.AddDate(0, 0, -retentionTomb))
		kept       = make([]objects.NotificationRecord, 0, len(records))
	)

	for _, n := range records {
		if n.Deleted {
			if n.DayKey < tombCutoff {
				s.log.Printf("[DEBUG] Purge tombstone %s\n", n.ID)
				continue
			}
		} else if n.DayKey < liveCutoff {
			s.log.Printf("[DEBUG] Purge notification %s\n", n.ID)
			continue
		}

		kept = append(kept, n)
	}

	return kept
} // func (s *Store) sweep(now time.Time, records []objects.NotificationRecord) []objects.NotificationRecord

// MarkRead marks a record as read. It does not count as viewing it.
func (s *Store) MarkRead(id string) error {
	return s.mutate(id, func(n *objects.NotificationRecord) {
		n.Read = true
	})
} // func (s *Store) MarkRead(id string) error

// MarkUnread clears the read flag, and with it the viewed flag -
// a record the user explicitly marked unread should alert again.
func (s *Store) MarkUnread(id string) error {
	return s.mutate(id, func(n *objects.NotificationRecord) {
		n.Read = false
		n.Viewed = false
	})
} // func (s *Store) MarkUnread(id string) error

// MarkViewed marks a record as viewed. Viewing subsumes reading, so
// the read flag is set as well.
func (s *Store) MarkViewed(id string) error {
	return s.mutate(id, func(n *objects.NotificationRecord) {
		n.Read = true
		n.Viewed = true
	})
} // func (s *Store) MarkViewed(id string) error

// Delete turns a record into a tombstone. It stays in the Store until
// its retention runs out, suppressing regeneration of the same
// record for the rest of the day.
func (s *Store) Delete(id string) error {
	return s.mutate(id, func(n *objects.NotificationRecord) {
		n.Deleted = true
	})
} // func (s *Store) Delete(id string) error

// Restore brings a tombstoned record back, with its read and viewed
// flags as they were.
func (s *Store) Restore(id string) error {
	return s.mutate(id, func(n *objects.NotificationRecord) {
		n.Deleted = false
	})
} // func (s *Store) Restore(id string) error

func (s *Store) mutate(id string, change func(n *objects.NotificationRecord)) error {
	var (
		err   error
		found bool
		next  = make([]objects.NotificationRecord, len(s.records))
	)

	copy(next, s.records)

	for idx := range next {
		if next[idx].ID == id {
			change(&next[idx])
			found = true
			break
		}
	}

	if !found {
		return ErrNotFound
	} else if err = s.commit(next); err != nil {
		return err
	}

	return nil
} // func (s *Store) mutate(id string, change func(n *objects.NotificationRecord)) error

// MarkAllRead marks all live records generated for the given day as
// read. Records from other days and tombstones are left alone. It
// returns the number of records affected.
func (s *Store) MarkAllRead(dayKey string) (int, error) {
	return s.mutateAll(dayKey, func(n *objects.NotificationRecord) bool {
		if n.Read {
			return false
		}

		n.Read = true
		return true
	})
} // func (s *Store) MarkAllRead(dayKey string) (int, error)

// MarkAllViewed marks all live records generated for the given day as
// viewed and read. It returns the number of records affected.
func (s *Store) MarkAllViewed(dayKey string) (int, error) {
	return s.mutateAll(dayKey, func(n *objects.NotificationRecord) bool {
		if n.Read && n.Viewed {
			return false
		}

		n.Read = true
		n.Viewed = true
		return true
	})
} // func (s *Store) MarkAllViewed(dayKey string) (int, error)

func (s *Store) mutateAll(dayKey string, change func(n *objects.NotificationRecord) bool) (int, error) {
	var (
		err  error
		cnt  int
		next = make([]objects.NotificationRecord, len(s.records))
	)

	copy(next, s.records)

	for idx := range next {
		var n = &next[idx]

		if n.DayKey != dayKey || n.Deleted {
			continue
		} else if change(n) {
			cnt++
		}
	}

	if cnt == 0 {
		return 0, nil
	} else if err = s.commit(next); err != nil {
		return 0, err
	}

	return cnt, nil
} // func (s *Store) mutateAll(dayKey string, change func(n *objects.NotificationRecord) bool) (int, error)

// ListDay returns all records generated for the given day, whatever
// their state.
func (s *Store) ListDay(dayKey string) []objects.NotificationRecord {
	var records = make([]objects.NotificationRecord, 0, len(s.records))

	for _, n := range s.records {
		if n.DayKey == dayKey {
			records = append(records, n)
		}
	}

	return records
} // func (s *Store) ListDay(dayKey string) []objects.NotificationRecord

// ListByState returns the records generated for the given day that
// are in the given lifecycle state.
func (s *Store) ListByState(dayKey string, state objects.State) []objects.NotificationRecord {
	var records = make([]objects.NotificationRecord, 0, len(s.records))

	for _, n := range s.records {
		if n.DayKey == dayKey && n.State() == state {
			records = append(records, n)
		}
	}

	return records
} // func (s *Store) ListByState(dayKey string, state objects.State) []objects.NotificationRecord

// UnreadCount returns the number of unread live records for the given
// day.
func (s *Store) UnreadCount(dayKey string) int {
	var cnt int

	for _, n := range s.records {
		if n.DayKey == dayKey && !n.Deleted && !n.Read {
			cnt++
		}
	}

	return cnt
} // func (s *Store) UnreadCount(dayKey string) int

// Get looks up a single record by ID. The second return value is
// false if the Store has no such record.
func (s *Store) Get(id string) (objects.NotificationRecord, bool) {
	for _, n := range s.records {
		if n.ID == id {
			return n, true
		}
	}

	return objects.NotificationRecord{}, false
} // func (s *Store) Get(id string) (objects.NotificationRecord, bool)

// commit writes the given record list through to the Repository; only
// if that succeeds does it become the Store's state.
func (s *Store) commit(next []objects.NotificationRecord) error {
	var err error

	if err = s.repo.Save(next); err != nil {
		s.log.Printf("[ERROR] Cannot save notification records, keeping previous state: %s\n",
			err.Error())
		return err
	}

	s.records = next
	return nil
} // func (s *Store) commit(next []objects.NotificationRecord) error
