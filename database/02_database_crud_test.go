// /home/krylon/go/src/github.com/blicero/vigil/database/02_database_crud_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 18:21:36 krylon>

package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/category"
	"github.com/blicero/vigil/objects/priority"
)

const contractCnt = 16

var (
	contracts []*objects.Contract
	group     = &objects.Group{
		Name: "Test Department",
		Members: []objects.Recipient{
			{Name: "John Doe", Email: "john.doe@example.com"},
			{Name: "Jane Doe", Email: "jane.doe@example.com"},
		},
	}
)

func init() {
	contracts = make([]*objects.Contract, contractCnt)

	var now = time.Now()

	for i := range contracts {
		var c = &objects.Contract{
			ID:               common.GetUUID(),
			Title:            fmt.Sprintf("Test Contract #%03d", i),
			Number:           fmt.Sprintf("CT-%04d/2026", i),
			Kind:             objects.Kind(i % 2),
			EndDate:          now.AddDate(0, 0, i),
			CreatedAt:        now,
			NotificationDays: []int{1, 7},
			Changed:          now,
		}

		contracts[i] = c
	}
} // func init()

func TestContractAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for _, c := range contracts {
		var err error

		if err = db.ContractAdd(c); err != nil {
			t.Fatalf("Cannot add Contract %q: %s",
				c.Title,
				err.Error())
		}
	}
} // func TestContractAdd(t *testing.T)

func TestContractGetAll(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Contract
	)

	if list, err = db.ContractGetAll(); err != nil {
		t.Fatalf("Cannot fetch all Contracts: %s",
			err.Error())
	} else if len(list) != len(contracts) {
		t.Fatalf("Unexpected number of Contracts: %d (expected %d)",
			len(list),
			len(contracts))
	}
} // func TestContractGetAll(t *testing.T)

func TestContractGetByID(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		c   *objects.Contract
		ref = contracts[0]
	)

	if c, err = db.ContractGetByID(ref.ID); err != nil {
		t.Fatalf("Cannot look up Contract %s: %s",
			ref.ID,
			err.Error())
	} else if c == nil {
		t.Fatalf("Did not find Contract %s in database", ref.ID)
	} else if c.Title != ref.Title {
		t.Errorf("Unexpected Title: %q (expected %q)",
			c.Title,
			ref.Title)
	} else if len(c.NotificationDays) != len(ref.NotificationDays) {
		t.Errorf("Unexpected number of notification days: %d (expected %d)",
			len(c.NotificationDays),
			len(ref.NotificationDays))
	}
} // func TestContractGetByID(t *testing.T)

func TestContractGetActive(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Contract
	)

	// Close half of the Contracts, then check they no longer show up.
	for i, c := range contracts {
		if i%2 != 0 {
			continue
		}

		c.Status = objects.StatusFinished
		c.Changed = time.Now()

		if err = db.ContractUpdate(c); err != nil {
			t.Fatalf("Cannot update Contract %q: %s",
				c.Title,
				err.Error())
		}
	}

	if list, err = db.ContractGetActive(); err != nil {
		t.Fatalf("Cannot fetch active Contracts: %s",
			err.Error())
	} else if len(list) != len(contracts)/2 {
		t.Fatalf("Unexpected number of active Contracts: %d (expected %d)",
			len(list),
			len(contracts)/2)
	}

	for idx := range list {
		if list[idx].Status.IsTerminal() {
			t.Errorf("Contract %q is %s, should not be in the active list",
				list[idx].Title,
				list[idx].Status)
		}
	}
} // func TestContractGetActive(t *testing.T)

func TestGroupAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var err error

	if err = db.GroupAdd(group); err != nil {
		t.Fatalf("Cannot add Group %q: %s",
			group.Name,
			err.Error())
	} else if group.ID == "" {
		t.Error("ID of Group was not set")
	}
} // func TestGroupAdd(t *testing.T)

func TestGroupGetByID(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		g   *objects.Group
	)

	if g, err = db.GroupGetByID(group.ID); err != nil {
		t.Fatalf("Cannot look up Group %s: %s",
			group.ID,
			err.Error())
	} else if g == nil {
		t.Fatalf("Did not find Group %s in database", group.ID)
	} else if len(g.Members) != len(group.Members) {
		t.Errorf("Unexpected number of members: %d (expected %d)",
			len(g.Members),
			len(group.Members))
	}
} // func TestGroupGetByID(t *testing.T)

func TestNotificationLifecycle(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err    error
		list   []objects.NotificationRecord
		dayKey = common.DayKey(time.Now())
		n      = &objects.NotificationRecord{
			ID:         objects.MakeRecordID(category.Expired, contracts[0].ID, dayKey),
			Category:   category.Expired,
			Title:      "Contract expired",
			Message:    "A test Contract has expired",
			ContractID: contracts[0].ID,
			Priority:   priority.High,
			DayKey:     dayKey,
			Timestamp:  time.Now(),
		}
	)

	if err = db.NotificationAdd(n); err != nil {
		t.Fatalf("Cannot add notification %s: %s",
			n.ID,
			err.Error())
	} else if list, err = db.NotificationGetByDay(dayKey); err != nil {
		t.Fatalf("Cannot fetch notifications for %s: %s",
			dayKey,
			err.Error())
	} else if len(list) != 1 {
		t.Fatalf("Unexpected number of notifications for %s: %d (expected 1)",
			dayKey,
			len(list))
	}

	if err = db.NotificationSetViewed(n); err != nil {
		t.Fatalf("Cannot mark notification %s as viewed: %s",
			n.ID,
			err.Error())
	}

	var fetched *objects.NotificationRecord

	if fetched, err = db.NotificationGetByID(n.ID); err != nil {
		t.Fatalf("Cannot look up notification %s: %s",
			n.ID,
			err.Error())
	} else if fetched == nil {
		t.Fatalf("Did not find notification %s in database", n.ID)
	} else if !fetched.Viewed {
		t.Error("Notification should be marked as viewed")
	} else if !fetched.Read {
		t.Error("Viewing a notification should mark it as read, too")
	}

	if err = db.NotificationSetRead(n, false); err != nil {
		t.Fatalf("Cannot mark notification %s as unread: %s",
			n.ID,
			err.Error())
	} else if fetched, err = db.NotificationGetByID(n.ID); err != nil {
		t.Fatalf("Cannot look up notification %s: %s",
			n.ID,
			err.Error())
	} else if fetched.Read {
		t.Error("Notification should be unread again")
	} else if fetched.Viewed {
		t.Error("Marking a notification unread should clear the viewed flag")
	}

	if err = db.NotificationSetDeleted(n, true); err != nil {
		t.Fatalf("Cannot delete notification %s: %s",
			n.ID,
			err.Error())
	} else if fetched, err = db.NotificationGetByID(n.ID); err != nil {
		t.Fatalf("Cannot look up notification %s: %s",
			n.ID,
			err.Error())
	} else if !fetched.Deleted {
		t.Error("Notification should be a tombstone now")
	}
} // func TestNotificationLifecycle(t *testing.T)

func TestNotificationMarkAllRead(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err     error
		cnt     int64
		fetched *objects.NotificationRecord
		dayKey  = common.DayKey(time.Now())
		tomb    = &objects.NotificationRecord{
			ID:         objects.MakeRecordID(category.Expired, contracts[4].ID, dayKey),
			Category:   category.Expired,
			Title:      "Already dismissed",
			Message:    "The user deleted this one",
			ContractID: contracts[4].ID,
			Priority:   priority.High,
			DayKey:     dayKey,
			Deleted:    true,
			Timestamp:  time.Now(),
		}
	)

	if err = db.NotificationAdd(tomb); err != nil {
		t.Fatalf("Cannot add notification %s: %s",
			tomb.ID,
			err.Error())
	}

	for i := 1; i < 4; i++ {
		var n = &objects.NotificationRecord{
			ID:         objects.MakeRecordID(category.DeadlineApproaching, contracts[i].ID, dayKey),
			Category:   category.DeadlineApproaching,
			Title:      fmt.Sprintf("Deadline approaching #%d", i),
			Message:    "Brace for impact",
			ContractID: contracts[i].ID,
			Priority:   priority.Medium,
			DayKey:     dayKey,
			Timestamp:  time.Now(),
		}

		if err = db.NotificationAdd(n); err != nil {
			t.Fatalf("Cannot add notification %s: %s",
				n.ID,
				err.Error())
		}
	}

	if cnt, err = db.NotificationMarkAllRead(dayKey); err != nil {
		t.Fatalf("Cannot mark all notifications read: %s",
			err.Error())
	} else if cnt < 3 {
		t.Errorf("Unexpected number of affected notifications: %d (expected at least 3)",
			cnt)
	}

	if cnt, err = db.NotificationMarkAllViewed(dayKey); err != nil {
		t.Fatalf("Cannot mark all notifications viewed: %s",
			err.Error())
	} else if cnt < 3 {
		t.Errorf("Unexpected number of affected notifications: %d (expected at least 3)",
			cnt)
	}

	if fetched, err = db.NotificationGetByID(tomb.ID); err != nil {
		t.Fatalf("Cannot look up notification %s: %s",
			tomb.ID,
			err.Error())
	} else if fetched.Read || fetched.Viewed {
		t.Error("A deleted notification must not be touched by bulk marking")
	}
} // func TestNotificationMarkAllRead(t *testing.T)

func TestNotificationPurge(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err       error
		list      []objects.NotificationRecord
		now       = time.Now()
		oldDay    = common.DayKey(now.AddDate(0, 0, -30))
		liveLimit = common.DayKey(now.AddDate(0, 0, -7))
		tombLimit = common.DayKey(now.AddDate(0, 0, -1))
		stale     = &objects.NotificationRecord{
			ID:         objects.MakeRecordID(category.Created, contracts[5].ID, oldDay),
			Category:   category.Created,
			Title:      "Ancient news",
			Message:    "This should not survive the purge",
			ContractID: contracts[5].ID,
			Priority:   priority.Low,
			DayKey:     oldDay,
			Timestamp:  now.AddDate(0, 0, -30),
		}
	)

	if err = db.NotificationAdd(stale); err != nil {
		t.Fatalf("Cannot add notification %s: %s",
			stale.ID,
			err.Error())
	} else if err = db.NotificationPurge(liveLimit, tombLimit); err != nil {
		t.Fatalf("Cannot purge notifications: %s",
			err.Error())
	} else if list, err = db.NotificationGetByDay(oldDay); err != nil {
		t.Fatalf("Cannot fetch notifications for %s: %s",
			oldDay,
			err.Error())
	} else if len(list) != 0 {
		t.Errorf("%d stale notifications survived the purge",
			len(list))
	}
} // func TestNotificationPurge(t *testing.T)

func TestSentLog(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err    error
		seen   bool
		dayKey = common.DayKey(time.Now())
		cid    = contracts[0].ID
		rcpt   = group.Members[0].Email
	)

	if seen, err = db.SentLogSeen(cid, rcpt, dayKey); err != nil {
		t.Fatalf("Cannot check sent log: %s", err.Error())
	} else if seen {
		t.Fatal("Sent log claims to have seen a reminder that was never sent")
	} else if err = db.SentLogAdd(cid, rcpt, dayKey); err != nil {
		t.Fatalf("Cannot add sent log entry: %s", err.Error())
	} else if seen, err = db.SentLogSeen(cid, rcpt, dayKey); err != nil {
		t.Fatalf("Cannot check sent log: %s", err.Error())
	} else if !seen {
		t.Error("Sent log does not remember the reminder we just logged")
	}

	if err = db.SentLogAdd(cid, rcpt, dayKey); err == nil {
		t.Error("Adding the same sent log entry twice should fail")
	}

	if err = db.SentLogPurge(common.DayKey(time.Now().AddDate(0, 0, -30))); err != nil {
		t.Fatalf("Cannot purge sent log: %s", err.Error())
	} else if seen, err = db.SentLogSeen(cid, rcpt, dayKey); err != nil {
		t.Fatalf("Cannot check sent log: %s", err.Error())
	} else if !seen {
		t.Error("Purging old entries should not touch today's")
	}
} // func TestSentLog(t *testing.T)

func TestSchedule(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Schedule
		s    = &objects.Schedule{
			UserEmail: "john.doe@example.com",
			Freq:      objects.Weekly,
			TimeOfDay: "08:30",
			Weekday:   time.Monday,
			Enabled:   true,
			Changed:   time.Now(),
		}
	)

	if err = db.ScheduleAdd(s); err != nil {
		t.Fatalf("Cannot add Schedule for %s: %s",
			s.UserEmail,
			err.Error())
	} else if s.ID == 0 {
		t.Fatal("ID of Schedule is 0")
	}

	s.TimeOfDay = "17:45"
	s.Changed = time.Now()

	if err = db.ScheduleUpdate(s); err != nil {
		t.Fatalf("Cannot update Schedule %d: %s",
			s.ID,
			err.Error())
	} else if list, err = db.ScheduleGetAll(); err != nil {
		t.Fatalf("Cannot fetch all Schedules: %s",
			err.Error())
	} else if len(list) != 1 {
		t.Fatalf("Unexpected number of Schedules: %d (expected 1)",
			len(list))
	} else if list[0].TimeOfDay != "17:45" {
		t.Errorf("Unexpected time of day: %s (expected 17:45)",
			list[0].TimeOfDay)
	}

	if err = db.ScheduleDelete(s); err != nil {
		t.Fatalf("Cannot delete Schedule %d: %s",
			s.ID,
			err.Error())
	} else if list, err = db.ScheduleGetAll(); err != nil {
		t.Fatalf("Cannot fetch all Schedules: %s",
			err.Error())
	} else if len(list) != 0 {
		t.Errorf("Unexpected number of Schedules after delete: %d (expected 0)",
			len(list))
	}
} // func TestSchedule(t *testing.T)
