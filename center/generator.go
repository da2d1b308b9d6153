// /home/krylon/go/src/github.com/blicero/vigil/center/generator.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 20:14:29 krylon>

// Package center implements the client side of the notification
// engine, the notification center: deriving notification records
// from the contract snapshot, keeping them in a persistent store,
// and walking them through their lifecycle.
package center

import (
	"fmt"
	"log"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/category"
	"github.com/blicero/vigil/objects/priority"
)

// aggregateID is the pseudo Contract ID used for the one aggregate
// record about unassigned Contracts.
const aggregateID = "all"

// recentWindow is how long after its creation a Contract counts as
// recently created.
const recentWindow = time.Hour * 24

// Generator derives notification candidates from the contract
// snapshot. Generation is a pure function of the input and the
// current day: the same snapshot on the same day always yields the
// same set of record IDs.
type Generator struct {
	log *log.Logger
}

// NewGenerator creates a Generator.
func NewGenerator() (*Generator, error) {
	var (
		err error
		g   = &Generator{}
	)

	if g.log, err = common.GetLogger(logdomain.Center); err != nil {
		return nil, err
	}

	return g, nil
} // func NewGenerator() (*Generator, error)

// Generate derives the notification candidates for the given point in
// time. Candidates whose ID appears in tombstones - records the user
// deleted earlier the same day - are dropped, which is what makes
// deleting a notification stick for the rest of the day.
func (g *Generator) Generate(now time.Time, contracts []objects.Contract, tombstones map[string]bool) []objects.NotificationRecord {
	var (
		dayKey     = common.DayKey(now)
		today      = common.DayStart(now)
		unassigned int
		records    = make([]objects.NotificationRecord, 0, len(contracts))
	)

	for idx := range contracts {
		var c = &contracts[idx]

		if c.GroupID == "" && !c.Status.IsTerminal() {
			unassigned++
		}

		if !c.EndDate.IsZero() && !c.Status.IsTerminal() {
			var end = common.DayStart(c.EndDate)

			if end.Before(today) {
				var overdue = int(today.Sub(end) / (time.Hour * 24))

				records = append(records, objects.NotificationRecord{
					ID:       objects.MakeRecordID(category.Expired, c.ID, dayKey),
					Category: category.Expired,
					Title:    fmt.Sprintf("%s expired", c.Kind),
					Message: fmt.Sprintf("%s (%s) expired %d day(s) ago.",
						c.Title,
						c.Number,
						overdue),
					ContractID: c.ID,
					Priority:   priority.High,
					DayKey:     dayKey,
					Timestamp:  now,
				})
			} else if end.Equal(today) {
				records = append(records, objects.NotificationRecord{
					ID:       objects.MakeRecordID(category.ExpiringToday, c.ID, dayKey),
					Category: category.ExpiringToday,
					Title:    fmt.Sprintf("%s expires today", c.Kind),
					Message: fmt.Sprintf("%s (%s) reaches its deadline today.",
						c.Title,
						c.Number),
					ContractID: c.ID,
					Priority:   priority.High,
					DayKey:     dayKey,
					Timestamp:  now,
				})
			}
		}

		if !c.CreatedAt.IsZero() && now.Sub(c.CreatedAt) <= recentWindow {
			records = append(records, objects.NotificationRecord{
				ID:       objects.MakeRecordID(category.Created, c.ID, dayKey),
				Category: category.Created,
				Title:    fmt.Sprintf("New %s", c.Kind),
				Message: fmt.Sprintf("%s (%s) was registered.",
					c.Title,
					c.Number),
				ContractID: c.ID,
				Priority:   priority.Low,
				DayKey:     dayKey,
				Timestamp:  now,
			})
		}
	}

	if unassigned > 0 {
		// One aggregate record, no matter how many Contracts lack a
		// group.
		records = append(records, objects.NotificationRecord{
			ID:       objects.MakeRecordID(category.UnassignedGroup, aggregateID, dayKey),
			Category: category.UnassignedGroup,
			Title:    "Contracts without a recipient group",
			Message: fmt.Sprintf("%d contract(s) have no recipient group assigned. Nobody gets reminders for them.",
				unassigned),
			ContractID: "",
			Priority:   priority.Medium,
			DayKey:     dayKey,
			Timestamp:  now,
		})
	}

	if len(tombstones) == 0 {
		return records
	}

	var kept = records[:0]

	for _, n := range records {
		if tombstones[n.ID] {
			g.log.Printf("[DEBUG] Candidate %s was deleted today, not regenerating\n",
				n.ID)
			continue
		}

		kept = append(kept, n)
	}

	return kept
} // func (g *Generator) Generate(now time.Time, contracts []objects.Contract, tombstones map[string]bool) []objects.NotificationRecord
