// /home/krylon/go/src/github.com/blicero/vigil/reminder/evaluator.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 18:21:14 krylon>

// Package reminder implements the server side of the notification
// engine: deciding which Contracts cross a notification boundary on a
// given day, resolving the people to notify, and sending them mail.
package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
)

// MatchPolicy decides if a Contract that is daysUntil days away from
// its target date matches one of the configured notification days.
//
// There are two policies, and they are deliberately kept separate:
// contracts only look ahead, bidding processes treat being N days
// late the same as being N days early. The original system did it
// that way without saying why, so we keep both behaviors distinct
// and let the caller choose per Kind.
type MatchPolicy interface {
	Matches(daysUntil int, days []int) bool
	Name() string
}

// FutureOnlyMatch matches only upcoming target dates.
type FutureOnlyMatch struct{}

// Matches returns true if daysUntil is one of the configured days.
func (FutureOnlyMatch) Matches(daysUntil int, days []int) bool {
	for _, d := range days {
		if daysUntil == d {
			return true
		}
	}

	return false
} // func (FutureOnlyMatch) Matches(daysUntil int, days []int) bool

// Name returns the policy's name.
func (FutureOnlyMatch) Name() string { return "FutureOnlyMatch" }

// AbsoluteValueMatch matches on the distance to the target date,
// regardless of direction.
type AbsoluteValueMatch struct{}

// Matches returns true if |daysUntil| is one of the configured days.
func (AbsoluteValueMatch) Matches(daysUntil int, days []int) bool {
	if daysUntil < 0 {
		daysUntil = -daysUntil
	}

	for _, d := range days {
		if daysUntil == d {
			return true
		}
	}

	return false
} // func (AbsoluteValueMatch) Matches(daysUntil int, days []int) bool

// Name returns the policy's name.
func (AbsoluteValueMatch) Name() string { return "AbsoluteValueMatch" }

// Class bundles the MatchPolicy and the default notification days for
// one class of Contracts. The defaults only apply to Contracts that
// do not carry their own day set.
type Class struct {
	Policy      MatchPolicy
	DefaultDays []int
}

// DefaultClasses returns the stock per-Kind configuration: plain
// contracts get a single one-day-ahead warning, bidding processes the
// wider staggered set.
func DefaultClasses() map[objects.Kind]Class {
	return map[objects.Kind]Class{
		objects.KindContract: {
			Policy:      FutureOnlyMatch{},
			DefaultDays: []int{1},
		},
		objects.KindProcess: {
			Policy:      AbsoluteValueMatch{},
			DefaultDays: []int{1, 7, 15, 30},
		},
	}
} // func DefaultClasses() map[objects.Kind]Class

// Match is one Contract the Evaluator flagged for today, together
// with the day distance for message formatting.
type Match struct {
	Contract  objects.Contract
	DaysUntil int
}

func (m *Match) String() string {
	return fmt.Sprintf("Match{ Contract: %q, DaysUntil: %d }",
		m.Contract.Title,
		m.DaysUntil)
} // func (m *Match) String() string

// Evaluator decides which Contracts are due a reminder on a given day.
type Evaluator struct {
	log     *log.Logger
	classes map[objects.Kind]Class
}

// NewEvaluator creates an Evaluator with the given per-Kind
// configuration. Passing nil gets you DefaultClasses.
func NewEvaluator(classes map[objects.Kind]Class) (*Evaluator, error) {
	var (
		err error
		ev  = &Evaluator{classes: classes}
	)

	if ev.classes == nil {
		ev.classes = DefaultClasses()
	}

	if ev.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	}

	return ev, nil
} // func NewEvaluator(classes map[objects.Kind]Class) (*Evaluator, error)

// Evaluate checks every Contract against its class's policy and
// returns the ones that cross a notification boundary today.
// Contracts without any target date are skipped, they never cause an
// error.
func (ev *Evaluator) Evaluate(today time.Time, contracts []objects.Contract) []Match {
	var matches = make([]Match, 0, len(contracts))

	for idx := range contracts {
		var (
			c         = &contracts[idx]
			daysUntil int
			ok        bool
		)

		if c.Status.IsTerminal() {
			continue
		}

		if daysUntil, ok = c.DaysUntil(today); !ok {
			ev.log.Printf("[DEBUG] Contract %s (%q) has no target date, skipping\n",
				c.ID,
				c.Title)
			continue
		}

		var cls = ev.classes[c.Kind]

		if cls.Policy == nil {
			ev.log.Printf("[CANTHAPPEN] No match policy configured for Kind %s\n",
				c.Kind)
			continue
		}

		var days = c.NotificationDays
		if len(days) == 0 {
			days = cls.DefaultDays
		}

		if cls.Policy.Matches(daysUntil, days) {
			ev.log.Printf("[DEBUG] Contract %s (%q) matches (%s, %d days)\n",
				c.ID,
				c.Title,
				cls.Policy.Name(),
				daysUntil)

			matches = append(matches, Match{
				Contract:  *c,
				DaysUntil: daysUntil,
			})
		}
	}

	return matches
} // func (ev *Evaluator) Evaluate(today time.Time, contracts []objects.Contract) []Match
