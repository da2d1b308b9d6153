// /home/krylon/go/src/github.com/blicero/vigil/objects/contract.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 19:33:50 krylon>

package objects

import (
	"time"
)

//go:generate ffjson contract.go

// Kind says whether a Contract is an actual contract or a bidding
// process. The two classes use different reminder matching policies.
type Kind uint8

const (
	KindContract Kind = iota
	KindProcess
)

func (k Kind) String() string {
	switch k {
	case KindContract:
		return "Contract"
	case KindProcess:
		return "Process"
	default:
		return "InvalidKind"
	}
} // func (k Kind) String() string

// Status is the processing state of a Contract. The notification
// engine only reads it to tell live Contracts from closed ones.
type Status uint8

const (
	StatusActive Status = iota
	StatusFinished
	StatusCancelled
)

// IsTerminal returns true if a Contract in this Status is closed
// and no longer generates notifications.
func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
} // func (s Status) IsTerminal() bool

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusFinished:
		return "Finished"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "InvalidStatus"
	}
} // func (s Status) String() string

// Contract is a dated record the reminder logic is evaluated against.
// The engine never modifies Contracts, it only reads their dates and
// recipient group.
//
// EndDate and OpeningDate may be unset (i.e. the zero value); a
// Contract without either date is skipped by the Evaluator.
type Contract struct {
	ID               string
	Title            string
	Number           string
	Kind             Kind
	Status           Status
	EndDate          time.Time
	OpeningDate      time.Time
	CreatedAt        time.Time
	NotificationDays []int
	GroupID          string
	Changed          time.Time
}

// TargetDate returns the date reminders for the Contract are computed
// from, preferring the end date over the opening date. The second
// return value is false if the Contract has neither.
func (c *Contract) TargetDate() (time.Time, bool) {
	if !c.EndDate.IsZero() {
		return c.EndDate, true
	} else if !c.OpeningDate.IsZero() {
		return c.OpeningDate, true
	}

	return time.Time{}, false
} // func (c *Contract) TargetDate() (time.Time, bool)

// DaysUntil returns the number of days between now and the Contract's
// target date, rounded up, so a deadline 25 hours away counts as 2
// days, one 23 hours away as 1 day. The result is negative if the
// target date has passed. The second return value is false if the
// Contract has no target date at all.
func (c *Contract) DaysUntil(now time.Time) (int, bool) {
	var (
		target time.Time
		ok     bool
	)

	if target, ok = c.TargetDate(); !ok {
		return 0, false
	}

	var diff = target.Sub(now)
	var days = int(diff / (time.Hour * 24))

	if diff%(time.Hour*24) > 0 {
		days++
	}

	return days, true
} // func (c *Contract) DaysUntil(now time.Time) (int, bool)

// IsNewer returns true if the receiver's Changed stamp is more recent
// than the argument's.
func (c *Contract) IsNewer(other *Contract) bool {
	return c.Changed.After(other.Changed)
} // func (c *Contract) IsNewer(other *Contract) bool
