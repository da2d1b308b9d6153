// /home/krylon/go/src/github.com/blicero/vigil/objects/schedule.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 17:26:09 krylon>

package objects

import (
	"fmt"
	"time"
)

//go:generate ffjson schedule.go

// Frequency says how often a Schedule fires.
type Frequency uint8

const (
	Daily Frequency = iota
	Weekly
	Monthly
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "InvalidFrequency"
	}
} // func (f Frequency) String() string

// Schedule is one user's personal reminder schedule: send me my
// reminder digest daily/weekly/monthly at such-and-such a time.
// Schedules used to live in a process-global map; they are now rows
// in the database so they survive restarts and can be edited over
// the web interface.
type Schedule struct {
	ID         int64
	UserEmail  string
	Freq       Frequency
	TimeOfDay  string // "HH:MM", local time
	Weekday    time.Weekday
	DayOfMonth int
	Enabled    bool
	Changed    time.Time
}

// IsDue returns true if the Schedule fires at the given point in
// time, compared at minute granularity. The caller is expected to
// poll no more often than once per minute; the dispatcher's per-day
// sent log keeps redundant polls from double-sending anyway.
func (s *Schedule) IsDue(now time.Time) bool {
	if !s.Enabled {
		return false
	} else if now.Format("15:04") != s.TimeOfDay {
		return false
	}

	switch s.Freq {
	case Daily:
		return true
	case Weekly:
		return now.Weekday() == s.Weekday
	case Monthly:
		return now.Day() == s.DayOfMonth
	default:
		return false
	}
} // func (s *Schedule) IsDue(now time.Time) bool

func (s *Schedule) String() string {
	return fmt.Sprintf("Schedule{ User: %q, Freq: %s, Time: %s }",
		s.UserEmail,
		s.Freq,
		s.TimeOfDay)
} // func (s *Schedule) String() string
