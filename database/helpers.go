// /home/krylon/go/src/github.com/blicero/vigil/database/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-25 19:44:08 krylon>

package database

import (
	"strconv"
	"strings"
	"time"
)

// joinDays renders a list of notification days as a comma-separated
// string for storage, e.g. [1 7 15 30] -> "1,7,15,30".
func joinDays(days []int) string {
	if len(days) == 0 {
		return ""
	}

	var parts = make([]string, len(days))

	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, ",")
} // func joinDays(days []int) string

// parseDays is the inverse of joinDays. Malformed pieces are dropped
// silently; an empty string yields nil, so the per-class default set
// applies.
func parseDays(s string) []int {
	if s == "" {
		return nil
	}

	var (
		parts = strings.Split(s, ",")
		days  = make([]int, 0, len(parts))
	)

	for _, p := range parts {
		var (
			err error
			n   int
		)

		if n, err = strconv.Atoi(strings.TrimSpace(p)); err == nil {
			days = append(days, n)
		}
	}

	if len(days) == 0 {
		return nil
	}

	return days
} // func parseDays(s string) []int

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.Unix()
} // func unixOrZero(t time.Time) int64

func timeOrZero(stamp int64) time.Time {
	if stamp == 0 {
		return time.Time{}
	}

	return time.Unix(stamp, 0)
} // func timeOrZero(stamp int64) time.Time
