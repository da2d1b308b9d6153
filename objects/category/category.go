// /home/krylon/go/src/github.com/blicero/vigil/objects/category/category.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-07-02 19:21:44 krylon>

//go:generate stringer -type=Category

// Package category contains symbolic constants for the kinds of
// notifications the client derives from the contract snapshot.
package category

// Category describes what condition a notification was derived from.
type Category uint8

// Created means a Contract was registered within the last 24 hours.
// ExpiringToday means a Contract's deadline is the current day.
// Expired means the deadline has passed without the Contract being closed.
// UnassignedGroup is an aggregate notice that Contracts without a
// recipient group exist.
// DeadlineApproaching is used on the server side for reminder mail.
const (
	Created Category = iota
	ExpiringToday
	Expired
	UnassignedGroup
	DeadlineApproaching
)

var keys = map[Category]string{
	Created:             "created",
	ExpiringToday:       "expiring_today",
	Expired:             "expired",
	UnassignedGroup:     "unassigned_group",
	DeadlineApproaching: "deadline_approaching",
}

// Key returns a stable, lower-case identifier for the Category.
// It is part of the dedup key of notification records, so it must
// never change for existing Categories.
func (c Category) Key() string {
	return keys[c]
} // func (c Category) Key() string
