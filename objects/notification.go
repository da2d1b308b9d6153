// /home/krylon/go/src/github.com/blicero/vigil/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 21:13:28 krylon>

// Package objects provides the data types used by the application.
package objects

import (
	"fmt"
	"time"

	"github.com/blicero/vigil/objects/category"
	"github.com/blicero/vigil/objects/priority"
)

//go:generate ffjson notification.go

// State is the lifecycle state a NotificationRecord can be listed by.
type State uint8

const (
	StateActive State = iota
	StateRead
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateRead:
		return "Read"
	case StateDeleted:
		return "Deleted"
	default:
		return "InvalidState"
	}
} // func (s State) String() string

// MakeRecordID derives the identifier of a notification record from
// the category, the Contract it refers to, and the day it was
// generated for. Deriving the same candidate on the same day always
// yields the same ID, which is what makes generation idempotent.
func MakeRecordID(cat category.Category, contractID, dayKey string) string {
	return fmt.Sprintf("%s-%s-%s",
		cat.Key(),
		contractID,
		dayKey)
} // func MakeRecordID(cat category.Category, contractID, dayKey string) string

// NotificationRecord is one entry in the client's notification center.
//
// Read and Viewed are independent flags: viewing a record also marks
// it read, but marking it read does not count as viewing it (Viewed
// gates the desktop alert). Deleted records are tombstones, they are
// kept around for a day to suppress regeneration.
type NotificationRecord struct {
	ID         string
	Category   category.Category
	Title      string
	Message    string
	ContractID string
	Priority   priority.Priority
	DayKey     string
	Read       bool
	Viewed     bool
	Deleted    bool
	Timestamp  time.Time
}

// State returns the lifecycle state of the record.
func (n *NotificationRecord) State() State {
	switch {
	case n.Deleted:
		return StateDeleted
	case n.Read:
		return StateRead
	default:
		return StateActive
	}
} // func (n *NotificationRecord) State() State

// Payload returns the record's Title and Message,
// e.g. for display in a desktop alert.
func (n *NotificationRecord) Payload() (string, string) {
	return n.Title, n.Message
} // func (n *NotificationRecord) Payload() (string, string)
