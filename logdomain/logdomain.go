// /home/krylon/go/src/github.com/blicero/vigil/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-06-14 16:55:31 krylon>

// Package logdomain provides symbolic constants to identify the
// various pieces of the application that want to do logging.
package logdomain

//go:generate stringer -type=ID

// ID represents a log source.
type ID uint8

// These constants identify the various log sources.
const (
	Common ID = iota
	Backend
	Client
	Database
	DBPool
	Reminder
	Center
	Mail
	DBus
)

// DomainCount is the number of log domains.
const DomainCount = int(DBus) + 1

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Client,
		Database,
		DBPool,
		Reminder,
		Center,
		Mail,
		DBus,
	}
} // func AllDomains() []ID
