// /home/krylon/go/src/github.com/blicero/vigil/objects/priority/priority.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-04-07 21:48:16 krylon>

//go:generate stringer -type=Priority

// Package priority contains symbolic constants for the urgency
// of notifications.
package priority

// Priority describes how urgent a notification is.
// High priority notifications additionally get a desktop alert.
type Priority uint8

const (
	Low Priority = iota
	Medium
	High
)
