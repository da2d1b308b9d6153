// /home/krylon/go/src/github.com/blicero/vigil/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-25 18:50:37 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

type ID uint8

const (
	ContractAdd ID = iota
	ContractUpdate
	ContractDelete
	ContractGetByID
	ContractGetAll
	ContractGetActive
	GroupAdd
	GroupGetByID
	GroupGetAll
	MemberAdd
	MemberGetByGroup
	NotificationAdd
	NotificationGetByID
	NotificationGetByDay
	NotificationGetAll
	NotificationSetRead
	NotificationSetViewed
	NotificationSetDeleted
	NotificationMarkAllRead
	NotificationMarkAllViewed
	NotificationPurgeLive
	NotificationPurgeDeleted
	NotificationClear
	SentLogAdd
	SentLogSeen
	SentLogPurge
	ScheduleAdd
	ScheduleUpdate
	ScheduleDelete
	ScheduleGetAll
)
