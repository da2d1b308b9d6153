// /home/krylon/go/src/github.com/blicero/vigil/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-25 19:07:21 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE contract (
    id                TEXT PRIMARY KEY,
    title             TEXT NOT NULL,
    number            TEXT NOT NULL DEFAULT '',
    kind              INTEGER NOT NULL DEFAULT 0,
    status            INTEGER NOT NULL DEFAULT 0,
    end_date          INTEGER NOT NULL DEFAULT 0, -- Unix timestamp, 0 == not set
    opening_date      INTEGER NOT NULL DEFAULT 0,
    created_at        INTEGER NOT NULL,
    notification_days TEXT NOT NULL DEFAULT '',
    group_id          TEXT NOT NULL DEFAULT '',
    changed           INTEGER NOT NULL
)
`,
	"CREATE INDEX contract_end_idx ON contract (end_date)",
	"CREATE INDEX contract_status_idx ON contract (status)",
	`
CREATE TABLE grp (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL
)
`,
	`
CREATE TABLE member (
    id       TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    name     TEXT NOT NULL DEFAULT '',
    email    TEXT NOT NULL,
    FOREIGN KEY (group_id) REFERENCES grp (id)
        ON DELETE CASCADE
)
`,
	"CREATE INDEX member_group_idx ON member (group_id)",
	`
CREATE TABLE notification (
    id          TEXT PRIMARY KEY,
    category    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    message     TEXT NOT NULL DEFAULT '',
    contract_id TEXT NOT NULL DEFAULT '',
    priority    INTEGER NOT NULL DEFAULT 0,
    day_key     TEXT NOT NULL,
    is_read     INTEGER NOT NULL DEFAULT 0,
    viewed      INTEGER NOT NULL DEFAULT 0,
    deleted     INTEGER NOT NULL DEFAULT 0,
    timestamp   INTEGER NOT NULL
)
`,
	"CREATE INDEX notification_day_idx ON notification (day_key)",
	"CREATE INDEX notification_deleted_idx ON notification (deleted)",
	`
CREATE TABLE sent_log (
    id          INTEGER PRIMARY KEY,
    contract_id TEXT NOT NULL,
    recipient   TEXT NOT NULL,
    day_key     TEXT NOT NULL,
    sent_at     INTEGER NOT NULL,
    UNIQUE (contract_id, recipient, day_key)
)
`,
	"CREATE INDEX sent_log_day_idx ON sent_log (day_key)",
	`
CREATE TABLE schedule (
    id           INTEGER PRIMARY KEY,
    user_email   TEXT NOT NULL,
    freq         INTEGER NOT NULL DEFAULT 0,
    time_of_day  TEXT NOT NULL,
    weekday      INTEGER NOT NULL DEFAULT 0,
    day_of_month INTEGER NOT NULL DEFAULT 1,
    enabled      INTEGER NOT NULL DEFAULT 1,
    changed      INTEGER NOT NULL,
    CHECK (time_of_day LIKE '__:__')
)
`,
}
