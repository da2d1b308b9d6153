// /home/krylon/go/src/github.com/blicero/vigil/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 18:48:55 krylon>

package database

import "github.com/blicero/vigil/database/query"

var dbQueries = map[query.ID]string{
	query.ContractAdd: `
INSERT INTO contract (id, title, number, kind, status, end_date, opening_date, created_at, notification_days, group_id, changed)
VALUES               ( ?,     ?,      ?,    ?,      ?,        ?,            ?,          ?,                 ?,        ?,       ?)
`,
	query.ContractUpdate: `
UPDATE contract
SET
    title = ?,
    number = ?,
    kind = ?,
    status = ?,
    end_date = ?,
    opening_date = ?,
    notification_days = ?,
    group_id = ?,
    changed = ?
WHERE id = ?
`,
	query.ContractDelete: "DELETE FROM contract WHERE id = ?",
	query.ContractGetByID: `
SELECT
    title,
    number,
    kind,
    status,
    end_date,
    opening_date,
    created_at,
    notification_days,
    group_id,
    changed
FROM contract
WHERE id = ?
`,
	query.ContractGetAll: `
SELECT
    id,
    title,
    number,
    kind,
    status,
    end_date,
    opening_date,
    created_at,
    notification_days,
    group_id,
    changed
FROM contract
ORDER BY end_date, title
`,
	query.ContractGetActive: `
SELECT
    id,
    title,
    number,
    kind,
    status,
    end_date,
    opening_date,
    created_at,
    notification_days,
    group_id,
    changed
FROM contract
WHERE status = 0
ORDER BY end_date, title
`,
	query.GroupAdd: "INSERT INTO grp (id, name) VALUES (?, ?)",
	query.GroupGetByID: `
SELECT
    name
FROM grp
WHERE id = ?
`,
	query.GroupGetAll: `
SELECT
    id,
    name
FROM grp
ORDER BY name
`,
	query.MemberAdd: `
INSERT INTO member (id, group_id, name, email)
VALUES             ( ?,        ?,    ?,     ?)
`,
	query.MemberGetByGroup: `
SELECT
    id,
    name,
    email
FROM member
WHERE group_id = ?
ORDER BY name
`,
	query.NotificationAdd: `
INSERT INTO notification (id, category, title, message, contract_id, priority, day_key, is_read, viewed, deleted, timestamp)
VALUES                   ( ?,        ?,     ?,       ?,           ?,        ?,       ?,       ?,      ?,       ?,         ?)
`,
	query.NotificationGetByID: `
SELECT
    category,
    title,
    message,
    contract_id,
    priority,
    day_key,
    is_read,
    viewed,
    deleted,
    timestamp
FROM notification
WHERE id = ?
`,
	query.NotificationGetByDay: `
SELECT
    id,
    category,
    title,
    message,
    contract_id,
    priority,
    is_read,
    viewed,
    deleted,
    timestamp
FROM notification
WHERE day_key = ?
ORDER BY priority DESC, timestamp
`,
	query.NotificationGetAll: `
SELECT
    id,
    category,
    title,
    message,
    contract_id,
    priority,
    day_key,
    is_read,
    viewed,
    deleted,
    timestamp
FROM notification
ORDER BY day_key DESC, priority DESC, timestamp
`,
	query.NotificationSetRead: `
UPDATE notification
SET is_read = ?, viewed = viewed AND ?
WHERE id = ?
`,
	query.NotificationSetViewed: `
UPDATE notification
SET is_read = 1, viewed = 1
WHERE id = ?
`,
	query.NotificationSetDeleted: `
UPDATE notification
SET deleted = ?
WHERE id = ?
`,
	query.NotificationMarkAllRead: `
UPDATE notification
SET is_read = 1
WHERE day_key = ? AND deleted = 0
`,
	query.NotificationMarkAllViewed: `
UPDATE notification
SET is_read = 1, viewed = 1
WHERE day_key = ? AND deleted = 0
`,
	query.NotificationPurgeLive: `
DELETE FROM notification
WHERE deleted = 0 AND day_key < ?
`,
	query.NotificationPurgeDeleted: `
DELETE FROM notification
WHERE deleted <> 0 AND day_key < ?
`,
	query.NotificationClear: "DELETE FROM notification",
	query.SentLogAdd: `
INSERT INTO sent_log (contract_id, recipient, day_key, sent_at)
VALUES               (          ?,         ?,       ?,       ?)
`,
	query.SentLogSeen: `
SELECT COUNT(*)
FROM sent_log
WHERE contract_id = ? AND recipient = ? AND day_key = ?
`,
	query.SentLogPurge: "DELETE FROM sent_log WHERE day_key < ?",
	query.ScheduleAdd: `
INSERT INTO schedule (user_email, freq, time_of_day, weekday, day_of_month, enabled, changed)
VALUES               (         ?,    ?,           ?,       ?,            ?,       ?,       ?)
`,
	query.ScheduleUpdate: `
UPDATE schedule
SET
    freq = ?,
    time_of_day = ?,
    weekday = ?,
    day_of_month = ?,
    enabled = ?,
    changed = ?
WHERE id = ?
`,
	query.ScheduleDelete: "DELETE FROM schedule WHERE id = ?",
	query.ScheduleGetAll: `
SELECT
    id,
    user_email,
    freq,
    time_of_day,
    weekday,
    day_of_month,
    enabled,
    changed
FROM schedule
ORDER BY user_email
`,
}
