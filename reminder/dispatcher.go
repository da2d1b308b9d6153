// /home/krylon/go/src/github.com/blicero/vigil/reminder/dispatcher.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 19:02:17 krylon>

package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/mail"
)

// SentLog remembers which (Contract, recipient, day) reminders have
// already gone out, so running the same tick twice on one day does
// not send anybody the same mail twice.
// *database.Database satisfies this interface.
type SentLog interface {
	SentLogSeen(contractID, recipient, dayKey string) (bool, error)
	SentLogAdd(contractID, recipient, dayKey string) error
}

// Failure describes one failed delivery attempt.
type Failure struct {
	ContractID string
	Recipient  string
	Message    string
}

// Report sums up one dispatch run. It is kept for observability only
// and is not persisted.
type Report struct {
	Timestamp time.Time
	DayKey    string
	Matched   int
	Attempted int
	Succeeded int
	Failed    int
	Skipped   int
	Failures  []Failure
}

func (r *Report) String() string {
	return fmt.Sprintf("Report{ Day: %s, Matched: %d, Attempted: %d, Succeeded: %d, Failed: %d, Skipped: %d }",
		r.DayKey,
		r.Matched,
		r.Attempted,
		r.Succeeded,
		r.Failed,
		r.Skipped)
} // func (r *Report) String() string

// Dispatcher fans matched Contracts out to their recipients.
type Dispatcher struct {
	log       *log.Logger
	resolver  *Resolver
	transport mail.Transport
	sentlog   SentLog
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(resolver *Resolver, transport mail.Transport, sentlog SentLog) (*Dispatcher, error) {
	var (
		err error
		d   = &Dispatcher{
			resolver:  resolver,
			transport: transport,
			sentlog:   sentlog,
		}
	)

	if d.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	}

	return d, nil
} // func NewDispatcher(resolver *Resolver, transport mail.Transport, sentlog SentLog) (*Dispatcher, error)

// Dispatch sends one reminder mail per (Match, Recipient). Sends are
// independent: one recipient's failure is logged and counted, the
// remaining recipients and Matches are still processed. Deliveries
// already recorded in the SentLog for today are skipped.
func (d *Dispatcher) Dispatch(today time.Time, matches []Match) Report {
	var (
		dayKey = common.DayKey(today)
		report = Report{
			Timestamp: time.Now(),
			DayKey:    dayKey,
			Matched:   len(matches),
		}
	)

	for idx := range matches {
		var (
			m = &matches[idx]
			c = &m.Contract
		)

		if c.GroupID == "" {
			// A Contract without a recipient group silently gets no
			// mail at all. Arguably that deserves at least a warning,
			// so it gets one.
			d.log.Printf("[WARN] Contract %s (%q) has no recipient group, nobody will be notified\n",
				c.ID,
				c.Title)
			continue
		}

		var recipients = d.resolver.Resolve(c.GroupID)

		if len(recipients) == 0 {
			d.log.Printf("[INFO] Group %s of Contract %q has no members\n",
				c.GroupID,
				c.Title)
			continue
		}

		var subject, body = FormatReminder(m)

		for ridx := range recipients {
			var (
				err  error
				seen bool
				rcpt = &recipients[ridx]
			)

			if seen, err = d.sentlog.SentLogSeen(c.ID, rcpt.Email, dayKey); err != nil {
				d.log.Printf("[ERROR] Cannot check sent log for %s/%s: %s\n",
					c.ID,
					rcpt.Email,
					err.Error())
				// If in doubt, send. A duplicate mail beats a missed
				// deadline.
			} else if seen {
				d.log.Printf("[DEBUG] Reminder for %s already went to %s today\n",
					c.ID,
					rcpt.Email)
				report.Skipped++
				continue
			}

			report.Attempted++

			var msg = mail.Message{
				To:      rcpt.Email,
				Subject: subject,
				HTML:    body,
			}

			if err = d.transport.Send(&msg); err != nil {
				d.log.Printf("[ERROR] Cannot send reminder for %q to %s: %s\n",
					c.Title,
					rcpt.Email,
					err.Error())
				report.Failed++
				report.Failures = append(report.Failures, Failure{
					ContractID: c.ID,
					Recipient:  rcpt.Email,
					Message:    err.Error(),
				})
				continue
			}

			report.Succeeded++

			if err = d.sentlog.SentLogAdd(c.ID, rcpt.Email, dayKey); err != nil {
				d.log.Printf("[ERROR] Cannot record sent reminder %s/%s: %s\n",
					c.ID,
					rcpt.Email,
					err.Error())
			}
		}
	}

	d.log.Printf("[INFO] %s\n", report.String())

	return report
} // func (d *Dispatcher) Dispatch(today time.Time, matches []Match) Report

// FormatReminder renders the subject and HTML body of a reminder mail.
func FormatReminder(m *Match) (string, string) {
	var (
		c       = &m.Contract
		subject string
		when    string
	)

	switch {
	case m.DaysUntil > 1:
		when = fmt.Sprintf("in %d days", m.DaysUntil)
	case m.DaysUntil == 1:
		when = "tomorrow"
	case m.DaysUntil == 0:
		when = "today"
	case m.DaysUntil == -1:
		when = "yesterday"
	default:
		when = fmt.Sprintf("%d days ago", -m.DaysUntil)
	}

	if m.DaysUntil >= 0 {
		subject = fmt.Sprintf("[%s] %s %s is due %s",
			common.AppName,
			c.Kind,
			c.Number,
			when)
	} else {
		subject = fmt.Sprintf("[%s] %s %s was due %s",
			common.AppName,
			c.Kind,
			c.Number,
			when)
	}

	var target, _ = c.TargetDate()

	var body = fmt.Sprintf(
		`<p>%s <strong>%s</strong> (%s) reaches its deadline on %s (%s).</p>
<p>Please review it in time.</p>`,
		c.Kind,
		c.Title,
		c.Number,
		target.Format(common.DayKeyFormat),
		when)

	return subject, body
} // func FormatReminder(m *Match) (string, string)
