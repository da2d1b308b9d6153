// /home/krylon/go/src/github.com/blicero/vigil/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 11:40:19 krylon>

// Package backend implements the server half of the application: the
// part that owns the database, evaluates reminders on a schedule, and
// sends mail.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/database"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/mail"
	"github.com/blicero/vigil/reminder"
	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
)

const (
	batchCheck       = time.Second * 30
	scheduleCheck    = time.Second * 20
	sentLogRetention = 30 // days
)

// Daemon is the centerpiece of the backend, coordinating between the
// database, the reminder engine, and the clients.
type Daemon struct {
	log        *log.Logger
	pool       *database.Pool
	cfg        *Config
	evaluator  *reminder.Evaluator
	transport  mail.Transport
	lock       sync.RWMutex
	active     bool
	web        http.Server
	router     *mux.Router
	dnssd      *zeroconf.Server
	listenAddr string
	hostname   string
	idLock     sync.Mutex
	idCnt      int64
	repLock    sync.RWMutex
	lastReport *reminder.Report
	lastBatch  string // day key of the last daily batch run
	lastSched  string // minute ("HH:MM") the schedule poll last fired for
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is
// required.
func Summon(addr string) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			listenAddr: addr,
			active:     true,
			router:     mux.NewRouter(),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.cfg, err = LoadConfig(); err != nil {
		d.log.Printf("[ERROR] Cannot load configuration: %s\n",
			err.Error())
		return nil, err
	} else if d.pool, err = database.NewPool(d.cfg.PoolSize); err != nil {
		d.log.Printf("[ERROR] Cannot initialize database pool: %s\n",
			err.Error())
		return nil, err
	} else if d.evaluator, err = reminder.NewEvaluator(nil); err != nil {
		d.log.Printf("[ERROR] Cannot create Evaluator: %s\n",
			err.Error())
		return nil, err
	} else if d.transport, err = mail.NewHTTPTransport(d.cfg.MailEndpoint, d.cfg.MailAPIKey); err != nil {
		d.log.Printf("[ERROR] Cannot create mail transport: %s\n",
			err.Error())
		return nil, err
	}

	if addr == "" {
		d.listenAddr = d.cfg.ListenAddr
	}

	if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[ERROR] Cannot determine hostname: %s\n",
			err.Error())
		d.hostname = "localhost"
	}

	d.web.Addr = d.listenAddr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	if err = d.initDNSSd(); err != nil {
		// We can live without DNS-SD, clients just have to be told
		// the address.
		d.log.Printf("[WARN] DNS-SD registration failed: %s\n",
			err.Error())
	}

	go d.batchLoop()
	go d.scheduleLoop()
	go d.serveHTTP()

	return d, nil
} // func Summon(addr string) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut
// down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.shutdownDNSSd()

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

// batchLoop runs the daily reminder batch once per day at the
// configured time of day.
func (d *Daemon) batchLoop() {
	defer d.log.Println("[TRACE] Quitting batchLoop")

	var tick = time.NewTicker(batchCheck)
	defer tick.Stop()

	for d.IsAlive() {
		<-tick.C

		var (
			now    = time.Now()
			dayKey = common.DayKey(now)
		)

		if now.Format("15:04") != d.cfg.BatchTime {
			continue
		} else if d.lastBatch == dayKey {
			continue
		}

		d.lastBatch = dayKey

		if _, err := d.RunTick(now); err != nil {
			d.log.Printf("[ERROR] Daily reminder batch failed: %s\n",
				err.Error())
		}
	}
} // func (d *Daemon) batchLoop()

// scheduleLoop polls the per-user schedules and sends each user their
// digest when their schedule fires.
func (d *Daemon) scheduleLoop() {
	defer d.log.Println("[TRACE] Quitting scheduleLoop")

	var tick = time.NewTicker(scheduleCheck)
	defer tick.Stop()

	for d.IsAlive() {
		<-tick.C

		var (
			now    = time.Now()
			minute = now.Format("15:04")
		)

		if minute == d.lastSched {
			continue
		}

		d.lastSched = minute

		if err := d.runSchedules(now); err != nil {
			d.log.Printf("[ERROR] Schedule poll failed: %s\n",
				err.Error())
		}
	}
} // func (d *Daemon) scheduleLoop()

// RunTick performs one full evaluation-and-dispatch pass: load the
// active Contracts, find the ones crossing a notification boundary
// today, and mail their recipient groups. A failure to load the
// Contracts aborts the whole tick; the caller may simply try again on
// the next one. Running RunTick twice on the same day is harmless,
// the sent log suppresses duplicate mail.
func (d *Daemon) RunTick(now time.Time) (*reminder.Report, error) {
	var (
		err error
		db  = d.pool.Get()
	)
	defer d.pool.Put(db)

	var list, lerr = db.ContractGetActive()

	if lerr != nil {
		d.log.Printf("[ERROR] Cannot load Contracts, aborting tick: %s\n",
			lerr.Error())
		return nil, lerr
	}

	var matches = d.evaluator.Evaluate(now, list)

	var (
		resolver   *reminder.Resolver
		dispatcher *reminder.Dispatcher
	)

	if resolver, err = reminder.NewResolver(db); err != nil {
		return nil, err
	} else if dispatcher, err = reminder.NewDispatcher(resolver, d.transport, db); err != nil {
		return nil, err
	}

	var report = dispatcher.Dispatch(now, matches)

	d.repLock.Lock()
	d.lastReport = &report
	d.repLock.Unlock()

	// The sent log only has to cover the current day, but we keep a few
	// weeks for post-mortems.
	var cutoff = common.DayKey(now.AddDate(0, 0, -sentLogRetention))

	if err = db.SentLogPurge(cutoff); err != nil {
		d.log.Printf("[WARN] Cannot purge sent log entries before %s: %s\n",
			cutoff,
			err.Error())
	}

	return &report, nil
} // func (d *Daemon) RunTick(now time.Time) (*reminder.Report, error)

// runSchedules checks all per-user schedules against the given time
// and sends a digest to each user whose schedule fires.
// It runs in the background with no one waiting on it, so unlike the
// web handlers it waits for a pooled connection rather than opening
// an extra one.
func (d *Daemon) runSchedules(now time.Time) error {
	var db = d.pool.GetNoOpen()
	defer d.pool.Put(db)

	var schedules, err = db.ScheduleGetAll()

	if err != nil {
		d.log.Printf("[ERROR] Cannot load Schedules: %s\n",
			err.Error())
		return err
	}

	for idx := range schedules {
		var s = &schedules[idx]

		if !s.IsDue(now) {
			continue
		}

		d.log.Printf("[INFO] Schedule for %s fires\n",
			s.UserEmail)

		if err = d.runUserDigest(db, now, s.UserEmail); err != nil {
			d.log.Printf("[ERROR] Cannot send digest to %s: %s\n",
				s.UserEmail,
				err.Error())
		}
	}

	return nil
} // func (d *Daemon) runSchedules(now time.Time) error

// runUserDigest mails today's matched Contracts to a single user,
// regardless of group membership. The sent log applies here, too, so
// a user whose schedule somehow fires twice a day still gets each
// reminder only once.
func (d *Daemon) runUserDigest(db *database.Database, now time.Time, email string) error {
	var list, err = db.ContractGetActive()

	if err != nil {
		return err
	}

	var (
		dayKey  = common.DayKey(now)
		matches = d.evaluator.Evaluate(now, list)
	)

	for idx := range matches {
		var (
			m    = &matches[idx]
			seen bool
		)

		if seen, err = db.SentLogSeen(m.Contract.ID, email, dayKey); err != nil {
			d.log.Printf("[ERROR] Cannot check sent log for %s/%s: %s\n",
				m.Contract.ID,
				email,
				err.Error())
		} else if seen {
			continue
		}

		var subject, body = reminder.FormatReminder(m)
		var msg = mail.Message{
			To:      email,
			Subject: subject,
			HTML:    body,
		}

		if err = d.transport.Send(&msg); err != nil {
			d.log.Printf("[ERROR] Cannot send reminder for %q to %s: %s\n",
				m.Contract.Title,
				email,
				err.Error())
			continue
		}

		if err = db.SentLogAdd(m.Contract.ID, email, dayKey); err != nil {
			d.log.Printf("[ERROR] Cannot record sent reminder %s/%s: %s\n",
				m.Contract.ID,
				email,
				err.Error())
		}
	}

	return nil
} // func (d *Daemon) runUserDigest(db *database.Database, now time.Time, email string) error

// LastReport returns the report of the most recent dispatch run, or
// nil if none has happened yet.
func (d *Daemon) LastReport() *reminder.Report {
	d.repLock.RLock()
	var rep = d.lastReport
	d.repLock.RUnlock()

	return rep
} // func (d *Daemon) LastReport() *reminder.Report

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
