// /home/krylon/go/src/github.com/blicero/vigil/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 14:02:11 krylon>

package backend

import (
	"fmt"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/database"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/reminder"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/contract/all", d.handleContractGetAll)
	d.router.HandleFunc("/contract/active", d.handleContractGetActive)
	d.router.HandleFunc("/contract/add", d.handleContractAdd)
	d.router.HandleFunc("/contract/{id}/delete", d.handleContractDelete)
	d.router.HandleFunc("/group/all", d.handleGroupGetAll)
	d.router.HandleFunc("/group/add", d.handleGroupAdd)
	d.router.HandleFunc("/notification/day/{day}", d.handleNotificationGetDay)
	d.router.HandleFunc("/notification/day/{day}/unread", d.handleNotificationUnreadCount)
	d.router.HandleFunc("/notification/day/{day}/read_all", d.handleNotificationMarkAllRead)
	d.router.HandleFunc("/notification/day/{day}/viewed_all", d.handleNotificationMarkAllViewed)
	d.router.HandleFunc("/notification/{id}/read", d.handleNotificationRead)
	d.router.HandleFunc("/notification/{id}/unread", d.handleNotificationUnread)
	d.router.HandleFunc("/notification/{id}/viewed", d.handleNotificationViewed)
	d.router.HandleFunc("/notification/{id}/delete", d.handleNotificationDelete)
	d.router.HandleFunc("/notification/{id}/restore", d.handleNotificationRestore)
	d.router.HandleFunc("/reminder/run", d.handleReminderRun)
	d.router.HandleFunc("/reminder/report", d.handleReminderReport)
	d.router.HandleFunc("/schedule/all", d.handleScheduleGetAll)
	d.router.HandleFunc("/schedule/add", d.handleScheduleAdd)
	d.router.HandleFunc("/schedule/{id:(?:\\d+)}/delete", d.handleScheduleDelete)

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web frontend is going online at %s\n", d.web.Addr)
	http.Handle("/", d.router)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

func (d *Daemon) handleContractGetAll(w http.ResponseWriter, r *http.Request) {
	d.handleContractList(w, r, false)
} // func (d *Daemon) handleContractGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleContractGetActive(w http.ResponseWriter, r *http.Request) {
	d.handleContractList(w, r, true)
} // func (d *Daemon) handleContractGetActive(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleContractList(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		db        *database.Database
		contracts []objects.Contract
		buf       []byte
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if activeOnly {
		contracts, err = db.ContractGetActive()
	} else {
		contracts, err = db.ContractGetAll()
	}

	if err != nil {
		d.log.Printf("[ERROR] Cannot load Contracts: %s\n",
			err.Error())

	} else if buf, err = ffjson.Marshal(contracts); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Contract list: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleContractList(w http.ResponseWriter, r *http.Request, activeOnly bool)

func (d *Daemon) handleContractAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err                    error
		db                     *database.Database
		c                      objects.Contract
		kstr, estr, ostr, dstr string
		msg                    string
		response               = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	c.Title = r.PostFormValue("title")
	c.Number = r.PostFormValue("number")
	c.GroupID = r.PostFormValue("group")
	kstr = r.PostFormValue("kind")
	estr = r.PostFormValue("end_date")
	ostr = r.PostFormValue("opening_date")
	dstr = r.PostFormValue("days")

	switch strings.ToLower(kstr) {
	case "", "contract":
		c.Kind = objects.KindContract
	case "process":
		c.Kind = objects.KindProcess
	default:
		msg = fmt.Sprintf("Invalid Contract kind %q", kstr)
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if estr != "" {
		if c.EndDate, err = time.ParseInLocation(common.DayKeyFormat, estr, time.Local); err != nil {
			msg = fmt.Sprintf("Cannot parse end date %q: %s",
				estr,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}
	}

	if ostr != "" {
		if c.OpeningDate, err = time.ParseInLocation(common.DayKeyFormat, ostr, time.Local); err != nil {
			msg = fmt.Sprintf("Cannot parse opening date %q: %s",
				ostr,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}
	}

	if c.NotificationDays, err = parseDayList(dstr); err != nil {
		msg = fmt.Sprintf("Cannot parse notification days %q: %s",
			dstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	c.ID = common.GetUUID()
	c.CreatedAt = time.Now()
	c.Changed = c.CreatedAt

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.ContractAdd(&c); err != nil {
		msg = fmt.Sprintf("Cannot add Contract %q to database: %s",
			c.Title,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = c.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleContractAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleContractDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err     error
		vars    map[string]string
		id, msg string
		db      *database.Database
		c       *objects.Contract
		res     = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)

	id = vars["id"]

	db = d.pool.Get()
	defer d.pool.Put(db)

	if c, err = db.ContractGetByID(id); err != nil {
		msg = fmt.Sprintf("Cannot lookup Contract %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if c == nil {
		msg = fmt.Sprintf("Did not find Contract %s in database", id)
		d.log.Printf("[INFO] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if err = db.ContractDelete(c); err != nil {
		msg = fmt.Sprintf("Failed to delete Contract %s (%q): %s",
			id,
			c.Title,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	res.Message = fmt.Sprintf("Contract %s (%q) was deleted",
		id,
		c.Title)
	res.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleContractDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleGroupGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err    error
		db     *database.Database
		groups []objects.Group
		buf    []byte
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if groups, err = db.GroupGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Groups: %s\n",
			err.Error())

	} else if buf, err = ffjson.Marshal(groups); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Group list: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleGroupGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleGroupAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		db       *database.Database
		g        objects.Group
		mstr     string
		msg      string
		members  []*mail.Address
		response = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	g.Name = r.PostFormValue("name")
	mstr = r.PostFormValue("members")

	if g.Name == "" {
		msg = "Group needs a name"
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if mstr != "" {
		if members, err = mail.ParseAddressList(mstr); err != nil {
			msg = fmt.Sprintf("Cannot parse member list %q: %s",
				mstr,
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}

		g.Members = make([]objects.Recipient, len(members))

		for idx, m := range members {
			g.Members[idx] = objects.Recipient{
				Name:  m.Name,
				Email: m.Address,
			}
		}
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.GroupAdd(&g); err != nil {
		msg = fmt.Sprintf("Cannot add Group %q to database: %s",
			g.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = g.ID
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleGroupAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationGetDay(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err     error
		db      *database.Database
		records []objects.NotificationRecord
		buf     []byte
		day     = mux.Vars(r)["day"]
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if records, err = db.NotificationGetByDay(day); err != nil {
		d.log.Printf("[ERROR] Cannot load Notifications for %s: %s\n",
			day,
			err.Error())

	} else if buf, err = ffjson.Marshal(records); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Notification list: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleNotificationGetDay(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationUnreadCount(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err     error
		db      *database.Database
		records []objects.NotificationRecord
		day     = mux.Vars(r)["day"]
		res     = objects.Response{ID: d.getID()}
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if records, err = db.NotificationGetByDay(day); err != nil {
		res.Message = fmt.Sprintf("Cannot load Notifications for %s: %s",
			day,
			err.Error())
		d.log.Printf("[ERROR] %s\n", res.Message)
		goto SEND_RESPONSE
	}

	for idx := range records {
		if !records[idx].Read && !records[idx].Deleted {
			res.Count++
		}
	}

	res.Status = true
	res.Message = day

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationUnreadCount(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationMarkAllRead(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationMarkAll(w, r, false)
} // func (d *Daemon) handleNotificationMarkAllRead(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationMarkAllViewed(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationMarkAll(w, r, true)
} // func (d *Daemon) handleNotificationMarkAllViewed(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationMarkAll(w http.ResponseWriter, r *http.Request, viewed bool) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		db  *database.Database
		cnt int64
		day = mux.Vars(r)["day"]
		res = objects.Response{ID: d.getID()}
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if viewed {
		cnt, err = db.NotificationMarkAllViewed(day)
	} else {
		cnt, err = db.NotificationMarkAllRead(day)
	}

	if err != nil {
		res.Message = fmt.Sprintf("Cannot mark Notifications for %s: %s",
			day,
			err.Error())
		d.log.Printf("[ERROR] %s\n", res.Message)
		goto SEND_RESPONSE
	}

	res.Status = true
	res.Count = cnt
	res.Message = fmt.Sprintf("%d Notifications updated", cnt)

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationMarkAll(w http.ResponseWriter, r *http.Request, viewed bool)

func (d *Daemon) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationFlag(w, r, "read")
} // func (d *Daemon) handleNotificationRead(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationUnread(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationFlag(w, r, "unread")
} // func (d *Daemon) handleNotificationUnread(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationViewed(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationFlag(w, r, "viewed")
} // func (d *Daemon) handleNotificationViewed(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationDelete(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationFlag(w, r, "delete")
} // func (d *Daemon) handleNotificationDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationRestore(w http.ResponseWriter, r *http.Request) {
	d.handleNotificationFlag(w, r, "restore")
} // func (d *Daemon) handleNotificationRestore(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationFlag(w http.ResponseWriter, r *http.Request, action string) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err     error
		db      *database.Database
		rec     *objects.NotificationRecord
		id, msg string
		res     = objects.Response{ID: d.getID()}
	)

	id = mux.Vars(r)["id"]

	db = d.pool.Get()
	defer d.pool.Put(db)

	if rec, err = db.NotificationGetByID(id); err != nil {
		msg = fmt.Sprintf("Cannot lookup Notification %s: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if rec == nil {
		msg = fmt.Sprintf("Did not find Notification %s in database", id)
		d.log.Printf("[INFO] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	switch action {
	case "read":
		err = db.NotificationSetRead(rec, true)
	case "unread":
		err = db.NotificationSetRead(rec, false)
	case "viewed":
		err = db.NotificationSetViewed(rec)
	case "delete":
		err = db.NotificationSetDeleted(rec, true)
	case "restore":
		err = db.NotificationSetDeleted(rec, false)
	default:
		d.log.Printf("[CANTHAPPEN] Unknown Notification action %q\n",
			action)
		res.Message = fmt.Sprintf("Unknown action %q", action)
		goto SEND_RESPONSE
	}

	if err != nil {
		msg = fmt.Sprintf("Cannot mark Notification %s %s: %s",
			id,
			action,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	res.Status = true
	res.Message = fmt.Sprintf("Notification %s is now %s", id, action)

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationFlag(w http.ResponseWriter, r *http.Request, action string)

// handleReminderRun triggers an evaluation-and-dispatch pass outside
// of the daily schedule. Thanks to the sent log it is safe to call
// this repeatedly.
func (d *Daemon) handleReminderRun(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		rep *reminder.Report
		res = objects.Response{ID: d.getID()}
	)

	if rep, err = d.RunTick(time.Now()); err != nil {
		res.Message = fmt.Sprintf("Reminder run failed: %s",
			err.Error())
		goto SEND_RESPONSE
	}

	res.Status = true
	res.Message = rep.String()
	res.Count = int64(rep.Succeeded)

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleReminderRun(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReminderReport(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		buf []byte
		rep = d.LastReport()
	)

	if rep == nil {
		rep = &reminder.Report{}
	}

	if buf, err = ffjson.Marshal(rep); err != nil {
		d.log.Printf("[ERROR] Cannot serialize dispatch report: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleReminderReport(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		db        *database.Database
		schedules []objects.Schedule
		buf       []byte
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if schedules, err = db.ScheduleGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Schedules: %s\n",
			err.Error())

	} else if buf, err = ffjson.Marshal(schedules); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Schedule list: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleScheduleGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err                   error
		db                    *database.Database
		s                     objects.Schedule
		fstr, wstr, mstr, msg string
		n                     int64
		response              = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	s.UserEmail = r.PostFormValue("email")
	s.TimeOfDay = r.PostFormValue("time")
	s.Enabled = true
	fstr = r.PostFormValue("freq")
	wstr = r.PostFormValue("weekday")
	mstr = r.PostFormValue("day_of_month")

	if s.UserEmail == "" {
		msg = "Schedule needs an email address"
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if !timeOfDayPat.MatchString(s.TimeOfDay) {
		msg = fmt.Sprintf("Invalid time of day %q (expect HH:MM)",
			s.TimeOfDay)
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	switch strings.ToLower(fstr) {
	case "", "daily":
		s.Freq = objects.Daily
	case "weekly":
		s.Freq = objects.Weekly
		if n, err = strconv.ParseInt(wstr, 10, 8); err != nil || n < 0 || n > 6 {
			msg = fmt.Sprintf("Invalid weekday %q", wstr)
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}
		s.Weekday = time.Weekday(n)
	case "monthly":
		s.Freq = objects.Monthly
		if n, err = strconv.ParseInt(mstr, 10, 8); err != nil || n < 1 || n > 31 {
			msg = fmt.Sprintf("Invalid day of month %q", mstr)
			d.log.Printf("[ERROR] %s\n", msg)
			response.Message = msg
			goto SEND_RESPONSE
		}
		s.DayOfMonth = int(n)
	default:
		msg = fmt.Sprintf("Invalid frequency %q", fstr)
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.ScheduleAdd(&s); err != nil {
		msg = fmt.Sprintf("Cannot add Schedule for %s to database: %s",
			s.UserEmail,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = strconv.FormatInt(s.ID, 10)
	response.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleScheduleAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		vars       map[string]string
		idstr, msg string
		id         int64
		db         *database.Database
		res        = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)

	idstr = vars["id"]

	if id, err = strconv.ParseInt(idstr, 10, 64); err != nil {
		msg = fmt.Sprintf("Cannot parse ID %q: %s",
			idstr,
			err.Error())
		d.log.Printf("[CANTHAPPEN] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.ScheduleDelete(&objects.Schedule{ID: id}); err != nil {
		msg = fmt.Sprintf("Failed to delete Schedule %d: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	res.Message = fmt.Sprintf("Schedule %d was deleted", id)
	res.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleScheduleDelete(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(res); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Response object %#v: %s\n",
			res,
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response)

// parseDayList parses a comma-separated list of day offsets like
// "1,7,15". An empty string yields nil, which makes the Evaluator
// fall back to the defaults for the Contract's Kind.
func parseDayList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var (
		err    error
		fields = strings.Split(s, ",")
		days   = make([]int, 0, len(fields))
	)

	for _, f := range fields {
		var n int64

		if n, err = strconv.ParseInt(strings.TrimSpace(f), 10, 32); err != nil {
			return nil, err
		}

		days = append(days, int(n))
	}

	return days, nil
} // func parseDayList(s string) ([]int, error)
