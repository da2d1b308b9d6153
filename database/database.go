// /home/krylon/go/src/github.com/blicero/vigil/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 19:12:44 krylon>

// Package database provides the persistence layer of the application.
// It wraps the actual database connection and provides methods
// for all the operations the application performs on the database.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/database/query"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"

	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction
// failed because there is already one in progress.
var ErrTxInProgress = fmt.Errorf("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = fmt.Errorf("There is no transaction in progress")

// If a query returns with an error and the error text is matched by this
// regex, we consider the error as transient and try again after a short
// delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database wraps a database connection and provides the operations on
// the database the application requires.
type Database struct {
	id        int64
	db        *sql.DB
	tx        *sql.Tx
	log       *log.Logger
	path      string
	stmtTable map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not
// exist, yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:      path,
			stmtTable: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			}
			return nil, err
		}
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query:\n%s\n%s\n",
				q,
				err.Error())
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	// I wonder if would make more snese to panic() if something goes wrong

	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.stmtTable {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.stmtTable, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt *sql.Stmt
		ok   bool
		err  error
	)

	if stmt, ok = db.stmtTable[id]; ok {
		return stmt, nil
	}

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.stmtTable[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// Begin begins an explicit transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress yields ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			}

			db.log.Printf("[ERROR] Failed to start transaction: %s\n",
				err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress.
func (db *Database) Rollback() error {
	var err error

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress.
func (db *Database) Commit() error {
	var err error

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Commit() error

///////////////////////////////////////////////////////////////////////////////
//// Contracts ////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// ContractAdd adds a Contract to the database.
func (db *Database) ContractAdd(c *objects.Contract) error {
	const qid query.ID = query.ContractAdd
	var (
		err    error
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if c.ID == "" {
		c.ID = common.GetUUID()
	}

	if c.Changed.IsZero() {
		c.Changed = time.Now()
	}

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			db.log.Printf("[ERROR] Error starting transaction: %s\n",
				err.Error())
			return err
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(
		c.ID,
		c.Title,
		c.Number,
		c.Kind,
		c.Status,
		unixOrZero(c.EndDate),
		unixOrZero(c.OpeningDate),
		c.CreatedAt.Unix(),
		joinDays(c.NotificationDays),
		c.GroupID,
		c.Changed.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot add Contract %q to database: %s\n",
			c.Title,
			err.Error())
		return err
	}

	status = true
	return nil
} // func (db *Database) ContractAdd(c *objects.Contract) error

// ContractUpdate updates the given Contract in the database.
func (db *Database) ContractUpdate(c *objects.Contract) error {
	const qid query.ID = query.ContractUpdate
	var (
		err  error
		stmt *sql.Stmt
	)

	c.Changed = time.Now()

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(
		c.Title,
		c.Number,
		c.Kind,
		c.Status,
		unixOrZero(c.EndDate),
		unixOrZero(c.OpeningDate),
		joinDays(c.NotificationDays),
		c.GroupID,
		c.Changed.Unix(),
		c.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot update Contract %s: %s\n",
			c.ID,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) ContractUpdate(c *objects.Contract) error

// ContractDelete removes the given Contract from the database.
func (db *Database) ContractDelete(c *objects.Contract) error {
	const qid query.ID = query.ContractDelete
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(c.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot delete Contract %s: %s\n",
			c.ID,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) ContractDelete(c *objects.Contract) error

// ContractGetByID looks up a Contract by its ID.
// If no such Contract exists, it returns nil, but no error.
func (db *Database) ContractGetByID(id string) (*objects.Contract, error) {
	const qid query.ID = query.ContractGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query Contract %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	if rows.Next() {
		var (
			c                                   = &objects.Contract{ID: id}
			endstamp, openstamp, cstamp, chstamp int64
			days                                string
		)

		if err = rows.Scan(
			&c.Title,
			&c.Number,
			&c.Kind,
			&c.Status,
			&endstamp,
			&openstamp,
			&cstamp,
			&days,
			&c.GroupID,
			&chstamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		c.EndDate = timeOrZero(endstamp)
		c.OpeningDate = timeOrZero(openstamp)
		c.CreatedAt = time.Unix(cstamp, 0)
		c.Changed = time.Unix(chstamp, 0)
		c.NotificationDays = parseDays(days)

		return c, nil
	}

	return nil, nil
} // func (db *Database) ContractGetByID(id string) (*objects.Contract, error)

// ContractGetAll loads all Contracts from the database.
func (db *Database) ContractGetAll() ([]objects.Contract, error) {
	return db.contractGetList(query.ContractGetAll)
} // func (db *Database) ContractGetAll() ([]objects.Contract, error)

// ContractGetActive loads all Contracts that are not in a terminal state.
func (db *Database) ContractGetActive() ([]objects.Contract, error) {
	return db.contractGetList(query.ContractGetActive)
} // func (db *Database) ContractGetActive() ([]objects.Contract, error)

func (db *Database) contractGetList(qid query.ID) ([]objects.Contract, error) {
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query Contracts (%s): %s\n",
			qid,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var contracts = make([]objects.Contract, 0, 16)

	for rows.Next() {
		var (
			c                                    objects.Contract
			endstamp, openstamp, cstamp, chstamp int64
			days                                 string
		)

		if err = rows.Scan(
			&c.ID,
			&c.Title,
			&c.Number,
			&c.Kind,
			&c.Status,
			&endstamp,
			&openstamp,
			&cstamp,
			&days,
			&c.GroupID,
			&chstamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		c.EndDate = timeOrZero(endstamp)
		c.OpeningDate = timeOrZero(openstamp)
		c.CreatedAt = time.Unix(cstamp, 0)
		c.Changed = time.Unix(chstamp, 0)
		c.NotificationDays = parseDays(days)

		contracts = append(contracts, c)
	}

	return contracts, nil
} // func (db *Database) contractGetList(qid query.ID) ([]objects.Contract, error)

///////////////////////////////////////////////////////////////////////////////
//// Groups ///////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// GroupAdd adds a Group, including its members, to the database.
func (db *Database) GroupAdd(g *objects.Group) error {
	const qid query.ID = query.GroupAdd
	var (
		err    error
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if g.ID == "" {
		g.ID = common.GetUUID()
	}

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			db.log.Printf("[ERROR] Error starting transaction: %s\n",
				err.Error())
			return err
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(g.ID, g.Name); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot add Group %q: %s\n",
			g.Name,
			err.Error())
		return err
	}

	var mstmt *sql.Stmt

	if mstmt, err = db.getQuery(query.MemberAdd); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			query.MemberAdd,
			err.Error())
		return err
	}

	mstmt = tx.Stmt(mstmt)

	for idx := range g.Members {
		var m = &g.Members[idx]

		if m.ID == "" {
			m.ID = common.GetUUID()
		}

		if _, err = mstmt.Exec(m.ID, g.ID, m.Name, m.Email); err != nil {
			db.log.Printf("[ERROR] Cannot add member %s to Group %q: %s\n",
				m.Email,
				g.Name,
				err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) GroupAdd(g *objects.Group) error

// GroupGetByID looks up a Group, including its member list,
// by the Group's ID. A missing Group yields nil, not an error.
func (db *Database) GroupGetByID(id string) (*objects.Group, error) {
	const qid query.ID = query.GroupGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query Group %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	var g *objects.Group

	if rows.Next() {
		g = &objects.Group{ID: id}

		if err = rows.Scan(&g.Name); err != nil {
			rows.Close() // nolint: errcheck
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}
	}

	rows.Close() // nolint: errcheck

	if g == nil {
		return nil, nil
	} else if g.Members, err = db.memberGetByGroup(id); err != nil {
		return nil, err
	}

	return g, nil
} // func (db *Database) GroupGetByID(id string) (*objects.Group, error)

// GroupGetAll returns all Groups, including their member lists.
func (db *Database) GroupGetAll() ([]objects.Group, error) {
	const qid query.ID = query.GroupGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query all Groups: %s\n",
			err.Error())
		return nil, err
	}

	var groups = make([]objects.Group, 0, 8)

	for rows.Next() {
		var g objects.Group

		if err = rows.Scan(&g.ID, &g.Name); err != nil {
			rows.Close() // nolint: errcheck
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		groups = append(groups, g)
	}

	rows.Close() // nolint: errcheck

	for idx := range groups {
		if groups[idx].Members, err = db.memberGetByGroup(groups[idx].ID); err != nil {
			return nil, err
		}
	}

	return groups, nil
} // func (db *Database) GroupGetAll() ([]objects.Group, error)

func (db *Database) memberGetByGroup(groupID string) ([]objects.Recipient, error) {
	const qid query.ID = query.MemberGetByGroup
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(groupID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query members of Group %s: %s\n",
			groupID,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var members = make([]objects.Recipient, 0, 8)

	for rows.Next() {
		var m objects.Recipient

		if err = rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		members = append(members, m)
	}

	return members, nil
} // func (db *Database) memberGetByGroup(groupID string) ([]objects.Recipient, error)

///////////////////////////////////////////////////////////////////////////////
//// Notifications ////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// NotificationAdd adds a NotificationRecord to the database.
func (db *Database) NotificationAdd(n *objects.NotificationRecord) error {
	const qid query.ID = query.NotificationAdd
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(
		n.ID,
		n.Category,
		n.Title,
		n.Message,
		n.ContractID,
		n.Priority,
		n.DayKey,
		n.Read,
		n.Viewed,
		n.Deleted,
		n.Timestamp.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot add notification %s: %s\n",
			n.ID,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) NotificationAdd(n *objects.NotificationRecord) error

// NotificationGetByID looks up a single NotificationRecord.
// A missing record yields nil, not an error.
func (db *Database) NotificationGetByID(id string) (*objects.NotificationRecord, error) {
	const qid query.ID = query.NotificationGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query notification %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	if rows.Next() {
		var (
			n     = &objects.NotificationRecord{ID: id}
			stamp int64
		)

		if err = rows.Scan(
			&n.Category,
			&n.Title,
			&n.Message,
			&n.ContractID,
			&n.Priority,
			&n.DayKey,
			&n.Read,
			&n.Viewed,
			&n.Deleted,
			&stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		n.Timestamp = time.Unix(stamp, 0)
		return n, nil
	}

	return nil, nil
} // func (db *Database) NotificationGetByID(id string) (*objects.NotificationRecord, error)

// NotificationGetByDay loads all NotificationRecords generated for the
// given day, tombstones included.
func (db *Database) NotificationGetByDay(dayKey string) ([]objects.NotificationRecord, error) {
	const qid query.ID = query.NotificationGetByDay
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(dayKey); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query notifications for %s: %s\n",
			dayKey,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var records = make([]objects.NotificationRecord, 0, 16)

	for rows.Next() {
		var (
			n     objects.NotificationRecord
			stamp int64
		)

		n.DayKey = dayKey

		if err = rows.Scan(
			&n.ID,
			&n.Category,
			&n.Title,
			&n.Message,
			&n.ContractID,
			&n.Priority,
			&n.Read,
			&n.Viewed,
			&n.Deleted,
			&stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		n.Timestamp = time.Unix(stamp, 0)
		records = append(records, n)
	}

	return records, nil
} // func (db *Database) NotificationGetByDay(dayKey string) ([]objects.NotificationRecord, error)

// NotificationGetAll loads all NotificationRecords from the database.
func (db *Database) NotificationGetAll() ([]objects.NotificationRecord, error) {
	const qid query.ID = query.NotificationGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query all notifications: %s\n",
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var records = make([]objects.NotificationRecord, 0, 32)

	for rows.Next() {
		var (
			n     objects.NotificationRecord
			stamp int64
		)

		if err = rows.Scan(
			&n.ID,
			&n.Category,
			&n.Title,
			&n.Message,
			&n.ContractID,
			&n.Priority,
			&n.DayKey,
			&n.Read,
			&n.Viewed,
			&n.Deleted,
			&stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		n.Timestamp = time.Unix(stamp, 0)
		records = append(records, n)
	}

	return records, nil
} // func (db *Database) NotificationGetAll() ([]objects.NotificationRecord, error)

// NotificationSetRead sets or clears the read flag on a record.
func (db *Database) NotificationSetRead(n *objects.NotificationRecord, read bool) error {
	const qid query.ID = query.NotificationSetRead
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(read, read, n.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot update read flag on notification %s: %s\n",
			n.ID,
			err.Error())
		return err
	}

	n.Read = read
	if !read {
		n.Viewed = false
	}

	return nil
} // func (db *Database) NotificationSetRead(n *objects.NotificationRecord, read bool) error

// NotificationSetViewed marks a record as viewed.
// Viewing implies reading, so the read flag is set as well.
func (db *Database) NotificationSetViewed(n *objects.NotificationRecord) error {
	const qid query.ID = query.NotificationSetViewed
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(n.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot mark notification %s as viewed: %s\n",
			n.ID,
			err.Error())
		return err
	}

	n.Read = true
	n.Viewed = true
	return nil
} // func (db *Database) NotificationSetViewed(n *objects.NotificationRecord) error

// NotificationSetDeleted sets or clears the tombstone flag on a record.
func (db *Database) NotificationSetDeleted(n *objects.NotificationRecord, deleted bool) error {
	var err error

	if err = db.notificationSetFlag(query.NotificationSetDeleted, n.ID, deleted); err != nil {
		return err
	}

	n.Deleted = deleted
	return nil
} // func (db *Database) NotificationSetDeleted(n *objects.NotificationRecord, deleted bool) error

func (db *Database) notificationSetFlag(qid query.ID, id string, flag bool) error {
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(flag, id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot update flag (%s) on notification %s: %s\n",
			qid,
			id,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) notificationSetFlag(qid query.ID, id string, flag bool) error

// NotificationMarkAllRead marks all live records of the given day as
// read. It returns the number of affected records.
func (db *Database) NotificationMarkAllRead(dayKey string) (int64, error) {
	return db.notificationMarkAll(query.NotificationMarkAllRead, dayKey)
} // func (db *Database) NotificationMarkAllRead(dayKey string) (int64, error)

// NotificationMarkAllViewed marks all live records of the given day as
// viewed (and therefore read). It returns the number of affected records.
func (db *Database) NotificationMarkAllViewed(dayKey string) (int64, error) {
	return db.notificationMarkAll(query.NotificationMarkAllViewed, dayKey)
} // func (db *Database) NotificationMarkAllViewed(dayKey string) (int64, error)

func (db *Database) notificationMarkAll(qid query.ID, dayKey string) (int64, error) {
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return 0, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(dayKey); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot execute %s for %s: %s\n",
			qid,
			dayKey,
			err.Error())
		return 0, err
	}

	var cnt int64

	if cnt, err = res.RowsAffected(); err != nil {
		db.log.Printf("[ERROR] Cannot get number of affected rows: %s\n",
			err.Error())
		return 0, err
	}

	return cnt, nil
} // func (db *Database) notificationMarkAll(qid query.ID, dayKey string) (int64, error)

// NotificationPurge removes records that have fallen out of their
// retention window: live records generated before liveCutoff and
// tombstones generated before tombCutoff (both are day keys).
func (db *Database) NotificationPurge(liveCutoff, tombCutoff string) error {
	var (
		err  error
		qids = [2]query.ID{query.NotificationPurgeLive, query.NotificationPurgeDeleted}
		args = [2]string{liveCutoff, tombCutoff}
	)

	for i, qid := range qids {
		var stmt *sql.Stmt

	PREPARE_QUERY:
		if stmt, err = db.getQuery(qid); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto PREPARE_QUERY
			}

			db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
				qid,
				err.Error())
			return err
		}

		if db.tx != nil {
			stmt = db.tx.Stmt(stmt)
		}

	EXEC_QUERY:
		if _, err = stmt.Exec(args[i]); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto EXEC_QUERY
			}

			db.log.Printf("[ERROR] Cannot execute %s: %s\n",
				qid,
				err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) NotificationPurge(liveCutoff, tombCutoff string) error

// NotificationClear removes all notification records.
func (db *Database) NotificationClear() error {
	const qid query.ID = query.NotificationClear
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot clear notifications: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) NotificationClear() error

///////////////////////////////////////////////////////////////////////////////
//// Sent log /////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// SentLogAdd records that a reminder mail for the given Contract was
// sent to the given recipient on the given day.
func (db *Database) SentLogAdd(contractID, recipient, dayKey string) error {
	const qid query.ID = query.SentLogAdd
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(contractID, recipient, dayKey, time.Now().Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot log sent reminder (%s/%s/%s): %s\n",
			contractID,
			recipient,
			dayKey,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) SentLogAdd(contractID, recipient, dayKey string) error

// SentLogSeen returns true if a reminder mail for the given Contract
// already went out to the given recipient on the given day.
func (db *Database) SentLogSeen(contractID, recipient, dayKey string) (bool, error) {
	const qid query.ID = query.SentLogSeen
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return false, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var cnt int64

EXEC_QUERY:
	if err = stmt.QueryRow(contractID, recipient, dayKey).Scan(&cnt); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query sent log (%s/%s/%s): %s\n",
			contractID,
			recipient,
			dayKey,
			err.Error())
		return false, err
	}

	return cnt > 0, nil
} // func (db *Database) SentLogSeen(contractID, recipient, dayKey string) (bool, error)

// SentLogPurge removes sent log entries older than the given day key.
func (db *Database) SentLogPurge(cutoff string) error {
	const qid query.ID = query.SentLogPurge
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(cutoff); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot purge sent log before %s: %s\n",
			cutoff,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) SentLogPurge(cutoff string) error

///////////////////////////////////////////////////////////////////////////////
//// Schedules ////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// ScheduleAdd adds a user's reminder Schedule to the database.
func (db *Database) ScheduleAdd(s *objects.Schedule) error {
	const qid query.ID = query.ScheduleAdd
	var (
		err  error
		stmt *sql.Stmt
	)

	s.Changed = time.Now()

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(
		s.UserEmail,
		s.Freq,
		s.TimeOfDay,
		s.Weekday,
		s.DayOfMonth,
		s.Enabled,
		s.Changed.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot add Schedule for %s: %s\n",
			s.UserEmail,
			err.Error())
		return err
	}

	if s.ID, err = res.LastInsertId(); err != nil {
		db.log.Printf("[ERROR] Cannot get ID of new Schedule: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) ScheduleAdd(s *objects.Schedule) error

// ScheduleUpdate updates a Schedule in the database.
func (db *Database) ScheduleUpdate(s *objects.Schedule) error {
	const qid query.ID = query.ScheduleUpdate
	var (
		err  error
		stmt *sql.Stmt
	)

	s.Changed = time.Now()

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(
		s.Freq,
		s.TimeOfDay,
		s.Weekday,
		s.DayOfMonth,
		s.Enabled,
		s.Changed.Unix(),
		s.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot update Schedule %d: %s\n",
			s.ID,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) ScheduleUpdate(s *objects.Schedule) error

// ScheduleDelete removes a Schedule from the database.
func (db *Database) ScheduleDelete(s *objects.Schedule) error {
	const qid query.ID = query.ScheduleDelete
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(s.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot delete Schedule %d: %s\n",
			s.ID,
			err.Error())
		return err
	}

	return nil
} // func (db *Database) ScheduleDelete(s *objects.Schedule) error

// ScheduleGetAll loads all Schedules from the database.
func (db *Database) ScheduleGetAll() ([]objects.Schedule, error) {
	const qid query.ID = query.ScheduleGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

PREPARE_QUERY:
	if stmt, err = db.getQuery(qid); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query Schedules: %s\n",
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var schedules = make([]objects.Schedule, 0, 8)

	for rows.Next() {
		var (
			s     objects.Schedule
			stamp int64
		)

		if err = rows.Scan(
			&s.ID,
			&s.UserEmail,
			&s.Freq,
			&s.TimeOfDay,
			&s.Weekday,
			&s.DayOfMonth,
			&s.Enabled,
			&stamp); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		s.Changed = time.Unix(stamp, 0)
		schedules = append(schedules, s)
	}

	return schedules, nil
} // func (db *Database) ScheduleGetAll() ([]objects.Schedule, error)
