// /home/krylon/go/src/github.com/blicero/vigil/center/dbrepo.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 10:25:41 krylon>

package center

import (
	"log"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/database"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
)

// DBRepository keeps the notification records in the application
// database instead of a flat file. Same contract as FileRepository,
// different medium.
type DBRepository struct {
	db  *database.Database
	log *log.Logger
}

// NewDBRepository creates a DBRepository on top of an open database
// connection. The connection stays owned by the caller.
func NewDBRepository(db *database.Database) (*DBRepository, error) {
	var (
		err error
		r   = &DBRepository{db: db}
	)

	if r.log, err = common.GetLogger(logdomain.Center); err != nil {
		return nil, err
	}

	return r, nil
} // func NewDBRepository(db *database.Database) (*DBRepository, error)

// Load reads all records from the database.
func (r *DBRepository) Load() ([]objects.NotificationRecord, error) {
	return r.db.NotificationGetAll()
} // func (r *DBRepository) Load() ([]objects.NotificationRecord, error)

// Save replaces the persisted records with the given list, in one
// transaction.
func (r *DBRepository) Save(records []objects.NotificationRecord) error {
	var err error

	if err = r.db.Begin(); err != nil {
		r.log.Printf("[ERROR] Cannot start transaction: %s\n",
			err.Error())
		return err
	}

	if err = r.db.NotificationClear(); err != nil {
		goto ROLLBACK
	}

	for idx := range records {
		if err = r.db.NotificationAdd(&records[idx]); err != nil {
			goto ROLLBACK
		}
	}

	if err = r.db.Commit(); err != nil {
		r.log.Printf("[ERROR] Cannot commit transaction: %s\n",
			err.Error())
		return err
	}

	return nil

ROLLBACK:
	if rbErr := r.db.Rollback(); rbErr != nil {
		r.log.Printf("[CANTHAPPEN] Cannot roll back transaction: %s\n",
			rbErr.Error())
	}

	return err
} // func (r *DBRepository) Save(records []objects.NotificationRecord) error
