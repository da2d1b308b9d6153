// /home/krylon/go/src/github.com/blicero/vigil/center/05_dbrepo_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:55:30 krylon>

package center

import (
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/database"
)

// The DBRepository has to satisfy the same contract as the
// FileRepository, just backed by the application database.
func TestDBRepository(t *testing.T) {
	var (
		err     error
		db      *database.Database
		drepo   *DBRepository
		now     = time.Now()
		records = toastRecords(now)
	)

	if db, err = database.Open(common.DbPath()); err != nil {
		t.Fatalf("Cannot open database at %s: %s",
			common.DbPath(),
			err.Error())
	}

	defer db.Close() // nolint: errcheck

	if drepo, err = NewDBRepository(db); err != nil {
		t.Fatalf("Cannot create DBRepository: %s",
			err.Error())
	}

	if loaded, lerr := drepo.Load(); lerr != nil {
		t.Fatalf("Loading from an empty database should not fail: %s",
			lerr.Error())
	} else if len(loaded) != 0 {
		t.Fatalf("Loading from an empty database yielded %d records",
			len(loaded))
	}

	if err = drepo.Save(records); err != nil {
		t.Fatalf("Cannot save records: %s",
			err.Error())
	}

	var loaded, lerr = drepo.Load()

	if lerr != nil {
		t.Fatalf("Cannot load records: %s",
			lerr.Error())
	} else if len(loaded) != len(records) {
		t.Fatalf("Loaded %d records, expected %d",
			len(loaded),
			len(records))
	}

	// Saving a shorter list replaces, it does not append.
	if err = drepo.Save(records[:1]); err != nil {
		t.Fatalf("Cannot save records: %s",
			err.Error())
	} else if loaded, lerr = drepo.Load(); lerr != nil {
		t.Fatalf("Cannot load records: %s",
			lerr.Error())
	} else if len(loaded) != 1 {
		t.Fatalf("Loaded %d records, expected 1",
			len(loaded))
	}
} // func TestDBRepository(t *testing.T)
