// /home/krylon/go/src/github.com/blicero/vigil/database/01_database_init_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 17:05:44 krylon>

package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/vigil/common"
)

var db *Database

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("vigil_database_test_%d", time.Now().Unix()))
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	}

	result = m.Run()

	if result == 0 {
		os.RemoveAll(baseDir) // nolint: errcheck
	}

	os.Exit(result)
} // func TestMain(m *testing.M)

func TestCreateDatabase(t *testing.T) {
	var err error

	if db, err = Open(common.DbPath()); err != nil {
		db = nil
		t.Fatalf("Cannot open database at %s: %s",
			common.DbPath(),
			err.Error())
	}
} // func TestCreateDatabase(t *testing.T)

// We prepare each query once to make sure there are no syntax errors in the SQL.
func TestPrepareQueries(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for id := range dbQueries {
		var err error
		if _, err = db.getQuery(id); err != nil {
			t.Errorf("Cannot prepare query %s: %s",
				id,
				err.Error())
		}
	}
} // func TestPrepareQueries(t *testing.T)
