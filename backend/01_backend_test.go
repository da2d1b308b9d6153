// /home/krylon/go/src/github.com/blicero/vigil/backend/01_backend_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:14:09 krylon>

package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/reminder"
)

const testAddr = "localhost:7209"

var back *Daemon

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("vigil_backend_test_%d", time.Now().Unix()))
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

func TestSummon(t *testing.T) {
	var err error

	if back, err = Summon(testAddr); err != nil {
		back = nil
		t.Fatalf("Cannot create Daemon: %s",
			err.Error())
	} else if !back.IsAlive() {
		t.Error("Freshly summoned Daemon should be alive")
	}
} // func TestSummon(t *testing.T)

func TestRunTickEmpty(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err error
		rep *reminder.Report
	)

	if rep, err = back.RunTick(time.Now()); err != nil {
		t.Fatalf("RunTick on an empty database failed: %s",
			err.Error())
	} else if rep.Matched != 0 {
		t.Errorf("Unexpected number of matches on an empty database: %d",
			rep.Matched)
	}
} // func TestRunTickEmpty(t *testing.T)

func TestRunTick(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err   error
		rep   *reminder.Report
		db    = back.pool.Get()
		now   = time.Now()
		group = &objects.Group{
			Name: "Test Department",
			Members: []objects.Recipient{
				{Name: "John Doe", Email: "john.doe@example.com"},
			},
		}
	)
	defer back.pool.Put(db)

	if err = db.GroupAdd(group); err != nil {
		t.Fatalf("Cannot add Group: %s", err.Error())
	}

	var c = &objects.Contract{
		ID:        common.GetUUID(),
		Title:     "Due tomorrow",
		Number:    "CT-0001/2026",
		Kind:      objects.KindContract,
		EndDate:   now.AddDate(0, 0, 1),
		CreatedAt: now,
		GroupID:   group.ID,
		Changed:   now,
	}

	if err = db.ContractAdd(c); err != nil {
		t.Fatalf("Cannot add Contract: %s", err.Error())
	}

	if rep, err = back.RunTick(now); err != nil {
		t.Fatalf("RunTick failed: %s",
			err.Error())
	} else if rep.Matched != 1 {
		t.Errorf("Unexpected number of matches: %d (expected 1)",
			rep.Matched)
	} else if rep.Succeeded+rep.Failed != rep.Attempted {
		t.Errorf("Report does not add up: %d + %d != %d",
			rep.Succeeded,
			rep.Failed,
			rep.Attempted)
	}

	if lrep := back.LastReport(); lrep == nil {
		t.Error("LastReport should not be nil after a tick")
	}
} // func TestRunTick(t *testing.T)
