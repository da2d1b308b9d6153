// /home/krylon/go/src/github.com/blicero/vigil/center/01_generator_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 19:31:27 krylon>

package center

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
	"github.com/blicero/vigil/objects/category"
)

var gen *Generator

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("vigil_center_test_%d", time.Now().Unix()))
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

// sampleContracts returns a contract snapshot with one Contract per
// interesting condition.
func sampleContracts(now time.Time) []objects.Contract {
	return []objects.Contract{
		{
			ID:        "expired",
			Title:     "Expired contract",
			Number:    "CT-0001/2026",
			Kind:      objects.KindContract,
			EndDate:   now.AddDate(0, 0, -3),
			CreatedAt: now.AddDate(0, 0, -90),
			GroupID:   "g1",
		},
		{
			ID:        "expiring",
			Title:     "Expires today",
			Number:    "CT-0002/2026",
			Kind:      objects.KindContract,
			EndDate:   now,
			CreatedAt: now.AddDate(0, 0, -90),
			GroupID:   "g1",
		},
		{
			ID:        "brand-new",
			Title:     "Registered this morning",
			Number:    "CT-0003/2026",
			Kind:      objects.KindProcess,
			EndDate:   now.AddDate(0, 0, 30),
			CreatedAt: now.Add(-time.Hour),
		},
		{
			ID:        "closed",
			Title:     "Finished long ago",
			Number:    "CT-0004/2026",
			Kind:      objects.KindContract,
			Status:    objects.StatusFinished,
			EndDate:   now.AddDate(0, 0, -10),
			CreatedAt: now.AddDate(0, 0, -90),
		},
	}
} // func sampleContracts(now time.Time) []objects.Contract

func TestCreateGenerator(t *testing.T) {
	var err error

	if gen, err = NewGenerator(); err != nil {
		gen = nil
		t.Fatalf("Cannot create Generator: %s",
			err.Error())
	}
} // func TestCreateGenerator(t *testing.T)

func TestGenerate(t *testing.T) {
	if gen == nil {
		t.SkipNow()
	}

	var (
		now     = time.Now()
		dayKey  = common.DayKey(now)
		records = gen.Generate(now, sampleContracts(now), nil)
		byID    = make(map[string]*objects.NotificationRecord, len(records))
	)

	for idx := range records {
		byID[records[idx].ID] = &records[idx]
	}

	// expired, expiring today, created, and one aggregate record for
	// the unassigned Contract. The closed one stays silent; "brand-new"
	// is unassigned, too, but closed ones do not count.
	var expectIDs = []string{
		objects.MakeRecordID(category.Expired, "expired", dayKey),
		objects.MakeRecordID(category.ExpiringToday, "expiring", dayKey),
		objects.MakeRecordID(category.Created, "brand-new", dayKey),
		objects.MakeRecordID(category.UnassignedGroup, "all", dayKey),
	}

	if len(records) != len(expectIDs) {
		t.Errorf("Unexpected number of records: %d (expected %d)",
			len(records),
			len(expectIDs))
	}

	for _, id := range expectIDs {
		if byID[id] == nil {
			t.Errorf("Expected record %s was not generated", id)
		}
	}

	var aggregate = byID[objects.MakeRecordID(category.UnassignedGroup, "all", dayKey)]

	if aggregate != nil && aggregate.ContractID != "" {
		t.Errorf("Aggregate record should not reference a Contract, references %q",
			aggregate.ContractID)
	}
} // func TestGenerate(t *testing.T)

// The same snapshot on the same day must yield the same record IDs.
func TestGenerateDeterministic(t *testing.T) {
	if gen == nil {
		t.SkipNow()
	}

	var (
		now   = time.Now()
		first = gen.Generate(now, sampleContracts(now), nil)
		again = gen.Generate(now, sampleContracts(now), nil)
	)

	if len(first) != len(again) {
		t.Fatalf("Two runs yielded %d and %d records",
			len(first),
			len(again))
	}

	for idx := range first {
		if first[idx].ID != again[idx].ID {
			t.Errorf("Record #%d differs between runs: %s vs %s",
				idx,
				first[idx].ID,
				again[idx].ID)
		}
	}
} // func TestGenerateDeterministic(t *testing.T)

func TestGenerateTombstones(t *testing.T) {
	if gen == nil {
		t.SkipNow()
	}

	var (
		now        = time.Now()
		dayKey     = common.DayKey(now)
		deadID     = objects.MakeRecordID(category.Expired, "expired", dayKey)
		tombstones = map[string]bool{deadID: true}
		records    = gen.Generate(now, sampleContracts(now), tombstones)
	)

	for idx := range records {
		if records[idx].ID == deadID {
			t.Errorf("Tombstoned record %s was regenerated", deadID)
		}
	}
} // func TestGenerateTombstones(t *testing.T)
