// /home/krylon/go/src/github.com/blicero/vigil/reminder/01_evaluator_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 18:40:12 krylon>

package reminder

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/objects"
)

var ev *Evaluator

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("vigil_reminder_test_%d", time.Now().Unix()))
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

func TestMatchPolicies(t *testing.T) {
	type testCase struct {
		policy    MatchPolicy
		daysUntil int
		days      []int
		expect    bool
	}

	var cases = []testCase{
		{FutureOnlyMatch{}, 1, []int{1}, true},
		{FutureOnlyMatch{}, 2, []int{1}, false},
		{FutureOnlyMatch{}, 0, []int{1}, false},
		{FutureOnlyMatch{}, -1, []int{1}, false},
		{FutureOnlyMatch{}, 7, []int{1, 7, 15}, true},
		{AbsoluteValueMatch{}, 7, []int{1, 7, 15, 30}, true},
		{AbsoluteValueMatch{}, -7, []int{1, 7, 15, 30}, true},
		{AbsoluteValueMatch{}, -1, []int{1, 7, 15, 30}, true},
		{AbsoluteValueMatch{}, 0, []int{1, 7, 15, 30}, false},
		{AbsoluteValueMatch{}, -8, []int{1, 7, 15, 30}, false},
	}

	for _, c := range cases {
		if res := c.policy.Matches(c.daysUntil, c.days); res != c.expect {
			t.Errorf("%s.Matches(%d, %v) = %t, expected %t",
				c.policy.Name(),
				c.daysUntil,
				c.days,
				res,
				c.expect)
		}
	}
} // func TestMatchPolicies(t *testing.T)

func TestCreateEvaluator(t *testing.T) {
	var err error

	if ev, err = NewEvaluator(nil); err != nil {
		ev = nil
		t.Fatalf("Cannot create Evaluator: %s",
			err.Error())
	}
} // func TestCreateEvaluator(t *testing.T)

func TestEvaluate(t *testing.T) {
	if ev == nil {
		t.SkipNow()
	}

	var (
		now       = time.Now()
		contracts = []objects.Contract{
			{
				ID:      "due-tomorrow",
				Title:   "Due tomorrow",
				Kind:    objects.KindContract,
				EndDate: now.AddDate(0, 0, 1),
			},
			{
				ID:      "due-next-week",
				Title:   "Due next week",
				Kind:    objects.KindContract,
				EndDate: now.AddDate(0, 0, 7),
			},
			{
				ID:      "overdue-contract",
				Title:   "Overdue, contracts do not look back",
				Kind:    objects.KindContract,
				EndDate: now.AddDate(0, 0, -1),
			},
			{
				ID:          "process-overdue",
				Title:       "A week late, processes match on distance",
				Kind:        objects.KindProcess,
				OpeningDate: now.AddDate(0, 0, -7),
			},
			{
				ID:    "no-target",
				Title: "No target date at all",
				Kind:  objects.KindContract,
			},
			{
				ID:      "finished",
				Title:   "Closed, never notifies",
				Kind:    objects.KindContract,
				Status:  objects.StatusFinished,
				EndDate: now.AddDate(0, 0, 1),
			},
			{
				ID:               "custom-days",
				Title:            "Custom notification days",
				Kind:             objects.KindContract,
				EndDate:          now.AddDate(0, 0, 3),
				NotificationDays: []int{3},
			},
		}
	)

	var matches = ev.Evaluate(now, contracts)

	var expected = map[string]bool{
		"due-tomorrow":    true,
		"process-overdue": true,
		"custom-days":     true,
	}

	if len(matches) != len(expected) {
		t.Errorf("Unexpected number of matches: %d (expected %d)",
			len(matches),
			len(expected))
	}

	for idx := range matches {
		var m = &matches[idx]

		if !expected[m.Contract.ID] {
			t.Errorf("Contract %s should not have matched (%s)",
				m.Contract.ID,
				m)
		}
	}
} // func TestEvaluate(t *testing.T)
