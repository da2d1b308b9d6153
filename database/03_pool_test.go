// /home/krylon/go/src/github.com/blicero/vigil/database/03_pool_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 31. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:48:02 krylon>

package database

import (
	"testing"
	"time"
)

func TestPool(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		pool *Pool
	)

	if pool, err = NewPool(2); err != nil {
		t.Fatalf("Cannot create Pool: %s",
			err.Error())
	}

	defer pool.Close() // nolint: errcheck

	var (
		c1 = pool.Get()
		c2 = pool.GetNoOpen()
	)

	if c1 == nil || c2 == nil {
		t.Fatal("Pool handed out a nil connection")
	} else if !pool.IsEmpty() {
		t.Error("Pool should be empty after handing out both connections")
	}

	// With the Pool drained, GetNoOpen has to wait for a connection
	// to come back instead of opening a fresh one.
	var ch = make(chan *Database)

	go func() {
		ch <- pool.GetNoOpen()
	}()

	select {
	case <-ch:
		t.Error("GetNoOpen returned a connection from an empty Pool")
	case <-time.After(50 * time.Millisecond):
		// still waiting, as it should be
	}

	pool.Put(c1)

	select {
	case c3 := <-ch:
		if c3 != c1 {
			t.Error("GetNoOpen should have picked up the returned connection")
		}
		pool.Put(c3)
	case <-time.After(time.Second * 5):
		t.Fatal("GetNoOpen did not wake up after a connection was returned")
	}

	pool.Put(c2)
} // func TestPool(t *testing.T)
