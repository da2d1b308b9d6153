// /home/krylon/go/src/github.com/blicero/vigil/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-06-21 17:12:55 krylon>

package database

import (
	"log"
	"sync"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
)

// Pool is a pool of database connections.
// Obviously, it is safe for concurrent use.
type Pool struct {
	lock sync.Mutex
	cond *sync.Cond
	log  *log.Logger
	pool []*Database
}

// NewPool opens the given number of database connections and returns
// the Pool containing them.
func NewPool(cnt int) (*Pool, error) {
	var (
		err  error
		pool = &Pool{
			pool: make([]*Database, 0, cnt),
		}
	)

	pool.cond = sync.NewCond(&pool.lock)

	if pool.log, err = common.GetLogger(logdomain.DBPool); err != nil {
		return nil, err
	}

	for i := 0; i < cnt; i++ {
		var db *Database

		if db, err = Open(common.DbPath()); err != nil {
			pool.log.Printf("[ERROR] Cannot open database at %s: %s\n",
				common.DbPath(),
				err.Error())
			return nil, err
		}

		pool.pool = append(pool.pool, db)
	}

	return pool, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a database connection from the Pool.
// If the Pool is empty, a fresh connection is opened.
func (p *Pool) Get() *Database {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.pool) == 0 {
		var (
			err error
			db  *Database
		)

		if db, err = Open(common.DbPath()); err != nil {
			p.log.Printf("[ERROR] Cannot open database at %s: %s\n",
				common.DbPath(),
				err.Error())
			return nil
		}

		return db
	}

	var db = p.pool[len(p.pool)-1]
	p.pool = p.pool[:len(p.pool)-1]

	return db
} // func (p *Pool) Get() *Database

// GetNoOpen returns a connection from the Pool, waiting for one to be
// returned if the Pool is currently empty.
func (p *Pool) GetNoOpen() *Database {
	p.lock.Lock()
	defer p.lock.Unlock()

	for len(p.pool) == 0 {
		p.cond.Wait()
	}

	var db = p.pool[len(p.pool)-1]
	p.pool = p.pool[:len(p.pool)-1]

	return db
} // func (p *Pool) GetNoOpen() *Database

// Put returns a connection to the Pool.
func (p *Pool) Put(db *Database) {
	if db == nil {
		return
	}

	p.lock.Lock()
	p.pool = append(p.pool, db)
	p.cond.Signal()
	p.lock.Unlock()
} // func (p *Pool) Put(db *Database)

// IsEmpty returns true if the Pool currently holds no idle connections.
func (p *Pool) IsEmpty() bool {
	p.lock.Lock()
	var empty = len(p.pool) == 0
	p.lock.Unlock()

	return empty
} // func (p *Pool) IsEmpty() bool

// Close closes all connections in the Pool.
func (p *Pool) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, db := range p.pool {
		var err error

		if err = db.Close(); err != nil {
			p.log.Printf("[ERROR] Cannot close database connection: %s\n",
				err.Error())
			return err
		}
	}

	p.pool = p.pool[:0]
	return nil
} // func (p *Pool) Close() error
