// /home/krylon/go/src/github.com/blicero/vigil/mail/memory.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 20:36:47 krylon>

package mail

import (
	"fmt"
	"sync"
)

// MemoryTransport is a fake Transport that keeps sent Messages in
// memory. It is used by the tests; it can be told to fail delivery
// to specific addresses.
type MemoryTransport struct {
	lock     sync.Mutex
	Messages []Message
	failTo   map[string]bool
}

// NewMemoryTransport creates a fresh MemoryTransport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		Messages: make([]Message, 0, 16),
		failTo:   make(map[string]bool),
	}
} // func NewMemoryTransport() *MemoryTransport

// FailFor makes all future sends to the given address fail.
func (t *MemoryTransport) FailFor(addr string) {
	t.lock.Lock()
	t.failTo[addr] = true
	t.lock.Unlock()
} // func (t *MemoryTransport) FailFor(addr string)

// Send records the Message, unless its recipient was marked as failing.
func (t *MemoryTransport) Send(m *Message) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.failTo[m.To] {
		return fmt.Errorf("Delivery to %s failed", m.To)
	}

	t.Messages = append(t.Messages, *m)
	return nil
} // func (t *MemoryTransport) Send(m *Message) error

// Count returns the number of Messages delivered so far.
func (t *MemoryTransport) Count() int {
	t.lock.Lock()
	var cnt = len(t.Messages)
	t.lock.Unlock()

	return cnt
} // func (t *MemoryTransport) Count() int

// CountTo returns the number of Messages delivered to the given address.
func (t *MemoryTransport) CountTo(addr string) int {
	t.lock.Lock()
	defer t.lock.Unlock()

	var cnt int

	for _, m := range t.Messages {
		if m.To == addr {
			cnt++
		}
	}

	return cnt
} // func (t *MemoryTransport) CountTo(addr string) int
