// /home/krylon/go/src/github.com/blicero/vigil/objects/group.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-05-19 18:02:33 krylon>

package objects

import "fmt"

//go:generate ffjson group.go

// Recipient is one person reminder mail gets sent to.
type Recipient struct {
	ID    string
	Name  string
	Email string
}

func (r *Recipient) String() string {
	return fmt.Sprintf("%s <%s>",
		r.Name,
		r.Email)
} // func (r *Recipient) String() string

// Group is a named set of Recipients a Contract can be assigned to.
// Groups are maintained elsewhere; the notification engine only ever
// reads them.
type Group struct {
	ID      string
	Name    string
	Members []Recipient
}
