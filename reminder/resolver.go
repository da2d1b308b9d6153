// /home/krylon/go/src/github.com/blicero/vigil/reminder/resolver.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 18:24:40 krylon>

package reminder

import (
	"log"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
)

// GroupSource is where the Resolver looks up recipient groups.
// *database.Database satisfies this interface.
type GroupSource interface {
	GroupGetByID(id string) (*objects.Group, error)
}

// Resolver maps a Contract's recipient group to the list of people
// who get its reminder mail.
type Resolver struct {
	log *log.Logger
	src GroupSource
}

// NewResolver creates a Resolver on top of the given GroupSource.
func NewResolver(src GroupSource) (*Resolver, error) {
	var (
		err error
		r   = &Resolver{src: src}
	)

	if r.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	}

	return r, nil
} // func NewResolver(src GroupSource) (*Resolver, error)

// Resolve returns the Recipients of the given group. A missing or
// empty group yields an empty list, and so does a lookup failure -
// trouble resolving recipients is never fatal, it just means nobody
// gets mail, which we log.
func (r *Resolver) Resolve(groupID string) []objects.Recipient {
	if groupID == "" {
		return nil
	}

	var (
		err error
		g   *objects.Group
	)

	if g, err = r.src.GroupGetByID(groupID); err != nil {
		r.log.Printf("[ERROR] Cannot resolve group %s: %s\n",
			groupID,
			err.Error())
		return nil
	} else if g == nil {
		r.log.Printf("[DEBUG] Group %s does not exist\n",
			groupID)
		return nil
	}

	return g.Members
} // func (r *Resolver) Resolve(groupID string) []objects.Recipient
