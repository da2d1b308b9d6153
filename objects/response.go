// /home/krylon/go/src/github.com/blicero/vigil/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-06-30 20:05:41 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client after processing a
// request. Count carries the number of affected records for bulk
// operations and is zero otherwise.
type Response struct {
	ID      int64
	Status  bool
	Message string
	Count   int64
}
