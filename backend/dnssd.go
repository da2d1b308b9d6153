// /home/krylon/go/src/github.com/blicero/vigil/backend/dnssd.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 14:19:48 krylon>

package backend

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/grandcat/zeroconf"
)

const (
	srvName    = "Vigil"
	srvService = "_http._tcp"
	srvDomain  = "local."
)

var addrPat = regexp.MustCompile(`:(\d+)$`)

// initDNSSd announces the backend's web interface via DNS-SD so
// clients on the local network can find it without configuration.
func (d *Daemon) initDNSSd() error {
	var (
		err   error
		match []string
		port  int64
		srv   *zeroconf.Server
	)

	if match = addrPat.FindStringSubmatch(d.web.Addr); match == nil {
		return fmt.Errorf("cannot extract HTTP port from server address %q",
			d.web.Addr)
	}

	if port, err = strconv.ParseInt(match[1], 10, 16); err != nil {
		d.log.Printf("[ERROR] Cannot parse HTTP port from server address %q: %s\n",
			d.web.Addr,
			err.Error())
		return err
	}

	var txt = []string{"txtv=0"}

	var instanceName = fmt.Sprintf("%s@%s",
		srvName,
		d.hostname)

	if srv, err = zeroconf.Register(instanceName, srvService, srvDomain, int(port), txt, nil); err != nil {
		d.log.Printf("[ERROR] Cannot register service with DNS-SD: %s\n",
			err.Error())
		return err
	}

	d.dnssd = srv
	return nil
} // func (d *Daemon) initDNSSd() error

func (d *Daemon) shutdownDNSSd() {
	if d.dnssd != nil {
		d.dnssd.Shutdown()
		d.dnssd = nil
	}
} // func (d *Daemon) shutdownDNSSd()
