// /home/krylon/go/src/github.com/blicero/vigil/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 15:08:33 krylon>

// Package clientlib provides the basic framework for building clients
// of the backend: fetching Contracts over the web interface, feeding
// them to the local notification Store, and raising desktop toasts
// for the high-priority ones.
package clientlib

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/blicero/vigil/center"
	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
	"github.com/grandcat/zeroconf"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	contractPath = "/contract/active"
	srvService   = "_http._tcp"
	srvDomain    = "local."
	browseWait   = time.Second * 5
)

// Client is the basic implementation of a backend client, it
// implements the fundamental communication with the Server.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client. If srv is empty, the backend is
// looked up via DNS-SD.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	}

	if srv == "" {
		if srv, err = c.findBackend(); err != nil {
			c.log.Printf("[ERROR] Cannot find backend via DNS-SD: %s\n",
				err.Error())
			return nil, err
		}
	}

	if c.Server, err = url.Parse(srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	c.Server.Scheme = "http"
	c.Server.Path = contractPath

	return c, nil
} // func NewClient(srv string) (*Client, error)

func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

// findBackend browses the local network for a backend instance and
// returns the address of the first one it sees.
func (c *Client) findBackend() (string, error) {
	var (
		err      error
		resolver *zeroconf.Resolver
		entries  = make(chan *zeroconf.ServiceEntry)
		found    = make(chan string, 1)
	)

	if resolver, err = zeroconf.NewResolver(nil); err != nil {
		return "", err
	}

	go func() {
		for entry := range entries {
			if !strings.HasPrefix(entry.Instance, common.AppName) {
				continue
			} else if len(entry.AddrIPv4) == 0 {
				continue
			}

			select {
			case found <- fmt.Sprintf("%s:%d",
				entry.AddrIPv4[0],
				entry.Port):
			default:
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), browseWait)
	defer cancel()

	if err = resolver.Browse(ctx, srvService, srvDomain, entries); err != nil {
		return "", err
	}

	select {
	case addr := <-found:
		c.log.Printf("[INFO] Found backend at %s\n", addr)
		return addr, nil
	case <-ctx.Done():
		return "", errors.New("no backend instance found on the local network")
	}
} // func (c *Client) findBackend() (string, error)

// FetchContracts asks the backend for the list of live Contracts.
func (c *Client) FetchContracts() ([]objects.Contract, error) {
	var (
		err       error
		msg       string
		rcvBuf    bytes.Buffer
		hres      *http.Response
		contracts []objects.Contract
	)

	if hres, err = c.Client.Get(c.Server.String()); err != nil {
		c.log.Printf("[ERROR] Failed to GET Contracts from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		msg = fmt.Sprintf("Unexpected status from %s: %s",
			c.Server,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &contracts); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Contract list from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	c.log.Printf("[DEBUG] Fetched %d Contracts from %s\n",
		len(contracts),
		c.Server)

	return contracts, nil
} // func (c *Client) FetchContracts() ([]objects.Contract, error)

// Refresh performs one full client cycle: fetch the Contracts from
// the backend, regenerate the local notifications, and toast the
// high-priority ones the user has not looked at yet. Toast failures
// are logged but do not fail the refresh; the notifications are
// already in the Store at that point.
func (c *Client) Refresh(store *center.Store, gate *center.ToastGate, toaster center.Toaster) error {
	var (
		err       error
		contracts []objects.Contract
		fresh     []objects.NotificationRecord
		now       = time.Now()
	)

	if contracts, err = c.FetchContracts(); err != nil {
		return err
	} else if fresh, err = store.Generate(now, contracts); err != nil {
		c.log.Printf("[ERROR] Cannot generate notifications: %s\n",
			err.Error())
		return err
	}

	c.log.Printf("[DEBUG] Refresh produced %d fresh notifications\n",
		len(fresh))

	var pending = gate.Pending(now, store.ListDay(common.DayKey(now)))

	for idx := range pending {
		var n = &pending[idx]

		if err = toaster.Toast(n.Title, n.Message); err != nil {
			c.log.Printf("[ERROR] Cannot display toast for %s: %s\n",
				n.ID,
				err.Error())
		}
	}

	return nil
} // func (c *Client) Refresh(store *center.Store, gate *center.ToastGate, toaster center.Toaster) error
