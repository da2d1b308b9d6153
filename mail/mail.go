// /home/krylon/go/src/github.com/blicero/vigil/mail/mail.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 20:31:02 krylon>

// Package mail provides the transport for outgoing reminder mail.
// The actual delivery is done by an external mail API we talk to
// over HTTP; as far as the rest of the application is concerned,
// a send either succeeds or it fails, there is nothing in between.
package mail

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/pquerna/ffjson/ffjson"
)

//go:generate ffjson mail.go

// sendTimeout bounds a single delivery attempt. A transport that does
// not answer within this window counts as failed, it must never hang
// the dispatcher.
const sendTimeout = time.Second * 10

// Message is one piece of outgoing mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Transport delivers Messages.
type Transport interface {
	Send(m *Message) error
}

// HTTPTransport delivers Messages by POSTing them to a mail API.
type HTTPTransport struct {
	endpoint *url.URL
	apiKey   string
	client   http.Client
	log      *log.Logger
}

// NewHTTPTransport creates an HTTPTransport for the given API endpoint.
func NewHTTPTransport(endpoint, apiKey string) (*HTTPTransport, error) {
	var (
		err error
		t   = &HTTPTransport{
			apiKey: apiKey,
			client: http.Client{
				Timeout: sendTimeout,
			},
		}
	)

	if t.log, err = common.GetLogger(logdomain.Mail); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if t.endpoint, err = url.Parse(endpoint); err != nil {
		t.log.Printf("[ERROR] Cannot parse mail API endpoint %q: %s\n",
			endpoint,
			err.Error())
		return nil, err
	}

	return t, nil
} // func NewHTTPTransport(endpoint, apiKey string) (*HTTPTransport, error)

// Send delivers the given Message via the mail API.
func (t *HTTPTransport) Send(m *Message) error {
	var (
		err  error
		buf  []byte
		req  *http.Request
		hres *http.Response
	)

	if buf, err = ffjson.Marshal(m); err != nil {
		t.log.Printf("[ERROR] Cannot serialize Message to %s: %s\n",
			m.To,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if req, err = http.NewRequest(http.MethodPost, t.endpoint.String(), bytes.NewReader(buf)); err != nil {
		t.log.Printf("[ERROR] Cannot create request: %s\n",
			err.Error())
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	if hres, err = t.client.Do(req); err != nil {
		t.log.Printf("[ERROR] Failed to POST Message to %s: %s\n",
			t.endpoint,
			err.Error())
		return err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode < 200 || hres.StatusCode > 299 {
		err = fmt.Errorf("Unexpected status from %s: %s",
			t.endpoint,
			hres.Status)
		t.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	t.log.Printf("[DEBUG] Sent %q to %s\n",
		m.Subject,
		m.To)

	return nil
} // func (t *HTTPTransport) Send(m *Message) error
