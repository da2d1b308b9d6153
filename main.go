// /home/krylon/go/src/github.com/blicero/vigil/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 16:47:25 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/vigil/backend"
	"github.com/blicero/vigil/center"
	"github.com/blicero/vigil/clients/clientlib"
	"github.com/blicero/vigil/common"
)

const refreshInterval = time.Minute * 5

func main() {
	fmt.Printf("%s %s (built %s)\n",
		common.AppName,
		common.Version,
		common.BuildStamp)

	var (
		err                error
		daemon             *backend.Daemon
		appDir, mode, addr string
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&mode,
		"mode",
		"backend",
		"Whether to run the *backend* or the *client*",
	)

	flag.StringVar(
		&addr,
		"address",
		fmt.Sprintf("localhost:%d", common.DefaultPort),
		"Address to either listen on (backend) or connect to (client); on the client, an empty address means discover the backend via DNS-SD",
	)

	flag.Parse()

	if appDir != common.BaseDir {
		if err = common.SetBaseDir(appDir); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to set application directory to %s: %s\n",
				appDir,
				err.Error())
			os.Exit(1)
		}
	}

	if mode == "backend" {
		if daemon, err = backend.Summon(addr); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to initialize backend: %s\n",
				err.Error())
			os.Exit(1)
		}

		var sigQ = make(chan os.Signal, 1)
		var ticker = time.NewTicker(time.Second * 2)

		signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		for daemon.IsAlive() {
			select {
			case sig := <-sigQ:
				fmt.Printf("Quitting on signal %s\n", sig)
				daemon.Banish() // nolint: errcheck
				os.Exit(0)
			case <-ticker.C:
				continue
			}
		}
	} else if mode == "client" {
		runClient(addr)
	} else {
		fmt.Fprintf(
			os.Stderr,
			"Unknown mode %q",
			mode,
		)

		os.Exit(1)
	}
} // func main()

// runClient periodically fetches the Contracts from the backend,
// regenerates the local notifications, and toasts the urgent ones.
func runClient(addr string) {
	var (
		err     error
		client  *clientlib.Client
		repo    *center.FileRepository
		store   *center.Store
		toaster center.Toaster
	)

	if client, err = clientlib.NewClient(addr); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize client: %s\n",
			err.Error())
		os.Exit(1)
	}

	var log = client.GetLogger()

	if repo, err = center.NewFileRepository(common.NotificationPath()); err != nil {
		log.Printf("[ERROR] Cannot open notification store at %s: %s\n",
			common.NotificationPath(),
			err.Error())
		os.Exit(1)
	} else if store, err = center.NewStore(repo); err != nil {
		log.Printf("[ERROR] Cannot load notification store: %s\n",
			err.Error())
		os.Exit(1)
	}

	if toaster, err = center.NewDBusToaster(); err != nil {
		log.Printf("[WARN] Cannot connect to DBus, desktop notifications are disabled: %s\n",
			err.Error())
		toaster = &center.MemoryToaster{}
	}

	var (
		gate   = center.NewToastGate()
		sigQ   = make(chan os.Signal, 1)
		ticker = time.NewTicker(refreshInterval)
	)

	signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	if err = client.Refresh(store, gate, toaster); err != nil {
		log.Printf("[ERROR] Refresh failed: %s\n",
			err.Error())
	}

	for {
		select {
		case sig := <-sigQ:
			fmt.Printf("Quitting on signal %s\n", sig)
			return
		case <-ticker.C:
			if err = client.Refresh(store, gate, toaster); err != nil {
				log.Printf("[ERROR] Refresh failed: %s\n",
					err.Error())
			}
		}
	}
} // func runClient(addr string)
