// /home/krylon/go/src/github.com/blicero/vigil/backend/config.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 21:12:28 krylon>

package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/blicero/vigil/common"
	"github.com/joho/godotenv"
)

var timeOfDayPat = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Config is the backend's environment configuration: where to listen,
// how to reach the mail API, and when the daily batch runs.
// Per-user reminder schedules do NOT live here, those are rows in the
// database.
type Config struct {
	ListenAddr   string
	MailEndpoint string
	MailAPIKey   string
	BatchTime    string // "HH:MM", local time
	PoolSize     int
}

// LoadConfig reads the configuration from the environment. If an env
// file exists in the base directory, it is loaded first; a missing
// env file is not an error.
func LoadConfig() (*Config, error) {
	var envPath = filepath.Join(common.BaseDir, "env")

	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading env file %s: %w",
			envPath,
			err)
	}

	var (
		err  error
		size int
		cfg  = &Config{
			ListenAddr:   getEnvWithDefault("VIGIL_ADDR", fmt.Sprintf("localhost:%d", common.DefaultPort)),
			MailEndpoint: getEnvWithDefault("VIGIL_MAIL_ENDPOINT", "http://localhost:8025/api/send"),
			MailAPIKey:   os.Getenv("VIGIL_MAIL_KEY"),
			BatchTime:    getEnvWithDefault("VIGIL_BATCH_TIME", "09:00"),
		}
	)

	if size, err = strconv.Atoi(getEnvWithDefault("VIGIL_POOL_SIZE", "4")); err != nil {
		return nil, fmt.Errorf("invalid VIGIL_POOL_SIZE: %w", err)
	}

	cfg.PoolSize = size

	if !timeOfDayPat.MatchString(cfg.BatchTime) {
		return nil, fmt.Errorf("invalid VIGIL_BATCH_TIME %q (expect HH:MM)",
			cfg.BatchTime)
	}

	return cfg, nil
} // func LoadConfig() (*Config, error)

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
} // func getEnvWithDefault(key, defaultValue string) string
