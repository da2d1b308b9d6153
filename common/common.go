// /home/krylon/go/src/github.com/blicero/vigil/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 18:40:12 krylon>

// Package common provides constants and helpers used throughout
// the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/vigil/logdomain"
	"github.com/hashicorp/logutils"
	uuid "github.com/odeke-em/go-uuid"
)

//go:generate ./build_time_stamp.pl

// Debug, if true, causes the log level to be lowered to TRACE.
const Debug = true

// AppName, Version, and TimestampFormat are what their names imply.
const (
	AppName                  = "Vigil"
	Version                  = "0.3.1"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	DayKeyFormat             = "2006-01-02"
	DefaultPort              = 7202
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = make(map[logdomain.ID]logutils.LogLevel, logdomain.DomainCount)

func init() {
	var level logutils.LogLevel = "DEBUG"

	if Debug {
		level = "TRACE"
	}

	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = level
	}
} // func init()

// BaseDir is the directory where the application keeps its files.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf(".%s.d", strings.ToLower(AppName)))

// LogPath returns the path of the log file.
func LogPath() string {
	return filepath.Join(BaseDir, strings.ToLower(AppName)+".log")
} // func LogPath() string

// DbPath returns the path of the database.
func DbPath() string {
	return filepath.Join(BaseDir, strings.ToLower(AppName)+".db")
} // func DbPath() string

// NotificationPath returns the path of the client's notification store.
func NotificationPath() string {
	return filepath.Join(BaseDir, "notifications.json")
} // func NotificationPath() string

// SetBaseDir sets the application's base directory. This should only
// be called very early in the startup or from tests.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BaseDir to %s\n", path)
	BaseDir = path

	if err := InitApp(); err != nil {
		fmt.Printf("Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently this means creating the BaseDir if it does not exist.
func InitApp() error {
	var err error

	if err = os.MkdirAll(BaseDir, 0700); err != nil {
		var msg = fmt.Sprintf("Error creating BaseDir %s: %s",
			BaseDir,
			err.Error())
		return fmt.Errorf("%s", msg)
	}

	return nil
} // func InitApp() error

// GetLogger tries to create a Logger for the given log domain.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		logfile *os.File
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	}

	var name = fmt.Sprintf("%s.%s ", AppName, dom)

	if logfile, err = os.OpenFile(LogPath(), os.O_RDWR|os.O_APPEND|os.O_CREATE, 0600); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %s",
			LogPath(),
			err.Error())
	}

	var writer = io.MultiWriter(os.Stdout, logfile)
	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: PackageLevels[dom],
		Writer:   writer,
	}

	return log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile), nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// GetUUID returns a freshly created random UUID.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string

// DayKey returns the calendar-day key for the given point in time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
} // func DayKey(t time.Time) string

// ParseDayKey parses a day key back into a time.Time.
// The result is the beginning of that day, in the local time zone.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyFormat, key, time.Local)
} // func ParseDayKey(key string) (time.Time, error)

// DayStart truncates the given timestamp to the beginning of its
// calendar day, in the local time zone.
func DayStart(t time.Time) time.Time {
	var y, m, d = t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
} // func DayStart(t time.Time) time.Time
