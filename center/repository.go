// /home/krylon/go/src/github.com/blicero/vigil/center/repository.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 04. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 20:19:55 krylon>

package center

import (
	"log"
	"os"

	"github.com/blicero/vigil/common"
	"github.com/blicero/vigil/logdomain"
	"github.com/blicero/vigil/objects"
	"github.com/pquerna/ffjson/ffjson"
)

// Repository is where the notification center keeps its records.
// The Store does not care what the medium is, it loads the full list
// and saves the full list.
type Repository interface {
	Load() ([]objects.NotificationRecord, error)
	Save(records []objects.NotificationRecord) error
}

// FileRepository keeps the records in a flat JSON file.
// A file that cannot be parsed is treated as empty rather than
// crashing the client; the broken file is set aside for inspection.
type FileRepository struct {
	path string
	log  *log.Logger
}

// NewFileRepository creates a FileRepository at the given path.
func NewFileRepository(path string) (*FileRepository, error) {
	var (
		err error
		r   = &FileRepository{path: path}
	)

	if r.log, err = common.GetLogger(logdomain.Center); err != nil {
		return nil, err
	}

	return r, nil
} // func NewFileRepository(path string) (*FileRepository, error)

// Load reads the record list from the file.
func (r *FileRepository) Load() ([]objects.NotificationRecord, error) {
	var (
		err error
		buf []byte
	)

	if buf, err = os.ReadFile(r.path); err != nil {
		if os.IsNotExist(err) {
			return []objects.NotificationRecord{}, nil
		}

		r.log.Printf("[ERROR] Cannot read %s: %s\n",
			r.path,
			err.Error())
		return nil, err
	}

	var records []objects.NotificationRecord

	if err = ffjson.Unmarshal(buf, &records); err != nil {
		r.log.Printf("[ERROR] Notification store %s is corrupted, starting over: %s\n",
			r.path,
			err.Error())

		if err = os.Rename(r.path, r.path+".broken"); err != nil {
			r.log.Printf("[ERROR] Cannot move corrupted store out of the way: %s\n",
				err.Error())
		}

		return []objects.NotificationRecord{}, nil
	}

	return records, nil
} // func (r *FileRepository) Load() ([]objects.NotificationRecord, error)

// Save writes the record list to the file.
// The list is written to a temporary file first which is then
// renamed, so a crash mid-write cannot corrupt the store.
func (r *FileRepository) Save(records []objects.NotificationRecord) error {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(records); err != nil {
		r.log.Printf("[ERROR] Cannot serialize notification records: %s\n",
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	var tmp = r.path + ".tmp"

	if err = os.WriteFile(tmp, buf, 0600); err != nil {
		r.log.Printf("[ERROR] Cannot write %s: %s\n",
			tmp,
			err.Error())
		return err
	} else if err = os.Rename(tmp, r.path); err != nil {
		r.log.Printf("[ERROR] Cannot rename %s to %s: %s\n",
			tmp,
			r.path,
			err.Error())
		return err
	}

	return nil
} // func (r *FileRepository) Save(records []objects.NotificationRecord) error

// MemoryRepository keeps the records in memory. It is mainly useful
// for testing; it can be told to reject saves.
type MemoryRepository struct {
	Records  []objects.NotificationRecord
	FailSave bool
}

// Load returns a copy of the stored records.
func (r *MemoryRepository) Load() ([]objects.NotificationRecord, error) {
	var records = make([]objects.NotificationRecord, len(r.Records))
	copy(records, r.Records)
	return records, nil
} // func (r *MemoryRepository) Load() ([]objects.NotificationRecord, error)

// Save replaces the stored records.
func (r *MemoryRepository) Save(records []objects.NotificationRecord) error {
	if r.FailSave {
		return errSaveRefused
	}

	r.Records = make([]objects.NotificationRecord, len(records))
	copy(r.Records, records)
	return nil
} // func (r *MemoryRepository) Save(records []objects.NotificationRecord) error
