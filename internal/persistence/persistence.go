package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mfrox/mcb2go/internal/pid"
	"github.com/mfrox/mcb2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketAxisGains = "axisGains"
)

type Persistence interface {
	Init() error

	LoadAxisGains(axisId string) (pid.Gains, error)
	SaveAxisGains(axisId string, gains pid.Gains) (err error)
	DeleteAxisGains(axisId string) (err error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SaveAxisGains saves the runtime tuning of the given axis to persistence
func (p persistence) SaveAxisGains(axisId string, gains pid.Gains) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(gains)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketAxisGains))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		err = b.Put([]byte(axisId), data)
		return err
	})
}

// LoadAxisGains loads the saved tuning of the given axis from persistence
func (p persistence) LoadAxisGains(axisId string) (pid.Gains, error) {
	db, err := p.openPersistence()
	if err != nil {
		return pid.Gains{}, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var gains pid.Gains
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketAxisGains))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(axisId))
		if v == nil {
			return os.ErrNotExist
		}

		err := json.Unmarshal(v, &gains)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved gains for %s: %v", axisId, err)
			err := b.Delete([]byte(axisId))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", axisId, err)
			}
			return os.ErrNotExist
		}

		return nil
	})

	return gains, err
}

func (p persistence) DeleteAxisGains(axisId string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketAxisGains))
		if b == nil {
			// no gains bucket yet
			return nil
		}
		v := b.Get([]byte(axisId))
		if v == nil {
			// no data for given key
			return nil
		}

		return b.Delete([]byte(axisId))
	})
}
