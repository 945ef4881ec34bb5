package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/sirupsen/logrus"
	bbolt "go.etcd.io/bbolt"
)

// fixed width so that byte order is chronological order
const keyLayout = "2006-01-02T15:04:05.000000000Z"

var bucketName = []byte("approaches")

type BoltSinker struct {
	Log *logrus.Logger
	db  *bbolt.DB
}

func New(log *logrus.Logger) app.Sinker {
	//init the logger here
	return &BoltSinker{Log: log}
}

func (s *BoltSinker) Init(ctx context.Context, params interface{}) error {
	parameters, ok := params.(Configuration)
	if !ok {
		return errors.New("bolt sinker needs a bolt.Configuration")
	}

	if dir := filepath.Dir(parameters.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	db, err := bbolt.Open(parameters.Path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
			"path":  parameters.Path,
		}).Error("Unable to open bolt database")
		return err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

// Sink stores the approach keyed by its UTC completion time.
func (s *BoltSinker) Sink(ctx context.Context, t time.Time, approach app.Approach) error {
	if s.db == nil {
		return errors.New("No bolt database for storing approaches")
	}

	approach.CompletedAt = t.UTC()
	value, err := json.Marshal(approach)
	if err != nil {
		return err
	}
	key := []byte(approach.CompletedAt.Format(keyLayout))

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, value)
	})
	if err != nil {
		return err
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": approach.Callsign,
		"key":      string(key),
	}).Debug("Approach stored")
	return nil
}

// List returns the stored approaches, oldest first.
func (s *BoltSinker) List() ([]app.Approach, error) {
	if s.db == nil {
		return nil, errors.New("No bolt database")
	}

	result := []app.Approach{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			var a app.Approach
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			result = append(result, a)
			return nil
		})
	})
	return result, err
}

// Between opens the database at path read-only and returns the approaches
// completed within [from, to], oldest first. A missing file holds no approach.
func Between(path string, from, to time.Time) ([]app.Approach, error) {
	result := []app.Approach{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return result, nil
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	fromKey := []byte(from.UTC().Format(keyLayout))
	toKey := []byte(to.UTC().Format(keyLayout))

	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Seek(fromKey); k != nil && bytes.Compare(k, toKey) <= 0; k, v = c.Next() {
			var a app.Approach
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			result = append(result, a)
		}
		return nil
	})
	return result, err
}

func (s *BoltSinker) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
