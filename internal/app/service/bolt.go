package service

import (
	"context"
	"errors"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/bolt"
	"github.com/sirupsen/logrus"
)

// BoltService searches the bolt history. The database file is opened
// read-only for each search, it fails while a running tracker holds the file lock.
type BoltService struct {
	Log *logrus.Logger
}

func NewBolt(log *logrus.Logger) app.Service {
	return &BoltService{Log: log}
}

func (s *BoltService) Search(ctx context.Context, params interface{}, fromTimeStamp, toTimeStamp time.Time) ([]app.Approach, error) {
	parameters, ok := params.(bolt.Configuration)
	if !ok {
		return nil, errors.New("bolt service needs a bolt.Configuration")
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"path": parameters.Path,
	}).Info("Bolt search called")

	return bolt.Between(parameters.Path, fromTimeStamp, toTimeStamp)
}
