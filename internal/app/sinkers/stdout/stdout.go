package stdout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/sirupsen/logrus"
)

type StdOutSinker struct {
	Log *logrus.Logger
}

func New(log *logrus.Logger) app.Sinker {
	//init the logger here
	return &StdOutSinker{Log: log}
}

func (s *StdOutSinker) Init(ctx context.Context, params interface{}) error {
	//Nothing to do here
	return nil
}

func (s *StdOutSinker) Sink(ctx context.Context, t time.Time, approach app.Approach) error {
	approach.CompletedAt = t
	Marshal, err := json.Marshal(approach)
	if err != nil {
		return err
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": approach.Callsign,
		"distance": approach.Distance,
		"overhead": approach.Overhead,
	}).Info("========Closest approach=============")
	s.Log.WithContext(ctx).Debug(" Approach " + string(Marshal))

	return nil
}

func (s *StdOutSinker) Close() error {
	return nil
}
