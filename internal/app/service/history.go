package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/file"
	"github.com/sirupsen/logrus"
)

// HistoryService searches the CSV history written by the FILE sinker.
type HistoryService struct {
	Log *logrus.Logger
}

func NewHistory(log *logrus.Logger) app.Service {
	return &HistoryService{Log: log}
}

// Search returns the approaches completed within [from, to], in file order.
// A history that does not exist yet holds no approach.
func (s *HistoryService) Search(ctx context.Context, params interface{}, fromTimeStamp, toTimeStamp time.Time) ([]app.Approach, error) {
	parameters, ok := params.(file.Configuration)
	if !ok {
		return nil, errors.New("history service needs a file.Configuration")
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"history": parameters.History,
	}).Info("History search called")

	approaches, err := file.ReadAll(parameters.History)
	if os.IsNotExist(err) {
		return []app.Approach{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := make([]app.Approach, 0)
	for _, a := range approaches {
		if a.CompletedAt.Before(fromTimeStamp) || a.CompletedAt.After(toTimeStamp) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}
