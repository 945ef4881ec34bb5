package file

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// record is one CSV line of the approaches history
type record struct {
	CompletedAt  string  `csv:"completed_at"`
	Callsign     string  `csv:"callsign"`
	TypeCode     string  `csv:"type"`
	AircraftName string  `csv:"aircraft_type"`
	Origin       string  `csv:"origin"`
	Destination  string  `csv:"destination"`
	Distance     float64 `csv:"distance_nm"`
	Altitude     int     `csv:"altitude_ft"`
	Lat          float64 `csv:"lat"`
	Lon          float64 `csv:"lon"`
	SeenAt       string  `csv:"seen_at"`
	Precision    string  `csv:"precision"`
	Overhead     bool    `csv:"overhead"`
	Snapshots    int     `csv:"snapshots"`
}

type FileSinker struct {
	Log      *logrus.Logger
	fHistory *os.File
	empty    bool
}

func New(log *logrus.Logger) app.Sinker {
	//init the logger here
	return &FileSinker{Log: log}
}

func (s *FileSinker) Init(ctx context.Context, params interface{}) error {
	parameters, ok := params.(Configuration)
	if !ok {
		return errors.New("file sinker needs a file.Configuration")
	}

	if dir := filepath.Dir(parameters.History); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			s.Log.WithContext(ctx).WithFields(logrus.Fields{
				"Error": err,
			}).Error("Unable to create folder '" + dir + "'")
			return err
		}
	}

	fHistory, err := os.OpenFile(parameters.History,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
		}).Error("Unable to Open file")
		return err
	}

	fi, err := fHistory.Stat()
	if err != nil {
		fHistory.Close()
		return err
	}

	s.fHistory = fHistory
	s.empty = fi.Size() == 0

	return nil
}

func (s *FileSinker) Sink(ctx context.Context, t time.Time, approach app.Approach) error {
	if s.fHistory == nil {
		return errors.New("No history file for storing approaches")
	}

	w := bufio.NewWriter(s.fHistory)
	rows := []*record{toRecord(t, approach)}

	var err error
	if s.empty {
		err = gocsv.Marshal(&rows, w)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, w)
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	s.empty = false

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": approach.Callsign,
		"file":     s.fHistory.Name(),
	}).Debug("Approach written")

	return nil
}

func (s *FileSinker) Close() error {
	if s.fHistory == nil {
		return nil
	}
	return s.fHistory.Close()
}

// ReadAll loads the approaches history written by the file sinker.
func ReadAll(path string) ([]app.Approach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return []app.Approach{}, nil
	}

	rows := []*record{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	result := make([]app.Approach, 0, len(rows))
	for _, r := range rows {
		a, err := r.toApproach()
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func toRecord(t time.Time, a app.Approach) *record {
	return &record{
		CompletedAt:  t.UTC().Format(time.RFC3339Nano),
		Callsign:     a.Callsign,
		TypeCode:     a.TypeCode,
		AircraftName: a.AircraftName,
		Origin:       a.Origin,
		Destination:  a.Destination,
		Distance:     a.Distance,
		Altitude:     a.Altitude,
		Lat:          a.Lat,
		Lon:          a.Lon,
		SeenAt:       a.SeenAt.UTC().Format(time.RFC3339Nano),
		Precision:    a.Precision,
		Overhead:     a.Overhead,
		Snapshots:    a.Snapshots,
	}
}

func (r *record) toApproach() (app.Approach, error) {
	completedAt, err := time.Parse(time.RFC3339Nano, r.CompletedAt)
	if err != nil {
		return app.Approach{}, err
	}
	seenAt, err := time.Parse(time.RFC3339Nano, r.SeenAt)
	if err != nil {
		return app.Approach{}, err
	}
	return app.Approach{
		Callsign:     r.Callsign,
		TypeCode:     r.TypeCode,
		AircraftName: r.AircraftName,
		Origin:       r.Origin,
		Destination:  r.Destination,
		Distance:     r.Distance,
		Altitude:     r.Altitude,
		Lat:          r.Lat,
		Lon:          r.Lon,
		SeenAt:       seenAt,
		Precision:    r.Precision,
		Overhead:     r.Overhead,
		Snapshots:    r.Snapshots,
		CompletedAt:  completedAt,
	}, nil
}
