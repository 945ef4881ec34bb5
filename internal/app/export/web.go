package export

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const (
	StatusWaiting   = "waiting"
	StatusTracking  = "tracking"
	StatusCompleted = "completed"

	waitingMessage = "No flights detected yet"
)

type waitingDocument struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type closestApproach struct {
	Distance  float64   `json:"distance"`
	Altitude  int       `json:"altitude"`
	Timestamp time.Time `json:"timestamp"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Precision string    `json:"precision"`
}

type flight struct {
	Callsign     string `json:"callsign"`
	AircraftType string `json:"aircraftType"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
}

type trackingDocument struct {
	ClosestApproach closestApproach `json:"closestApproach"`
	Flight          flight          `json:"flight"`
	OverheadScore   float64         `json:"overheadScore"`
	IsOverhead      bool            `json:"isOverhead"`
	PathSnapshots   int             `json:"pathSnapshots"`
	Status          string          `json:"status"`
	Timestamp       time.Time       `json:"timestamp"`
}

//WebExporter - writes the closest approach of the tracked flight for the web view
type WebExporter struct {
	Log   *logrus.Logger
	path  string
	clock clockwork.Clock
	last  time.Time
}

func New(log *logrus.Logger, path string, clock clockwork.Clock) *WebExporter {
	return &WebExporter{
		Log:   log,
		path:  path,
		clock: clock,
	}
}

func (e *WebExporter) Path() string {
	return e.path
}

// Export writes the document for snapshots unless the previous write is less
// than app.ExportThrottle old. completed forces the write and marks the flight
// as gone. It reports whether a write was attempted; write errors are only logged.
func (e *WebExporter) Export(ctx context.Context, snapshots []app.PathSnapshot, completed bool) bool {
	now := e.clock.Now()
	if !completed && !e.last.IsZero() && now.Sub(e.last) < app.ExportThrottle {
		return false
	}
	e.last = now

	doc := Build(snapshots, completed, now)
	if err := e.write(doc); err != nil {
		e.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
			"path":  e.path,
		}).Error("Unable to export web data")
		return true
	}

	if approach, ok := app.Summarize(snapshots); ok && completed {
		e.Log.WithContext(ctx).WithFields(logrus.Fields{
			"distance":  round2(approach.Distance),
			"altitude":  approach.Altitude,
			"precision": approach.Precision,
		}).Info("Web export: closest approach")
	}
	return true
}

// Build returns the web document for snapshots at time now.
func Build(snapshots []app.PathSnapshot, completed bool, now time.Time) interface{} {
	approach, ok := app.Summarize(snapshots)
	if !ok {
		return waitingDocument{
			Status:    StatusWaiting,
			Message:   waitingMessage,
			Timestamp: now,
		}
	}

	status := StatusTracking
	if completed {
		status = StatusCompleted
	}

	return trackingDocument{
		ClosestApproach: closestApproach{
			Distance:  round2(approach.Distance),
			Altitude:  approach.Altitude,
			Timestamp: approach.SeenAt,
			Lat:       approach.Lat,
			Lon:       approach.Lon,
			Precision: approach.Precision,
		},
		Flight: flight{
			Callsign:     approach.Callsign,
			AircraftType: approach.AircraftName,
			Origin:       approach.Origin,
			Destination:  approach.Destination,
		},
		OverheadScore: round2(approach.Distance),
		IsOverhead:    approach.Overhead,
		PathSnapshots: approach.Snapshots,
		Status:        status,
		Timestamp:     now,
	}
}

// write replaces the export file with a single rename.
func (e *WebExporter) write(doc interface{}) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(e.path)
	tmp, err := ioutil.TempFile(dir, ".export-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), e.path)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
