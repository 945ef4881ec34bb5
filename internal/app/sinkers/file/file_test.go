package file

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = new(logrus.TextFormatter)
	log.Formatter.(*logrus.TextFormatter).DisableColors = true
	log.Formatter.(*logrus.TextFormatter).DisableTimestamp = true
	log.Level = logrus.TraceLevel
	log.Out = ioutil.Discard
	return log
}

func approach(callsign string, distance float64, seen time.Time) app.Approach {
	return app.Approach{
		Callsign:     callsign,
		TypeCode:     "B738",
		AircraftName: "737-800",
		Origin:       "SEA",
		Destination:  "PDX",
		Distance:     distance,
		Altitude:     3200,
		Lat:          45.63,
		Lon:          -122.53,
		SeenAt:       seen,
		Precision:    "high",
		Overhead:     distance < 1,
		Snapshots:    7,
	}
}

func TestFileSinker(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "log", "approaches.csv")
	seen := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)

	sinker := New(newTestLogger())
	if err := sinker.Init(ctx, Configuration{History: path}); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if err := sinker.Sink(ctx, seen.Add(time.Minute), approach("ASA123", 0.42, seen)); err != nil {
		t.Fatalf("unexpected sink error: %v", err)
	}
	if err := sinker.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	// reopening appends without a second header
	sinker = New(newTestLogger())
	if err := sinker.Init(ctx, Configuration{History: path}); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if err := sinker.Sink(ctx, seen.Add(time.Hour), approach("UAL9", 1.7, seen.Add(59*time.Minute))); err != nil {
		t.Fatalf("unexpected sink error: %v", err)
	}
	sinker.Close()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "completed_at"); n != 1 {
		t.Errorf("expected one header line, got %d:\n%s", n, b)
	}

	approaches, err := ReadAll(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if len(approaches) != 2 {
		t.Fatalf("expected 2 approaches, got %d", len(approaches))
	}

	first := approaches[0]
	want := approach("ASA123", 0.42, seen)
	want.CompletedAt = seen.Add(time.Minute)
	if first.Callsign != want.Callsign || first.Distance != want.Distance || !first.SeenAt.Equal(want.SeenAt) ||
		!first.CompletedAt.Equal(want.CompletedAt) || !first.Overhead || first.Snapshots != 7 {
		t.Errorf("unexpected approach %+v", first)
	}
	if approaches[1].Callsign != "UAL9" || approaches[1].Overhead {
		t.Errorf("unexpected approach %+v", approaches[1])
	}
}

func TestFileSinkerWithoutInit(t *testing.T) {
	sinker := New(newTestLogger())
	if err := sinker.Sink(context.Background(), time.Now(), app.Approach{}); err == nil {
		t.Error("expected an error without history file")
	}
}

func TestFileSinkerWrongParams(t *testing.T) {
	sinker := New(newTestLogger())
	if err := sinker.Init(context.Background(), "approaches.csv"); err == nil {
		t.Error("expected an error for wrong parameters")
	}
}

func TestReadAllEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approaches.csv")
	sinker := New(newTestLogger())
	if err := sinker.Init(context.Background(), Configuration{History: path}); err != nil {
		t.Fatal(err)
	}
	sinker.Close()

	approaches, err := ReadAll(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(approaches) != 0 {
		t.Errorf("expected no approaches, got %d", len(approaches))
	}
}
