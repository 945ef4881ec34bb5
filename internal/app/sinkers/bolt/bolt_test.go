package bolt

import (
	"context"
	"io/ioutil"
	"path/filepath"
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

func TestBoltSinker(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "approaches.db")

	sinker := New(newTestLogger()).(*BoltSinker)
	if err := sinker.Init(ctx, Configuration{Path: path}); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	defer sinker.Close()

	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	// inserted out of order, same second with and without fraction
	inputs := []struct {
		at       time.Time
		callsign string
	}{
		{base.Add(500 * time.Millisecond), "SECOND"},
		{base, "FIRST"},
		{base.Add(time.Hour), "THIRD"},
	}
	for _, in := range inputs {
		if err := sinker.Sink(ctx, in.at, app.Approach{Callsign: in.callsign, Distance: 0.7}); err != nil {
			t.Fatalf("unexpected sink error: %v", err)
		}
	}

	approaches, err := sinker.List()
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(approaches) != 3 {
		t.Fatalf("expected 3 approaches, got %d", len(approaches))
	}
	for i, want := range []string{"FIRST", "SECOND", "THIRD"} {
		if approaches[i].Callsign != want {
			t.Errorf("approach %d = %s, want %s", i, approaches[i].Callsign, want)
		}
	}
	if !approaches[0].CompletedAt.Equal(base) {
		t.Errorf("unexpected completion time %v", approaches[0].CompletedAt)
	}
}

func TestBoltSinkerReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "approaches.db")

	sinker := New(newTestLogger()).(*BoltSinker)
	if err := sinker.Init(ctx, Configuration{Path: path}); err != nil {
		t.Fatal(err)
	}
	sinker.Sink(ctx, time.Now(), app.Approach{Callsign: "ASA123"})
	sinker.Close()

	sinker = New(newTestLogger()).(*BoltSinker)
	if err := sinker.Init(ctx, Configuration{Path: path}); err != nil {
		t.Fatal(err)
	}
	defer sinker.Close()

	approaches, err := sinker.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(approaches) != 1 || approaches[0].Callsign != "ASA123" {
		t.Errorf("expected the stored approach after reopen, got %+v", approaches)
	}
}

func TestBoltSinkerWithoutInit(t *testing.T) {
	sinker := New(newTestLogger())
	if err := sinker.Sink(context.Background(), time.Now(), app.Approach{}); err == nil {
		t.Error("expected an error without database")
	}
	if err := sinker.Init(context.Background(), "approaches.db"); err == nil {
		t.Error("expected an error for wrong parameters")
	}
}

func TestBetween(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "approaches.db")

	sinker := New(newTestLogger())
	if err := sinker.Init(ctx, Configuration{Path: path}); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	stored := []struct {
		callsign string
		at       time.Time
	}{
		{"EARLY", base.Add(-time.Nanosecond)},
		{"FROM", base},
		{"MID", base.Add(30*time.Minute + 500*time.Millisecond)},
		{"TO", base.Add(time.Hour)},
		{"LATE", base.Add(time.Hour + time.Millisecond)},
	}
	for _, s := range stored {
		if err := sinker.Sink(ctx, s.at, app.Approach{Callsign: s.callsign}); err != nil {
			t.Fatal(err)
		}
	}
	if err := sinker.Close(); err != nil {
		t.Fatal(err)
	}

	found, err := Between(path, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"FROM", "MID", "TO"}
	if len(found) != len(want) {
		t.Fatalf("expected %v, got %+v", want, found)
	}
	for i, callsign := range want {
		if found[i].Callsign != callsign {
			t.Errorf("position %d: expected %s, got %s", i, callsign, found[i].Callsign)
		}
	}
}

func TestBetweenMissingFile(t *testing.T) {
	found, err := Between(filepath.Join(t.TempDir(), "none.db"), time.Time{}, time.Now())
	if err != nil || len(found) != 0 {
		t.Errorf("expected no approach and no error, got %v / %v", found, err)
	}
}
