package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/bolt"
)

func TestBoltSearch(t *testing.T) {
	ctx := context.Background()
	conf := bolt.Configuration{Path: filepath.Join(t.TempDir(), "approaches.db")}

	sinker := bolt.New(log)
	if err := sinker.Init(ctx, conf); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	for i, callsign := range []string{"ASA123", "DAL45", "UAL9"} {
		if err := sinker.Sink(ctx, base.Add(time.Duration(i)*time.Hour), app.Approach{Callsign: callsign}); err != nil {
			t.Fatal(err)
		}
	}
	if err := sinker.Close(); err != nil {
		t.Fatal(err)
	}

	found, err := NewBolt(log).Search(ctx, conf, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 || found[0].Callsign != "ASA123" || found[1].Callsign != "DAL45" {
		t.Errorf("unexpected approaches %+v", found)
	}
}

func TestBoltSearchMissingFile(t *testing.T) {
	conf := bolt.Configuration{Path: filepath.Join(t.TempDir(), "none", "approaches.db")}

	found, err := NewBolt(log).Search(context.Background(), conf, time.Time{}, time.Now())
	if err != nil || len(found) != 0 {
		t.Errorf("expected no approach and no error, got %v / %v", found, err)
	}
	if _, err := os.Stat(conf.Path); !os.IsNotExist(err) {
		t.Errorf("search must not create %s: %v", conf.Path, err)
	}
	if _, err := os.Stat(filepath.Dir(conf.Path)); !os.IsNotExist(err) {
		t.Errorf("search must not create the folder: %v", err)
	}
}

func TestBoltSearchWrongParams(t *testing.T) {
	if _, err := NewBolt(log).Search(context.Background(), "approaches.db", time.Time{}, time.Now()); err == nil {
		t.Error("expected an error for parameters that are not a bolt.Configuration")
	}
}
