package tracker

import (
	"context"
	"sort"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/aircraft"
	"github.com/francois-poidevin/flightnotifier/internal/app/geo"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// FlightSource returns the flights seen on one poll, never failing.
type FlightSource interface {
	Fetch(ctx context.Context) []app.FlightRecord
}

// Display renders one notification cycle and blanks the device.
type Display interface {
	Cycle(ctx context.Context, f app.FlightRecord) error
	Clear(ctx context.Context) bool
}

// Exporter publishes the path of the tracked flight.
type Exporter interface {
	Export(ctx context.Context, snapshots []app.PathSnapshot, completed bool) bool
}

//Tracker - polling loop and session state around the closest flight
type Tracker struct {
	Log      *logrus.Logger
	source   FlightSource
	display  Display
	exporter Exporter
	sinker   app.Sinker
	clock    clockwork.Clock

	lat float64
	lon float64

	state   State
	tracked *app.FlightRecord
	cycles  int
	history *History
}

// New builds an idle tracker for the ground location lat,lon. sinker may be nil.
func New(log *logrus.Logger, lat, lon float64, source FlightSource, display Display, exporter Exporter, sinker app.Sinker, clock clockwork.Clock) *Tracker {
	return &Tracker{
		Log:      log,
		source:   source,
		display:  display,
		exporter: exporter,
		sinker:   sinker,
		clock:    clock,
		lat:      lat,
		lon:      lon,
		state:    StateIdle,
		history:  NewHistory(app.HistoryCapacity),
	}
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Cycles() int {
	return t.cycles
}

// Tracked returns the flight of the session as first seen, nil when idle.
func (t *Tracker) Tracked() *app.FlightRecord {
	return t.tracked
}

func (t *Tracker) History() *History {
	return t.history
}

// Run polls every app.PollInterval until ctx is done, then blanks the display.
func (t *Tracker) Run(ctx context.Context) error {
	t.Log.WithContext(ctx).WithFields(logrus.Fields{
		"lat":           t.lat,
		"lon":           t.lon,
		"threshold NM":  app.CloseThresholdNM,
		"max cycles":    app.MaxCycles,
		"poll interval": app.PollInterval,
	}).Info("Tracker started")

	defer t.shutdown()

	for {
		if err := t.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.clock.After(app.PollInterval):
		}
	}
}

// Poll runs one evaluation of the session: fetch, pick the closest flight and
// move the state machine. It only fails when ctx is cancelled during a display cycle.
func (t *Tracker) Poll(ctx context.Context) error {
	flights := t.source.Fetch(ctx)
	if len(flights) == 0 {
		t.Log.WithContext(ctx).Info("No flights found")
		return nil
	}

	for i := range flights {
		flights[i].Distance = geo.Distance(t.lat, t.lon, flights[i].Lat, flights[i].Lon)
	}
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Distance < flights[j].Distance
	})
	closest := flights[0]

	t.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": closest.Callsign,
		"distance": closest.Distance,
		"state":    t.state,
	}).Info("Closest flight")

	if !within(closest.Distance) {
		t.tooFar(ctx, closest)
		return nil
	}

	if t.tracked == nil || closest.Callsign != t.tracked.Callsign {
		t.newFlight(ctx, closest)
	} else {
		t.history.Add(t.snapshot(closest))
	}
	t.exporter.Export(ctx, t.history.Snapshots(), false)

	switch t.state {
	case StateDisplaying:
		t.cycles++
		t.Log.WithContext(ctx).WithFields(logrus.Fields{
			"callsign":       closest.Callsign,
			"cycle":          t.cycles,
			"max cycles":     app.MaxCycles,
			"path snapshots": t.history.Len(),
		}).Info("Displaying cycle")

		if err := t.display.Cycle(ctx, closest); err != nil {
			return err
		}

		if t.cycles >= app.MaxCycles {
			t.state = StateExhausted
			t.Log.WithContext(ctx).WithFields(logrus.Fields{
				"callsign": closest.Callsign,
			}).Info("All cycles displayed")
		}
	case StateExhausted:
		t.Log.WithContext(ctx).WithFields(logrus.Fields{
			"callsign": closest.Callsign,
		}).Debug("Cycles already displayed, waiting for a new flight")
	}

	return nil
}

// within reports whether a distance in NM counts as close, the threshold included.
func within(distance float64) bool {
	return distance <= app.CloseThresholdNM
}

func (t *Tracker) newFlight(ctx context.Context, f app.FlightRecord) {
	t.state = StateNewFlight
	t.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": f.Callsign,
		"distance": f.Distance,
		"type":     aircraft.Name(f.TypeCode),
	}).Info("New close flight")

	if t.tracked != nil {
		// the previous flight is replaced without leaving the zone
		t.sink(ctx, t.history.Snapshots())
	}

	tracked := f
	t.tracked = &tracked
	t.cycles = 0
	t.history.Clear()
	t.history.Add(t.snapshot(f))
	t.state = StateDisplaying
}

func (t *Tracker) tooFar(ctx context.Context, f app.FlightRecord) {
	t.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign":  f.Callsign,
		"distance":  f.Distance,
		"threshold": app.CloseThresholdNM,
	}).Debug("Too far")

	if t.state != StateDisplaying && t.state != StateExhausted {
		return
	}

	t.state = StateDeparted
	t.Log.WithContext(ctx).WithFields(logrus.Fields{
		"callsign": t.tracked.Callsign,
	}).Info("Flight left threshold zone")

	snapshots := t.history.Snapshots()
	t.exporter.Export(ctx, snapshots, true)
	t.sink(ctx, snapshots)

	t.history.Clear()
	t.tracked = nil
	t.cycles = 0
	t.state = StateIdle
}

func (t *Tracker) sink(ctx context.Context, snapshots []app.PathSnapshot) {
	if t.sinker == nil {
		return
	}
	approach, ok := app.Summarize(snapshots)
	if !ok {
		return
	}
	if err := t.sinker.Sink(ctx, t.clock.Now(), approach); err != nil {
		t.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error":    err,
			"callsign": approach.Callsign,
		}).Error("Unable to sink approach")
	}
}

func (t *Tracker) snapshot(f app.FlightRecord) app.PathSnapshot {
	return app.PathSnapshot{FlightRecord: f, Timestamp: t.clock.Now()}
}

func (t *Tracker) shutdown() {
	t.Log.Info("Stopping flight tracker")
	ctx, cancel := context.WithTimeout(context.Background(), app.DisplayTimeout)
	defer cancel()
	t.display.Clear(ctx)
}
