package display

import (
	"context"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Icons names the device icons used by the cycle. They must exist on the device.
type Icons struct {
	Plane string
	Globe string
	Radar string
}

//Sequence - aircraft, route then distance, each held on screen for a fixed time
type Sequence struct {
	Log      *logrus.Logger
	notifier Notifier
	clock    clockwork.Clock
	icons    Icons
}

func NewSequence(log *logrus.Logger, notifier Notifier, clock clockwork.Clock, icons Icons) *Sequence {
	return &Sequence{
		Log:      log,
		notifier: notifier,
		clock:    clock,
		icons:    icons,
	}
}

// Notifications returns the three messages of one display cycle for f.
func (s *Sequence) Notifications(f app.FlightRecord) []Notification {
	color := AltitudeColor(f.Altitude)
	return []Notification{
		{Text: AircraftText(f), Icon: s.icons.Plane, Color: color, Duration: app.NotificationTime},
		{Text: RouteText(f), Icon: s.icons.Globe, Color: color, Duration: app.NotificationTime},
		{Text: DistanceText(f), Icon: s.icons.Radar, Color: color, Duration: app.NotificationTime},
	}
}

// Cycle sends the notifications back to back and waits for each one to be
// rendered. A failed notification does not shorten the wait.
func (s *Sequence) Cycle(ctx context.Context, f app.FlightRecord) error {
	for _, n := range s.Notifications(f) {
		s.notifier.Notify(ctx, n)
		if err := s.wait(ctx, n.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the display.
func (s *Sequence) Clear(ctx context.Context) bool {
	return s.notifier.Notify(ctx, Notification{Text: "", Duration: time.Second})
}

func (s *Sequence) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(d):
		return nil
	}
}
