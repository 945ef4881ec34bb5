package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/francois-poidevin/flightnotifier/config"
	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/display"
	"github.com/francois-poidevin/flightnotifier/internal/app/export"
	"github.com/francois-poidevin/flightnotifier/internal/app/feed"
	boltSinker "github.com/francois-poidevin/flightnotifier/internal/app/sinkers/bolt"
	pgSinker "github.com/francois-poidevin/flightnotifier/internal/app/sinkers/db"
	fileSinker "github.com/francois-poidevin/flightnotifier/internal/app/sinkers/file"
	stdoutSinker "github.com/francois-poidevin/flightnotifier/internal/app/sinkers/stdout"
	"github.com/francois-poidevin/flightnotifier/internal/app/tools"
	"github.com/francois-poidevin/flightnotifier/internal/app/tracker"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

//Execute - start the worker
func Execute(ctx context.Context,
	log *logrus.Logger,
	conf config.Configuration) error {

	log.WithContext(ctx).WithFields(logrus.Fields{
		"latitude":    conf.Tracker.Latitude,
		"longitude":   conf.Tracker.Longitude,
		"range (deg)": conf.Tracker.Range,
		"feedURL":     conf.Tracker.FeedURL,
		"sinkerType":  conf.Tracker.Sinkertype,
		"displayURL":  conf.Display.URL,
		"exportPath":  conf.Web.ExportPath,
		"dbHost":      conf.Tracker.Postgres.Host,
		"dbPort":      conf.Tracker.Postgres.Port,
		"dbUser":      conf.Tracker.Postgres.User,
		"dbName":      conf.Tracker.Postgres.Dbname,
	}).Info("START with Configuration params: ")

	sinker, errSinker := NewSinker(log, conf.Tracker.Sinkertype)
	if errSinker != nil {
		return errSinker
	}
	if errInit := sinker.Init(ctx, SinkerParams(conf)); errInit != nil {
		log.WithContext(ctx).WithFields(logrus.Fields{
			"Error":      errInit,
			"sinkerType": conf.Tracker.Sinkertype,
		}).Error("Unable to init sinker")
		return fmt.Errorf("init %s sinker: %w", conf.Tracker.Sinkertype, errInit)
	}
	defer func() {
		if err := sinker.Close(); err != nil {
			log.WithContext(ctx).WithFields(logrus.Fields{
				"Error": err,
			}).Error("Unable to close sinker")
		}
	}()

	ctx, cancel := sigCatch(ctx, log)
	defer cancel()

	t := newTracker(log, conf, sinker, clockwork.NewRealClock())
	return t.Run(ctx)
}

// NewSinker returns the approach sinker registered under sinkerType.
func NewSinker(log *logrus.Logger, sinkerType string) (app.Sinker, error) {
	switch sinkerType {
	case "FILE":
		log.Info("Initiate File Sinker")
		return fileSinker.New(log), nil
	case "STDOUT":
		log.Info("Initiate stdOut Sinker")
		return stdoutSinker.New(log), nil
	case "DB":
		log.Info("Initiate DB Sinker")
		return pgSinker.New(log), nil
	case "BOLT":
		log.Info("Initiate Bolt Sinker")
		return boltSinker.New(log), nil
	default:
		return nil, fmt.Errorf("Wrong sinker specified: %q", sinkerType)
	}
}

// SinkerParams picks the configuration section handed to Sinker.Init.
func SinkerParams(conf config.Configuration) interface{} {
	switch conf.Tracker.Sinkertype {
	case "FILE":
		return conf.Tracker.File
	case "DB":
		return conf.Tracker.Postgres
	case "BOLT":
		return conf.Tracker.Bolt
	default:
		return nil
	}
}

func newTracker(log *logrus.Logger, conf config.Configuration, sinker app.Sinker, clock clockwork.Clock) *tracker.Tracker {
	bbox := tools.BboxAround(conf.Tracker.Latitude, conf.Tracker.Longitude, conf.Tracker.Range)

	source := feed.New(log, conf.Tracker.FeedURL, bbox)
	sequence := display.NewSequence(log, display.New(log, conf.Display.URL), clock, display.Icons{
		Plane: conf.Display.IconPlane,
		Globe: conf.Display.IconGlobe,
		Radar: conf.Display.IconRadar,
	})
	exporter := export.New(log, conf.Web.ExportPath, clock)

	return tracker.New(log, conf.Tracker.Latitude, conf.Tracker.Longitude, source, sequence, exporter, sinker, clock)
}

// sigCatch returns a context cancelled on the first termination signal.
func sigCatch(ctx context.Context, log *logrus.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		defer signal.Stop(sigc)
		select {
		case s := <-sigc:
			log.WithContext(ctx).Info("Signal: " + s.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
