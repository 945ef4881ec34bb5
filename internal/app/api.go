package app

import (
	"context"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app/aircraft"
)

//FlightRecord - one aircraft as seen on a single feed poll
type FlightRecord struct {
	Callsign    string  `json:"callsign"`
	Altitude    int     `json:"altitude"` //feet
	Speed       int     `json:"speed"`    //kts
	Origin      string  `json:"from"`
	Destination string  `json:"to"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Heading     int     `json:"track"` //degree
	TypeCode    string  `json:"type,omitempty"`
	Distance    float64 `json:"distance"` //NM from the ground location, set after fetch
}

//PathSnapshot - a FlightRecord captured at one poll while tracked
type PathSnapshot struct {
	FlightRecord
	Timestamp time.Time `json:"timestamp"`
}

//Approach - closest approach summary of a tracked flight
type Approach struct {
	Callsign     string    `json:"callsign"`
	TypeCode     string    `json:"type"`
	AircraftName string    `json:"aircraftType"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Distance     float64   `json:"distance"`
	Altitude     int       `json:"altitude"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	SeenAt       time.Time `json:"seenAt"`
	Precision    string    `json:"precision"`
	Overhead     bool      `json:"isOverhead"`
	Snapshots    int       `json:"pathSnapshots"`
	CompletedAt  time.Time `json:"completedAt"`
}

const (
	CloseThresholdNM    = 2.0
	OverheadThresholdNM = 1.0
	MaxCycles           = 5
	PollInterval        = 10 * time.Second
	FeedTimeout         = 15 * time.Second
	DisplayTimeout      = 5 * time.Second
	NotificationTime    = 4 * time.Second
	ExportThrottle      = 5 * time.Second
	HistoryCapacity     = 100

	PlaceholderAirport = "???"
	UnknownCallsign    = "UNKNOWN"
)

//Sinker - destination for closest approaches of departed flights
type Sinker interface {
	Init(ctx context.Context, params interface{}) error
	Sink(ctx context.Context, t time.Time, approach Approach) error
	Close() error
}

//Service - search on stored approaches by completion time
type Service interface {
	Search(ctx context.Context, params interface{}, fromTimeStamp, toTimeStamp time.Time) ([]Approach, error)
}

// Precision labels how well the closest approach is known from the number of
// recorded snapshots.
func Precision(snapshots int) string {
	switch {
	case snapshots >= 3:
		return "high"
	case snapshots > 0:
		return "tracked"
	default:
		return "estimated"
	}
}

// Summarize picks the minimum-distance snapshot. The first one wins on ties.
func Summarize(snapshots []PathSnapshot) (Approach, bool) {
	if len(snapshots) == 0 {
		return Approach{}, false
	}

	closest := snapshots[0]
	for _, s := range snapshots[1:] {
		if s.Distance < closest.Distance {
			closest = s
		}
	}

	return Approach{
		Callsign:     closest.Callsign,
		TypeCode:     closest.TypeCode,
		AircraftName: aircraft.Name(closest.TypeCode),
		Origin:       closest.Origin,
		Destination:  closest.Destination,
		Distance:     closest.Distance,
		Altitude:     closest.Altitude,
		Lat:          closest.Lat,
		Lon:          closest.Lon,
		SeenAt:       closest.Timestamp,
		Precision:    Precision(len(snapshots)),
		Overhead:     closest.Distance < OverheadThresholdNM,
		Snapshots:    len(snapshots),
	}, true
}
