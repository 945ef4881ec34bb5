package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/tools"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultURL = "https://data-cloud.flightradar24.com/zones/fcgi/feed.js"

	feedOptions = "&faa=1&satellite=1&mlat=1&flarm=1&adsb=1&gnd=1&air=1&vehicles=0&estimated=1&maxage=14400&gliders=1&stats=1"
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.0"

	// minimum fields of a flight entry, callsign is the last one we read
	minFields = 14
)

// positions of the fields in a flight entry of the zone feed
const (
	idxLat         = 1
	idxLon         = 2
	idxTrack       = 3
	idxAltitude    = 4
	idxGroundSpeed = 5
	idxType        = 8
	idxOrigin      = 11
	idxDestination = 12
	idxCallsign    = 13
)

//Client - flightradar24 zone feed reader for one bounding box
type Client struct {
	Log        *logrus.Logger
	baseURL    string
	bbox       tools.Bbox
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(log *logrus.Logger, baseURL string, bbox tools.Bbox) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		Log:     log,
		baseURL: baseURL,
		bbox:    bbox,
		httpClient: &http.Client{
			Timeout: app.FeedTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Fetch returns the flights currently in the bounding box. Any failure is
// logged and yields no flights.
func (c *Client) Fetch(ctx context.Context) []app.FlightRecord {
	flights, err := c.fetch(ctx)
	if err != nil {
		c.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
		}).Error("Unable to get flights")
		return []app.FlightRecord{}
	}

	c.Log.WithContext(ctx).WithFields(logrus.Fields{
		"number of Flights": len(flights),
	}).Debug("Flights fetched")
	return flights
}

func (c *Client) requestURL() string {
	return c.baseURL + "?bounds=" + c.bbox.Bounds() + feedOptions
}

func (c *Client) fetch(ctx context.Context) ([]app.FlightRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		resp.Body.Close()
	}()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	return unMarshalByte(body)
}

// unMarshalByte reads every value that looks like a flight entry. The feed
// mixes flights with metadata keys (full_count, version, stats), those and
// any short array are skipped.
func unMarshalByte(byt []byte) ([]app.FlightRecord, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(byt, &data); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []app.FlightRecord{}
	for _, k := range keys {
		s, ok := data[k].([]interface{})
		if !ok || len(s) < minFields {
			continue
		}
		result = append(result, toFlightRecord(s))
	}

	return result, nil
}

func toFlightRecord(s []interface{}) app.FlightRecord {
	callsign := app.UnknownCallsign
	if v := asString(s[idxCallsign]); v != "" {
		callsign = strings.TrimSpace(v)
	}

	return app.FlightRecord{
		Callsign:    callsign,
		Altitude:    asInt(s[idxAltitude]),
		Speed:       asInt(s[idxGroundSpeed]),
		Origin:      orPlaceholder(asString(s[idxOrigin])),
		Destination: orPlaceholder(asString(s[idxDestination])),
		Lat:         asFloat(s[idxLat]),
		Lon:         asFloat(s[idxLon]),
		Heading:     asInt(s[idxTrack]),
		TypeCode:    asString(s[idxType]),
	}
}

func orPlaceholder(code string) string {
	if code == "" {
		return app.PlaceholderAirport
	}
	return code
}

// asString returns "" for empty values (null, "", 0, false).
func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if !t {
			return ""
		}
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}
