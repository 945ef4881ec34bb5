package display

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/sirupsen/logrus"
)

//Notification - one message rendered by the display device
type Notification struct {
	Text     string
	Icon     string
	Color    string
	Duration time.Duration
}

// Notifier sends a notification and reports whether the device accepted it.
type Notifier interface {
	Notify(ctx context.Context, n Notification) bool
}

type payload struct {
	Text     string      `json:"text"`
	Icon     interface{} `json:"icon"`
	Color    string      `json:"color"`
	Duration int         `json:"duration"`
	Repeat   int         `json:"repeat"`
}

//Client - HTTP client of the AWTRIX notify API
type Client struct {
	Log        *logrus.Logger
	url        string
	httpClient *http.Client
}

func New(log *logrus.Logger, url string) *Client {
	return &Client{
		Log: log,
		url: url,
		httpClient: &http.Client{
			Timeout: app.DisplayTimeout,
		},
	}
}

// Notify posts n to the device. Failures are logged and reported as false.
func (c *Client) Notify(ctx context.Context, n Notification) bool {
	if err := c.post(ctx, n); err != nil {
		c.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
			"text":  n.Text,
		}).Error("Unable to send notification")
		return false
	}

	c.Log.WithContext(ctx).WithFields(logrus.Fields{
		"text": n.Text,
		"icon": n.Icon,
	}).Info("Notification sent")
	return true
}

func (c *Client) post(ctx context.Context, n Notification) error {
	p := payload{
		Text:     n.Text,
		Icon:     n.Icon,
		Color:    n.Color,
		Duration: int(n.Duration / time.Second),
		Repeat:   1,
	}
	if n.Icon == "" {
		p.Icon = 0
	}
	if p.Color == "" {
		p.Color = ColorWhite
	}

	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(ioutil.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("display returned status %d", resp.StatusCode)
	}

	return nil
}
