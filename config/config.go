package config

import (
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/bolt"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/db"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/file"
)

// Configuration contains conectivity settings
type Configuration struct {
	Log struct {
		Level string `toml:"level" default:"info" comment:"Log level: trace, debug, info, warn, error, fatal and panic"`
	} `toml:"Log" comment:"###############################\n Logs Settings \n##############################"`

	Tracker struct {
		Latitude   float64            `toml:"latitude" default:"45.625280431872" comment:"ground location latitude"`
		Longitude  float64            `toml:"longitude" default:"-122.52811167430798" comment:"ground location longitude"`
		Range      float64            `toml:"range" default:"0.5" comment:"bounding box margin around the ground location (degree)"`
		FeedURL    string             `toml:"feedURL" default:"https://data-cloud.flightradar24.com/zones/fcgi/feed.js" comment:"flightradar24 zone feed"`
		Sinkertype string             `toml:"sinkertype" default:"FILE" comment:"the sinker Type use for closest approaches (STDOUT|FILE|DB|BOLT)"`
		File       file.Configuration `toml:"file" comment:"###############################\n file sinker configuration \n##############################"`
		Postgres   db.Configuration   `toml:"db" mapstructure:"db" comment:"###############################\n db sinker configuration \n##############################"`
		Bolt       bolt.Configuration `toml:"bolt" comment:"###############################\n bolt sinker configuration \n##############################"`
	} `toml:"Tracker" comment:"###############################\n Tracker Settings \n##############################"`

	Display struct {
		URL       string `toml:"url" default:"http://192.168.5.56/api/notify" comment:"AWTRIX notify endpoint"`
		IconPlane string `toml:"iconPlane" default:"airplane" comment:"icon shown with the aircraft type"`
		IconGlobe string `toml:"iconGlobe" default:"globe" comment:"icon shown with the route"`
		IconRadar string `toml:"iconRadar" default:"radar" comment:"icon shown with distance and altitude"`
	} `toml:"Display" comment:"###############################\n Display Settings \n##############################"`

	Web struct {
		ExportPath string `toml:"exportPath" default:"./flights-web.json" comment:"closest approach export for the web view"`
		Listen     string `toml:"listen" default:":8080" comment:"serve command listen address"`
	} `toml:"Web" comment:"###############################\n Web Settings \n##############################"`
}
