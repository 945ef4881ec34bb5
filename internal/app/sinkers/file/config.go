package file

// Configuration settings for file sinking
type Configuration struct {
	History string `toml:"history" default:"approaches.csv" comment:"closest approaches history (CSV)"`
}
