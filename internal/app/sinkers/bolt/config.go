package bolt

// Configuration settings for bolt sinking
type Configuration struct {
	Path string `toml:"path" default:"approaches.db" comment:"bolt database file"`
}
