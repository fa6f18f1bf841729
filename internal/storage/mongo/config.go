package mongo

import "time"

// Config holds MongoDB connection settings
type Config struct {
	// URI is the connection string (e.g., mongodb://localhost:27017)
	URI string `yaml:"uri"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	// ConnectTimeout bounds the initial connect + ping
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// DefaultConfig matches the database the player collection has always lived in
func DefaultConfig() Config {
	return Config{
		URI:            "mongodb://localhost:27017",
		Database:       "tempFromCompass",
		Collection:     "players",
		ConnectTimeout: 10 * time.Second,
	}
}
