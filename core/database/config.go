package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the SQLite database file (sqlite driver only).
	Path string `mapstructure:"path" default:"data/derived/lang_atlas.db"`
	// Host is the database host (mysql driver only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql driver only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql driver only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql driver only).
	Password string `mapstructure:"password" default:""`
	// Name is the database name (mysql driver only).
	Name string `mapstructure:"name" default:"lang_atlas"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
