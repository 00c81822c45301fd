// Package config provides configuration loading and defaults for trackrecord.
package config

import "path/filepath"

// DefaultConfigDir is the default location for trackrecord configuration.
const DefaultConfigDir = "~/.config/trackrecord"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "trackrecord.db"

// DefaultDBPath is the default database location before ~ expansion.
var DefaultDBPath = filepath.Join(DefaultConfigDir, DefaultDBName)

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
