// Package config provides configuration loading and defaults for passgate.
package config

// DefaultConfigDir is the default location for passgate configuration.
const DefaultConfigDir = "~/.config/passgate"

// DefaultDBName is the filename for the analysis-history database.
const DefaultDBName = "passgate.db"

// DefaultCommonPath is the default common-secrets list location. Empty
// means the embedded default list is used.
const DefaultCommonPath = ""

// DefaultDictionaryPath is the default language dictionary. The analyzer
// degrades gracefully when it is absent.
const DefaultDictionaryPath = "/usr/share/dict/words"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultHistory holds the default history-recording preferences.
var DefaultHistory = History{
	Enabled: true,
}
