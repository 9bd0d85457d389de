package types

import "time"

// HTTPConfig holds shared HTTP settings for commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gst-archive/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ArchiveConfig holds settings for fetching and archiving notifications.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory renamed notification PDFs are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
