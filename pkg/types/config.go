package types

import "time"

// HTTPConfig holds shared HTTP settings used by resolvers that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "chemreg/0.1 (mailto:someone@example.com)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolveConfig holds settings for a batch resolution run.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputPath is the destination CSV file. Overwritten on each run.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ReportPath is an optional YAML run report destination. Empty disables it.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// ArchivePath is an optional SQLite archive database. Empty disables it.
	ArchivePath string `json:"archive_path,omitempty" yaml:"archive_path,omitempty"`
}

// StoreConfig holds settings for archive queries.
type StoreConfig struct {
	// ArchivePath is the SQLite archive database file.
	ArchivePath string `json:"archive_path" yaml:"archive_path"`

	// MaxResults is the maximum number of rows returned per lookup (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
