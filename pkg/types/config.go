// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DecodeBackend identifies the structure decoder implementation.
type DecodeBackend string

const (
	BackendNode DecodeBackend = "node"
	BackendHTTP DecodeBackend = "http"
	BackendNone DecodeBackend = "none"
)

// DecodeConfig holds settings for the structure decode stage.
type DecodeConfig struct {
	// Backend selects the decoder: node (local script), http (remote
	// service), or none (leave idcode columns unresolved).
	Backend DecodeBackend `json:"backend" yaml:"backend"`

	// ScriptPath is the decode script run by the node backend.
	ScriptPath string `json:"script_path" yaml:"script_path"`

	// Timeout bounds one batch decode call (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// ServiceURL is the endpoint used by the http backend.
	ServiceURL string `json:"service_url,omitempty" yaml:"service_url,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited HTTP
	// responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// UserAgent is the User-Agent header sent by the http backend
	// (e.g. "dwarconv/0.1").
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// DefaultDecodeTimeout bounds one external decode call.
const DefaultDecodeTimeout = 30 * time.Second

// CacheConfig holds settings for the decode result cache.
type CacheConfig struct {
	// Path is the SQLite database file. Empty disables caching.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ConvertConfig groups the settings used by one conversion run.
type ConvertConfig struct {
	Decode DecodeConfig `json:"decode" yaml:"decode"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`

	// KeepStructureColumns retains the original idcode, coordinate, and
	// Smiles columns in the output instead of dropping them.
	KeepStructureColumns bool `json:"keep_structure_columns" yaml:"keep_structure_columns"`
}
