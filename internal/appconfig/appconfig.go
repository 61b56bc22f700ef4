// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultResultsDir is where the benchmark scripts drop ghz output.
	DefaultResultsDir = "benchmark_results"
	// DefaultAckGlob matches ack-only mode result files.
	DefaultAckGlob = "ack_*.json"
	// DefaultE2EGlob matches end-to-end mode result files.
	DefaultE2EGlob = "e2e_*.json"
)

// Config represents the top-level application configuration.
type Config struct {
	ResultsDir string `json:"resultsDir"`
	AckGlob    string `json:"ackGlob"`
	E2EGlob    string `json:"e2eGlob"`
	LogFile    string `json:"logFile,omitempty"`
	Debug      bool   `json:"debug"`
	JSONMode   bool   `json:"jsonMode"`
	ConfigPath string `json:"-"`
}

// ApplyDefaults fills any zero-valued discovery settings so callers can
// rely on a usable snapshot even without a config file.
func (c *Config) ApplyDefaults() {
	if c.ResultsDir == "" {
		c.ResultsDir = DefaultResultsDir
	}
	if c.AckGlob == "" {
		c.AckGlob = DefaultAckGlob
	}
	if c.E2EGlob == "" {
		c.E2EGlob = DefaultE2EGlob
	}
}
