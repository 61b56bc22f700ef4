// internal/appconfig/appconfig_test.go
package appconfig

import "testing"

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.ApplyDefaults()

	if cfg.ResultsDir != DefaultResultsDir {
		t.Fatalf("ResultsDir = %q, want %q", cfg.ResultsDir, DefaultResultsDir)
	}
	if cfg.AckGlob != DefaultAckGlob {
		t.Fatalf("AckGlob = %q, want %q", cfg.AckGlob, DefaultAckGlob)
	}
	if cfg.E2EGlob != DefaultE2EGlob {
		t.Fatalf("E2EGlob = %q, want %q", cfg.E2EGlob, DefaultE2EGlob)
	}
}

func TestApplyDefaultsKeepsOverrides(t *testing.T) {
	t.Parallel()

	cfg := Config{ResultsDir: "fixtures", AckGlob: "ack-*.json"}
	cfg.ApplyDefaults()

	if cfg.ResultsDir != "fixtures" {
		t.Fatalf("ResultsDir = %q, want override preserved", cfg.ResultsDir)
	}
	if cfg.AckGlob != "ack-*.json" {
		t.Fatalf("AckGlob = %q, want override preserved", cfg.AckGlob)
	}
	if cfg.E2EGlob != DefaultE2EGlob {
		t.Fatalf("E2EGlob = %q, want %q", cfg.E2EGlob, DefaultE2EGlob)
	}
}
