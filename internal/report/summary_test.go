// internal/report/summary_test.go
package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/benchsum/internal/appconfig"
)

func TestParamsFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantConn string
		wantQPS  string
	}{
		{name: "ack file", filename: "ack_10c_100qps.json", wantConn: "10", wantQPS: "100"},
		{name: "e2e file", filename: "e2e_20c_200qps.json", wantConn: "20", wantQPS: "200"},
		{name: "trailing run tokens", filename: "ack_10c_100qps_run2.json", wantConn: "10", wantQPS: "100"},
		{name: "missing qps token", filename: "ack_5c.json", wantConn: "5", wantQPS: ""},
		{name: "no parameters", filename: "ack.json", wantConn: "", wantQPS: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			conn, qps := paramsFromFilename(tt.filename)
			if conn != tt.wantConn || qps != tt.wantQPS {
				t.Fatalf("paramsFromFilename(%q) = %q/%q, want %q/%q", tt.filename, conn, qps, tt.wantConn, tt.wantQPS)
			}
		})
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("unable to write fixture %s: %v", name, err)
	}
}

func fixtureConfig(dir string) *appconfig.Config {
	cfg := &appconfig.Config{ResultsDir: dir}
	cfg.ApplyDefaults()
	return cfg
}

func TestRunSummaryOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "ack_10c_100qps.json", `{
		"count": 1000, "average": 75000000, "rps": 99.5,
		"latencyDistribution": [{"percentage": 50, "latency": 73000000}, {"percentage": 99, "latency": 120000000}],
		"statusCodeDistribution": {"OK": 1000}
	}`)
	writeFixture(t, dir, "ack_20c_200qps.json", `{
		"count": 2000, "rps": 199.25,
		"latencyDistribution": {"p50": 80000000, "p99": 150000000},
		"statusCodeDistribution": {"0": 1990, "14": 10}
	}`)
	writeFixture(t, dir, "e2e_10c_100qps.json", `{
		"count": 500, "rps": 95.11,
		"latencyDistribution": [[50, 60000000], [99, 200000000]],
		"statusCodeDistribution": {"0": 450, "14": 50}
	}`)

	var buf bytes.Buffer
	if err := Run(&buf, fixtureConfig(dir)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := strings.Join([]string{
		"",
		"[ACK-only Mode Results Summary]",
		strings.Repeat("-", 31),
		"Connections | Target QPS | Actual QPS | p50 (ms) | p99 (ms) | Error Rate",
		strings.Repeat("-", 11) + "-+-" + strings.Repeat("-", 10) + "-+-" + strings.Repeat("-", 10) + "-+-" + strings.Repeat("-", 8) + "-+-" + strings.Repeat("-", 8) + "-+-" + strings.Repeat("-", 10),
		"         10 |        100 |      99.50 |   73.000 |  120.000 |      0.00%",
		"         20 |        200 |     199.25 |   80.000 |  150.000 |      0.50%",
		"",
		"",
		"[End-to-end Mode Results Summary]",
		strings.Repeat("-", 33),
		"Connections | Target QPS | Actual QPS | Accepted | p50 (ms) | p99 (ms) | Error Rate",
		strings.Repeat("-", 11) + "-+-" + strings.Repeat("-", 10) + "-+-" + strings.Repeat("-", 10) + "-+-" + strings.Repeat("-", 8) + "-+-" + strings.Repeat("-", 8) + "-+-" + strings.Repeat("-", 8) + "-+-" + strings.Repeat("-", 10),
		"         10 |        100 |      95.11 |      450 |   60.000 |  200.000 |     10.00%",
		"",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Fatalf("unexpected summary output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunMissingResultsDir(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(filepath.Join(t.TempDir(), "does-not-exist"))

	var buf bytes.Buffer
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run returned error for missing directory: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no table output for missing directory, got %q", buf.String())
	}
}

func TestCollectIsolatesParseFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "ack_10c_100qps.json", `{not json`)
	writeFixture(t, dir, "ack_20c_200qps.json", `{"count": 10, "rps": 9.9, "statusCodeDistribution": {"OK": 10}}`)

	cfg := fixtureConfig(dir)
	results, err := Collect(cfg, "ack", cfg.AckGlob)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Error == "" {
		t.Fatal("malformed file did not record an error")
	}
	if results[1].Error != "" {
		t.Fatalf("healthy file recorded an error: %s", results[1].Error)
	}

	rows := ackRows(results)
	if len(rows) != 2 || len(rows[0]) != len(ackHeaders) {
		t.Fatalf("unexpected row shape: %v", rows)
	}
	if !strings.HasPrefix(rows[0][2], "Parse error: ") {
		t.Fatalf("error row missing marker: %q", rows[0][2])
	}
	if rows[0][0] != "10" || rows[0][1] != "100" {
		t.Fatalf("error row lost filename parameters: %v", rows[0])
	}
}

func TestCollectDebugDumpGoesToStderr(t *testing.T) {
	// Swaps os.Stderr, so no t.Parallel.
	dir := t.TempDir()
	writeFixture(t, dir, "ack_10c_100qps.json", `{"count": 100, "rps": 50.0, "statusCodeDistribution": {"OK": 100}}`)

	cfg := fixtureConfig(dir)
	cfg.Debug = true

	origStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe error: %v", err)
	}
	os.Stderr = w

	results, collectErr := Collect(cfg, "ack", cfg.AckGlob)

	w.Close()
	os.Stderr = origStderr

	captured, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stderr: %v", err)
	}
	if collectErr != nil {
		t.Fatalf("Collect returned error: %v", collectErr)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if !strings.Contains(string(captured), "ack_10c_100qps.json") {
		t.Fatalf("debug dump not found on stderr, got %q", captured)
	}

	// The summary writer must stay byte-identical with or without --debug.
	var withDebug, without bytes.Buffer
	if err := Run(&withDebug, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	cfg.Debug = false
	if err := Run(&without, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if withDebug.String() != without.String() {
		t.Fatalf("debug mode changed summary output:\nwith:\n%q\nwithout:\n%q", withDebug.String(), without.String())
	}
}

func TestRunJSONMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "ack_10c_100qps.json", `{"count": 100, "rps": 50.0, "fastest": 2000000, "slowest": 90000000, "statusCodeDistribution": {"OK": 100}}`)
	writeFixture(t, dir, "e2e_10c_100qps.json", `{"count": 100, "rps": 48.0, "statusCodeDistribution": {"0": 90, "14": 10}}`)

	cfg := fixtureConfig(dir)
	cfg.JSONMode = true

	var buf bytes.Buffer
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var results []FileResult
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("JSON mode output did not parse: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Mode != "ack" || results[1].Mode != "e2e" {
		t.Fatalf("unexpected mode order: %s, %s", results[0].Mode, results[1].Mode)
	}
	if results[0].Metrics.FastestMS != 2 || results[0].Metrics.SlowestMS != 90 {
		t.Fatalf("fastest/slowest not carried: %+v", results[0].Metrics)
	}
	if results[1].Metrics.Accepted != 90 || results[1].Metrics.Rejected != 10 {
		t.Fatalf("unexpected e2e counts: %+v", results[1].Metrics)
	}
}
