// internal/report/summary.go
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mwiater/benchsum/internal/appconfig"
	"github.com/mwiater/benchsum/internal/ghz"
	"github.com/mwiater/benchsum/internal/logging"
)

const (
	ackTitle = "[ACK-only Mode Results Summary]"
	e2eTitle = "[End-to-end Mode Results Summary]"
)

var (
	ackHeaders = []string{"Connections", "Target QPS", "Actual QPS", "p50 (ms)", "p99 (ms)", "Error Rate"}
	e2eHeaders = []string{"Connections", "Target QPS", "Actual QPS", "Accepted", "p50 (ms)", "p99 (ms)", "Error Rate"}
)

// FileResult is one result file after discovery and normalization. The
// Connections and TargetQPS columns come from the filename, never from
// file contents.
type FileResult struct {
	Mode        string      `json:"mode"`
	File        string      `json:"file"`
	Connections string      `json:"connections"`
	TargetQPS   string      `json:"targetQps"`
	Metrics     ghz.Metrics `json:"metrics"`
	Error       string      `json:"error,omitempty"`
}

// Run discovers ack/e2e result files, normalizes each one, and writes
// the two summary tables (or a JSON array in JSON mode) to w. A missing
// results directory is reported once on stderr and is not an error.
func Run(w io.Writer, cfg *appconfig.Config) error {
	info, err := os.Stat(cfg.ResultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: results directory %s does not exist\n", cfg.ResultsDir)
			return nil
		}
		return fmt.Errorf("unable to stat results directory %s: %w", cfg.ResultsDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("results path is not a directory: %s", cfg.ResultsDir)
	}

	ack, err := Collect(cfg, "ack", cfg.AckGlob)
	if err != nil {
		return err
	}
	e2e, err := Collect(cfg, "e2e", cfg.E2EGlob)
	if err != nil {
		return err
	}

	if cfg.JSONMode {
		return writeJSON(w, append(ack, e2e...))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ackTitle)
	fmt.Fprintln(w, strings.Repeat("-", len(ackTitle)))
	RenderTable(w, ackHeaders, ackRows(ack))

	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, e2eTitle)
	fmt.Fprintln(w, strings.Repeat("-", len(e2eTitle)))
	RenderTable(w, e2eHeaders, e2eRows(e2e))

	fmt.Fprintln(w)
	return nil
}

// Collect globs one mode's result files in lexicographic filename order
// and normalizes each. A file that fails to parse yields a FileResult
// with Error set; it never aborts the batch.
func Collect(cfg *appconfig.Config, mode, glob string) ([]FileResult, error) {
	paths, err := filepath.Glob(filepath.Join(cfg.ResultsDir, glob))
	if err != nil {
		return nil, fmt.Errorf("bad results glob %q: %w", glob, err)
	}
	sort.Strings(paths)

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		connections, targetQPS := paramsFromFilename(filepath.Base(path))
		result := FileResult{
			Mode:        mode,
			File:        filepath.Base(path),
			Connections: connections,
			TargetQPS:   targetQPS,
		}

		metrics, err := ghz.ParseFile(path)
		if err != nil {
			result.Error = err.Error()
			logging.LogEvent("[SUMMARY] %v", err)
		} else {
			result.Metrics = metrics
			if cfg.Debug {
				// Stdout carries the table/JSON contract; the dump may not.
				pp.Fprintln(os.Stderr, result)
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// paramsFromFilename pulls the two run parameters out of the
// `<mode>_<connections>c_<qps>qps*.json` naming convention.
func paramsFromFilename(name string) (connections, targetQPS string) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, "_")
	if len(parts) > 1 {
		connections = strings.TrimSuffix(parts[1], "c")
	}
	if len(parts) > 2 {
		targetQPS = strings.TrimSuffix(parts[2], "qps")
	}
	return connections, targetQPS
}

func ackRows(results []FileResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			rows = append(rows, errorRow(r, len(ackHeaders)))
			continue
		}
		m := r.Metrics
		rows = append(rows, []string{
			r.Connections,
			r.TargetQPS,
			fmt.Sprintf("%.2f", m.QPS),
			fmt.Sprintf("%.3f", m.P50MS),
			fmt.Sprintf("%.3f", m.P99MS),
			fmt.Sprintf("%.2f%%", m.ErrorRate()),
		})
	}
	return rows
}

func e2eRows(results []FileResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			rows = append(rows, errorRow(r, len(e2eHeaders)))
			continue
		}
		m := r.Metrics
		rows = append(rows, []string{
			r.Connections,
			r.TargetQPS,
			fmt.Sprintf("%.2f", m.QPS),
			fmt.Sprintf("%d", m.Accepted),
			fmt.Sprintf("%.3f", m.P50MS),
			fmt.Sprintf("%.3f", m.P99MS),
			fmt.Sprintf("%.2f%%", m.ErrorRate()),
		})
	}
	return rows
}

// errorRow keeps a failed file visible in the table: the error message
// lands in the Actual QPS slot and the numeric columns stay blank.
func errorRow(r FileResult, columns int) []string {
	row := make([]string, columns)
	row[0] = r.Connections
	row[1] = r.TargetQPS
	row[2] = "Parse error: " + r.Error
	return row
}

func writeJSON(w io.Writer, results []FileResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal summary JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}
	return nil
}
