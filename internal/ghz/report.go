// internal/ghz/report.go
// Package ghz parses result files written by the ghz gRPC benchmarking
// tool and normalizes them into a single stable metrics shape. The tool
// has changed its output schema over time (map vs list percentile
// encodings, status-code vs error-distribution reporting), so the three
// distribution fields are decoded lazily and shape-dispatched rather
// than bound to one struct.
package ghz

import (
	"encoding/json"
	"fmt"
	"os"
)

// Report mirrors one ghz result document. Scalar durations are
// nanoseconds. The distribution fields keep their raw JSON so the
// normalizer can dispatch on whichever shape the producing version used.
type Report struct {
	Count   float64 `json:"count"`
	Average float64 `json:"average"`
	Fastest float64 `json:"fastest"`
	Slowest float64 `json:"slowest"`
	Rps     float64 `json:"rps"`

	LatencyDistribution    json.RawMessage `json:"latencyDistribution"`
	StatusCodeDistribution json.RawMessage `json:"statusCodeDistribution"`
	ErrorDistribution      json.RawMessage `json:"errorDistribution"`
}

// Metrics is the normalized view of one benchmark run. Durations are
// milliseconds. Accepted+Rejected always equals Total when Total > 0.
type Metrics struct {
	Total     int64   `json:"total"`
	AvgMS     float64 `json:"avgMs"`
	FastestMS float64 `json:"fastestMs"`
	SlowestMS float64 `json:"slowestMs"`
	P50MS     float64 `json:"p50Ms"`
	P99MS     float64 `json:"p99Ms"`
	Accepted  int64   `json:"accepted"`
	Rejected  int64   `json:"rejected"`
	QPS       float64 `json:"qps"`
}

// ErrorRate returns the rejected share of Total as a percentage, 0 when
// no requests were recorded.
func (m Metrics) ErrorRate() float64 {
	if m.Total <= 0 {
		return 0
	}
	return float64(m.Rejected) / float64(m.Total) * 100
}

// Parse decodes one ghz result document and normalizes it.
func Parse(raw []byte) (Metrics, error) {
	var rep Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		return Metrics{}, fmt.Errorf("json did not match ghz report schema: %w", err)
	}
	return Normalize(rep), nil
}

// ParseFile reads and normalizes a single result file.
func ParseFile(path string) (Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("unable to read result file %s: %w", path, err)
	}
	metrics, err := Parse(data)
	if err != nil {
		return Metrics{}, fmt.Errorf("unable to parse result file %s: %w", path, err)
	}
	return metrics, nil
}
