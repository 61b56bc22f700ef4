// internal/ghz/normalize.go
package ghz

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Candidate field names for percentile entries, tried in order. Older
// ghz builds emitted "percentage"; other producers use "percentile" or
// "p", and "value" instead of "latency".
var (
	percentileKeys = []string{"percentage", "percentile", "p"}
	latencyKeys    = []string{"latency", "value"}
)

// shapeKind tags the decoded form of a distribution field.
type shapeKind int

const (
	shapeAbsent shapeKind = iota
	shapeMapping
	shapeSequence
)

// Normalize reduces a raw report to Metrics. Missing fields never fail:
// absent numbers are zero and absent distributions resolve to zero
// counts. The accepted/rejected pair is repaired against Total before
// returning so one stale field cannot skew the error rate.
func Normalize(rep Report) Metrics {
	m := Metrics{
		Total:     int64(rep.Count),
		AvgMS:     rep.Average / 1e6,
		FastestMS: rep.Fastest / 1e6,
		SlowestMS: rep.Slowest / 1e6,
		QPS:       rep.Rps,
	}

	p50ns, p99ns := resolvePercentiles(rep.LatencyDistribution)
	m.P50MS = p50ns / 1e6
	m.P99MS = p99ns / 1e6

	accepted, rejected := resolveStatusCounts(rep.StatusCodeDistribution)

	// Older runs report failures only through errorDistribution.
	if accepted == 0 && rejected == 0 && m.Total > 0 {
		rejected = countErrors(rep.ErrorDistribution)
		accepted = m.Total - rejected
	}

	// Trust rejected and total over a possibly stale accepted count.
	if accepted+rejected != m.Total && m.Total > 0 {
		accepted = m.Total - rejected
	}
	if m.Total <= 0 {
		accepted, rejected = 0, 0
	}

	m.Accepted = accepted
	m.Rejected = rejected
	return m
}

// resolvePercentiles extracts p50/p99 latencies (nanoseconds) from
// whichever latencyDistribution shape the producer emitted.
func resolvePercentiles(raw json.RawMessage) (p50, p99 float64) {
	switch rawShape(raw) {
	case shapeMapping:
		var byLabel map[string]json.RawMessage
		if err := json.Unmarshal(raw, &byLabel); err != nil {
			return 0, 0
		}
		p50, _ = numericValue(byLabel["p50"])
		p99, _ = numericValue(byLabel["p99"])
		return p50, p99
	case shapeSequence:
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return 0, 0
		}
		for _, entry := range entries {
			rank, latency, ok := decodePercentileEntry(entry)
			if !ok {
				continue
			}
			switch rank {
			case "50":
				p50 = latency
			case "99":
				p99 = latency
			}
		}
		return p50, p99
	default:
		return 0, 0
	}
}

// decodePercentileEntry handles both entry encodings: an object with a
// percentile-identifying field and a latency field, or a bare
// [percentile, latency] pair. The rank comes back as normalized decimal
// text so numeric 50 and string "50" compare equal.
func decodePercentileEntry(raw json.RawMessage) (rank string, latency float64, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, key := range percentileKeys {
			value, present := fields[key]
			if !present {
				continue
			}
			rank, ok = rankText(value)
			break
		}
		if !ok {
			return "", 0, false
		}
		for _, key := range latencyKeys {
			if value, present := fields[key]; present {
				latency, _ = numericValue(value)
				break
			}
		}
		return rank, latency, true
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err == nil && len(pair) >= 2 {
		rank, ok = rankText(pair[0])
		if !ok {
			return "", 0, false
		}
		latency, _ = numericValue(pair[1])
		return rank, latency, true
	}

	return "", 0, false
}

// resolveStatusCounts splits statusCodeDistribution into success and
// failure totals. gRPC code 0, the string "0", and "OK" in any case all
// mean success. A list-shaped distribution (seen from some producers)
// only tells us how many failure buckets there were, so its length
// stands in for the rejected count.
func resolveStatusCounts(raw json.RawMessage) (accepted, rejected int64) {
	switch rawShape(raw) {
	case shapeMapping:
		var byStatus map[string]json.RawMessage
		if err := json.Unmarshal(raw, &byStatus); err != nil {
			return 0, 0
		}
		for status, rawCount := range byStatus {
			count := integerValue(rawCount)
			if status == "0" || strings.EqualFold(status, "OK") {
				accepted += count
			} else {
				rejected += count
			}
		}
		return accepted, rejected
	case shapeSequence:
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return 0, 0
		}
		return 0, int64(len(entries))
	default:
		return 0, 0
	}
}

// countErrors derives a rejected count from errorDistribution: the sum
// of its numeric values when it is a mapping (non-numeric values are
// skipped), or its length when it is a sequence.
func countErrors(raw json.RawMessage) int64 {
	switch rawShape(raw) {
	case shapeMapping:
		var byLabel map[string]json.RawMessage
		if err := json.Unmarshal(raw, &byLabel); err != nil {
			return 0
		}
		var total int64
		for _, rawCount := range byLabel {
			total += integerValue(rawCount)
		}
		return total
	case shapeSequence:
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return 0
		}
		return int64(len(entries))
	default:
		return 0
	}
}

// rawShape peeks at the first JSON token to classify a distribution
// field without committing to a full decode.
func rawShape(raw json.RawMessage) shapeKind {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return shapeMapping
		case '[':
			return shapeSequence
		default:
			return shapeAbsent
		}
	}
	return shapeAbsent
}

// numericValue decodes a JSON number, returning 0 for anything else.
func numericValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// integerValue coerces a JSON number to int64; non-numeric values
// (including numeric strings) count as 0.
func integerValue(raw json.RawMessage) int64 {
	f, ok := numericValue(raw)
	if !ok {
		return 0
	}
	return int64(f)
}

// rankText renders a percentile indicator as normalized decimal text.
// Numbers lose a trailing ".0"; strings pass through trimmed.
func rankText(raw json.RawMessage) (string, bool) {
	if f, ok := numericValue(raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}
