// internal/ghz/schema.go
package ghz

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// reportSchema describes the nominal shape current ghz builds emit.
// Summarization stays tolerant of older shapes; this schema exists so
// `benchsum validate` can point out which files have drifted from it.
const reportSchema = `{
  "type": "object",
  "required": ["count"],
  "properties": {
    "count":   {"type": "integer", "minimum": 0},
    "total":   {"type": "number"},
    "average": {"type": "number"},
    "fastest": {"type": "number"},
    "slowest": {"type": "number"},
    "rps":     {"type": "number"},
    "latencyDistribution": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["percentage", "latency"],
        "properties": {
          "percentage": {"type": "integer"},
          "latency":    {"type": "number"}
        }
      }
    },
    "statusCodeDistribution": {
      "type": "object",
      "additionalProperties": {"type": "integer"}
    },
    "errorDistribution": {
      "type": "object",
      "additionalProperties": {"type": "integer"}
    }
  }
}`

// ValidateReport checks one raw result document against the nominal ghz
// schema. It returns one message per violation; an empty slice means the
// document conforms. The error return covers validation machinery
// failures only, not schema drift.
func ValidateReport(raw []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return issues, nil
}
