package intern

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
)

// candidateSchema rejects AI output that is missing required fields or uses
// an unknown category. The model's output is untrusted input: field presence
// is never assumed.
const candidateSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["company", "title", "type", "skills"],
    "properties": {
      "company": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "type": {"type": "string", "enum": ["government", "private-based"]},
      "sector": {"type": "string"},
      "skills": {"type": "array", "items": {"type": "string"}, "minItems": 1},
      "duration": {"type": "string"},
      "location": {"type": "string"},
      "stipend": {"type": "string"},
      "description": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(candidateSchema)

// ErrNoJSONArray is returned when the AI response contains no bracketed array.
var ErrNoJSONArray = errors.New("response contains no json array")

// ExtractArray returns the span between the first '[' and the last ']' in the
// text. Models routinely wrap JSON in prose or code fences, so the array is
// carved out before parsing rather than expecting clean output.
func ExtractArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONArray
	}
	return raw[start : end+1], nil
}

// ParseCandidates validates and decodes an AI-generated candidate array.
// Any schema violation rejects the whole response; partially valid output is
// never accepted.
func ParseCandidates(raw string) ([]*Candidate, error) {
	payload, err := ExtractArray(raw)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("validate candidates: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("candidates failed schema validation: %s", strings.Join(issues, "; "))
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("candidate array is empty")
	}

	candidates := make([]*Candidate, 0, len(items))
	for i, item := range items {
		var candidate Candidate
		if err := mapstructure.Decode(item, &candidate); err != nil {
			return nil, fmt.Errorf("decode candidate %d: %w", i, err)
		}
		candidates = append(candidates, &candidate)
	}

	return candidates, nil
}
