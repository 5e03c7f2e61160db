package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmespath/go-jmespath"
)

// Query is a compiled JMESPath expression applied to response bodies
type Query struct {
	expression string
	jp         *jmespath.JMESPath
}

// Compile parses a JMESPath expression. An empty expression yields a nil Query.
func Compile(expression string) (*Query, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	return &Query{expression: expression, jp: jp}, nil
}

// String returns the source expression
func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return q.expression
}

// Apply runs the query against a JSON document and returns the selected value.
// A nil Query returns the decoded document unchanged.
func (q *Query) Apply(jsonStr string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(jsonStr))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing data after document")
	}
	data = normalizeNumbers(data)

	if q == nil {
		return data, nil
	}

	result, err := q.jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	return result, nil
}

// maxExactInt is the largest integer a float64 holds without rounding
const maxExactInt = 1 << 53

// normalizeNumbers turns json.Number values into float64 so JMESPath
// comparisons and functions work, except integers beyond float64 precision,
// which stay json.Number and re-encode verbatim.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	case json.Number:
		if isInteger(v) {
			i, err := v.Int64()
			if err != nil || i > maxExactInt || i < -maxExactInt {
				return v
			}
		}
		f, err := v.Float64()
		if err != nil {
			return v
		}
		return f
	default:
		return value
	}
}

func isInteger(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}
