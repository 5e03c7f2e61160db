package executor

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// DecodeBody converts response bytes to text, replacing invalid UTF-8
// sequences with U+FFFD. It never fails.
func DecodeBody(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(decoded)
}

// FormatBody re-indents JSON documents with two spaces. Anything that does not
// parse as JSON is returned unchanged.
func FormatBody(text string) string {
	if !json.Valid([]byte(text)) {
		return text
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return text
	}

	out, err := marshalIndent(value)
	if err != nil {
		return text
	}
	return out
}

// ValidateJSON reports why text is not a JSON document, or nil if it is
func ValidateJSON(text string) error {
	var value any
	return json.Unmarshal([]byte(text), &value)
}

func marshalIndent(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
