package json

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Loader implements format.Loader for JSON documents using goccy/go-json.
type Loader struct{}

// NewLoader creates a new JSON loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions recognized by the JSON loader.
func (l *Loader) Extensions() []string {
	return []string{"json"}
}

// Load parses JSON data into a key/value document. Empty input yields an
// empty document, not an error.
func (l *Loader) Load(name string, data []byte) (map[string]any, error) {
	document := map[string]any{}

	if len(data) == 0 {
		return document, nil
	}

	err := json.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("loading JSON from %q: %w", name, err)
	}

	return document, nil
}
