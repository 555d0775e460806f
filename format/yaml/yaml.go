package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Loader implements format.Loader for YAML documents using goccy/go-yaml.
type Loader struct{}

// NewLoader creates a new YAML loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions recognized by the YAML loader.
func (l *Loader) Extensions() []string {
	return []string{"yml", "yaml"}
}

// Load parses YAML data into a key/value document. Empty input yields an
// empty document, not an error.
func (l *Loader) Load(name string, data []byte) (map[string]any, error) {
	document := map[string]any{}

	if len(data) == 0 {
		return document, nil
	}

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("loading YAML from %q: %w", name, err)
	}

	return document, nil
}
