package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc, nil
}
