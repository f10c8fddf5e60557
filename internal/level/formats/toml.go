package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file. Objects are written as [[objects]]
// tables and their chains as [[objects.behaviours]].
func ParseTOML(data []byte) (Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Document{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Document{}, fmt.Errorf("toml decode: unknown keys %v", undecoded)
	}
	return doc, nil
}
