package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON level file. Unknown fields are rejected.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("json decode: %w", err)
	}
	return doc, nil
}
