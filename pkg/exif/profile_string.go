package exif

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String returns a string representation of the Entry
func (e *Entry) String() string {
	// Format: [Tag] TYPE (Name): Value
	name := e.Tag.LookupName()
	if name != "" {
		name = " " + name
	}

	valStr := e.Value.String()
	if b, ok := e.Value.data.([]byte); ok && len(b) > 20 {
		valStr = fmt.Sprintf("Binary Data (%d bytes)", len(b))
	} else if n := e.Value.Len(); n > 10 && e.Value.Type.IsInteger() {
		valStr = fmt.Sprintf("Array of %d values", n)
	}

	return fmt.Sprintf("[%s] %s%s: %s", e.Tag, e.Value.Type, name, valStr)
}

// MarshalJSON returns a JSON representation of the Entry
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Tag   string `json:"tag"`
		Name  string `json:"name,omitempty"`
		Type  string `json:"type"`
		Count int    `json:"count"`
		Value any    `json:"value"`
	}{
		Tag:   e.Tag.String(),
		Name:  e.Tag.LookupName(),
		Type:  e.Value.Type.String(),
		Count: e.Value.Count(),
		Value: e.Value.Interface(),
	})
}

// String returns a string representation of the Profile
func (p *Profile) String() string {
	if p == nil {
		return "<nil>"
	}
	var b strings.Builder
	for _, e := range p.Entries() {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// MarshalJSON returns a sorted array of Entries instead of a map
func (p *Profile) MarshalJSON() ([]byte, error) {
	entries := p.Entries()
	if entries == nil {
		entries = []*Entry{}
	}
	return json.Marshal(entries)
}
