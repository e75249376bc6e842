package tag

import (
	"encoding/json"
	"fmt"
)

// String returns a string representation of the Tag (DIR:0xIIII)
func (t Tag) String() string {
	return fmt.Sprintf("%s:0x%04X", t.Directory, t.ID)
}

// MarshalJSON returns a JSON representation of the Tag
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// LookupName returns the dictionary name for known tags, or "" for unknown ones
func (t Tag) LookupName() string {
	if info, ok := Lookup(t); ok {
		return info.Name
	}
	return ""
}
