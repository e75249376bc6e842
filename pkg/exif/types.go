package exif

import (
	"sort"

	"github.com/jpfielding/exif.go/pkg/exif/tag"
	"github.com/jpfielding/exif.go/pkg/util"
)

// Tag alias to avoid duplication
type Tag = tag.Tag

// Entry is a single tag and its value
type Entry struct {
	Tag   Tag
	Value Value
}

// Profile is an in-memory EXIF profile. It is not safe for concurrent
// mutation; concurrent reads are fine.
type Profile struct {
	entries map[Tag]*Entry
}

// NewProfile returns an empty profile
func NewProfile() *Profile {
	return &Profile{entries: make(map[Tag]*Entry)}
}

// Set stores v under t, replacing any previous value. Values that will not
// survive encoding (empty, wrong type for the tag) are still stored; Encode
// drops them.
func (p *Profile) Set(t Tag, v Value) error {
	if p == nil {
		return nilArgument("profile")
	}
	if v.IsZero() {
		return nilArgument("value")
	}
	if p.entries == nil {
		p.entries = make(map[Tag]*Entry)
	}
	p.entries[t] = &Entry{Tag: t, Value: v}
	return nil
}

// Get returns the value stored under t
func (p *Profile) Get(t Tag) (Value, bool) {
	if e, ok := p.Find(t); ok {
		return e.Value, true
	}
	return Value{}, false
}

// Find returns an entry by tag
func (p *Profile) Find(t Tag) (*Entry, bool) {
	if p == nil {
		return nil, false
	}
	e, ok := p.entries[t]
	return e, ok
}

// FindID returns the first entry with the numeric id, searching
// directories in canonical order. Useful for tags with no dictionary entry.
func (p *Profile) FindID(id uint16) (*Entry, bool) {
	for _, dir := range tag.Directories {
		if e, ok := p.Find(tag.New(dir, id)); ok {
			return e, true
		}
	}
	return nil, false
}

// Remove deletes the entry for t and reports whether it existed
func (p *Profile) Remove(t Tag) bool {
	if _, ok := p.Find(t); !ok {
		return false
	}
	delete(p.entries, t)
	return true
}

// Len returns the number of stored entries, valid or not
func (p *Profile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Clone returns a copy of p that can be mutated independently. Values are
// shared; they are never modified in place.
func (p *Profile) Clone() *Profile {
	out := NewProfile()
	if p == nil {
		return out
	}
	for t, e := range p.entries {
		out.entries[t] = &Entry{Tag: e.Tag, Value: e.Value}
	}
	return out
}

// Entries returns every entry in canonical order: by directory, then by id
func (p *Profile) Entries() []*Entry {
	if p == nil {
		return nil
	}
	elements := make([]*Entry, 0, len(p.entries))
	for _, e := range p.entries {
		elements = append(elements, e)
	}
	sort.Slice(elements, func(i, j int) bool {
		return less(elements[i].Tag, elements[j].Tag)
	})
	return elements
}

// SetImageUniqueID stores a fresh random ImageUniqueID and returns it
func (p *Profile) SetImageUniqueID() (string, error) {
	id := util.NewUniqueID()
	if err := p.Set(tag.ImageUniqueID, NewASCII(id)); err != nil {
		return "", err
	}
	return id, nil
}

// Fingerprint returns a stable name-based UUID of the encoded profile, or ""
// when nothing would be encoded. Equal profiles share a fingerprint.
func (p *Profile) Fingerprint() string {
	b, err := Encode(p)
	if err != nil || len(b) == 0 {
		return ""
	}
	return util.HashUUID(b)
}

// GetValue reads the value under t as T
func GetValue[T any](p *Profile, t Tag) (T, error) {
	v, ok := p.Get(t)
	if !ok {
		var zero T
		return zero, &tagError{Tag: t, Err: ErrNotFound}
	}
	out, err := As[T](v)
	if err != nil {
		return out, &tagError{Tag: t, Err: err}
	}
	return out, nil
}

type tagError struct {
	Tag Tag
	Err error
}

func (e *tagError) Error() string {
	return e.Tag.String() + ": " + e.Err.Error()
}

func (e *tagError) Unwrap() error {
	return e.Err
}

// rank places directories in canonical encoding order
func rank(d tag.Directory) int {
	for i, dir := range tag.Directories {
		if dir == d {
			return i
		}
	}
	return len(tag.Directories)
}

func less(a, b Tag) bool {
	if a.Directory != b.Directory {
		return rank(a.Directory) < rank(b.Directory)
	}
	return a.ID < b.ID
}
