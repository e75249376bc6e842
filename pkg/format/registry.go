// Package format provides an explicit lookup table of image format
// information, queried by format, file name or sniffed content.
package format

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
)

// Format identifies an image format
type Format string

const (
	Unknown  Format = ""
	JPEG     Format = "JPEG"
	JPG      Format = "JPG"
	PNG      Format = "PNG"
	GIF      Format = "GIF"
	WebP     Format = "WEBP"
	BMP      Format = "BMP"
	TIFF     Format = "TIFF"
	JP2      Format = "JP2"
	Gradient Format = "GRADIENT"
	Pango    Format = "PANGO"
)

// Magic is a byte pattern expected at an offset
type Magic struct {
	Offset int
	Bytes  []byte
}

// Signature matches when every Magic matches
type Signature []Magic

func (s Signature) match(data []byte) bool {
	for _, m := range s {
		if m.Offset < 0 || len(data) < m.Offset+len(m.Bytes) {
			return false
		}
		if !bytes.Equal(data[m.Offset:m.Offset+len(m.Bytes)], m.Bytes) {
			return false
		}
	}
	return len(s) > 0
}

// Info describes what the engine can do with a format
type Info struct {
	Format                Format
	ModuleFormat          Format
	Description           string
	MimeType              string // empty when the format has none
	IsReadable            bool
	IsWritable            bool
	IsMultiFrame          bool
	CanReadMultithreaded  bool
	CanWriteMultithreaded bool
	Extensions            []string
	Signatures            []Signature
}

func (i Info) clone() *Info {
	c := i
	c.Extensions = append([]string(nil), i.Extensions...)
	c.Signatures = append([]Signature(nil), i.Signatures...)
	return &c
}

// Registry is an immutable table of format information; safe for
// concurrent use once built
type Registry struct {
	order    []Format
	byFormat map[Format]Info
	byExt    map[string]Format
}

// NewRegistry builds a registry. Later infos replace earlier ones with the
// same Format. Detection tries formats in registration order.
func NewRegistry(infos ...Info) *Registry {
	r := &Registry{
		byFormat: make(map[Format]Info, len(infos)),
		byExt:    make(map[string]Format),
	}
	for _, info := range infos {
		if info.ModuleFormat == Unknown {
			info.ModuleFormat = info.Format
		}
		if _, exists := r.byFormat[info.Format]; !exists {
			r.order = append(r.order, info.Format)
		}
		r.byFormat[info.Format] = info
		r.byExt[strings.ToLower(string(info.Format))] = info.Format
		for _, ext := range info.Extensions {
			r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))] = info.Format
		}
	}
	return r
}

// Lookup returns the info for f, or nil when f is not registered
func (r *Registry) Lookup(f Format) *Info {
	info, ok := r.byFormat[f]
	if !ok {
		return nil
	}
	return info.clone()
}

// LookupFile resolves a format from the file name extension. It returns nil
// for unknown extensions.
func (r *Registry) LookupFile(fileName string) (*Info, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, &ArgumentError{Param: "fileName", Err: ErrEmptyArgument}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	f, ok := r.byExt[ext]
	if !ok || ext == "" {
		return nil, nil
	}
	return r.Lookup(f), nil
}

// Detect sniffs the format from leading bytes. It returns nil when no
// signature matches.
func (r *Registry) Detect(data []byte) (*Info, error) {
	if data == nil {
		return nil, &ArgumentError{Param: "data", Err: ErrNilArgument}
	}
	if len(data) == 0 {
		return nil, &ArgumentError{Param: "data", Err: ErrEmptyArgument}
	}
	for _, f := range r.order {
		info := r.byFormat[f]
		for _, sig := range info.Signatures {
			if sig.match(data) {
				return info.clone(), nil
			}
		}
	}
	return nil, nil
}

// Formats lists the registered formats sorted by name
func (r *Registry) Formats() []Format {
	out := append([]Format(nil), r.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
