package exif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jpfielding/exif.go/pkg/exif/datatype"
	"github.com/jpfielding/exif.go/pkg/exif/tag"
	"go.uber.org/multierr"
)

// datatype 13 (IFD) is used by some writers for sub-directory pointers
const typeIFD datatype.DataType = 13

// Decoder parses EXIF blocks into profiles
type Decoder struct {
	opts DecoderOptions
}

func NewDecoder(opts DecoderOptions) *Decoder {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Decoder{opts: opts}
}

// Decode parses an EXIF block with the default options. It never fails:
// unrecognized data yields an empty profile and broken entries are skipped.
func Decode(data []byte) *Profile {
	p, _ := DecodeWithDiagnostics(data)
	return p
}

// DecodeWithDiagnostics is Decode that also reports every skipped piece as
// one combined error. The returned profile is always usable.
func DecodeWithDiagnostics(data []byte) (*Profile, error) {
	return NewDecoder(DefaultDecoderOptions()).Decode(data)
}

// Parse reads a complete EXIF block from r and decodes it. Only read
// failures are returned.
func Parse(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read exif block: %w", err)
	}
	return Decode(data), nil
}

// ReadFile decodes the EXIF block stored in a file
func ReadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data), nil
}

// Decode parses data, which may start with the APP1 "Exif\0\0" identifier.
// The error, when non-nil, lists what was skipped; it is never fatal.
func (d *Decoder) Decode(data []byte) (*Profile, error) {
	p := NewProfile()
	data = bytes.TrimPrefix(data, exifIdentifier)
	if len(data) == 0 {
		return p, nil
	}
	if len(data) < headerSize {
		return p, malformed("%d bytes is shorter than the TIFF header", len(data))
	}

	var order binary.ByteOrder
	switch string(data[0:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return p, malformed("invalid byte order marker % X", data[0:2])
	}
	if magic := order.Uint16(data[2:4]); magic != 0x002A {
		return p, malformed("invalid TIFF magic 0x%04X", magic)
	}

	w := &walker{
		data:     data,
		order:    order,
		profile:  p,
		visited:  make(map[uint32]bool),
		maxDepth: d.opts.MaxDepth,
		log:      logger(d.opts.Logger),
	}
	next := w.readDirectory(tag.IFD0, order.Uint32(data[4:8]), 0)
	if next != 0 {
		w.readDirectory(tag.IFD1, next, 0)
	}
	return p, w.errs
}

// walker holds the state of a single linear parse
type walker struct {
	data     []byte
	order    binary.ByteOrder
	profile  *Profile
	visited  map[uint32]bool
	maxDepth int
	log      *slog.Logger
	errs     error
}

func (w *walker) skip(err error, attrs ...any) {
	w.log.Debug("skipping exif data", append(attrs, "error", err)...)
	w.errs = multierr.Append(w.errs, err)
}

// subDirectory maps pointer tags to the directory they open
func subDirectory(dir tag.Directory, id uint16) (tag.Directory, bool) {
	switch tag.New(dir, id) {
	case tag.ExifIFDPointer:
		return tag.Exif, true
	case tag.GPSIFDPointer:
		return tag.GPS, true
	case tag.InteropIFDPointer:
		return tag.Interop, true
	}
	return 0, false
}

// readDirectory parses one IFD and returns its next-directory offset, or 0
// when there is none or it cannot be read
func (w *walker) readDirectory(dir tag.Directory, offset uint32, depth int) uint32 {
	size := uint64(len(w.data))
	switch {
	case depth > w.maxDepth:
		w.skip(malformed("%s at %d nested deeper than %d", dir, offset, w.maxDepth))
		return 0
	case w.visited[offset]:
		w.skip(malformed("%s at %d was already read", dir, offset))
		return 0
	case uint64(offset) < headerSize || uint64(offset)+2 > size:
		w.skip(malformed("%s offset %d out of range", dir, offset))
		return 0
	}
	w.visited[offset] = true

	declared := uint64(w.order.Uint16(w.data[offset:]))
	start := uint64(offset) + 2
	count := declared
	if fit := (size - start) / entrySize; count > fit {
		w.skip(malformed("%s at %d declares %d entries, %d fit", dir, offset, declared, fit))
		count = fit
	}

	for i := uint64(0); i < count; i++ {
		w.readEntry(dir, w.data[start+i*entrySize:start+(i+1)*entrySize], depth)
	}

	end := start + count*entrySize
	if count < declared || end+4 > size {
		return 0
	}
	return w.order.Uint32(w.data[end:])
}

func (w *walker) readEntry(dir tag.Directory, raw []byte, depth int) {
	t := tag.New(dir, w.order.Uint16(raw[0:2]))
	typ := datatype.DataType(w.order.Uint16(raw[2:4]))
	count := uint64(w.order.Uint32(raw[4:8]))
	field := raw[8:12]

	if sub, ok := subDirectory(dir, t.ID); ok {
		if (typ != datatype.Long && typ != typeIFD) || count != 1 {
			w.skip(malformed("%s pointer has type %s count %d", t, typ, count), "tag", t)
			return
		}
		w.readDirectory(sub, w.order.Uint32(field), depth+1)
		return
	}
	if tag.IsPointerID(t.ID) {
		// a pointer outside its owning directory; its offset is meaningless once relaid
		w.skip(malformed("%s is a pointer outside its directory", t), "tag", t)
		return
	}

	if !typ.IsValid() {
		w.skip(malformed("%s has unknown type %d", t, uint16(typ)), "tag", t)
		return
	}
	size := count * uint64(typ.Size())
	if size > uint64(len(w.data)) {
		w.skip(malformed("%s count %d exceeds the block", t, count), "tag", t)
		return
	}

	var value []byte
	if size <= inlineLimit {
		value = field[:size]
	} else {
		at := uint64(w.order.Uint32(field))
		if at+size > uint64(len(w.data)) {
			w.skip(malformed("%s value at %d+%d out of range", t, at, size), "tag", t)
			return
		}
		value = w.data[at : at+size]
	}

	if _, exists := w.profile.entries[t]; exists {
		w.skip(malformed("%s repeated", t), "tag", t)
		return
	}
	w.profile.entries[t] = &Entry{Tag: t, Value: decodeValue(typ, int(count), value, w.order)}
}
