package exif

import (
	"bytes"
	"io"
	"os"
	"sort"
	"sync/atomic"

	"github.com/jpfielding/exif.go/pkg/exif/datatype"
	"github.com/jpfielding/exif.go/pkg/exif/tag"
)

const (
	headerSize  = 8
	entrySize   = 12
	inlineLimit = 4
)

var exifIdentifier = []byte("Exif\x00\x00")

// Encoder serializes profiles into TIFF-structured EXIF blocks
type Encoder struct {
	opts EncoderOptions
}

func NewEncoder(opts EncoderOptions) *Encoder {
	return &Encoder{opts: opts}
}

// Encode serializes p with the default options (little endian, no APP1 identifier)
func Encode(p *Profile) ([]byte, error) {
	return NewEncoder(DefaultEncoderOptions()).Encode(p)
}

// Write writes the encoded profile to w
func Write(w io.Writer, p *Profile) (int64, error) {
	return NewEncoder(DefaultEncoderOptions()).Write(w, p)
}

// WriteFile writes the encoded profile to a file
func WriteFile(path string, p *Profile) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Write(f, p)
}

// Write writes the encoded profile to w
func (e *Encoder) Write(w io.Writer, p *Profile) (int64, error) {
	b, err := e.Encode(p)
	if err != nil {
		return 0, err
	}
	cw := &CountingWriter{Writer: w}
	_, err = cw.Write(b)
	return cw.Count.Load(), err
}

// rawEntry is a directory entry ready for layout
type rawEntry struct {
	id    uint16
	typ   datatype.DataType
	count uint32
	data  []byte
	// target is set for pointer entries; data is filled once offsets are known
	target *directory
}

type directory struct {
	dir     tag.Directory
	entries []*rawEntry
	offset  uint32
}

// dataSize is the word-aligned size of values that do not fit inline
func (d *directory) dataSize() uint32 {
	var n uint32
	for _, e := range d.entries {
		if len(e.data) > inlineLimit {
			n += uint32(len(e.data) + len(e.data)%2)
		}
	}
	return n
}

func (d *directory) size() uint32 {
	return 2 + uint32(len(d.entries))*entrySize + 4 + d.dataSize()
}

// Encode serializes p. Entries that are empty or do not match their tag's
// declaration are dropped. A profile with nothing left to write encodes to
// zero bytes.
func (e *Encoder) Encode(p *Profile) ([]byte, error) {
	if p == nil {
		return nil, nilArgument("profile")
	}
	order := e.opts.ByteOrder.binary()
	log := logger(e.opts.Logger)

	groups := make(map[tag.Directory]*directory)
	group := func(dir tag.Directory) *directory {
		d, ok := groups[dir]
		if !ok {
			d = &directory{dir: dir}
			groups[dir] = d
		}
		return d
	}

	valid := 0
	for _, entry := range p.Entries() {
		if err := entry.Value.validate(entry.Tag); err != nil {
			log.Debug("dropping exif entry", "tag", entry.Tag, "name", entry.Tag.LookupName(), "error", err)
			continue
		}
		d := group(entry.Tag.Directory)
		d.entries = append(d.entries, &rawEntry{
			id:    entry.Tag.ID,
			typ:   entry.Value.Type,
			count: uint32(entry.Value.Count()),
			data:  entry.Value.encode(order),
		})
		valid++
	}
	if valid == 0 {
		return []byte{}, nil
	}

	// IFD0 always exists so sub-directories have somewhere to hang from
	ifd0 := group(tag.IFD0)
	if interop, ok := groups[tag.Interop]; ok {
		exif := group(tag.Exif)
		exif.entries = append(exif.entries, pointer(tag.InteropIFDPointer, interop))
	}
	if exif, ok := groups[tag.Exif]; ok {
		ifd0.entries = append(ifd0.entries, pointer(tag.ExifIFDPointer, exif))
	}
	if gps, ok := groups[tag.GPS]; ok {
		ifd0.entries = append(ifd0.entries, pointer(tag.GPSIFDPointer, gps))
	}

	// Assign offsets in canonical order
	var dirs []*directory
	offset := uint32(headerSize)
	for _, dir := range tag.Directories {
		d, ok := groups[dir]
		if !ok {
			continue
		}
		sort.Slice(d.entries, func(i, j int) bool { return d.entries[i].id < d.entries[j].id })
		d.offset = offset
		offset += d.size()
		dirs = append(dirs, d)
	}
	for _, d := range dirs {
		for _, re := range d.entries {
			if re.target != nil {
				re.data = order.AppendUint32(nil, re.target.offset)
			}
		}
	}

	var buf bytes.Buffer
	buf.Grow(len(exifIdentifier) + int(offset))
	if e.opts.ExifHeader {
		buf.Write(exifIdentifier)
	}
	buf.Write(e.opts.ByteOrder.marker())
	buf.Write(order.AppendUint16(nil, 0x002A))
	buf.Write(order.AppendUint32(nil, headerSize))

	for _, d := range dirs {
		var next uint32
		if d.dir == tag.IFD0 {
			if thumb, ok := groups[tag.IFD1]; ok {
				next = thumb.offset
			}
		}
		writeDirectory(&buf, order, d, next)
	}
	return buf.Bytes(), nil
}

func pointer(t Tag, target *directory) *rawEntry {
	return &rawEntry{id: t.ID, typ: datatype.Long, count: 1, target: target}
}

// writeDirectory emits the entry count, the entries, the next offset and the
// data area of a single directory
func writeDirectory(buf *bytes.Buffer, order byteOrder, d *directory, next uint32) {
	dataOffset := d.offset + 2 + uint32(len(d.entries))*entrySize + 4
	var data []byte

	buf.Write(order.AppendUint16(nil, uint16(len(d.entries))))
	for _, re := range d.entries {
		field := make([]byte, 0, entrySize)
		field = order.AppendUint16(field, re.id)
		field = order.AppendUint16(field, uint16(re.typ))
		field = order.AppendUint32(field, re.count)
		if len(re.data) <= inlineLimit {
			var inline [inlineLimit]byte
			copy(inline[:], re.data)
			field = append(field, inline[:]...)
		} else {
			field = order.AppendUint32(field, dataOffset+uint32(len(data)))
			data = append(data, re.data...)
			if len(re.data)%2 != 0 {
				data = append(data, 0)
			}
		}
		buf.Write(field)
	}
	buf.Write(order.AppendUint32(nil, next))
	buf.Write(data)
}

type CountingWriter struct {
	Count  atomic.Int64
	Writer io.Writer
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.Writer.Write(p)
	c.Count.Add(int64(n))
	return n, err
}
