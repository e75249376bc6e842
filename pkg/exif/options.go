package exif

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"
)

// ByteOrder selects the TIFF byte order marker written by the encoder
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota // "II"
	BigEndian                     // "MM"
)

// ParseByteOrder accepts "little", "le", "ii", "big", "be" and "mm"
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le", "ii":
		return LittleEndian, nil
	case "big", "be", "mm":
		return BigEndian, nil
	}
	return LittleEndian, fmt.Errorf("unknown byte order %q", s)
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

func (o ByteOrder) binary() byteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) marker() []byte {
	if o == BigEndian {
		return []byte("MM")
	}
	return []byte("II")
}

// EncoderOptions controls the output layout
type EncoderOptions struct {
	ByteOrder ByteOrder
	// ExifHeader prefixes the block with the APP1 "Exif\0\0" identifier
	ExifHeader bool
	// Logger receives dropped-entry messages; slog.Default() when nil
	Logger *slog.Logger
}

// DecoderOptions controls how far the decoder follows directory pointers
type DecoderOptions struct {
	// MaxDepth bounds sub-directory nesting below IFD0 and IFD1
	MaxDepth int
	// Logger receives skipped-entry messages; slog.Default() when nil
	Logger *slog.Logger
}

// DefaultMaxDepth covers IFD0 -> Exif -> Interop with room to spare
const DefaultMaxDepth = 4

func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{ByteOrder: LittleEndian}
}

func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{MaxDepth: DefaultMaxDepth}
}

func logger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
