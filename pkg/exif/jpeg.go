package exif

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// JPEG markers
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7
)

// ReadJPEG scans a JPEG stream for its APP1 Exif segment and decodes it.
// Scanning stops at the first scan header; a stream without Exif data, or
// one that ends early, yields an empty profile.
func ReadJPEG(r io.Reader) (*Profile, error) {
	if r == nil {
		return nil, nilArgument("r")
	}
	br := bufio.NewReader(r)

	var soi [2]byte
	if _, err := io.ReadFull(br, soi[:]); err != nil || soi[0] != 0xFF || soi[1] != markerSOI {
		return nil, ErrNotJPEG
	}

	for {
		marker, err := nextMarker(br)
		if err != nil {
			return eofIsEmpty(err)
		}
		switch {
		case marker == markerSOS || marker == markerEOI:
			return NewProfile(), nil
		case marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7):
			continue // standalone markers carry no length
		}

		var length uint16
		if err := binary.Read(br, binary.BigEndian, &length); err != nil {
			return eofIsEmpty(err)
		}
		if length < 2 {
			return NewProfile(), nil
		}
		segment := make([]byte, length-2)
		if _, err := io.ReadFull(br, segment); err != nil {
			return eofIsEmpty(err)
		}
		if marker == markerAPP1 && bytes.HasPrefix(segment, exifIdentifier) {
			return Decode(segment), nil
		}
	}
}

// nextMarker skips to the next 0xFF and any fill bytes after it
func nextMarker(br *bufio.Reader) (byte, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, fmt.Errorf("%w: expected marker, got 0x%02X", ErrMalformed, b)
	}
	for b == 0xFF {
		if b, err = br.ReadByte(); err != nil {
			return 0, err
		}
	}
	return b, nil
}

// eofIsEmpty treats truncated streams and broken marker chains as "no metadata"
func eofIsEmpty(err error) (*Profile, error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrMalformed) {
		return NewProfile(), nil
	}
	return nil, fmt.Errorf("failed to read jpeg: %w", err)
}
