package settings

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jpfielding/exif.go/pkg/format"
)

// ErrInvalidSamplingFactor is returned for SamplingFactor values outside the known set
var ErrInvalidSamplingFactor = errors.New("settings: invalid sampling factor")

// DCTMethod selects the JPEG DCT implementation
type DCTMethod string

const (
	DCTFast  DCTMethod = "Fast"
	DCTFloat DCTMethod = "Float"
	DCTSlow  DCTMethod = "Slow"
)

// SamplingFactor is a chroma subsampling ratio
type SamplingFactor int

const (
	SamplingUndefined SamplingFactor = iota
	Sampling410
	Sampling411
	Sampling420
	Sampling422
	Sampling440
	Sampling444
)

// Factors returns the engine's per-component sampling string
func (s SamplingFactor) Factors() (string, error) {
	switch s {
	case Sampling410:
		return "4x2,1x1,1x1", nil
	case Sampling411:
		return "4x1,1x1,1x1", nil
	case Sampling420:
		return "2x2,1x1,1x1", nil
	case Sampling422:
		return "2x1,1x1,1x1", nil
	case Sampling440:
		return "1x2,1x1,1x1", nil
	case Sampling444:
		return "1x1,1x1,1x1", nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidSamplingFactor, int(s))
}

// JPEGWriteDefines are the jpeg:* defines applied when a JPEG is written.
// Nil fields are not emitted.
type JPEGWriteDefines struct {
	ArithmeticCoding   *bool           // jpeg:arithmetic-coding
	DCTMethod          *DCTMethod      // jpeg:dct-method
	Extent             *int            // jpeg:extent, in kilobytes
	OptimizeCoding     *bool           // jpeg:optimize-coding
	QuantizationTables string          // jpeg:q-table, a file name
	SamplingFactor     *SamplingFactor // jpeg:sampling-factor
}

// Format returns the format the defines apply to
func (d *JPEGWriteDefines) Format() format.Format {
	return format.JPEG
}

// Defines returns the active defines in a fixed order
func (d *JPEGWriteDefines) Defines() ([]Define, error) {
	var out []Define
	add := func(name, value string) {
		out = append(out, Define{Format: format.JPEG, Name: name, Value: value})
	}

	if d.ArithmeticCoding != nil {
		add("arithmetic-coding", strconv.FormatBool(*d.ArithmeticCoding))
	}
	if d.DCTMethod != nil {
		add("dct-method", string(*d.DCTMethod))
	}
	if d.Extent != nil {
		add("extent", strconv.Itoa(*d.Extent)+"KB")
	}
	if d.OptimizeCoding != nil {
		add("optimize-coding", strconv.FormatBool(*d.OptimizeCoding))
	}
	if d.QuantizationTables != "" {
		add("q-table", d.QuantizationTables)
	}
	if d.SamplingFactor != nil {
		factors, err := d.SamplingFactor.Factors()
		if err != nil {
			return nil, err
		}
		add("sampling-factor", factors)
	}
	return out, nil
}

// Ptr returns a pointer to v, for filling optional fields
func Ptr[T any](v T) *T {
	return &v
}
