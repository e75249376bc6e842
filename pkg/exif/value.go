package exif

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/jpfielding/exif.go/pkg/exif/datatype"
	"github.com/jpfielding/exif.go/pkg/exif/tag"
)

// byteOrder is what both binary.LittleEndian and binary.BigEndian provide
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Rational is an unsigned fraction (RATIONAL)
type Rational struct {
	Num uint32 `json:"num"`
	Den uint32 `json:"den"`
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float returns the fraction as a float, or 0 for a zero denominator
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// SRational is a signed fraction (SRATIONAL)
type SRational struct {
	Num int32 `json:"num"`
	Den int32 `json:"den"`
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float returns the fraction as a float, or 0 for a zero denominator
func (r SRational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Value is a typed EXIF value. The zero Value holds nothing and is rejected
// by Profile.Set.
//
// The payload is one of: []byte (BYTE, UNDEFINED), string (ASCII), []uint16,
// []uint32, []Rational, []int8, []int16, []int32, []SRational, []float32,
// []float64.
type Value struct {
	Type datatype.DataType
	data any
}

// NewByte and friends build values of the matching type. Slices are copied.
func NewByte(v ...uint8) Value {
	return Value{datatype.Byte, clone(v)}
}

func NewASCII(s string) Value {
	return Value{datatype.ASCII, s}
}

func NewShort(v ...uint16) Value {
	return Value{datatype.Short, clone(v)}
}

func NewLong(v ...uint32) Value {
	return Value{datatype.Long, clone(v)}
}

func NewRational(v ...Rational) Value {
	return Value{datatype.Rational, clone(v)}
}

func NewSByte(v ...int8) Value {
	return Value{datatype.SByte, clone(v)}
}

func NewUndefined(b []byte) Value {
	return Value{datatype.Undefined, clone(b)}
}

func NewSShort(v ...int16) Value {
	return Value{datatype.SShort, clone(v)}
}

func NewSLong(v ...int32) Value {
	return Value{datatype.SLong, clone(v)}
}

func NewSRational(v ...SRational) Value {
	return Value{datatype.SRational, clone(v)}
}

func NewFloat(v ...float32) Value {
	return Value{datatype.Float, clone(v)}
}

func NewDouble(v ...float64) Value {
	return Value{datatype.Double, clone(v)}
}

func clone[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// IsZero returns true for the zero Value
func (v Value) IsZero() bool {
	return v.data == nil
}

// Len returns the number of components. ASCII values count characters
// without the NUL terminator.
func (v Value) Len() int {
	switch d := v.data.(type) {
	case string:
		return len(d)
	case nil:
		return 0
	default:
		return reflect.ValueOf(d).Len()
	}
}

// Count returns the component count as stored in a directory entry
func (v Value) Count() int {
	if v.Type == datatype.ASCII {
		return v.Len() + 1
	}
	return v.Len()
}

// IsEmpty returns true for values with no components or an empty string
func (v Value) IsEmpty() bool {
	return v.Len() == 0
}

// Equal compares type and payload
func (v Value) Equal(other Value) bool {
	return v.Type == other.Type && reflect.DeepEqual(v.data, other.data)
}

// Interface returns the payload, unwrapping single numeric components
func (v Value) Interface() any {
	switch d := v.data.(type) {
	case string, nil:
		return d
	case []byte:
		if v.Type == datatype.Byte && len(d) == 1 {
			return d[0]
		}
		return d
	default:
		rv := reflect.ValueOf(d)
		if rv.Len() == 1 {
			return rv.Index(0).Interface()
		}
		return d
	}
}

func (v Value) String() string {
	switch d := v.data.(type) {
	case string:
		return d
	case nil:
		return ""
	}
	rv := reflect.ValueOf(v.data)
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return strings.Join(parts, " ")
}

// validate checks a value against the declaration of the tag it is stored
// under. Unknown tags accept any well-formed value.
func (v Value) validate(t tag.Tag) error {
	if v.IsZero() || !v.Type.IsValid() {
		return fmt.Errorf("%w: no payload", ErrUnsupportedValue)
	}
	if v.IsEmpty() {
		return ErrEmptyValue
	}
	if !t.Directory.IsValid() {
		return fmt.Errorf("%w: %s is not a profile directory", ErrUnsupportedValue, t.Directory)
	}
	if s, ok := v.data.(string); ok && strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: ASCII value holds a NUL", ErrUnsupportedValue)
	}
	if uint64(v.Count()) > math.MaxUint32 {
		return fmt.Errorf("%w: %d components", ErrUnsupportedValue, v.Count())
	}
	if tag.IsPointerID(t.ID) {
		return fmt.Errorf("%w: %s is a directory pointer", ErrUnsupportedValue, t)
	}
	if info, ok := tag.Lookup(t); ok && !info.Accepts(v.Type, v.Count()) {
		return fmt.Errorf("%w: %s with %d components for %s", ErrUnsupportedValue, v.Type, v.Count(), info.Name)
	}
	return nil
}

// encode returns the value bytes as they appear inline or in the data area
func (v Value) encode(order byteOrder) []byte {
	buf := make([]byte, 0, v.Count()*v.Type.Size())
	switch d := v.data.(type) {
	case []byte:
		buf = append(buf, d...)
	case string:
		buf = append(buf, d...)
		buf = append(buf, 0)
	case []uint16:
		for _, u := range d {
			buf = order.AppendUint16(buf, u)
		}
	case []uint32:
		for _, u := range d {
			buf = order.AppendUint32(buf, u)
		}
	case []Rational:
		for _, r := range d {
			buf = order.AppendUint32(buf, r.Num)
			buf = order.AppendUint32(buf, r.Den)
		}
	case []int8:
		for _, i := range d {
			buf = append(buf, byte(i))
		}
	case []int16:
		for _, i := range d {
			buf = order.AppendUint16(buf, uint16(i))
		}
	case []int32:
		for _, i := range d {
			buf = order.AppendUint32(buf, uint32(i))
		}
	case []SRational:
		for _, r := range d {
			buf = order.AppendUint32(buf, uint32(r.Num))
			buf = order.AppendUint32(buf, uint32(r.Den))
		}
	case []float32:
		for _, f := range d {
			buf = order.AppendUint32(buf, math.Float32bits(f))
		}
	case []float64:
		for _, f := range d {
			buf = order.AppendUint64(buf, math.Float64bits(f))
		}
	}
	return buf
}

// decodeValue converts raw bytes to a typed value. data must hold exactly
// count components of dt.
func decodeValue(dt datatype.DataType, count int, data []byte, order binary.ByteOrder) Value {
	switch dt {
	case datatype.Byte, datatype.Undefined:
		return Value{dt, clone(data)}
	case datatype.ASCII:
		// the string ends at the first NUL
		s := string(data)
		if i := strings.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		return NewASCII(s)
	case datatype.Short:
		values := make([]uint16, count)
		for i := range values {
			values[i] = order.Uint16(data[i*2:])
		}
		return Value{dt, values}
	case datatype.Long:
		values := make([]uint32, count)
		for i := range values {
			values[i] = order.Uint32(data[i*4:])
		}
		return Value{dt, values}
	case datatype.Rational:
		values := make([]Rational, count)
		for i := range values {
			values[i] = Rational{order.Uint32(data[i*8:]), order.Uint32(data[i*8+4:])}
		}
		return Value{dt, values}
	case datatype.SByte:
		values := make([]int8, count)
		for i := range values {
			values[i] = int8(data[i])
		}
		return Value{dt, values}
	case datatype.SShort:
		values := make([]int16, count)
		for i := range values {
			values[i] = int16(order.Uint16(data[i*2:]))
		}
		return Value{dt, values}
	case datatype.SLong:
		values := make([]int32, count)
		for i := range values {
			values[i] = int32(order.Uint32(data[i*4:]))
		}
		return Value{dt, values}
	case datatype.SRational:
		values := make([]SRational, count)
		for i := range values {
			values[i] = SRational{int32(order.Uint32(data[i*8:])), int32(order.Uint32(data[i*8+4:]))}
		}
		return Value{dt, values}
	case datatype.Float:
		values := make([]float32, count)
		for i := range values {
			values[i] = math.Float32frombits(order.Uint32(data[i*4:]))
		}
		return Value{dt, values}
	case datatype.Double:
		values := make([]float64, count)
		for i := range values {
			values[i] = math.Float64frombits(order.Uint64(data[i*8:]))
		}
		return Value{dt, values}
	}
	return Value{}
}

// As reads a value as T. Scalar targets (uint32, Rational, ...) require a
// single component; slice targets return a copy of every component. Nothing
// is coerced: a SHORT read as uint32 is a mismatch.
func As[T any](v Value) (T, error) {
	var out T
	var ok bool
	switch p := any(&out).(type) {
	case *string:
		*p, ok = v.data.(string)
	case *[]byte:
		var b []byte
		if b, ok = v.data.([]byte); ok {
			*p = clone(b)
		}
	case *uint8:
		*p, ok = scalar[uint8](v, datatype.Byte)
	case *uint16:
		*p, ok = scalar[uint16](v, datatype.Short)
	case *[]uint16:
		*p, ok = slice[uint16](v)
	case *uint32:
		*p, ok = scalar[uint32](v, datatype.Long)
	case *[]uint32:
		*p, ok = slice[uint32](v)
	case *Rational:
		*p, ok = scalar[Rational](v, datatype.Rational)
	case *[]Rational:
		*p, ok = slice[Rational](v)
	case *int8:
		*p, ok = scalar[int8](v, datatype.SByte)
	case *[]int8:
		*p, ok = slice[int8](v)
	case *int16:
		*p, ok = scalar[int16](v, datatype.SShort)
	case *[]int16:
		*p, ok = slice[int16](v)
	case *int32:
		*p, ok = scalar[int32](v, datatype.SLong)
	case *[]int32:
		*p, ok = slice[int32](v)
	case *SRational:
		*p, ok = scalar[SRational](v, datatype.SRational)
	case *[]SRational:
		*p, ok = slice[SRational](v)
	case *float32:
		*p, ok = scalar[float32](v, datatype.Float)
	case *[]float32:
		*p, ok = slice[float32](v)
	case *float64:
		*p, ok = scalar[float64](v, datatype.Double)
	case *[]float64:
		*p, ok = slice[float64](v)
	}
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s[%d] is not %T", ErrTypeMismatch, v.Type, v.Len(), zero)
	}
	return out, nil
}

func scalar[E any](v Value, dt datatype.DataType) (E, bool) {
	var zero E
	if v.Type != dt {
		return zero, false
	}
	values, ok := v.data.([]E)
	if !ok || len(values) != 1 {
		return zero, false
	}
	return values[0], true
}

func slice[E any](v Value) ([]E, bool) {
	values, ok := v.data.([]E)
	if !ok {
		return nil, false
	}
	return clone(values), true
}
