// Package datatype defines the TIFF/EXIF field types
package datatype

import "fmt"

// DataType is the 2-byte type code stored in a directory entry
type DataType uint16

// Standard TIFF 6.0 field types
const (
	Unknown   DataType = 0
	Byte      DataType = 1  // 8-bit unsigned
	ASCII     DataType = 2  // NUL terminated 7-bit text
	Short     DataType = 3  // 16-bit unsigned
	Long      DataType = 4  // 32-bit unsigned
	Rational  DataType = 5  // two LONGs, numerator/denominator
	SByte     DataType = 6  // 8-bit signed
	Undefined DataType = 7  // opaque bytes
	SShort    DataType = 8  // 16-bit signed
	SLong     DataType = 9  // 32-bit signed
	SRational DataType = 10 // two SLONGs
	Float     DataType = 11 // IEEE single
	Double    DataType = 12 // IEEE double
)

// Size returns the width in bytes of a single component, or 0 for unknown types
func (t DataType) Size() int {
	switch t {
	case Byte, ASCII, SByte, Undefined:
		return 1
	case Short, SShort:
		return 2
	case Long, SLong, Float:
		return 4
	case Rational, SRational, Double:
		return 8
	default:
		return 0
	}
}

// IsValid returns true for the type codes this package knows how to size
func (t DataType) IsValid() bool {
	return t.Size() > 0
}

// IsSigned returns true for the signed integer and signed rational types
func (t DataType) IsSigned() bool {
	switch t {
	case SByte, SShort, SLong, SRational:
		return true
	}
	return false
}

// IsInteger returns true for the whole-number types
func (t DataType) IsInteger() bool {
	switch t {
	case Byte, Short, Long, SByte, SShort, SLong:
		return true
	}
	return false
}

func (t DataType) String() string {
	switch t {
	case Byte:
		return "BYTE"
	case ASCII:
		return "ASCII"
	case Short:
		return "SHORT"
	case Long:
		return "LONG"
	case Rational:
		return "RATIONAL"
	case SByte:
		return "SBYTE"
	case Undefined:
		return "UNDEFINED"
	case SShort:
		return "SSHORT"
	case SLong:
		return "SLONG"
	case SRational:
		return "SRATIONAL"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	default:
		return fmt.Sprintf("TYPE(%d)", uint16(t))
	}
}
