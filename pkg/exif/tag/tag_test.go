package tag

import (
	"encoding/json"
	"testing"

	"github.com/jpfielding/exif.go/pkg/exif/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info, ok := Lookup(Orientation)
	require.True(t, ok)
	assert.Equal(t, "Orientation", info.Name)
	assert.Equal(t, Scalar, info.Count)

	// thumbnail tags share the primary image declarations
	info, ok = Lookup(New(IFD1, Compression.ID))
	require.True(t, ok)
	assert.Equal(t, "Compression", info.Name)

	// GPS and Interop reuse low ids with different meanings
	gps, _ := Lookup(New(GPS, 0x0001))
	interop, _ := Lookup(New(Interop, 0x0001))
	assert.Equal(t, "GPSLatitudeRef", gps.Name)
	assert.Equal(t, "InteroperabilityIndex", interop.Name)

	_, ok = Lookup(New(IFD0, 0x012A))
	assert.False(t, ok)
	assert.False(t, New(IFD0, 0x012A).IsKnown())
	assert.Empty(t, New(IFD0, 0x012A).LookupName())
}

func TestParse(t *testing.T) {
	for name, want := range map[string]Tag{
		"Make":                  Make,
		"ExposureTime":          ExposureTime,
		"GPSLatitude":           GPSLatitude,
		"InteroperabilityIndex": InteroperabilityIndex,
	} {
		got, ok := Parse(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.LookupName())
	}
	_, ok := Parse("NoSuchTag")
	assert.False(t, ok)
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		tag   Tag
		dt    datatype.DataType
		count int
		want  bool
	}{
		{Orientation, datatype.Short, 1, true},
		{Orientation, datatype.Long, 1, false},
		{Orientation, datatype.Short, 2, false},
		{ImageWidth, datatype.Long, 1, true},
		{Make, datatype.ASCII, 42, true},
		{GPSLatitude, datatype.Rational, 3, true},
		{GPSLatitude, datatype.Rational, 2, false},
		{BitsPerSample, datatype.Short, 3, true},
		{ExifVersion, datatype.Undefined, 4, true},
	}
	for _, tt := range tests {
		info, ok := Lookup(tt.tag)
		require.True(t, ok)
		assert.Equal(t, tt.want, info.Accepts(tt.dt, tt.count), "%s %s[%d]", info.Name, tt.dt, tt.count)
	}
}

func TestPointers(t *testing.T) {
	assert.True(t, ExifIFDPointer.IsPointer())
	assert.True(t, GPSIFDPointer.IsPointer())
	assert.True(t, InteropIFDPointer.IsPointer())
	assert.False(t, New(GPS, ExifIFDPointer.ID).IsPointer())
	assert.False(t, Make.IsPointer())

	for _, id := range []uint16{0x8769, 0x8825, 0xA005} {
		assert.True(t, IsPointerID(id))
	}
	assert.False(t, IsPointerID(Make.ID))
}

func TestDirectoryOrder(t *testing.T) {
	assert.Equal(t, []Directory{IFD0, Exif, Interop, GPS, IFD1}, Directories)
	assert.Equal(t, "Interop", Interop.String())
	assert.Equal(t, "IFD?", Directory(42).String())
	for _, d := range Directories {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Directory(9).IsValid())
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "IFD0:0x010E", ImageDescription.String())
	assert.Equal(t, "Exif:0xA420", ImageUniqueID.String())

	b, err := json.Marshal(GPSLatitude)
	require.NoError(t, err)
	assert.Equal(t, `"GPS:0x0002"`, string(b))
}

func TestDictionaryNamesUnique(t *testing.T) {
	assert.Len(t, byName, len(dictionary))
}
