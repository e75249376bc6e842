package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Arguments(t *testing.T) {
	r := NewBuiltinRegistry()

	_, err := r.Detect(nil)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "data", argErr.Param)
	assert.ErrorIs(t, err, ErrNilArgument)

	_, err = r.Detect([]byte{})
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "data", argErr.Param)
	assert.ErrorIs(t, err, ErrEmptyArgument)
}

func TestDetect_Unknown(t *testing.T) {
	info, err := NewBuiltinRegistry().Detect([]byte{42})
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestDetect_Signatures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, JPEG},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, PNG},
		{"gif87", []byte("GIF87a...."), GIF},
		{"gif89", []byte("GIF89a...."), GIF},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), WebP},
		{"bmp", []byte("BM\x36\x00"), BMP},
		{"tiff le", []byte{'I', 'I', 0x2A, 0x00, 0x08, 0, 0, 0}, TIFF},
		{"tiff be", []byte{'M', 'M', 0x00, 0x2A, 0, 0, 0, 0x08}, TIFF},
		{"jp2", []byte{0, 0, 0, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}, JP2},
	}
	r := NewBuiltinRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := r.Detect(tt.data)
			require.NoError(t, err)
			require.NotNil(t, info)
			assert.Equal(t, tt.want, info.Format)
		})
	}
}

func TestDetect_RIFFWithoutWebP(t *testing.T) {
	info, err := NewBuiltinRegistry().Detect([]byte("RIFF\x24\x00\x00\x00WAVEfmt "))
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestLookupFile(t *testing.T) {
	r := NewBuiltinRegistry()

	_, err := r.LookupFile("")
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "fileName", argErr.Param)

	info, err := r.LookupFile("foo.bar")
	require.NoError(t, err)
	assert.Nil(t, info)

	info, err = r.LookupFile("noext")
	require.NoError(t, err)
	assert.Nil(t, info)

	info, err = r.LookupFile("/tmp/ImageMagick.JPG")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, JPG, info.Format)
	assert.Equal(t, JPEG, info.ModuleFormat)
	assert.Equal(t, "Joint Photographic Experts Group JFIF format", info.Description)
	assert.Equal(t, "image/jpeg", info.MimeType)
	assert.True(t, info.IsReadable)
	assert.True(t, info.IsWritable)
	assert.False(t, info.IsMultiFrame)
	assert.True(t, info.CanReadMultithreaded)
	assert.True(t, info.CanWriteMultithreaded)

	info, err = r.LookupFile("icon.png")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, PNG, info.Format)
	assert.Equal(t, PNG, info.ModuleFormat)
	assert.Equal(t, "Portable Network Graphics", info.Description)
}

func TestLookup(t *testing.T) {
	r := NewBuiltinRegistry()

	assert.Nil(t, r.Lookup(Format("12345")))

	gradient := r.Lookup(Gradient)
	require.NotNil(t, gradient)
	assert.True(t, gradient.IsReadable)
	assert.False(t, gradient.IsWritable)
	assert.Empty(t, gradient.MimeType)

	pango := r.Lookup(Pango)
	require.NotNil(t, pango)
	assert.False(t, pango.CanReadMultithreaded)
	assert.False(t, pango.CanWriteMultithreaded)
	assert.Equal(t, "Pango Markup Language", pango.Description)
}

func TestLookup_ReturnsCopies(t *testing.T) {
	r := NewBuiltinRegistry()
	info := r.Lookup(JPEG)
	require.NotNil(t, info)
	info.Description = "changed"
	info.Extensions[0] = "changed"

	again := r.Lookup(JPEG)
	assert.Equal(t, "Joint Photographic Experts Group JFIF format", again.Description)
	assert.Equal(t, "jpeg", again.Extensions[0])
}

func TestNewRegistry_Injected(t *testing.T) {
	r := NewRegistry(
		Info{Format: "RAW", Description: "first", Signatures: []Signature{{{0, []byte("RAW!")}}}},
		Info{Format: "RAW", Description: "second", Signatures: []Signature{{{0, []byte("RAW!")}}}},
	)
	assert.Equal(t, []Format{"RAW"}, r.Formats())

	info, err := r.Detect([]byte("RAW!data"))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "second", info.Description)
	assert.Equal(t, Format("RAW"), info.ModuleFormat)

	assert.Nil(t, r.Lookup(JPEG), "registries only know what they were given")
}

func TestFormats_Sorted(t *testing.T) {
	formats := NewBuiltinRegistry().Formats()
	require.NotEmpty(t, formats)
	for i := 1; i < len(formats); i++ {
		assert.Less(t, string(formats[i-1]), string(formats[i]))
	}
}
