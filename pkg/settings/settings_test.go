package settings

import (
	"testing"

	"github.com/jpfielding/exif.go/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJPEGWriteDefines_Empty(t *testing.T) {
	defines, err := (&JPEGWriteDefines{}).Defines()
	require.NoError(t, err)
	assert.Empty(t, defines)
}

func TestJPEGWriteDefines_All(t *testing.T) {
	d := &JPEGWriteDefines{
		ArithmeticCoding:   Ptr(true),
		DCTMethod:          Ptr(DCTFloat),
		Extent:             Ptr(10),
		OptimizeCoding:     Ptr(false),
		QuantizationTables: "tables.xml",
		SamplingFactor:     Ptr(Sampling420),
	}
	assert.Equal(t, format.JPEG, d.Format())

	defines, err := d.Defines()
	require.NoError(t, err)

	var got []string
	for _, def := range defines {
		got = append(got, def.String())
	}
	assert.Equal(t, []string{
		"jpeg:arithmetic-coding=true",
		"jpeg:dct-method=Float",
		"jpeg:extent=10KB",
		"jpeg:optimize-coding=false",
		"jpeg:q-table=tables.xml",
		"jpeg:sampling-factor=2x2,1x1,1x1",
	}, got)
}

func TestJPEGWriteDefines_Restartable(t *testing.T) {
	d := &JPEGWriteDefines{OptimizeCoding: Ptr(true)}
	first, err := d.Defines()
	require.NoError(t, err)
	second, err := d.Defines()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSamplingFactor_Factors(t *testing.T) {
	tests := []struct {
		factor SamplingFactor
		want   string
	}{
		{Sampling410, "4x2,1x1,1x1"},
		{Sampling411, "4x1,1x1,1x1"},
		{Sampling420, "2x2,1x1,1x1"},
		{Sampling422, "2x1,1x1,1x1"},
		{Sampling440, "1x2,1x1,1x1"},
		{Sampling444, "1x1,1x1,1x1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := tt.factor.Factors()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SamplingUndefined.Factors()
	assert.ErrorIs(t, err, ErrInvalidSamplingFactor)

	_, err = (&JPEGWriteDefines{SamplingFactor: Ptr(SamplingFactor(99))}).Defines()
	assert.ErrorIs(t, err, ErrInvalidSamplingFactor)
}

func TestDefine_Key(t *testing.T) {
	assert.Equal(t, "jpeg:extent", Define{Format: format.JPEG, Name: "extent"}.Key())
	assert.Equal(t, "density", Define{Name: "density"}.Key())
}

func TestReadSettings_Defaults(t *testing.T) {
	res, err := (&ReadSettings{}).Finalize()
	require.NoError(t, err)

	// unset sync options are left to the engine, which treats them as true
	assert.Empty(t, res.Options)
	s := &ReadSettings{}
	assert.True(t, s.SyncsExifProfile())
	assert.True(t, s.SyncsTiffProperties())

	assert.Empty(t, res.Size)
	assert.Empty(t, res.Scenes)
	assert.Zero(t, res.Scene)
	assert.Zero(t, res.NumberScenes)
}

func TestReadSettings_DefinesBecomeOptions(t *testing.T) {
	s := &ReadSettings{
		Defines:                  &JPEGWriteDefines{Extent: Ptr(5)},
		SyncImageWithExifProfile: Ptr(false),
		UseMonochrome:            true,
	}
	res, err := s.Finalize()
	require.NoError(t, err)

	assert.Equal(t, []Option{
		{Key: "jpeg:extent", Value: "5KB"},
		{Key: "exif:sync-image", Value: "false"},
	}, res.Options)
	assert.False(t, s.SyncsExifProfile())
	assert.True(t, s.SyncsTiffProperties())
	assert.True(t, res.Monochrome)

	_, ok := res.Option("tiff:sync-image")
	assert.False(t, ok)

	_, ok = res.Option("missing")
	assert.False(t, ok)
}

func TestReadSettings_DefinesError(t *testing.T) {
	s := &ReadSettings{Defines: &JPEGWriteDefines{SamplingFactor: Ptr(SamplingUndefined)}}
	_, err := s.Finalize()
	assert.ErrorIs(t, err, ErrInvalidSamplingFactor)
}

func TestReadSettings_Size(t *testing.T) {
	tests := []struct {
		name          string
		width, height *int
		want          string
	}{
		{"both", Ptr(640), Ptr(480), "640x480"},
		{"width", Ptr(640), nil, "640x"},
		{"height", nil, Ptr(480), "x480"},
		{"none", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := (&ReadSettings{Width: tt.width, Height: tt.height}).Finalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Size)
		})
	}
}

func TestReadSettings_Frames(t *testing.T) {
	tests := []struct {
		name         string
		index, count *int
		scenes       string
		scene, num   int
	}{
		{"index only", Ptr(2), nil, "2", 2, 1},
		{"index single count", Ptr(2), Ptr(1), "2", 2, 1},
		{"count only", nil, Ptr(3), "0-3", 0, 3},
		{"index and count", Ptr(1), Ptr(2), "1-3", 1, 2},
		{"single count", nil, Ptr(1), "", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := (&ReadSettings{FrameIndex: tt.index, FrameCount: tt.count}).Finalize()
			require.NoError(t, err)
			assert.Equal(t, tt.scenes, res.Scenes)
			assert.Equal(t, tt.scene, res.Scene)
			assert.Equal(t, tt.num, res.NumberScenes)
		})
	}
}
