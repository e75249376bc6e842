package config

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpfielding/exif.go/pkg/exif"
	"github.com/jpfielding/exif.go/pkg/exif/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "ex.config.toml"))
	require.NoError(t, err)

	assert.Equal(t, exif.BigEndian, cfg.Codec.ByteOrder)
	assert.True(t, cfg.Codec.ExifHeader)
	assert.Equal(t, 6, cfg.Codec.MaxDepth)
	assert.Equal(t, 2, cfg.Codec.Workers)
	assert.Equal(t, 64, cfg.Codec.CacheSize)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 5, cfg.Log.Rotate.MaxBackups)
	assert.True(t, cfg.Log.Rotate.Compress)
	// untouched keys keep their defaults
	assert.Equal(t, 100, cfg.Log.Rotate.MaxSizeMB)
	assert.Equal(t, 28, cfg.Log.Rotate.MaxAgeDays)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"byte order", "[codec]\nbyte_order = \"middle\"", "byte_order"},
		{"max depth", "[codec]\nmax_depth = 0", "max_depth"},
		{"workers", "[codec]\nworkers = -1", "codec.workers"},
		{"cache size", "[codec]\ncache_size = 0", "codec.cache_size"},
		{"level", "[log]\nlevel = \"loud\"", "log.level"},
		{"format", "[log]\nformat = \"xml\"", "log.format"},
		{"syntax", "[codec", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.toml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestConfig_CodecOptions(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[codec]\nbyte_order = \"big\"\nexif_header = true"))
	require.NoError(t, err)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := exif.NewProfile()
	require.NoError(t, p.Set(tag.Make, exif.NewASCII("Acme")))
	require.NoError(t, p.Set(tag.Model, exif.NewASCII("")))

	b, err := exif.NewEncoder(cfg.EncoderOptions(log)).Encode(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("Exif\x00\x00MM"), b[:8])
	assert.Contains(t, logs.String(), "dropping exif entry")

	decoded, err := exif.NewDecoder(cfg.DecoderOptions(log)).Decode(b)
	require.NoError(t, err)
	mk, err := exif.GetValue[string](decoded, tag.Make)
	require.NoError(t, err)
	assert.Equal(t, "Acme", mk)
}

func TestConfig_NewCache(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[codec]\ncache_size = 1"))
	require.NoError(t, err)

	c, err := cfg.NewCache(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	c.Decode([]byte("II*\x00\x08\x00\x00\x00"))
	c.Decode([]byte("MM\x00*\x00\x00\x00\x08"))
	assert.Equal(t, 1, c.Len())
}

func TestConfig_ReadFiles(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[codec]\nworkers = 1"))
	require.NoError(t, err)

	p := exif.NewProfile()
	require.NoError(t, p.Set(tag.Software, exif.NewASCII("exif.go")))
	path := filepath.Join(t.TempDir(), "a.exif")
	_, err = exif.WriteFile(path, p)
	require.NoError(t, err)

	results, err := cfg.ReadFiles(context.Background(), nil, []string{path, path})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		sw, err := exif.GetValue[string](r.Profile, tag.Software)
		require.NoError(t, err)
		assert.Equal(t, "exif.go", sw)
	}
}

func TestConfig_LoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exif.log")
	cfg, err := Parse(strings.NewReader("[log]\nfile = \"" + filepath.ToSlash(path) + "\""))
	require.NoError(t, err)

	log, closer := cfg.Logger()
	log.Info("written")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
