// Package config loads codec and logging settings from TOML
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jpfielding/exif.go/pkg/exif"
	"github.com/jpfielding/exif.go/pkg/logging"
)

// Config is the resolved configuration
type Config struct {
	Codec CodecConfig
	Log   LogConfig
}

type CodecConfig struct {
	ByteOrder  exif.ByteOrder
	ExifHeader bool
	MaxDepth   int
	Workers    int // concurrent file reads, 0 for unbounded
	CacheSize  int // decoded profiles kept by NewCache
}

type LogConfig struct {
	Level  slog.Level
	JSON   bool
	File   string // stdout when empty
	Rotate logging.RotationConfig
}

// Default returns the settings used when a key is absent
func Default() Config {
	return Config{
		Codec: CodecConfig{
			ByteOrder: exif.LittleEndian,
			MaxDepth:  exif.DefaultMaxDepth,
			Workers:   4,
			CacheSize: 64,
		},
		Log: LogConfig{
			Level: slog.LevelInfo,
			Rotate: logging.RotationConfig{
				MaxSizeMB:  100,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

type fileConfig struct {
	Codec struct {
		ByteOrder  string `toml:"byte_order"`
		ExifHeader bool   `toml:"exif_header"`
		MaxDepth   int    `toml:"max_depth"`
		Workers    int    `toml:"workers"`
		CacheSize  int    `toml:"cache_size"`
	} `toml:"codec"`
	Log struct {
		Level      string `toml:"level"`
		Format     string `toml:"format"`
		File       string `toml:"file"`
		MaxSizeMB  int    `toml:"max_size_mb"`
		MaxBackups int    `toml:"max_backups"`
		MaxAgeDays int    `toml:"max_age_days"`
		Compress   bool   `toml:"compress"`
	} `toml:"log"`
}

// Load reads a TOML file and applies the keys it defines over Default()
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return resolve(raw, meta)
}

// Parse is Load for in-memory TOML
func Parse(r io.Reader) (Config, error) {
	var raw fileConfig
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return resolve(raw, meta)
}

func resolve(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := Default()

	if meta.IsDefined("codec", "byte_order") {
		order, err := exif.ParseByteOrder(raw.Codec.ByteOrder)
		if err != nil {
			return Config{}, fmt.Errorf("parse codec.byte_order: %w", err)
		}
		cfg.Codec.ByteOrder = order
	}
	if meta.IsDefined("codec", "exif_header") {
		cfg.Codec.ExifHeader = raw.Codec.ExifHeader
	}
	if meta.IsDefined("codec", "max_depth") {
		if raw.Codec.MaxDepth <= 0 {
			return Config{}, fmt.Errorf("parse codec.max_depth: must be positive, got %d", raw.Codec.MaxDepth)
		}
		cfg.Codec.MaxDepth = raw.Codec.MaxDepth
	}
	if meta.IsDefined("codec", "workers") {
		if raw.Codec.Workers < 0 {
			return Config{}, fmt.Errorf("parse codec.workers: must not be negative, got %d", raw.Codec.Workers)
		}
		cfg.Codec.Workers = raw.Codec.Workers
	}
	if meta.IsDefined("codec", "cache_size") {
		if raw.Codec.CacheSize <= 0 {
			return Config{}, fmt.Errorf("parse codec.cache_size: must be positive, got %d", raw.Codec.CacheSize)
		}
		cfg.Codec.CacheSize = raw.Codec.CacheSize
	}

	if meta.IsDefined("log", "level") {
		if err := cfg.Log.Level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(raw.Log.Level)))); err != nil {
			return Config{}, fmt.Errorf("parse log.level: %w", err)
		}
	}
	if meta.IsDefined("log", "format") {
		switch f := strings.ToLower(strings.TrimSpace(raw.Log.Format)); f {
		case "json":
			cfg.Log.JSON = true
		case "text":
			cfg.Log.JSON = false
		default:
			return Config{}, fmt.Errorf("parse log.format: unknown format %q", f)
		}
	}
	if meta.IsDefined("log", "file") {
		cfg.Log.File = strings.TrimSpace(raw.Log.File)
	}
	if meta.IsDefined("log", "max_size_mb") {
		cfg.Log.Rotate.MaxSizeMB = raw.Log.MaxSizeMB
	}
	if meta.IsDefined("log", "max_backups") {
		cfg.Log.Rotate.MaxBackups = raw.Log.MaxBackups
	}
	if meta.IsDefined("log", "max_age_days") {
		cfg.Log.Rotate.MaxAgeDays = raw.Log.MaxAgeDays
	}
	if meta.IsDefined("log", "compress") {
		cfg.Log.Rotate.Compress = raw.Log.Compress
	}
	cfg.Log.Rotate.Filename = cfg.Log.File

	return cfg, nil
}

// Logger builds the configured logger. The returned closer releases the
// log file and is a no-op for stdout.
func (c Config) Logger() (*slog.Logger, io.Closer) {
	if c.Log.File == "" {
		return logging.Logger(os.Stdout, c.Log.JSON, c.Log.Level), nopCloser{}
	}
	w := logging.RotatingFile(c.Log.Rotate)
	return logging.Logger(w, c.Log.JSON, c.Log.Level), w
}

// EncoderOptions maps the codec section onto the encoder
func (c Config) EncoderOptions(log *slog.Logger) exif.EncoderOptions {
	return exif.EncoderOptions{
		ByteOrder:  c.Codec.ByteOrder,
		ExifHeader: c.Codec.ExifHeader,
		Logger:     log,
	}
}

// DecoderOptions maps the codec section onto the decoder
func (c Config) DecoderOptions(log *slog.Logger) exif.DecoderOptions {
	return exif.DecoderOptions{
		MaxDepth: c.Codec.MaxDepth,
		Logger:   log,
	}
}

// NewCache builds a decoded-profile cache sized by the codec section
func (c Config) NewCache(log *slog.Logger) (*exif.Cache, error) {
	return exif.NewCache(exif.NewDecoder(c.DecoderOptions(log)), c.Codec.CacheSize)
}

// ReadFiles decodes paths with the configured decoder and worker count
func (c Config) ReadFiles(ctx context.Context, log *slog.Logger, paths []string) ([]exif.FileResult, error) {
	return exif.NewDecoder(c.DecoderOptions(log)).ReadFiles(ctx, paths, c.Codec.Workers)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
