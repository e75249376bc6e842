package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelDebug)

	ctx := AppendCtx(context.Background(), slog.String("name", "exif"))
	ctx = AppendCtx(ctx, slog.Int("entries", 3))
	log.InfoContext(ctx, "decoded")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "decoded", rec["msg"])
	assert.Equal(t, "exif", rec["name"])
	assert.Equal(t, float64(3), rec["entries"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelWarn)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "tag", "IFD0:0x010E")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "IFD0:0x010E")
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exif.log")
	w := RotatingFile(RotationConfig{Filename: path, MaxSizeMB: 1})

	log := Logger(w, false, slog.LevelInfo)
	log.Info("rotating")
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "rotating")
}
