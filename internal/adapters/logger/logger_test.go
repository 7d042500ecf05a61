package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/logger"
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("crawling /opt/ros")

	assert.Equal(t, "crawling /opt/ros\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Warn("index cache not written")

	assert.Equal(t, "! index cache not written\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(domain.NewNotFoundError(domain.KindStack, "foo"))

	want := "✗ Error: stack \"foo\"\n" +
		"       name: foo\n\n" +
		"  Caused by:\n" +
		"    → resource not found\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(os.ErrPermission, "failed to read manifest"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "failed to read manifest: permission denied", record["error"])
}

func TestLogger_SetJSON_KeepsOutput(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.SetJSON(true)
	lg.Info("json")
	lg.SetJSON(false)
	lg.Info("text")

	assert.Contains(t, buf.String(), `"msg":"json"`)
	assert.Contains(t, buf.String(), "text\n")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr chain ending in standard error",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "metadata on standard error is folded into the previous level",
			err: zerr.Wrap(
				zerr.With(errors.New("permission denied"), "path", "/opt/ros/stack.xml"),
				"failed to read manifest",
			),
			wantMessages: []string{"failed to read manifest", "permission denied"},
			wantMetadata: []map[string]any{{"path": "/opt/ros/stack.xml"}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))
			for i := range entries {
				assert.Equal(t, tt.wantMessages[i], entries[i].Message)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	t.Parallel()

	got := logger.FormatErrorEntries([]logger.ErrorEntry{
		{Message: "main", Metadata: map[string]any{"zebra": "z", "alpha": 1}},
		{Message: "first line\nsecond line"},
	})

	want := "Error: main\n" +
		"       alpha: 1\n" +
		"       zebra: z\n\n" +
		"  Caused by:\n" +
		"    → first line\n" +
		"      second line"
	assert.Equal(t, want, got)
	assert.Empty(t, logger.FormatErrorEntries(nil))
}
