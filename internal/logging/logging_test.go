package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", true)

	log.Debug().Msg("hidden")
	log.Info().Str("mode", "follow").Msg("camera")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"mode":"follow"`)
	assert.Contains(t, out, `"message":"camera"`)
	assert.Contains(t, out, `"time":`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", false)

	log.Debug().Int("tick", 3).Msg("impact")

	out := buf.String()
	assert.Contains(t, out, "impact")
	assert.Contains(t, out, "tick=3")
	assert.NotContains(t, out, "\x1b[", "no colour codes for non-terminal writers")
}
