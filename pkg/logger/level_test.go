package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelAttrReplacer(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, "INFO"},
		{slog.LevelError, "ERROR"},
		{LevelPanic, "PANIC"},
		{LevelFatal, "FATAL"},
	}
	for _, tt := range tests {
		attr := levelAttrReplacer(nil, slog.Any(slog.LevelKey, tt.level))
		assert.Equal(t, tt.want, attr.Value.String())
	}

	// grouped attributes are left untouched
	attr := levelAttrReplacer([]string{"request"}, slog.Any(slog.LevelKey, LevelFatal))
	assert.Equal(t, LevelFatal, attr.Value.Any())
}
