package logger

import (
	"log/slog"
)

const (
	LevelPanic = slog.Level(14)
	LevelFatal = slog.Level(16)
)

// levelAttrReplacer renders the custom levels by name instead of "ERROR+6".
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != slog.LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok {
		return attr
	}
	switch {
	case l >= LevelFatal:
		return slog.String(attr.Key, "FATAL")
	case l >= LevelPanic:
		return slog.String(attr.Key, "PANIC")
	default:
		return attr
	}
}
