// Package logfields centralizes canonical slog field names so log keys do not
// drift between packages.
package logfields

import "log/slog"

const (
	KeyBuildID    = "build_id"
	KeyStep       = "step"
	KeyPath       = "path"
	KeyPage       = "page"
	KeyLanguage   = "language"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyCount      = "count"
	KeyOutput     = "output"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Step(name string) slog.Attr      { return slog.String(KeyStep, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Page(id string) slog.Attr        { return slog.String(KeyPage, id) }
func Language(code string) slog.Attr  { return slog.String(KeyLanguage, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
