package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPage       = "page"
	KeyPath       = "path"
	KeyDevBranch  = "devbranch"
	KeyRepo       = "repository"
	KeyProvider   = "provider"
	KeyBackend    = "backend"
	KeyCount      = "count"
	KeyTotal      = "total"
	KeyReason     = "reason"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Page(id string) slog.Attr         { return slog.String(KeyPage, id) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func DevBranch(b string) slog.Attr     { return slog.String(KeyDevBranch, b) }
func Repository(r string) slog.Attr    { return slog.String(KeyRepo, r) }
func Provider(p string) slog.Attr      { return slog.String(KeyProvider, p) }
func Backend(b string) slog.Attr       { return slog.String(KeyBackend, b) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Total(n int) slog.Attr            { return slog.Int(KeyTotal, n) }
func Reason(r string) slog.Attr        { return slog.String(KeyReason, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
