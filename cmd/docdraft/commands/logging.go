package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/docdraft/internal/config"
)

const envLogLevel = "DOCDRAFT_LOG_LEVEL"

// parseLogLevel resolves the level with precedence -v > DOCDRAFT_LOG_LEVEL > config.
func parseLogLevel(verbose bool, envLevel string, cfgLevel config.LogLevel) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	raw := strings.TrimSpace(envLevel)
	if raw == "" {
		raw = string(cfgLevel)
	}
	switch config.NormalizeLogLevel(raw) {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// configureLogging replaces the bootstrap logger with one honoring cfg.
func configureLogging(g *Global, root *CLI, cfg *config.Config) {
	level := parseLogLevel(root.Verbose, os.Getenv(envLogLevel), cfg.Logging.Level)
	g.Logger = newLogger(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)
}
