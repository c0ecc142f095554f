package config

import "git.home.luguber.info/inful/docdraft/internal/foundation/normalization"

// GitBackend selects the version-control implementation.
type GitBackend string

const (
	GitBackendCLI   GitBackend = "cli"
	GitBackendGoGit GitBackend = "go-git"
)

var gitBackendNormalizer = normalization.NewNormalizer(GitBackendCLI, GitBackendCLI, GitBackendGoGit)

// OutputFormat selects which downstream renderer consumes the draft marker.
type OutputFormat string

const (
	OutputFormatHTML OutputFormat = "html"
	OutputFormatHugo OutputFormat = "hugo"
	OutputFormatNone OutputFormat = "none"
)

var outputFormatNormalizer = normalization.NewNormalizer(OutputFormatHTML, OutputFormatHTML, OutputFormatHugo, OutputFormatNone)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(LogLevelInfo, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)

func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(LogFormatText, LogFormatJSON, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// ParseGitBackend validates a backend name.
func ParseGitBackend(raw string) (GitBackend, error) {
	return gitBackendNormalizer.Parse(raw)
}

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Parse(raw)
}
