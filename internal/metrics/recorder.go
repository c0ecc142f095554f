package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// PageLabel is the classification a page ended up with.
type PageLabel string

const (
	PageFull  PageLabel = "full"
	PageDraft PageLabel = "draft"
)

// Recorder defines observability hooks for the build. All methods must be
// safe to call on NoopRecorder.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	// IncDecision counts draft-selection outcomes: drafting, disabled,
	// repo_mismatch or not_pull_request.
	IncDecision(outcome string)
	IncPages(label PageLabel, n int)
	SetModifiedDocs(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncDecision(string)                         {}
func (NoopRecorder) IncPages(PageLabel, int)                    {}
func (NoopRecorder) SetModifiedDocs(int)                        {}
