package draft

import (
	"context"

	"git.home.luguber.info/inful/docdraft/internal/metrics"
)

type fakeVCS struct {
	branch    string
	branchErr error
	files     []string
	filesErr  error

	branchCalls int
	diffCalls   int
	lastBase    string
	lastSpec    string
}

func (f *fakeVCS) CurrentBranch(context.Context, string) (string, error) {
	f.branchCalls++
	return f.branch, f.branchErr
}

func (f *fakeVCS) ChangedFiles(_ context.Context, _, base, pathspec string) ([]string, error) {
	f.diffCalls++
	f.lastBase = base
	f.lastSpec = pathspec
	return f.files, f.filesErr
}

type countingRecorder struct {
	metrics.NoopRecorder
	decisions []string
	pages     map[metrics.PageLabel]int
	modified  int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{pages: map[metrics.PageLabel]int{}}
}

func (r *countingRecorder) IncDecision(outcome string)              { r.decisions = append(r.decisions, outcome) }
func (r *countingRecorder) IncPages(label metrics.PageLabel, n int) { r.pages[label] += n }
func (r *countingRecorder) SetModifiedDocs(n int)                   { r.modified = n }
