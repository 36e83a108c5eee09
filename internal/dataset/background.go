package dataset

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// LoadState is a background load's lifecycle state.
type LoadState int

const (
	LoadNotStarted LoadState = iota
	LoadParsing
	LoadDeriving
	LoadDone
	LoadFailed
)

// String returns the state name for logs and progress displays.
func (s LoadState) String() string {
	switch s {
	case LoadNotStarted:
		return "not started"
	case LoadParsing:
		return "parsing"
	case LoadDeriving:
		return "deriving"
	case LoadDone:
		return "done"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadProgress is delivered to subscribers at each state transition.
// Dataset is set only for LoadDone, Err only for LoadFailed.
type LoadProgress struct {
	JobID   string
	State   LoadState
	Dataset *Dataset
	Err     error
}

// Loader runs a dataset load off the caller's goroutine and reports
// discrete milestones. Loads run to completion; there is no cancellation.
type Loader struct {
	mu        sync.Mutex
	state     LoadState
	jobID     string
	listeners []func(LoadProgress)
}

// NewLoader creates an idle background loader.
func NewLoader() *Loader {
	return &Loader{state: LoadNotStarted}
}

// Subscribe registers fn to receive every state transition. Listeners
// are invoked from the loading goroutine and must not block.
func (l *Loader) Subscribe(fn func(LoadProgress)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// State returns the current load state.
func (l *Loader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start begins loading path in a new goroutine and returns the job ID.
// The terminal state is reported via subscribed listeners.
func (l *Loader) Start(path string) string {
	jobID := uuid.NewString()

	l.mu.Lock()
	l.jobID = jobID
	l.mu.Unlock()

	go l.run(jobID, path)
	return jobID
}

func (l *Loader) run(jobID, path string) {
	l.transition(jobID, LoadParsing, nil, nil)

	rows, err := readRows(path)
	if err != nil {
		slog.Error("background load failed", "job", jobID, "path", path, "error", err)
		l.transition(jobID, LoadFailed, nil, err)
		return
	}

	l.transition(jobID, LoadDeriving, nil, nil)
	ds := build(path, rows)

	slog.Info("background load complete", "job", jobID, "path", path, "rows", ds.Len())
	l.transition(jobID, LoadDone, ds, nil)
}

func (l *Loader) transition(jobID string, state LoadState, ds *Dataset, err error) {
	l.mu.Lock()
	l.state = state
	listeners := make([]func(LoadProgress), len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	p := LoadProgress{JobID: jobID, State: state, Dataset: ds, Err: err}
	for _, fn := range listeners {
		fn(p)
	}
}
