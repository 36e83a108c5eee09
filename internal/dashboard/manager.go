// Package dashboard owns the dataset/filtered-view pair and notifies
// observers of state changes. Consumers read immutable snapshots, so
// queries are never exposed to a half-replaced dataset.
package dashboard

import (
	"fmt"
	"log/slog"
	"sync"

	"bnbstat/internal/dataset"
	"bnbstat/internal/filter"
)

// Event identifies a state change observers can react to.
type Event int

const (
	// EventLoaded fires when a new dataset is installed.
	EventLoaded Event = iota
	// EventFiltered fires when a filter apply replaced the view.
	EventFiltered
	// EventEmptyResult fires when a filter matched nothing and the
	// previous view was kept.
	EventEmptyResult
	// EventLoadFailed fires when a background load fails.
	EventLoadFailed
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventLoaded:
		return "loaded"
	case EventFiltered:
		return "filtered"
	case EventEmptyResult:
		return "empty-result"
	case EventLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// Manager is the single owner of a dataset and its filtered view.
// Multiple managers can coexist; there is no shared global state.
type Manager struct {
	mu        sync.RWMutex
	ds        *dataset.Dataset
	view      dataset.View
	spec      filter.Spec
	listeners []func(Event)
}

// New creates a manager with no dataset loaded.
func New() *Manager {
	return &Manager{}
}

// Subscribe registers fn for all future events. Listeners run on the
// goroutine that triggered the event and must not block.
func (m *Manager) Subscribe(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// LoadSync loads a dataset inline, installs it with an all-rows view,
// and emits EventLoaded.
func (m *Manager) LoadSync(path string) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	m.install(ds)
	return nil
}

// LoadAsync loads a dataset in the background and returns the job ID.
// Extra listeners observe progress milestones; they are registered
// before the load starts so no transition is missed. On success the
// dataset is installed atomically and EventLoaded fires; on failure
// EventLoadFailed fires and existing state is untouched.
func (m *Manager) LoadAsync(path string, listeners ...func(dataset.LoadProgress)) string {
	loader := dataset.NewLoader()
	for _, fn := range listeners {
		loader.Subscribe(fn)
	}
	loader.Subscribe(func(p dataset.LoadProgress) {
		switch p.State {
		case dataset.LoadDone:
			m.install(p.Dataset)
		case dataset.LoadFailed:
			m.emit(EventLoadFailed)
		}
	})
	return loader.Start(path)
}

func (m *Manager) install(ds *dataset.Dataset) {
	m.mu.Lock()
	m.ds = ds
	m.view = ds.All()
	m.spec = filter.Spec{}
	m.mu.Unlock()

	slog.Info("dataset loaded", "path", ds.Path(), "rows", ds.Len())
	m.emit(EventLoaded)
}

// ApplyFilters evaluates spec against the base dataset. On a non-empty
// result the view is replaced and EventFiltered fires. On an empty
// result the previous view is kept, EventEmptyResult fires once, and
// filter.ErrEmptyResult is returned so callers can tell the two apart.
func (m *Manager) ApplyFilters(spec filter.Spec) error {
	m.mu.RLock()
	ds := m.ds
	m.mu.RUnlock()

	view, err := filter.Apply(ds, spec)
	if err != nil {
		m.emit(EventEmptyResult)
		return err
	}

	m.mu.Lock()
	m.view = view
	m.spec = spec
	m.mu.Unlock()

	m.emit(EventFiltered)
	return nil
}

// Loaded reports whether a dataset has been installed.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ds != nil
}

// Dataset returns the current base dataset (nil before the first load).
func (m *Manager) Dataset() *dataset.Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ds
}

// View returns the current filtered view. Queries capture it once and
// compute against that snapshot, immune to a concurrent replace.
func (m *Manager) View() dataset.View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view
}

// Spec returns the filter spec behind the current view.
func (m *Manager) Spec() filter.Spec {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.spec
}

func (m *Manager) emit(e Event) {
	m.mu.RLock()
	listeners := make([]func(Event), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(e)
	}
}
