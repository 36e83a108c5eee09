package dataset

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBackgroundLoadMilestones(t *testing.T) {
	path := writeCSV(t,
		`1,A,1,H1,Brooklyn,Williamsburg,40.7,-73.9,Private room,50,1,0,,,1,10`,
	)

	loader := NewLoader()
	if loader.State() != LoadNotStarted {
		t.Fatalf("initial state = %v, want not started", loader.State())
	}

	events := make(chan LoadProgress, 8)
	loader.Subscribe(func(p LoadProgress) { events <- p })

	jobID := loader.Start(path)
	if jobID == "" {
		t.Fatal("expected a job ID")
	}

	want := []LoadState{LoadParsing, LoadDeriving, LoadDone}
	for _, state := range want {
		select {
		case p := <-events:
			if p.State != state {
				t.Fatalf("got state %v, want %v", p.State, state)
			}
			if p.JobID != jobID {
				t.Errorf("job ID %q, want %q", p.JobID, jobID)
			}
			if state == LoadDone {
				if p.Dataset == nil || p.Dataset.Len() != 1 {
					t.Error("done milestone should carry the loaded dataset")
				}
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for state %v", state)
		}
	}

	if loader.State() != LoadDone {
		t.Errorf("final state = %v, want done", loader.State())
	}
}

func TestBackgroundLoadFailure(t *testing.T) {
	loader := NewLoader()

	events := make(chan LoadProgress, 8)
	loader.Subscribe(func(p LoadProgress) { events <- p })

	loader.Start(filepath.Join(t.TempDir(), "missing.csv"))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-events:
			if p.State == LoadFailed {
				if p.Err == nil {
					t.Error("failed milestone should carry the error")
				}
				return
			}
			if p.State == LoadDone {
				t.Fatal("load of a missing file should not succeed")
			}
		case <-deadline:
			t.Fatal("timed out waiting for failure")
		}
	}
}

func TestLoadStateString(t *testing.T) {
	states := map[LoadState]string{
		LoadNotStarted: "not started",
		LoadParsing:    "parsing",
		LoadDeriving:   "deriving",
		LoadDone:       "done",
		LoadFailed:     "failed",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
