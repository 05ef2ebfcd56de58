package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Call is one command seen by FakeRunner
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeProcess is the simulated state of the target application
type FakeProcess struct {
	Image   string
	Running bool
	// IgnoreTerm keeps the process alive after a graceful stop
	IgnoreTerm bool
	// IgnoreKill keeps it alive even after a forced kill
	IgnoreKill bool
}

// ErrNoMatch is what pgrep and pkill report when nothing matches
var ErrNoMatch = errors.New("exit status 1")

// FakeRunner answers tasklist, taskkill, pgrep and pkill from a
// FakeProcess and records every call
type FakeRunner struct {
	mu      sync.Mutex
	Process *FakeProcess
	Calls   []Call
	Started []Call

	// QueryErr makes every process query fail
	QueryErr error
	// StartErr makes every Start fail
	StartErr error
}

// NewFakeRunner returns a runner over a process that is running or not
func NewFakeRunner(image string, running bool) *FakeRunner {
	return &FakeRunner{Process: &FakeProcess{Image: image, Running: running}}
}

func (r *FakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, Call{Name: name, Args: args})

	p := r.Process
	switch name {
	case "tasklist":
		if r.QueryErr != nil {
			return nil, r.QueryErr
		}
		if p.Running {
			return []byte(p.Image + "    4242 Console    1    120,000 K\n"), nil
		}
		return []byte("INFO: No tasks are running which match the specified criteria.\n"), nil
	case "pgrep":
		if r.QueryErr != nil {
			return nil, r.QueryErr
		}
		if p.Running {
			return []byte("4242\n"), nil
		}
		return nil, ErrNoMatch
	case "taskkill", "pkill":
		if !p.Running {
			return nil, ErrNoMatch
		}
		if isForced(args) {
			if !p.IgnoreKill {
				p.Running = false
			}
		} else if !p.IgnoreTerm {
			p.Running = false
		}
		return nil, nil
	}
	return nil, errors.New("unexpected command " + name)
}

func (r *FakeRunner) Start(name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Started = append(r.Started, Call{Name: name, Args: args})
	return r.StartErr
}

// Commands returns the recorded Run calls as command lines
func (r *FakeRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

func isForced(args []string) bool {
	for _, a := range args {
		if a == "/F" || a == "-KILL" {
			return true
		}
	}
	return false
}

// Sleeps records requested delays and never blocks. A cancelled context
// still stops the caller.
type Sleeps struct {
	mu        sync.Mutex
	Durations []time.Duration
}

// Sleep matches utils.Sleeper
func (s *Sleeps) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.Durations = append(s.Durations, d)
	s.mu.Unlock()
	return ctx.Err()
}

// Total is the sum of all recorded delays
func (s *Sleeps) Total() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total
}

// FakeWindows reports a window as present after a number of polls
type FakeWindows struct {
	mu sync.Mutex
	// AppearAfter is the number of Exists calls answering false first;
	// negative means the window never appears
	AppearAfter int
	ExistsErr   error
	ActivateErr error

	Polls     int
	Activated int
	// Log interleaves activations with key taps when shared with a
	// FakeKeyboard
	Log *[]string
}

func (w *FakeWindows) Exists(string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Polls++
	if w.ExistsErr != nil {
		return false, w.ExistsErr
	}
	return w.AppearAfter >= 0 && w.Polls > w.AppearAfter, nil
}

func (w *FakeWindows) Activate(string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ActivateErr != nil {
		return w.ActivateErr
	}
	w.Activated++
	if w.Log != nil {
		*w.Log = append(*w.Log, "activate")
	}
	return nil
}

// FakeKeyboard records taps and can fail on the Nth one
type FakeKeyboard struct {
	mu   sync.Mutex
	Keys []string
	// FailAt is the 1-based tap that fails; zero never fails
	FailAt int
	Err    error
	Log    *[]string
}

func (k *FakeKeyboard) Tap(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.FailAt > 0 && len(k.Keys)+1 == k.FailAt {
		return k.Err
	}
	k.Keys = append(k.Keys, key)
	if k.Log != nil {
		*k.Log = append(*k.Log, key)
	}
	return nil
}
