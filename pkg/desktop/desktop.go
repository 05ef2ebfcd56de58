// Package desktop implements the onboarding driver's window and keyboard
// interfaces on top of robotgo.
//
// It needs cgo and a desktop session. Nothing else in the module imports
// robotgo, so every other package builds and tests without them.
package desktop

import (
	"strings"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/go-vgo/robotgo"
	"github.com/rs/zerolog"
)

// Windows finds the application's windows through its process list
type Windows struct {
	process string
	logger  zerolog.Logger
}

// NewWindows looks for windows owned by processes whose name contains
// process
func NewWindows(process string) *Windows {
	return &Windows{
		process: strings.TrimSuffix(process, ".exe"),
		logger:  logging.GetLogger("desktop"),
	}
}

// Exists reports whether a window whose title contains title is open
func (w *Windows) Exists(title string) (bool, error) {
	pid, err := w.find(title)
	if err != nil {
		return false, err
	}
	return pid != 0, nil
}

// Activate brings the matching window to the foreground
func (w *Windows) Activate(title string) error {
	pid, err := w.find(title)
	if err != nil {
		return err
	}
	if pid == 0 {
		return errors.Newf(errors.ErrWindow, "no window titled %q", title)
	}
	if err := robotgo.ActivePid(pid); err != nil {
		return errors.Wrapf(err, errors.ErrWindow, "failed to activate pid %d", pid)
	}
	return nil
}

// find returns the pid owning a matching window, or zero
func (w *Windows) find(title string) (int, error) {
	ids, err := robotgo.FindIds(w.process)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrWindow, "failed to list %s processes", w.process)
	}
	needle := strings.ToLower(title)
	for _, pid := range ids {
		got := robotgo.GetTitle(pid)
		w.logger.Trace().Int("pid", pid).Str("title", got).Msg("Window candidate")
		if got != "" && strings.Contains(strings.ToLower(got), needle) {
			return pid, nil
		}
	}
	return 0, nil
}

// Keyboard taps keys with robotgo
type Keyboard struct{}

// NewKeyboard returns the robotgo keyboard
func NewKeyboard() Keyboard {
	return Keyboard{}
}

// robotgo spells a few keys differently
var robotgoKeys = map[string]string{
	"escape": "esc",
}

// Tap presses and releases key, given in its normalised form
func (Keyboard) Tap(key string) error {
	name := key
	if alt, ok := robotgoKeys[key]; ok {
		name = alt
	}
	if err := robotgo.KeyTap(name); err != nil {
		return errors.Wrapf(err, errors.ErrKeypress, "failed to tap %s", key)
	}
	return nil
}
