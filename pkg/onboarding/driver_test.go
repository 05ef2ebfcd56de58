package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/testutil"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	windows  *testutil.FakeWindows
	keyboard *testutil.FakeKeyboard
	sleeps   *testutil.Sleeps
	log      []string
	driver   *Driver
}

func newHarness(appearAfter int, timings Timings) *harness {
	h := &harness{sleeps: &testutil.Sleeps{}}
	h.windows = &testutil.FakeWindows{AppearAfter: appearAfter, Log: &h.log}
	h.keyboard = &testutil.FakeKeyboard{Log: &h.log}
	h.driver = NewDriver(h.windows, h.keyboard, "Windsurf", timings, h.sleeps.Sleep)
	return h
}

func defaultTimings() Timings {
	return Timings(config.Default().Onboarding)
}

func TestRunKeySequence(t *testing.T) {
	h := newHarness(0, defaultTimings())

	result := h.driver.Run(context.Background())

	require.True(t, result.Success, result.ErrorMessage)
	assert.Equal(t, types.OutcomeCompleted, result.Outcome)
	assert.Equal(t, []string{
		"activate",
		"activate", "enter",
		"activate", "enter",
		"activate", "enter",
		"activate", "tab", "tab", "tab", "enter",
	}, h.log)
	assert.Equal(t, []string{"enter", "enter", "enter", "tab", "tab", "tab", "enter"}, h.keyboard.Keys)
}

func TestRunDelays(t *testing.T) {
	h := newHarness(0, defaultTimings())

	h.driver.Run(context.Background())

	ms := time.Millisecond
	assert.Equal(t, []time.Duration{
		3 * time.Second, // settle
		500 * ms,        // activate
		// three confirm steps
		500 * ms, 200 * ms, 500 * ms, 800 * ms,
		500 * ms, 200 * ms, 500 * ms, 800 * ms,
		500 * ms, 200 * ms, 500 * ms, 800 * ms,
		// navigate and final confirm
		500 * ms, 500 * ms,
		300 * ms, 300 * ms, 300 * ms,
		500 * ms, 2 * time.Second,
	}, h.sleeps.Durations)
}

func TestRunWaitsForWindow(t *testing.T) {
	h := newHarness(3, defaultTimings())

	result := h.driver.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, types.OutcomeCompleted, result.Outcome)
	assert.Equal(t, 4, h.windows.Polls)
	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, h.sleeps.Durations[:3])
}

func TestRunNoWindow(t *testing.T) {
	timings := defaultTimings()
	timings.WindowTimeout = 5 * time.Second
	h := newHarness(-1, timings)

	result := h.driver.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, types.OutcomeNoWindow, result.Outcome)
	assert.Equal(t, MessageNoWindow, result.Message)
	assert.Empty(t, h.keyboard.Keys)
	assert.Equal(t, 6, h.windows.Polls)
	assert.Equal(t, 5*time.Second, h.sleeps.Total())
}

func TestRunNoWindowRealClock(t *testing.T) {
	timings := defaultTimings()
	timings.WindowTimeout = 20 * time.Millisecond
	timings.PollInterval = 5 * time.Millisecond
	windows := &testutil.FakeWindows{AppearAfter: -1}
	keyboard := &testutil.FakeKeyboard{}

	result := NewDriver(windows, keyboard, "Windsurf", timings, nil).Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, types.OutcomeNoWindow, result.Outcome)
	assert.Empty(t, keyboard.Keys)
}

func TestRunQueryErrorCountsAsAbsent(t *testing.T) {
	timings := defaultTimings()
	timings.WindowTimeout = 2 * time.Second
	h := newHarness(0, timings)
	h.windows.ExistsErr = assert.AnError

	result := h.driver.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, types.OutcomeNoWindow, result.Outcome)
}

func TestRunActivateFailure(t *testing.T) {
	h := newHarness(0, defaultTimings())
	h.windows.ActivateErr = assert.AnError

	result := h.driver.Run(context.Background())

	assert.False(t, result.Success)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrWindow))
	assert.Empty(t, h.keyboard.Keys)
}

func TestRunKeypressFailureAborts(t *testing.T) {
	h := newHarness(0, defaultTimings())
	h.keyboard.FailAt = 2
	h.keyboard.Err = assert.AnError

	result := h.driver.Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, types.OutcomeAborted, result.Outcome)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrKeypress))
	assert.Equal(t, []string{"enter"}, h.keyboard.Keys)
}

func TestRunInvalidKey(t *testing.T) {
	timings := defaultTimings()
	timings.NavigateKey = "f13"
	h := newHarness(0, timings)

	result := h.driver.Run(context.Background())

	assert.False(t, result.Success)
	assert.Zero(t, h.windows.Polls)
}

func TestRunCustomScript(t *testing.T) {
	timings := defaultTimings()
	timings.ConfirmPresses = 1
	timings.NavigatePresses = 2
	timings.ConfirmKey = "return"
	timings.NavigateKey = "down"
	h := newHarness(0, timings)

	result := h.driver.Run(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, []string{"enter", "down", "down", "enter"}, h.keyboard.Keys)
}

func TestRunCancelled(t *testing.T) {
	h := newHarness(-1, defaultTimings())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := h.driver.Run(ctx)

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Equal(t, 1, h.windows.Polls)
}
