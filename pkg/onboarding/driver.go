package onboarding

import (
	"context"
	"time"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/arthur-debert/surfreset/pkg/utils"
	"github.com/rs/zerolog"
)

// MessageNoWindow is the result message when the window never showed up
const MessageNoWindow = "no window detected"

// Windows finds and focuses top-level windows by title
type Windows interface {
	Exists(title string) (bool, error)
	Activate(title string) error
}

// Keyboard sends one key press
type Keyboard interface {
	Tap(key string) error
}

// Timings is the full onboarding script configuration
type Timings config.Onboarding

// Driver runs the onboarding script against one window title
type Driver struct {
	windows  Windows
	keyboard Keyboard
	title    string
	timings  Timings
	sleep    utils.Sleeper
	logger   zerolog.Logger
}

// NewDriver creates a Driver. A nil sleep uses utils.Sleep.
func NewDriver(windows Windows, keyboard Keyboard, title string, timings Timings, sleep utils.Sleeper) *Driver {
	if sleep == nil {
		sleep = utils.Sleep
	}
	return &Driver{
		windows:  windows,
		keyboard: keyboard,
		title:    title,
		timings:  timings,
		sleep:    sleep,
		logger:   logging.GetLogger("onboarding"),
	}
}

// Run waits for the window and plays the key script
func (d *Driver) Run(ctx context.Context) types.Result {
	start := time.Now()
	result := d.run(ctx)
	result.Duration = time.Since(start)
	return result
}

func (d *Driver) run(ctx context.Context) types.Result {
	confirm, err := NormalizeKey(d.timings.ConfirmKey)
	if err != nil {
		return types.Fail("invalid confirm key", err)
	}
	navigate, err := NormalizeKey(d.timings.NavigateKey)
	if err != nil {
		return types.Fail("invalid navigate key", err)
	}

	found, err := d.waitForWindow(ctx)
	if err != nil {
		return types.Fail("onboarding interrupted", err)
	}
	if !found {
		d.logger.Warn().
			Str("title", d.title).
			Dur("timeout", d.timings.WindowTimeout).
			Msg("Window did not appear, skipping onboarding")
		return types.Succeed(types.OutcomeNoWindow, MessageNoWindow)
	}
	d.logger.Info().Str("title", d.title).Msg("Window detected")

	if err := d.sleep(ctx, d.timings.Settle); err != nil {
		return types.Fail("onboarding interrupted", err)
	}
	if err := d.activate(ctx); err != nil {
		return types.Fail("failed to focus window", err)
	}

	for i := 1; i <= d.timings.ConfirmPresses; i++ {
		d.logger.Debug().Int("step", i).Msg("Confirming onboarding screen")
		if err := d.confirmStep(ctx, confirm); err != nil {
			return types.Fail("onboarding step failed", err)
		}
	}

	if err := d.navigateAndConfirm(ctx, navigate, confirm); err != nil {
		return types.Fail("onboarding final step failed", err)
	}

	d.logger.Info().Msg("Onboarding completed")
	return types.Succeed(types.OutcomeCompleted, "onboarding completed")
}

// waitForWindow polls until the window exists or the timeout has been
// spent in poll intervals. A failed query counts as not found.
func (d *Driver) waitForWindow(ctx context.Context) (bool, error) {
	var waited time.Duration
	for {
		found, err := d.windows.Exists(d.title)
		if err != nil {
			d.logger.Debug().Err(err).Msg("Window query failed")
		}
		if found {
			return true, nil
		}
		if waited >= d.timings.WindowTimeout {
			return false, nil
		}
		if err := d.sleep(ctx, d.timings.PollInterval); err != nil {
			return false, err
		}
		waited += d.timings.PollInterval
	}
}

func (d *Driver) confirmStep(ctx context.Context, confirm string) error {
	if err := d.activate(ctx); err != nil {
		return err
	}
	if err := d.sleep(ctx, d.timings.PrePressDelay); err != nil {
		return err
	}
	if err := d.press(ctx, confirm, d.timings.ConfirmDelay); err != nil {
		return err
	}
	return d.sleep(ctx, d.timings.StepDelay)
}

func (d *Driver) navigateAndConfirm(ctx context.Context, navigate, confirm string) error {
	if err := d.activate(ctx); err != nil {
		return err
	}
	if err := d.sleep(ctx, d.timings.PreNavigateDelay); err != nil {
		return err
	}
	for i := 0; i < d.timings.NavigatePresses; i++ {
		if err := d.press(ctx, navigate, d.timings.NavigateDelay); err != nil {
			return err
		}
	}
	if err := d.press(ctx, confirm, d.timings.ConfirmDelay); err != nil {
		return err
	}
	return d.sleep(ctx, d.timings.FinalDelay)
}

func (d *Driver) activate(ctx context.Context) error {
	if err := d.windows.Activate(d.title); err != nil {
		return errors.Wrapf(err, errors.ErrWindow, "failed to activate %q", d.title)
	}
	return d.sleep(ctx, d.timings.ActivateDelay)
}

func (d *Driver) press(ctx context.Context, key string, after time.Duration) error {
	d.logger.Trace().Str("key", key).Msg("Key press")
	if err := d.keyboard.Tap(key); err != nil {
		return errors.Wrapf(err, errors.ErrKeypress, "failed to press %s", key)
	}
	return d.sleep(ctx, after)
}
