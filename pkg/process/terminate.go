package process

import (
	"context"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/utils"
	"github.com/rs/zerolog"
)

// StopReport describes one termination run
type StopReport struct {
	WasRunning   bool `json:"wasRunning"`
	Forced       bool `json:"forced"`
	StillRunning bool `json:"stillRunning"`
}

// Terminator stops the application, escalating from a graceful request
// to a forced kill
type Terminator struct {
	ctl    *Controller
	cfg    config.Process
	sleep  utils.Sleeper
	logger zerolog.Logger
}

// NewTerminator creates a Terminator. A nil sleep uses utils.Sleep.
func NewTerminator(ctl *Controller, cfg config.Process, sleep utils.Sleeper) *Terminator {
	if sleep == nil {
		sleep = utils.Sleep
	}
	return &Terminator{
		ctl:    ctl,
		cfg:    cfg,
		sleep:  sleep,
		logger: logging.GetLogger("terminator"),
	}
}

// Terminate stops the application and always reports true; a process that
// survives both attempts only produces a warning.
func (t *Terminator) Terminate(ctx context.Context) bool {
	t.Stop(ctx)
	return true
}

// Stop runs graceful stop, wait, re-check, forced kill, wait, re-check.
// Errors from the kill commands are logged and otherwise ignored.
func (t *Terminator) Stop(ctx context.Context) StopReport {
	var report StopReport

	if !t.running(ctx) {
		t.logger.Debug().Str("image", t.ctl.Image()).Msg("Application not running")
		return report
	}
	report.WasRunning = true

	t.logger.Info().Str("image", t.ctl.Image()).Msg("Stopping application")
	if err := t.ctl.Stop(ctx); err != nil {
		t.logger.Debug().Err(err).Msg("Graceful stop returned an error")
	}
	if err := t.sleep(ctx, t.cfg.GraceWait); err != nil {
		report.StillRunning = true
		return report
	}
	if !t.running(ctx) {
		t.logger.Info().Msg("Application exited")
		return report
	}

	report.Forced = true
	t.logger.Info().Str("image", t.ctl.Image()).Msg("Application still running, forcing")
	if err := t.ctl.Kill(ctx); err != nil {
		t.logger.Debug().Err(err).Msg("Forced stop returned an error")
	}
	if err := t.sleep(ctx, t.cfg.ForceWait); err != nil {
		report.StillRunning = true
		return report
	}

	if t.running(ctx) {
		report.StillRunning = true
		t.logger.Warn().Str("image", t.ctl.Image()).Msg("Application may still be running")
	}
	return report
}

func (t *Terminator) running(ctx context.Context) bool {
	running, err := t.ctl.IsRunning(ctx)
	if err != nil {
		t.logger.Debug().Err(err).Msg("Process query failed, assuming not running")
		return false
	}
	return running
}
