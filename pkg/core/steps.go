package core

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/types"
)

// track times fn and records it as a step
func (m *Manager) track(result *types.Result, name string, fn func() (types.StepStatus, string)) {
	start := time.Now()
	status, message := fn()
	d := time.Since(start)
	result.AddStep(name, status, message, d)

	event := m.logger.Info()
	if status == types.StepWarning || status == types.StepFailed {
		event = m.logger.Warn()
	}
	event.Str("step", name).Str("status", string(status)).Dur("took", d).Msg(message)
}

// closeStep terminates the application and lets it settle if it had been
// running
func (m *Manager) closeStep(ctx context.Context, result *types.Result) error {
	var err error
	m.track(result, StepClose, func() (types.StepStatus, string) {
		report := m.terminator.Stop(ctx)
		if ctx.Err() != nil {
			err = ctx.Err()
			return types.StepFailed, "interrupted"
		}
		if !report.WasRunning {
			return types.StepSkipped, "not running"
		}
		if err = m.sleep(ctx, m.cfg.Process.AfterClose); err != nil {
			return types.StepFailed, "interrupted"
		}
		if report.StillRunning {
			return types.StepWarning, "may still be running"
		}
		return types.StepDone, "closed"
	})
	return err
}

func (m *Manager) launchStep(ctx context.Context, result *types.Result) (string, error) {
	var path string
	var err error
	m.track(result, StepLaunch, func() (types.StepStatus, string) {
		path, err = m.launcher.Launch(ctx)
		if err != nil {
			return types.StepFailed, err.Error()
		}
		return types.StepDone, path
	})
	return path, err
}

func (m *Manager) wait(ctx context.Context, result *types.Result, name string, d time.Duration) error {
	var err error
	m.track(result, name, func() (types.StepStatus, string) {
		if err = m.sleep(ctx, d); err != nil {
			return types.StepFailed, "interrupted"
		}
		return types.StepDone, fmt.Sprintf("waited %s", d)
	})
	return err
}

func (m *Manager) runOnboarding(ctx context.Context) types.Result {
	if m.driver == nil {
		return types.Fail("onboarding unavailable",
			errors.New(errors.ErrWindow, "no window automation configured"))
	}
	return m.driver.Run(ctx)
}

func purgeStatus(failed []string, removed int) (types.StepStatus, string) {
	if len(failed) > 0 {
		return types.StepWarning, fmt.Sprintf("removed %d, could not remove %d", removed, len(failed))
	}
	return types.StepDone, fmt.Sprintf("removed %d", removed)
}

// interrupted turns a partially built result into a cancelled one
func interrupted(result types.Result, err error, start time.Time) types.Result {
	result.Success = false
	result.Outcome = types.OutcomeAborted
	result.Message = "interrupted"
	result.SetError(err)
	result.Duration = time.Since(start)
	return result
}
