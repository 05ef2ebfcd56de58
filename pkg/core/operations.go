package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/types"
)

// Step names, shared with the output renderer
const (
	StepClose           = "close"
	StepPurgeCaches     = "purge-caches"
	StepPurgeUserData   = "purge-user-data"
	StepIdentifiers     = "identifiers"
	StepWaitAfterReset  = "wait-after-reset"
	StepLaunch          = "launch"
	StepWaitAfterLaunch = "wait-after-launch"
	StepOnboarding      = "onboarding"
)

// FullReset stops the application and returns its state to a fresh
// install with new identifiers
func (m *Manager) FullReset(ctx context.Context) types.Result {
	defer logging.LogOperationStart(m.logger, "full-reset")()
	start := time.Now()
	result := types.Succeed(types.OutcomeCompleted, "")

	if err := m.closeStep(ctx, &result); err != nil {
		return interrupted(result, err, start)
	}

	m.track(&result, StepPurgeCaches, func() (types.StepStatus, string) {
		report := m.purger.PurgeCaches()
		return purgeStatus(report.Failed(), report.Removed())
	})
	if err := ctx.Err(); err != nil {
		return interrupted(result, err, start)
	}

	m.track(&result, StepPurgeUserData, func() (types.StepStatus, string) {
		report := m.purger.PurgeUserData()
		if report.Skipped {
			return types.StepSkipped, "user data directory not found"
		}
		return purgeStatus(report.Failed(), report.Removed())
	})
	if err := ctx.Err(); err != nil {
		return interrupted(result, err, start)
	}

	m.track(&result, StepIdentifiers, func() (types.StepStatus, string) {
		set, report := m.writer.Regenerate()
		result.Identifiers = &set
		if !report.OK() {
			return types.StepWarning, "some identifier files could not be written"
		}
		return types.StepDone, "new identifiers written"
	})

	result.Message = fmt.Sprintf("%s reset to a fresh install", m.cfg.Target.Name)
	result.Duration = time.Since(start)
	return result
}

// AutoLogin resets, relaunches and clicks through onboarding, then hands
// over to the browser login
func (m *Manager) AutoLogin(ctx context.Context, email string) types.Result {
	defer logging.LogOperationStart(m.logger, "auto-login")()
	start := time.Now()

	email = strings.TrimSpace(email)
	if email == "" {
		return types.Fail("an email address is required", errors.New(errors.ErrInvalidInput, "empty email"))
	}

	result := m.FullReset(ctx)
	if !result.Success {
		result.Message = "reset failed: " + result.Message
		return result
	}

	if err := m.wait(ctx, &result, StepWaitAfterReset, m.cfg.Launch.AfterReset); err != nil {
		return interrupted(result, err, start)
	}

	path, err := m.launchStep(ctx, &result)
	if err != nil {
		result.Success = false
		result.Outcome = types.OutcomeAborted
		result.SetError(err)
		if errors.IsErrorCode(err, errors.ErrExecutableNotFound) {
			result.Message = fmt.Sprintf("%s is not installed", m.cfg.Target.Name)
		} else {
			result.Message = fmt.Sprintf("failed to launch %s", m.cfg.Target.Name)
		}
		result.Duration = time.Since(start)
		return result
	}
	result.Executable = path

	if err := m.wait(ctx, &result, StepWaitAfterLaunch, m.cfg.Launch.AfterLaunch); err != nil {
		return interrupted(result, err, start)
	}

	m.track(&result, StepOnboarding, func() (types.StepStatus, string) {
		onboard := m.runOnboarding(ctx)
		switch {
		case !onboard.Success:
			m.logger.Warn().Str("error", onboard.ErrorMessage).Msg("Onboarding failed, continuing")
			return types.StepWarning, onboard.Message + ": " + onboard.ErrorMessage
		case onboard.Outcome == types.OutcomeNoWindow:
			return types.StepWarning, onboard.Message
		default:
			return types.StepDone, onboard.Message
		}
	})
	if err := ctx.Err(); err != nil {
		return interrupted(result, err, start)
	}

	m.logger.Info().Str("email", email).Msg("Handing over to browser login")
	result.Success = true
	result.Outcome = types.OutcomeHandedOff
	result.NeedsBrowserLogin = true
	result.Message = fmt.Sprintf("finish logging in as %s in the browser", email)
	result.Duration = time.Since(start)
	return result
}

// Close stops the application if it is running
func (m *Manager) Close(ctx context.Context) types.Result {
	start := time.Now()
	result := types.Succeed(types.OutcomeCompleted, "")
	report := m.terminator.Stop(ctx)

	switch {
	case ctx.Err() != nil:
		return interrupted(result, ctx.Err(), start)
	case !report.WasRunning:
		result.Message = fmt.Sprintf("%s is not running", m.cfg.Target.Name)
	case report.StillRunning:
		result.Message = fmt.Sprintf("%s may still be running", m.cfg.Target.Name)
	default:
		result.Message = fmt.Sprintf("%s closed", m.cfg.Target.Name)
	}
	result.Duration = time.Since(start)
	return result
}

// Launch starts the installed application
func (m *Manager) Launch(ctx context.Context) types.Result {
	start := time.Now()
	result := types.Succeed(types.OutcomeCompleted, "")

	path, err := m.launchStep(ctx, &result)
	if err != nil {
		failed := types.Fail(fmt.Sprintf("failed to launch %s", m.cfg.Target.Name), err)
		failed.Steps = result.Steps
		failed.Duration = time.Since(start)
		return failed
	}
	result.Executable = path
	result.Message = fmt.Sprintf("%s launched", m.cfg.Target.Name)
	result.Duration = time.Since(start)
	return result
}

// Onboard runs only the onboarding key script against an open window
func (m *Manager) Onboard(ctx context.Context) types.Result {
	return m.runOnboarding(ctx)
}

// RotateIdentifiers swaps new identifiers into the existing storage file
// without purging anything. The application should be closed first.
func (m *Manager) RotateIdentifiers(ctx context.Context) types.Result {
	start := time.Now()
	result := types.Succeed(types.OutcomeCompleted, "identifiers rotated")

	if err := m.closeStep(ctx, &result); err != nil {
		return interrupted(result, err, start)
	}

	m.track(&result, StepIdentifiers, func() (types.StepStatus, string) {
		set, report := m.writer.Rotate()
		result.Identifiers = &set
		if !report.OK() {
			return types.StepWarning, "some identifier files could not be written"
		}
		return types.StepDone, "identifiers rotated in place"
	})
	result.Duration = time.Since(start)
	return result
}

// DetectPaths reports which of the application's locations exist
func (m *Manager) DetectPaths() types.Result {
	statuses := m.table.Detect(m.fs)
	found := 0
	for _, s := range statuses {
		if s.Exists {
			found++
		}
	}
	result := types.Succeed(types.OutcomeCompleted,
		fmt.Sprintf("%d of %d locations exist", found, len(statuses)))
	result.Paths = statuses
	return result
}
