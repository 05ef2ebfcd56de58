package types

import (
	"time"

	"github.com/arthur-debert/surfreset/pkg/identity"
	"github.com/arthur-debert/surfreset/pkg/paths"
)

// Outcome distinguishes results that share the same success flag
type Outcome string

const (
	// OutcomeCompleted means every step ran
	OutcomeCompleted Outcome = "completed"
	// OutcomeNoWindow means onboarding gave up waiting for the window
	OutcomeNoWindow Outcome = "no_window"
	// OutcomeHandedOff means the flow stopped where a person has to log in
	OutcomeHandedOff Outcome = "handed_off"
	// OutcomeAborted means a step failed and later steps were skipped
	OutcomeAborted Outcome = "aborted"
)

// StepStatus is the state of one step of an operation
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepWarning StepStatus = "warning"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
)

// Step records one stage of an operation
type Step struct {
	Name     string        `json:"name"`
	Status   StepStatus    `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Result is what every manager operation returns. Failures are carried
// in the value; operations never panic or return a bare error.
type Result struct {
	// Success indicates whether the operation reached its goal
	Success bool `json:"success"`

	// Message is a one-line human summary
	Message string `json:"message"`

	// Error contains the error that ended the operation, if any
	Error error `json:"-"`

	// ErrorMessage is Error rendered for JSON output
	ErrorMessage string `json:"error,omitempty"`

	Outcome Outcome `json:"outcome,omitempty"`

	// NeedsBrowserLogin tells the caller to finish login in a browser
	NeedsBrowserLogin bool `json:"needsBrowserLogin,omitempty"`

	// Identifiers are the values written by a reset or rotation
	Identifiers *identity.Set `json:"identifiers,omitempty"`

	// Executable is the path that was launched
	Executable string `json:"executable,omitempty"`

	// Paths is the existence report of DetectPaths
	Paths []paths.Status `json:"paths,omitempty"`

	Steps []Step `json:"steps,omitempty"`

	Duration time.Duration `json:"duration"`
}

// Succeed builds a successful result
func Succeed(outcome Outcome, message string) Result {
	return Result{Success: true, Outcome: outcome, Message: message}
}

// Fail builds a failed result around err
func Fail(message string, err error) Result {
	r := Result{Success: false, Outcome: OutcomeAborted, Message: message}
	r.SetError(err)
	return r
}

// SetError records err in both the error and its JSON rendering
func (r *Result) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	} else {
		r.ErrorMessage = ""
	}
}

// AddStep appends a step record
func (r *Result) AddStep(name string, status StepStatus, message string, d time.Duration) {
	r.Steps = append(r.Steps, Step{Name: name, Status: status, Message: message, Duration: d})
}
