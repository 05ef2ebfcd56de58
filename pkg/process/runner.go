package process

import (
	"context"
	"os/exec"
)

// Runner executes external commands
type Runner interface {
	// Run waits for the command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	// Start launches the command without waiting for it
	Start(name string, args ...string) error
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner returns the os/exec backed runner
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The child outlives us; nobody waits on it
	return cmd.Process.Release()
}
