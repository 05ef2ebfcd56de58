package core

import (
	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/identity"
	"github.com/arthur-debert/surfreset/pkg/launcher"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/onboarding"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/arthur-debert/surfreset/pkg/process"
	"github.com/arthur-debert/surfreset/pkg/purge"
	"github.com/arthur-debert/surfreset/pkg/utils"
	"github.com/rs/zerolog"
)

// Deps are the side-effecting collaborators of a Manager
type Deps struct {
	FS     filesystem.FS
	Runner process.Runner

	// Windows and Keyboard drive onboarding; without them Onboard fails
	Windows  onboarding.Windows
	Keyboard onboarding.Keyboard

	// Sleep defaults to utils.Sleep
	Sleep utils.Sleeper
	// Generator defaults to a clock-seeded one
	Generator *identity.Generator
}

// Manager runs the user-facing operations
type Manager struct {
	cfg   config.Config
	table paths.Table
	fs    filesystem.FS
	sleep utils.Sleeper

	terminator *process.Terminator
	purger     *purge.Purger
	writer     *identity.Writer
	launcher   *launcher.Launcher
	driver     *onboarding.Driver

	logger zerolog.Logger
}

// NewManager wires every component from cfg and env
func NewManager(cfg config.Config, env paths.Env, deps Deps) *Manager {
	if deps.Sleep == nil {
		deps.Sleep = utils.Sleep
	}
	if deps.Generator == nil {
		deps.Generator = identity.NewTimeSeededGenerator()
	}

	table := paths.New(env, cfg.Target)
	ctl := process.NewController(deps.Runner, env.GOOS, cfg.Target.Image)

	m := &Manager{
		cfg:        cfg,
		table:      table,
		fs:         deps.FS,
		sleep:      deps.Sleep,
		terminator: process.NewTerminator(ctl, cfg.Process, deps.Sleep),
		purger:     purge.New(deps.FS, table, cfg.Purge),
		writer:     identity.NewWriter(deps.FS, table, deps.Generator),
		launcher:   launcher.New(deps.FS, table, deps.Runner, env.GOOS),
		logger:     logging.GetLogger("core"),
	}
	if deps.Windows != nil && deps.Keyboard != nil {
		m.driver = onboarding.NewDriver(deps.Windows, deps.Keyboard, cfg.Target.WindowTitle,
			onboarding.Timings(cfg.Onboarding), deps.Sleep)
	}
	return m
}

// Table is the path table the manager works on
func (m *Manager) Table() paths.Table {
	return m.table
}
