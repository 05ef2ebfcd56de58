package purge

import (
	"path/filepath"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/rs/zerolog"
)

// Step is one path the purger acted on
type Step struct {
	Path    string             `json:"path"`
	Outcome filesystem.Outcome `json:"outcome"`
}

// Report lists every step in the order it ran
type Report struct {
	Steps []Step `json:"steps"`
	// Skipped is set when the user data directory did not exist
	Skipped bool `json:"skipped,omitempty"`
}

// Failed returns the paths that could not be removed
func (r Report) Failed() []string {
	var failed []string
	for _, s := range r.Steps {
		if s.Outcome == filesystem.OutcomeFailed {
			failed = append(failed, s.Path)
		}
	}
	return failed
}

// Removed counts steps that actually changed something
func (r Report) Removed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Outcome == filesystem.OutcomeDone {
			n++
		}
	}
	return n
}

func (r *Report) add(path string, o filesystem.Outcome) {
	r.Steps = append(r.Steps, Step{Path: path, Outcome: o})
}

// Purger removes caches and user data under a path table
type Purger struct {
	fs     filesystem.FS
	table  paths.Table
	cfg    config.Purge
	logger zerolog.Logger
}

// New creates a Purger
func New(fsys filesystem.FS, table paths.Table, cfg config.Purge) *Purger {
	return &Purger{
		fs:     fsys,
		table:  table,
		cfg:    cfg,
		logger: logging.GetLogger("purge"),
	}
}

// PurgeCaches removes every deletion-list entry under the app support
// directory, files and directories alike, then the cache root.
func (p *Purger) PurgeCaches() Report {
	var report Report

	for _, name := range p.cfg.Subdirs {
		path := filepath.Join(p.table.AppSupport, name)
		report.add(path, filesystem.RemovePath(p.fs, p.logger, path))
	}
	report.add(p.table.Cache, filesystem.RemovePath(p.fs, p.logger, p.table.Cache))

	p.logger.Info().
		Int("removed", report.Removed()).
		Int("failed", len(report.Failed())).
		Msg("Caches purged")
	return report
}

// PurgeUserData clears global storage except the kept file and resets the
// workspace storage and history directories. Nothing happens when the user
// data directory does not exist.
func (p *Purger) PurgeUserData() Report {
	var report Report

	if !filesystem.Exists(p.fs, p.table.UserData) {
		p.logger.Warn().Str("path", p.table.UserData).Msg("User data directory not found, skipping")
		report.Skipped = true
		return report
	}

	entries, err := p.fs.ReadDir(p.table.GlobalStorage)
	if err != nil {
		o := filesystem.Attempt(p.logger, "list", p.table.GlobalStorage, func() error { return err })
		report.add(p.table.GlobalStorage, o)
	}
	for _, entry := range entries {
		if entry.Name() == p.cfg.KeepInGlobalStorage {
			p.logger.Debug().Str("name", entry.Name()).Msg("Keeping global storage entry")
			continue
		}
		path := filepath.Join(p.table.GlobalStorage, entry.Name())
		report.add(path, filesystem.RemovePath(p.fs, p.logger, path))
	}

	for _, dir := range []string{p.table.WorkspaceStorage, p.table.History} {
		report.add(dir, filesystem.ResetDir(p.fs, p.logger, dir))
	}

	p.logger.Info().
		Int("removed", report.Removed()).
		Int("failed", len(report.Failed())).
		Msg("User data purged")
	return report
}
