package identity

import (
	"encoding/json"

	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/rs/zerolog"
)

// Report records what happened to each file
type Report struct {
	Settings      filesystem.Outcome `json:"settings"`
	Storage       filesystem.Outcome `json:"storage"`
	MachineIDFile filesystem.Outcome `json:"machineIdFile"`
	Layout        filesystem.Outcome `json:"layout,omitempty"`
}

// OK is true when no write failed
func (r Report) OK() bool {
	for _, o := range []filesystem.Outcome{r.Settings, r.Storage, r.MachineIDFile, r.Layout} {
		if o == filesystem.OutcomeFailed {
			return false
		}
	}
	return true
}

// Writer puts identifiers into the application's files
type Writer struct {
	fs     filesystem.FS
	table  paths.Table
	gen    *Generator
	logger zerolog.Logger
}

// NewWriter creates a Writer over the given path table
func NewWriter(fsys filesystem.FS, table paths.Table, gen *Generator) *Writer {
	return &Writer{
		fs:     fsys,
		table:  table,
		gen:    gen,
		logger: logging.GetLogger("identity"),
	}
}

// Regenerate writes the preset settings file, replaces the storage file
// and the machine-id file with fresh identifiers, and makes sure the user
// data directories exist. Each write is attempted even if an earlier one
// failed.
func (w *Writer) Regenerate() (Set, Report) {
	set := w.gen.NewSet()
	w.logSet(set)

	var report Report

	settings, err := settingsJSON()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to encode settings")
		report.Settings = filesystem.OutcomeFailed
	} else {
		report.Settings = filesystem.WriteFile(w.fs, w.logger, w.table.SettingsFile, settings)
	}

	storage, err := storageJSON(set)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to encode storage")
		report.Storage = filesystem.OutcomeFailed
	} else {
		report.Storage = filesystem.ReplaceFile(w.fs, w.logger, w.table.StorageFile, storage)
	}

	report.MachineIDFile = filesystem.ReplaceFile(w.fs, w.logger, w.table.MachineIDFile, machineIDFile(set))

	report.Layout = filesystem.OutcomeDone
	for _, dir := range []string{w.table.WorkspaceStorage, w.table.History, w.table.GlobalStorage} {
		if o := filesystem.Attempt(w.logger, "mkdir", dir, func() error {
			return w.fs.MkdirAll(dir, 0755)
		}); o == filesystem.OutcomeFailed {
			report.Layout = o
		}
	}

	w.logReport(report)
	return set, report
}

// Rotate swaps new identifiers into the existing storage file instead of
// replacing it, dropping keys that tie the profile to previous sessions,
// and overwrites the machine-id file. A missing or unreadable storage file
// starts from an empty object.
func (w *Writer) Rotate() (Set, Report) {
	set := w.gen.NewSet()
	w.logSet(set)

	data := map[string]interface{}{}
	if raw, err := w.fs.ReadFile(w.table.StorageFile); err == nil {
		if err := json.Unmarshal(raw, &data); err != nil || data == nil {
			w.logger.Warn().Err(err).Str("path", w.table.StorageFile).Msg("Storage file is not a JSON object, starting over")
			data = map[string]interface{}{}
		}
	}

	data[KeyMachineID] = set.MachineID
	data[KeySqmID] = set.SqmID
	data[KeyDevDeviceID] = set.DevDeviceID
	for _, key := range staleStorageKeys {
		delete(data, key)
	}

	var report Report
	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to encode storage")
		report.Storage = filesystem.OutcomeFailed
	} else {
		report.Storage = filesystem.WriteFile(w.fs, w.logger, w.table.StorageFile, encoded)
	}
	report.MachineIDFile = filesystem.WriteFile(w.fs, w.logger, w.table.MachineIDFile, machineIDFile(set))

	w.logReport(report)
	return set, report
}

func (w *Writer) logSet(set Set) {
	w.logger.Info().
		Str("machineId", set.MachineID).
		Str("sqmId", set.SqmID).
		Str("devDeviceId", set.DevDeviceID).
		Str("machineIdFile", set.MachineIDFile).
		Msg("Generated identifiers")
}

func (w *Writer) logReport(r Report) {
	event := w.logger.Info()
	if !r.OK() {
		event = w.logger.Warn()
	}
	event.
		Str("settings", string(r.Settings)).
		Str("storage", string(r.Storage)).
		Str("machineIdFile", string(r.MachineIDFile)).
		Msg("Identifier files written")
}
