package identity

import "encoding/json"

// Storage file keys
const (
	KeyMachineID   = "telemetry.machineId"
	KeySqmID       = "telemetry.sqmId"
	KeyDevDeviceID = "telemetry.devDeviceId"
)

// staleStorageKeys are dropped when identifiers are rotated in place
var staleStorageKeys = []string{
	"backupWorkspaces",
	"profileAssociations",
	"windowControlHeight",
	"lastKnownMenubarData",
}

// presetSettings is the fixed settings.json written on every reset
type presetSettings struct {
	StartupEditor      string `json:"workbench.startupEditor"`
	OpenOnInstall      bool   `json:"workbench.welcomePage.walkthroughs.openOnInstall"`
	TelemetryLevel     string `json:"telemetry.telemetryLevel"`
	CommandCenter      bool   `json:"window.commandCenter"`
	ConfirmDragAndDrop bool   `json:"explorer.confirmDragAndDrop"`
	ConfirmDelete      bool   `json:"explorer.confirmDelete"`
}

// storageFile is the full content of a freshly written storage.json
type storageFile struct {
	MachineID       string `json:"telemetry.machineId"`
	SqmID           string `json:"telemetry.sqmId"`
	DevDeviceID     string `json:"telemetry.devDeviceId"`
	Theme           string `json:"theme"`
	ThemeBackground string `json:"themeBackground"`
}

func settingsJSON() ([]byte, error) {
	return json.MarshalIndent(presetSettings{
		StartupEditor:      "none",
		OpenOnInstall:      false,
		TelemetryLevel:     "off",
		CommandCenter:      true,
		ConfirmDragAndDrop: false,
		ConfirmDelete:      false,
	}, "", "  ")
}

func storageJSON(set Set) ([]byte, error) {
	return json.MarshalIndent(storageFile{
		MachineID:       set.MachineID,
		SqmID:           set.SqmID,
		DevDeviceID:     set.DevDeviceID,
		Theme:           "vs-dark",
		ThemeBackground: "#1f1f1f",
	}, "", "    ")
}

func machineIDFile(set Set) []byte {
	return []byte(set.MachineIDFile + "\n")
}
