package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/surfreset/pkg/config"
)

// File and directory names inside the application's state tree
const (
	UserDir             = "User"
	LogsDir             = "logs"
	CacheDir            = "Cache"
	GlobalStorageDir    = "globalStorage"
	WorkspaceStorageDir = "workspaceStorage"
	HistoryDir          = "History"
	StorageFileName     = "storage.json"
	SettingsFileName    = "settings.json"
	MachineIDFileName   = "machineid"
)

// Logical names of the table entries
const (
	NameAppSupport       = "app_support"
	NameCache            = "cache"
	NameUserData         = "user_data"
	NameLogs             = "logs"
	NameStorageFile      = "storage_file"
	NameMachineIDFile    = "machine_id_file"
	NameSettingsFile     = "settings_file"
	NameGlobalStorage    = "global_storage"
	NameWorkspaceStorage = "workspace_storage"
	NameHistory          = "history"
)

// Table maps the application's logical locations to paths. It is
// read-only once built.
type Table struct {
	AppSupport       string
	Cache            string
	UserData         string
	Logs             string
	StorageFile      string
	MachineIDFile    string
	SettingsFile     string
	GlobalStorage    string
	WorkspaceStorage string
	History          string

	// Executables are candidate install locations, in lookup order
	Executables []string
}

// Entry is one named row of the table
type Entry struct {
	Name string
	Path string
}

// New derives the table for target from env
func New(env Env, target config.Target) Table {
	appSupport := filepath.Join(env.AppData, target.DirName)
	userData := filepath.Join(appSupport, UserDir)
	globalStorage := filepath.Join(userData, GlobalStorageDir)

	return Table{
		AppSupport:       appSupport,
		Cache:            filepath.Join(env.LocalAppData, target.DirName, CacheDir),
		UserData:         userData,
		Logs:             filepath.Join(appSupport, LogsDir),
		StorageFile:      filepath.Join(globalStorage, StorageFileName),
		MachineIDFile:    filepath.Join(appSupport, MachineIDFileName),
		SettingsFile:     filepath.Join(userData, SettingsFileName),
		GlobalStorage:    globalStorage,
		WorkspaceStorage: filepath.Join(userData, WorkspaceStorageDir),
		History:          filepath.Join(userData, HistoryDir),
		Executables:      executableCandidates(env, target),
	}
}

// Entries lists the table rows in a stable order
func (t Table) Entries() []Entry {
	return []Entry{
		{NameAppSupport, t.AppSupport},
		{NameCache, t.Cache},
		{NameUserData, t.UserData},
		{NameLogs, t.Logs},
		{NameStorageFile, t.StorageFile},
		{NameMachineIDFile, t.MachineIDFile},
		{NameSettingsFile, t.SettingsFile},
		{NameGlobalStorage, t.GlobalStorage},
		{NameWorkspaceStorage, t.WorkspaceStorage},
		{NameHistory, t.History},
	}
}

// executableCandidates lists configured paths first, then the usual
// install locations for the platform
func executableCandidates(env Env, target config.Target) []string {
	candidates := append([]string{}, target.Executables...)

	switch env.GOOS {
	case "windows":
		roots := []string{
			joinIfSet(env.LocalAppData, "Programs"),
			env.ProgramFiles,
			env.ProgramFilesX86,
		}
		for _, root := range roots {
			if root != "" {
				candidates = append(candidates, filepath.Join(root, target.DirName, target.Image))
			}
		}
	case "darwin":
		candidates = append(candidates,
			filepath.Join("/Applications", target.Name+".app"),
			filepath.Join(env.UserProfile, "Applications", target.Name+".app"),
		)
	default:
		bin := strings.ToLower(strings.TrimSuffix(target.Image, ".exe"))
		dir := strings.ToLower(target.DirName)
		candidates = append(candidates,
			filepath.Join("/usr/share", dir, bin),
			filepath.Join("/usr/bin", bin),
			filepath.Join("/opt", target.DirName, bin),
		)
	}

	return candidates
}

func joinIfSet(root string, elem ...string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(append([]string{root}, elem...)...)
}
