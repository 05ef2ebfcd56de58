package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Environment variable names read on Windows
const (
	EnvAppData         = "APPDATA"
	EnvLocalAppData    = "LOCALAPPDATA"
	EnvUserProfile     = "USERPROFILE"
	EnvProgramFiles    = "PROGRAMFILES"
	EnvProgramFilesX86 = "PROGRAMFILES(X86)"
)

// Env holds the roots every path in the table hangs off
type Env struct {
	GOOS            string
	AppData         string
	LocalAppData    string
	UserProfile     string
	ProgramFiles    string
	ProgramFilesX86 string
}

// EnvFromOS captures the roots for the running system
func EnvFromOS() Env {
	home, _ := os.UserHomeDir()

	if runtime.GOOS != "windows" {
		return Env{
			GOOS:         runtime.GOOS,
			AppData:      xdg.ConfigHome,
			LocalAppData: xdg.CacheHome,
			UserProfile:  home,
		}
	}

	env := Env{
		GOOS:            runtime.GOOS,
		AppData:         os.Getenv(EnvAppData),
		LocalAppData:    os.Getenv(EnvLocalAppData),
		UserProfile:     os.Getenv(EnvUserProfile),
		ProgramFiles:    os.Getenv(EnvProgramFiles),
		ProgramFilesX86: os.Getenv(EnvProgramFilesX86),
	}
	if env.UserProfile == "" {
		env.UserProfile = home
	}
	if env.AppData == "" {
		env.AppData = filepath.Join(env.UserProfile, "AppData", "Roaming")
	}
	if env.LocalAppData == "" {
		env.LocalAppData = filepath.Join(env.UserProfile, "AppData", "Local")
	}
	return env
}
