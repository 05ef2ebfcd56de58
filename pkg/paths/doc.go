// Package paths builds the table of filesystem locations the reset steps
// operate on.
//
// The table is derived once from an Env, a plain struct holding the named
// environment inputs (APPDATA, LOCALAPPDATA, USERPROFILE, PROGRAMFILES and
// PROGRAMFILES(X86) on Windows; the XDG roots from github.com/adrg/xdg
// elsewhere). EnvFromOS is the only function in the program that reads
// those variables; tests build an Env by hand.
//
// # Layout
//
//	<AppData>/<dir>                        app support root
//	<AppData>/<dir>/User                   user data
//	<AppData>/<dir>/User/settings.json     settings file
//	<AppData>/<dir>/User/globalStorage     global storage (storage.json lives here)
//	<AppData>/<dir>/User/workspaceStorage  workspace storage
//	<AppData>/<dir>/User/History           history
//	<AppData>/<dir>/logs                   logs
//	<AppData>/<dir>/machineid              raw machine id
//	<LocalAppData>/<dir>/Cache             cache
package paths
