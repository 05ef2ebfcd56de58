package surfreset

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Reset a VS Code based editor to a fresh install"
	MsgResetShort      = "Close the editor and wipe its local state"
	MsgRotateShort     = "Write new identifiers into the existing storage file"
	MsgCloseShort      = "Stop the editor if it is running"
	MsgLaunchShort     = "Start the installed editor"
	MsgOnboardShort    = "Click through the onboarding screens of an open editor"
	MsgAutoLoginShort  = "Reset, relaunch, onboard and hand over to browser login"
	MsgPathsShort      = "Show where the editor keeps its state"
	MsgConfigShort     = "Inspect the configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigPathShort = "Print the user configuration file path"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Titles shown above results
	MsgTitleReset     = "reset"
	MsgTitleRotate    = "rotate identifiers"
	MsgTitleClose     = "close"
	MsgTitleLaunch    = "launch"
	MsgTitleOnboard   = "onboarding"
	MsgTitleAutoLogin = "auto-login"
	MsgTitlePaths     = "paths"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (default $XDG_CONFIG_HOME/surfreset/config.toml)"
	MsgFlagJSON     = "Print results as JSON"
	MsgFlagNoColor  = "Disable colours"
	MsgFlagSet      = "Override a setting, e.g. --set onboarding.settle=2s (repeatable)"
	MsgFlagEmail    = "Account to log in with after onboarding"
	MsgFlagFormat   = "Output format: toml, yaml or json"
	MsgFlagDefaults = "Show the built-in defaults instead of the effective configuration"

	// Version output
	MsgVersionFormat = "surfreset version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNoCommand  = "no command specified"
	MsgErrFailed     = "%s failed"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/reset-long.txt
	msgResetLongRaw string
	MsgResetLong    = strings.TrimSpace(msgResetLongRaw)

	//go:embed msgs/reset-example.txt
	msgResetExampleRaw string
	MsgResetExample    = strings.TrimRight(msgResetExampleRaw, "\n")

	//go:embed msgs/autologin-long.txt
	msgAutoLoginLongRaw string
	MsgAutoLoginLong    = strings.TrimSpace(msgAutoLoginLongRaw)

	//go:embed msgs/autologin-example.txt
	msgAutoLoginExampleRaw string
	MsgAutoLoginExample    = strings.TrimRight(msgAutoLoginExampleRaw, "\n")

	//go:embed msgs/rotate-long.txt
	msgRotateLongRaw string
	MsgRotateLong    = strings.TrimSpace(msgRotateLongRaw)

	//go:embed msgs/onboard-long.txt
	msgOnboardLongRaw string
	MsgOnboardLong    = strings.TrimSpace(msgOnboardLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
