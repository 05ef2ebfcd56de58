package config

import "time"

// Config is the fully merged configuration
type Config struct {
	Target     Target     `koanf:"target"`
	Purge      Purge      `koanf:"purge"`
	Process    Process    `koanf:"process"`
	Launch     Launch     `koanf:"launch"`
	Onboarding Onboarding `koanf:"onboarding"`
}

// Target identifies the application being reset
type Target struct {
	// Name is used in messages only
	Name string `koanf:"name"`
	// DirName is the application's directory under the config and cache roots
	DirName string `koanf:"dir_name"`
	// Image is the process image name used to find and stop it
	Image string `koanf:"image"`
	// WindowTitle is matched when waiting for the onboarding window
	WindowTitle string `koanf:"window_title"`
	// Executables are candidate install paths checked before the platform defaults
	Executables []string `koanf:"executables"`
}

// Purge holds the deletion list and the global storage exclusion
type Purge struct {
	Subdirs             []string `koanf:"subdirs"`
	KeepInGlobalStorage string   `koanf:"keep_in_global_storage"`
}

// Process holds the fixed waits of the two-stage termination
type Process struct {
	GraceWait  time.Duration `koanf:"grace_wait"`
	ForceWait  time.Duration `koanf:"force_wait"`
	AfterClose time.Duration `koanf:"after_close"`
}

// Launch holds the waits around relaunching the application
type Launch struct {
	AfterReset  time.Duration `koanf:"after_reset"`
	AfterLaunch time.Duration `koanf:"after_launch"`
}

// Onboarding holds the timing and key script of the onboarding driver
type Onboarding struct {
	WindowTimeout    time.Duration `koanf:"window_timeout"`
	PollInterval     time.Duration `koanf:"poll_interval"`
	Settle           time.Duration `koanf:"settle"`
	ActivateDelay    time.Duration `koanf:"activate_delay"`
	PrePressDelay    time.Duration `koanf:"pre_press_delay"`
	ConfirmDelay     time.Duration `koanf:"confirm_delay"`
	StepDelay        time.Duration `koanf:"step_delay"`
	PreNavigateDelay time.Duration `koanf:"pre_navigate_delay"`
	NavigateDelay    time.Duration `koanf:"navigate_delay"`
	FinalDelay       time.Duration `koanf:"final_delay"`
	ConfirmPresses   int           `koanf:"confirm_presses"`
	NavigatePresses  int           `koanf:"navigate_presses"`
	ConfirmKey       string        `koanf:"confirm_key"`
	NavigateKey      string        `koanf:"navigate_key"`
}
