package config

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/arthur-debert/surfreset/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported render formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ToMap flattens cfg into the same nested key layout the TOML file uses.
// Durations are rendered as strings so the output can be fed back in.
func (c *Config) ToMap() map[string]interface{} {
	d := func(v time.Duration) string { return v.String() }
	return map[string]interface{}{
		"target": map[string]interface{}{
			"name":         c.Target.Name,
			"dir_name":     c.Target.DirName,
			"image":        c.Target.Image,
			"window_title": c.Target.WindowTitle,
			"executables":  nonNil(c.Target.Executables),
		},
		"purge": map[string]interface{}{
			"subdirs":                nonNil(c.Purge.Subdirs),
			"keep_in_global_storage": c.Purge.KeepInGlobalStorage,
		},
		"process": map[string]interface{}{
			"grace_wait":  d(c.Process.GraceWait),
			"force_wait":  d(c.Process.ForceWait),
			"after_close": d(c.Process.AfterClose),
		},
		"launch": map[string]interface{}{
			"after_reset":  d(c.Launch.AfterReset),
			"after_launch": d(c.Launch.AfterLaunch),
		},
		"onboarding": map[string]interface{}{
			"window_timeout":     d(c.Onboarding.WindowTimeout),
			"poll_interval":      d(c.Onboarding.PollInterval),
			"settle":             d(c.Onboarding.Settle),
			"activate_delay":     d(c.Onboarding.ActivateDelay),
			"pre_press_delay":    d(c.Onboarding.PrePressDelay),
			"confirm_delay":      d(c.Onboarding.ConfirmDelay),
			"step_delay":         d(c.Onboarding.StepDelay),
			"pre_navigate_delay": d(c.Onboarding.PreNavigateDelay),
			"navigate_delay":     d(c.Onboarding.NavigateDelay),
			"final_delay":        d(c.Onboarding.FinalDelay),
			"confirm_presses":    c.Onboarding.ConfirmPresses,
			"navigate_presses":   c.Onboarding.NavigatePresses,
			"confirm_key":        c.Onboarding.ConfirmKey,
			"navigate_key":       c.Onboarding.NavigateKey,
		},
	}
}

// Render serialises the effective configuration
func Render(cfg *Config, format string) ([]byte, error) {
	m := cfg.ToMap()
	switch strings.ToLower(format) {
	case "", FormatTOML:
		return toml.Marshal(m)
	case FormatYAML:
		return yaml.Marshal(m)
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format).
			WithDetail("supported", []string{FormatTOML, FormatYAML, FormatJSON})
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
