package config

import (
	"github.com/arthur-debert/surfreset/pkg/errors"
)

// Validate rejects configurations the reset steps cannot run with
func Validate(cfg *Config) error {
	required := map[string]string{
		"target.dir_name":         cfg.Target.DirName,
		"target.image":            cfg.Target.Image,
		"target.window_title":     cfg.Target.WindowTitle,
		"onboarding.confirm_key":  cfg.Onboarding.ConfirmKey,
		"onboarding.navigate_key": cfg.Onboarding.NavigateKey,
	}
	for key, value := range required {
		if value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key).WithDetail("key", key)
		}
	}

	if cfg.Onboarding.PollInterval <= 0 {
		return errors.New(errors.ErrConfigValid, "onboarding.poll_interval must be positive")
	}
	if cfg.Onboarding.ConfirmPresses < 0 || cfg.Onboarding.NavigatePresses < 0 {
		return errors.New(errors.ErrConfigValid, "onboarding press counts must not be negative")
	}

	return nil
}
