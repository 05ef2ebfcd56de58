package onboarding

import (
	"strings"

	"github.com/arthur-debert/surfreset/pkg/errors"
)

// Supported key names
const (
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeySpace     = "space"
	KeyEscape    = "escape"
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
)

var supportedKeys = map[string]bool{
	KeyEnter: true, KeyTab: true, KeySpace: true, KeyEscape: true, KeyBackspace: true,
	KeyDelete: true, KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true,
}

var keyAliases = map[string]string{
	"return":     KeyEnter,
	"esc":        KeyEscape,
	"spacebar":   KeySpace,
	"del":        KeyDelete,
	"bksp":       KeyBackspace,
	"arrowup":    KeyUp,
	"arrowdown":  KeyDown,
	"arrowleft":  KeyLeft,
	"arrowright": KeyRight,
}

// NormalizeKey maps a key name to its canonical form
func NormalizeKey(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	if !supportedKeys[key] {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported key %q", name)
	}
	return key, nil
}
