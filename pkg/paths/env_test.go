package paths

import (
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestEnvFromOS(t *testing.T) {
	env := EnvFromOS()

	assert.Equal(t, runtime.GOOS, env.GOOS)
	assert.NotEmpty(t, env.AppData)
	assert.NotEmpty(t, env.LocalAppData)

	if runtime.GOOS != "windows" {
		assert.Equal(t, xdg.ConfigHome, env.AppData)
		assert.Equal(t, xdg.CacheHome, env.LocalAppData)
		assert.Empty(t, env.ProgramFiles)
	}
}
