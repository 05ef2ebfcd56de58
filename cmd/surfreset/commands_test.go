package surfreset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/onboarding"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/arthur-debert/surfreset/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	fs       filesystem.FS
	runner   *testutil.FakeRunner
	keyboard *testutil.FakeKeyboard
	table    paths.Table
	cfgFile  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[onboarding]\nconfirm_presses = 2\n"), 0644))

	env := paths.Env{GOOS: "linux", AppData: "/home/me/.config", LocalAppData: "/home/me/.cache", UserProfile: "/home/me"}
	return &harness{
		fs:       filesystem.NewMemFS(),
		runner:   testutil.NewFakeRunner("Windsurf.exe", false),
		keyboard: &testutil.FakeKeyboard{},
		table:    paths.New(env, config.Default().Target),
		cfgFile:  cfgFile,
	}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	env := paths.Env{GOOS: "linux", AppData: "/home/me/.config", LocalAppData: "/home/me/.cache", UserProfile: "/home/me"}
	sleeps := &testutil.Sleeps{}
	root := NewRootCmd(Options{
		FS:     h.fs,
		Runner: h.runner,
		Env:    &env,
		Sleep:  sleeps.Sleep,
		Automation: func(*config.Config) (onboarding.Windows, onboarding.Keyboard) {
			return &testutil.FakeWindows{}, h.keyboard
		},
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", h.cfgFile, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestResetCommand(t *testing.T) {
	h := newHarness(t)
	testutil.CreateFile(t, h.fs, filepath.Join(h.table.AppSupport, "Cache", "x"), "x")

	out, err := h.run(t, "reset")

	require.NoError(t, err, out)
	assert.Contains(t, out, "== reset ==")
	assert.Contains(t, out, "purge-caches")
	testutil.AssertNoFile(t, h.fs, filepath.Join(h.table.AppSupport, "Cache"))
	assert.True(t, testutil.FileExists(t, h.fs, h.table.StorageFile))
}

func TestResetCommandJSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "reset", "--json")
	require.NoError(t, err, out)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Contains(t, decoded, "identifiers")
}

func TestAutoLoginCommand(t *testing.T) {
	h := newHarness(t)
	testutil.CreateFile(t, h.fs, "/usr/share/windsurf/windsurf", "bin")

	out, err := h.run(t, "auto-login", "--email", "me@example.com")

	require.NoError(t, err, out)
	assert.Contains(t, out, "me@example.com")
	require.Len(t, h.runner.Started, 1)
	assert.Equal(t, "/usr/share/windsurf/windsurf", h.runner.Started[0].Name)
	// confirm_presses comes from the config file
	assert.Equal(t, []string{"enter", "enter", "tab", "tab", "tab", "enter"}, h.keyboard.Keys)
}

func TestAutoLoginRequiresEmailFlag(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "auto-login")

	assert.Error(t, err)
	assert.Empty(t, h.runner.Calls)
}

func TestLaunchNotInstalledFails(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "launch")

	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, out, "EXECUTABLE_NOT_FOUND")
}

func TestPathsCommand(t *testing.T) {
	h := newHarness(t)
	testutil.CreateDir(t, h.fs, h.table.UserData)

	out, err := h.run(t, "paths")

	require.NoError(t, err)
	assert.Contains(t, out, h.table.UserData)
	assert.Contains(t, out, "[found]")
	assert.Contains(t, out, "[missing]")
}

func TestConfigShow(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "confirm_presses = 2")

	out, err = h.run(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "onboarding")

	out, err = h.run(t, "config", "show", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "confirm_presses = 3")
}

func TestSetFlagOverridesConfigFile(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "--set", "onboarding.confirm_presses=5", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "confirm_presses = 5")

	_, err = h.run(t, "--set", "confirm_presses", "config", "show")
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestConfigPath(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, h.cfgFile+"\n", out)
}

func TestBadConfigFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.cfgFile, []byte("[onboarding\n"), 0644))

	_, err := h.run(t, "close")

	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "surfreset version dev")
}

func TestHelpTopics(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "help", "topics")

	require.NoError(t, err)
	for _, topic := range []string{"paths", "identifiers", "onboarding", "--config"} {
		assert.Contains(t, out, topic)
	}
}
