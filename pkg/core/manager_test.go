package core

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/identity"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/arthur-debert/surfreset/pkg/testutil"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staleStorage = `{
    "telemetry.machineId": "0000000000000000000000000000000000000000000000000000000000000000",
    "telemetry.sqmId": "{00000000-0000-4000-8000-000000000000}",
    "telemetry.devDeviceId": "00000000-0000-4000-8000-000000000000",
    "backupWorkspaces": {"folders": []}
}`

type env struct {
	fs       filesystem.FS
	runner   *testutil.FakeRunner
	sleeps   *testutil.Sleeps
	windows  *testutil.FakeWindows
	keyboard *testutil.FakeKeyboard
	table    paths.Table
	manager  *Manager
}

func newEnv(t *testing.T, running bool) *env {
	t.Helper()
	cfg := config.Default()
	e := &env{
		fs:       filesystem.NewMemFS(),
		runner:   testutil.NewFakeRunner(cfg.Target.Image, running),
		sleeps:   &testutil.Sleeps{},
		windows:  &testutil.FakeWindows{},
		keyboard: &testutil.FakeKeyboard{},
	}
	e.manager = NewManager(*cfg, paths.Env{
		GOOS:         "windows",
		AppData:      "/Users/me/AppData/Roaming",
		LocalAppData: "/Users/me/AppData/Local",
		ProgramFiles: "/Program Files",
	}, Deps{
		FS:        e.fs,
		Runner:    e.runner,
		Windows:   e.windows,
		Keyboard:  e.keyboard,
		Sleep:     e.sleeps.Sleep,
		Generator: identity.NewGenerator(99),
	})
	e.table = e.manager.Table()
	return e
}

func (e *env) populate(t *testing.T) {
	t.Helper()
	testutil.CreateFile(t, e.fs, filepath.Join(e.table.AppSupport, "Cache", "data_0"), "cache")
	testutil.CreateFile(t, e.fs, filepath.Join(e.table.AppSupport, "Cookies"), "cookies")
	testutil.CreateFile(t, e.fs, filepath.Join(e.table.Cache, "f_000001"), "cache")
	testutil.CreateFile(t, e.fs, e.table.StorageFile, staleStorage)
	testutil.CreateFile(t, e.fs, filepath.Join(e.table.GlobalStorage, "state.vscdb"), "db")
	testutil.CreateFile(t, e.fs, filepath.Join(e.table.WorkspaceStorage, "1234", "workspace.json"), "{}")
	testutil.CreateFile(t, e.fs, e.table.SettingsFile, `{"editor.fontSize": 18}`)
	testutil.CreateFile(t, e.fs, e.table.MachineIDFile, "00000000-0000-4000-8000-000000000000\n")
}

func (e *env) install(t *testing.T) string {
	t.Helper()
	return testutil.CreateFile(t, e.fs, "/Program Files/Windsurf/Windsurf.exe", "bin")
}

func readStorage(t *testing.T, e *env) map[string]interface{} {
	t.Helper()
	var storage map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(testutil.ReadFile(t, e.fs, e.table.StorageFile)), &storage))
	return storage
}

func stepNames(r types.Result) []string {
	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Name
	}
	return names
}

func TestFullResetEndToEnd(t *testing.T) {
	e := newEnv(t, true)
	e.populate(t)

	result := e.manager.FullReset(context.Background())

	require.True(t, result.Success, result.ErrorMessage)
	assert.Equal(t, []string{StepClose, StepPurgeCaches, StepPurgeUserData, StepIdentifiers}, stepNames(result))
	assert.False(t, e.runner.Process.Running)

	testutil.AssertNoFile(t, e.fs, filepath.Join(e.table.AppSupport, "Cache"))
	testutil.AssertNoFile(t, e.fs, filepath.Join(e.table.AppSupport, "Cookies"))
	testutil.AssertNoFile(t, e.fs, e.table.Cache)
	testutil.AssertNoFile(t, e.fs, filepath.Join(e.table.GlobalStorage, "state.vscdb"))
	testutil.AssertNoFile(t, e.fs, filepath.Join(e.table.WorkspaceStorage, "1234"))
	assert.True(t, testutil.DirExists(t, e.fs, e.table.WorkspaceStorage))
	assert.True(t, testutil.DirExists(t, e.fs, e.table.History))

	storage := readStorage(t, e)
	require.NotNil(t, result.Identifiers)
	assert.Len(t, storage, 5)
	assert.Equal(t, result.Identifiers.MachineID, storage["telemetry.machineId"])
	assert.Equal(t, result.Identifiers.SqmID, storage["telemetry.sqmId"])
	assert.Equal(t, result.Identifiers.DevDeviceID, storage["telemetry.devDeviceId"])
	assert.NotContains(t, staleStorage, result.Identifiers.MachineID)
	assert.NotContains(t, staleStorage, result.Identifiers.DevDeviceID)

	testutil.AssertFileContent(t, e.fs, e.table.MachineIDFile, result.Identifiers.MachineIDFile+"\n")
	assert.NotContains(t, testutil.ReadFile(t, e.fs, e.table.SettingsFile), "editor.fontSize")
}

func TestFullResetKeepsStorageFileThroughPurge(t *testing.T) {
	e := newEnv(t, false)
	e.populate(t)

	e.manager.purger.PurgeUserData()
	testutil.AssertFileContent(t, e.fs, e.table.StorageFile, staleStorage)

	e.manager.FullReset(context.Background())
	assert.NotEqual(t, staleStorage, testutil.ReadFile(t, e.fs, e.table.StorageFile))
}

func TestFullResetSettlesOnlyAfterClosingRunningApp(t *testing.T) {
	running := newEnv(t, true)
	running.manager.FullReset(context.Background())
	assert.Contains(t, running.sleeps.Durations, 3*time.Second)

	stopped := newEnv(t, false)
	result := stopped.manager.FullReset(context.Background())
	assert.Empty(t, stopped.sleeps.Durations)
	assert.Equal(t, types.StepSkipped, result.Steps[0].Status)
}

func TestFullResetOnEmptyState(t *testing.T) {
	e := newEnv(t, false)

	result := e.manager.FullReset(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, types.StepSkipped, result.Steps[2].Status)
	assert.Len(t, readStorage(t, e), 5)
}

func TestFullResetCancelled(t *testing.T) {
	e := newEnv(t, true)
	e.populate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := e.manager.FullReset(ctx)

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.True(t, testutil.DirExists(t, e.fs, filepath.Join(e.table.AppSupport, "Cache")))
}

func TestAutoLogin(t *testing.T) {
	e := newEnv(t, true)
	e.populate(t)
	exe := e.install(t)

	result := e.manager.AutoLogin(context.Background(), "me@example.com")

	require.True(t, result.Success, result.ErrorMessage)
	assert.True(t, result.NeedsBrowserLogin)
	assert.Equal(t, types.OutcomeHandedOff, result.Outcome)
	assert.Equal(t, exe, result.Executable)
	assert.Contains(t, result.Message, "me@example.com")
	assert.Equal(t, []string{
		StepClose, StepPurgeCaches, StepPurgeUserData, StepIdentifiers,
		StepWaitAfterReset, StepLaunch, StepWaitAfterLaunch, StepOnboarding,
	}, stepNames(result))

	require.Len(t, e.runner.Started, 1)
	assert.Equal(t, "cmd", e.runner.Started[0].Name)
	assert.Equal(t, []string{"enter", "enter", "enter", "tab", "tab", "tab", "enter"}, e.keyboard.Keys)
	assert.Contains(t, e.sleeps.Durations, 2*time.Second)
	assert.Contains(t, e.sleeps.Durations, 5*time.Second)
}

func TestAutoLoginNotInstalled(t *testing.T) {
	e := newEnv(t, false)

	result := e.manager.AutoLogin(context.Background(), "me@example.com")

	assert.False(t, result.Success)
	assert.False(t, result.NeedsBrowserLogin)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrExecutableNotFound))
	assert.Contains(t, result.Message, "not installed")
	assert.Empty(t, e.keyboard.Keys)
}

func TestAutoLoginContinuesAfterOnboardingFailure(t *testing.T) {
	e := newEnv(t, false)
	e.install(t)
	e.windows.ActivateErr = assert.AnError

	result := e.manager.AutoLogin(context.Background(), "me@example.com")

	assert.True(t, result.Success)
	assert.True(t, result.NeedsBrowserLogin)
	last := result.Steps[len(result.Steps)-1]
	assert.Equal(t, StepOnboarding, last.Name)
	assert.Equal(t, types.StepWarning, last.Status)
}

func TestAutoLoginNoWindow(t *testing.T) {
	e := newEnv(t, false)
	e.install(t)
	e.windows.AppearAfter = -1

	result := e.manager.AutoLogin(context.Background(), "me@example.com")

	assert.True(t, result.Success)
	last := result.Steps[len(result.Steps)-1]
	assert.Equal(t, types.StepWarning, last.Status)
	assert.Equal(t, "no window detected", last.Message)
}

func TestAutoLoginRequiresEmail(t *testing.T) {
	e := newEnv(t, true)

	result := e.manager.AutoLogin(context.Background(), "  ")

	assert.False(t, result.Success)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrInvalidInput))
	assert.True(t, e.runner.Process.Running, "nothing should run without an email")
}

func TestClose(t *testing.T) {
	e := newEnv(t, true)
	result := e.manager.Close(context.Background())
	assert.True(t, result.Success)
	assert.Equal(t, "Windsurf closed", result.Message)

	result = e.manager.Close(context.Background())
	assert.Equal(t, "Windsurf is not running", result.Message)
}

func TestLaunch(t *testing.T) {
	e := newEnv(t, false)
	exe := e.install(t)

	result := e.manager.Launch(context.Background())
	require.True(t, result.Success)
	assert.Equal(t, exe, result.Executable)

	missing := newEnv(t, false)
	result = missing.manager.Launch(context.Background())
	assert.False(t, result.Success)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrExecutableNotFound))
}

func TestOnboardWithoutAutomation(t *testing.T) {
	cfg := config.Default()
	m := NewManager(*cfg, paths.Env{GOOS: "linux", AppData: "/c", LocalAppData: "/l"}, Deps{
		FS:     filesystem.NewMemFS(),
		Runner: testutil.NewFakeRunner(cfg.Target.Image, false),
	})

	result := m.Onboard(context.Background())

	assert.False(t, result.Success)
	assert.True(t, errors.IsErrorCode(result.Error, errors.ErrWindow))
}

func TestRotateIdentifiers(t *testing.T) {
	e := newEnv(t, false)
	e.populate(t)

	result := e.manager.RotateIdentifiers(context.Background())

	require.True(t, result.Success)
	storage := readStorage(t, e)
	assert.Len(t, storage, 3)
	assert.Equal(t, result.Identifiers.MachineID, storage["telemetry.machineId"])
	assert.True(t, testutil.DirExists(t, e.fs, filepath.Join(e.table.AppSupport, "Cache")), "rotation purges nothing")
}

func TestDetectPaths(t *testing.T) {
	e := newEnv(t, false)
	testutil.CreateFile(t, e.fs, e.table.StorageFile, "{}")

	result := e.manager.DetectPaths()

	require.True(t, result.Success)
	require.Len(t, result.Paths, len(e.table.Entries()))
	exists := map[string]bool{}
	for _, s := range result.Paths {
		exists[s.Name] = s.Exists
	}
	assert.True(t, exists[paths.NameStorageFile])
	assert.True(t, exists[paths.NameGlobalStorage])
	assert.False(t, exists[paths.NameCache])
}
