// Package testutil provides helpers and fakes shared by the package tests.
//
// Key components:
//   - Filesystem helpers that work on any filesystem.FS, usually an
//     in-memory one from filesystem.NewMemFS
//   - FakeRunner: a process runner backed by a simulated process table
//   - FakeWindows and FakeKeyboard: recorders for the onboarding driver
//   - Sleeps: a sleeper that records delays instead of waiting
//
// Tests should build their data inline and never touch the real home
// directory or start real processes.
package testutil
