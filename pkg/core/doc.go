// Package core orchestrates the reset and onboarding steps.
//
// The Manager owns one instance of every component, all built from the
// same configuration and path table. Each public method is one user-facing
// operation and returns a types.Result; component failures are folded into
// that result rather than returned as errors.
//
// FullReset runs close, purge caches, purge user data and regenerate
// identifiers, in that order. Deletions and writes are best effort, so a
// reset only fails outright when it is cancelled. AutoLogin adds relaunch
// and onboarding on top and stops where a person has to log in.
package core
