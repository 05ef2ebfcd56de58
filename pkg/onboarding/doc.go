// Package onboarding clicks through the application's first-run screens
// with synthetic key presses.
//
// The driver only knows two narrow interfaces: Windows, to find and focus
// the application window by title, and Keyboard, to tap one key. The real
// implementations live in pkg/desktop; tests use recorders. All delays
// come from Timings, so tests can run the whole script without waiting.
//
// The script is:
//
//  1. poll for the window every PollInterval, up to WindowTimeout
//  2. wait Settle
//  3. activate the window
//  4. ConfirmPresses times: activate, confirm
//  5. activate, NavigatePresses times navigate, confirm
//
// A missing window is not a failure. It yields a successful result with the
// no_window outcome, since the application may have skipped onboarding.
package onboarding
