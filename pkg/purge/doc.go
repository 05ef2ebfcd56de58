// Package purge deletes the application's caches and per-user state.
//
// Every deletion is best effort: a missing path is skipped silently and a
// path that cannot be removed is logged and left behind, so one locked file
// never stops the rest of the purge.
package purge
