// Package process finds and stops the target application by image name.
//
// All OS interaction goes through a Runner. On Windows the controller
// shells out to tasklist and taskkill; elsewhere it uses pgrep and pkill.
package process
