// Package config handles configuration management for surfreset.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. the user file, $XDG_CONFIG_HOME/surfreset/config.toml or --config
//  3. environment variables prefixed SURFRESET_, where a double underscore
//     separates the section from the key (SURFRESET_ONBOARDING__SETTLE=5s)
//
// The result is decoded into Config once at startup and passed by
// reference to every component. Nothing below the CLI reads the
// environment.
package config
