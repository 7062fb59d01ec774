// Package config loads clink's configuration.
//
// Values are layered with koanf: embedded defaults, then the config file,
// then CLINK_* environment variables. The config file is either given
// explicitly or discovered in the working directory.
package config
