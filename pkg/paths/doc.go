// Package paths turns feature target templates into concrete directories.
//
// Targets in the configuration are written the way a user would type them in
// a shell ("~/.config", "$XDG_CONFIG_HOME/nvim"). ExpandTarget resolves the
// home marker and environment references and anchors relative results at the
// working directory, so that link groups always operate on absolute paths.
package paths
