// Package output renders clink's terminal output: progress lines while
// linking, status and feature tables, machine-readable feature listings and
// the final error line.
package output
