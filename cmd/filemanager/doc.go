// Command filemanager is an interactive file manager shell.
//
// Usage:
//
//	filemanager [--username=<name>] [--config=<file>]
//
// The session starts in the home directory (or FM_START_DIR) and reads one
// command per line from standard input until .exit, end of input or an
// interrupt. Diagnostics are logged to stderr; set FM_METRICS_ADDR to serve
// Prometheus metrics while the session runs.
package main
