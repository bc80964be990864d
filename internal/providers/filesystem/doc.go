// Package filesystem implements the shell's file commands.
//
// This package is organized into operation groups sharing one FilesystemOps:
//   - directory: navigation and listing (up, cd, ls)
//   - basic: single-file operations (cat, add, rm, hash)
//   - operations: file manipulation (rn, cp, mv)
//   - archives: streaming compression (compress, decompress)
//
// All operations:
//   - Resolve relative paths against the session's current directory
//   - Stream file contents instead of loading them into memory
//   - Create destinations exclusively and never overwrite
//   - Stop between chunks once the context is canceled
//
// Example Usage:
//
//	fs := filesystem.NewProvider(filesystem.Config{State: state, Out: os.Stdout})
//	err := fs.Basic.Cat(ctx, "notes.txt")
package filesystem
