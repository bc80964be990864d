package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// OperationsOps handles rename, copy and move.
type OperationsOps struct {
	*FilesystemOps
}

// Commands returns the two-argument file manipulation commands.
func (o *OperationsOps) Commands() []command.Command {
	return []command.Command{
		command.Spec[command.Pair]{Use: "rn", Parse: command.ParseTwoArgs, Run: o.Rename},
		command.Spec[command.Pair]{Use: "cp", Parse: command.ParseTwoArgs, Run: o.Copy},
		command.Spec[command.Pair]{Use: "mv", Parse: command.ParseTwoArgs, Run: o.Move},
	}
}

// Rename gives the entry at args.First the name args.Second inside the same
// parent directory. An existing entry with the new name fails the command
// and leaves both entries untouched.
func (o *OperationsOps) Rename(_ context.Context, args command.Pair) error {
	if err := validateName(args.Second); err != nil {
		return err
	}

	src := o.resolve(args.First)
	if _, err := os.Lstat(src); err != nil {
		return err
	}

	return renameNoReplace(src, filepath.Join(filepath.Dir(src), args.Second))
}

// Copy streams args.First into a new file of the same name inside the
// directory args.Second.
func (o *OperationsOps) Copy(ctx context.Context, args command.Pair) error {
	src, dst, err := o.destination(args.First, args.Second, filepath.Base)
	if err != nil {
		return err
	}
	return o.transfer(ctx, "cp", src, dst, Transform{})
}

// Move copies like Copy, then removes the source. When the removal fails
// both files remain and a *PartialFailureError is returned.
func (o *OperationsOps) Move(ctx context.Context, args command.Pair) error {
	src, dst, err := o.destination(args.First, args.Second, filepath.Base)
	if err != nil {
		return err
	}
	if err := o.transfer(ctx, "mv", src, dst, Transform{}); err != nil {
		return err
	}
	if err := o.removePath(src); err != nil {
		return &PartialFailureError{Op: "mv", Source: src, Committed: dst, Err: err}
	}
	return nil
}

// destination resolves a source file and the path of its counterpart in
// destDir, named by applying name to the source path.
func (ops *FilesystemOps) destination(source, destDir string, name func(string) string) (string, string, error) {
	src := ops.resolve(source)
	dir := ops.resolve(destDir)

	info, err := os.Stat(dir)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %w", ErrNotADirectory, dir, err)
	}
	if !info.IsDir() {
		return "", "", fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return src, filepath.Join(dir, name(src)), nil
}

func validateName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// renameChecked refuses an existing dst, then renames. Another process can
// still create dst between the two calls.
func renameChecked(src, dst string) error {
	if err := ensureAbsent(dst); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

func ensureAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return &os.PathError{Op: "create", Path: path, Err: os.ErrExist}
	case os.IsNotExist(err):
		return nil
	default:
		return err
	}
}
