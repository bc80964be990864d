package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// DirectoryOps handles navigation and listing.
type DirectoryOps struct {
	*FilesystemOps
}

// Commands returns the directory commands.
func (d *DirectoryOps) Commands() []command.Command {
	return []command.Command{
		command.Spec[struct{}]{Use: "up", Parse: command.NoArgs, Run: d.Up},
		command.Spec[string]{Use: "cd", Parse: command.SingleArg, Run: d.Cd},
		command.Spec[struct{}]{Use: "ls", Parse: command.NoArgs, Run: d.Ls},
	}
}

// Up moves the session to the parent directory.
func (d *DirectoryOps) Up(context.Context, struct{}) error {
	return d.State.Up()
}

// Cd changes the session directory.
func (d *DirectoryOps) Cd(_ context.Context, path string) error {
	return d.State.Cd(path)
}

// Ls prints the current directory as a Name/Type table.
func (d *DirectoryOps) Ls(ctx context.Context, _ struct{}) error {
	entries, err := d.List(ctx, d.State.Dir())
	if err != nil {
		return err
	}

	table, err := renderEntries(entries, d.Options.Color)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(d.Out, table)
	return err
}

// List reads dir and stats every entry concurrently. Entries whose stat
// fails are dropped. The result holds directories first, then files, each
// group sorted case-insensitively by name.
func (d *DirectoryOps) List(ctx context.Context, dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*Entry, len(dirEntries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.listConcurrency())

	for i, de := range dirEntries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			info, err := os.Stat(filepath.Join(dir, de.Name()))
			if err != nil {
				return nil
			}
			kind := KindFile
			if info.IsDir() {
				kind = KindDirectory
			}
			results[i] = &Entry{Name: de.Name(), Kind: kind}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var dirs, files []Entry
	for _, e := range results {
		switch {
		case e == nil:
		case e.Kind == KindDirectory:
			dirs = append(dirs, *e)
		default:
			files = append(files, *e)
		}
	}
	sortEntries(dirs)
	sortEntries(files)

	return append(dirs, files...), nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a != b {
			return a < b
		}
		return entries[i].Name < entries[j].Name
	})
}

func renderEntries(entries []Entry, color bool) (string, error) {
	data := pterm.TableData{{"Name", "Type"}}
	for _, e := range entries {
		data = append(data, []string{e.Name, string(e.Kind)})
	}
	return entryTable(color).WithData(data).Srender()
}

// entryTable is the listing layout. Without color every style is empty, so
// the rendered table carries no escape sequences.
func entryTable(color bool) *pterm.TablePrinter {
	table := pterm.DefaultTable.WithHasHeader()
	if !color {
		plain := pterm.NewStyle()
		table = table.
			WithStyle(plain).
			WithHeaderStyle(plain).
			WithSeparatorStyle(plain).
			WithHeaderRowSeparatorStyle(plain).
			WithRowSeparatorStyle(plain)
	}
	return table
}
