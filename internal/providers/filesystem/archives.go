package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// ArchivesOps handles compress and decompress with a single codec.
type ArchivesOps struct {
	*FilesystemOps
	Codec Codec
}

// Commands returns the archive commands.
func (a *ArchivesOps) Commands() []command.Command {
	return []command.Command{
		command.Spec[command.Pair]{Use: "compress", Parse: command.ParseTwoArgs, Run: a.Compress},
		command.Spec[command.Pair]{Use: "decompress", Parse: command.ParseTwoArgs, Run: a.Decompress},
	}
}

// Compress streams args.First through the codec into args.Second, naming
// the result after the source with the codec suffix appended.
func (a *ArchivesOps) Compress(ctx context.Context, args command.Pair) error {
	src, dst, err := a.destination(args.First, args.Second, func(p string) string {
		return filepath.Base(p) + a.Codec.Suffix()
	})
	if err != nil {
		return err
	}
	return a.transfer(ctx, "compress", src, dst, Transform{Writer: a.Codec.NewWriter})
}

// Decompress reverses Compress. The source must carry the codec suffix,
// which is stripped from the destination name.
func (a *ArchivesOps) Decompress(ctx context.Context, args command.Pair) error {
	suffix := a.Codec.Suffix()
	base := filepath.Base(args.First)
	if !strings.HasSuffix(base, suffix) || base == suffix {
		return fmt.Errorf("%w: %s (want %s)", ErrNotArchive, base, suffix)
	}

	src, dst, err := a.destination(args.First, args.Second, func(p string) string {
		return strings.TrimSuffix(filepath.Base(p), suffix)
	})
	if err != nil {
		return err
	}
	return a.transfer(ctx, "decompress", src, dst, Transform{Reader: a.Codec.NewReader})
}
