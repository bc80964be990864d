package filesystem

import (
	"io"

	"github.com/GriffinCanCode/filemanager/internal/command"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

// Provider groups every filesystem operation behind one set of commands.
type Provider struct {
	Basic      *BasicOps
	Directory  *DirectoryOps
	Operations *OperationsOps
	Archives   *ArchivesOps
}

// Config holds the dependencies of a Provider. Nil Hasher and Codec fall
// back to SHA-256 and gzip; a nil Metrics records nothing.
type Config struct {
	State   *session.State
	Out     io.Writer
	Hasher  *utils.Hasher
	Codec   Codec
	Metrics *monitoring.Metrics
	Options Options
}

// NewProvider wires the operation groups around a shared FilesystemOps.
func NewProvider(cfg Config) *Provider {
	if cfg.Hasher == nil {
		cfg.Hasher = utils.DefaultHasher()
	}
	if cfg.Codec == nil {
		cfg.Codec = Gzip
	}

	ops := &FilesystemOps{
		State:   cfg.State,
		Out:     cfg.Out,
		Hasher:  cfg.Hasher,
		Metrics: cfg.Metrics,
		Options: cfg.Options,
	}

	return &Provider{
		Basic:      &BasicOps{FilesystemOps: ops},
		Directory:  &DirectoryOps{FilesystemOps: ops},
		Operations: &OperationsOps{FilesystemOps: ops},
		Archives:   &ArchivesOps{FilesystemOps: ops, Codec: cfg.Codec},
	}
}

// Commands returns all filesystem commands in registration order.
func (p *Provider) Commands() []command.Command {
	var cmds []command.Command
	cmds = append(cmds, p.Directory.Commands()...)
	cmds = append(cmds, p.Basic.Commands()...)
	cmds = append(cmds, p.Operations.Commands()...)
	cmds = append(cmds, p.Archives.Commands()...)
	return cmds
}
