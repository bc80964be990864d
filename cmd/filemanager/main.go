package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/filemanager/internal/command"
	"github.com/GriffinCanCode/filemanager/internal/config"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
	"github.com/GriffinCanCode/filemanager/internal/shell"
	"github.com/GriffinCanCode/filemanager/internal/version"
)

type options struct {
	username   string
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "filemanager",
		Short: "Interactive file manager shell",
		Long: `filemanager starts an interactive session rooted at the home directory.

Commands are read one per line from standard input:
  up, cd <path>, ls                       navigation
  cat, add, rm, rn, cp, mv                file operations
  hash <path>                             print the file digest
  compress, decompress <src> <dest_dir>   stream compression
  os --EOL|--cpus|--homedir|--username|--architecture
  .exit                                   end the session`,
		Version:      version.GetFullVersion(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		// Unrecognized process arguments are ignored rather than fatal.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "name used in the greeting and goodbye")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML or TOML config file (overrides FM_CONFIG)")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	if cfg.Logging.Output != "" {
		logCfg.OutputPaths = []string{cfg.Logging.Output}
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	name := opts.username
	if name == "" {
		name = cfg.Shell.DefaultUsername
	}
	start := cfg.Shell.StartDir
	if start == "" {
		if start, err = os.UserHomeDir(); err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
	}
	state, err := session.New(name, start)
	if err != nil {
		return err
	}

	algorithm, err := utils.ParseAlgorithm(cfg.Files.HashAlgorithm)
	if err != nil {
		return err
	}
	hasher, err := utils.NewHasher(algorithm)
	if err != nil {
		return err
	}
	codec, err := filesystem.CodecByName(cfg.Files.Codec)
	if err != nil {
		return err
	}

	out := shell.NewOutput(cmd.OutOrStdout())
	metrics := monitoring.NewMetrics()

	fs := filesystem.NewProvider(filesystem.Config{
		State:   state,
		Out:     out,
		Hasher:  hasher,
		Codec:   codec,
		Metrics: metrics,
		Options: filesystem.Options{
			BufferSize:      cfg.Files.BufferSize,
			ListConcurrency: cfg.Files.ListConcurrency,
			Color:           cfg.Output.Color,
		},
	})
	registry, err := shell.NewRegistry(fs, system.NewProvider(out, system.LocalHost()))
	if err != nil {
		return err
	}

	sh := shell.New(shell.Config{
		In:         cmd.InOrStdin(),
		Out:        out,
		State:      state,
		Dispatcher: command.NewDispatcher(registry),
		Logger:     logger,
		Metrics:    metrics,
		Prompt:     cfg.Shell.Prompt,
	})

	logger.Debug("session starting",
		zap.String("session", state.ID().String()),
		zap.String("dir", state.Dir()),
		zap.String("hash", string(hasher.Algorithm())),
		zap.String("codec", codec.Name()),
		zap.Int("commands", registry.Len()),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		srv, err := monitoring.NewServer(cfg.Metrics.Addr, metrics, logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return srv.Serve(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return sh.Run(gctx)
	})

	return g.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version.GetFullVersion())); err != nil {
		stop()
		os.Exit(1)
	}
}
