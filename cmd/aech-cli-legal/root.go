package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/config"
	"aechlegal/internal/infra/llm"
	"aechlegal/internal/infra/manifest"
	"aechlegal/internal/infra/telemetry"
)

type cliOptions struct {
	configPath string
	verbose    bool
	env        environment
	config     domain.Config
	logger     *zap.Logger
	service    *actions.Service
}

func newRootCommand(env environment) *cobra.Command {
	opts := &cliOptions{
		env:    env,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           domain.ToolCommand,
		Short:         "Legal document workflows: editing, redlining, clause search, research, data rooms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}
	root.SetOut(env.stdout)
	root.SetErr(env.stderr)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.aech/legal.yaml when present)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "write debug logs to stderr")

	root.AddCommand(
		newClassifyCmd(opts),
		newDocumentsCmd(opts),
		newClausesCmd(opts),
		newResearchCmd(opts),
		newDataroomCmd(opts),
		newSigpageCmd(opts),
		newGenManifestCmd(opts),
		newMCPCmd(opts),
	)
	return root
}

func (o *cliOptions) init() error {
	logger, err := telemetry.NewLogger(o.verbose, telemetry.LogSourceCLI)
	if err != nil {
		return err
	}
	o.logger = logger
	cfg, err := config.NewLoader(o.logger).Load(o.configPath)
	if err != nil {
		return err
	}
	o.config = cfg
	return nil
}

// actions builds the action service on first use.
func (o *cliOptions) actions() *actions.Service {
	if o.service != nil {
		return o.service
	}
	var completer llm.Completer = o.env.completer
	if completer == nil {
		completer = llm.NewClient(o.config.LLM, o.logger)
	}
	o.service = actions.NewService(actions.Options{
		Completer:       completer,
		MaxAnalyzeChars: o.config.Documents.MaxAnalyzeChars,
		Logger:          o.logger,
	})
	return o.service
}

func (o *cliOptions) manifestLoader() *manifest.Loader {
	return manifest.NewLoader(manifestLocator(o.config.Manifest.Paths, o.env.executable), o.logger)
}

// newGroupCmd builds a command that only hosts subcommands. Unknown
// subcommands fail instead of falling back to help.
func newGroupCmd(use, short string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	cmd.AddCommand(children...)
	return cmd
}

// newActionCmd keeps flag declaration order so the manifest lists parameters
// the way they were declared.
func newActionCmd(use, short, long string, args []manifest.Arg, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE:  run,
	}
	cmd.Flags().SortFlags = false
	manifest.DeclareArgs(cmd, args...)
	return cmd
}
