package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/app/skills"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/checklist"
	"aechlegal/internal/infra/config"
	"aechlegal/internal/infra/llm"
	"aechlegal/internal/infra/telemetry"
)

type cliOptions struct {
	configPath string
	verbose    bool
	env        environment
	config     domain.Config
	logger     *zap.Logger
	skills     *skills.Runner
}

func newRootCommand(env environment) *cobra.Command {
	opts := &cliOptions{
		env:    env,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "aech-legal-skills",
		Short:         "Bundled legal skill workflows built on aech-cli-legal actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}
	root.SetIn(env.stdin)
	root.SetOut(env.stdout)
	root.SetErr(env.stderr)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.aech/legal.yaml when present)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "write debug logs to stderr")

	root.AddCommand(
		newGroupCmd("comment-implementer", "Classify comments, track the checklist and research questions",
			newClassifyEmailCmd(opts),
			newUpdateChecklistCmd(opts),
			newConductResearchCmd(opts),
		),
		newGroupCmd("email-edit-extractor", "Turn edit requests in emails into document edits",
			newParseEmailEditsCmd(opts),
			newApplyEditsCmd(opts),
		),
		newGroupCmd("precedent-finder", "Search the precedent clause library",
			newSearchPrecedentCmd(opts),
			newShowContextCmd(opts),
		),
		newGroupCmd("document-assembler", "Assemble documents from precedent sections",
			newListPrecedentsCmd(opts),
			newExtractSectionsCmd(opts),
			newAssembleDocumentCmd(opts),
		),
		newGroupCmd("regulatory-monitor", "Flag regulatory terms in deal documents",
			newAnalyzeDocumentCmd(opts),
			newScanTermsCmd(opts),
		),
	)
	return root
}

func (o *cliOptions) init() error {
	logger, err := telemetry.NewLogger(o.verbose, telemetry.LogSourceSkills)
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

// runner builds the skill runner on first use.
func (o *cliOptions) runner() *skills.Runner {
	if o.skills != nil {
		return o.skills
	}
	var completer llm.Completer = o.env.completer
	if completer == nil {
		completer = llm.NewClient(o.config.LLM, o.logger)
	}
	svc := actions.NewService(actions.Options{
		Completer:       completer,
		MaxAnalyzeChars: o.config.Documents.MaxAnalyzeChars,
		Logger:          o.logger,
	})
	o.skills = skills.NewRunner(skills.RunnerOptions{
		Actions:         svc,
		Checklist:       checklist.NewStore(o.config.Checklist.Path, o.logger),
		MaxAnalyzeChars: o.config.Documents.MaxAnalyzeChars,
		Logger:          o.logger,
	})
	return o.skills
}

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
