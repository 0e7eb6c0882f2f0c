package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aechlegal/internal/app/skills"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/cliout"
)

func newSearchPrecedentCmd(opts *cliOptions) *cobra.Command {
	var (
		clauseType string
		file       string
		topK       int
		format     string
	)
	cmd := &cobra.Command{
		Use:   "search-precedent [query]",
		Short: "Search for precedent clauses",
		Long: `Search the precedent library for similar clauses. The query comes from
--file, then --clause-type, then the query argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := outputFormat(format, "json", "table"); err != nil {
				return err
			}
			var query string
			switch {
			case file != "":
				text, err := readTrimmed("search-precedent", "File", file)
				if err != nil {
					return fail(cmd, opts, err)
				}
				query = text
			case clauseType != "":
				query = clauseType
			case len(args) > 0:
				query = args[0]
			}
			if query == "" {
				return fail(cmd, opts, domain.E(domain.CodeInvalidArgument, "search-precedent", "Must provide query, --clause-type, or --file", nil))
			}

			result, err := opts.runner().SearchPrecedent(cmd.Context(), query, topK)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if format == "json" {
				return cliout.WriteJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), skills.PrecedentTable(result))
			return err
		},
	}
	cmd.Flags().StringVar(&clauseType, "clause-type", "", "Search by clause type (e.g., indemnification)")
	cmd.Flags().StringVar(&file, "file", "", "Read clause text from file")
	cmd.Flags().IntVar(&topK, "top-k", domain.DefaultClauseTopK, "Number of results")
	cmd.Flags().StringVar(&format, "output-format", "table", "json or table")
	return cmd
}

func newShowContextCmd(opts *cliOptions) *cobra.Command {
	var (
		clauseID     string
		contextLines int
	)
	cmd := &cobra.Command{
		Use:   "show-context",
		Short: "Show the full context of a clause from search results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cliout.WriteJSON(cmd.OutOrStdout(), opts.runner().ShowContext(clauseID, contextLines))
		},
	}
	cmd.Flags().StringVar(&clauseID, "clause-id", "", "Clause ID from search results")
	cmd.Flags().IntVar(&contextLines, "context-lines", 20, "Lines of context")
	_ = cmd.MarkFlagRequired("clause-id")
	return cmd
}
