package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/manifest"
)

func newClausesCmd(opts *cliOptions) *cobra.Command {
	return newGroupCmd("clauses", "Precedent and clause management",
		newClauseSearchCmd(opts),
		newClauseIndexCmd(opts),
	)
}

func newClauseSearchCmd(opts *cliOptions) *cobra.Command {
	var req actions.ClauseSearchRequest
	cmd := newActionCmd("search", "Semantic search for similar clauses in precedent database.", `Semantic search for similar clauses in precedent database.

Input: clause text or type.
Output: matching clauses with source deals.
Use when user wants precedent for a provision.`,
		[]manifest.Arg{{Name: "query", Description: "Clause text or type to search for"}},
		func(cmd *cobra.Command, args []string) error {
			req.Query = args[0]
			result, err := opts.actions().SearchClauses(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().IntVarP(&req.TopK, "top-k", "k", domain.DefaultClauseTopK, "Number of results")
	return cmd
}

func newClauseIndexCmd(opts *cliOptions) *cobra.Command {
	var req actions.ClauseIndexRequest
	cmd := newActionCmd("index", "Add document clauses to precedent database.", `Add document clauses to precedent database.

Input: DOCX path, deal metadata.
Output: indexed clause count.
Use after closing a deal to build precedent library.`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to DOCX file"}},
		func(cmd *cobra.Command, args []string) error {
			req.InputPath = args[0]
			result, err := opts.actions().IndexClauses(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.DealName, "deal-name", "n", "", "Name of the deal")
	cmd.Flags().StringVarP(&req.DealDate, "deal-date", "d", "", "Date of deal (ISO-8601)")
	_ = cmd.MarkFlagRequired("deal-name")
	return cmd
}
