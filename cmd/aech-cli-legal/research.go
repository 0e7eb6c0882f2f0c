package main

import (
	"context"

	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/manifest"
)

func newResearchCmd(opts *cliOptions) *cobra.Command {
	return newGroupCmd("research", "Legal research (cases, statutes)",
		newResearchSearchCmd(opts, "cases", "Search legal case database.", `Search legal case database.

Input: search query, jurisdiction.
Output: case summaries with citations.
Use when user needs case law precedent.`,
			"Jurisdiction filter (e.g., 'US-Federal', 'UK')",
			func(svc *actions.Service) researchFunc { return svc.ResearchCases }),
		newResearchSearchCmd(opts, "statutes", "Search regulatory/statute database.", `Search regulatory/statute database.

Input: query, jurisdiction.
Output: statute text with citations.
Use when user needs regulatory references.`,
			"Jurisdiction filter",
			func(svc *actions.Service) researchFunc { return svc.ResearchStatutes }),
	)
}

type researchFunc func(ctx context.Context, req actions.ResearchRequest) (actions.ResearchResult, error)

func newResearchSearchCmd(opts *cliOptions, use, short, long, jurisdictionUsage string, pick func(*actions.Service) researchFunc) *cobra.Command {
	var req actions.ResearchRequest
	cmd := newActionCmd(use, short, long,
		[]manifest.Arg{{Name: "query", Description: "Search query"}},
		func(cmd *cobra.Command, args []string) error {
			req.Query = args[0]
			result, err := pick(opts.actions())(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.Jurisdiction, "jurisdiction", "j", "", jurisdictionUsage)
	return cmd
}
