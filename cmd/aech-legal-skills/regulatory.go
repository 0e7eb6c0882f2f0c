package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/cliout"
)

func newAnalyzeDocumentCmd(opts *cliOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "analyze-document <input-path>",
		Short: "Analyze a document for regulatory terms with the LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.runner().AnalyzeDocument(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, opts, err)
			}
			if output == "" {
				return cliout.WriteJSON(cmd.OutOrStdout(), result)
			}
			summary, err := actions.WriteOutput(output, result)
			if err != nil {
				return fail(cmd, opts, err)
			}
			return cliout.WriteCompactJSON(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output JSON file")
	return cmd
}

func newScanTermsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan-terms <input-path>",
		Short: "Scan a document for regulatory keywords without the LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := opts.runner().ScanTerms(args[0])
			if err != nil {
				return fail(cmd, opts, err)
			}
			return cliout.WriteJSON(cmd.OutOrStdout(), report)
		},
	}
}
