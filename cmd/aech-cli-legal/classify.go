package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/infra/manifest"
)

func newClassifyCmd(opts *cliOptions) *cobra.Command {
	var output string
	cmd := newActionCmd("classify", "Classify email/text content using LLM.", `Classify email/text content using LLM.

Input: Text file (email content, message, etc.)
Output: JSON with classification, confidence, topic, and suggested action.
Use when triaging incoming communications to determine appropriate handling.

Classifications:
- edit_request: Contains document change requests
- research_question: Asks for legal research or analysis
- approval_request: Needs sign-off or decision
- informational: FYI only, no action needed
- urgent_action: Requires immediate attention`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to email or text file to classify"}},
		func(cmd *cobra.Command, args []string) error {
			result, err := opts.actions().Classify(cmd.Context(), args[0])
			return emitResult(cmd, opts, result, err, output)
		})
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file")
	return cmd
}
