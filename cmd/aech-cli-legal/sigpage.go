package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/manifest"
)

func newSigpageCmd(opts *cliOptions) *cobra.Command {
	return newGroupCmd("sigpage", "Signature page generation",
		newSigpageGenerateCmd(opts),
	)
}

func newSigpageGenerateCmd(opts *cliOptions) *cobra.Command {
	var req actions.SigpageRequest
	cmd := newActionCmd("generate", "Generate signature pages from party information.", `Generate signature pages from party information.

Input: parties JSON, template.
Output: signature pages DOCX.
Use when user needs execution-ready signature blocks.`,
		[]manifest.Arg{{Name: "parties", Description: "JSON file with party information"}},
		func(cmd *cobra.Command, args []string) error {
			req.Parties = args[0]
			result, err := opts.actions().GenerateSigpages(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.Output, "output", "o", "", "Output DOCX path")
	cmd.Flags().StringVarP(&req.Template, "template", "t", "", "Signature page template (default: standard)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
