package main

import (
	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/manifest"
)

func newDocumentsCmd(opts *cliOptions) *cobra.Command {
	return newGroupCmd("documents", "Document manipulation and comparison",
		newConvertCmd(opts),
		newEditCmd(opts),
		newRedlineCmd(opts),
		newAnalyzeCmd(opts),
		newExtractEditsCmd(opts),
	)
}

func newConvertCmd(opts *cliOptions) *cobra.Command {
	var req actions.ConvertRequest
	cmd := newActionCmd("convert", "Convert DOCX to Markdown preserving document structure.", `Convert DOCX to Markdown preserving document structure.

Input: DOCX file path.
Output: Markdown file with sections mapped.
Use when user needs editable text from a contract.`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to DOCX file"}},
		func(cmd *cobra.Command, args []string) error {
			req.InputPath = args[0]
			result, err := opts.actions().Convert(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.OutputDir, "output-dir", "o", "", "Directory for output")
	cmd.Flags().BoolVar(&req.PreserveStructure, "preserve-structure", true, "Keep section hierarchy")
	_ = cmd.MarkFlagRequired("output-dir")
	return cmd
}

func newEditCmd(opts *cliOptions) *cobra.Command {
	var req actions.EditRequest
	cmd := newActionCmd("edit", "Edit a specific section of a DOCX document.", `Edit a specific section of a DOCX document.

Input: DOCX path, section ID, new content.
Output: Modified DOCX.
Use when user wants to change a specific clause.`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to DOCX file"}},
		func(cmd *cobra.Command, args []string) error {
			req.InputPath = args[0]
			result, err := opts.actions().Edit(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVarP(&req.Section, "section", "s", "", "Section ID to edit (e.g., '3.2' or 'definitions')")
	cmd.Flags().StringVarP(&req.Content, "content", "c", "", "New content for the section")
	cmd.Flags().StringVarP(&req.Output, "output", "o", "", "Output DOCX path")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newRedlineCmd(opts *cliOptions) *cobra.Command {
	var req actions.RedlineRequest
	cmd := newActionCmd("redline", "Generate Word Track Changes between two DOCX versions.", `Generate Word Track Changes between two DOCX versions.

Input: original and modified DOCX paths.
Output: DOCX with Track Changes markup.
Use when user needs to review changes between contract versions.`,
		nil,
		func(cmd *cobra.Command, _ []string) error {
			result, err := opts.actions().Redline(cmd.Context(), req)
			return emitStub(cmd, opts, result, err)
		})
	cmd.Flags().StringVar(&req.Original, "original", "", "Path to original DOCX")
	cmd.Flags().StringVar(&req.Modified, "modified", "", "Path to modified DOCX")
	cmd.Flags().StringVarP(&req.Output, "output", "o", "", "Output path for redlined DOCX")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("modified")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newAnalyzeCmd(opts *cliOptions) *cobra.Command {
	var output string
	cmd := newActionCmd("analyze", "Analyze document for regulatory concerns and jurisdictions using LLM.", `Analyze document for regulatory concerns and jurisdictions using LLM.

Input: Document file path (DOCX, TXT, or MD).
Output: JSON with regulatory categories, jurisdictions, risk level, and concerns.
Use when reviewing contracts for compliance issues or regulatory exposure.`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to document (DOCX, TXT, or MD)"}},
		func(cmd *cobra.Command, args []string) error {
			result, err := opts.actions().Analyze(cmd.Context(), args[0])
			return emitResult(cmd, opts, result, err, output)
		})
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file")
	return cmd
}

func newExtractEditsCmd(opts *cliOptions) *cobra.Command {
	var output string
	cmd := newActionCmd("extract-edits", "Extract edit instructions from text (email, comments) using LLM.", `Extract edit instructions from text (email, comments) using LLM.

Input: Text file containing edit requests/comments.
Output: JSON with structured edit instructions (section, original, replacement).
Use when processing email feedback or markup comments into actionable edits.`,
		[]manifest.Arg{{Name: "input-path", Description: "Path to text file with edit instructions"}},
		func(cmd *cobra.Command, args []string) error {
			result, err := opts.actions().ExtractEdits(cmd.Context(), args[0])
			return emitResult(cmd, opts, result, err, output)
		})
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file")
	return cmd
}
