package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/app/skills"
	"aechlegal/internal/infra/cliout"
)

func newParseEmailEditsCmd(opts *cliOptions) *cobra.Command {
	var (
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "parse-email-edits [email-file]",
		Short: "Extract document edit instructions from an email",
		Long: `Extract edit instructions from an email with the LLM. The email is read
from email-file, or from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := outputFormat(format, "json", "summary"); err != nil {
				return err
			}
			text, source, err := readSource(opts, "parse-email-edits", args)
			if err != nil {
				return fail(cmd, opts, err)
			}
			result, err := opts.runner().ParseEmailEdits(cmd.Context(), text, source)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if output != "" {
				summary, err := actions.WriteOutput(output, result)
				if err != nil {
					return fail(cmd, opts, err)
				}
				if format == "json" {
					return cliout.WriteCompactJSON(cmd.OutOrStdout(), summary)
				}
			}
			if format == "summary" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), skills.EditsSummary(result.Edits))
				return err
			}
			return cliout.WriteJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output JSON file")
	cmd.Flags().StringVar(&format, "output-format", "json", "json or summary")
	return cmd
}

func newApplyEditsCmd(opts *cliOptions) *cobra.Command {
	var (
		editsPath string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "apply-edits <input-docx>",
		Short: "Apply extracted edits to a document one at a time",
		Long: `Apply every edit from an extract-edits result through documents edit.
A failing edit is reported with its index and the remaining edits still run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := skills.LoadEdits(editsPath)
			if err != nil {
				return fail(cmd, opts, err)
			}
			report, err := opts.runner().ApplyEdits(cmd.Context(), args[0], edits, output)
			if err != nil {
				return fail(cmd, opts, err)
			}
			return cliout.WriteJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&editsPath, "edits", "", "JSON file with edits")
	cmd.Flags().StringVar(&output, "output", "", "Output document path")
	_ = cmd.MarkFlagRequired("edits")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
