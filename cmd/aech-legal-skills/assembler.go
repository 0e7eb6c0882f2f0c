package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aechlegal/internal/infra/cliout"
)

func newListPrecedentsCmd(opts *cliOptions) *cobra.Command {
	var (
		contractType string
		jurisdiction string
		format       string
	)
	cmd := &cobra.Command{
		Use:   "list-precedents",
		Short: "List indexed deals of a contract type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := outputFormat(format, "json", "table"); err != nil {
				return err
			}
			list, err := opts.runner().ListPrecedents(cmd.Context(), contractType, jurisdiction)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if format == "json" {
				return cliout.WriteJSON(cmd.OutOrStdout(), list)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), list.Text())
			return err
		},
	}
	cmd.Flags().StringVar(&contractType, "type", "", "Contract type (e.g., asset-purchase, nda)")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "", "Filter by jurisdiction")
	cmd.Flags().StringVar(&format, "output-format", "table", "json or table")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newExtractSectionsCmd(opts *cliOptions) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "extract-sections <input-path>",
		Short: "Extract sections of a DOCX into Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.runner().ExtractSections(cmd.Context(), args[0], outputDir)
			if err != nil {
				return fail(cmd, opts, err)
			}
			return cliout.WriteJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Output directory")
	return cmd
}

func newAssembleDocumentCmd(opts *cliOptions) *cobra.Command {
	var template, sections, output string
	cmd := &cobra.Command{
		Use:   "assemble-document",
		Short: "Assemble a document from precedent sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cliout.WriteJSON(cmd.OutOrStdout(), opts.runner().AssembleDocument(template, sections, output))
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "Base template to use")
	cmd.Flags().StringVar(&sections, "sections", "", "Section mappings (format: section:source,section:source)")
	cmd.Flags().StringVar(&output, "output", "", "Output DOCX path")
	_ = cmd.MarkFlagRequired("sections")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
