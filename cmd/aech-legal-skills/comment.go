package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aechlegal/internal/app/skills"
	"aechlegal/internal/infra/cliout"
)

func newClassifyEmailCmd(opts *cliOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "classify-email [email-file]",
		Short: "Classify an email as an edit request, research question or other type",
		Long: `Classify an email with the rule-based classifier. No LLM call is made.

The email is read from email-file, or from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := outputFormat(format, "json", "summary"); err != nil {
				return err
			}
			text, _, err := readSource(opts, "classify-email", args)
			if err != nil {
				return fail(cmd, opts, err)
			}
			result := opts.runner().ClassifyEmail(text)
			if format == "summary" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), skills.ClassificationSummary(result))
				return err
			}
			return cliout.WriteJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&format, "output-format", "json", "json or summary")
	return cmd
}

type checklistOptions struct {
	add      string
	complete string
	remove   string
	list     bool
	format   string
}

func newUpdateChecklistCmd(opts *cliOptions) *cobra.Command {
	var c checklistOptions
	cmd := &cobra.Command{
		Use:   "update-checklist",
		Short: "Add, complete, remove or list project checklist items",
		Long: `Maintain the project checklist file. Exactly one of --add, --complete,
--remove or --list is applied, in that order of precedence. --complete and
--remove match items by case-insensitive substring.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := outputFormat(c.format, "json", "text"); err != nil {
				return err
			}
			return updateChecklist(cmd, opts, c)
		},
	}
	cmd.Flags().StringVar(&c.add, "add", "", "Add item to checklist")
	cmd.Flags().StringVar(&c.complete, "complete", "", "Mark item as complete")
	cmd.Flags().StringVar(&c.remove, "remove", "", "Remove item from checklist")
	cmd.Flags().BoolVar(&c.list, "list", false, "List all items")
	cmd.Flags().StringVar(&c.format, "output-format", "text", "json or text")
	return cmd
}

func updateChecklist(cmd *cobra.Command, opts *cliOptions, c checklistOptions) error {
	store := opts.runner().Checklist()
	out := cmd.OutOrStdout()
	switch {
	case c.add != "":
		if _, err := store.Add(c.add); err != nil {
			return fail(cmd, opts, err)
		}
		fmt.Fprintf(out, "Added: %s\n", c.add)
	case c.complete != "":
		item, found, err := store.Complete(c.complete)
		if err != nil {
			return fail(cmd, opts, err)
		}
		if !found {
			fmt.Fprintf(out, "Item not found: %s\n", c.complete)
			return nil
		}
		fmt.Fprintf(out, "Completed: %s\n", item.Text)
	case c.remove != "":
		removed, err := store.Remove(c.remove)
		if err != nil {
			return fail(cmd, opts, err)
		}
		if removed == 0 {
			fmt.Fprintf(out, "No items found matching: %s\n", c.remove)
			return nil
		}
		fmt.Fprintf(out, "Removed items matching: %s\n", c.remove)
	case c.list:
		list, err := store.Load()
		if err != nil {
			return fail(cmd, opts, err)
		}
		if c.format == "json" {
			return cliout.WriteJSON(out, list)
		}
		fmt.Fprint(out, skills.ChecklistText(list))
	default:
		return cmd.Help()
	}
	return nil
}

func newConductResearchCmd(opts *cliOptions) *cobra.Command {
	var (
		questionFile string
		jurisdiction string
		output       string
	)
	cmd := &cobra.Command{
		Use:   "conduct-research [question]",
		Short: "Search case law and statutes for a research question",
		Long: `Run case law and statute research for a question. A failing search
contributes an empty result list instead of aborting.

With --output the results are written as a Markdown research memo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := ""
			switch {
			case questionFile != "":
				text, err := readTrimmed("conduct-research", "Question file", questionFile)
				if err != nil {
					return fail(cmd, opts, err)
				}
				question = text
			case len(args) > 0:
				question = args[0]
			}
			if question == "" {
				return cliout.WriteCompactJSON(cmd.OutOrStdout(), cliout.ErrorPayload{Error: "No question provided"})
			}

			memo := opts.runner().ConductResearch(cmd.Context(), question, jurisdiction)
			if output == "" {
				return cliout.WriteJSON(cmd.OutOrStdout(), memo)
			}
			if err := os.WriteFile(output, []byte(memo.Markdown()), 0o644); err != nil {
				return fail(cmd, opts, fmt.Errorf("write research memo: %w", err))
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Research memo written to %s\n", output)
			return err
		},
	}
	cmd.Flags().StringVar(&questionFile, "question-file", "", "Read question from file")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "", "Jurisdiction to focus on")
	cmd.Flags().StringVar(&output, "output", "", "Output file for research memo")
	return cmd
}
