package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/cliout"
	"aechlegal/internal/infra/manifest"
	"aechlegal/internal/infra/telemetry"
)

type genManifestOptions struct {
	dryRun    bool
	out       string
	metadata  string
	skillsDir string
}

type genManifestSummary struct {
	Status  string `json:"status"`
	Output  string `json:"output"`
	Actions int    `json:"actions"`
}

func newGenManifestCmd(opts *cliOptions) *cobra.Command {
	gen := genManifestOptions{
		out:       domain.ManifestFileName,
		metadata:  "tool.toml",
		skillsDir: "skills",
	}
	cmd := &cobra.Command{
		Use:    "gen-manifest",
		Short:  "Regenerate manifest.json from the registered commands",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := buildManifest(cmd.Root(), gen)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			if gen.dryRun {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(gen.out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write manifest: %w", err)
			}
			opts.logger.Info("manifest written", telemetry.EventField(telemetry.EventManifestWrite), zap.String("path", gen.out), zap.Int("actions", len(doc.Actions)))
			return cliout.WriteCompactJSON(cmd.OutOrStdout(), genManifestSummary{
				Status:  domain.StatusComplete,
				Output:  gen.out,
				Actions: len(doc.Actions),
			})
		},
	}
	cmd.Flags().BoolVar(&gen.dryRun, "dry-run", false, "print the manifest instead of writing it")
	cmd.Flags().StringVar(&gen.out, "out", gen.out, "manifest output path")
	cmd.Flags().StringVar(&gen.metadata, "metadata", gen.metadata, "project metadata TOML file")
	cmd.Flags().StringVar(&gen.skillsDir, "skills-dir", gen.skillsDir, "directory of bundled skills")
	return cmd
}

func buildManifest(root *cobra.Command, gen genManifestOptions) (domain.Manifest, error) {
	meta, err := manifest.LoadMetadata(gen.metadata)
	if err != nil {
		return domain.Manifest{}, err
	}
	skills, err := manifest.LoadSkills(gen.skillsDir)
	if err != nil {
		return domain.Manifest{}, err
	}
	doc, err := manifest.Generate(root, meta, skills)
	if err != nil {
		return domain.Manifest{}, err
	}
	names, err := manifest.CommandNames(root)
	if err != nil {
		return domain.Manifest{}, err
	}
	if err := manifest.Validate(doc, names); err != nil {
		return domain.Manifest{}, err
	}
	return doc, nil
}
