package skills

import (
	"context"
	"strings"

	"aechlegal/internal/app/actions"
)

func (r *Runner) ExtractSections(ctx context.Context, inputPath, outputDir string) (actions.ConvertResult, error) {
	if outputDir == "" {
		outputDir = "."
	}
	return r.actions.Convert(ctx, actions.ConvertRequest{
		InputPath:         inputPath,
		OutputDir:         outputDir,
		PreserveStructure: true,
	})
}

type AssemblyStub struct {
	Status   string            `json:"status"`
	Action   string            `json:"action"`
	Template *string           `json:"template"`
	Sections map[string]string `json:"sections"`
	Output   string            `json:"output"`
	Message  string            `json:"message"`
}

// AssembleDocument parses "section:source,section:source" mappings. Entries
// without a colon are ignored and later duplicates win.
func (r *Runner) AssembleDocument(template, sections, output string) AssemblyStub {
	mapping := make(map[string]string)
	for _, entry := range strings.Split(sections, ",") {
		section, source, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		mapping[section] = source
	}
	stub := AssemblyStub{
		Status:   "stub",
		Action:   "assemble_document",
		Sections: mapping,
		Output:   output,
		Message:  "Will assemble document from selected precedent sections",
	}
	if template != "" {
		stub.Template = &template
	}
	return stub
}
