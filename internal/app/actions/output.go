package actions

import (
	"encoding/json"
	"fmt"
	"os"

	"aechlegal/internal/domain"
)

// CompleteSummary is printed instead of the full result when it was written
// to an --output file.
type CompleteSummary struct {
	Status         string                 `json:"status"`
	Output         string                 `json:"output"`
	Classification *domain.Classification `json:"classification,omitempty"`
	EditCount      *int                   `json:"edit_count,omitempty"`
}

// Summarizer is implemented by results that add fields to CompleteSummary.
type Summarizer interface {
	Summarize(summary *CompleteSummary)
}

func (r ClassifyResult) Summarize(summary *CompleteSummary) {
	classification := r.Classification
	summary.Classification = &classification
}

func (r ExtractionResult) Summarize(summary *CompleteSummary) {
	count := r.EditCount
	summary.EditCount = &count
}

// WriteOutput stores result as indented JSON at path and returns the summary
// to print in its place.
func WriteOutput(path string, result any) (CompleteSummary, error) {
	const op = "write output"
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return CompleteSummary{}, domain.Wrap(domain.CodeInternal, op, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return CompleteSummary{}, domain.E(domain.CodeInternal, op, fmt.Sprintf("write %s: %v", path, err), err)
	}
	summary := CompleteSummary{Status: domain.StatusComplete, Output: path}
	if s, ok := result.(Summarizer); ok {
		s.Summarize(&summary)
	}
	return summary, nil
}
