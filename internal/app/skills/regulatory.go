package skills

import (
	"context"
	"path/filepath"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/docreader"
	"aechlegal/internal/infra/regscan"
)

func (r *Runner) AnalyzeDocument(ctx context.Context, inputPath string) (actions.AnalysisResult, error) {
	return r.actions.Analyze(ctx, inputPath)
}

type ScanReport struct {
	domain.RegulatoryScanResult
	Source string `json:"source"`
}

// ScanTerms runs the keyword scanner over a document without the LLM.
func (r *Runner) ScanTerms(inputPath string) (ScanReport, error) {
	text, err := docreader.Read(inputPath, r.maxAnalyzeChars)
	if err != nil {
		return ScanReport{}, err
	}
	return ScanReport{RegulatoryScanResult: regscan.Scan(text), Source: filepath.Clean(inputPath)}, nil
}
