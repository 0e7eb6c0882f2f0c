package actions

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/docreader"
	"aechlegal/internal/infra/llm"
	"aechlegal/internal/infra/telemetry"
)

type ConvertRequest struct {
	InputPath         string
	OutputDir         string
	PreserveStructure bool
}

func (s *Service) Convert(_ context.Context, req ConvertRequest) (ConvertResult, error) {
	const op = "documents convert"
	if err := requireFile(op, "File", req.InputPath); err != nil {
		return ConvertResult{}, err
	}
	if err := ensureDir(op, req.OutputDir); err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{
		Status:            stubStatus,
		Action:            op,
		Input:             cleanPath(req.InputPath),
		OutputDir:         cleanPath(req.OutputDir),
		PreserveStructure: req.PreserveStructure,
	}, nil
}

type EditRequest struct {
	InputPath string
	Section   string
	Content   string
	Output    string
}

func (s *Service) Edit(_ context.Context, req EditRequest) (EditResult, error) {
	const op = "documents edit"
	if err := requireFile(op, "File", req.InputPath); err != nil {
		return EditResult{}, err
	}
	if err := ensureParent(op, req.Output); err != nil {
		return EditResult{}, err
	}
	return EditResult{
		Status:  stubStatus,
		Action:  op,
		Input:   cleanPath(req.InputPath),
		Section: req.Section,
		Content: optional(req.Content),
		Output:  cleanPath(req.Output),
	}, nil
}

type RedlineRequest struct {
	Original string
	Modified string
	Output   string
}

func (s *Service) Redline(_ context.Context, req RedlineRequest) (RedlineResult, error) {
	const op = "documents redline"
	if err := requireFile(op, "Original file", req.Original); err != nil {
		return RedlineResult{}, err
	}
	if err := requireFile(op, "Modified file", req.Modified); err != nil {
		return RedlineResult{}, err
	}
	if err := ensureParent(op, req.Output); err != nil {
		return RedlineResult{}, err
	}
	return RedlineResult{
		Status:   stubStatus,
		Action:   op,
		Original: cleanPath(req.Original),
		Modified: cleanPath(req.Modified),
		Output:   cleanPath(req.Output),
	}, nil
}

// AnalysisResult is a RegulatoryAnalysis tagged with the analyzed file.
type AnalysisResult struct {
	domain.RegulatoryAnalysis
	Source string `json:"source"`
}

const analyzePrompt = `Analyze this legal document for regulatory concerns.

Identify:
1. Regulatory categories that apply (data_privacy, financial, healthcare, employment, intellectual_property, etc.)
2. Jurisdictions mentioned or implied (states, countries, regulatory frameworks like GDPR)
3. Risk level (high/medium/low/none) based on regulatory exposure
4. Specific concerns or issues that should be reviewed

Document text:
%s
`

// Analyze reads a .txt, .md or .docx document and asks the LLM for a
// regulatory assessment of its first MaxAnalyzeChars characters.
func (s *Service) Analyze(ctx context.Context, inputPath string) (AnalysisResult, error) {
	const op = "documents analyze"
	text, err := docreader.Read(inputPath, s.maxAnalyzeChars)
	if err != nil {
		return AnalysisResult{}, err
	}
	if err := s.requireCompleter(op); err != nil {
		return AnalysisResult{}, err
	}

	schema, err := llm.SchemaFor[domain.RegulatoryAnalysis](func(js *jsonschema.Schema) {
		llm.Enum(js, "risk_level", domain.RiskLevels)
	})
	if err != nil {
		return AnalysisResult{}, domain.Wrap(domain.CodeInternal, op, err)
	}
	analysis, err := llm.Generate[domain.RegulatoryAnalysis](ctx, s.completer, schema, fmt.Sprintf(analyzePrompt, text))
	if err != nil {
		return AnalysisResult{}, llmFailure(op, "LLM analysis failed", err)
	}
	if analysis.RegulatoryCategories == nil {
		analysis.RegulatoryCategories = map[string][]string{}
	}
	s.logger.Debug("document analyzed", telemetry.SourceField(inputPath), zap.String("risk_level", string(analysis.RiskLevel)))
	return AnalysisResult{RegulatoryAnalysis: analysis, Source: cleanPath(inputPath)}, nil
}

// ExtractionResult is ExtractedEdits tagged with its source and edit count.
type ExtractionResult struct {
	domain.ExtractedEdits
	Source    string `json:"source"`
	EditCount int    `json:"edit_count"`
}

const extractPrompt = `Extract edit instructions from this text.

For each edit request found, identify:
1. The section reference (if mentioned, e.g., "Section 3.2", "Article IV")
2. The original text that should be changed
3. The replacement text
4. Context around the instruction

Common patterns:
- "Change X to Y"
- "Replace X with Y"
- "In Section N, X should read Y"
- "Delete the phrase X"
- "Add Y after X"

Text to analyze:
%s
`

func (s *Service) ExtractEdits(ctx context.Context, inputPath string) (ExtractionResult, error) {
	const op = "documents extract-edits"
	text, err := readText(op, inputPath)
	if err != nil {
		return ExtractionResult{}, err
	}
	return s.ExtractEditsFromText(ctx, text, cleanPath(inputPath))
}

// ExtractEditsFromText runs extraction on text that did not come from a file,
// such as an email piped on stdin.
func (s *Service) ExtractEditsFromText(ctx context.Context, text, source string) (ExtractionResult, error) {
	const op = "documents extract-edits"
	if err := s.requireCompleter(op); err != nil {
		return ExtractionResult{}, err
	}
	schema, err := llm.SchemaFor[domain.ExtractedEdits](nil)
	if err != nil {
		return ExtractionResult{}, domain.Wrap(domain.CodeInternal, op, err)
	}
	extracted, err := llm.Generate[domain.ExtractedEdits](ctx, s.completer, schema, fmt.Sprintf(extractPrompt, text))
	if err != nil {
		return ExtractionResult{}, llmFailure(op, "LLM extraction failed", err)
	}
	if extracted.Edits == nil {
		extracted.Edits = []domain.EditInstruction{}
	}
	return ExtractionResult{
		ExtractedEdits: extracted,
		Source:         source,
		EditCount:      len(extracted.Edits),
	}, nil
}

// llmFailure prefixes the upstream message while keeping its code and cause.
func llmFailure(op, prefix string, err error) error {
	code, ok := domain.CodeFrom(err)
	if !ok {
		code = domain.CodeExternalService
	}
	return domain.E(code, op, fmt.Sprintf("%s: %s", prefix, domain.MessageOf(err)), err)
}
