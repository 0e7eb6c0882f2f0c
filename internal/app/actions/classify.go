package actions

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/llm"
)

// ClassifyResult is an EmailClassification tagged with the classified file.
type ClassifyResult struct {
	domain.EmailClassification
	Source string `json:"source"`
}

const classifyPrompt = `Classify this email/message for a legal workflow system.

Determine:
1. Classification type:
   - edit_request: Contains specific document changes ("change X to Y", "please revise", attached redlines)
   - research_question: Asks for legal research, case law, statute lookup, or analysis
   - approval_request: Needs sign-off, decision, or authorization
   - informational: FYI, status update, no action needed
   - urgent_action: Time-sensitive, deadline-driven, requires immediate response

2. Confidence level (0.0 to 1.0)
3. Brief topic summary (one sentence)
4. Suggested next action
5. Reasoning for the classification

Email/Message:
%s
`

func (s *Service) Classify(ctx context.Context, inputPath string) (ClassifyResult, error) {
	const op = "classify"
	text, err := readText(op, inputPath)
	if err != nil {
		return ClassifyResult{}, err
	}
	if err := s.requireCompleter(op); err != nil {
		return ClassifyResult{}, err
	}

	schema, err := llm.SchemaFor[domain.EmailClassification](func(js *jsonschema.Schema) {
		llm.Enum(js, "classification", domain.EmailClassifications)
	})
	if err != nil {
		return ClassifyResult{}, domain.Wrap(domain.CodeInternal, op, err)
	}
	classification, err := llm.Generate[domain.EmailClassification](ctx, s.completer, schema, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		return ClassifyResult{}, llmFailure(op, "LLM classification failed", err)
	}
	return ClassifyResult{EmailClassification: classification, Source: cleanPath(inputPath)}, nil
}
