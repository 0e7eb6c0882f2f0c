package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/domain"
	"aechlegal/internal/infra/classifier"
)

func (r *Runner) ClassifyEmail(text string) domain.ClassificationResult {
	return classifier.Classify(text)
}

// ClassificationSummary renders the human-readable form of a classification.
func ClassificationSummary(result domain.ClassificationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Classification: %s\n", result.Classification)
	fmt.Fprintf(&sb, "Confidence: %d%%\n", int(math.Round(result.Confidence*100)))
	if result.Topic != "" {
		fmt.Fprintf(&sb, "Topic: %s\n", result.Topic)
	}
	return sb.String()
}

// ChecklistText renders pending items before completed ones.
func ChecklistText(list domain.Checklist) string {
	var sb strings.Builder
	sb.WriteString("=== Project Checklist ===\n\n")
	sb.WriteString("Pending:\n")
	for _, item := range list.ItemsWithStatus(domain.ChecklistPending) {
		fmt.Fprintf(&sb, "  [ ] %s\n", item.Text)
	}
	sb.WriteString("\nCompleted:\n")
	for _, item := range list.ItemsWithStatus(domain.ChecklistComplete) {
		fmt.Fprintf(&sb, "  [x] %s\n", item.Text)
	}
	return sb.String()
}

type ResearchMemo struct {
	Question     string  `json:"question"`
	Jurisdiction *string `json:"jurisdiction"`
	Cases        []any   `json:"cases"`
	Statutes     []any   `json:"statutes"`
	Summary      string  `json:"summary"`
}

const researchSummary = "Research conducted - see results above"

// ConductResearch searches case law and statutes. A failing search degrades
// to an empty result list.
func (r *Runner) ConductResearch(ctx context.Context, question, jurisdiction string) ResearchMemo {
	req := actions.ResearchRequest{Query: question, Jurisdiction: jurisdiction}

	cases, err := r.actions.ResearchCases(ctx, req)
	if err != nil {
		r.logger.Warn("case search failed", zap.Error(err))
		cases.Results = nil
	}
	statutes, err := r.actions.ResearchStatutes(ctx, req)
	if err != nil {
		r.logger.Warn("statute search failed", zap.Error(err))
		statutes.Results = nil
	}

	memo := ResearchMemo{
		Question: question,
		Cases:    nonNil(cases.Results),
		Statutes: nonNil(statutes.Results),
		Summary:  researchSummary,
	}
	if jurisdiction != "" {
		memo.Jurisdiction = &jurisdiction
	}
	return memo
}

// Markdown renders the memo written by conduct-research --output.
func (m ResearchMemo) Markdown() string {
	jurisdiction := "Not specified"
	if m.Jurisdiction != nil {
		jurisdiction = *m.Jurisdiction
	}
	var sb strings.Builder
	sb.WriteString("# Research Memo\n\n")
	fmt.Fprintf(&sb, "## Question\n%s\n\n", m.Question)
	fmt.Fprintf(&sb, "## Jurisdiction\n%s\n\n", jurisdiction)
	fmt.Fprintf(&sb, "## Case Law\n%s\n\n", indentJSON(m.Cases))
	fmt.Fprintf(&sb, "## Statutes\n%s\n\n", indentJSON(m.Statutes))
	sb.WriteString("## Summary\nFurther analysis required. The above results provide starting points for deeper research.\n")
	return sb.String()
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func nonNil(results []any) []any {
	if results == nil {
		return []any{}
	}
	return results
}
