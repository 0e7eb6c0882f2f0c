package skills

import (
	"context"
	"fmt"
	"strings"

	"aechlegal/internal/app/actions"
)

const listPrecedentsTopK = 20

func (r *Runner) SearchPrecedent(ctx context.Context, query string, topK int) (actions.ClauseSearchResult, error) {
	return r.actions.SearchClauses(ctx, actions.ClauseSearchRequest{Query: query, TopK: topK})
}

// PrecedentTable renders search results as a Markdown table.
func PrecedentTable(result actions.ClauseSearchResult) string {
	if len(result.Results) == 0 {
		return "No matching clauses found.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nFound %d matching clauses:\n\n", len(result.Results))
	sb.WriteString("| # | Deal | Date | Similarity | Preview |\n")
	sb.WriteString("|---|------|------|------------|---------|\n")
	for i, raw := range result.Results {
		fields, _ := raw.(map[string]any)
		text := field(fields, "text", "")
		if runes := []rune(text); len(runes) > 50 {
			text = string(runes[:50])
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s... |\n",
			i+1, field(fields, "deal_name", "N/A"), field(fields, "deal_date", "N/A"), field(fields, "similarity", "N/A"), text)
	}
	return sb.String()
}

type ContextStub struct {
	Status       string `json:"status"`
	Action       string `json:"action"`
	ClauseID     string `json:"clause_id"`
	ContextLines int    `json:"context_lines"`
	Message      string `json:"message"`
}

func (r *Runner) ShowContext(clauseID string, contextLines int) ContextStub {
	return ContextStub{
		Status:       "stub",
		Action:       "show_context",
		ClauseID:     clauseID,
		ContextLines: contextLines,
		Message:      "Will retrieve full clause context from database",
	}
}

type PrecedentDeal struct {
	DealName string `json:"deal_name"`
	DealDate string `json:"deal_date"`
}

type PrecedentList struct {
	Type         string                     `json:"type"`
	Jurisdiction string                     `json:"jurisdiction,omitempty"`
	Deals        []PrecedentDeal            `json:"deals"`
	Search       actions.ClauseSearchResult `json:"search"`
}

// ListPrecedents finds indexed deals of a contract type, keeping the first
// hit per deal name.
func (r *Runner) ListPrecedents(ctx context.Context, contractType, jurisdiction string) (PrecedentList, error) {
	search, err := r.actions.SearchClauses(ctx, actions.ClauseSearchRequest{
		Query: "contract type: " + contractType,
		TopK:  listPrecedentsTopK,
	})
	if err != nil {
		return PrecedentList{}, err
	}
	list := PrecedentList{Type: contractType, Jurisdiction: jurisdiction, Deals: []PrecedentDeal{}, Search: search}
	seen := make(map[string]struct{})
	for _, raw := range search.Results {
		fields, _ := raw.(map[string]any)
		if jurisdiction != "" {
			if j := field(fields, "jurisdiction", ""); j != "" && !strings.EqualFold(j, jurisdiction) {
				continue
			}
		}
		name := field(fields, "deal_name", "Unknown")
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		list.Deals = append(list.Deals, PrecedentDeal{DealName: name, DealDate: field(fields, "deal_date", "N/A")})
	}
	return list, nil
}

func (l PrecedentList) Text() string {
	if len(l.Deals) == 0 {
		return fmt.Sprintf("No precedent deals found for type: %s\n", l.Type)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nPrecedent deals for '%s':\n\n", l.Type)
	for _, deal := range l.Deals {
		fmt.Fprintf(&sb, "- %s (%s)\n", deal.DealName, deal.DealDate)
	}
	return sb.String()
}

func field(fields map[string]any, key, fallback string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return fallback
	}
	return fmt.Sprint(v)
}
