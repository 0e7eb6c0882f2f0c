package actions

import (
	"context"

	"aechlegal/internal/domain"
)

type ClauseSearchRequest struct {
	Query string
	TopK  int
}

func (s *Service) SearchClauses(_ context.Context, req ClauseSearchRequest) (ClauseSearchResult, error) {
	topK := req.TopK
	if topK <= 0 {
		topK = domain.DefaultClauseTopK
	}
	return ClauseSearchResult{
		Status:  stubStatus,
		Action:  "clauses search",
		Query:   req.Query,
		TopK:    topK,
		Results: []any{},
	}, nil
}

type ClauseIndexRequest struct {
	InputPath string
	DealName  string
	DealDate  string
}

func (s *Service) IndexClauses(_ context.Context, req ClauseIndexRequest) (ClauseIndexResult, error) {
	const op = "clauses index"
	if err := requireFile(op, "File", req.InputPath); err != nil {
		return ClauseIndexResult{}, err
	}
	return ClauseIndexResult{
		Status:         stubStatus,
		Action:         op,
		Input:          cleanPath(req.InputPath),
		DealName:       req.DealName,
		DealDate:       optional(req.DealDate),
		ClausesIndexed: 0,
	}, nil
}
