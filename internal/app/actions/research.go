package actions

import "context"

type ResearchRequest struct {
	Query        string
	Jurisdiction string
}

func (s *Service) ResearchCases(_ context.Context, req ResearchRequest) (ResearchResult, error) {
	return researchStub("research cases", req), nil
}

func (s *Service) ResearchStatutes(_ context.Context, req ResearchRequest) (ResearchResult, error) {
	return researchStub("research statutes", req), nil
}

func researchStub(action string, req ResearchRequest) ResearchResult {
	return ResearchResult{
		Status:       stubStatus,
		Action:       action,
		Query:        req.Query,
		Jurisdiction: optional(req.Jurisdiction),
		Results:      []any{},
	}
}
