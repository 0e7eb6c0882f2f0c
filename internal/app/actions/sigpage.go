package actions

import (
	"context"

	"aechlegal/internal/domain"
)

type SigpageRequest struct {
	Parties  string
	Output   string
	Template string
}

func (s *Service) GenerateSigpages(_ context.Context, req SigpageRequest) (SigpageResult, error) {
	const op = "sigpage generate"
	if err := requireFile(op, "Parties file", req.Parties); err != nil {
		return SigpageResult{}, err
	}
	if err := ensureParent(op, req.Output); err != nil {
		return SigpageResult{}, err
	}
	template := req.Template
	if template == "" {
		template = domain.DefaultSigpageTemplate
	}
	return SigpageResult{
		Status:   stubStatus,
		Action:   op,
		Parties:  cleanPath(req.Parties),
		Output:   cleanPath(req.Output),
		Template: template,
	}, nil
}
