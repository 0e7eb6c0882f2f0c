package actions

import "context"

type ConnectRequest struct {
	Provider  string
	ProjectID string
}

func (s *Service) ConnectDataroom(_ context.Context, req ConnectRequest) (DataroomConnectResult, error) {
	return DataroomConnectResult{
		Status:    stubStatus,
		Action:    "dataroom connect",
		Provider:  req.Provider,
		ProjectID: req.ProjectID,
	}, nil
}

type DownloadRequest struct {
	DocID     string
	OutputDir string
}

func (s *Service) DownloadDocument(_ context.Context, req DownloadRequest) (DataroomDownloadResult, error) {
	const op = "dataroom download"
	if err := ensureDir(op, req.OutputDir); err != nil {
		return DataroomDownloadResult{}, err
	}
	return DataroomDownloadResult{
		Status:    stubStatus,
		Action:    op,
		DocID:     req.DocID,
		OutputDir: cleanPath(req.OutputDir),
	}, nil
}
