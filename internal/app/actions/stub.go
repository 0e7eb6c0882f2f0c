package actions

import "aechlegal/internal/domain"

// Stub payloads keep the field order of the published JSON contract.

type ConvertResult struct {
	Status            string `json:"status"`
	Action            string `json:"action"`
	Input             string `json:"input"`
	OutputDir         string `json:"output_dir"`
	PreserveStructure bool   `json:"preserve_structure"`
}

type EditResult struct {
	Status  string  `json:"status"`
	Action  string  `json:"action"`
	Input   string  `json:"input"`
	Section string  `json:"section"`
	Content *string `json:"content"`
	Output  string  `json:"output"`
}

type RedlineResult struct {
	Status   string `json:"status"`
	Action   string `json:"action"`
	Original string `json:"original"`
	Modified string `json:"modified"`
	Output   string `json:"output"`
}

type ClauseSearchResult struct {
	Status  string `json:"status"`
	Action  string `json:"action"`
	Query   string `json:"query"`
	TopK    int    `json:"top_k"`
	Results []any  `json:"results"`
}

type ClauseIndexResult struct {
	Status         string  `json:"status"`
	Action         string  `json:"action"`
	Input          string  `json:"input"`
	DealName       string  `json:"deal_name"`
	DealDate       *string `json:"deal_date"`
	ClausesIndexed int     `json:"clauses_indexed"`
}

type ResearchResult struct {
	Status       string  `json:"status"`
	Action       string  `json:"action"`
	Query        string  `json:"query"`
	Jurisdiction *string `json:"jurisdiction"`
	Results      []any   `json:"results"`
}

type DataroomConnectResult struct {
	Status    string  `json:"status"`
	Action    string  `json:"action"`
	Provider  string  `json:"provider"`
	ProjectID string  `json:"project_id"`
	Session   *string `json:"session"`
}

type DataroomDownloadResult struct {
	Status    string  `json:"status"`
	Action    string  `json:"action"`
	DocID     string  `json:"doc_id"`
	OutputDir string  `json:"output_dir"`
	LocalPath *string `json:"local_path"`
}

type SigpageResult struct {
	Status   string `json:"status"`
	Action   string `json:"action"`
	Parties  string `json:"parties"`
	Output   string `json:"output"`
	Template string `json:"template"`
}

const stubStatus = domain.StatusStub
