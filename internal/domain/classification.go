package domain

// Classification is the outcome of the rule-based text classifier.
type Classification string

const (
	ClassEditRequest      Classification = "edit_request"
	ClassResearchQuestion Classification = "research_question"
	ClassApprovalRequest  Classification = "approval_request"
	ClassInformational    Classification = "informational"
	ClassUrgentAction     Classification = "urgent_action"
)

// ClassificationResult is produced by the pattern classifier.
type ClassificationResult struct {
	Classification Classification `json:"classification"`
	Confidence     float64        `json:"confidence"`
	EditScore      int            `json:"edit_score"`
	ResearchScore  int            `json:"research_score"`
	HasAttachment  bool           `json:"has_attachment"`
	Topic          string         `json:"topic"`
}

// RegulatoryScanResult is produced by the keyword scanner.
type RegulatoryScanResult struct {
	RegulatoryCategories map[string][]string `json:"regulatory_categories"`
	Jurisdictions        []string            `json:"jurisdictions"`
	TermCount            int                 `json:"term_count"`
}

// EmailClassification is the structured reply of the LLM-backed classify action.
type EmailClassification struct {
	Classification  Classification `json:"classification" jsonschema:"one of edit_request, research_question, approval_request, informational, urgent_action"`
	Confidence      float64        `json:"confidence" jsonschema:"confidence between 0.0 and 1.0"`
	Topic           string         `json:"topic" jsonschema:"brief topic summary"`
	SuggestedAction string         `json:"suggested_action" jsonschema:"what to do next"`
	Reasoning       string         `json:"reasoning" jsonschema:"why this classification was chosen"`
}

// EmailClassifications lists every classification the LLM may return.
var EmailClassifications = []Classification{
	ClassEditRequest,
	ClassResearchQuestion,
	ClassApprovalRequest,
	ClassInformational,
	ClassUrgentAction,
}
