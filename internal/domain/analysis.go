package domain

type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
	RiskNone   RiskLevel = "none"
)

var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow, RiskNone}

// RegulatoryAnalysis is the structured reply of documents analyze.
type RegulatoryAnalysis struct {
	RegulatoryCategories map[string][]string `json:"regulatory_categories" jsonschema:"category mapped to matched terms or concepts"`
	Jurisdictions        []string            `json:"jurisdictions" jsonschema:"identified jurisdictions such as Delaware, EU or GDPR"`
	RiskLevel            RiskLevel           `json:"risk_level" jsonschema:"one of high, medium, low, none"`
	KeyConcerns          []string            `json:"key_concerns" jsonschema:"specific concerns identified"`
	Reasoning            string              `json:"reasoning" jsonschema:"explanation of the analysis"`
}

// EditInstruction is a single change request found in free text.
type EditInstruction struct {
	Section         *string `json:"section" jsonschema:"section reference if mentioned, e.g. 3.2"`
	OriginalText    string  `json:"original_text" jsonschema:"text to be changed"`
	ReplacementText string  `json:"replacement_text" jsonschema:"new text"`
	Context         string  `json:"context" jsonschema:"surrounding context or instruction"`
}

// ExtractedEdits is the structured reply of documents extract-edits.
type ExtractedEdits struct {
	Edits   []EditInstruction `json:"edits"`
	Summary string            `json:"summary" jsonschema:"brief summary of the edit requests"`
}
