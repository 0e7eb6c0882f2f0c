package domain

const (
	ToolName               = "legal"
	ToolCommand            = "aech-cli-legal"
	ManifestFileName       = "manifest.json"
	ManifestSpecVersion    = 5
	ModelEnvVar            = "AECH_LLM_WORKER_MODEL"
	DefaultModel           = "openai:gpt-4o"
	DefaultAPIKeyEnvVar    = "OPENAI_API_KEY"
	DefaultLLMTimeoutSecs  = 120
	DefaultMaxAnalyzeChars = 50000
	DefaultClauseTopK      = 5
	DefaultSigpageTemplate = "standard"
	DefaultConfigDir       = ".aech"
	DefaultConfigFile      = "legal.yaml"
	DefaultChecklistFile   = "project_checklist.json"
)

// StatusStub marks the payload of an action that has no backing integration yet.
const (
	StatusStub     = "stub"
	StatusComplete = "complete"
	StatusError    = "error"
)
