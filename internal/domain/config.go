package domain

// Config is the resolved runtime configuration of the CLI.
type Config struct {
	LLM       LLMConfig
	Documents DocumentsConfig
	Checklist ChecklistConfig
	Manifest  ManifestConfig
}

type LLMConfig struct {
	// Model is "<provider>:<model>", e.g. "openai:gpt-4o".
	Model          string
	APIKeyEnvVar   string
	BaseURL        string
	TimeoutSeconds int
}

type DocumentsConfig struct {
	MaxAnalyzeChars int
}

type ChecklistConfig struct {
	Path string
}

type ManifestConfig struct {
	// Paths overrides the default candidate locations, checked in order.
	Paths []string
}
