// Package config resolves CLI configuration from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

type Loader struct {
	logger  *zap.Logger
	homeDir func() (string, error)
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("config"), homeDir: os.UserHomeDir}
}

type rawConfig struct {
	LLM       rawLLMConfig       `mapstructure:"llm"`
	Documents rawDocumentsConfig `mapstructure:"documents"`
	Checklist rawChecklistConfig `mapstructure:"checklist"`
	Manifest  rawManifestConfig  `mapstructure:"manifest"`
}

type rawLLMConfig struct {
	Model          string `mapstructure:"model"`
	APIKeyEnvVar   string `mapstructure:"apiKeyEnvVar"`
	BaseURL        string `mapstructure:"baseURL"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

type rawDocumentsConfig struct {
	MaxAnalyzeChars int `mapstructure:"maxAnalyzeChars"`
}

type rawChecklistConfig struct {
	Path string `mapstructure:"path"`
}

type rawManifestConfig struct {
	Paths []string `mapstructure:"paths"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	_ = v.BindEnv("llm.model", domain.ModelEnvVar)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.model", domain.DefaultModel)
	v.SetDefault("llm.apiKeyEnvVar", domain.DefaultAPIKeyEnvVar)
	v.SetDefault("llm.baseURL", "")
	v.SetDefault("llm.timeoutSeconds", domain.DefaultLLMTimeoutSecs)
	v.SetDefault("documents.maxAnalyzeChars", domain.DefaultMaxAnalyzeChars)
	v.SetDefault("checklist.path", "")
	v.SetDefault("manifest.paths", []string{})
}

// Load resolves the configuration. An explicit path must exist; without one
// the default file under the user's home is read when present.
func (l *Loader) Load(path string) (domain.Config, error) {
	v := newViper()

	path = strings.TrimSpace(path)
	explicit := path != ""
	if !explicit {
		path = l.defaultPath()
	}
	if path != "" {
		if err := l.readFile(v, path, explicit); err != nil {
			return domain.Config{}, err
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return l.normalize(raw)
}

func (l *Loader) readFile(v *viper.Viper, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(data)))); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	l.logger.Debug("config file loaded", zap.String("path", path))
	return nil
}

func (l *Loader) defaultPath() string {
	home, err := l.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, domain.DefaultConfigDir, domain.DefaultConfigFile)
}

func (l *Loader) normalize(raw rawConfig) (domain.Config, error) {
	cfg := domain.Config{
		LLM: domain.LLMConfig{
			Model:          strings.TrimSpace(raw.LLM.Model),
			APIKeyEnvVar:   strings.TrimSpace(raw.LLM.APIKeyEnvVar),
			BaseURL:        strings.TrimSpace(raw.LLM.BaseURL),
			TimeoutSeconds: raw.LLM.TimeoutSeconds,
		},
		Documents: domain.DocumentsConfig{MaxAnalyzeChars: raw.Documents.MaxAnalyzeChars},
		Checklist: domain.ChecklistConfig{Path: strings.TrimSpace(raw.Checklist.Path)},
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = domain.DefaultModel
	}
	if cfg.LLM.TimeoutSeconds <= 0 {
		return domain.Config{}, errors.New("llm.timeoutSeconds must be > 0")
	}
	if cfg.Documents.MaxAnalyzeChars <= 0 {
		return domain.Config{}, errors.New("documents.maxAnalyzeChars must be > 0")
	}
	if cfg.Checklist.Path == "" {
		if home, err := l.homeDir(); err == nil && home != "" {
			cfg.Checklist.Path = filepath.Join(home, domain.DefaultConfigDir, domain.DefaultChecklistFile)
		}
	}
	for _, p := range raw.Manifest.Paths {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Manifest.Paths = append(cfg.Manifest.Paths, p)
		}
	}
	return cfg, nil
}
