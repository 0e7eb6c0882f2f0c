// Package actions implements every manifest action of the legal CLI as a
// typed operation returning the value the CLI prints as JSON.
package actions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/llm"
)

// Service holds the collaborators shared by all actions. It is safe to reuse
// across calls within a process.
type Service struct {
	completer       llm.Completer
	maxAnalyzeChars int
	logger          *zap.Logger
}

type Options struct {
	Completer       llm.Completer
	MaxAnalyzeChars int
	Logger          *zap.Logger
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxChars := opts.MaxAnalyzeChars
	if maxChars <= 0 {
		maxChars = domain.DefaultMaxAnalyzeChars
	}
	return &Service{
		completer:       opts.Completer,
		maxAnalyzeChars: maxChars,
		logger:          logger.Named("actions"),
	}
}

func (s *Service) requireCompleter(op string) error {
	if s.completer == nil {
		return domain.E(domain.CodeInternal, op, "LLM client is not configured", domain.ErrGeneration)
	}
	return nil
}

// requireFile fails with "<label> not found: <path>" when path does not exist.
func requireFile(op, label, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NotFound(op, label, path)
		}
		return domain.Wrap(domain.CodeInternal, op, err)
	}
	return nil
}

func ensureDir(op, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.E(domain.CodeInternal, op, fmt.Sprintf("create directory %s: %v", dir, err), err)
	}
	return nil
}

func ensureParent(op, path string) error {
	return ensureDir(op, filepath.Dir(path))
}

func readText(op, path string) (string, error) {
	if err := requireFile(op, "File", path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.Wrap(domain.CodeInternal, op, err)
	}
	return string(data), nil
}

// cleanPath echoes a path the way users expect to see it in payloads.
func cleanPath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
