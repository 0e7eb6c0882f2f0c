// Package skills runs the bundled skill workflows in-process on top of the
// legal actions. Chained steps that fail are reported and skipped.
package skills

import (
	"os"

	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/infra/checklist"
)

type Runner struct {
	actions         *actions.Service
	checklist       *checklist.Store
	maxAnalyzeChars int
	tempDir         string
	logger          *zap.Logger
}

type RunnerOptions struct {
	Actions         *actions.Service
	Checklist       *checklist.Store
	MaxAnalyzeChars int
	// TempDir hosts intermediate documents; defaults to os.TempDir().
	TempDir string
	Logger  *zap.Logger
}

func NewRunner(opts RunnerOptions) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tempDir := opts.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	svc := opts.Actions
	if svc == nil {
		svc = actions.NewService(actions.Options{Logger: logger})
	}
	return &Runner{
		actions:         svc,
		checklist:       opts.Checklist,
		maxAnalyzeChars: opts.MaxAnalyzeChars,
		tempDir:         tempDir,
		logger:          logger.Named("skills"),
	}
}

func (r *Runner) Checklist() *checklist.Store {
	return r.checklist
}
