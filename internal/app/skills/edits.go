package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"aechlegal/internal/app/actions"
	"aechlegal/internal/domain"
)

var ErrNoEmailContent = errors.New("no email content provided")

// ParseEmailEdits extracts edit instructions from email text.
func (r *Runner) ParseEmailEdits(ctx context.Context, text, source string) (actions.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return actions.ExtractionResult{}, domain.E(domain.CodeInvalidArgument, "parse-email-edits", "No email content provided", ErrNoEmailContent)
	}
	return r.actions.ExtractEditsFromText(ctx, text, source)
}

const previewLen = 30

// EditsSummary lists extracted edits one per line.
func EditsSummary(edits []domain.EditInstruction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d edit(s):\n", len(edits))
	for i, edit := range edits {
		section := "unspecified"
		if edit.Section != nil {
			section = *edit.Section
		}
		fmt.Fprintf(&sb, "  %d. Section %s: '%s...' → '%s...'\n",
			i+1, section, preview(edit.OriginalText), preview(edit.ReplacementText))
	}
	return sb.String()
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLen {
		return string(runes[:previewLen])
	}
	return text
}

type StepFailure struct {
	Status    string `json:"status"`
	EditIndex int    `json:"edit_index"`
	Error     string `json:"error"`
}

type ApplyReport struct {
	Status       string        `json:"status"`
	EditsApplied int           `json:"edits_applied"`
	Output       string        `json:"output"`
	Failures     []StepFailure `json:"failures,omitempty"`
}

// ApplyEdits runs documents edit once per instruction, feeding each step the
// previous step's document when it produced one. The last document is copied
// to output.
func (r *Runner) ApplyEdits(ctx context.Context, inputDoc string, edits []domain.EditInstruction, output string) (ApplyReport, error) {
	const op = "apply-edits"
	report := ApplyReport{Status: domain.StatusStub, Output: output}
	if len(edits) == 0 {
		return report, nil
	}

	workDir, err := os.MkdirTemp(r.tempDir, "edit-steps-*")
	if err != nil {
		return ApplyReport{}, domain.Wrap(domain.CodeInternal, op, err)
	}
	defer os.RemoveAll(workDir)

	current := inputDoc
	for i, edit := range edits {
		section := "unknown"
		if edit.Section != nil && *edit.Section != "" {
			section = *edit.Section
		}
		stepOutput := filepath.Join(workDir, fmt.Sprintf("edit_step_%d.docx", i))
		_, err := r.actions.Edit(ctx, actions.EditRequest{
			InputPath: current,
			Section:   section,
			Content:   edit.ReplacementText,
			Output:    stepOutput,
		})
		if err != nil {
			r.logger.Warn("edit step failed", zap.Int("index", i), zap.Error(err))
			report.Failures = append(report.Failures, StepFailure{
				Status:    domain.StatusError,
				EditIndex: i,
				Error:     domain.MessageOf(err),
			})
			continue
		}
		report.EditsApplied++
		if _, statErr := os.Stat(stepOutput); statErr == nil {
			current = stepOutput
		}
	}

	if report.EditsApplied > 0 {
		if err := copyFile(current, output); err != nil {
			return ApplyReport{}, domain.E(domain.CodeInternal, op, fmt.Sprintf("copy result: %v", err), err)
		}
		report.Status = domain.StatusComplete
	}
	return report, nil
}

// LoadEdits reads the edits file produced by extract-edits.
func LoadEdits(path string) ([]domain.EditInstruction, error) {
	const op = "apply-edits"
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NotFound(op, "Edits file", path)
		}
		return nil, domain.Wrap(domain.CodeInternal, op, err)
	}
	var doc domain.ExtractedEdits
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.E(domain.CodeInvalidArgument, op, fmt.Sprintf("invalid edits file %s: %v", path, err), err)
	}
	return doc.Edits, nil
}

// copyFile copies src to dst through a temp file in dst's directory. Copying
// a file onto itself is a no-op.
func copyFile(src, dst string) error {
	if sameFile(src, dst) {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".apply-edits-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, dst)
}

func sameFile(a, b string) bool {
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(infoA, infoB)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
