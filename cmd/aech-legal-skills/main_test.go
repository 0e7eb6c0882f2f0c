package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aechlegal/internal/domain"
)

type fakeCompleter struct {
	reply string
}

func (f fakeCompleter) Complete(context.Context, string, string) (string, error) {
	return f.reply, nil
}

type result struct {
	code   int
	stdout string
	stderr string
}

// isolate points HOME at a fresh directory and returns it.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(domain.ModelEnvVar, "")
	return home
}

func runSkills(t *testing.T, env environment, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env.stdout = &stdout
	env.stderr = &stderr
	if env.stdin == nil {
		env.stdin = strings.NewReader("")
	}
	code := run(context.Background(), args, env)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const editEmail = "Please change the governing law to New York.\nIn section 4.2, replace Seller with Vendor."

func TestClassifyEmail_FromFileAndStdin(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "email.txt", editEmail)

	res := runSkills(t, environment{}, "comment-implementer", "classify-email", path)
	require.Equal(t, 0, res.code, res.stderr)
	var got domain.ClassificationResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, domain.ClassEditRequest, got.Classification)

	res = runSkills(t, environment{stdin: strings.NewReader(editEmail)},
		"comment-implementer", "classify-email", "--output-format", "summary")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "Classification: edit_request\nConfidence: 80%\n"), res.stdout)
}

func TestClassifyEmail_RejectsUnknownFormat(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{}, "comment-implementer", "classify-email", "--output-format", "xml")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `invalid --output-format "xml"`)
}

func TestClassifyEmail_MissingFile(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.eml")

	res := runSkills(t, environment{}, "comment-implementer", "classify-email", missing)
	assert.Equal(t, 1, res.code)
	assert.JSONEq(t, `{"error":"File not found: `+missing+`"}`, res.stdout)
}

func TestUpdateChecklist_Lifecycle(t *testing.T) {
	home := isolate(t)
	env := environment{}

	res := runSkills(t, env, "comment-implementer", "update-checklist", "--add", "Confirm HSR filing")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Added: Confirm HSR filing\n", res.stdout)
	assert.FileExists(t, filepath.Join(home, ".aech", "project_checklist.json"))

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--add", "Circulate signature pages")
	require.Equal(t, 0, res.code, res.stderr)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--complete", "hsr")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Completed: Confirm HSR filing\n", res.stdout)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--complete", "escrow")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Item not found: escrow\n", res.stdout)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "=== Project Checklist ===\n\nPending:\n  [ ] Circulate signature pages\n\nCompleted:\n  [x] Confirm HSR filing\n", res.stdout)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--remove", "SIGNATURE")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Removed items matching: SIGNATURE\n", res.stdout)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--remove", "signature")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No items found matching: signature\n", res.stdout)

	res = runSkills(t, env, "comment-implementer", "update-checklist", "--list", "--output-format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var list domain.Checklist
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, domain.ChecklistComplete, list.Items[0].Status)
}

func TestUpdateChecklist_UsesConfiguredPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	checklistPath := filepath.Join(dir, "deal", "checklist.json")
	cfg := writeFile(t, dir, "legal.yaml", "checklist:\n  path: "+checklistPath+"\n")

	res := runSkills(t, environment{}, "--config", cfg, "comment-implementer", "update-checklist", "--add", "Board consent")
	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, checklistPath)
}

func TestConductResearch(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	res := runSkills(t, environment{}, "comment-implementer", "conduct-research")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"error":"No question provided"}`, res.stdout)

	res = runSkills(t, environment{}, "comment-implementer", "conduct-research", "Is a non-compete enforceable?", "--jurisdiction", "California")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{
		"question": "Is a non-compete enforceable?",
		"jurisdiction": "California",
		"cases": [],
		"statutes": [],
		"summary": "Research conducted - see results above"
	}`, res.stdout)

	questionFile := writeFile(t, dir, "question.txt", "  Does HSR apply?\n")
	memoPath := filepath.Join(dir, "memo.md")
	res = runSkills(t, environment{}, "comment-implementer", "conduct-research", "--question-file", questionFile, "--output", memoPath)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Research memo written to "+memoPath+"\n", res.stdout)
	memo, err := os.ReadFile(memoPath)
	require.NoError(t, err)
	assert.Contains(t, string(memo), "## Question\nDoes HSR apply?\n")
	assert.Contains(t, string(memo), "## Jurisdiction\nNot specified\n")
}

func TestParseEmailEdits(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	completer := fakeCompleter{reply: `{"edits":[{"section":"4.2","original_text":"Seller","replacement_text":"Vendor","context":"defined term"}],"summary":"Rename Seller"}`}

	res := runSkills(t, environment{stdin: strings.NewReader(editEmail), completer: completer},
		"email-edit-extractor", "parse-email-edits", "--output-format", "summary")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Found 1 edit(s):\n  1. Section 4.2: 'Seller...' → 'Vendor...'\n", res.stdout)

	output := filepath.Join(dir, "edits.json")
	res = runSkills(t, environment{stdin: strings.NewReader(editEmail), completer: completer},
		"email-edit-extractor", "parse-email-edits", "--output", output)
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"status":"complete","output":"`+output+`","edit_count":1}`, res.stdout)
	assert.FileExists(t, output)
}

func TestParseEmailEdits_EmptyInput(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{stdin: strings.NewReader("  \n"), completer: fakeCompleter{}},
		"email-edit-extractor", "parse-email-edits")
	assert.Equal(t, 1, res.code)
	assert.JSONEq(t, `{"error":"No email content provided"}`, res.stdout)
}

func TestApplyEdits(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	doc := writeFile(t, dir, "spa.docx", "docx")
	edits := writeFile(t, dir, "edits.json", `{"edits":[{"section":"4.2","original_text":"Seller","replacement_text":"Vendor","context":"defined term"}],"summary":"x"}`)
	output := filepath.Join(dir, "out.docx")

	res := runSkills(t, environment{}, "email-edit-extractor", "apply-edits", doc, "--edits", edits, "--output", output)
	require.Equal(t, 0, res.code, res.stderr)
	var report struct {
		Status       string `json:"status"`
		EditsApplied int    `json:"edits_applied"`
		Output       string `json:"output"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 1, report.EditsApplied)
	assert.Equal(t, output, report.Output)

	res = runSkills(t, environment{}, "email-edit-extractor", "apply-edits", doc, "--output", output)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `required flag(s) "edits" not set`)
}

func TestSearchPrecedent(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{}, "precedent-finder", "search-precedent")
	assert.Equal(t, 1, res.code)
	assert.JSONEq(t, `{"error":"Must provide query, --clause-type, or --file"}`, res.stdout)

	res = runSkills(t, environment{}, "precedent-finder", "search-precedent", "--clause-type", "indemnification")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No matching clauses found.\n", res.stdout)

	res = runSkills(t, environment{}, "precedent-finder", "search-precedent", "cap", "--top-k", "3", "--output-format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"status":"stub","action":"clauses search","query":"cap","top_k":3,"results":[]}`, res.stdout)
}

func TestShowContextAndAssemble(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{}, "precedent-finder", "show-context", "--clause-id", "c-42")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"status":"stub","action":"show_context","clause_id":"c-42","context_lines":20,"message":"Will retrieve full clause context from database"}`, res.stdout)

	res = runSkills(t, environment{}, "document-assembler", "assemble-document", "--sections", "1:deal-a,2:deal-b", "--output", "out.docx")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"status":"stub","action":"assemble_document","template":null,"sections":{"1":"deal-a","2":"deal-b"},"output":"out.docx","message":"Will assemble document from selected precedent sections"}`, res.stdout)
}

func TestListPrecedents(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{}, "document-assembler", "list-precedents", "--type", "nda")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No precedent deals found for type: nda\n", res.stdout)

	res = runSkills(t, environment{}, "document-assembler", "list-precedents")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `required flag(s) "type" not set`)
}

func TestScanTerms(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "dpa.txt", "The Processor shall only handle Personal Data as permitted under the GDPR.")

	res := runSkills(t, environment{}, "regulatory-monitor", "scan-terms", path)
	require.Equal(t, 0, res.code, res.stderr)
	var report struct {
		TermCount int    `json:"term_count"`
		Source    string `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Positive(t, report.TermCount)
	assert.Equal(t, path, report.Source)

	res = runSkills(t, environment{}, "regulatory-monitor", "scan-terms", filepath.Join(t.TempDir(), "x.pdf"))
	assert.Equal(t, 1, res.code)
}

func TestUnknownSkillCommand(t *testing.T) {
	isolate(t)

	res := runSkills(t, environment{}, "regulatory-monitor", "summarize")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `unknown command "summarize"`)
}
