package actions

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
	user  string
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, user string) (string, error) {
	f.calls++
	f.user = user
	return f.reply, f.err
}

func newTestService(completer *fakeCompleter) *Service {
	opts := Options{Logger: zap.NewNop()}
	if completer != nil {
		opts.Completer = completer
	}
	return NewService(opts)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "spa.docx", "docx")
	outDir := filepath.Join(dir, "out", "md")

	got, err := newTestService(nil).Convert(context.Background(), ConvertRequest{InputPath: input, OutputDir: outDir, PreserveStructure: true})
	require.NoError(t, err)
	assert.DirExists(t, outDir)
	assert.JSONEq(t, `{"status":"stub","action":"documents convert","input":"`+input+`","output_dir":"`+outDir+`","preserve_structure":true}`, toJSON(t, got))
}

func TestConvert_MissingInputHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.docx")
	outDir := filepath.Join(dir, "out")

	_, err := newTestService(nil).Convert(context.Background(), ConvertRequest{InputPath: missing, OutputDir: outDir})
	require.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Equal(t, "File not found: "+missing, domain.MessageOf(err))
	assert.NoDirExists(t, outDir)
}

func TestEdit(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "spa.docx", "docx")
	output := filepath.Join(dir, "edited", "spa.docx")

	got, err := newTestService(nil).Edit(context.Background(), EditRequest{InputPath: input, Section: "3.2", Output: output})
	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(output))
	assert.Nil(t, got.Content)
	assert.JSONEq(t, `{"status":"stub","action":"documents edit","input":"`+input+`","section":"3.2","content":null,"output":"`+output+`"}`, toJSON(t, got))
}

func TestRedline_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	original := writeFile(t, dir, "v1.docx", "v1")
	missing := filepath.Join(dir, "v2.docx")
	output := filepath.Join(dir, "out", "redline.docx")
	svc := newTestService(nil)

	_, err := svc.Redline(context.Background(), RedlineRequest{Original: missing, Modified: original, Output: output})
	require.Error(t, err)
	assert.Equal(t, "Original file not found: "+missing, domain.MessageOf(err))

	_, err = svc.Redline(context.Background(), RedlineRequest{Original: original, Modified: missing, Output: output})
	require.Error(t, err)
	assert.Equal(t, "Modified file not found: "+missing, domain.MessageOf(err))
	assert.NoDirExists(t, filepath.Dir(output))

	modified := writeFile(t, dir, "v2.docx", "v2")
	got, err := svc.Redline(context.Background(), RedlineRequest{Original: original, Modified: modified, Output: output})
	require.NoError(t, err)
	assert.Equal(t, "documents redline", got.Action)
	assert.DirExists(t, filepath.Dir(output))
}

func TestStubActions(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "closing.docx", "docx")
	parties := writeFile(t, dir, "parties.json", "[]")
	svc := newTestService(nil)
	ctx := context.Background()

	search, err := svc.SearchClauses(ctx, ClauseSearchRequest{Query: "indemnification cap"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"stub","action":"clauses search","query":"indemnification cap","top_k":5,"results":[]}`, toJSON(t, search))

	index, err := svc.IndexClauses(ctx, ClauseIndexRequest{InputPath: input, DealName: "Project Falcon"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"stub","action":"clauses index","input":"`+input+`","deal_name":"Project Falcon","deal_date":null,"clauses_indexed":0}`, toJSON(t, index))

	cases, err := svc.ResearchCases(ctx, ResearchRequest{Query: "MAC clause", Jurisdiction: "US-Federal"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"stub","action":"research cases","query":"MAC clause","jurisdiction":"US-Federal","results":[]}`, toJSON(t, cases))

	statutes, err := svc.ResearchStatutes(ctx, ResearchRequest{Query: "HSR thresholds"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"stub","action":"research statutes","query":"HSR thresholds","jurisdiction":null,"results":[]}`, toJSON(t, statutes))

	connect, err := svc.ConnectDataroom(ctx, ConnectRequest{Provider: "intralinks", ProjectID: "p-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"stub","action":"dataroom connect","provider":"intralinks","project_id":"p-1","session":null}`, toJSON(t, connect))

	outDir := filepath.Join(dir, "downloads")
	download, err := svc.DownloadDocument(ctx, DownloadRequest{DocID: "doc-9", OutputDir: outDir})
	require.NoError(t, err)
	assert.DirExists(t, outDir)
	assert.JSONEq(t, `{"status":"stub","action":"dataroom download","doc_id":"doc-9","output_dir":"`+outDir+`","local_path":null}`, toJSON(t, download))

	sig, err := svc.GenerateSigpages(ctx, SigpageRequest{Parties: parties, Output: filepath.Join(dir, "sig", "pages.docx")})
	require.NoError(t, err)
	assert.Equal(t, "standard", sig.Template)

	_, err = svc.GenerateSigpages(ctx, SigpageRequest{Parties: filepath.Join(dir, "nobody.json"), Output: filepath.Join(dir, "x.docx")})
	require.Error(t, err)
	assert.Equal(t, "Parties file not found: "+filepath.Join(dir, "nobody.json"), domain.MessageOf(err))
}

func TestStubFieldOrder(t *testing.T) {
	got := toJSON(t, ClauseSearchResult{Status: "stub", Action: "clauses search", Query: "q", TopK: 3, Results: []any{}})
	assert.Equal(t, `{"status":"stub","action":"clauses search","query":"q","top_k":3,"results":[]}`, got)
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "email.txt", "Please sign off on the SPA by Friday.")
	completer := &fakeCompleter{reply: `{"classification":"approval_request","confidence":0.9,"topic":"SPA sign-off","suggested_action":"Route to partner","reasoning":"Requests approval"}`}

	got, err := newTestService(completer).Classify(context.Background(), input)
	require.NoError(t, err)
	want := ClassifyResult{
		EmailClassification: domain.EmailClassification{
			Classification:  domain.ClassApprovalRequest,
			Confidence:      0.9,
			Topic:           "SPA sign-off",
			SuggestedAction: "Route to partner",
			Reasoning:       "Requests approval",
		},
		Source: input,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Classify mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, completer.user, "Please sign off on the SPA by Friday.")

	var flat map[string]any
	require.NoError(t, json.Unmarshal([]byte(toJSON(t, got)), &flat))
	assert.Equal(t, input, flat["source"])
	assert.Equal(t, "approval_request", flat["classification"])
}

func TestClassify_Failures(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "email.txt", "hello")

	missing := filepath.Join(dir, "missing.txt")
	completer := &fakeCompleter{}
	_, err := newTestService(completer).Classify(context.Background(), missing)
	require.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Zero(t, completer.calls, "no LLM call for a missing input")

	upstream := domain.E(domain.CodeExternalService, "llm.Complete", "LLM generate: boom", domain.ErrGeneration)
	_, err = newTestService(&fakeCompleter{err: upstream}).Classify(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrGeneration)
	assert.Equal(t, "LLM classification failed: LLM generate: boom", domain.MessageOf(err))

	_, err = newTestService(&fakeCompleter{reply: "not json"}).Classify(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrMalformedOutput)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeMalformedUpstream, code)

	_, err = newTestService(nil).Classify(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrGeneration)
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "dpa.md", "The processor handles personal data under GDPR.")
	completer := &fakeCompleter{reply: `{"regulatory_categories":{"data_privacy":["GDPR"]},"jurisdictions":["EU"],"risk_level":"medium","key_concerns":["cross-border transfers"],"reasoning":"Processes EU personal data"}`}

	got, err := newTestService(completer).Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, input, got.Source)
	assert.Equal(t, domain.RiskMedium, got.RiskLevel)
	assert.Equal(t, map[string][]string{"data_privacy": {"GDPR"}}, got.RegulatoryCategories)
}

func TestAnalyze_TruncatesDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "long.txt", "abcdefghij")
	completer := &fakeCompleter{reply: `{"regulatory_categories":{},"jurisdictions":[],"risk_level":"none","key_concerns":[],"reasoning":"none"}`}
	svc := NewService(Options{Completer: completer, MaxAnalyzeChars: 4})

	_, err := svc.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, completer.user, "abcd\n")
	assert.NotContains(t, completer.user, "abcde")
}

func TestAnalyze_RejectsRiskOutsideEnum(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.txt", "text")
	completer := &fakeCompleter{reply: `{"regulatory_categories":{},"jurisdictions":[],"risk_level":"extreme","key_concerns":[],"reasoning":"r"}`}

	_, err := newTestService(completer).Analyze(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrMalformedOutput)
	assert.Contains(t, domain.MessageOf(err), "LLM analysis failed")
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "scan.pdf", "%PDF")
	completer := &fakeCompleter{}

	_, err := newTestService(completer).Analyze(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Equal(t, "Unsupported file type: .pdf", domain.MessageOf(err))
	assert.Zero(t, completer.calls)
}

func TestExtractEdits(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "email.txt", "In Section 3.2 change 30 days to 60 days.")
	completer := &fakeCompleter{reply: `{"edits":[{"section":"3.2","original_text":"30 days","replacement_text":"60 days","context":"notice"}],"summary":"Extend notice"}`}

	got, err := newTestService(completer).ExtractEdits(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, got.EditCount)
	assert.Equal(t, input, got.Source)
	require.NotNil(t, got.Edits[0].Section)
	assert.Equal(t, "3.2", *got.Edits[0].Section)
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	result := ExtractionResult{
		ExtractedEdits: domain.ExtractedEdits{Edits: []domain.EditInstruction{}, Summary: "none"},
		Source:         "email.txt",
	}

	summary, err := WriteOutput(path, result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"complete","output":"`+path+`","edit_count":0}`, toJSON(t, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"edits":[],"summary":"none","source":"email.txt","edit_count":0}`, string(data))

	classified := ClassifyResult{EmailClassification: domain.EmailClassification{Classification: domain.ClassUrgentAction}}
	summary, err = WriteOutput(path, classified)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"complete","output":"`+path+`","classification":"urgent_action"}`, toJSON(t, summary))

	summary, err = WriteOutput(path, AnalysisResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"complete","output":"`+path+`"}`, toJSON(t, summary))

	_, err = WriteOutput(filepath.Join(dir, "missing", "result.json"), result)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInputNotFound))
}
