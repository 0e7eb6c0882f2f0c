package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aechlegal/internal/domain"
)

type fakeCompleter struct {
	reply  string
	err    error
	system string
	user   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	return f.reply, f.err
}

func classificationSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	s, err := SchemaFor[domain.EmailClassification](func(s *jsonschema.Schema) {
		Enum(s, "classification", domain.EmailClassifications)
	})
	require.NoError(t, err)
	return s
}

func TestGenerate_ValidReply(t *testing.T) {
	completer := &fakeCompleter{reply: "```json\n" + `{
  "classification": "approval_request",
  "confidence": 0.8,
  "topic": "Sign-off on the SPA",
  "suggested_action": "Route to partner",
  "reasoning": "Asks for a decision"
}` + "\n```"}

	got, err := Generate[domain.EmailClassification](context.Background(), completer, classificationSchema(t), "Please approve the SPA.")
	require.NoError(t, err)
	assert.Equal(t, domain.EmailClassification{
		Classification:  domain.ClassApprovalRequest,
		Confidence:      0.8,
		Topic:           "Sign-off on the SPA",
		SuggestedAction: "Route to partner",
		Reasoning:       "Asks for a decision",
	}, got)
	assert.Equal(t, "Please approve the SPA.", completer.user)
	assert.Contains(t, completer.system, `"suggested_action"`)
	assert.Contains(t, completer.system, "urgent_action")
}

func TestGenerate_MalformedReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "not json", reply: "I think this is an edit request."},
		{name: "enum violation", reply: `{"classification":"spam","confidence":0.5,"topic":"t","suggested_action":"a","reasoning":"r"}`},
		{name: "missing field", reply: `{"classification":"informational","confidence":0.5}`},
		{name: "wrong type", reply: `{"classification":"informational","confidence":"high","topic":"t","suggested_action":"a","reasoning":"r"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate[domain.EmailClassification](context.Background(), &fakeCompleter{reply: tt.reply}, classificationSchema(t), "text")
			require.ErrorIs(t, err, domain.ErrMalformedOutput)
			code, ok := domain.CodeFrom(err)
			require.True(t, ok)
			assert.Equal(t, domain.CodeMalformedUpstream, code)
		})
	}
}

func TestGenerate_CompleterError(t *testing.T) {
	upstream := domain.E(domain.CodeExternalService, "llm.Complete", "LLM generate: timeout", domain.ErrGeneration)

	_, err := Generate[domain.EmailClassification](context.Background(), &fakeCompleter{err: upstream}, classificationSchema(t), "text")
	require.ErrorIs(t, err, domain.ErrGeneration)
	assert.True(t, errors.Is(err, upstream))
}

func TestGenerate_NullableSection(t *testing.T) {
	s, err := SchemaFor[domain.ExtractedEdits](nil)
	require.NoError(t, err)
	completer := &fakeCompleter{reply: `{
  "edits": [
    {"section": "3.2", "original_text": "30 days", "replacement_text": "60 days", "context": "notice period"},
    {"section": null, "original_text": "Seller", "replacement_text": "Vendor", "context": "defined term"}
  ],
  "summary": "Two edits"
}`}

	got, err := Generate[domain.ExtractedEdits](context.Background(), completer, s, "text")
	require.NoError(t, err)
	require.Len(t, got.Edits, 2)
	require.NotNil(t, got.Edits[0].Section)
	assert.Equal(t, "3.2", *got.Edits[0].Section)
	assert.Nil(t, got.Edits[1].Section)
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFence("  {\"a\":1}\n"))
	assert.Equal(t, "", StripFence("```"))
}
