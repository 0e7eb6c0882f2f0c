package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"aechlegal/internal/domain"
)

const structuredSystemPrompt = `You are a legal workflow assistant.
Reply with a single JSON object that conforms to the JSON Schema below.
Do not wrap the object in Markdown and do not add any other text.

JSON Schema:
`

// SchemaFor infers the JSON Schema of T. customize may tighten the inferred
// schema, for example with enums.
func SchemaFor[T any](customize func(*jsonschema.Schema)) (*jsonschema.Schema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("infer schema: %w", err)
	}
	if customize != nil {
		customize(s)
	}
	return s, nil
}

// Generate asks the completer for a value of type T, validating the reply
// against schema before decoding it.
func Generate[T any](ctx context.Context, completer Completer, s *jsonschema.Schema, prompt string) (T, error) {
	const op = "llm.Generate"
	var zero T

	resolved, err := s.Resolve(nil)
	if err != nil {
		return zero, domain.E(domain.CodeInternal, op, fmt.Sprintf("resolve schema: %v", err), err)
	}
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return zero, domain.E(domain.CodeInternal, op, fmt.Sprintf("encode schema: %v", err), err)
	}

	reply, err := completer.Complete(ctx, structuredSystemPrompt+string(schemaJSON), prompt)
	if err != nil {
		return zero, err
	}

	body := StripFence(reply)
	var instance any
	if err := json.Unmarshal([]byte(body), &instance); err != nil {
		return zero, malformed(op, fmt.Errorf("invalid JSON response: %w", err))
	}
	if err := resolved.Validate(instance); err != nil {
		return zero, malformed(op, fmt.Errorf("response does not match schema: %w", err))
	}
	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return zero, malformed(op, fmt.Errorf("decode response: %w", err))
	}
	return out, nil
}

// StripFence removes a surrounding ``` or ```json block.
func StripFence(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = ""
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func malformed(op string, err error) error {
	return domain.E(domain.CodeMalformedUpstream, op, err.Error(), fmt.Errorf("%w: %w", domain.ErrMalformedOutput, err))
}

// Enum restricts a top-level string property to values.
func Enum[V ~string](s *jsonschema.Schema, property string, values []V) {
	prop, ok := s.Properties[property]
	if !ok || prop == nil {
		return
	}
	prop.Enum = make([]any, 0, len(values))
	for _, v := range values {
		prop.Enum = append(prop.Enum, string(v))
	}
}
