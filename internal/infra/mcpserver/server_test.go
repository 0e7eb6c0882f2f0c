package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

var testManifest = domain.Manifest{
	Command: "aech-cli-legal",
	Actions: []domain.Action{
		{
			Name:        "classify",
			Description: "Classify email/text content using LLM.",
			Parameters: []domain.Parameter{
				{Name: "input-path", Kind: domain.ParameterArgument, Required: true, Description: "Path to email or text file to classify"},
				{Name: "output", Kind: domain.ParameterOption, Description: "Output JSON file"},
			},
		},
		{
			Name:        "clauses search",
			Description: "Semantic search for similar clauses.",
			Parameters: []domain.Parameter{
				{Name: "query", Kind: domain.ParameterArgument, Required: true, Description: "Clause text or type"},
				{Name: "top-k", Kind: domain.ParameterOption, Description: "Number of results"},
			},
		},
	},
}

func connectClient(t *testing.T, ctx context.Context, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ct, st := mcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	return session
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_ListsActionsAsTools(t *testing.T) {
	ctx := context.Background()
	srv, err := New(testManifest, func(context.Context, []string) (string, error) { return "", nil }, "1.0.0", zap.NewNop())
	require.NoError(t, err)

	session := connectClient(t, ctx, srv.server)
	defer session.Close()

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"classify", "clauses_search"}, names)
}

func TestServer_CallDispatchesArgv(t *testing.T) {
	ctx := context.Background()
	var got []string
	srv, err := New(testManifest, func(_ context.Context, argv []string) (string, error) {
		got = argv
		return `{"status":"stub"}` + "\n", nil
	}, "", nil)
	require.NoError(t, err)

	session := connectClient(t, ctx, srv.server)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "clauses_search",
		Arguments: map[string]any{"query": "indemnity cap", "top-k": 3},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, `{"status":"stub"}`, textOf(t, res))
	require.Equal(t, []string{"clauses", "search", "--top-k=3", "--", "indemnity cap"}, got)
}

func TestServer_CallReportsFailure(t *testing.T) {
	ctx := context.Background()
	srv, err := New(testManifest, func(context.Context, []string) (string, error) {
		return `{"error":"File not found: mail.txt"}`, errors.New("exit status 1")
	}, "", nil)
	require.NoError(t, err)

	session := connectClient(t, ctx, srv.server)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "classify",
		Arguments: map[string]any{"input-path": "mail.txt"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Equal(t, `{"error":"File not found: mail.txt"}`, textOf(t, res))
}

func TestArgv(t *testing.T) {
	action := testManifest.Actions[0]

	argv, err := Argv(action, json.RawMessage(`{"output":"-out.json","input-path":"mail.txt"}`))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"classify", "--output=-out.json", "--", "mail.txt"}, argv); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}

	argv, err = Argv(action, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"classify"}, argv)

	_, err = Argv(action, json.RawMessage(`{"bogus":1,"input-path":"x"}`))
	require.EqualError(t, err, "unknown parameters: bogus")

	_, err = Argv(action, json.RawMessage(`{"input-path":["a"]}`))
	require.ErrorContains(t, err, "parameter input-path")

	search := domain.Action{Name: "clauses search", Parameters: []domain.Parameter{
		{Name: "query", Kind: domain.ParameterArgument, Required: true},
		{Name: "top-k", Kind: domain.ParameterOption},
	}}
	for _, query := range []string{"--help", "-k", "-"} {
		argv, err = Argv(search, json.RawMessage(`{"query":"`+query+`"}`))
		require.NoError(t, err)
		require.Equal(t, []string{"clauses", "search", "--", query}, argv)
	}

	boolAction := domain.Action{Name: "documents convert", Parameters: []domain.Parameter{
		{Name: "preserve-structure", Kind: domain.ParameterOption},
	}}
	argv, err = Argv(boolAction, json.RawMessage(`{"preserve-structure":false}`))
	require.NoError(t, err)
	require.Equal(t, []string{"documents", "convert", "--preserve-structure=false"}, argv)
}

func TestInputSchema(t *testing.T) {
	schema := InputSchema(testManifest.Actions[0])
	require.Equal(t, "object", schema["type"])
	require.Equal(t, []string{"input-path"}, schema["required"])
	properties := schema["properties"].(map[string]any)
	require.Contains(t, properties, "output")

	_, hasRequired := InputSchema(domain.Action{Name: "x"})["required"]
	require.False(t, hasRequired)
}

func TestNewRequiresDispatcher(t *testing.T) {
	_, err := New(testManifest, nil, "", nil)
	require.Error(t, err)
}
