// Package mcpserver exposes manifest actions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/telemetry"
)

// Dispatcher runs one CLI invocation and returns what it printed on stdout.
type Dispatcher func(ctx context.Context, argv []string) (string, error)

type Server struct {
	server   *mcp.Server
	dispatch Dispatcher
	logger   *zap.Logger
	tools    []string
}

func New(manifest domain.Manifest, dispatch Dispatcher, version string, logger *zap.Logger) (*Server, error) {
	if dispatch == nil {
		return nil, errors.New("dispatcher is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if version == "" {
		version = "dev"
	}
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    manifest.Command,
			Version: version,
		}, &mcp.ServerOptions{HasTools: true}),
		dispatch: dispatch,
		logger:   logger.Named("mcp"),
	}
	for _, action := range manifest.Actions {
		tool := &mcp.Tool{
			Name:        ToolName(action.Name),
			Description: action.Description,
			InputSchema: InputSchema(action),
		}
		s.server.AddTool(tool, s.handler(action))
		s.tools = append(s.tools, tool.Name)
	}
	return s, nil
}

func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting (stdio transport)", zap.Int("tools", len(s.tools)))
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// ToolName maps "documents analyze" to "documents_analyze".
func ToolName(action string) string {
	return strings.ReplaceAll(action, " ", "_")
}

// InputSchema describes the action parameters as an object schema. Values may
// be strings, numbers or booleans; the command's own flag parsing validates them.
func InputSchema(action domain.Action) map[string]any {
	properties := make(map[string]any, len(action.Parameters))
	required := make([]string, 0, len(action.Parameters))
	for _, param := range action.Parameters {
		properties[param.Name] = map[string]any{
			"type":        []string{"string", "number", "integer", "boolean"},
			"description": param.Description,
		}
		if param.Required {
			required = append(required, param.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Argv converts tool arguments into a command line: action words, then
// positionals in declaration order, then --name=value options.
func Argv(action domain.Action, raw json.RawMessage) ([]string, error) {
	args := map[string]any{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}

	known := make(map[string]struct{}, len(action.Parameters))
	for _, param := range action.Parameters {
		known[param.Name] = struct{}{}
	}
	var unknown []string
	for name := range args {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown parameters: %s", strings.Join(unknown, ", "))
	}

	argv := strings.Fields(action.Name)
	var positionals []string
	for _, param := range action.Parameters {
		value, ok := args[param.Name]
		if !ok || value == nil {
			continue
		}
		text, err := formatValue(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", param.Name, err)
		}
		if param.Kind == domain.ParameterArgument {
			positionals = append(positionals, text)
			continue
		}
		argv = append(argv, "--"+param.Name+"="+text)
	}
	if len(positionals) == 0 {
		return argv, nil
	}
	// Positionals go after "--" so values such as "--help" or "-k" are not
	// parsed as flags.
	argv = append(argv, "--")
	return append(argv, positionals...), nil
}

func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

func (s *Server) handler(action domain.Action) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}
		argv, err := Argv(action, raw)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		out, err := s.dispatch(ctx, argv)
		out = strings.TrimSpace(out)
		if err != nil {
			s.logger.Debug("tool call failed", telemetry.EventField(telemetry.EventToolCall), telemetry.ActionField(action.Name), zap.Error(err))
			if out == "" {
				out = err.Error()
			}
			return errorResult(out), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: out}},
		}, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
