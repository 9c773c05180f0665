// Package mcp exposes validation over the Model Context Protocol, so AI
// agents can check environments and read the schema as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/memory"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// Server wraps a validation engine and exposes it as an MCP server.
type Server struct {
	engine    *envvalidator.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine *envvalidator.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("env-config-validator", strings.TrimSpace(envvalidator.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: validate_env
	validateTool := mcp.NewTool("validate_env",
		mcp.WithDescription("Validate environment variables against the loaded schema. If env is omitted, the server's own environment sources are read."),
		mcp.WithString("env", mcp.Description("JSON object mapping variable names to raw string values (optional)")),
		mcp.WithString("schema", mcp.Description("JSON schema document to validate against instead of the loaded one (optional)")),
		mcp.WithBoolean("allow_unknown", mcp.Description("Suppress warnings for variables not declared in the schema")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: describe_schema
	s.mcpServer.AddTool(mcp.NewTool("describe_schema",
		mcp.WithDescription("Get the loaded schema document, with properties in declaration order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.Marshal(s.engine.Schema())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("marshal failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

// handleValidate runs one validation. Overrides in the arguments (an inline
// environment, an inline schema, the unknown-variable switch) build a one-off
// engine; an override-free call reads the server's own sources.
func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Result, error) {
	envStr, _ := args["env"].(string)
	schemaStr, _ := args["schema"].(string)
	allowUnknown, _ := args["allow_unknown"].(bool)

	if envStr == "" && schemaStr == "" && !allowUnknown {
		return s.engine.Validate(ctx), nil
	}

	target := s.engine.Schema()
	if schemaStr != "" {
		parsed, err := schema.Parse([]byte(schemaStr))
		if err != nil {
			return domain.Result{}, fmt.Errorf("schema rejected: %w", err)
		}
		target = parsed
	}

	opts := []envvalidator.Option{
		envvalidator.WithAllowUnknown(allowUnknown),
	}
	if envStr != "" {
		var env map[string]string
		if err := json.Unmarshal([]byte(envStr), &env); err != nil {
			return domain.Result{}, fmt.Errorf("env rejected: %w", err)
		}
		opts = append(opts, envvalidator.WithSources(memory.NewSource(env)))
	} else {
		opts = append(opts, envvalidator.WithSources(s.engine.Sources()...))
	}

	eng, err := envvalidator.NewFromSchema(target, opts...)
	if err != nil {
		return domain.Result{}, fmt.Errorf("engine construction failed: %w", err)
	}
	return eng.Validate(ctx), nil
}

func (s *Server) registerResources() {
	// EXPOSE: env-validator://schema
	s.mcpServer.AddResource(mcp.NewResource("env-validator://schema", "Declared Environment Schema",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(s.engine.Schema())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "env-validator://schema",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
