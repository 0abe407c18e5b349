package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
	"github.com/go-harden/rewrite-toolbox/rwtool/pipeline"
)

const listPreviewLen = 80

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("rewrite_prompt",
		mcp.WithDescription("Rewrite a prompt through the transformation chain (synonym substitution, adversarial padding, role wrapper). Returns the rewrite and a rewrite_id for later retrieval."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt to rewrite")),
		mcp.WithNumber("max_length", mcp.Description("Override maximum output length in characters")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible token selection")),
		mcp.WithBoolean("include_role_wrap", mcp.Description("Apply the trailing role-play wrapper step (default from config)")),
	), s.handleRewritePrompt)

	s.mcpServer.AddTool(mcp.NewTool("get_rewrite",
		mcp.WithDescription("Get the full original, sanitized, and rewritten text for a previous rewrite."),
		mcp.WithString("rewrite_id", mcp.Required(), mcp.Description("ID returned by rewrite_prompt")),
	), s.handleGetRewrite)

	s.mcpServer.AddTool(mcp.NewTool("list_rewrites",
		mcp.WithDescription("List rewrites performed in this session, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default all)")),
	), s.handleListRewrites)
}

func (s *Server) handleRewritePrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := s.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rewritten := pipeline.Rewrite(prompt, cfg)
	if rewritten == "" {
		return mcp.NewToolResultError("prompt is empty or whitespace-only"), nil
	}

	sanitized := pipeline.Sanitize(prompt, cfg.MaxLength)
	entry := s.history.Add(prompt, sanitized, rewritten)

	payload, err := json.Marshal(map[string]string{
		"rewrite_id": entry.ID,
		"rewritten":  rewritten,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleGetRewrite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("rewrite_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entry, ok := s.history.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("rewrite not found: %s", id)), nil
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleListRewrites(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)

	type listItem struct {
		ID        string `json:"id"`
		CreatedAt string `json:"created_at"`
		Preview   string `json:"preview"`
	}

	entries := s.history.List(limit)
	items := make([]listItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, listItem{
			ID:        entry.ID,
			CreatedAt: entry.CreatedAt.Format("2006-01-02T15:04:05Z"),
			Preview:   previewString(entry.Rewritten, listPreviewLen),
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// requestConfig layers per-request overrides onto the server config. Invalid
// overrides are rejected here so the error reaches the caller instead of the
// pipeline silently falling back to defaults.
func (s *Server) requestConfig(request mcp.CallToolRequest) (*config.Config, error) {
	cfg := *s.cfg

	args := request.GetArguments()
	if _, ok := args["max_length"]; ok {
		maxLength := request.GetInt("max_length", 0)
		if maxLength <= 0 {
			return nil, fmt.Errorf("max_length must be positive, got %d", maxLength)
		}
		cfg.MaxLength = maxLength
	}
	if _, ok := args["seed"]; ok {
		seed := int64(request.GetInt("seed", 0))
		cfg.RandomSeed = &seed
	}
	if _, ok := args["include_role_wrap"]; ok {
		wrap := request.GetBool("include_role_wrap", cfg.RoleWrapEnabled())
		cfg.IncludeRoleWrap = &wrap
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
