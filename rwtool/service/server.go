package service

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
	"github.com/go-harden/rewrite-toolbox/rwtool/service/store"
)

// Server exposes the rewriting pipeline as an MCP stdio server.
type Server struct {
	cfg       *config.Config
	history   *store.HistoryStore
	mcpServer *server.MCPServer
}

// NewServer loads the config and prepares the MCP server with its tools.
func NewServer(flags DaemonFlags) (*Server, error) {
	path := flags.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadOrDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		history:   store.NewHistoryStore(),
		mcpServer: server.NewMCPServer("rwtool", config.Version),
	}
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the client disconnects.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
