// Package mcpserver exposes the persona catalogue over the Model Context
// Protocol so other agents can request recommendations, chat turns, and
// trend research.
package mcpserver

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/research"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server is the MCP server for persona consultations.
type Server struct {
	cfg      Config
	mcp      *server.MCPServer
	handlers *Handlers
	log      *slog.Logger
}

// New creates and configures the MCP server.
func New(cfg Config, registry *persona.Registry, completer llm.Completer, trends research.Tool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	handlers := NewHandlers(registry, completer, trends, logger)

	mcpServer := server.NewMCPServer(
		"guru",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools := ToolDefs()
	mcpServer.AddTool(tools[0], handlers.HandleRecommendExperts)
	mcpServer.AddTool(tools[1], handlers.HandleChatExpert)
	mcpServer.AddTool(tools[2], handlers.HandleResearchTrends)

	return &Server{cfg: cfg, mcp: mcpServer, handlers: handlers, log: logger}
}

// Start runs the HTTP MCP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("Starting MCP server", "addr", addr)

	httpServer := server.NewStreamableHTTPServer(s.mcp,
		server.WithStateLess(true),
	)
	return httpServer.Start(addr)
}
