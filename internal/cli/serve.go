package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavenly/guru/internal/enrich"
	"github.com/mavenly/guru/internal/httpapi"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/mcpserver"
	"github.com/mavenly/guru/internal/observability"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Run the MCP server for agent integrations",
	RunE:  runMCPServer,
}

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides GURU_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	ctx := cmd.Context()

	tp, err := observability.InitTracer(ctx, "guru-api", Version)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	if tp != nil {
		defer tp.Shutdown(ctx)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	completer := llm.NewClient()
	pipe := enrich.NewPipeline(
		completer,
		research.NewPerplexityClient(cfg.PerplexityAPIKey),
		research.NewYouTubeClient(cfg.YouTubeAPIKey),
		st, log)

	srv := httpapi.NewServer(persona.Default(), completer, pipe, st, log)

	addr := cfg.Addr
	if flagAddr != "" {
		addr = flagAddr
	}
	return srv.Run(addr)
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	ctx := cmd.Context()

	tp, err := observability.InitTracer(ctx, "guru-mcp", Version)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	if tp != nil {
		defer tp.Shutdown(ctx)
	}

	trends := research.NewTrendAnalysis(research.NewPerplexityClient(cfg.PerplexityAPIKey))
	srv := mcpserver.New(mcpserver.Config{Port: cfg.MCPPort}, persona.Default(), llm.NewClient(), trends, log)
	return srv.Start()
}
