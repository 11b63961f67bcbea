package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mavenly/guru/internal/chat"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/recommend"
	"github.com/mavenly/guru/internal/research"
)

var tracer = otel.Tracer("guru-mcp")

// ToolDefs returns the MCP tool definitions.
func ToolDefs() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "recommend_experts",
			Description: "Score the marketing-expert catalogue against a business profile and return the best matches with reasons. Deterministic: same profile always gives the same ranking.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"company_name": map[string]any{
						"type":        "string",
						"description": "Company name",
					},
					"industry": map[string]any{
						"type":        "string",
						"description": "Industry, e.g. ecommerce, luxury, coaching",
					},
					"target_audience": map[string]any{
						"type":        "string",
						"description": "Who the business sells to",
					},
					"primary_goal": map[string]any{
						"type":        "string",
						"description": "Primary marketing goal, e.g. growth, brand, leads",
					},
					"main_challenge": map[string]any{
						"type":        "string",
						"description": "The biggest current marketing problem",
					},
					"main_products": map[string]any{
						"type":        "string",
						"description": "What the business sells",
					},
					"top_n": map[string]any{
						"type":        "integer",
						"description": "Maximum number of recommendations (default all)",
					},
				},
			},
		},
		{
			Name:        "chat_expert",
			Description: "Send one message to a named marketing expert persona and get their in-character reply. Pass prior turns in history to continue a conversation.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"persona": map[string]any{
						"type":        "string",
						"description": "Exact persona name, e.g. \"Claude Hopkins\" (see recommend_experts)",
					},
					"message": map[string]any{
						"type":        "string",
						"description": "The user's message",
					},
					"history": map[string]any{
						"type":        "string",
						"description": "Prior turns as a JSON array of {role, content} objects",
					},
					"user_id": map[string]any{
						"type":        "string",
						"description": "Stable user identifier for memory lookups",
					},
				},
				Required: []string{"persona", "message"},
			},
		},
		{
			Name:        "research_trends",
			Description: "Run a live trend analysis for a marketing topic and return findings with sources.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"topic": map[string]any{
						"type":        "string",
						"description": "Topic or market to analyze",
					},
				},
				Required: []string{"topic"},
			},
		},
	}
}

// Handlers contains tool handler implementations.
type Handlers struct {
	registry  *persona.Registry
	completer llm.Completer
	trends    research.Tool
	log       *slog.Logger
}

// NewHandlers creates tool handlers.
func NewHandlers(registry *persona.Registry, completer llm.Completer, trends research.Tool, logger *slog.Logger) *Handlers {
	return &Handlers{registry: registry, completer: completer, trends: trends, log: logger}
}

// HandleRecommendExperts scores the catalogue against the submitted profile.
func (h *Handlers) HandleRecommendExperts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.recommend_experts")
	defer span.End()

	bp := profile.BusinessProfile{
		CompanyName:    mcp.ParseString(req, "company_name", ""),
		Industry:       mcp.ParseString(req, "industry", ""),
		TargetAudience: mcp.ParseString(req, "target_audience", ""),
		PrimaryGoal:    mcp.ParseString(req, "primary_goal", ""),
		MainChallenge:  mcp.ParseString(req, "main_challenge", ""),
		MainProducts:   mcp.ParseString(req, "main_products", ""),
	}
	topN := parseIntParam(req, "top_n", 0)

	span.SetAttributes(
		attribute.String("industry", bp.Industry),
		attribute.String("primary_goal", bp.PrimaryGoal),
		attribute.Int("top_n", topN),
	)

	recs := recommend.Recommendations(h.registry.All(), bp, topN)
	h.log.InfoContext(ctx, "Recommendations computed", "count", len(recs))

	return jsonResult(map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// HandleChatExpert forwards one turn to a persona.
func (h *Handlers) HandleChatExpert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.chat_expert")
	defer span.End()

	name := mcp.ParseString(req, "persona", "")
	message := mcp.ParseString(req, "message", "")
	userID := mcp.ParseString(req, "user_id", "mcp")

	span.SetAttributes(attribute.String("persona", name))

	if name == "" || message == "" {
		span.SetStatus(codes.Error, "missing input")
		return mcp.NewToolResultError("persona and message are required"), nil
	}

	p, ok := h.registry.Get(name)
	if !ok {
		span.SetStatus(codes.Error, "unknown persona")
		return mcp.NewToolResultError(fmt.Sprintf("unknown persona %q; call recommend_experts to list the catalogue", name)), nil
	}

	var history []llm.Message
	if raw := mcp.ParseString(req, "history", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			span.SetStatus(codes.Error, "bad history")
			return mcp.NewToolResultError("history must be a JSON array of {role, content} objects"), nil
		}
	}

	fwd := chat.NewForwarder(h.completer, p)
	raw, err := fwd.Chat(ctx, history, message, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		return mcp.NewToolResultError(fmt.Sprintf("completion failed: %v", err)), nil
	}

	reply := chat.ParseReply(raw)
	result := map[string]any{
		"persona": p.Name,
		"reply":   reply.Text,
	}
	if reply.Kind == chat.ReplyToolRequest {
		result["tool_request"] = map[string]string{
			"tool":     reply.Tool,
			"argument": reply.Argument,
		}
	}

	h.log.InfoContext(ctx, "Chat turn completed", "persona", p.Name)
	return jsonResult(result)
}

// HandleResearchTrends runs the live trend analysis tool.
func (h *Handlers) HandleResearchTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.research_trends")
	defer span.End()

	topic := mcp.ParseString(req, "topic", "")
	if topic == "" {
		span.SetStatus(codes.Error, "missing topic")
		return mcp.NewToolResultError("topic is required"), nil
	}

	span.SetAttributes(attribute.String("topic", topic))

	res, err := h.trends.Run(ctx, topic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "research failed")
		return mcp.NewToolResultError(fmt.Sprintf("trend research failed: %v", err)), nil
	}

	return jsonResult(res)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func parseIntParam(req mcp.CallToolRequest, key string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	raw, ok := args[key]
	if !ok {
		return defaultVal
	}
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultVal
	}
}
