// Package httpapi exposes the persona catalogue, recommendation scoring,
// chat, and enrichment over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mavenly/guru/internal/chat"
	"github.com/mavenly/guru/internal/enrich"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/recommend"
	"github.com/mavenly/guru/internal/store"
)

// enrichRunner is the slice of the enrichment pipeline the server needs.
type enrichRunner interface {
	Run(ctx context.Context, recordID string, bp profile.BusinessProfile, level enrich.Level) *enrich.Results
}

// recordKeeper is the slice of the store the server needs.
type recordKeeper interface {
	EnsureRecord(ctx context.Context, id string) error
	GetRecord(ctx context.Context, id string) (*store.Record, error)
}

// Server wires the domain packages behind a gin router.
type Server struct {
	registry  *persona.Registry
	completer llm.Completer
	enricher  enrichRunner
	records   recordKeeper
	log       *slog.Logger
	router    *gin.Engine
}

func NewServer(registry *persona.Registry, completer llm.Completer, enricher enrichRunner, records recordKeeper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		registry:  registry,
		completer: completer,
		enricher:  enricher,
		records:   records,
		log:       logger,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", s.handleHealth)
	r.GET("/api/personas", s.handlePersonas)
	r.POST("/api/recommendations", s.handleRecommendations)
	r.POST("/api/chat", s.handleChat)
	r.POST("/api/personas/:id/enrich", s.handleEnrich)
	r.GET("/api/personas/:id/enrichment", s.handleEnrichment)

	s.router = r
	return s
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler { return s.router }

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("http server listening", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type personaSummary struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Expertise   []string `json:"expertise"`
	ActiveYears string   `json:"active_years"`
}

func (s *Server) handlePersonas(c *gin.Context) {
	all := s.registry.All()
	out := make([]personaSummary, 0, len(all))
	for _, p := range all {
		out = append(out, personaSummary{
			Name:        p.Name,
			Title:       p.Title,
			Expertise:   p.Expertise,
			ActiveYears: p.ActiveYears,
		})
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

type recommendRequest struct {
	Profile profile.BusinessProfile `json:"profile"`
	TopN    int                     `json:"top_n"`
}

func (s *Server) handleRecommendations(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	recs := recommend.Recommendations(s.registry.All(), req.Profile, req.TopN)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

type chatRequest struct {
	Persona string        `json:"persona" binding:"required"`
	Message string        `json:"message" binding:"required"`
	History []llm.Message `json:"history"`
	UserID  string        `json:"user_id"`
	Context string        `json:"context"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Tool     string `json:"tool,omitempty"`
	Argument string `json:"argument,omitempty"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "persona and message are required"})
		return
	}

	p, ok := s.registry.Get(req.Persona)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown persona: " + req.Persona})
		return
	}

	fwd := chat.NewForwarder(s.completer, p)
	fwd.PersonaContext = req.Context
	raw, err := fwd.Chat(c.Request.Context(), req.History, req.Message, req.UserID)
	if err != nil {
		s.log.Error("chat completion failed", "persona", req.Persona, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "completion failed"})
		return
	}

	reply := chat.ParseReply(raw)
	resp := chatResponse{Reply: reply.Text}
	if reply.Kind == chat.ReplyToolRequest {
		resp.Tool = reply.Tool
		resp.Argument = reply.Argument
	}
	c.JSON(http.StatusOK, resp)
}

type enrichRequest struct {
	Profile profile.BusinessProfile `json:"profile"`
	Level   enrich.Level            `json:"level"`
}

// handleEnrich seeds the record and starts the pipeline in the background.
// The response confirms acceptance only; progress lands in the database.
func (s *Server) handleEnrich(c *gin.Context) {
	recordID := c.Param("id")

	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Level == "" {
		req.Level = enrich.LevelQuick
	}

	if err := s.records.EnsureRecord(c.Request.Context(), recordID); err != nil {
		s.log.Error("seed enrichment record failed", "record_id", recordID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create record"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.enricher.Run(ctx, recordID, req.Profile, req.Level)
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"status":    "started",
		"record_id": recordID,
		"level":     req.Level,
	})
}

func (s *Server) handleEnrichment(c *gin.Context) {
	recordID := c.Param("id")
	rec, err := s.records.GetRecord(c.Request.Context(), recordID)
	if err != nil {
		s.log.Error("read enrichment record failed", "record_id", recordID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read record"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no enrichment record: " + recordID})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           rec.ID,
		"columns":      rec.Columns,
		"completeness": rec.Completeness,
		"updated_at":   rec.UpdatedAt,
	})
}
