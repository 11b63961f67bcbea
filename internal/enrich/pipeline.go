package enrich

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"

	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/progress"
	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

var tracer = otel.Tracer("guru-enrich")

const (
	enrichMaxTokens = 4096
	baseTargetLen   = 8
	videoQuota      = 2
	videosPerQuery  = 5
)

// searcher is the slice of the search-completion client the pipeline needs.
type searcher interface {
	Ask(ctx context.Context, system, user string) (string, []string, error)
}

// videoSearcher is the slice of the video-platform client the pipeline needs.
type videoSearcher interface {
	Configured() bool
	Search(ctx context.Context, query string, max int64) ([]research.Video, error)
}

// recorder is the slice of the store the pipeline writes through.
type recorder interface {
	UpdateColumn(ctx context.Context, id, column string, v any) error
	FinishBaseFields(ctx context.Context, id string, base store.BaseFields, completeness int) error
}

// Pipeline runs the staged enrichment for one persona record.
type Pipeline struct {
	completer llm.Completer
	search    searcher
	video     videoSearcher
	store     recorder
	log       *slog.Logger

	// OnProgress receives stage events for display. Never nil.
	OnProgress progress.Callback
}

func NewPipeline(completer llm.Completer, search searcher, video videoSearcher, st recorder, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		completer:  completer,
		search:     search,
		video:      video,
		store:      st,
		log:        logger,
		OnProgress: progress.NopCallback,
	}
}

// Run executes all stages in order for the given record id. It never
// returns an error: stage failures are logged, the stage's defaults are
// written, and the run continues. Re-running re-issues every external call
// and overwrites every column.
func (p *Pipeline) Run(ctx context.Context, recordID string, bp profile.BusinessProfile, level Level) *Results {
	jobID := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	log := p.log.With("job_id", jobID, "record_id", recordID, "level", string(level))
	log.Info("enrichment started")
	start := time.Now()

	res := &Results{
		JobID:         jobID,
		Level:         level,
		Audience:      defaultAudienceInsights(),
		Videos:        []research.Video{},
		VideoInsights: []string{},
		Modules:       make(map[string]json.RawMessage),
	}

	p.OnProgress(progress.NewEvent(progress.StageAudience, "Researching audience communities", 0.05, start))
	p.runAudienceResearch(ctx, recordID, bp, res, log)

	p.OnProgress(progress.NewEvent(progress.StageVideos, "Searching video platforms", 0.25, start))
	p.runVideoResearch(ctx, recordID, bp, res, log)

	p.runModules(ctx, recordID, bp, res, log, start)

	p.OnProgress(progress.NewEvent(progress.StageBase, "Completing base audience fields", 0.9, start))
	p.runBaseFields(ctx, recordID, bp, res, log)

	done := progress.NewEvent(progress.StageComplete, "Enrichment complete", 1, start)
	done.RecordID = recordID
	p.OnProgress(done)

	log.Info("enrichment finished",
		"pain_points", len(res.Base.PainPoints),
		"goals", len(res.Base.Goals),
		"modules", len(res.Modules),
		"videos", len(res.Videos))
	return res
}

// Stage 0: audience research via the search-completion API. Whatever
// happens, the (possibly default) insights are written to their column.
func (p *Pipeline) runAudienceResearch(ctx context.Context, recordID string, bp profile.BusinessProfile, res *Results, log *slog.Logger) {
	ctx, span := tracer.Start(ctx, "enrich.audience_research")
	defer span.End()

	query := fmt.Sprintf(
		"Research the online audience for %s, a company in the %s industry selling to %s. "+
			"Their goal is %s and their main challenge is %s.",
		orUnknown(bp.CompanyName), orUnknown(bp.Industry), orUnknown(bp.TargetAudience),
		orUnknown(bp.PrimaryGoal), orUnknown(bp.MainChallenge))

	raw, _, err := p.search.Ask(ctx,
		"You are an audience researcher. Answer with a single JSON object and nothing else.",
		query+` Return JSON: {"communities": [..], "pain_points": [..], "goals": [..], `+
			`"values": [..], "language": "..", "sentiment": {"overall": "..", "drivers": [..]}, `+
			`"trending_topics": [..]}`)
	if err != nil {
		log.Warn("audience research failed, keeping defaults", "error", err)
	} else {
		var parsed AudienceInsights
		if llm.DecodeObject(raw, &parsed) {
			mergeAudience(&res.Audience, parsed)
		} else {
			log.Warn("audience research returned no parseable JSON")
		}
	}

	if err := p.store.UpdateColumn(ctx, recordID, store.ColRedditInsights, res.Audience); err != nil {
		log.Warn("write audience insights failed", "error", err)
	}
}

// mergeAudience copies only the keys the response actually carried, so
// missing keys keep their defaults.
func mergeAudience(dst *AudienceInsights, src AudienceInsights) {
	if len(src.Communities) > 0 {
		dst.Communities = src.Communities
	}
	if len(src.PainPoints) > 0 {
		dst.PainPoints = src.PainPoints
	}
	if len(src.Goals) > 0 {
		dst.Goals = src.Goals
	}
	if len(src.Values) > 0 {
		dst.Values = src.Values
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.Sentiment.Overall != "" {
		dst.Sentiment = src.Sentiment
	}
	if len(src.TrendingTopics) > 0 {
		dst.TrendingTopics = src.TrendingTopics
	}
}

// videoQueries returns the query templates for stage 1. Only the first
// videoQuota of them are issued; the third stays here for when the quota
// allows it again.
func videoQueries(bp profile.BusinessProfile) []string {
	return []string{
		strings.TrimSpace(bp.Industry + " marketing strategy"),
		strings.TrimSpace(bp.TargetAudience + " buyer persona"),
		strings.TrimSpace(bp.MainProducts + " customer reviews"),
	}
}

// Stage 1: video research. Skipped (with defaults written) when no API key
// is configured. The insight summarization only runs if at least one video
// was found.
func (p *Pipeline) runVideoResearch(ctx context.Context, recordID string, bp profile.BusinessProfile, res *Results, log *slog.Logger) {
	ctx, span := tracer.Start(ctx, "enrich.video_research")
	defer span.End()

	if !p.video.Configured() {
		log.Warn("video research skipped: no API key configured")
	} else {
		queries := videoQueries(bp)[:videoQuota]
		for _, q := range queries {
			videos, err := p.video.Search(ctx, q, videosPerQuery)
			if err != nil {
				log.Warn("video search failed", "query", q, "error", err)
				continue
			}
			res.Videos = append(res.Videos, videos...)
		}

		if len(res.Videos) > 0 {
			insights, err := p.summarizeVideos(ctx, bp, res.Videos)
			if err != nil {
				log.Warn("video summarization failed", "error", err)
			} else {
				res.VideoInsights = insights
			}
		}
	}

	if err := p.store.UpdateColumn(ctx, recordID, store.ColYouTubeResearch, res.Videos); err != nil {
		log.Warn("write video list failed", "error", err)
	}
	if err := p.store.UpdateColumn(ctx, recordID, store.ColVideoInsights, res.VideoInsights); err != nil {
		log.Warn("write video insights failed", "error", err)
	}
}

func (p *Pipeline) summarizeVideos(ctx context.Context, bp profile.BusinessProfile, videos []research.Video) ([]string, error) {
	var list strings.Builder
	for _, v := range videos {
		fmt.Fprintf(&list, "- %s (%s, %d views)\n", v.Title, v.Channel, v.Views)
	}

	raw, err := p.completer.Complete(ctx, llm.Request{
		Model: llm.ModelEnrich,
		System: "You extract marketing insights from video listings. " +
			"Answer with a single JSON object and nothing else.",
		Messages: []llm.Message{{Role: "user", Content: fmt.Sprintf(
			"These videos rank for the %s audience in %s:\n%s\n"+
				`Give 5 insights about what content works here. Return JSON: {"insights": ["..", "..", "..", "..", ".."]}`,
			orUnknown(bp.TargetAudience), orUnknown(bp.Industry), list.String())}},
		MaxTokens: enrichMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Insights []string `json:"insights"`
	}
	if !llm.DecodeObject(raw, &parsed) {
		return nil, fmt.Errorf("video summary returned no parseable JSON")
	}
	return parsed.Insights, nil
}

// Stage 2: module generation. Each module is generated and persisted
// independently, immediately, in fixed order; one module's failure leaves
// an empty object in memory and on disk and the loop continues.
func (p *Pipeline) runModules(ctx context.Context, recordID string, bp profile.BusinessProfile, res *Results, log *slog.Logger, start time.Time) {
	ctx, span := tracer.Start(ctx, "enrich.modules")
	defer span.End()

	total := res.Level.ModuleCount()
	for i, module := range moduleOrder[:total] {
		ev := progress.NewEvent(progress.StageModules,
			fmt.Sprintf("Generating %s (%d/%d)", module, i+1, total),
			0.35+0.5*float64(i)/float64(total), start)
		ev.ModuleNum, ev.ModuleTotal = i+1, total
		p.OnProgress(ev)

		obj := p.generateModule(ctx, module, bp, res.Audience, log)
		res.Modules[module] = obj
		if err := p.store.UpdateColumn(ctx, recordID, module, obj); err != nil {
			log.Warn("write module failed", "module", module, "error", err)
		}
	}
}

func (p *Pipeline) generateModule(ctx context.Context, module string, bp profile.BusinessProfile, audience AudienceInsights, log *slog.Logger) json.RawMessage {
	empty := json.RawMessage("{}")

	raw, err := p.completer.Complete(ctx, llm.Request{
		Model:     llm.ModelEnrich,
		System:    "You are a marketing persona researcher. Answer with a single JSON object and nothing else.",
		Messages:  []llm.Message{{Role: "user", Content: modulePrompt(module, bp, audience)}},
		MaxTokens: enrichMaxTokens,
	})
	if err != nil {
		log.Warn("module generation failed", "module", module, "error", err)
		return empty
	}

	obj, ok := llm.ExtractObject(raw)
	if !ok {
		log.Warn("module returned no parseable JSON", "module", module)
		return empty
	}
	return obj
}

// Stage 3: base-field backfill. When stage 0 already met the target list
// lengths its findings pass through untouched; otherwise one completion
// merges and extends them. Either way the four columns and the completion
// flag are written together.
func (p *Pipeline) runBaseFields(ctx context.Context, recordID string, bp profile.BusinessProfile, res *Results, log *slog.Logger) {
	ctx, span := tracer.Start(ctx, "enrich.base_fields")
	defer span.End()

	res.Base = store.BaseFields{
		PainPoints:  res.Audience.PainPoints,
		Goals:       res.Audience.Goals,
		Values:      res.Audience.Values,
		Communities: res.Audience.Communities,
	}

	if len(res.Base.PainPoints) < baseTargetLen || len(res.Base.Goals) < baseTargetLen {
		p.backfillBase(ctx, bp, res, log)
	}

	// research_completeness is written as 100 whenever the pipeline
	// reaches this point, regardless of how the earlier stages fared;
	// the UI treats it as "has run", not as a quality score.
	if err := p.store.FinishBaseFields(ctx, recordID, res.Base, 100); err != nil {
		log.Warn("write base fields failed", "error", err)
	}
}

func (p *Pipeline) backfillBase(ctx context.Context, bp profile.BusinessProfile, res *Results, log *slog.Logger) {
	existing, _ := json.Marshal(res.Base)

	raw, err := p.completer.Complete(ctx, llm.Request{
		Model: llm.ModelEnrich,
		System: "You complete partial audience research. Prefer the provided findings; " +
			"invent only to fill gaps. Answer with a single JSON object and nothing else.",
		Messages: []llm.Message{{Role: "user", Content: fmt.Sprintf(
			"Audience: %s in %s. Partial findings: %s\n"+
				"Complete each list to %d entries, keeping every existing entry. "+
				`Return JSON: {"pain_points": [..], "goals": [..], "values": [..], "communities": [..]}`,
			orUnknown(bp.TargetAudience), orUnknown(bp.Industry), existing, baseTargetLen)}},
		MaxTokens: enrichMaxTokens,
	})
	if err != nil {
		log.Warn("base-field backfill failed, keeping partial findings", "error", err)
		return
	}

	var parsed store.BaseFields
	if !llm.DecodeObject(raw, &parsed) {
		log.Warn("base-field backfill returned no parseable JSON, keeping partial findings")
		return
	}
	res.Base = parsed
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
