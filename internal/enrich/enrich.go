// Package enrich implements the best-effort pipeline that populates a
// persona enrichment record from external research sources.
//
// The pipeline never fails as a whole: every stage catches its own errors,
// logs them, and writes whatever it has (possibly defaults) before the next
// stage starts. Callers learn how well a run went by inspecting the result,
// not from an error value.
package enrich

import (
	"encoding/json"

	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

// Level selects how many insight modules stage 2 generates.
type Level string

const (
	LevelQuick     Level = "quick"
	LevelStrategic Level = "strategic"
	LevelComplete  Level = "complete"
)

// ModuleCount maps a level to its module budget. Unknown levels get the
// quick treatment.
func (l Level) ModuleCount() int {
	switch l {
	case LevelComplete:
		return 8
	case LevelStrategic:
		return 6
	default:
		return 3
	}
}

// Sentiment summarizes audience mood. Overall defaults to "neutral" and
// stays there when research fails.
type Sentiment struct {
	Overall string   `json:"overall"`
	Drivers []string `json:"drivers"`
}

// AudienceInsights is the stage-0 output shape. Missing keys in the API
// response keep their zero values here.
type AudienceInsights struct {
	Communities    []string  `json:"communities"`
	PainPoints     []string  `json:"pain_points"`
	Goals          []string  `json:"goals"`
	Values         []string  `json:"values"`
	Language       string    `json:"language"`
	Sentiment      Sentiment `json:"sentiment"`
	TrendingTopics []string  `json:"trending_topics"`
}

func defaultAudienceInsights() AudienceInsights {
	return AudienceInsights{
		Communities:    []string{},
		PainPoints:     []string{},
		Goals:          []string{},
		Values:         []string{},
		Sentiment:      Sentiment{Overall: "neutral", Drivers: []string{}},
		TrendingTopics: []string{},
	}
}

// Results is what one pipeline run produced. Every field is populated on
// every run; failed stages leave their defaults.
type Results struct {
	JobID         string                     `json:"job_id"`
	Level         Level                      `json:"level"`
	Audience      AudienceInsights           `json:"audience"`
	Videos        []research.Video           `json:"videos"`
	VideoInsights []string                   `json:"video_insights"`
	Modules       map[string]json.RawMessage `json:"modules"`
	Base          store.BaseFields           `json:"base_fields"`
}
