// Package recommend ranks personas against a submitted business profile.
//
// Scoring is a deterministic weighted sum over four buckets: primary goal
// (30), industry (25), main challenge (25), and free-text keywords (20).
// There is no randomness and no model call; two identical inputs always
// produce the same ranking.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
)

// Recommendation is the scored result for one persona. Ephemeral: computed
// fresh on every request and never stored.
type Recommendation struct {
	Persona   string         `json:"persona"`
	Title     string         `json:"title"`
	Score     int            `json:"score"`
	Stars     int            `json:"stars"`
	Reason    string         `json:"reason"`
	Breakdown map[string]int `json:"breakdown"`
}

// matcher holds the hand-curated keyword sets for one persona. Personas
// absent from this map get the flat default score.
type matcher struct {
	goals      []string
	industries []string
	challenges []string
	keywords   []string
}

const (
	goalFull    = 30
	goalPartial = 20
	industryHit = 25
	challFull   = 25
	challWord   = 15
	bucketFloor = 5

	keywordPoints = 5
	keywordCap    = 20

	defaultScore  = 50
	defaultReason = "offers valuable perspective for your business"
)

var matchers = map[string]matcher{
	"Claude Hopkins": {
		goals:      []string{"growth", "sales", "conversion", "revenue", "leads"},
		industries: []string{"ecommerce", "e-commerce", "retail", "direct to consumer", "d2c", "saas", "subscription"},
		challenges: []string{"low conversion", "measuring results", "wasted ad spend", "attribution", "cant measure"},
		keywords:   []string{"testing", "data", "ads", "performance", "coupon", "trial", "measurable", "analytics"},
	},
	"David Ogilvy": {
		goals:      []string{"brand", "awareness", "positioning", "premium", "reputation"},
		industries: []string{"luxury", "consumer goods", "cpg", "finance", "travel", "automotive", "hospitality"},
		challenges: []string{"no differentiation", "commodity pricing", "weak brand", "price competition", "unknown brand"},
		keywords:   []string{"brand", "premium", "quality", "research", "campaign", "image", "trust", "positioning"},
	},
	"Gary Halbert": {
		goals:      []string{"leads", "sales", "conversion", "list building", "revenue"},
		industries: []string{"info products", "coaching", "newsletter", "publishing", "agency", "ecommerce", "courses"},
		challenges: []string{"low open rates", "weak copy", "no response", "cold audience", "email deliverability"},
		keywords:   []string{"email", "copy", "funnel", "offer", "letter", "newsletter", "launch", "direct response"},
	},
	"Mary Wells Lawrence": {
		goals:      []string{"launch", "rebrand", "differentiation", "awareness", "repositioning"},
		industries: []string{"travel", "airline", "hospitality", "fashion", "entertainment", "food and beverage", "consumer goods"},
		challenges: []string{"boring product", "me-too competition", "stale brand", "crowded market", "no story"},
		keywords:   []string{"experience", "design", "event", "bold", "story", "culture", "identity", "creative"},
	},
}

// Score computes one persona's recommendation for a profile.
func Score(p *persona.Persona, bp profile.BusinessProfile) Recommendation {
	m, ok := matchers[p.Name]
	if !ok {
		return Recommendation{
			Persona: p.Name,
			Title:   p.Title,
			Score:   defaultScore,
			Stars:   starsFor(defaultScore),
			Reason:  fmt.Sprintf("%s %s.", p.Name, defaultReason),
			Breakdown: map[string]int{
				"goal": 0, "industry": 0, "challenge": 0, "keywords": 0,
			},
		}
	}

	goal := scoreGoal(m.goals, bp.PrimaryGoal)
	industry := scoreIndustry(m.industries, bp.Industry)
	challenge := scoreChallenge(m.challenges, bp.MainChallenge)
	keywords := scoreKeywords(m.keywords, bp.FreeText())

	total := goal + industry + challenge + keywords
	if total > 100 {
		total = 100
	}

	return Recommendation{
		Persona: p.Name,
		Title:   p.Title,
		Score:   total,
		Stars:   starsFor(total),
		Reason:  buildReason(p.Name, goal, industry, challenge, bp),
		Breakdown: map[string]int{
			"goal":      goal,
			"industry":  industry,
			"challenge": challenge,
			"keywords":  keywords,
		},
	}
}

// Recommendations scores every persona and returns them best-first. The sort
// is stable, so score ties keep catalogue order. topN <= 0 means no limit;
// truncation happens after sorting.
func Recommendations(personas []*persona.Persona, bp profile.BusinessProfile, topN int) []Recommendation {
	out := make([]Recommendation, 0, len(personas))
	for _, p := range personas {
		out = append(out, Score(p, bp))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}

func scoreGoal(goals []string, primaryGoal string) int {
	g := strings.ToLower(strings.TrimSpace(primaryGoal))
	if g == "" {
		return bucketFloor
	}
	for _, kw := range goals {
		if g == kw {
			return goalFull
		}
	}
	for _, kw := range goals {
		if strings.Contains(g, kw) || strings.Contains(kw, g) {
			return goalPartial
		}
	}
	return bucketFloor
}

func scoreIndustry(industries []string, industry string) int {
	in := strings.ToLower(strings.TrimSpace(industry))
	if in == "" {
		return bucketFloor
	}
	for _, kw := range industries {
		if strings.Contains(in, kw) {
			return industryHit
		}
	}
	return bucketFloor
}

func scoreChallenge(challenges []string, challenge string) int {
	ch := strings.ToLower(strings.TrimSpace(challenge))
	if ch == "" {
		return bucketFloor
	}
	for _, kw := range challenges {
		if strings.Contains(ch, kw) {
			return challFull
		}
	}
	chWords := fieldSet(ch)
	for _, kw := range challenges {
		for _, w := range strings.Fields(kw) {
			if chWords[w] {
				return challWord
			}
		}
	}
	return bucketFloor
}

func scoreKeywords(keywords []string, freeText string) int {
	if strings.TrimSpace(freeText) == "" {
		return 0
	}
	score := 0
	for _, kw := range keywords {
		if strings.Contains(freeText, kw) {
			score += keywordPoints
			if score >= keywordCap {
				return keywordCap
			}
		}
	}
	return score
}

func starsFor(score int) int {
	switch {
	case score >= 85:
		return 5
	case score >= 70:
		return 4
	case score >= 50:
		return 3
	case score >= 30:
		return 2
	default:
		return 1
	}
}

// buildReason assembles the human-readable justification from whichever
// buckets scored above the floor, always in goal/industry/challenge order.
func buildReason(name string, goal, industry, challenge int, bp profile.BusinessProfile) string {
	var parts []string
	if goal >= goalPartial {
		parts = append(parts, fmt.Sprintf("has a proven track record with %q goals", strings.TrimSpace(bp.PrimaryGoal)))
	}
	if industry >= industryHit {
		parts = append(parts, fmt.Sprintf("knows the %s space well", strings.TrimSpace(bp.Industry)))
	}
	if challenge >= challWord {
		parts = append(parts, "has tackled this exact challenge before")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s %s.", name, defaultReason)
	}
	return fmt.Sprintf("%s %s.", name, strings.Join(parts, ", "))
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
