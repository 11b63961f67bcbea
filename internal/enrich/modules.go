package enrich

import (
	"fmt"
	"strings"

	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/store"
)

// moduleOrder fixes both which modules each level gets (a prefix of this
// list) and the order stage 2 generates and persists them in.
var moduleOrder = []string{
	store.ColPsychographicCore,
	store.ColBuyerJourney,
	store.ColBehavioralProfile,
	store.ColLanguageCommunication,
	store.ColStrategicInsights,
	store.ColJobsToBeDone,
	store.ColDecisionProfile,
	store.ColCopyExamples,
}

// moduleShapes holds each module's JSON-shape instruction. The prompt
// builder wraps these with the profile and trimmed research context.
var moduleShapes = map[string]string{
	store.ColPsychographicCore: `{
  "core_values": ["5 values this audience holds"],
  "aspirations": ["4 aspirations"],
  "fears": ["4 fears"],
  "worldview": "one paragraph on how they see their market"
}`,
	store.ColBuyerJourney: `{
  "stages": [
    {"stage": "awareness|consideration|decision|retention",
     "mindset": "what they think here",
     "questions": ["2-3 questions they ask"],
     "content_needs": ["what content works"]}
  ]
}`,
	store.ColBehavioralProfile: `{
  "buying_habits": ["4 observable habits"],
  "research_behavior": "how they evaluate before buying",
  "channels": ["where they spend attention"],
  "objections": ["4 common objections"]
}`,
	store.ColLanguageCommunication: `{
  "vocabulary": ["8 words or phrases this audience actually uses"],
  "tone": "the register that lands with them",
  "phrases_to_avoid": ["4 phrases that mark an outsider"],
  "sample_hook": "one opening line in their language"
}`,
	store.ColStrategicInsights: `{
  "opportunities": ["3 underexploited angles"],
  "threats": ["3 risks to the current approach"],
  "positioning_advice": "one paragraph",
  "quick_wins": ["3 actions for the next 30 days"]
}`,
	store.ColJobsToBeDone: `{
  "functional_jobs": ["3 jobs"],
  "emotional_jobs": ["3 jobs"],
  "social_jobs": ["2 jobs"],
  "hiring_criteria": "what makes them 'hire' a product for these jobs"
}`,
	store.ColDecisionProfile: `{
  "decision_style": "how this audience decides",
  "influences": ["who or what sways them"],
  "deal_breakers": ["3 instant disqualifiers"],
  "proof_required": ["what evidence closes them"]
}`,
	store.ColCopyExamples: `{
  "headlines": ["3 example headlines for this audience"],
  "email_subject_lines": ["3 subject lines"],
  "cta_examples": ["3 calls to action"],
  "ad_copy": "one short example ad"
}`,
}

// modulePrompt builds the generation prompt for one module: shape
// instructions, the business profile, and a trimmed slice of what earlier
// stages found.
func modulePrompt(module string, bp profile.BusinessProfile, audience AudienceInsights) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate the %q module of a marketing persona.\n\n", module)
	fmt.Fprintf(&b, "BUSINESS:\nCompany: %s\nIndustry: %s\nAudience: %s\nGoal: %s\nChallenge: %s\nProducts: %s\n\n",
		bp.CompanyName, bp.Industry, bp.TargetAudience, bp.PrimaryGoal, bp.MainChallenge, bp.MainProducts)

	if ctx := researchContext(audience); ctx != "" {
		b.WriteString("RESEARCH FINDINGS SO FAR:\n")
		b.WriteString(ctx)
		b.WriteString("\n")
	}

	b.WriteString("Return ONLY a JSON object with exactly this structure, no markdown fences, no prose:\n")
	b.WriteString(moduleShapes[module])
	return b.String()
}

// researchContext renders a trimmed slice of stage-0 findings for use as
// prompt context. Caps keep the prompt small; the module does not need the
// full lists to stay grounded.
func researchContext(a AudienceInsights) string {
	var parts []string
	if len(a.PainPoints) > 0 {
		parts = append(parts, "Pain points: "+strings.Join(head(a.PainPoints, 5), "; "))
	}
	if len(a.Goals) > 0 {
		parts = append(parts, "Goals: "+strings.Join(head(a.Goals, 5), "; "))
	}
	if len(a.Communities) > 0 {
		parts = append(parts, "Communities: "+strings.Join(head(a.Communities, 5), "; "))
	}
	if a.Sentiment.Overall != "" && a.Sentiment.Overall != "neutral" {
		parts = append(parts, "Sentiment: "+a.Sentiment.Overall)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n"
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
