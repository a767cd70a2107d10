// Package score rates each surviving lead on four weighted dimensions
// and assigns a letter grade. Weights are fixed constants: they were
// tuned together with the dedup thresholds and are not a runtime knob.
package score

import (
	"math"
	"strings"
	"time"

	"github.com/sells-group/leadqual/model"
)

// Component weights. Completeness dominates because a lead you cannot
// act on is worth little however accurate it is.
const (
	WeightCompleteness = 0.40
	WeightAccuracy     = 0.30
	WeightFreshness    = 0.15
	WeightReliability  = 0.15
)

// completenessCap keeps a lead from scoring full marks on completeness;
// scraped records are never truly complete.
const completenessCap = 0.95

// freshnessHalfScale is the decay constant in days: a lead a year old
// scores 1/e on freshness.
const freshnessHalfScale = 365.0

// industryPlaceholders are sentinel values that do not count as a
// classified industry for completeness.
var industryPlaceholders = map[string]bool{
	"general": true,
	"n/a":     true,
	"none":    true,
	"unknown": true,
}

// timestampLayouts are tried in order when parsing extraction timestamps.
// Scrapers emit a mix of offset, Zulu, and naive forms; naive parses as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Scorer computes quality scores from a lead and its validation report.
type Scorer struct{}

// New creates a Scorer.
func New() *Scorer {
	return &Scorer{}
}

// Score rates a lead against the current UTC clock.
func (s *Scorer) Score(lead model.Lead, vr model.ValidationResults) model.QualityScore {
	return s.ScoreAt(lead, vr, time.Now().UTC())
}

// ScoreAt rates a lead against an explicit clock.
func (s *Scorer) ScoreAt(lead model.Lead, vr model.ValidationResults, now time.Time) model.QualityScore {
	completeness := completenessScore(lead, vr)
	accuracy := accuracyScore(vr)
	freshness := freshnessScore(lead.ExtractionMetadata.ExtractionTimestamp, now)
	reliability := reliabilityScore(lead)

	total := round1((completeness*WeightCompleteness +
		accuracy*WeightAccuracy +
		freshness*WeightFreshness +
		reliability*WeightReliability) * 100)

	return model.QualityScore{
		TotalScore: total,
		ComponentScores: model.ComponentScores{
			Completeness: round1(completeness * 100),
			Accuracy:     round1(accuracy * 100),
			Freshness:    round1(freshness * 100),
			Reliability:  round1(reliability * 100),
		},
		Weights: model.Weights{
			Completeness: WeightCompleteness,
			Accuracy:     WeightAccuracy,
			Freshness:    WeightFreshness,
			Reliability:  WeightReliability,
		},
		QualityGrade: gradeFor(total),
	}
}

// completenessScore counts three mandatory checks (usable phone,
// classified industry, non-zero upstream lead score) plus half-unit
// bonuses for a company name and at least one email.
func completenessScore(lead model.Lead, vr model.ValidationResults) float64 {
	var score, checks float64

	checks++
	if vr.ContactValidation.Valid && len(lead.ContactInformation.Phones) > 0 {
		score++
	}

	checks++
	industry := strings.ToLower(strings.TrimSpace(lead.BusinessInformation.Industry))
	if industry != "" && !industryPlaceholders[industry] {
		score++
	}

	checks++
	if lead.LeadScore.TotalScore > 0 {
		score++
	}

	if strings.TrimSpace(lead.BusinessInformation.CompanyName) != "" {
		score += 0.5
		checks += 0.5
	}
	if len(lead.ContactInformation.Emails) > 0 {
		score += 0.5
		checks += 0.5
	}

	return math.Min(score/checks, completenessCap)
}

// accuracyScore starts at 1.0 and pays per validation finding: 0.3 per
// error, 0.1 per warning, plus a flat 0.2 when the lead is invalid.
func accuracyScore(vr model.ValidationResults) float64 {
	base := 1.0
	base -= float64(len(vr.ValidationErrors)) * 0.3
	base -= float64(len(vr.ValidationWarnings)) * 0.1
	if !vr.OverallValid {
		base -= 0.2
	}
	return clamp01(base)
}

// freshnessScore decays exponentially with extraction age. A missing or
// unparseable timestamp is neutral (0.5): absence of metadata is not
// evidence of staleness.
func freshnessScore(timestamp string, now time.Time) float64 {
	ts := strings.TrimSpace(timestamp)
	if ts == "" {
		return 0.5
	}

	extracted, ok := parseTimestamp(ts)
	if !ok {
		return 0.5
	}

	ageDays := int(now.Sub(extracted.UTC()).Hours() / 24)
	return clamp01(math.Exp(-float64(ageDays) / freshnessHalfScale))
}

func parseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, ts, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// reliabilityScore blends extraction confidence with the mean confidence
// across all email, phone, and website evidence items. No contact
// evidence contributes 0 to the second term.
func reliabilityScore(lead model.Lead) float64 {
	ci := lead.ContactInformation

	var sum float64
	var n int
	for _, e := range ci.Emails {
		sum += e.Confidence
		n++
	}
	for _, p := range ci.Phones {
		sum += p.Confidence
		n++
	}
	for _, w := range ci.Websites {
		sum += w.Confidence
		n++
	}

	var avg float64
	if n > 0 {
		avg = sum / float64(n)
	}

	return clamp01(0.7*lead.ExtractionMetadata.DataConfidence + 0.3*avg)
}

// gradeFor thresholds a total score into a letter grade with inclusive
// lower bounds.
func gradeFor(total float64) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "F"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
