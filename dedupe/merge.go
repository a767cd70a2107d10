package dedupe

import (
	"math"
	"sort"
	"strings"

	"github.com/sells-group/leadqual/model"
	"github.com/sells-group/leadqual/normalize"
	"github.com/sells-group/leadqual/validate"
)

// mergeGroup left-folds pairwise merges over a duplicate group in
// discovery order.
func mergeGroup(group []model.Lead) model.Lead {
	if len(group) == 0 {
		return model.Lead{}
	}
	merged := group[0]
	for _, lead := range group[1:] {
		merged = mergeLeads(merged, lead)
	}
	return merged
}

// mergeLeads combines two leads describing the same entity. Higher
// per-field confidence wins for contact evidence, list fields union, and
// the higher lead score is kept outright rather than interpolating a
// score no source ever reported. Any stale data_quality annotation is dropped; it
// is recomputed after deduplication completes.
func mergeLeads(a, b model.Lead) model.Lead {
	return model.Lead{
		ContactInformation:  mergeContactInfo(a.ContactInformation, b.ContactInformation),
		BusinessInformation: mergeBusinessInfo(a.BusinessInformation, b.BusinessInformation),
		IntentIndicators:    unionIntent(a.IntentIndicators, b.IntentIndicators),
		LeadScore:           higherLeadScore(a.LeadScore, b.LeadScore),
		ExtractionMetadata:  mergeMetadata(a.ExtractionMetadata, b.ExtractionMetadata),
	}
}

func mergeContactInfo(a, b model.ContactInfo) model.ContactInfo {
	return model.ContactInfo{
		Emails: mergeEvidence(a.Emails, b.Emails,
			func(e model.EmailEvidence) float64 { return e.Confidence },
			func(e model.EmailEvidence) string { return normalize.Email(e.Value) },
		),
		Phones: mergeEvidence(a.Phones, b.Phones,
			func(p model.PhoneEvidence) float64 { return p.Confidence },
			phoneKey,
		),
		Addresses: mergeEvidence(a.Addresses, b.Addresses,
			func(ad model.AddressEvidence) float64 { return ad.Confidence },
			func(ad model.AddressEvidence) string { return normalize.Address(ad.Value) },
		),
		Websites: mergeEvidence(a.Websites, b.Websites,
			func(w model.WebsiteEvidence) float64 { return w.Confidence },
			func(w model.WebsiteEvidence) string { return strings.ToLower(strings.TrimSpace(w.Domain)) },
		),
		SocialMedia: mergeEvidence(a.SocialMedia, b.SocialMedia,
			func(s model.SocialProfile) float64 { return s.Confidence },
			func(s model.SocialProfile) string { return strings.ToLower(strings.TrimSpace(s.URL)) },
		),
	}
}

// phoneKey is the merge identity for a phone: the digits of clean_value.
// Phones that fail the digit rules key to "" and are excluded from
// merged output entirely.
func phoneKey(p model.PhoneEvidence) string {
	digits := normalize.Phone(p.CleanValue)
	if !validate.ValidPhoneDigits(digits) {
		return ""
	}
	return digits
}

// mergeEvidence concatenates both sides, sorts by descending confidence
// (stable, so the first lead wins ties), and keeps the first occurrence
// of each normalized key. Items with an empty key are dropped.
func mergeEvidence[T any](a, b []T, confidence func(T) float64, key func(T) string) []T {
	combined := make([]T, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)

	sort.SliceStable(combined, func(i, j int) bool {
		return confidence(combined[i]) > confidence(combined[j])
	})

	seen := make(map[string]struct{}, len(combined))
	merged := make([]T, 0, len(combined))
	for _, item := range combined {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, item)
	}
	return merged
}

// mergeBusinessInfo prefers the first lead's non-empty scalar values and
// unions the list fields.
func mergeBusinessInfo(a, b model.BusinessInfo) model.BusinessInfo {
	merged := model.BusinessInfo{
		CompanyName:     firstNonEmpty(a.CompanyName, b.CompanyName),
		Industry:        firstNonEmpty(a.Industry, b.Industry),
		SizeEstimate:    firstNonEmpty(a.SizeEstimate, b.SizeEstimate),
		TravelRelevance: a.TravelRelevance,
		Services:        unionStrings(a.Services, b.Services),
		DecisionMakers:  mergeDecisionMakers(a.DecisionMakers, b.DecisionMakers),
	}
	if merged.TravelRelevance == 0 {
		merged.TravelRelevance = b.TravelRelevance
	}
	return merged
}

// mergeDecisionMakers concatenates both sides, sorts by descending
// authority, and dedupes by lowercased name.
func mergeDecisionMakers(a, b []model.DecisionMaker) []model.DecisionMaker {
	return mergeEvidence(a, b,
		func(dm model.DecisionMaker) float64 { return dm.AuthorityScore },
		func(dm model.DecisionMaker) string { return strings.ToLower(strings.TrimSpace(dm.Name)) },
	)
}

// higherLeadScore keeps whichever side has the higher total; ties keep
// the first side's full score object.
func higherLeadScore(a, b model.LeadScore) model.LeadScore {
	if a.TotalScore >= b.TotalScore {
		return a
	}
	return b
}

// mergeMetadata keeps the best confidence, the more recent timestamp,
// and the union of source URLs so provenance survives the merge.
func mergeMetadata(a, b model.ExtractionMetadata) model.ExtractionMetadata {
	merged := model.ExtractionMetadata{
		DataConfidence: math.Max(a.DataConfidence, b.DataConfidence),
	}

	// ISO-8601 strings order lexicographically, so max is most recent.
	switch {
	case a.ExtractionTimestamp != "" && b.ExtractionTimestamp != "":
		merged.ExtractionTimestamp = a.ExtractionTimestamp
		if b.ExtractionTimestamp > a.ExtractionTimestamp {
			merged.ExtractionTimestamp = b.ExtractionTimestamp
		}
	case a.ExtractionTimestamp != "":
		merged.ExtractionTimestamp = a.ExtractionTimestamp
	default:
		merged.ExtractionTimestamp = b.ExtractionTimestamp
	}

	merged.URL = model.URLList(unionStrings(a.URL, b.URL))
	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// unionStrings preserves first-seen order and drops empty entries.
func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// unionIntent dedupes intent indicators by their (category, match) pair.
func unionIntent(a, b []model.IntentIndicator) []model.IntentIndicator {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []model.IntentIndicator
	for _, ind := range append(append([]model.IntentIndicator{}, a...), b...) {
		k := ind.Category + "\x00" + ind.Match
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, ind)
	}
	return out
}
