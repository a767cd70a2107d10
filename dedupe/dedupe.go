// Package dedupe consolidates independently-scraped lead records that
// describe the same real-world entity. Three passes run in fixed order:
// exact identifier match, fuzzy company-name match, then normalized
// address cross-reference. Each pass feeds the next; exact identifiers
// are the strongest signal and run first, address matching is the
// weakest (shared buildings, franchises) and runs last.
package dedupe

import (
	"regexp"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sells-group/leadqual/model"
	"github.com/sells-group/leadqual/normalize"
)

// Config tunes the fuzzy-match passes. Thresholds are on the normalized
// edit-distance ratio scale (0-1, 1 = identical).
type Config struct {
	NameSimilarityThreshold    float64 `yaml:"name_similarity_threshold" mapstructure:"name_similarity_threshold"`
	AddressSimilarityThreshold float64 `yaml:"address_similarity_threshold" mapstructure:"address_similarity_threshold"`
	MinCompanyNameLength       int     `yaml:"min_company_name_length" mapstructure:"min_company_name_length"`
	SimilarityWorkers          int     `yaml:"similarity_workers" mapstructure:"similarity_workers"`
}

// DefaultConfig returns the tuned production thresholds.
func DefaultConfig() Config {
	return Config{
		NameSimilarityThreshold:    0.85,
		AddressSimilarityThreshold: 0.80,
		MinCompanyNameLength:       3,
		SimilarityWorkers:          runtime.NumCPU(),
	}
}

// Deduplicator runs the three-pass merge over a batch of leads.
type Deduplicator struct {
	cfg Config
}

// New creates a Deduplicator. Zero-valued thresholds fall back to the
// defaults so a partially-populated config cannot merge everything.
func New(cfg Config) *Deduplicator {
	def := DefaultConfig()
	if cfg.NameSimilarityThreshold <= 0 {
		cfg.NameSimilarityThreshold = def.NameSimilarityThreshold
	}
	if cfg.AddressSimilarityThreshold <= 0 {
		cfg.AddressSimilarityThreshold = def.AddressSimilarityThreshold
	}
	if cfg.MinCompanyNameLength <= 0 {
		cfg.MinCompanyNameLength = def.MinCompanyNameLength
	}
	if cfg.SimilarityWorkers <= 0 {
		cfg.SimilarityWorkers = def.SimilarityWorkers
	}
	return &Deduplicator{cfg: cfg}
}

// Deduplicate merges duplicate leads and returns the surviving set.
// Re-running on its own output changes nothing.
func (d *Deduplicator) Deduplicate(leads []model.Lead) []model.Lead {
	log := zap.L()
	log.Info("dedupe: starting", zap.Int("leads", len(leads)))

	if len(leads) == 0 {
		return []model.Lead{}
	}

	unique := d.exactMatchPass(leads)
	log.Info("dedupe: exact match pass done", zap.Int("remaining", len(unique)))

	unique = d.fuzzyNamePass(unique)
	log.Info("dedupe: fuzzy name pass done", zap.Int("remaining", len(unique)))

	unique = d.crossReferencePass(unique)
	log.Info("dedupe: cross-reference pass done", zap.Int("remaining", len(unique)))

	return unique
}

// exactMatchPass merges leads that share any composite-key part built
// from their primary email, phone, or website domain. Two records of
// the same business often overlap on only one identifier (one scraper
// found the email, another the phone), so matching on the full joined
// key would miss them. A merge can promote a new primary identifier, so
// the sweep repeats until no further merges happen; that also keeps the
// pass idempotent. Leads contributing no key parts pass through
// untouched.
func (d *Deduplicator) exactMatchPass(leads []model.Lead) []model.Lead {
	for {
		merged := d.exactSweep(leads)
		if len(merged) == len(leads) {
			return merged
		}
		leads = merged
	}
}

func (d *Deduplicator) exactSweep(leads []model.Lead) []model.Lead {
	unique := make([]model.Lead, 0, len(leads))
	byPart := make(map[string]int, len(leads))

	register := func(lead model.Lead, idx int) {
		for _, part := range keyParts(lead) {
			byPart[part] = idx
		}
	}

	for _, lead := range leads {
		parts := keyParts(lead)
		if len(parts) == 0 {
			// No primary identifiers: never a duplicate of anything here.
			unique = append(unique, lead)
			continue
		}

		idx := -1
		for _, part := range parts {
			if i, ok := byPart[part]; ok {
				idx = i
				break
			}
		}

		if idx >= 0 {
			zap.L().Debug("dedupe: exact key match",
				zap.String("key", compositeKey(parts)),
			)
			unique[idx] = mergeLeads(unique[idx], lead)
			register(lead, idx)
			register(unique[idx], idx)
			continue
		}

		idx = len(unique)
		unique = append(unique, lead)
		register(lead, idx)
	}

	return unique
}

// keyParts returns the available identity parts for exact matching.
func keyParts(lead model.Lead) []string {
	ci := lead.ContactInformation

	var parts []string
	if email := ci.PrimaryEmail(); email != "" {
		parts = append(parts, "email:"+email)
	}
	if phone := primaryPhoneDigits(ci); phone != "" {
		parts = append(parts, "phone:"+phone)
	}
	if domain := ci.PrimaryDomain(); domain != "" {
		parts = append(parts, "website:"+domain)
	}
	return parts
}

// compositeKey is the canonical identity of a keyed lead: its parts
// sorted and "|"-joined.
func compositeKey(parts []string) string {
	sorted := append([]string{}, parts...)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// primaryPhoneDigits prefers the scraper's clean_value and falls back to
// normalizing the raw value.
func primaryPhoneDigits(ci model.ContactInfo) string {
	if len(ci.Phones) == 0 {
		return ""
	}
	if clean := strings.TrimSpace(ci.Phones[0].CleanValue); clean != "" {
		return clean
	}
	return normalize.Phone(ci.Phones[0].Value)
}

// fuzzyNamePass merges leads whose company names are near-identical.
// Each unprocessed lead with a usable name anchors a sweep over the
// remaining leads; grouped leads are excluded from later anchoring, so
// grouping is transitive within a single sweep.
func (d *Deduplicator) fuzzyNamePass(leads []model.Lead) []model.Lead {
	unique := make([]model.Lead, 0, len(leads))
	processed := make([]bool, len(leads))

	for i := range leads {
		if processed[i] {
			continue
		}

		name := strings.TrimSpace(leads[i].BusinessInformation.CompanyName)
		if utf8.RuneCountInString(name) < d.cfg.MinCompanyNameLength {
			unique = append(unique, leads[i])
			continue
		}
		anchor := normalize.Company(name)

		// Collect candidates, then score them in one sweep.
		var candidateIdx []int
		var candidateNames []string
		for j := i + 1; j < len(leads); j++ {
			if processed[j] {
				continue
			}
			other := strings.TrimSpace(leads[j].BusinessInformation.CompanyName)
			if other == "" {
				continue
			}
			candidateIdx = append(candidateIdx, j)
			candidateNames = append(candidateNames, normalize.Company(other))
		}

		sims := similarities(anchor, candidateNames, d.cfg.SimilarityWorkers)

		group := []model.Lead{leads[i]}
		for k, j := range candidateIdx {
			if sims[k] >= d.cfg.NameSimilarityThreshold {
				group = append(group, leads[j])
				processed[j] = true
			}
		}

		if len(group) > 1 {
			zap.L().Debug("dedupe: fuzzy name group merged",
				zap.String("company", name),
				zap.Int("group_size", len(group)),
			)
		}
		unique = append(unique, mergeGroup(group))
	}

	return unique
}

var leadingNumberRe = regexp.MustCompile(`^\d+`)

// crossReferencePass merges leads whose normalized primary addresses are
// similar. Leads without a usable address pass through unmerged.
func (d *Deduplicator) crossReferencePass(leads []model.Lead) []model.Lead {
	unique := make([]model.Lead, 0, len(leads))
	processed := make([]bool, len(leads))

	for i := range leads {
		if processed[i] {
			continue
		}

		addr := normalize.Address(leads[i].ContactInformation.PrimaryAddress())
		if addr == "" {
			unique = append(unique, leads[i])
			continue
		}

		group := []model.Lead{leads[i]}
		for j := i + 1; j < len(leads); j++ {
			if processed[j] {
				continue
			}
			other := normalize.Address(leads[j].ContactInformation.PrimaryAddress())
			if other == "" {
				continue
			}
			if d.addressesSimilar(addr, other) {
				group = append(group, leads[j])
				processed[j] = true
			}
		}

		if len(group) > 1 {
			zap.L().Debug("dedupe: address group merged",
				zap.String("address", addr),
				zap.Int("group_size", len(group)),
			)
		}
		unique = append(unique, mergeGroup(group))
	}

	return unique
}

// addressesSimilar compares two normalized addresses. Differing leading
// street numbers rule the pair out before any fuzzy comparison.
func (d *Deduplicator) addressesSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	numA := leadingNumberRe.FindString(a)
	numB := leadingNumberRe.FindString(b)
	if numA != "" && numB != "" && numA != numB {
		return false
	}

	return Similarity(a, b) >= d.cfg.AddressSimilarityThreshold
}
