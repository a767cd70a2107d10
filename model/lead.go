// Package model defines the lead record shape shared by the dedup,
// validation, and scoring stages. Field names mirror the JSON produced
// by the upstream scrapers so records round-trip unchanged.
package model

import "strings"

// Lead is a candidate business/person record extracted by an upstream
// scraper. The engine never creates leads; it only merges and annotates.
type Lead struct {
	ContactInformation  ContactInfo        `json:"contact_information"`
	BusinessInformation BusinessInfo       `json:"business_information"`
	IntentIndicators    []IntentIndicator  `json:"intent_indicators,omitempty"`
	LeadScore           LeadScore          `json:"lead_score"`
	ExtractionMetadata  ExtractionMetadata `json:"extraction_metadata"`

	// DataQuality is attached by the pipeline after deduplication. It is
	// never part of the identity key and is dropped when leads merge.
	DataQuality *DataQuality `json:"data_quality,omitempty"`
}

// ContactInfo groups the per-channel evidence lists. A nil list means
// "no evidence", not "empty evidence with confidence 0".
type ContactInfo struct {
	Emails      []EmailEvidence   `json:"emails,omitempty"`
	Phones      []PhoneEvidence   `json:"phones,omitempty"`
	Addresses   []AddressEvidence `json:"addresses,omitempty"`
	Websites    []WebsiteEvidence `json:"websites,omitempty"`
	SocialMedia []SocialProfile   `json:"social_media,omitempty"`
}

// EmailEvidence is a single observed email plus provenance.
type EmailEvidence struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Role       string  `json:"role,omitempty"`
	Source     string  `json:"source,omitempty"`
	IsPersonal bool    `json:"is_personal,omitempty"`
	Context    string  `json:"context,omitempty"`
}

// PhoneEvidence is a single observed phone number. CleanValue carries the
// scraper's digits-only rendering and is the identity key for the number.
type PhoneEvidence struct {
	Value      string  `json:"value"`
	CleanValue string  `json:"clean_value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
	Context    string  `json:"context,omitempty"`
}

// AddressEvidence is a single observed street address.
type AddressEvidence struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type,omitempty"`
	Source     string  `json:"source,omitempty"`
}

// WebsiteEvidence is a single observed website URL with its extracted domain.
type WebsiteEvidence struct {
	URL        string  `json:"url"`
	Domain     string  `json:"domain"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// SocialProfile is a single observed social media profile link.
type SocialProfile struct {
	Platform   string  `json:"platform"`
	URL        string  `json:"url"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// BusinessInfo holds the extracted business profile.
type BusinessInfo struct {
	CompanyName     string          `json:"company_name"`
	Industry        string          `json:"industry,omitempty"`
	Services        []string        `json:"services,omitempty"`
	SizeEstimate    string          `json:"size_estimate,omitempty"`
	TravelRelevance float64         `json:"travel_relevance,omitempty"`
	DecisionMakers  []DecisionMaker `json:"decision_makers,omitempty"`
}

// DecisionMaker is a named contact with an authority estimate.
type DecisionMaker struct {
	Name           string  `json:"name"`
	Title          string  `json:"title,omitempty"`
	AuthorityScore float64 `json:"authority_score"`
	ContactType    string  `json:"contact_type,omitempty"`
}

// IntentIndicator is a free-text buying-signal tag.
type IntentIndicator struct {
	Category string `json:"category"`
	Match    string `json:"match"`
}

// LeadScore is the upstream scorer's output, treated as opaque here
// except that merges keep the side with the higher total.
type LeadScore struct {
	TotalScore     float64            `json:"total_score"`
	Classification string             `json:"classification,omitempty"`
	FactorScores   map[string]float64 `json:"factor_scores,omitempty"`
}

// ExtractionMetadata records where and when the lead was extracted.
type ExtractionMetadata struct {
	URL                 URLList `json:"url,omitempty"`
	DataConfidence      float64 `json:"data_confidence"`
	ExtractionTimestamp string  `json:"extraction_timestamp,omitempty"`
}

// PrimaryEmail returns the first (highest-confidence) email, lowercased
// and trimmed, or "" when no email evidence exists.
func (c ContactInfo) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.Emails[0].Value))
}

// PrimaryPhone returns the first phone's clean digit string, or "" when
// no phone evidence exists.
func (c ContactInfo) PrimaryPhone() string {
	if len(c.Phones) == 0 {
		return ""
	}
	return strings.TrimSpace(c.Phones[0].CleanValue)
}

// PrimaryDomain returns the first website's domain, lowercased and
// trimmed, or "" when no website evidence exists.
func (c ContactInfo) PrimaryDomain() string {
	if len(c.Websites) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.Websites[0].Domain))
}

// PrimaryAddress returns the first address value as observed, or "".
func (c ContactInfo) PrimaryAddress() string {
	if len(c.Addresses) == 0 {
		return ""
	}
	return c.Addresses[0].Value
}
