package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadqual/model"
)

func TestMergeLeads_LeadScoreKeepsHigher(t *testing.T) {
	a := model.Lead{LeadScore: model.LeadScore{TotalScore: 40, Classification: "cold"}}
	b := model.Lead{LeadScore: model.LeadScore{TotalScore: 70, Classification: "warm"}}

	merged := mergeLeads(a, b)
	assert.Equal(t, 70.0, merged.LeadScore.TotalScore)
	assert.Equal(t, "warm", merged.LeadScore.Classification)

	// Averaging would fabricate a 55 no source ever reported.
	assert.NotEqual(t, 55.0, merged.LeadScore.TotalScore)
}

func TestMergeLeads_LeadScoreTieKeepsFirst(t *testing.T) {
	a := model.Lead{LeadScore: model.LeadScore{TotalScore: 70, Classification: "warm"}}
	b := model.Lead{LeadScore: model.LeadScore{TotalScore: 70, Classification: "hot"}}

	merged := mergeLeads(a, b)
	assert.Equal(t, "warm", merged.LeadScore.Classification)
}

func TestMergeLeads_EmailConfidenceWins(t *testing.T) {
	a := model.Lead{ContactInformation: model.ContactInfo{
		Emails: []model.EmailEvidence{{Value: "a@x.com", Confidence: 0.5, Source: "footer"}},
	}}
	b := model.Lead{ContactInformation: model.ContactInfo{
		Emails: []model.EmailEvidence{{Value: "A@X.com", Confidence: 0.9, Source: "contact_page"}},
	}}

	merged := mergeLeads(a, b)
	require.Len(t, merged.ContactInformation.Emails, 1)
	assert.Equal(t, "A@X.com", merged.ContactInformation.Emails[0].Value)
	assert.Equal(t, "contact_page", merged.ContactInformation.Emails[0].Source)
}

func TestMergeLeads_InvalidPhoneDropped(t *testing.T) {
	a := model.Lead{ContactInformation: model.ContactInfo{
		Phones: []model.PhoneEvidence{{Value: "555-123-4567", CleanValue: "5551234567", Confidence: 0.8}},
	}}
	b := model.Lead{ContactInformation: model.ContactInfo{
		Phones: []model.PhoneEvidence{
			{Value: "123456", CleanValue: "123456", Confidence: 0.9},        // too short
			{Value: "555-555-5555", CleanValue: "5555555555", Confidence: 0.9}, // repeated digit
		},
	}}

	merged := mergeLeads(a, b)
	require.Len(t, merged.ContactInformation.Phones, 1)
	assert.Equal(t, "5551234567", merged.ContactInformation.Phones[0].CleanValue)
}

func TestMergeLeads_BusinessScalarsFirstNonEmpty(t *testing.T) {
	a := model.Lead{BusinessInformation: model.BusinessInfo{
		CompanyName: "Acme Corp",
		Services:    []string{"tours"},
	}}
	b := model.Lead{BusinessInformation: model.BusinessInfo{
		CompanyName:     "Acme Corporation",
		Industry:        "travel",
		SizeEstimate:    "11-50",
		TravelRelevance: 0.8,
		Services:        []string{"tours", "lodging"},
	}}

	merged := mergeLeads(a, b)
	assert.Equal(t, "Acme Corp", merged.BusinessInformation.CompanyName)
	assert.Equal(t, "travel", merged.BusinessInformation.Industry)
	assert.Equal(t, "11-50", merged.BusinessInformation.SizeEstimate)
	assert.Equal(t, 0.8, merged.BusinessInformation.TravelRelevance)
	assert.Equal(t, []string{"tours", "lodging"}, merged.BusinessInformation.Services)
}

func TestMergeLeads_DecisionMakersDedupedByAuthority(t *testing.T) {
	a := model.Lead{BusinessInformation: model.BusinessInfo{
		DecisionMakers: []model.DecisionMaker{
			{Name: "Jane Doe", Title: "Owner", AuthorityScore: 0.9},
			{Name: "Bob Lee", Title: "Manager", AuthorityScore: 0.5},
		},
	}}
	b := model.Lead{BusinessInformation: model.BusinessInfo{
		DecisionMakers: []model.DecisionMaker{
			{Name: "jane doe", Title: "CEO", AuthorityScore: 0.6},
		},
	}}

	merged := mergeLeads(a, b)
	require.Len(t, merged.BusinessInformation.DecisionMakers, 2)
	assert.Equal(t, "Jane Doe", merged.BusinessInformation.DecisionMakers[0].Name)
	assert.Equal(t, "Owner", merged.BusinessInformation.DecisionMakers[0].Title)
	assert.Equal(t, "Bob Lee", merged.BusinessInformation.DecisionMakers[1].Name)
}

func TestMergeLeads_IntentUnion(t *testing.T) {
	a := model.Lead{IntentIndicators: []model.IntentIndicator{
		{Category: "expansion", Match: "now hiring"},
	}}
	b := model.Lead{IntentIndicators: []model.IntentIndicator{
		{Category: "expansion", Match: "now hiring"},
		{Category: "booking", Match: "reserve online"},
	}}

	merged := mergeLeads(a, b)
	assert.Equal(t, []model.IntentIndicator{
		{Category: "expansion", Match: "now hiring"},
		{Category: "booking", Match: "reserve online"},
	}, merged.IntentIndicators)
}

func TestMergeLeads_MetadataProvenance(t *testing.T) {
	a := model.Lead{ExtractionMetadata: model.ExtractionMetadata{
		URL:                 model.URLList{"https://x.com/contact"},
		DataConfidence:      0.6,
		ExtractionTimestamp: "2026-01-10T00:00:00Z",
	}}
	b := model.Lead{ExtractionMetadata: model.ExtractionMetadata{
		URL:                 model.URLList{"https://x.com/about", "https://x.com/contact"},
		DataConfidence:      0.9,
		ExtractionTimestamp: "2026-03-02T00:00:00Z",
	}}

	merged := mergeLeads(a, b)
	assert.Equal(t, 0.9, merged.ExtractionMetadata.DataConfidence)
	assert.Equal(t, "2026-03-02T00:00:00Z", merged.ExtractionMetadata.ExtractionTimestamp)
	assert.Equal(t, model.URLList{"https://x.com/contact", "https://x.com/about"}, merged.ExtractionMetadata.URL)
}

func TestMergeLeads_DropsStaleQuality(t *testing.T) {
	a := model.Lead{DataQuality: &model.DataQuality{}}
	b := model.Lead{DataQuality: &model.DataQuality{}}

	merged := mergeLeads(a, b)
	assert.Nil(t, merged.DataQuality, "merged contact data invalidates per-lead quality")
}

func TestMergeGroup_FoldsLeftToRight(t *testing.T) {
	group := []model.Lead{
		{BusinessInformation: model.BusinessInfo{CompanyName: "Acme Corp"}},
		{BusinessInformation: model.BusinessInfo{Industry: "travel"}},
		{BusinessInformation: model.BusinessInfo{CompanyName: "Acme Inc", SizeEstimate: "1-10"}},
	}

	merged := mergeGroup(group)
	assert.Equal(t, "Acme Corp", merged.BusinessInformation.CompanyName)
	assert.Equal(t, "travel", merged.BusinessInformation.Industry)
	assert.Equal(t, "1-10", merged.BusinessInformation.SizeEstimate)
}
