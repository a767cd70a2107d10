package model

// DataQuality is the derived annotation attached to each surviving lead
// after deduplication.
type DataQuality struct {
	ValidationResults ValidationResults `json:"validation_results"`
	QualityScore      QualityScore      `json:"quality_score"`
}

// CheckResult holds the outcome of one validation area.
type CheckResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidationResults is the validate-and-clean report for a single lead.
// Errors invalidate the lead; warnings only lower its accuracy score.
type ValidationResults struct {
	BusinessValidation CheckResult `json:"business_validation"`
	ContactValidation  CheckResult `json:"contact_validation"`
	OverallValid       bool        `json:"overall_valid"`
	ValidationErrors   []string    `json:"validation_errors"`
	ValidationWarnings []string    `json:"validation_warnings"`
}

// ComponentScores holds the four quality dimensions on a 0-100 scale.
type ComponentScores struct {
	Completeness float64 `json:"completeness"`
	Accuracy     float64 `json:"accuracy"`
	Freshness    float64 `json:"freshness"`
	Reliability  float64 `json:"reliability"`
}

// Weights reports the fixed component weights used for the total.
type Weights struct {
	Completeness float64 `json:"completeness"`
	Accuracy     float64 `json:"accuracy"`
	Freshness    float64 `json:"freshness"`
	Reliability  float64 `json:"reliability"`
}

// QualityScore is the weighted quality rating for a lead.
type QualityScore struct {
	TotalScore      float64         `json:"total_score"`
	ComponentScores ComponentScores `json:"component_scores"`
	Weights         Weights         `json:"weights"`
	QualityGrade    string          `json:"quality_grade"`
}

// Summary reports the pipeline's batch-level counts.
type Summary struct {
	OriginalCount       int     `json:"original_count"`
	DeduplicatedCount   int     `json:"deduplicated_count"`
	FinalCount          int     `json:"final_count"`
	DuplicatesRemoved   int     `json:"duplicates_removed"`
	AverageQualityScore float64 `json:"average_quality_score"`
}

// ProcessResult is the pipeline's terminal output: quality-annotated
// leads sorted by score descending, plus the batch summary.
type ProcessResult struct {
	ProcessedLeads []Lead  `json:"processed_leads"`
	Summary        Summary `json:"summary"`
}
