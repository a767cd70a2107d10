// Package pipeline is the engine's single public entry point: it runs
// deduplication over the batch, validates and scores each surviving
// lead, and returns the annotated set sorted by quality.
package pipeline

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadqual/dedupe"
	"github.com/sells-group/leadqual/model"
	"github.com/sells-group/leadqual/score"
	"github.com/sells-group/leadqual/validate"
)

// Options tunes the per-lead annotation step.
type Options struct {
	// Workers bounds the validate+score worker group. Each lead is
	// independent, so the step parallelizes freely.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{Workers: 5}
}

// Processor wires the dedup, validation, and scoring stages together.
type Processor struct {
	dedup     *dedupe.Deduplicator
	validator *validate.Validator
	scorer    *score.Scorer
	workers   int
}

// New creates a Processor.
func New(dedupCfg dedupe.Config, opts Options) *Processor {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultOptions().Workers
	}
	return &Processor{
		dedup:     dedupe.New(dedupCfg),
		validator: validate.New(),
		scorer:    score.New(),
		workers:   workers,
	}
}

// Process runs the full engine over a batch of raw leads. The call is
// self-contained and side-effect free with respect to its input: each
// lead is annotated on a copy, so callers may reuse the input slice.
// An empty batch returns an empty result with all-zero counts.
func (p *Processor) Process(leads []model.Lead) *model.ProcessResult {
	log := zap.L().With(zap.String("run_id", uuid.NewString()))
	log.Info("pipeline: starting lead processing", zap.Int("leads", len(leads)))

	if len(leads) == 0 {
		return &model.ProcessResult{ProcessedLeads: []model.Lead{}}
	}

	unique := p.dedup.Deduplicate(leads)

	processed := make([]model.Lead, len(unique))
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i := range unique {
		i := i
		g.Go(func() error {
			lead := unique[i]
			results := p.validator.ValidateLead(&lead)
			quality := p.scorer.Score(lead, results)
			lead.DataQuality = &model.DataQuality{
				ValidationResults: results,
				QualityScore:      quality,
			}
			processed[i] = lead
			return nil
		})
	}
	_ = g.Wait() // annotation never errors; failures are data

	sort.SliceStable(processed, func(i, j int) bool {
		return processed[i].DataQuality.QualityScore.TotalScore >
			processed[j].DataQuality.QualityScore.TotalScore
	})

	summary := model.Summary{
		OriginalCount:     len(leads),
		DeduplicatedCount: len(unique),
		FinalCount:        len(processed),
		DuplicatesRemoved: len(leads) - len(unique),
	}
	var totalScore float64
	for _, lead := range processed {
		totalScore += lead.DataQuality.QualityScore.TotalScore
	}
	if len(processed) > 0 {
		summary.AverageQualityScore = totalScore / float64(len(processed))
	}

	log.Info("pipeline: processing complete",
		zap.Int("original", summary.OriginalCount),
		zap.Int("final", summary.FinalCount),
		zap.Int("duplicates_removed", summary.DuplicatesRemoved),
		zap.Float64("average_quality_score", summary.AverageQualityScore),
	)

	return &model.ProcessResult{ProcessedLeads: processed, Summary: summary}
}
