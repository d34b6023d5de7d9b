package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ContentAudit/internal/analysis"
	"ContentAudit/internal/classify"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
	"ContentAudit/internal/strategy"
)

// PipelineDeps wires all driven adapters into the audit pipeline.
type PipelineDeps struct {
	Source      ports.ContentSource
	Classifier  *classify.Classifier
	Synthesizer *strategy.Synthesizer
	Notifier    ports.Notifier
	Personas    domain.Roster
	Logger      *slog.Logger
}

// Pipeline implements the content-audit workflow: load, classify, score, recommend, notify.
type Pipeline struct {
	source      ports.ContentSource
	classifier  *classify.Classifier
	synthesizer *strategy.Synthesizer
	notifier    ports.Notifier
	personas    domain.Roster
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component. Missing classifier or
// synthesizer fall back to oracle-less instances.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:      deps.Source,
		classifier:  deps.Classifier,
		synthesizer: deps.Synthesizer,
		notifier:    deps.Notifier,
		personas:    deps.Personas.Clone(),
		logger:      deps.Logger,
	}
	if p.classifier == nil {
		p.classifier = classify.New(classify.Options{Logger: deps.Logger})
	}
	if p.synthesizer == nil {
		p.synthesizer = strategy.New(strategy.Options{Logger: deps.Logger})
	}
	return p
}

// Personas returns the roster every run is audited against.
func (p *Pipeline) Personas() domain.Roster {
	return p.personas.Clone()
}

// Run loads the corpus from the configured source and audits it.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	if p.source == nil {
		return Report{}, fmt.Errorf("content source is not configured")
	}

	items, err := p.source.Load(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load content: %w", err)
	}
	return p.Analyze(ctx, items)
}

// Analyze audits an already loaded corpus. Oracle failures never fail the run;
// only context cancellation does.
func (p *Pipeline) Analyze(ctx context.Context, items []domain.ContentItem) (Report, error) {
	run := analysis.Start(p.personas)
	p.info("audit started", "run", run.ID(), "items", len(items), "personas", len(p.personas))

	records, err := p.classifier.ClassifyBatch(ctx, run.Personas(), items)
	if err != nil {
		return Report{}, fmt.Errorf("classify content: %w", err)
	}
	if err := run.Analyze(records); err != nil {
		return Report{}, err
	}

	m := run.Matrix()
	strat := p.synthesizer.Generate(ctx, strategy.Input{
		Gaps:      m.Gaps(),
		Strengths: m.Strengths(),
		Personas:  run.Personas(),
		Records:   run.Records(),
	})
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := newReport(run, strat)
	p.info("audit finished",
		"run", report.RunID,
		"gaps", report.Stats.GapCount,
		"strong", report.Stats.StrongCount,
		"fallback_records", report.FallbackRecords,
		"fallback_strategy", strat.Fallback)

	p.notify(ctx, report)
	return report, nil
}

func (p *Pipeline) notify(ctx context.Context, report Report) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.PublishDigest(ctx, BuildDigest(report)); err != nil {
		p.warn("publish digest failed", "run", report.RunID, "error", err)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
