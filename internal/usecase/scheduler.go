package usecase

import (
	"context"
	"time"

	"ContentAudit/internal/ports"
)

// Scheduler wires the interval driver with the audit pipeline.
type Scheduler struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	onReport func(time.Time, Report, error)
}

// NewScheduler returns a helper to start/stop recurring audits. onReport may be nil.
func NewScheduler(driver ports.Scheduler, pipeline *Pipeline, onReport func(time.Time, Report, error)) *Scheduler {
	return &Scheduler{driver: driver, pipeline: pipeline, onReport: onReport}
}

// Start registers the pipeline with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		report, err := s.pipeline.Run(ctx)
		if err != nil {
			s.pipeline.warn("scheduled audit failed", "trigger", trigger, "error", err)
		}
		if s.onReport != nil {
			s.onReport(trigger, report, err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
