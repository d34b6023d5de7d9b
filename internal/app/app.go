package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ContentAudit/internal/classify"
	"ContentAudit/internal/config"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/infrastructure/llm"
	"ContentAudit/internal/infrastructure/ml"
	"ContentAudit/internal/infrastructure/parser"
	"ContentAudit/internal/infrastructure/scheduler"
	"ContentAudit/internal/infrastructure/telegram"
	"ContentAudit/internal/logging"
	"ContentAudit/internal/ports"
	"ContentAudit/internal/strategy"
	"ContentAudit/internal/usecase"
)

// Options carries command-line overrides of the configured corpus and roster.
type Options struct {
	Corpus   []config.ContentConfig
	Personas domain.Roster
	// Root resolves relative corpus file paths.
	Root   string
	Notify bool
}

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg         config.Config
	backend     string
	pipeline    *usecase.Pipeline
	synthesizer *strategy.Synthesizer
	logger      *slog.Logger
}

// Oracles bundles the two oracle ports of one backend.
type Oracles struct {
	Backend        string
	Classification ports.ClassificationOracle
	Recommendation ports.RecommendationOracle
}

// New builds a runnable application instance.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, opts Options) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	corpus := cfg.Corpus
	if len(opts.Corpus) > 0 {
		corpus = opts.Corpus
	}
	personas := cfg.Roster()
	if len(opts.Personas) > 0 {
		personas = opts.Personas
	}

	registry := parser.DefaultRegistry(opts.Root)
	source := parser.NewStrategySource(registry, corpus, baseLogger.With("component", "source"))

	oracles, err := BuildOracles(ctx, cfg, baseLogger.With("component", "oracle"))
	if err != nil {
		return nil, err
	}
	baseLogger.Debug("oracle backend selected", "backend", oracles.Backend)

	var notifier ports.Notifier
	if opts.Notify {
		tg := telegram.NewNotifier(cfg.Notifications.Telegram)
		if !tg.Configured() {
			return nil, fmt.Errorf("notify requested but telegram bot token or chat id is missing")
		}
		notifier = tg
	}

	classifier := classify.New(classify.Options{
		Oracle:            oracles.Classification,
		Logger:            baseLogger.With("component", "classifier"),
		MaxConcurrency:    cfg.Oracle.MaxConcurrency,
		RequestsPerSecond: cfg.Oracle.RequestsPerSecond,
		MaxContentChars:   cfg.Oracle.MaxContentChars,
	})
	synthesizer := strategy.New(strategy.Options{
		Oracle: oracles.Recommendation,
		Logger: baseLogger.With("component", "strategy"),
	})

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:      source,
		Classifier:  classifier,
		Synthesizer: synthesizer,
		Notifier:    notifier,
		Personas:    personas,
		Logger:      baseLogger.With("component", "pipeline"),
	})
	return &Application{
		cfg:         cfg,
		backend:     oracles.Backend,
		pipeline:    pipeline,
		synthesizer: synthesizer,
		logger:      baseLogger,
	}, nil
}

// BuildOracles selects the oracle backend. "auto" picks the first backend with
// credentials; no credentials at all means every result comes from the fallbacks.
// A named backend that cannot be reached is logged and replaced by the fallbacks;
// only an unknown backend name or a service backend without endpoint is an error.
func BuildOracles(ctx context.Context, cfg config.Config, logger *slog.Logger) (Oracles, error) {
	backend := cfg.Oracle.Backend
	if backend == "" || backend == config.BackendAuto {
		backend = autoBackend(cfg)
	}

	switch backend {
	case config.BackendNone:
		return Oracles{Backend: backend}, nil
	case config.BackendService:
		if cfg.Service.Endpoint == "" {
			return Oracles{}, fmt.Errorf("oracle backend %s: service endpoint is not set", backend)
		}
		client := ml.NewClient(cfg.Service.Endpoint, cfg.Service.APIKey)
		return Oracles{Backend: backend, Classification: client, Recommendation: client}, nil
	}

	completer, err := buildCompleter(ctx, backend, cfg)
	if errors.Is(err, ports.ErrOracleUnavailable) {
		if logger != nil {
			logger.Warn("oracle backend unavailable, using local fallbacks", "backend", backend, "error", err)
		}
		return Oracles{Backend: config.BackendNone}, nil
	}
	if err != nil {
		return Oracles{}, fmt.Errorf("oracle backend %s: %w", backend, err)
	}
	return Oracles{
		Backend:        backend,
		Classification: llm.NewClassificationOracle(completer),
		Recommendation: llm.NewRecommendationOracle(completer),
	}, nil
}

func buildCompleter(ctx context.Context, backend string, cfg config.Config) (ports.Completer, error) {
	switch backend {
	case config.BackendAnthropic:
		return llm.NewAnthropicClient(cfg.Anthropic)
	case config.BackendChatGPT, "chatgpt":
		if cfg.ChatGPT.APIKey == "" {
			return nil, fmt.Errorf("%w: openai api key is not set", ports.ErrOracleUnavailable)
		}
		return llm.NewChatGPTClient(cfg.ChatGPT), nil
	case config.BackendGemini:
		return llm.NewGeminiClient(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown oracle backend %q", backend)
	}
}

func autoBackend(cfg config.Config) string {
	switch {
	case cfg.Anthropic.APIKey != "":
		return config.BackendAnthropic
	case cfg.ChatGPT.APIKey != "":
		return config.BackendChatGPT
	case cfg.Gemini.APIKey != "":
		return config.BackendGemini
	case cfg.Service.Endpoint != "":
		return config.BackendService
	default:
		return config.BackendNone
	}
}

// Backend names the oracle backend in use.
func (a *Application) Backend() string {
	return a.backend
}

// Pipeline exposes the audit pipeline.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Run performs a single audit.
func (a *Application) Run(ctx context.Context) (usecase.Report, error) {
	return a.pipeline.Run(ctx)
}

// Brief writes a content brief for rec aimed at the named persona. With
// withCorpus the corpus is audited first and the persona's own content is
// passed along as related material.
func (a *Application) Brief(ctx context.Context, rec domain.ContentRecommendation, personaName string, withCorpus bool) (string, error) {
	persona, ok := a.pipeline.Personas().Lookup(personaName)
	if !ok {
		return "", fmt.Errorf("persona %q not found", personaName)
	}
	if rec.TargetPersona == "" {
		rec.TargetPersona = persona.Name
	}

	var related []domain.ClassificationRecord
	if withCorpus {
		report, err := a.pipeline.Run(ctx)
		if err != nil {
			return "", fmt.Errorf("audit corpus for brief: %w", err)
		}
		for _, r := range report.Records {
			if r.PrimaryPersona == persona.Name {
				related = append(related, r)
			}
		}
	}
	return a.synthesizer.Brief(ctx, rec, persona, related), nil
}

// RunEvery audits immediately and then on every interval until ctx is done.
func (a *Application) RunEvery(ctx context.Context, interval time.Duration, onReport func(time.Time, usecase.Report, error)) error {
	if interval <= 0 {
		interval = a.cfg.Scheduler.Interval
	}
	driver := scheduler.NewIntervalScheduler(interval, a.cfg.Scheduler.Location())
	sched := usecase.NewScheduler(driver, a.pipeline, onReport)

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	a.logger.Info("scheduled audits started", "interval", interval.String())

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sched.Stop(stopCtx); err != nil {
		return err
	}
	return nil
}
