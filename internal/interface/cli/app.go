package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/neilberkman/talentscout/internal/core/config"
	"github.com/neilberkman/talentscout/internal/core/db"
	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/llm"
	"github.com/neilberkman/talentscout/internal/core/logging"
	"github.com/neilberkman/talentscout/internal/core/questions"
)

// app holds everything a command needs to run interviews
type app struct {
	logger    *slog.Logger
	database  *db.DB
	generator questions.Generator
	engine    *interview.Engine
	closers   []io.Closer
}

// newApp wires logging, the question cache, the provider and the engine
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	logger, logCloser, err := logging.Open(cfg.LogPath, cfg.Debug)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.closers = append(a.closers, logCloser)

	if cfg.CacheEnabled && cfg.CachePath != "" {
		database, err := db.New(cfg.CachePath)
		if err != nil {
			// The cache is an optimization; interviews still run without it
			logger.Warn("question cache unavailable", "path", cfg.CachePath, "error", err)
		} else {
			a.database = database
			a.closers = append(a.closers, database)
		}
	}

	generator, err := buildGenerator(ctx, cfg, a.database, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.generator = generator

	a.engine = interview.New(generator,
		interview.WithLogger(logger),
		interview.WithTimeout(cfg.Timeout),
		interview.WithMaxQuestions(cfg.MaxQuestions),
	)
	return a, nil
}

// buildGenerator picks the LLM or offline bank and fronts it with the cache
func buildGenerator(ctx context.Context, cfg *config.Config, database *db.DB, logger *slog.Logger) (questions.Generator, error) {
	p, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}

	var generator questions.Generator
	if p == nil {
		bank := questions.DefaultBank()
		if cfg.QuestionBank != "" {
			bank, err = questions.LoadBank(cfg.QuestionBank)
			if err != nil {
				return nil, err
			}
		}
		generator = questions.NewStaticGenerator(bank)
	} else {
		generator = questions.NewLLMGenerator(p, cfg.QuestionPromptTemplate, cfg.SystemPrompt)
	}
	logger.Info("question generator ready", "provider", cfg.Provider)

	if database == nil {
		return generator, nil
	}
	return questions.NewCachedGenerator(generator, database, logger), nil
}

// Close releases the cache database and log file
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}
