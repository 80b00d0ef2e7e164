package questions

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/neilberkman/talentscout/internal/core/db"
	"github.com/neilberkman/talentscout/internal/core/logging"
	"github.com/neilberkman/talentscout/pkg/screener"
)

// Cache is the storage CachedGenerator needs; *db.DB implements it
type Cache interface {
	GetCachedQuestions(key string) (*db.CachedQuestions, error)
	PutCachedQuestions(entry db.CachedQuestions) error
}

// CachedGenerator serves repeat (stack, experience) pairs from a cache.
// Cache failures are logged and never fail generation; errors and empty
// results from the inner generator are not cached.
type CachedGenerator struct {
	inner  Generator
	cache  Cache
	logger *slog.Logger
}

// NewCachedGenerator wraps inner with cache
func NewCachedGenerator(inner Generator, cache Cache, logger *slog.Logger) *CachedGenerator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CachedGenerator{inner: inner, cache: cache, logger: logger}
}

// Generate implements Generator
func (g *CachedGenerator) Generate(ctx context.Context, techStack, experience string) ([]string, error) {
	source := sourceName(g.inner)
	key := CacheKey(source, techStack, experience)
	logger := logging.FromContext(ctx, g.logger)

	entry, err := g.cache.GetCachedQuestions(key)
	if err != nil {
		logger.Warn("question cache lookup failed", "error", err)
	} else if entry != nil && len(entry.Questions) > 0 {
		logger.Debug("question cache hit", "source", source, "hits", entry.HitCount)
		return entry.Questions, nil
	}

	questions, err := g.inner.Generate(ctx, techStack, experience)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	err = g.cache.PutCachedQuestions(db.CachedQuestions{
		Key:        key,
		TechStack:  techStack,
		Experience: experience,
		Questions:  questions,
		Provider:   source,
	})
	if err != nil {
		logger.Warn("question cache store failed", "error", err)
	}
	return questions, nil
}

// Name reports the wrapped source
func (g *CachedGenerator) Name() string {
	return sourceName(g.inner)
}

// CacheKey normalizes a request so "Go, Redis" and "redis and go" share an
// entry: lower-cased, de-duplicated, sorted technologies plus the parsed
// experience value.
func CacheKey(source, techStack, experience string) string {
	seen := make(map[string]bool)
	var techs []string
	for _, t := range screener.SplitTechStack(techStack) {
		t = strings.ToLower(t)
		if !seen[t] {
			seen[t] = true
			techs = append(techs, t)
		}
	}
	sort.Strings(techs)

	exp := strings.ToLower(strings.TrimSpace(experience))
	if v, ok := screener.ParseExperience(experience); ok {
		exp = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return source + "|" + strings.Join(techs, ",") + "|" + exp
}
