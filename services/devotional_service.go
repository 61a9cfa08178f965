package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sanctuary-builder/backend/cache"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"go.uber.org/zap"
)

// ErrDevotionalNotFound is returned when no devotional exists for a
// requested day.
var ErrDevotionalNotFound = errors.New("devotional not found")

// ErrInvalidDay is returned when a caller-supplied day is not a valid
// YYYY-MM-DD date. Callers map this to a validation response; any
// other error from a read is a store failure.
var ErrInvalidDay = errors.New("invalid day, expected YYYY-MM-DD")

const devotionalCacheTTL = 5 * time.Minute

// DevotionalService serves localized daily devotionals.
type DevotionalService struct {
	devotionals repository.DevotionalRepo
	cache       cache.Cache // nil when caching is disabled
	logger      *zap.Logger
	now         func() time.Time
}

func NewDevotionalService(devotionals repository.DevotionalRepo, c cache.Cache, logger *zap.Logger) *DevotionalService {
	return &DevotionalService{
		devotionals: devotionals,
		cache:       c,
		logger:      logger,
		now:         time.Now,
	}
}

// Today returns today's devotional in the requested language. When no
// document exists for today a fixed placeholder is returned instead of
// an error, so the client always has something to show.
func (s *DevotionalService) Today(ctx context.Context, loc models.Locale) (models.DevotionalView, error) {
	day := s.now().Format(DayFormat)

	d, err := s.findByDayCached(ctx, day)
	if errors.Is(err, repository.ErrNotFound) {
		return placeholderView(day, loc), nil
	}
	if err != nil {
		return models.DevotionalView{}, err
	}
	return d.Localize(loc), nil
}

// ByDay returns the devotional for a specific day, localized.
func (s *DevotionalService) ByDay(ctx context.Context, day string, loc models.Locale) (models.DevotionalView, error) {
	if _, err := time.Parse(DayFormat, day); err != nil {
		return models.DevotionalView{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	d, err := s.devotionals.FindByDay(ctx, day)
	if errors.Is(err, repository.ErrNotFound) {
		return models.DevotionalView{}, ErrDevotionalNotFound
	}
	if err != nil {
		return models.DevotionalView{}, err
	}
	return d.Localize(loc), nil
}

// Create stores a new devotional. The day is kept as its ISO string so
// equality filters stay consistent across writers.
func (s *DevotionalService) Create(ctx context.Context, req *models.CreateDevotionalRequest) (string, error) {
	if _, err := time.Parse(DayFormat, req.Day); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, req.Day)
	}

	d := &models.Devotional{
		Day:                req.Day,
		TitleEN:            req.TitleEN,
		TitleZH:            req.TitleZH,
		PassageEN:          req.PassageEN,
		PassageZH:          req.PassageZH,
		ContentEN:          req.ContentEN,
		ContentZH:          req.ContentZH,
		ReflectionPromptEN: req.ReflectionPromptEN,
		ReflectionPromptZH: req.ReflectionPromptZH,
	}

	id, err := s.devotionals.Create(ctx, d)
	if err != nil {
		return "", fmt.Errorf("create devotional: %w", err)
	}

	s.logger.Info("devotional created", zap.String("id", id), zap.String("day", req.Day))
	return id, nil
}

// findByDayCached checks the cache before the store. Cache failures
// other than a miss are logged and treated as misses.
func (s *DevotionalService) findByDayCached(ctx context.Context, day string) (*models.Devotional, error) {
	key := "devotional:" + day

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var d models.Devotional
			if err := json.Unmarshal(raw, &d); err == nil {
				return &d, nil
			}
		} else if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("devotional cache read failed", zap.String("day", day), zap.Error(err))
		}
	}

	d, err := s.devotionals.FindByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(d); err == nil {
			if err := s.cache.Set(ctx, key, raw, devotionalCacheTTL); err != nil {
				s.logger.Warn("devotional cache write failed", zap.String("day", day), zap.Error(err))
			}
		}
	}
	return d, nil
}

// placeholderView is the bilingual fallback shown when today has no
// devotional yet.
func placeholderView(day string, loc models.Locale) models.DevotionalView {
	title := "No devotional yet"
	content := "Come back later."
	if loc == models.LocaleZH {
		title = "今天还没有灵修内容"
		content = "稍后再来。"
	}
	return models.DevotionalView{
		Day:     day,
		Title:   title,
		Content: content,
	}
}
