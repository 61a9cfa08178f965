package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"go.uber.org/zap"
)

// DayFormat is the ISO calendar-day layout used across completion
// records and devotionals.
const DayFormat = "2006-01-02"

// PointsPerCompletion is the fixed reward for completing a day's
// devotional. Policy constant, not derived.
const PointsPerCompletion = 10

// Streak milestones that earn a badge, in ascending order. A badge is
// granted once the streak reaches its threshold, including when a
// backfilled day jumps the streak past it.
var streakMilestones = []struct {
	threshold int
	reward    models.Reward
}{
	{
		threshold: 7,
		reward: models.Reward{
			RewardType: "streak_7",
			NameEN:     "One Week Faithful",
			NameZH:     "坚持一周",
			Points:     50,
		},
	},
	{
		threshold: 30,
		reward: models.Reward{
			RewardType: "streak_30",
			NameEN:     "Thirty Days of Devotion",
			NameZH:     "坚持三十天",
			Points:     300,
		},
	},
}

// ComputeStats derives completion stats from a user's records.
//
// Records whose day doesn't parse as YYYY-MM-DD are dropped from every
// output rather than reported as errors; malformed legacy rows must not
// break the endpoint. DaysCompleted counts distinct completed days.
// CurrentStreak walks backward from today one calendar day at a time
// and stops at the first day without a completion, so a streak of 0
// means today itself isn't done. TotalPoints sums points_earned over
// every valid record whether or not it's marked completed — duplicate
// submissions for the same day therefore stack points even though the
// day is only counted once.
func ComputeStats(records []models.Progress, today time.Time) models.ProgressStats {
	// Record order doesn't matter: the day set, points sum and streak
	// walk are all order-independent, so store ordering is never
	// relied on.
	completedDays := make(map[string]struct{})
	totalPoints := 0
	for _, rec := range records {
		day, err := time.Parse(DayFormat, rec.Day)
		if err != nil {
			continue
		}
		totalPoints += rec.PointsEarned
		if rec.Completed {
			completedDays[day.Format(DayFormat)] = struct{}{}
		}
	}

	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := completedDays[day.Format(DayFormat)]; !ok {
			break
		}
		streak++
	}

	return models.ProgressStats{
		DaysCompleted: len(completedDays),
		CurrentStreak: streak,
		TotalPoints:   totalPoints,
	}
}

// ProgressService records completions and serves streak stats.
type ProgressService struct {
	progress repository.ProgressRepo
	rewards  repository.RewardRepo
	logger   *zap.Logger
	now      func() time.Time
}

func NewProgressService(progress repository.ProgressRepo, rewards repository.RewardRepo, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progress: progress,
		rewards:  rewards,
		logger:   logger,
		now:      time.Now,
	}
}

// CompletionResult is returned after recording a completion.
type CompletionResult struct {
	ID           string `json:"id"`
	PointsEarned int    `json:"points_earned"`
}

// CompleteDay records a completion for the given day (today when
// empty) and awards the fixed point reward. A milestone badge is
// granted when the resulting streak hits a threshold.
func (s *ProgressService) CompleteDay(ctx context.Context, userID, day string) (*CompletionResult, error) {
	if day == "" {
		day = s.now().Format(DayFormat)
	} else if _, err := time.Parse(DayFormat, day); err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", day, err)
	}

	rec := &models.Progress{
		UserID:       userID,
		Day:          day,
		Completed:    true,
		PointsEarned: PointsPerCompletion,
	}
	id, err := s.progress.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	s.logger.Info("completion recorded",
		zap.String("user_id", userID),
		zap.String("day", day),
		zap.Int("points", PointsPerCompletion),
	)

	s.grantMilestone(ctx, userID)

	return &CompletionResult{ID: id, PointsEarned: PointsPerCompletion}, nil
}

// grantMilestone awards every streak badge the user's current streak
// has reached but not yet earned. Failures here are logged and
// swallowed; the completion itself already succeeded.
func (s *ProgressService) grantMilestone(ctx context.Context, userID string) {
	records, err := s.progress.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("milestone check skipped", zap.String("user_id", userID), zap.Error(err))
		return
	}

	stats := ComputeStats(records, s.now())

	for _, milestone := range streakMilestones {
		if stats.CurrentStreak < milestone.threshold {
			break
		}

		exists, err := s.rewards.ExistsByType(ctx, userID, milestone.reward.RewardType)
		if err != nil {
			s.logger.Warn("milestone lookup failed", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		if exists {
			continue
		}

		reward := milestone.reward
		reward.UserID = userID
		if _, err := s.rewards.Create(ctx, &reward); err != nil {
			s.logger.Warn("milestone grant failed", zap.String("user_id", userID), zap.Error(err))
			continue
		}

		s.logger.Info("milestone reward granted",
			zap.String("user_id", userID),
			zap.String("reward_type", reward.RewardType),
			zap.Int("streak", stats.CurrentStreak),
		)
	}
}

// Stats fetches the user's completion records and computes their
// current stats.
func (s *ProgressService) Stats(ctx context.Context, userID string) (models.ProgressStats, error) {
	records, err := s.progress.FindByUser(ctx, userID)
	if err != nil {
		return models.ProgressStats{}, fmt.Errorf("load progress: %w", err)
	}
	return ComputeStats(records, s.now()), nil
}

// Rewards lists the user's earned rewards in the requested language.
func (s *ProgressService) Rewards(ctx context.Context, userID string, loc models.Locale) ([]models.RewardView, error) {
	rewards, err := s.rewards.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load rewards: %w", err)
	}

	views := make([]models.RewardView, 0, len(rewards))
	for i := range rewards {
		views = append(views, rewards[i].Localize(loc))
	}
	return views, nil
}
