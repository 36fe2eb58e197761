package footprint

import (
	"context"
	"math"
	"time"

	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/geo"
	"github.com/greenmiles/greenroute/pkg/logger"
	redisClient "github.com/greenmiles/greenroute/pkg/redis"
	"go.uber.org/zap"
)

const (
	// Baseline emissions assumed per trip; savings are measured against it.
	tripBaselineKg = 10.0

	leaderboardKey = "footprint:leaderboard"
	leaderboardTTL = time.Hour

	defaultListLimit = 50
	leaderboardLimit = 10
)

// Service implements the footprint operations: record keeping, savings
// leaderboard, badges and suggestions.
type Service struct {
	repo  RepositoryInterface
	redis redisClient.ClientInterface
	now   func() time.Time
}

// NewService creates a footprint service
func NewService(repo RepositoryInterface, redis redisClient.ClientInterface) *Service {
	return &Service{
		repo:  repo,
		redis: redis,
		now:   time.Now,
	}
}

// CreateRecord validates and persists an emission record. Transport
// records carrying endpoint coordinates but no distance get a derived
// great-circle distance.
func (s *Service) CreateRecord(ctx context.Context, req *CreateRecordRequest) (*EmissionRecord, error) {
	if !ValidCategories[req.Category] {
		return nil, common.NewValidationError("unknown category")
	}

	distance := req.DistanceKm
	if distance == 0 && req.Category == CategoryTransport && hasCoordinates(req) {
		distance = geo.HaversineDistance(
			*req.OriginLatitude, *req.OriginLongitude,
			*req.DestinationLatitude, *req.DestinationLongitude,
		)
		distance = math.Round(distance*100) / 100
	}

	record := &EmissionRecord{
		UserID:      req.UserID,
		Category:    req.Category,
		Activity:    req.Activity,
		DistanceKm:  distance,
		EmissionsKg: req.EmissionsKg,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, common.NewInternalErrorWithError("failed to save emission record", err)
	}

	// Transport trips move the savings leaderboard by baseline minus actual
	if record.Category == CategoryTransport {
		s.bumpLeaderboard(ctx, record.UserID, tripBaselineKg-record.EmissionsKg)
	}

	return record, nil
}

// ListRecords returns a user's records, newest first
func (s *Service) ListRecords(ctx context.Context, userID string) ([]*EmissionRecord, error) {
	records, err := s.repo.ListByUser(ctx, userID, defaultListLimit)
	if err != nil {
		return nil, common.NewInternalErrorWithError("failed to list emission records", err)
	}
	return records, nil
}

// GetSummary aggregates a user's records and computes savings against
// the per-trip baseline, clamped at zero.
func (s *Service) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	summary, err := s.repo.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, common.NewInternalErrorWithError("failed to summarize emission records", err)
	}

	summary.SavedKg = savedKg(summary.RecordCount, summary.TotalEmissionsKg)
	return summary, nil
}

// GetBadges awards badges from the user's summary
func (s *Service) GetBadges(ctx context.Context, userID string) ([]Badge, error) {
	summary, err := s.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BadgesForSummary(summary), nil
}

// GetSuggestions returns reduction tips ranked by the user's
// highest-emitting categories
func (s *Service) GetSuggestions(ctx context.Context, userID string) ([]Suggestion, error) {
	summary, err := s.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SuggestionsForSummary(summary), nil
}

// GetLeaderboard returns the top savers. The redis sorted set is the hot
// path; an empty set is rebuilt from the database aggregates.
func (s *Service) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if entries, err := s.cachedLeaderboard(ctx); err == nil && len(entries) > 0 {
		return entries, nil
	}

	rows, err := s.repo.LeaderboardRows(ctx)
	if err != nil {
		return nil, common.NewInternalErrorWithError("failed to build leaderboard", err)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LeaderboardEntry{
			UserID:  row.UserID,
			SavedKg: savedKg(row.RecordCount, row.TotalEmissionsKg),
		})
	}

	// Descending by savings; stable insertion sort over a small set
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].SavedKg > entries[j-1].SavedKg; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.rebuildCache(ctx, entries)
	return entries, nil
}

func (s *Service) cachedLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.redis == nil {
		return nil, common.ErrNotFound
	}

	members, err := s.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, leaderboardLimit-1)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		entries = append(entries, LeaderboardEntry{
			Rank:    i + 1,
			UserID:  m.Member,
			SavedKg: clampNonNegative(m.Score),
		})
	}
	return entries, nil
}

func (s *Service) bumpLeaderboard(ctx context.Context, userID string, delta float64) {
	if s.redis == nil {
		return
	}
	if _, err := s.redis.ZIncrBy(ctx, leaderboardKey, delta, userID); err != nil {
		logger.WarnContext(ctx, "failed to update leaderboard",
			zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *Service) rebuildCache(ctx context.Context, entries []LeaderboardEntry) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Delete(ctx, leaderboardKey); err != nil {
		return
	}
	for _, entry := range entries {
		if _, err := s.redis.ZIncrBy(ctx, leaderboardKey, entry.SavedKg, entry.UserID); err != nil {
			return
		}
	}
	if err := s.redis.Expire(ctx, leaderboardKey, leaderboardTTL); err != nil {
		logger.WarnContext(ctx, "failed to expire leaderboard cache", zap.Error(err))
	}
}

func savedKg(recordCount int, totalEmissionsKg float64) float64 {
	return clampNonNegative(float64(recordCount)*tripBaselineKg - totalEmissionsKg)
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func hasCoordinates(req *CreateRecordRequest) bool {
	return req.OriginLatitude != nil && req.OriginLongitude != nil &&
		req.DestinationLatitude != nil && req.DestinationLongitude != nil
}
