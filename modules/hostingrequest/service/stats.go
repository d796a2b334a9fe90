package service

import (
	"context"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"
)

// GetStats counts requests by status. Results are cached until the next write.
// A miss that computes before a concurrent write and stores after its
// invalidation leaves a stale entry, bounded by statsTTL.
func (s *HostingRequestService) GetStats(ctx context.Context) (*dto.HostingRequestStats, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var stats dto.HostingRequestStats
	if s.cachedJSON(ctx, constants.RedisKeyHostingRequestStats, &stats) {
		return &stats, nil
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get hosting request stats failed", err)
	}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case entity.StatusPending:
			stats.Pending += c.Count
		case entity.StatusUnderReview:
			stats.UnderReview += c.Count
		case entity.StatusApproved:
			stats.Approved += c.Count
		case entity.StatusRejected:
			stats.Rejected += c.Count
		}
	}

	s.storeJSON(ctx, constants.RedisKeyHostingRequestStats, stats)
	return &stats, nil
}

func (s *HostingRequestService) GetEventDirectorStats(ctx context.Context, directorID profileEntity.ProfileID) (*dto.EventDirectorStats, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	key := constants.RedisKeyEDStatsPrefix + directorID.String()
	var stats dto.EventDirectorStats
	if s.cachedJSON(ctx, key, &stats) {
		return &stats, nil
	}

	counts, err := s.repo.CountForEventDirector(ctx, directorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event director stats failed", err)
	}
	stats = dto.EventDirectorStats{
		Assigned:      counts.Assigned,
		PendingReview: counts.PendingReview,
		Accepted:      counts.Accepted,
	}

	s.storeJSON(ctx, key, stats)
	return &stats, nil
}

func (s *HostingRequestService) cachedJSON(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.Warn("HostingRequestService:Cache:Get", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *HostingRequestService) storeJSON(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.statsTTL); err != nil {
		logger.Warn("HostingRequestService:Cache:Set", "key", key, "error", err)
	}
}
