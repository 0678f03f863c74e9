package service

import (
	"context"
	"strconv"

	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/dto"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/repository"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/redis"
)

type DashboardService interface {
	Kpis(ctx context.Context, ownerID string) (dto.KpisResponse, error)
	BookingTrends(ctx context.Context, ownerID string, req dto.BookingTrendsRequest) (dto.BookingTrendsResponse, error)
	PeakHours(ctx context.Context, ownerID string) (dto.PeakHoursResponse, error)
	RecentBookings(ctx context.Context, ownerID string, req dto.RecentBookingsRequest) (dto.RecentBookingsResponse, error)
	CourtStats(ctx context.Context, ownerID string) (dto.CourtStatsResponse, error)
}

type dashboardService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, cfg *config.Config, l logger.Interface) DashboardService {
	return &dashboardService{
		db:     db,
		repo:   r,
		cache:  c,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheDashboardKey = "dashboard"

	identifier = "service - dashboard - %s"

	defaultRecentBookingsLimit = 10
)

// trendBucket maps a request period to the date_trunc field the
// trends query groups by.
var trendBucket = map[string]string{
	"daily":   "day",
	"weekly":  "week",
	"monthly": "month",
}

func (s *dashboardService) Kpis(ctx context.Context, ownerID string) (res dto.KpisResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["op"] = "kpis"
	cacheKey := helper.BuildCacheKey(cacheDashboardKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.KpisResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "kpis - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	kpis, err := s.repo.GetOwnerKpis(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "kpis - error getting owner kpis: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res = res.FromModel(kpis)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "kpis - error saving kpis to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *dashboardService) BookingTrends(ctx context.Context, ownerID string, req dto.BookingTrendsRequest) (res dto.BookingTrendsResponse, err error) {
	period := req.Period
	if period == "" {
		period = "daily"
	}

	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["op"] = "trends"
	keyArgs["period"] = period
	cacheKey := helper.BuildCacheKey(cacheDashboardKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.BookingTrendsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "booking trends - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	trends, err := s.repo.GetBookingTrends(ctx, s.db, repository.GetBookingTrendsParams{
		OwnerID: helper.PgUUID(ownerID),
		Column2: trendBucket[period],
	})
	if err != nil {
		s.logger.Error(identifier, "booking trends - error getting booking trends: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(trends, period)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "booking trends - error saving booking trends to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *dashboardService) PeakHours(ctx context.Context, ownerID string) (res dto.PeakHoursResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["op"] = "peak-hours"
	cacheKey := helper.BuildCacheKey(cacheDashboardKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.PeakHoursResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "peak hours - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	hours, err := s.repo.GetPeakHours(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "peak hours - error getting peak hours: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(hours)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "peak hours - error saving peak hours to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *dashboardService) RecentBookings(ctx context.Context, ownerID string, req dto.RecentBookingsRequest) (res dto.RecentBookingsResponse, err error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecentBookingsLimit
	}

	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["op"] = "recent"
	keyArgs["limit"] = strconv.Itoa(limit)
	cacheKey := helper.BuildCacheKey(cacheDashboardKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.RecentBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "recent bookings - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	bookings, err := s.repo.GetRecentBookings(ctx, s.db, repository.GetRecentBookingsParams{
		OwnerID: helper.PgUUID(ownerID),
		Limit:   int32(limit),
	})
	if err != nil {
		s.logger.Error(identifier, "recent bookings - error getting recent bookings: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(bookings)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "recent bookings - error saving recent bookings to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *dashboardService) CourtStats(ctx context.Context, ownerID string) (res dto.CourtStatsResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["op"] = "court-stats"
	cacheKey := helper.BuildCacheKey(cacheDashboardKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.CourtStatsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "court stats - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	stats, err := s.repo.GetCourtStats(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "court stats - error getting court stats: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(stats)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "court stats - error saving court stats to cache: %s", err.Error())
		}
	}()

	return res, nil
}
