package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/dto"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/mock"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/repository"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	log "github.com/quickcourt/quickcourt/pkg/logger/mock"
	redis "github.com/quickcourt/quickcourt/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Kpis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	ownerID := uuid.New()
	mockError := errors.New("cache miss")

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetOwnerKpis(gomock.Any(), gomock.Any(), helper.PgUUID(ownerID.String())).
			Return(repository.GetOwnerKpisRow{
				TotalVenues:   2,
				ActiveCourts:  5,
				TotalBookings: 42,
				TotalEarnings: 2100000,
			}, nil).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.Kpis(ctx, ownerID.String())

		assert.NoError(t, err)
		assert.Equal(t, int64(2), res.TotalVenues)
		assert.Equal(t, int64(5), res.ActiveCourts)
		assert.Equal(t, int64(42), res.TotalBookings)
		assert.Equal(t, int64(2100000), res.TotalEarnings)
	})

	t.Run("success: from cache", func(t *testing.T) {
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

		cached := dto.KpisResponse{TotalVenues: 1, ActiveCourts: 3}

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).
			Return(nil).
			Times(1)

		res, err := service.Kpis(ctx, ownerID.String())

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("error: query failure", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetOwnerKpis(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.GetOwnerKpisRow{}, errors.New("connection refused")).
			Times(1)

		_, err := service.Kpis(ctx, ownerID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestDashboardService_BookingTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	ownerID := uuid.New()
	mockError := errors.New("cache miss")

	t.Run("success: defaults to daily", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetBookingTrends(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.GetBookingTrendsParams) ([]repository.GetBookingTrendsRow, error) {
				assert.Equal(t, "day", arg.Column2)

				return []repository.GetBookingTrendsRow{
					{Bucket: "2026-08-27", Bookings: 3, Earnings: 150000},
					{Bucket: "2026-08-28", Bookings: 5, Earnings: 250000},
				}, nil
			}).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.BookingTrends(ctx, ownerID.String(), dto.BookingTrendsRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "daily", res.Period)
		assert.Len(t, res.Points, 2)
		assert.Equal(t, int64(250000), res.Points[1].Earnings)
	})

	t.Run("success: monthly buckets by month", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetBookingTrends(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.GetBookingTrendsParams) ([]repository.GetBookingTrendsRow, error) {
				assert.Equal(t, "month", arg.Column2)

				return []repository.GetBookingTrendsRow{
					{Bucket: "2026-08-01", Bookings: 20, Earnings: 900000},
				}, nil
			}).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.BookingTrends(ctx, ownerID.String(), dto.BookingTrendsRequest{Period: "monthly"})

		assert.NoError(t, err)
		assert.Equal(t, "monthly", res.Period)
		assert.Len(t, res.Points, 1)
	})
}

func TestDashboardService_PeakHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	ownerID := uuid.New()
	mockError := errors.New("cache miss")

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetPeakHours(gomock.Any(), gomock.Any(), helper.PgUUID(ownerID.String())).
			Return([]repository.GetPeakHoursRow{
				{Hour: 18, Bookings: 12},
				{Hour: 19, Bookings: 9},
			}, nil).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.PeakHours(ctx, ownerID.String())

		assert.NoError(t, err)
		assert.Len(t, res.Hours, 2)
		assert.Equal(t, 18, res.Hours[0].Hour)
		assert.Equal(t, int64(12), res.Hours[0].Bookings)
	})
}

func TestDashboardService_RecentBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	ownerID := uuid.New()
	mockError := errors.New("cache miss")

	startTime, err := helper.PgTimeFromString("18:00")
	assert.NoError(t, err)
	endTime, err := helper.PgTimeFromString("19:00")
	assert.NoError(t, err)

	t.Run("success: defaults limit to 10", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetRecentBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.GetRecentBookingsParams) ([]repository.GetRecentBookingsRow, error) {
				assert.Equal(t, int32(10), arg.Limit)

				return []repository.GetRecentBookingsRow{
					{
						ID:          pgtype.UUID{Bytes: uuid.New(), Valid: true},
						BookingDate: pgtype.Date{Time: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Valid: true},
						StartTime:   startTime,
						EndTime:     endTime,
						TotalAmount: 50000,
						Status:      "confirmed",
						CreatedAt:   pgtype.Timestamp{Time: time.Now(), Valid: true},
						CourtName:   "Court 1",
						VenueName:   "Smash Arena",
					},
				}, nil
			}).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.RecentBookings(ctx, ownerID.String(), dto.RecentBookingsRequest{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "2026-08-28", res.Bookings[0].BookingDate)
		assert.Equal(t, "18:00", res.Bookings[0].StartTime)
		assert.Equal(t, "Smash Arena", res.Bookings[0].VenueName)
	})
}

func TestDashboardService_CourtStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	ownerID := uuid.New()
	mockError := errors.New("cache miss")

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError).
			Times(1)

		mockQuerier.EXPECT().
			GetCourtStats(gomock.Any(), gomock.Any(), helper.PgUUID(ownerID.String())).
			Return([]repository.GetCourtStatsRow{
				{CourtID: 3, CourtName: "Court 1", Sport: "badminton", VenueName: "Smash Arena", Bookings: 14, Earnings: 700000},
			}, nil).
			Times(1)

		mockRedis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.CourtStats(ctx, ownerID.String())

		assert.NoError(t, err)
		assert.Len(t, res.Courts, 1)
		assert.Equal(t, int64(700000), res.Courts[0].Earnings)
	})
}
