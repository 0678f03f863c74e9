package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/courts/dto"
	"github.com/quickcourt/quickcourt/internal/domains/courts/mock"
	"github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	log "github.com/quickcourt/quickcourt/pkg/logger/mock"
	redis "github.com/quickcourt/quickcourt/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func mustTime(t *testing.T, s string) pgtype.Time {
	t.Helper()

	pgTime, err := helper.PgTimeFromString(s)
	if err != nil {
		t.Fatalf("invalid time fixture %s: %v", s, err)
	}

	return pgTime
}

func TestCourtService_Create(t *testing.T) {
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
	pgOwnerID := pgtype.UUID{Bytes: ownerID, Valid: true}

	req := dto.CreateCourtRequest{
		VenueID:      7,
		Name:         "Court 1",
		Sport:        "badminton",
		PricePerHour: 500,
	}

	t.Run("error: venue not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueOwner(gomock.Any(), gomock.Any(), int64(7)).
			Return(pgtype.UUID{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Create(ctx, ownerID.String(), "owner", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: not the venue owner", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueOwner(gomock.Any(), gomock.Any(), int64(7)).
			Return(pgOwnerID, nil).
			Times(1)

		_, err := service.Create(ctx, uuid.New().String(), "owner", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueOwner(gomock.Any(), gomock.Any(), int64(7)).
			Return(pgOwnerID, nil).
			Times(1)

		mockQuerier.EXPECT().
			CreateCourt(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateCourtParams) (repository.Court, error) {
				assert.Equal(t, int64(7), arg.VenueID)
				assert.Equal(t, int64(500), arg.PricePerHour)

				return repository.Court{ID: 3, VenueID: 7, Name: arg.Name}, nil
			}).
			Times(1)

		res, err := service.Create(ctx, ownerID.String(), "owner", req)

		assert.NoError(t, err)
		assert.Equal(t, "3", res)
	})
}

func TestCourtService_UpdateStatus(t *testing.T) {
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
	pgOwnerID := pgtype.UUID{Bytes: ownerID, Valid: true}
	courtMock := repository.Court{ID: 3, VenueID: 7, Name: "Court 1", Sport: "badminton", Status: "active"}

	t.Run("error: court not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(404)).
			Return(repository.Court{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.UpdateStatus(ctx, 404, ownerID.String(), "owner", dto.UpdateCourtStatusRequest{Status: "maintenance"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)
		mockQuerier.EXPECT().
			UpdateCourtStatus(gomock.Any(), gomock.Any(), repository.UpdateCourtStatusParams{ID: 3, Status: "maintenance"}).
			Return(repository.Court{ID: 3, Status: "maintenance"}, nil).
			Times(1)

		res, err := service.UpdateStatus(ctx, 3, ownerID.String(), "owner", dto.UpdateCourtStatusRequest{Status: "maintenance"})

		assert.NoError(t, err)
		assert.Equal(t, "3", res)
	})
}

func TestCourtService_CreateTimeSlot(t *testing.T) {
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
	pgOwnerID := pgtype.UUID{Bytes: ownerID, Valid: true}
	courtMock := repository.Court{ID: 3, VenueID: 7, Name: "Court 1", Sport: "badminton", Status: "active"}

	expectOwnedCourt := func() {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)
	}

	t.Run("error: slot is not exactly one hour", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		expectOwnedCourt()

		_, err := service.CreateTimeSlot(ctx, 3, ownerID.String(), "owner", dto.CreateTimeSlotRequest{
			StartTime: "06:00",
			EndTime:   "08:00",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: overlapping slot", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		expectOwnedCourt()

		mockQuerier.EXPECT().
			CountOverlappingTimeSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil).
			Times(1)

		_, err := service.CreateTimeSlot(ctx, 3, ownerID.String(), "owner", dto.CreateTimeSlotRequest{
			StartTime: "06:00",
			EndTime:   "07:00",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		expectOwnedCourt()

		mockQuerier.EXPECT().
			CountOverlappingTimeSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).
			Times(1)
		mockQuerier.EXPECT().
			CreateTimeSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateTimeSlotParams) (repository.TimeSlot, error) {
				assert.Equal(t, int64(3), arg.CourtID)
				assert.Equal(t, mustTime(t, "06:00"), arg.StartTime)
				assert.Equal(t, mustTime(t, "07:00"), arg.EndTime)

				return repository.TimeSlot{ID: 11, CourtID: 3, StartTime: arg.StartTime, EndTime: arg.EndTime}, nil
			}).
			Times(1)

		res, err := service.CreateTimeSlot(ctx, 3, ownerID.String(), "owner", dto.CreateTimeSlotRequest{
			StartTime: "06:00",
			EndTime:   "07:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "11", res)
	})
}

func TestCourtService_UpdateTimeSlot(t *testing.T) {
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
	pgOwnerID := pgtype.UUID{Bytes: ownerID, Valid: true}
	courtMock := repository.Court{ID: 3, VenueID: 7, Name: "Court 1", Sport: "badminton", Status: "active"}
	slotMock := repository.TimeSlot{ID: 11, CourtID: 3, StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "07:00")}

	blocked := true
	unblocked := false

	t.Run("error: slot not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetTimeSlotById(gomock.Any(), gomock.Any(), int64(404)).
			Return(repository.TimeSlot{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.UpdateTimeSlot(ctx, 404, ownerID.String(), "owner", dto.UpdateTimeSlotRequest{IsBlocked: &blocked})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: not the venue owner", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetTimeSlotById(gomock.Any(), gomock.Any(), int64(11)).
			Return(slotMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)

		_, err := service.UpdateTimeSlot(ctx, 11, uuid.New().String(), "owner", dto.UpdateTimeSlotRequest{IsBlocked: &blocked})

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("success: unblock clears block reason", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetTimeSlotById(gomock.Any(), gomock.Any(), int64(11)).
			Return(slotMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)
		mockQuerier.EXPECT().
			UpdateTimeSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateTimeSlotParams) (repository.TimeSlot, error) {
				assert.False(t, arg.IsBlocked.Bool)
				assert.False(t, arg.BlockReason.Valid)

				return repository.TimeSlot{ID: 11}, nil
			}).
			Times(1)

		res, err := service.UpdateTimeSlot(ctx, 11, ownerID.String(), "owner", dto.UpdateTimeSlotRequest{
			IsBlocked:   &unblocked,
			BlockReason: "ignored",
		})

		assert.NoError(t, err)
		assert.Equal(t, "11", res)
	})
}

func TestCourtService_Delete(t *testing.T) {
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
	pgOwnerID := pgtype.UUID{Bytes: ownerID, Valid: true}
	courtMock := repository.Court{ID: 3, VenueID: 7, Name: "Court 1", Sport: "badminton", Status: "active"}

	t.Run("error: court has bookings", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)
		mockQuerier.EXPECT().
			DeleteCourt(gomock.Any(), gomock.Any(), int64(3)).
			Return(&pgconn.PgError{Code: "23503"}).
			Times(1)

		err := service.Delete(ctx, 3, ownerID.String(), "owner")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: admin deletes any court", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetCourtVenueOwner(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgOwnerID, nil).
			Times(1)
		mockQuerier.EXPECT().
			DeleteCourt(gomock.Any(), gomock.Any(), int64(3)).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, 3, uuid.New().String(), "admin")

		assert.NoError(t, err)
	})
}
