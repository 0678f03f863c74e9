package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/venues/dto"
	"github.com/quickcourt/quickcourt/internal/domains/venues/mock"
	"github.com/quickcourt/quickcourt/internal/domains/venues/repository"
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

func TestVenueService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	ownerID := uuid.New()
	venueMock := repository.Venue{
		ID:           7,
		OwnerID:      pgtype.UUID{Bytes: ownerID, Valid: true},
		Name:         "Smash Arena",
		Address:      "12 MG Road",
		City:         "Ahmedabad",
		OpeningTime:  mustTime(t, "06:00"),
		ClosingTime:  mustTime(t, "22:00"),
		TotalReviews: 12,
		IsActive:     pgtype.Bool{Bool: true, Valid: true},
		CreatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
		UpdatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	courtsMock := []repository.GetVenueCourtsRow{
		{
			ID:           3,
			Name:         "Court 1",
			Sport:        "badminton",
			PricePerHour: 500,
			Status:       "active",
		},
	}

	slotsMock := []repository.GetVenueTimeSlotsRow{
		{ID: 1, CourtID: 3, StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "07:00")},
		{ID: 2, CourtID: 3, StartTime: mustTime(t, "07:00"), EndTime: mustTime(t, "08:00")},
		{ID: 3, CourtID: 3, StartTime: mustTime(t, "08:00"), EndTime: mustTime(t, "09:00"), IsBlocked: pgtype.Bool{Bool: true, Valid: true}},
	}

	bookedMock := []repository.GetBookedIntervalsRow{
		{CourtID: 3, StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "07:00")},
	}

	photosMock := []repository.VenuePhoto{
		{ID: 1, VenueID: 7, Url: "https://cdn.example.com/bucket/venues/a.jpg", IsPrimary: pgtype.Bool{Bool: true, Valid: true}},
	}

	futureDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	t.Run("error: invalid date format", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := service.Availability(ctx, 7, "02-01-2030")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, res.Courts)
	})

	t.Run("error: venue not found", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(404)).
			Return(repository.Venue{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.Availability(ctx, 404, futureDate)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: computes slot availability", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(7)).
			Return(venueMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetVenuePhotos(gomock.Any(), gomock.Any(), int64(7)).
			Return(photosMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetVenueCourts(gomock.Any(), gomock.Any(), int64(7)).
			Return(courtsMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetVenueTimeSlots(gomock.Any(), gomock.Any(), int64(7)).
			Return(slotsMock, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetBookedIntervals(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookedMock, nil).
			Times(1)

		res, err := service.Availability(ctx, 7, futureDate)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.Venue.ID)
		assert.Equal(t, "Smash Arena", res.Venue.Name)
		assert.Len(t, res.Venue.Photos, 1)
		assert.Equal(t, futureDate, res.Date)
		assert.Len(t, res.Courts, 1)

		slots := res.Courts[0].TimeSlots
		assert.Len(t, slots, 3)
		assert.False(t, slots[0].Available, "booked slot must not be available")
		assert.True(t, slots[1].Available, "free slot must be available")
		assert.False(t, slots[2].Available, "blocked slot must not be available")
		assert.Equal(t, int64(500), slots[1].Price)
	})

	t.Run("success: from cache", func(t *testing.T) {
		cached := dto.VenueAvailabilityResponse{
			Venue: dto.VenueResponse{ID: 7, Name: "Smash Arena"},
			Date:  futureDate,
		}

		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).Return(nil)
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := service.Availability(ctx, 7, futureDate)

		assert.NoError(t, err)
		assert.Equal(t, "Smash Arena", res.Venue.Name)
	})
}

func TestVenueService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	ownerID := uuid.New().String()

	t.Run("error: closing time before opening time", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		_, err := service.Create(ctx, ownerID, dto.CreateVenueRequest{
			Name:        "Smash Arena",
			Address:     "12 MG Road",
			City:        "Ahmedabad",
			OpeningTime: "22:00",
			ClosingTime: "06:00",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			CreateVenue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Venue{ID: 7}, nil).
			Times(1)

		res, err := service.Create(ctx, ownerID, dto.CreateVenueRequest{
			Name:        "Smash Arena",
			Address:     "12 MG Road",
			City:        "Ahmedabad",
			OpeningTime: "06:00",
			ClosingTime: "22:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "7", res)
	})
}

func TestVenueService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	ownerID := uuid.New()
	venueMock := repository.Venue{
		ID:          7,
		OwnerID:     pgtype.UUID{Bytes: ownerID, Valid: true},
		Name:        "Smash Arena",
		Address:     "12 MG Road",
		City:        "Ahmedabad",
		OpeningTime: mustTime(t, "06:00"),
		ClosingTime: mustTime(t, "22:00"),
		IsActive:    pgtype.Bool{Bool: true, Valid: true},
	}

	t.Run("error: not the venue owner", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(7)).
			Return(venueMock, nil).
			Times(1)

		_, err := service.Update(ctx, 7, uuid.New().String(), "owner", dto.UpdateVenueRequest{Name: "New Name"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("error: no fields to update", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(7)).
			Return(venueMock, nil).
			Times(1)

		_, err := service.Update(ctx, 7, ownerID.String(), "owner", dto.UpdateVenueRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: admin can update any venue", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(7)).
			Return(venueMock, nil).
			Times(1)

		mockQuerier.EXPECT().
			UpdateVenue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateVenueParams) (repository.Venue, error) {
				assert.Equal(t, "New Name", arg.Name)

				updated := venueMock
				updated.Name = arg.Name

				return updated, nil
			}).
			Times(1)

		res, err := service.Update(ctx, 7, uuid.New().String(), "admin", dto.UpdateVenueRequest{Name: "New Name"})

		assert.NoError(t, err)
		assert.Equal(t, "7", res)
	})
}

func TestVenueService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger, nil)

	ownerID := uuid.New()
	venueMock := repository.Venue{
		ID:      7,
		OwnerID: pgtype.UUID{Bytes: ownerID, Valid: true},
		Name:    "Smash Arena",
	}

	t.Run("error: venue not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(404)).
			Return(repository.Venue{}, pgx.ErrNoRows).
			Times(1)

		err := service.Delete(ctx, 404, ownerID.String(), "owner")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: owner deletes own venue", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetVenueById(gomock.Any(), gomock.Any(), int64(7)).
			Return(venueMock, nil).
			Times(1)

		mockQuerier.EXPECT().
			DeleteVenue(gomock.Any(), gomock.Any(), int64(7)).
			Return(nil).
			Times(1)

		err := service.Delete(ctx, 7, ownerID.String(), "owner")

		assert.NoError(t, err)
	})
}
