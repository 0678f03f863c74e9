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
	"github.com/quickcourt/quickcourt/internal/domains/bookings/dto"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/mock"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
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

func TestBookingService_GetBookingByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	userID := uuid.New()
	bookingID := uuid.New()
	bookingMock := repository.GetBookingByIdRow{
		ID:            pgtype.UUID{Bytes: bookingID, Valid: true},
		UserID:        pgtype.UUID{Bytes: userID, Valid: true},
		CourtID:       3,
		BookingDate:   pgtype.Date{Time: time.Now().AddDate(0, 0, 7), Valid: true},
		StartTime:     mustTime(t, "06:00"),
		EndTime:       mustTime(t, "08:00"),
		DurationHours: 2,
		TotalAmount:   100000,
		Status:        constant.BookingStatusConfirmed,
		PaymentStatus: constant.PaymentStatusPaid,
		CreatedAt:     pgtype.Timestamp{Time: time.Now(), Valid: true},
		CourtName:     "Court 1",
		Sport:         "badminton",
		VenueName:     "Smash Arena",
	}

	t.Run("error: booking not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.GetBookingByIdRow{}, pgx.ErrNoRows).
			Times(1)

		_, err := service.GetBookingByID(ctx, uuid.New().String(), userID.String(), "player")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: booking belongs to another user", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingMock, nil).
			Times(1)

		_, err := service.GetBookingByID(ctx, bookingID.String(), uuid.New().String(), "player")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("success: owner of the booking", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingMock, nil).
			Times(1)

		res, err := service.GetBookingByID(ctx, bookingID.String(), userID.String(), "player")

		assert.NoError(t, err)
		assert.Equal(t, "Court 1", res.CourtName)
		assert.Equal(t, "Smash Arena", res.VenueName)
		assert.Equal(t, int64(100000), res.TotalAmount)
		assert.Equal(t, 2, res.DurationHours)
	})

	t.Run("success: admin can read any booking", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingMock, nil).
			Times(1)

		res, err := service.GetBookingByID(ctx, bookingID.String(), uuid.New().String(), "admin")

		assert.NoError(t, err)
		assert.Equal(t, bookingID.String(), res.ID)
	})
}

func TestBookingService_GetBookedSlots(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	req := dto.GetBookedSlotsRequest{
		CourtID: 3,
		Date:    "2026-09-05",
	}

	t.Run("success: returns booked intervals", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookedTimeSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.GetBookedTimeSlotsRow{
				{StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "08:00"), Status: constant.BookingStatusConfirmed},
			}, nil).
			Times(1)

		res, err := service.GetBookedSlots(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.CourtID)
		assert.Len(t, res.BookedSlots, 1)
		assert.Equal(t, "06:00", res.BookedSlots[0].StartTime)
		assert.Equal(t, "08:00", res.BookedSlots[0].EndTime)
	})

	t.Run("success: from cache", func(t *testing.T) {
		cached := dto.GetBookedSlotsResponse{CourtID: 3, Date: req.Date, BookedSlots: []dto.BookedSlot{}}

		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).Return(nil)
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := service.GetBookedSlots(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.CourtID)
		assert.Empty(t, res.BookedSlots)
	})
}

func TestBookingService_CancelUserBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{}
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	userID := uuid.New()
	bookingID := uuid.New()
	bookingMock := repository.GetBookingByIdRow{
		ID:     pgtype.UUID{Bytes: bookingID, Valid: true},
		UserID: pgtype.UUID{Bytes: userID, Valid: true},
		Status: constant.BookingStatusConfirmed,
	}

	req := dto.CancelUserBookingRequest{
		BookingID: bookingID.String(),
		UserID:    userID.String(),
	}

	t.Run("error: booking belongs to another user", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingMock, nil).
			Times(1)

		err := service.CancelUserBooking(ctx, dto.CancelUserBookingRequest{
			BookingID: bookingID.String(),
			UserID:    uuid.New().String(),
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("error: booking already cancelled", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		cancelled := bookingMock
		cancelled.Status = constant.BookingStatusCancelled

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cancelled, nil).
			Times(1)

		err := service.CancelUserBooking(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: records who cancelled", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
		mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingMock, nil).
			Times(1)

		mockQuerier.EXPECT().
			CancelBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CancelBookingParams) (repository.Booking, error) {
				assert.Equal(t, constant.BookingCanceledByUser, arg.CanceledBy.String)

				return repository.Booking{ID: arg.ID, Status: constant.BookingStatusCancelled}, nil
			}).
			Times(1)

		err := service.CancelUserBooking(ctx, req)

		assert.NoError(t, err)
	})
}

func TestBookingService_GetUserBookings(t *testing.T) {
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

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError).Times(2)
		mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockQuerier.EXPECT().
			CountBookingsByUserId(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil).
			Times(1)

		mockQuerier.EXPECT().
			GetBookingsByUserId(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.GetBookingsByUserIdRow{
				{
					ID:            pgtype.UUID{Bytes: uuid.New(), Valid: true},
					UserID:        pgtype.UUID{Bytes: userID, Valid: true},
					CourtID:       3,
					BookingDate:   pgtype.Date{Time: time.Now(), Valid: true},
					StartTime:     mustTime(t, "06:00"),
					EndTime:       mustTime(t, "07:00"),
					DurationHours: 1,
					TotalAmount:   50000,
					Status:        constant.BookingStatusConfirmed,
					PaymentStatus: constant.PaymentStatusPaid,
					CourtName:     "Court 1",
					Sport:         "badminton",
					VenueName:     "Smash Arena",
				},
			}, nil).
			Times(1)

		res, err := service.GetUserBookings(ctx, userID.String(), gdto.PaginationRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "Court 1", res.Bookings[0].CourtName)
	})
}
