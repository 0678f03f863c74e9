package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/dto"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/redis"
)

type BookingService interface {
	GetBookingByID(ctx context.Context, id, userID, role string) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (int, error)
	GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (dto.GetBookedSlotsResponse, error)
	CancelUserBooking(ctx context.Context, req dto.CancelUserBookingRequest) error
}

type bookingService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, cfg *config.Config, l logger.Interface) BookingService {
	return &bookingService{
		db:     db,
		repo:   r,
		cache:  c,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetBookingsKey   = "bookings"
	cacheCountBookingsKey = "bookings:count"
	cacheBookedSlotsKey   = "booked-slots"

	identifier = "service - booking - %s"
)

func (s *bookingService) GetBookingByID(ctx context.Context, id, userID, role string) (res dto.BookingResponse, err error) {
	bookingID := helper.PgUUID(id)

	booking, err := s.repo.GetBookingById(ctx, s.db, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "get - booking not found: "+id)

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "get - error getting booking by ID: %w", err)

		return res, err
	}

	if role != constant.UserRoleAdmin && helper.UUIDString(booking.UserID) != userID {
		s.logger.Error(identifier, "get - booking does not belong to user: "+id)

		return res, failure.Forbidden("booking does not belong to this user")
	}

	res = res.FromModel(booking)

	return res, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["user_id"] = userID
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get user bookings - cache hit for user: %s", userID)

		return cacheRes, nil
	}

	totalItems, err := s.CountUserBookings(ctx, userID, req)
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error counting user bookings: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetBookingsByUserId(ctx, s.db, repository.GetBookingsByUserIdParams{
		UserID:  helper.PgUUID(userID),
		Column2: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error getting bookings by user ID: %w", err)

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get user bookings - failed to save user bookings to cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) CountUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (total int, err error) {
	keyArgs := map[string]string{}
	keyArgs["user_id"] = userID
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count - cache hit for user bookings: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountBookingsByUserId(ctx, s.db, repository.CountBookingsByUserIdParams{
		UserID:  helper.PgUUID(userID),
		Column2: req.Filter,
	})
	if err != nil {
		s.logger.Error(identifier, "count - error counting user bookings: %s", err.Error())

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count - error saving user bookings count to cache: %s", err.Error())
		}
	}()

	return total, nil
}

func (s *bookingService) GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (res dto.GetBookedSlotsResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["court_id"] = strconv.FormatInt(req.CourtID, 10)
	keyArgs["date"] = req.Date
	cacheKey := helper.BuildCacheKey(cacheBookedSlotsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookedSlotsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get booked slots - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	slots, err := s.repo.GetBookedTimeSlots(ctx, s.db, repository.GetBookedTimeSlotsParams{
		CourtID:     req.CourtID,
		BookingDate: helper.PgDate(req.Date),
	})
	if err != nil {
		s.logger.Error(identifier, "get booked slots - error getting booked time slots: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(slots, req.CourtID, req.Date)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get booked slots - error saving booked slots to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) CancelUserBooking(ctx context.Context, req dto.CancelUserBookingRequest) (err error) {
	booking, err := s.repo.GetBookingById(ctx, s.db, helper.PgUUID(req.BookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "cancel user booking - booking not found: "+req.BookingID)

			return failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "cancel user booking - error getting booking: %w", err)

		return err
	}

	if helper.UUIDString(booking.UserID) != req.UserID {
		s.logger.Error(identifier, "cancel user booking - booking does not belong to user: "+req.BookingID)

		return failure.Forbidden("booking does not belong to this user")
	}

	if booking.Status != constant.BookingStatusPending && booking.Status != constant.BookingStatusConfirmed {
		s.logger.Error(identifier, "cancel user booking - booking is not cancellable: "+booking.Status)

		return failure.Conflict("booking can no longer be cancelled")
	}

	_, err = s.repo.CancelBooking(ctx, s.db, repository.CancelBookingParams{
		ID:         helper.PgUUID(req.BookingID),
		UserID:     helper.PgUUID(req.UserID),
		CanceledBy: helper.PgString(constant.BookingCanceledByUser),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "cancel user booking - booking already settled: "+req.BookingID)

			return failure.Conflict("booking can no longer be cancelled")
		}

		s.logger.Error(identifier, "cancel user booking - error canceling booking: %s", err.Error())

		return failure.InternalError(err)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing bookings cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing bookings count cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheBookedSlotsKey, "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing booked slots cache: %s", err.Error())
		}

		// Venue availability snapshots include booked slots.
		if err := s.cache.Clear(ctx, helper.BuildCacheKey("venue", "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing venue cache: %s", err.Error())
		}
	}()

	return nil
}
