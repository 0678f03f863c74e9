package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickcourt/quickcourt/config"
	bookingRepository "github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	courtRepository "github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	"github.com/quickcourt/quickcourt/internal/domains/payments/dto"
	"github.com/quickcourt/quickcourt/internal/domains/payments/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/mail"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/razorpay"
	"github.com/quickcourt/quickcourt/pkg/redis"
	"github.com/quickcourt/quickcourt/pkg/timeslot"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	VerifyAndBook(ctx context.Context, userID, email string, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
}

type paymentService struct {
	db          postgres.PgxIface
	repo        repository.Querier
	bookingRepo bookingRepository.Querier
	courtRepo   courtRepository.Querier
	gateway     razorpay.Gateway
	mailService mail.Service
	cache       redis.IRedisCache
	cfg         *config.Config
	logger      logger.Interface
}

func New(
	db postgres.PgxIface,
	r repository.Querier,
	b bookingRepository.Querier,
	c courtRepository.Querier,
	g razorpay.Gateway,
	m mail.Service,
	cache redis.IRedisCache,
	cfg *config.Config,
	l logger.Interface,
) PaymentService {
	return &paymentService{
		db:          db,
		repo:        r,
		bookingRepo: b,
		courtRepo:   c,
		gateway:     g,
		mailService: m,
		cache:       cache,
		cfg:         cfg,
		logger:      l,
	}
}

const (
	cacheGetBookingsKey   = "bookings"
	cacheCountBookingsKey = "bookings:count"
	cacheBookedSlotsKey   = "booked-slots"
	cacheVenueKey         = "venue"

	identifier = "service - payments - %s"
)

// CreateOrder opens a provider order for the client-computed amount. The
// amount is not trusted here; it is re-derived from the court rate and the
// requested window during verification, before any booking exists.
func (s *paymentService) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	courtID, err := strconv.ParseInt(req.Notes["court_id"], 10, 64)
	if err != nil || courtID <= 0 {
		s.logger.Error(identifier, "create order - missing or malformed court_id note")

		return res, failure.BadRequestFromString("notes must carry a valid court_id")
	}

	court, err := s.courtRepo.GetCourtById(ctx, s.db, courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "create order - court not found: %d", courtID)

			return res, failure.NotFound("court not found")
		}

		s.logger.Error(identifier, "create order - error getting court: %w", err)

		return res, err
	}

	if court.Status != constant.CourtStatusActive {
		s.logger.Error(identifier, "create order - court is not active: %s", court.Status)

		return res, failure.UnprocessableEntity("court is not open for booking")
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Razorpay.Currency
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.CreateOrderParams{
		Amount:   req.Amount,
		Currency: currency,
		Receipt:  req.Receipt,
		Notes:    notes,
	})
	if err != nil {
		s.logger.Error(identifier, "create order - error creating provider order: %w", err)

		return res, failure.InternalError(err)
	}

	_, err = s.repo.InsertPaymentOrder(ctx, s.db, repository.InsertPaymentOrderParams{
		UserID:          helper.PgUUID(userID),
		CourtID:         courtID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		Receipt:         req.Receipt,
		ProviderOrderID: order.ID,
	})
	if err != nil {
		s.logger.Error(identifier, "create order - error inserting payment order: %w", err)

		return res, failure.InternalError(err)
	}

	res = dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.cfg.Razorpay.KeyID,
		Receipt:  req.Receipt,
	}

	return res, nil
}

func (s *paymentService) VerifyAndBook(ctx context.Context, userID, email string, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	if !s.gateway.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Error(identifier, "verify - payment signature verification failed for order: %s", req.OrderID)

		return res, failure.UnprocessableEntity("payment signature verification failed")
	}

	order, err := s.repo.GetPaymentOrderByProviderOrderId(ctx, s.db, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "verify - payment order not found: %s", req.OrderID)

			return res, failure.NotFound("payment order not found")
		}

		s.logger.Error(identifier, "verify - error getting payment order: %w", err)

		return res, err
	}

	if helper.UUIDString(order.UserID) != userID {
		s.logger.Error(identifier, "verify - order does not belong to user: %s", req.OrderID)

		return res, failure.Forbidden("payment order does not belong to this user")
	}

	switch order.Status {
	case constant.OrderStatusCreated:
	case constant.OrderStatusPaid:
		s.logger.Error(identifier, "verify - order already processed: %s", req.OrderID)

		return res, failure.Conflict("payment order already processed")
	default:
		s.logger.Error(identifier, "verify - order has expired: %s", req.OrderID)

		return res, failure.Conflict("payment order has expired")
	}

	if req.CourtID != order.CourtID {
		s.logger.Error(identifier, "verify - court does not match order: %s", req.OrderID)

		return res, failure.UnprocessableEntity("court does not match the payment order")
	}

	isValid, err := helper.IsBookingTimeValid(req.Date, req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "verify - error validating booking time: "+err.Error())

		return res, failure.BadRequestFromString("invalid booking time format")
	}

	if !isValid {
		s.logger.Error(identifier, "verify - booking time is in the past")

		return res, failure.BadRequestFromString("booking time cannot be in the past")
	}

	duration := helper.CalculateDurationHours(req.StartTime, req.EndTime)
	if duration < 1 {
		s.logger.Error(identifier, "verify - selection does not cover whole hour slots")

		return res, failure.BadRequestFromString("selection must cover one or more whole hour slots")
	}

	court, err := s.courtRepo.GetCourtById(ctx, s.db, req.CourtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "verify - court not found: %d", req.CourtID)

			return res, failure.NotFound("court not found")
		}

		s.logger.Error(identifier, "verify - error getting court: %w", err)

		return res, err
	}

	if court.Status != constant.CourtStatusActive {
		s.logger.Error(identifier, "verify - court is not active: %s", court.Status)

		return res, failure.UnprocessableEntity("court is not open for booking")
	}

	if err = s.checkSlotCoverage(ctx, req.CourtID, req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	expected := helper.ToMinorUnits(helper.CalculateTotalPrice(court.PricePerHour, duration))
	if expected != order.Amount {
		s.logger.Error(identifier, "verify - order amount does not match booking price: %s", req.OrderID)

		return res, failure.UnprocessableEntity("payment amount does not match the booking price")
	}

	startTime, err := helper.PgTimeFromString(req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "verify - error parsing start time: "+err.Error())

		return res, failure.BadRequestFromString("invalid start time format")
	}

	endTime, err := helper.PgTimeFromString(req.EndTime)
	if err != nil {
		s.logger.Error(identifier, "verify - error parsing end time: "+err.Error())

		return res, failure.BadRequestFromString("invalid end time format")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "verify - error starting transaction: "+err.Error())

		return res, err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "verify - error rolling back transaction: "+err.Error())
		}
	}(tx, ctx)

	overlaps, err := s.bookingRepo.CountOverlaps(ctx, tx, bookingRepository.CountOverlapsParams{
		CourtID:     req.CourtID,
		BookingDate: helper.PgDate(req.Date),
		Column3:     startTime,
		Column4:     endTime,
	})
	if err != nil {
		s.logger.Error(identifier, "verify - error checking booking overlaps: %w", err)

		return res, err
	}

	if overlaps > 0 {
		s.logger.Error(identifier, "verify - slots were booked while payment was in flight: %s", req.OrderID)

		return res, failure.Conflict("selected slots are no longer available")
	}

	booking, err := s.bookingRepo.InsertBooking(ctx, tx, bookingRepository.InsertBookingParams{
		UserID:          order.UserID,
		CourtID:         req.CourtID,
		BookingDate:     helper.PgDate(req.Date),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationHours:   int32(duration),
		TotalAmount:     order.Amount,
		Status:          constant.BookingStatusConfirmed,
		PaymentStatus:   constant.PaymentStatusPaid,
		SpecialRequests: helper.PgString(req.SpecialRequests),
	})
	if err != nil {
		s.logger.Error(identifier, "verify - error inserting booking: %w", err)

		return res, err
	}

	payment, err := s.repo.InsertPayment(ctx, tx, repository.InsertPaymentParams{
		OrderID:           order.ID,
		BookingID:         booking.ID,
		ProviderPaymentID: req.PaymentID,
		Signature:         req.Signature,
		Amount:            order.Amount,
		Status:            constant.PaymentStatusPaid,
		PaidAt:            helper.PgTimestampNow(),
	})
	if err != nil {
		s.logger.Error(identifier, "verify - error inserting payment: %w", err)

		return res, err
	}

	if _, err = s.repo.MarkPaymentOrderPaid(ctx, tx, order.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "verify - order settled concurrently: %s", req.OrderID)

			return res, failure.Conflict("payment order already processed")
		}

		s.logger.Error(identifier, "verify - error marking order paid: %w", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "verify - error committing transaction: "+err.Error())

		return res, err
	}

	res = dto.VerifyPaymentResponse{
		BookingID: booking.ID.String(),
		PaymentID: payment.ID.String(),
		Status:    constant.BookingStatusConfirmed,
	}

	s.sendConfirmation(ctx, booking.ID, email, req.PaymentID, order)
	s.invalidate(ctx)

	return res, nil
}

// checkSlotCoverage verifies the requested window is fully covered by a
// contiguous run of unblocked slots defined for the court.
func (s *paymentService) checkSlotCoverage(ctx context.Context, courtID int64, start, end string) error {
	defined, err := s.courtRepo.GetTimeSlotsByCourtID(ctx, s.db, courtID)
	if err != nil {
		s.logger.Error(identifier, "verify - error getting time slots: %w", err)

		return err
	}

	snapshot := make([]timeslot.Slot, 0, len(defined))

	for _, slot := range defined {
		startTime, err := helper.PgTimeToString(slot.StartTime)
		if err != nil {
			continue
		}

		endTime, err := helper.PgTimeToString(slot.EndTime)
		if err != nil {
			continue
		}

		snapshot = append(snapshot, timeslot.Slot{
			ID:        slot.ID,
			StartTime: startTime,
			EndTime:   endTime,
			Available: !slot.IsBlocked.Bool,
		})
	}

	if _, ok := timeslot.Chain(snapshot, start, end); !ok {
		s.logger.Error(identifier, "verify - selection is not covered by available slots")

		return failure.UnprocessableEntity("selected time is not available for this court")
	}

	return nil
}

func (s *paymentService) sendConfirmation(ctx context.Context, bookingID pgtype.UUID, email, providerPaymentID string, order repository.PaymentOrder) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		booking, err := s.bookingRepo.GetBookingById(ctx, s.db, bookingID)
		if err != nil {
			s.logger.Error(identifier, "verify - error loading booking for confirmation mail: %w", err)

			return
		}

		startTime, _ := helper.PgTimeToString(booking.StartTime)
		endTime, _ := helper.PgTimeToString(booking.EndTime)

		data := mail.BookingConfirmationData{
			CustomerName:     email,
			BookingID:        bookingID.String(),
			Status:           booking.Status,
			VenueName:        booking.VenueName,
			CourtName:        booking.CourtName,
			BookingDate:      booking.BookingDate.Time.Format(constant.DateFormat),
			StartTime:        startTime,
			EndTime:          endTime,
			TotalAmount:      fmt.Sprintf("%s %.2f", order.Currency, float64(order.Amount)/float64(constant.MinorUnitFactor)),
			PaymentID:        providerPaymentID,
			ConfirmationDate: helper.NowInAppTimezone().Format(constant.FullDateFormat),
		}

		if err := s.mailService.SendBookingConfirmationEmail(email, data); err != nil {
			s.logger.Error(identifier, "verify - error sending confirmation mail: %w", err)
		}
	}()
}

func (s *paymentService) invalidate(ctx context.Context) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		for _, key := range []string{cacheGetBookingsKey, cacheCountBookingsKey, cacheBookedSlotsKey, cacheVenueKey} {
			if err := s.cache.Clear(ctx, helper.BuildCacheKey(key, "*")); err != nil {
				s.logger.Error(identifier, "verify - error clearing cache: %w", err)
			}
		}
	}()
}
