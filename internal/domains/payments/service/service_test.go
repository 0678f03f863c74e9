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
	bookingMock "github.com/quickcourt/quickcourt/internal/domains/bookings/mock"
	bookingRepository "github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	courtMock "github.com/quickcourt/quickcourt/internal/domains/courts/mock"
	courtRepository "github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	"github.com/quickcourt/quickcourt/internal/domains/payments/dto"
	"github.com/quickcourt/quickcourt/internal/domains/payments/mock"
	"github.com/quickcourt/quickcourt/internal/domains/payments/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	log "github.com/quickcourt/quickcourt/pkg/logger/mock"
	mailMock "github.com/quickcourt/quickcourt/pkg/mail/mock"
	"github.com/quickcourt/quickcourt/pkg/razorpay"
	razorpayMock "github.com/quickcourt/quickcourt/pkg/razorpay/mock"
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

type fixtures struct {
	pgx      pgxmock.PgxPoolIface
	repo     *mock.MockQuerier
	bookings *bookingMock.MockQuerier
	courts   *courtMock.MockQuerier
	gateway  *razorpayMock.MockGateway
	mail     *mailMock.MockService
	redis    *redis.MockIRedisCache
	logger   *log.MockInterface
	service  PaymentService
}

func newFixtures(t *testing.T, ctrl *gomock.Controller) fixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Razorpay.KeyID = "rzp_test_key"
	cfg.Razorpay.Currency = "INR"
	cfg.Cache.Duration = 300

	f := fixtures{
		repo:     mock.NewMockQuerier(ctrl),
		bookings: bookingMock.NewMockQuerier(ctrl),
		courts:   courtMock.NewMockQuerier(ctrl),
		gateway:  razorpayMock.NewMockGateway(ctrl),
		mail:     mailMock.NewMockService(ctrl),
		redis:    redis.NewMockIRedisCache(ctrl),
		logger:   log.NewMockInterface(ctrl),
	}

	f.pgx, _ = pgxmock.NewPool()
	f.service = New(f.pgx, f.repo, f.bookings, f.courts, f.gateway, f.mail, f.redis, cfg, f.logger)

	f.logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New().String()

	courtMockRow := courtRepository.Court{
		ID:           3,
		VenueID:      7,
		Name:         "Court 1",
		Sport:        "badminton",
		PricePerHour: 500,
		Status:       constant.CourtStatusActive,
	}

	req := dto.CreateOrderRequest{
		Amount:  100000,
		Receipt: "receipt_1756450800000",
		Notes:   map[string]string{"court_id": "3"},
	}

	t.Run("error: missing court_id note", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		bare := req
		bare.Notes = map[string]string{"source": "web"}

		_, err := f.service.CreateOrder(ctx, userID, bare)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: malformed court_id note", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		malformed := req
		malformed.Notes = map[string]string{"court_id": "court-three"}

		_, err := f.service.CreateOrder(ctx, userID, malformed)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: court not found", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtRepository.Court{}, pgx.ErrNoRows).
			Times(1)

		_, err := f.service.CreateOrder(ctx, userID, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: court under maintenance", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		maintenance := courtMockRow
		maintenance.Status = constant.CourtStatusMaintenance

		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(maintenance, nil).
			Times(1)

		_, err := f.service.CreateOrder(ctx, userID, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: provider order creation fails before persisting", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.gateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			Return(razorpay.Order{}, errors.New("gateway unavailable")).
			Times(1)

		_, err := f.service.CreateOrder(ctx, userID, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: client amount and receipt passed through", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)

		f.gateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params razorpay.CreateOrderParams) (razorpay.Order, error) {
				assert.Equal(t, int64(100000), params.Amount)
				assert.Equal(t, "INR", params.Currency)
				assert.Equal(t, "receipt_1756450800000", params.Receipt)
				assert.Equal(t, "3", params.Notes["court_id"])

				return razorpay.Order{ID: "order_ABC123", Amount: params.Amount, Currency: params.Currency}, nil
			}).
			Times(1)

		f.repo.EXPECT().
			InsertPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentOrderParams) (repository.PaymentOrder, error) {
				assert.Equal(t, "order_ABC123", arg.ProviderOrderID)
				assert.Equal(t, int64(3), arg.CourtID)
				assert.Equal(t, int64(100000), arg.Amount)
				assert.Equal(t, "receipt_1756450800000", arg.Receipt)

				return repository.PaymentOrder{ProviderOrderID: arg.ProviderOrderID, Amount: arg.Amount}, nil
			}).
			Times(1)

		res, err := f.service.CreateOrder(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, "order_ABC123", res.OrderID)
		assert.Equal(t, int64(100000), res.Amount)
		assert.Equal(t, "rzp_test_key", res.KeyID)
	})

	t.Run("success: explicit currency wins over the configured default", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		usd := req
		usd.Currency = "USD"

		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.gateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params razorpay.CreateOrderParams) (razorpay.Order, error) {
				assert.Equal(t, "USD", params.Currency)

				return razorpay.Order{ID: "order_USD001", Amount: params.Amount, Currency: params.Currency}, nil
			}).
			Times(1)
		f.repo.EXPECT().
			InsertPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.PaymentOrder{}, nil).
			Times(1)

		res, err := f.service.CreateOrder(ctx, userID, usd)

		assert.NoError(t, err)
		assert.Equal(t, "USD", res.Currency)
	})
}

func TestPaymentService_VerifyAndBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	email := "player@example.com"
	futureDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	orderMock := repository.PaymentOrder{
		ID:              pgtype.UUID{Bytes: uuid.New(), Valid: true},
		UserID:          pgtype.UUID{Bytes: userID, Valid: true},
		CourtID:         3,
		Amount:          100000,
		Currency:        "INR",
		Receipt:         "receipt_1756450800000",
		ProviderOrderID: "order_ABC123",
		Status:          constant.OrderStatusCreated,
	}

	courtMockRow := courtRepository.Court{
		ID:           3,
		VenueID:      7,
		Name:         "Court 1",
		Sport:        "badminton",
		PricePerHour: 500,
		Status:       constant.CourtStatusActive,
	}

	slotsMock := []courtRepository.TimeSlot{
		{ID: 1, CourtID: 3, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		{ID: 2, CourtID: 3, StartTime: mustTime(t, "19:00"), EndTime: mustTime(t, "20:00")},
		{ID: 3, CourtID: 3, StartTime: mustTime(t, "20:00"), EndTime: mustTime(t, "21:00"), IsBlocked: pgtype.Bool{Bool: true, Valid: true}},
	}

	req := dto.VerifyPaymentRequest{
		OrderID:   "order_ABC123",
		PaymentID: "pay_XYZ789",
		Signature: "deadbeef",
		CourtID:   3,
		Date:      futureDate,
		StartTime: "18:00",
		EndTime:   "20:00",
	}

	t.Run("error: bad signature leaves no state behind", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, "forged").
			Return(false).
			Times(1)

		badReq := req
		badReq.Signature = "forged"

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, badReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: order not found", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(repository.PaymentOrder{}, pgx.ErrNoRows).
			Times(1)

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: order belongs to another user", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)

		_, err := f.service.VerifyAndBook(ctx, uuid.New().String(), email, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("error: order already processed", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		paid := orderMock
		paid.Status = constant.OrderStatusPaid

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(paid, nil).
			Times(1)

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: court does not match the order", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)

		swapped := req
		swapped.CourtID = 9

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, swapped)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: booking time in the past", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)

		past := req
		past.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, past)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: window touches a blocked slot", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)
		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.courts.EXPECT().
			GetTimeSlotsByCourtID(gomock.Any(), gomock.Any(), int64(3)).
			Return(slotsMock, nil).
			Times(1)

		blocked := req
		blocked.StartTime = "19:00"
		blocked.EndTime = "21:00"

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, blocked)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: paid amount below the booking price", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		underpaid := orderMock
		underpaid.Amount = 50000

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(underpaid, nil).
			Times(1)
		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.courts.EXPECT().
			GetTimeSlotsByCourtID(gomock.Any(), gomock.Any(), int64(3)).
			Return(slotsMock, nil).
			Times(1)

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: slots taken while payment in flight", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)
		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.courts.EXPECT().
			GetTimeSlotsByCourtID(gomock.Any(), gomock.Any(), int64(3)).
			Return(slotsMock, nil).
			Times(1)

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.bookings.EXPECT().
			CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil).
			Times(1)

		_, err := f.service.VerifyAndBook(ctx, userID.String(), email, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: booking confirmed and order settled", func(t *testing.T) {
		f := newFixtures(t, ctrl)

		bookingID := uuid.New()
		paymentID := uuid.New()

		f.gateway.EXPECT().
			VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature).
			Return(true).
			Times(1)
		f.repo.EXPECT().
			GetPaymentOrderByProviderOrderId(gomock.Any(), gomock.Any(), req.OrderID).
			Return(orderMock, nil).
			Times(1)
		f.courts.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), int64(3)).
			Return(courtMockRow, nil).
			Times(1)
		f.courts.EXPECT().
			GetTimeSlotsByCourtID(gomock.Any(), gomock.Any(), int64(3)).
			Return(slotsMock, nil).
			Times(1)

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.bookings.EXPECT().
			CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).
			Times(1)

		f.bookings.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ bookingRepository.DBTX, arg bookingRepository.InsertBookingParams) (bookingRepository.Booking, error) {
				assert.Equal(t, int64(3), arg.CourtID)
				assert.Equal(t, futureDate, arg.BookingDate.Time.Format("2006-01-02"))
				assert.Equal(t, int32(2), arg.DurationHours)
				assert.Equal(t, constant.BookingStatusConfirmed, arg.Status)
				assert.Equal(t, constant.PaymentStatusPaid, arg.PaymentStatus)
				assert.Equal(t, int64(100000), arg.TotalAmount)

				return bookingRepository.Booking{
					ID:     pgtype.UUID{Bytes: bookingID, Valid: true},
					Status: arg.Status,
				}, nil
			}).
			Times(1)

		f.repo.EXPECT().
			InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentParams) (repository.Payment, error) {
				assert.Equal(t, "pay_XYZ789", arg.ProviderPaymentID)
				assert.Equal(t, constant.PaymentStatusPaid, arg.Status)

				return repository.Payment{ID: pgtype.UUID{Bytes: paymentID, Valid: true}}, nil
			}).
			Times(1)

		f.repo.EXPECT().
			MarkPaymentOrderPaid(gomock.Any(), gomock.Any(), orderMock.ID).
			Return(orderMock, nil).
			Times(1)

		f.bookings.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingRepository.GetBookingByIdRow{
				ID:        pgtype.UUID{Bytes: bookingID, Valid: true},
				Status:    constant.BookingStatusConfirmed,
				CourtName: "Court 1",
				VenueName: "Smash Arena",
			}, nil).
			AnyTimes()
		f.mail.EXPECT().
			SendBookingConfirmationEmail(email, gomock.Any()).
			Return(nil).
			AnyTimes()
		f.redis.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.service.VerifyAndBook(ctx, userID.String(), email, req)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
		assert.NotEmpty(t, res.BookingID)
	})
}
