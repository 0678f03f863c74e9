package app

import (
	"context"

	"github.com/quickcourt/quickcourt/config"
	bookingService "github.com/quickcourt/quickcourt/internal/domains/bookings/service"
	paymentService "github.com/quickcourt/quickcourt/internal/domains/payments/service"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/robfig/cron/v3"
)

func Cron(db postgres.PgxIface, cfg *config.Config, l logger.Interface) {
	bookingScheduler := bookingService.NewSchedulerService(db, cfg)
	paymentScheduler := paymentService.NewSchedulerService(db, cfg)

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsExpiration, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := bookingScheduler.ExpireOldBookings(ctx); err != nil {
			l.Error("Cron job - ExpireOldBookings failed: %v", err)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	_, err = c.AddFunc(cfg.Schedule.OrdersExpiration, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := paymentScheduler.ExpireOldPaymentOrders(ctx); err != nil {
			l.Error("Cron job - ExpireOldPaymentOrders failed: %v", err)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	c.Start()
}
