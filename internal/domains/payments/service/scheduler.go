package service

import (
	"context"

	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/payments/repository"
	"github.com/quickcourt/quickcourt/pkg/postgres"
)

type SchedulerService struct {
	db   postgres.PgxIface
	repo *repository.Queries
	cfg  *config.Config
}

func NewSchedulerService(db postgres.PgxIface, cfg *config.Config) *SchedulerService {
	return &SchedulerService{
		db:   db,
		repo: repository.New(),
		cfg:  cfg,
	}
}

func (s *SchedulerService) ExpireOldPaymentOrders(ctx context.Context) (err error) {
	return s.repo.ExpireOldPaymentOrders(ctx, s.db, int32(s.cfg.Schedule.OrderTTLMinutes))
}
