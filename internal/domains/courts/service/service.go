package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/courts/dto"
	"github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/redis"
)

type CourtService interface {
	Create(ctx context.Context, userID, role string, req dto.CreateCourtRequest) (string, error)
	Get(ctx context.Context, id int64) (dto.CourtResponse, error)
	GetByVenue(ctx context.Context, venueID int64, req gdto.PaginationRequest) (dto.GetCourtsResponse, error)
	Update(ctx context.Context, id int64, userID, role string, req dto.UpdateCourtRequest) (string, error)
	UpdateStatus(ctx context.Context, id int64, userID, role string, req dto.UpdateCourtStatusRequest) (string, error)
	Delete(ctx context.Context, id int64, userID, role string) error
	CreateTimeSlot(ctx context.Context, courtID int64, userID, role string, req dto.CreateTimeSlotRequest) (string, error)
	GetTimeSlots(ctx context.Context, courtID int64) (dto.GetTimeSlotsResponse, error)
	UpdateTimeSlot(ctx context.Context, slotID int64, userID, role string, req dto.UpdateTimeSlotRequest) (string, error)
	DeleteTimeSlot(ctx context.Context, slotID int64, userID, role string) error
}

type courtService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) CourtService {
	return &courtService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetCourtsKey = "courts"
	cacheGetCourtKey  = "court"
	// Venue availability snapshots embed court and slot data, so court
	// mutations clear them too.
	cacheVenueKey = "venue"

	identifier = "service - court - %s"

	slotDurationHours = 1
)

func (s *courtService) Create(ctx context.Context, userID, role string, req dto.CreateCourtRequest) (res string, err error) {
	ownerID, err := s.repo.GetVenueOwner(ctx, s.db, req.VenueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", req.VenueID))
		}

		s.logger.Error(identifier, "create - failed to get venue owner: %w", err)

		return res, err
	}

	if err = s.authorize(ownerID, userID, role); err != nil {
		s.logger.Error(identifier, "create - not venue owner: %w", err)

		return res, err
	}

	newCourt, err := s.repo.CreateCourt(ctx, s.db, repository.CreateCourtParams{
		VenueID:      req.VenueID,
		Name:         req.Name,
		Sport:        req.Sport,
		Description:  helper.PgString(req.Description),
		PricePerHour: req.PricePerHour,
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create court: %w", err)

		return res, err
	}

	res = strconv.FormatInt(newCourt.ID, 10)

	s.invalidate(ctx, "create")

	return res, nil
}

func (s *courtService) Get(ctx context.Context, id int64) (res dto.CourtResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetCourtKey, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	court, err := s.repo.GetCourtById(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %d - not found", id))
			s.logger.Error(identifier, "get - court not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get court: %w", err)

		return res, err
	}

	slots, err := s.repo.GetTimeSlotsByCourtID(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, "get - failed to get time slots: %w", err)

		return res, err
	}

	res = dto.CourtResponse{}.FromModel(court).WithTimeSlots(slots)

	go func() {
		err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *courtService) GetByVenue(ctx context.Context, venueID int64, req gdto.PaginationRequest) (res dto.GetCourtsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["venue_id"] = strconv.FormatInt(venueID, 10)
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	cacheKey := helper.BuildCacheKey(cacheGetCourtsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetCourtsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getByVenue - cache hit for venue %d", venueID)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountCourtsByVenueID(ctx, s.db, venueID)
	if err != nil {
		s.logger.Error(identifier, "getByVenue - failed to count courts: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	courts, err := s.repo.GetCourtsByVenueID(ctx, s.db, repository.GetCourtsByVenueIDParams{
		VenueID: venueID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getByVenue - failed to get courts: %w", err)

		return res, err
	}

	res.FromModel(courts, int(totalItems), limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "getByVenue - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *courtService) Update(ctx context.Context, id int64, userID, role string, req dto.UpdateCourtRequest) (res string, err error) {
	existingCourt, err := s.getOwnedCourt(ctx, id, userID, role, "update")
	if err != nil {
		return res, err
	}

	val := reflect.ValueOf(req)
	typ := reflect.TypeOf(req)

	var updatedFields []string

	for i := range val.NumField() {
		field := val.Field(i)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(i).Tag.Get("json")
		updatedFields = append(updatedFields, fieldName)

		switch fieldName {
		case "name":
			existingCourt.Name = field.Interface().(string)
		case "sport":
			existingCourt.Sport = field.Interface().(string)
		case "description":
			existingCourt.Description = helper.PgString(field.Interface().(string))
		case "price_per_hour":
			existingCourt.PricePerHour = field.Int()
		}
	}

	if len(updatedFields) == 0 {
		s.logger.Error(identifier, "update - at least one field is required to update")

		err := failure.BadRequestFromString("at least one field is required to update")

		return res, err
	}

	updatedCourt, err := s.repo.UpdateCourt(ctx, s.db, repository.UpdateCourtParams{
		ID:           id,
		Name:         existingCourt.Name,
		Sport:        existingCourt.Sport,
		Description:  existingCourt.Description,
		PricePerHour: existingCourt.PricePerHour,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update court: %w", err)

		return res, err
	}

	res = strconv.FormatInt(updatedCourt.ID, 10)

	s.invalidate(ctx, "update")

	return res, nil
}

func (s *courtService) UpdateStatus(ctx context.Context, id int64, userID, role string, req dto.UpdateCourtStatusRequest) (res string, err error) {
	if _, err = s.getOwnedCourt(ctx, id, userID, role, "updateStatus"); err != nil {
		return res, err
	}

	updatedCourt, err := s.repo.UpdateCourtStatus(ctx, s.db, repository.UpdateCourtStatusParams{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		s.logger.Error(identifier, "updateStatus - failed to update court status: %w", err)

		return res, err
	}

	res = strconv.FormatInt(updatedCourt.ID, 10)

	s.invalidate(ctx, "updateStatus")

	return res, nil
}

func (s *courtService) Delete(ctx context.Context, id int64, userID, role string) (err error) {
	if _, err = s.getOwnedCourt(ctx, id, userID, role, "delete"); err != nil {
		return err
	}

	err = s.repo.DeleteCourt(ctx, s.db, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("court used by other entities")
		}

		s.logger.Error(identifier, "delete - failed to delete court: %w", err)

		return err
	}

	s.invalidate(ctx, "delete")

	return nil
}

func (s *courtService) CreateTimeSlot(ctx context.Context, courtID int64, userID, role string, req dto.CreateTimeSlotRequest) (res string, err error) {
	if _, err = s.getOwnedCourt(ctx, courtID, userID, role, "createTimeSlot"); err != nil {
		return res, err
	}

	if helper.CalculateDurationHours(req.StartTime, req.EndTime) != slotDurationHours {
		err = failure.BadRequestFromString("time slot must be exactly one hour")
		s.logger.Error(identifier, "createTimeSlot - invalid slot duration: %w", err)

		return res, err
	}

	startTime, err := helper.PgTimeFromString(req.StartTime)
	if err != nil {
		err = failure.BadRequestFromString("invalid start time format")
		s.logger.Error(identifier, "createTimeSlot - invalid start time: %w", err)

		return res, err
	}

	endTime, err := helper.PgTimeFromString(req.EndTime)
	if err != nil {
		err = failure.BadRequestFromString("invalid end time format")
		s.logger.Error(identifier, "createTimeSlot - invalid end time: %w", err)

		return res, err
	}

	overlapping, err := s.repo.CountOverlappingTimeSlots(ctx, s.db, repository.CountOverlappingTimeSlotsParams{
		CourtID:   courtID,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		s.logger.Error(identifier, "createTimeSlot - failed to count overlapping slots: %w", err)

		return res, err
	}

	if overlapping > 0 {
		err = failure.Conflict("time slot overlaps an existing slot")
		s.logger.Error(identifier, "createTimeSlot - overlapping slot: %w", err)

		return res, err
	}

	newSlot, err := s.repo.CreateTimeSlot(ctx, s.db, repository.CreateTimeSlotParams{
		CourtID:   courtID,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		s.logger.Error(identifier, "createTimeSlot - failed to create time slot: %w", err)

		return res, err
	}

	res = strconv.FormatInt(newSlot.ID, 10)

	s.invalidate(ctx, "createTimeSlot")

	return res, nil
}

func (s *courtService) GetTimeSlots(ctx context.Context, courtID int64) (res dto.GetTimeSlotsResponse, err error) {
	if _, err = s.repo.GetCourtById(ctx, s.db, courtID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %d - not found", courtID))
			s.logger.Error(identifier, "getTimeSlots - court not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "getTimeSlots - failed to get court: %w", err)

		return res, err
	}

	slots, err := s.repo.GetTimeSlotsByCourtID(ctx, s.db, courtID)
	if err != nil {
		s.logger.Error(identifier, "getTimeSlots - failed to get time slots: %w", err)

		return res, err
	}

	res.FromModel(slots)

	return res, nil
}

func (s *courtService) UpdateTimeSlot(ctx context.Context, slotID int64, userID, role string, req dto.UpdateTimeSlotRequest) (res string, err error) {
	slot, err := s.repo.GetTimeSlotById(ctx, s.db, slotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("time slot %d - not found", slotID))
		}

		s.logger.Error(identifier, "updateTimeSlot - failed to get time slot: %w", err)

		return res, err
	}

	if _, err = s.getOwnedCourt(ctx, slot.CourtID, userID, role, "updateTimeSlot"); err != nil {
		return res, err
	}

	blockReason := pgtype.Text{}
	if *req.IsBlocked {
		blockReason = helper.PgString(req.BlockReason)
	}

	updatedSlot, err := s.repo.UpdateTimeSlot(ctx, s.db, repository.UpdateTimeSlotParams{
		ID:          slotID,
		IsBlocked:   helper.PgBool(*req.IsBlocked),
		BlockReason: blockReason,
	})
	if err != nil {
		s.logger.Error(identifier, "updateTimeSlot - failed to update time slot: %w", err)

		return res, err
	}

	res = strconv.FormatInt(updatedSlot.ID, 10)

	s.invalidate(ctx, "updateTimeSlot")

	return res, nil
}

func (s *courtService) DeleteTimeSlot(ctx context.Context, slotID int64, userID, role string) (err error) {
	slot, err := s.repo.GetTimeSlotById(ctx, s.db, slotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("time slot %d - not found", slotID))
		}

		s.logger.Error(identifier, "deleteTimeSlot - failed to get time slot: %w", err)

		return err
	}

	if _, err = s.getOwnedCourt(ctx, slot.CourtID, userID, role, "deleteTimeSlot"); err != nil {
		return err
	}

	err = s.repo.DeleteTimeSlot(ctx, s.db, slotID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			err = failure.Conflict("time slot used by other entities")
		}

		s.logger.Error(identifier, "deleteTimeSlot - failed to delete time slot: %w", err)

		return err
	}

	s.invalidate(ctx, "deleteTimeSlot")

	return nil
}

// getOwnedCourt loads a court and checks the acting user may manage it.
func (s *courtService) getOwnedCourt(ctx context.Context, id int64, userID, role, op string) (repository.Court, error) {
	court, err := s.repo.GetCourtById(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %d - not found", id))
		}

		s.logger.Error(identifier, op+" - failed to get court: %w", err)

		return repository.Court{}, err
	}

	ownerID, err := s.repo.GetCourtVenueOwner(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, op+" - failed to get venue owner: %w", err)

		return repository.Court{}, err
	}

	if err = s.authorize(ownerID, userID, role); err != nil {
		s.logger.Error(identifier, op+" - not venue owner: %w", err)

		return repository.Court{}, err
	}

	return court, nil
}

func (s *courtService) authorize(ownerID pgtype.UUID, userID, role string) error {
	if role == constant.UserRoleAdmin {
		return nil
	}

	if helper.UUIDString(ownerID) != userID {
		return failure.Forbidden("court does not belong to this user")
	}

	return nil
}

// invalidate clears every cache a court or slot mutation can make stale.
func (s *courtService) invalidate(ctx context.Context, op string) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetCourtKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetCourtsKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheVenueKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}
	}()
}
