package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/venues/dto"
	"github.com/quickcourt/quickcourt/internal/domains/venues/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/redis"
	"github.com/quickcourt/quickcourt/pkg/storage"
	"github.com/quickcourt/quickcourt/pkg/timeslot"
)

type VenueService interface {
	Create(ctx context.Context, ownerID string, req dto.CreateVenueRequest) (string, error)
	GetAll(ctx context.Context, req dto.GetVenuesRequest) (dto.GetVenuesResponse, error)
	Count(ctx context.Context, req dto.GetVenuesRequest) (int, error)
	GetByOwner(ctx context.Context, ownerID string, req gdto.PaginationRequest) (dto.GetVenuesResponse, error)
	Availability(ctx context.Context, id int64, date string) (dto.VenueAvailabilityResponse, error)
	Update(ctx context.Context, id int64, userID, role string, req dto.UpdateVenueRequest) (string, error)
	Delete(ctx context.Context, id int64, userID, role string) error
	UploadPhotos(ctx context.Context, venueID int64, userID, role string, files []*multipart.FileHeader) ([]string, error)
	DeletePhoto(ctx context.Context, venueID int64, userID, role, photoURL string) error
}

type venueService struct {
	db            postgres.PgxIface
	repo          repository.Querier
	cache         redis.IRedisCache
	cfg           *config.Config
	logger        logger.Interface
	storageClient *storage.Client
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface, storageClient *storage.Client) VenueService {
	return &venueService{
		db:            db,
		repo:          repo,
		cache:         cache,
		cfg:           cfg,
		logger:        l,
		storageClient: storageClient,
	}
}

const (
	cacheGetVenuesKey   = "venues"
	cacheCountVenuesKey = "venues:count"
	cacheGetVenueKey    = "venue"

	identifier = "service - venue - %s"

	// Upload constants
	MaxFileSize       = 10 << 20 // 10MB
	MaxFilesPerUpload = 10
)

func (s *venueService) Create(ctx context.Context, ownerID string, req dto.CreateVenueRequest) (res string, err error) {
	openingTime, err := helper.PgTimeFromString(req.OpeningTime)
	if err != nil {
		err = failure.BadRequestFromString("invalid opening time format")
		s.logger.Error(identifier, "create - invalid opening time: %w", err)

		return res, err
	}

	closingTime, err := helper.PgTimeFromString(req.ClosingTime)
	if err != nil {
		err = failure.BadRequestFromString("invalid closing time format")
		s.logger.Error(identifier, "create - invalid closing time: %w", err)

		return res, err
	}

	if closingTime.Microseconds <= openingTime.Microseconds {
		err = failure.BadRequestFromString("closing time must be after opening time")
		s.logger.Error(identifier, "create - invalid opening hours: %w", err)

		return res, err
	}

	newVenue, err := s.repo.CreateVenue(ctx, s.db, repository.CreateVenueParams{
		OwnerID:     helper.PgUUID(ownerID),
		Name:        req.Name,
		Description: helper.PgString(req.Description),
		Address:     req.Address,
		City:        req.City,
		State:       helper.PgString(req.State),
		Pincode:     helper.PgString(req.Pincode),
		Latitude:    helper.PgFloat8(req.Latitude),
		Longitude:   helper.PgFloat8(req.Longitude),
		Phone:       helper.PgString(req.Phone),
		Email:       helper.PgString(req.Email),
		OpeningTime: openingTime,
		ClosingTime: closingTime,
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create venue: %w", err)

		return res, err
	}

	res = strconv.FormatInt(newVenue.ID, 10)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "create - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *venueService) GetAll(ctx context.Context, req dto.GetVenuesRequest) (res dto.GetVenuesResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	keyArgs["city"] = req.City
	cacheKey := helper.BuildCacheKey(cacheGetVenuesKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetVenuesResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count venues: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	venues, err := s.repo.GetVenues(ctx, s.db, repository.GetVenuesParams{
		Column1: req.Filter,
		City:    req.City,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get venues: %w", err)

		return res, err
	}

	res.FromModel(venues, totalItems, limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *venueService) Count(ctx context.Context, req dto.GetVenuesRequest) (total int, err error) {
	keyArgs := map[string]string{}
	keyArgs["filter"] = req.Filter
	keyArgs["city"] = req.City
	cacheKey := helper.BuildCacheKey(cacheCountVenuesKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountVenues(ctx, s.db, repository.CountVenuesParams{
		Column1: req.Filter,
		City:    req.City,
	})
	if err != nil {
		s.logger.Error(identifier, "count - failed to count venues: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, total, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "count - failed to set cache: %w", err)
		}
	}()

	return total, nil
}

func (s *venueService) GetByOwner(ctx context.Context, ownerID string, req gdto.PaginationRequest) (res dto.GetVenuesResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)
	offset := helper.CalculateOffset(page, limit)

	totalItems, err := s.repo.CountVenuesByOwnerID(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "getByOwner - failed to count venues: %w", err)

		return res, err
	}

	venues, err := s.repo.GetVenuesByOwnerID(ctx, s.db, repository.GetVenuesByOwnerIDParams{
		OwnerID: helper.PgUUID(ownerID),
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getByOwner - failed to get venues: %w", err)

		return res, err
	}

	res.FromModel(venues, int(totalItems), limit)

	return res, nil
}

func (s *venueService) Availability(ctx context.Context, id int64, date string) (res dto.VenueAvailabilityResponse, err error) {
	if date == "" {
		date = helper.NowInAppTimezone().Format(constant.DateFormat)
	}

	if _, err = time.Parse(constant.DateFormat, date); err != nil {
		err = failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
		s.logger.Error(identifier, "availability - invalid date: %w", err)

		return res, err
	}

	keyArgs := map[string]string{}
	keyArgs["id"] = strconv.FormatInt(id, 10)
	keyArgs["date"] = date
	cacheKey := helper.BuildCacheKey(cacheGetVenueKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.VenueAvailabilityResponse

	if err = s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Info(identifier, "availability - cache hit for venue %d on %s", id, date)

		return cacheRes, nil
	}

	venue, err := s.repo.GetVenueById(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", id))
			s.logger.Error(identifier, "availability - venue not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "availability - failed to get venue: %w", err)

		return res, err
	}

	photos, err := s.repo.GetVenuePhotos(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, "availability - failed to get photos: %w", err)

		return res, err
	}

	courts, err := s.repo.GetVenueCourts(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, "availability - failed to get courts: %w", err)

		return res, err
	}

	slots, err := s.repo.GetVenueTimeSlots(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, "availability - failed to get time slots: %w", err)

		return res, err
	}

	booked, err := s.repo.GetBookedIntervals(ctx, s.db, repository.GetBookedIntervalsParams{
		VenueID:     id,
		BookingDate: helper.PgDate(date),
	})
	if err != nil {
		s.logger.Error(identifier, "availability - failed to get booked intervals: %w", err)

		return res, err
	}

	slotsByCourt := make(map[int64][]repository.GetVenueTimeSlotsRow, len(courts))
	for _, slot := range slots {
		slotsByCourt[slot.CourtID] = append(slotsByCourt[slot.CourtID], slot)
	}

	bookedByCourt := make(map[int64][]repository.GetBookedIntervalsRow, len(booked))
	for _, interval := range booked {
		bookedByCourt[interval.CourtID] = append(bookedByCourt[interval.CourtID], interval)
	}

	res.Venue = dto.VenueResponse{}.FromModel(venue).WithPhotos(photos)
	res.Date = date
	res.Courts = make([]dto.CourtAvailability, len(courts))

	for i, court := range courts {
		res.Courts[i] = dto.CourtAvailability{
			ID:           court.ID,
			Name:         court.Name,
			Sport:        court.Sport,
			Description:  court.Description.String,
			PricePerHour: court.PricePerHour,
			Status:       court.Status,
			TimeSlots:    s.buildSlots(court, slotsByCourt[court.ID], bookedByCourt[court.ID], date),
		}
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "availability - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

// buildSlots computes is_available for every defined slot of a court on one
// date: the court must be active, the slot unblocked, not overlapping any
// pending or confirmed booking, and not already in the past.
func (s *venueService) buildSlots(court repository.GetVenueCourtsRow, slots []repository.GetVenueTimeSlotsRow, booked []repository.GetBookedIntervalsRow, date string) []timeslot.Slot {
	out := make([]timeslot.Slot, 0, len(slots))

	for _, slot := range slots {
		start, _ := helper.PgTimeToString(slot.StartTime)
		end, _ := helper.PgTimeToString(slot.EndTime)

		available := court.Status == constant.CourtStatusActive && !helper.BoolFromPg(slot.IsBlocked)

		if available {
			for _, interval := range booked {
				bookedStart, _ := helper.PgTimeToString(interval.StartTime)
				bookedEnd, _ := helper.PgTimeToString(interval.EndTime)

				if start < bookedEnd && bookedStart < end {
					available = false

					break
				}
			}
		}

		if available {
			if valid, err := helper.IsBookingTimeValid(date, start); err != nil || !valid {
				available = false
			}
		}

		out = append(out, timeslot.Slot{
			ID:        slot.ID,
			StartTime: start,
			EndTime:   end,
			Available: available,
			Price:     court.PricePerHour,
		})
	}

	return out
}

func (s *venueService) Update(ctx context.Context, id int64, userID, role string, req dto.UpdateVenueRequest) (res string, err error) {
	existingVenue, err := s.repo.GetVenueById(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", id))
		}

		s.logger.Error(identifier, "update - failed to get venue: %w", err)

		return res, err
	}

	if err = s.authorize(existingVenue, userID, role); err != nil {
		s.logger.Error(identifier, "update - not venue owner: %w", err)

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
			existingVenue.Name = field.Interface().(string)
		case "description":
			existingVenue.Description = helper.PgString(field.Interface().(string))
		case "address":
			existingVenue.Address = field.Interface().(string)
		case "city":
			existingVenue.City = field.Interface().(string)
		case "state":
			existingVenue.State = helper.PgString(field.Interface().(string))
		case "pincode":
			existingVenue.Pincode = helper.PgString(field.Interface().(string))
		case "latitude":
			existingVenue.Latitude = helper.PgFloat8(field.Float())
		case "longitude":
			existingVenue.Longitude = helper.PgFloat8(field.Float())
		case "phone":
			existingVenue.Phone = helper.PgString(field.Interface().(string))
		case "email":
			existingVenue.Email = helper.PgString(field.Interface().(string))
		case "opening_time":
			openingTime, timeErr := helper.PgTimeFromString(field.Interface().(string))
			if timeErr != nil {
				return res, failure.BadRequestFromString("invalid opening time format")
			}

			existingVenue.OpeningTime = openingTime
		case "closing_time":
			closingTime, timeErr := helper.PgTimeFromString(field.Interface().(string))
			if timeErr != nil {
				return res, failure.BadRequestFromString("invalid closing time format")
			}

			existingVenue.ClosingTime = closingTime
		case "is_active":
			existingVenue.IsActive = helper.PgBool(*field.Interface().(*bool))
		}
	}

	if len(updatedFields) == 0 {
		s.logger.Error(identifier, "update - at least one field is required to update")

		err := failure.BadRequestFromString("at least one field is required to update")

		return res, err
	}

	if existingVenue.ClosingTime.Microseconds <= existingVenue.OpeningTime.Microseconds {
		err = failure.BadRequestFromString("closing time must be after opening time")
		s.logger.Error(identifier, "update - invalid opening hours: %w", err)

		return res, err
	}

	updatedVenue, err := s.repo.UpdateVenue(ctx, s.db, repository.UpdateVenueParams{
		ID:          id,
		Name:        existingVenue.Name,
		Description: existingVenue.Description,
		Address:     existingVenue.Address,
		City:        existingVenue.City,
		State:       existingVenue.State,
		Pincode:     existingVenue.Pincode,
		Latitude:    existingVenue.Latitude,
		Longitude:   existingVenue.Longitude,
		Phone:       existingVenue.Phone,
		Email:       existingVenue.Email,
		OpeningTime: existingVenue.OpeningTime,
		ClosingTime: existingVenue.ClosingTime,
		IsActive:    existingVenue.IsActive,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update venue: %w", err)

		return res, err
	}

	res = strconv.FormatInt(updatedVenue.ID, 10)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenueKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "update - failed to clear cache: %w", err)
		}
	}()

	return res, nil
}

func (s *venueService) Delete(ctx context.Context, id int64, userID, role string) (err error) {
	existingVenue, err := s.repo.GetVenueById(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", id))
		}

		s.logger.Error(identifier, "delete - failed to get venue: %w", err)

		return err
	}

	if err = s.authorize(existingVenue, userID, role); err != nil {
		s.logger.Error(identifier, "delete - not venue owner: %w", err)

		return err
	}

	err = s.repo.DeleteVenue(ctx, s.db, id)
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete venue: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenueKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "delete - failed to clear cache: %w", err)
		}
	}()

	return nil
}

func (s *venueService) UploadPhotos(ctx context.Context, venueID int64, userID, role string, files []*multipart.FileHeader) (urls []string, err error) {
	if len(files) == 0 {
		err = failure.BadRequestFromString("no files uploaded")
		s.logger.Error(identifier, "uploadPhotos - no files uploaded: %w", err)

		return urls, err
	}

	if len(files) > MaxFilesPerUpload {
		err = failure.BadRequestFromString(fmt.Sprintf("maximum %d files allowed per upload", MaxFilesPerUpload))
		s.logger.Error(identifier, "uploadPhotos - too many files: %d", len(files))

		return urls, err
	}

	existingVenue, err := s.repo.GetVenueById(ctx, s.db, venueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", venueID))
		}

		s.logger.Error(identifier, "uploadPhotos - failed to get venue: %w", err)

		return urls, err
	}

	if err = s.authorize(existingVenue, userID, role); err != nil {
		s.logger.Error(identifier, "uploadPhotos - not venue owner: %w", err)

		return urls, err
	}

	existingPhotos, err := s.repo.GetVenuePhotos(ctx, s.db, venueID)
	if err != nil {
		s.logger.Error(identifier, "uploadPhotos - failed to get photos: %w", err)

		return urls, err
	}

	var uploadedURLs []string

	for i, file := range files {
		if file.Size > MaxFileSize {
			err = failure.BadRequestFromString(fmt.Sprintf("file %s exceeds maximum size of %d bytes", file.Filename, MaxFileSize))
			s.logger.Error(identifier, "uploadPhotos - file too large: %s (%d bytes)", file.Filename, file.Size)

			return urls, err
		}

		contentType := file.Header.Get("Content-Type")
		if !helper.IsValidImageType(contentType) {
			err = failure.BadRequestFromString(fmt.Sprintf("file %s has unsupported content type %s", file.Filename, contentType))
			s.logger.Error(identifier, "uploadPhotos - unsupported content type: %s", contentType)

			return urls, err
		}

		fileHandle, err := file.Open()
		if err != nil {
			s.logger.Error(identifier, "uploadPhotos - failed to open file %s: %w", file.Filename, err)

			return urls, err
		}

		url, err := s.storageClient.UploadFile(ctx, fileHandle, file.Filename, contentType)
		fileHandle.Close()

		if err != nil {
			s.logger.Error(identifier, "uploadPhotos - failed to upload file %s: %w", file.Filename, err)

			return urls, err
		}

		isPrimary := len(existingPhotos) == 0 && i == 0

		_, err = s.repo.CreateVenuePhoto(ctx, s.db, repository.CreateVenuePhotoParams{
			VenueID:   venueID,
			Url:       url,
			IsPrimary: helper.PgBool(isPrimary),
		})
		if err != nil {
			s.logger.Error(identifier, "uploadPhotos - failed to save photo record: %w", err)

			if deleteErr := s.storageClient.DeleteFile(ctx, url); deleteErr != nil {
				s.logger.Error(identifier, "uploadPhotos - failed to cleanup uploaded file %s: %w", url, deleteErr)
			}

			return urls, err
		}

		uploadedURLs = append(uploadedURLs, url)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenueKey, "*")); err != nil {
			s.logger.Error(identifier, "uploadPhotos - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "uploadPhotos - failed to clear cache: %w", err)
		}
	}()

	return uploadedURLs, nil
}

func (s *venueService) DeletePhoto(ctx context.Context, venueID int64, userID, role, photoURL string) error {
	existingVenue, err := s.repo.GetVenueById(ctx, s.db, venueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("venue %d - not found", venueID))
		}

		s.logger.Error(identifier, "deletePhoto - failed to get venue: %w", err)

		return err
	}

	if err = s.authorize(existingVenue, userID, role); err != nil {
		s.logger.Error(identifier, "deletePhoto - not venue owner: %w", err)

		return err
	}

	photo, err := s.repo.GetVenuePhotoByUrl(ctx, s.db, repository.GetVenuePhotoByUrlParams{
		VenueID: venueID,
		Url:     photoURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("photo %s not found in venue %d", photoURL, venueID))
		}

		s.logger.Error(identifier, "deletePhoto - failed to get photo: %w", err)

		return err
	}

	err = s.storageClient.DeleteFile(ctx, photoURL)
	if err != nil {
		s.logger.Error(identifier, "deletePhoto - failed to delete file %s: %w", photoURL, err)

		return err
	}

	err = s.repo.DeleteVenuePhoto(ctx, s.db, photo.ID)
	if err != nil {
		s.logger.Error(identifier, "deletePhoto - failed to delete photo record: %w", err)

		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenueKey, "*")); err != nil {
			s.logger.Error(identifier, "deletePhoto - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetVenuesKey, "*")); err != nil {
			s.logger.Error(identifier, "deletePhoto - failed to clear cache: %w", err)
		}
	}()

	return nil
}

// authorize allows admins through and otherwise requires the acting user to
// own the venue.
func (s *venueService) authorize(venue repository.Venue, userID, role string) error {
	if role == constant.UserRoleAdmin {
		return nil
	}

	if helper.UUIDString(venue.OwnerID) != userID {
		return failure.Forbidden("venue does not belong to this user")
	}

	return nil
}
