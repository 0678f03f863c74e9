package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/domains/user/dto"
	"github.com/quickcourt/quickcourt/internal/domains/user/repository"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/redis"
)

type UserService interface {
	Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error)
	UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (res dto.UserProfileResponse, err error)
	GetAllUsers(ctx context.Context, req dto.GetUsersRequest) (res dto.PaginatedUserResponse, err error)
	GetUserByID(ctx context.Context, id string) (res dto.UserAdminResponse, err error)
	UpdateUserRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (res dto.UserAdminResponse, err error)
}

const (
	cacheGetUserKey     = "cache:get_user:%s"
	defaultCacheTimeout = 5 * time.Second
)

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		config: cfg,
		logger: l,
	}
}

func (s *userService) Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error) {
	cacheKey := fmt.Sprintf(cacheGetUserKey, email)

	var cacheRes dto.UserProfileResponse
	err = s.cache.Get(ctx, cacheKey, &cacheRes)

	if err == nil {
		s.logger.Info("service - user %s - profile - cache hit", email)

		return cacheRes, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		s.logger.Error("service - user - profile - failed to get user by email", err)

		return dto.UserProfileResponse{}, failure.InternalError(err)
	}

	if user == (repository.User{}) {
		s.logger.Error("service - user - profile - user not found")

		return dto.UserProfileResponse{}, failure.NotFound("user not found")
	}

	var profileResponse dto.UserProfileResponse
	profileResponse = profileResponse.ToProfileResponse(user)

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		cacheErr := s.cache.Save(cacheCtx, cacheKey, profileResponse, s.config.Cache.Duration)
		if cacheErr != nil {
			s.logger.Error("service - user - profile - failed to set cache", cacheErr)
		}
	}()

	return profileResponse, nil
}

func (s *userService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (res dto.UserProfileResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		s.logger.Error("service - user - update profile - failed to get user by email", err)

		return dto.UserProfileResponse{}, failure.InternalError(err)
	}

	if user == (repository.User{}) {
		return dto.UserProfileResponse{}, failure.NotFound("user not found")
	}

	fullName := pgtype.Text{Valid: false}
	if req.Name != "" {
		fullName = pgtype.Text{String: req.Name, Valid: true}
	}

	profileImage := pgtype.Text{Valid: false}
	if req.ProfileImage != "" {
		profileImage = pgtype.Text{String: req.ProfileImage, Valid: true}
	}

	updated, err := s.repo.UpdateUserProfile(ctx, s.db, repository.UpdateUserProfileParams{
		FullName:     fullName,
		ProfileImage: profileImage,
		ID:           user.ID,
	})
	if err != nil {
		s.logger.Error("service - user - update profile - failed to update user", err)

		return dto.UserProfileResponse{}, failure.InternalError(err)
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		if cacheErr := s.cache.Delete(cacheCtx, fmt.Sprintf(cacheGetUserKey, email)); cacheErr != nil {
			s.logger.Error("service - user - update profile - failed to invalidate cache", cacheErr)
		}
	}()

	return dto.UserProfileResponse{}.ToProfileResponse(updated), nil
}

func (s *userService) GetAllUsers(ctx context.Context, req dto.GetUsersRequest) (res dto.PaginatedUserResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)
	offset := helper.CalculateOffset(page, limit)

	users, err := s.repo.GetUsers(ctx, s.db, repository.GetUsersParams{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		s.logger.Error("service - user - get all users - failed to get users", err)

		return dto.PaginatedUserResponse{}, failure.InternalError(err)
	}

	totalItems, err := s.repo.CountUsers(ctx, s.db, repository.CountUsersParams{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		s.logger.Error("service - user - get all users - failed to count users", err)

		return dto.PaginatedUserResponse{}, failure.InternalError(err)
	}

	res.FromModel(users, int(totalItems), limit)

	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (res dto.UserAdminResponse, err error) {
	userID := helper.PgUUID(id)
	if !userID.Valid {
		return dto.UserAdminResponse{}, failure.BadRequestFromString("invalid user id")
	}

	user, err := s.repo.GetUserById(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserAdminResponse{}, failure.NotFound("user not found")
		}

		s.logger.Error("service - user - get user by id - failed to get user", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	return dto.UserAdminResponse{}.FromModel(user), nil
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (res dto.UserAdminResponse, err error) {
	userID := helper.PgUUID(id)
	if !userID.Valid {
		return dto.UserAdminResponse{}, failure.BadRequestFromString("invalid user id")
	}

	user, err := s.repo.UpdateUserRole(ctx, s.db, repository.UpdateUserRoleParams{
		Role: req.Role,
		ID:   userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserAdminResponse{}, failure.NotFound("user not found")
		}

		s.logger.Error("service - user - update user role - failed to update role", err)

		return dto.UserAdminResponse{}, failure.InternalError(err)
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		if cacheErr := s.cache.Delete(cacheCtx, fmt.Sprintf(cacheGetUserKey, user.Email)); cacheErr != nil {
			s.logger.Error("service - user - update user role - failed to invalidate cache", cacheErr)
		}
	}()

	return dto.UserAdminResponse{}.FromModel(user), nil
}
