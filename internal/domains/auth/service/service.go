package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickcourt/quickcourt/internal/domains/user/dto"
	"github.com/quickcourt/quickcourt/internal/domains/user/repository"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/helper"
	"github.com/quickcourt/quickcourt/pkg/jwt"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/mail"
	"github.com/quickcourt/quickcourt/pkg/postgres"
)

type AuthService interface {
	Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error)
	Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.UserLoginResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

type authService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	logger logger.Interface
	mail   mail.Service
}

func New(db postgres.PgxIface, r repository.Querier, l logger.Interface, m mail.Service) AuthService {
	return &authService{
		db:     db,
		repo:   r,
		logger: l,
		mail:   m,
	}
}

func (s *authService) Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("register - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("register - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	exist, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("register - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if exist.Email != "" {
		s.logger.Error("register - service - user with email already exists")

		return nil, failure.BadRequestFromString("user already exists")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register - service - failed to generate password: %w", err)

		return nil, failure.InternalError(err)
	}

	role := req.Role
	if role == "" {
		role = constant.UserRolePlayer
	}

	newUser, err := s.repo.CreateUser(ctx, tx, repository.CreateUserParams{
		Email: req.Email,
		Password: pgtype.Text{
			String: string(password),
			Valid:  true,
		},
		Role: role,
		FullName: pgtype.Text{
			String: req.Name,
			Valid:  true,
		},
		IsVerified: pgtype.Bool{
			Bool:  false,
			Valid: true,
		},
	})
	if err != nil {
		s.logger.Error("register - service - failed to create user: %w", err)

		return nil, failure.InternalError(err)
	}

	verificationToken := helper.GenerateStateToken()

	_, err = s.repo.CreateEmailVerification(ctx, tx, repository.CreateEmailVerificationParams{
		UserID:    newUser.ID,
		Token:     verificationToken,
		ExpiresAt: helper.PgTimestamp(time.Now().Add(verificationTokenTTL)),
	})
	if err != nil {
		s.logger.Error("register - service - failed to create email verification: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("register - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	go func() {
		if mailErr := s.mail.SendVerificationEmail(newUser.Email, req.Name, verificationToken); mailErr != nil {
			s.logger.Error("register - service - failed to send verification email: %w", mailErr)
		}
	}()

	res = new(dto.UserRegisterResponse).ToRegisterResponse(newUser)

	return res, nil
}

func (s *authService) Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("login - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("login - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	user, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("login - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if user.Email == "" {
		s.logger.Error("login - service - user not found", req.Email)

		return nil, failure.NotFound("user not found")
	}

	if !user.IsVerified.Bool {
		s.logger.Error("login - service - email not verified", req.Email)

		return nil, failure.BadRequestFromString("email not verified")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(req.Password)); err != nil {
		s.logger.Error("login - service - unauthorized", req.Email)

		return nil, failure.Unauthorized("unauthorized")
	}

	_, err = s.repo.UpdateLastLogin(ctx, tx, user.ID)
	if err != nil {
		s.logger.Error("login - service - failed to update last login: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("login - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	return s.tokenPair(user)
}

// Refresh exchanges a valid refresh token for a new access and refresh token
// pair. Access tokens are never accepted here.
func (s *authService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.UserLoginResponse, error) {
	claims, err := jwt.ValidateToken(req.RefreshToken)
	if err != nil {
		s.logger.Error("refresh - service - invalid refresh token: %w", err)

		return nil, failure.Unauthorized("invalid refresh token")
	}

	if claims.TokenType != "refresh_token" {
		s.logger.Error("refresh - service - token is not a refresh token")

		return nil, failure.Unauthorized("invalid refresh token")
	}

	user, err := s.repo.GetUserByEmail(ctx, s.db, claims.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, failure.Unauthorized("invalid refresh token")
		}

		s.logger.Error("refresh - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	return s.tokenPair(user)
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("verify email - service - failed to begin transaction: %w", err)

		return failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("verify email - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	verification, err := s.repo.GetEmailVerificationByToken(ctx, tx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return failure.BadRequestFromString("invalid verification token")
		}

		s.logger.Error("verify email - service - failed to get verification: %w", err)

		return failure.InternalError(err)
	}

	if verification.ExpiresAt.Valid && verification.ExpiresAt.Time.Before(time.Now()) {
		return failure.BadRequestFromString("verification token expired")
	}

	if err = s.repo.MarkUserVerified(ctx, tx, verification.UserID); err != nil {
		s.logger.Error("verify email - service - failed to mark user verified: %w", err)

		return failure.InternalError(err)
	}

	if err = s.repo.DeleteEmailVerification(ctx, tx, verification.ID); err != nil {
		s.logger.Error("verify email - service - failed to delete verification: %w", err)

		return failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("verify email - service - failed to commit transaction: %w", err)

		return failure.InternalError(err)
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	user, err := s.repo.GetUserByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Do not reveal whether the email exists.
			return nil
		}

		s.logger.Error("forgot password - service - failed to get user by email: %w", err)

		return failure.InternalError(err)
	}

	if user.Email == "" {
		return nil
	}

	resetToken := helper.GenerateStateToken()

	_, err = s.repo.CreatePasswordReset(ctx, s.db, repository.CreatePasswordResetParams{
		UserID:    user.ID,
		Token:     resetToken,
		ExpiresAt: helper.PgTimestamp(time.Now().Add(passwordResetTokenTTL)),
	})
	if err != nil {
		s.logger.Error("forgot password - service - failed to create password reset: %w", err)

		return failure.InternalError(err)
	}

	go func() {
		if mailErr := s.mail.SendPasswordResetEmail(user.Email, user.FullName.String, resetToken); mailErr != nil {
			s.logger.Error("forgot password - service - failed to send reset email: %w", mailErr)
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("reset password - service - failed to begin transaction: %w", err)

		return failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("reset password - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	reset, err := s.repo.GetPasswordResetByToken(ctx, tx, req.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return failure.BadRequestFromString("invalid reset token")
		}

		s.logger.Error("reset password - service - failed to get password reset: %w", err)

		return failure.InternalError(err)
	}

	if reset.ExpiresAt.Valid && reset.ExpiresAt.Time.Before(time.Now()) {
		return failure.BadRequestFromString("reset token expired")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("reset password - service - failed to generate password: %w", err)

		return failure.InternalError(err)
	}

	err = s.repo.UpdateUserPassword(ctx, tx, repository.UpdateUserPasswordParams{
		Password: pgtype.Text{String: string(password), Valid: true},
		ID:       reset.UserID,
	})
	if err != nil {
		s.logger.Error("reset password - service - failed to update password: %w", err)

		return failure.InternalError(err)
	}

	if err = s.repo.DeletePasswordReset(ctx, tx, reset.ID); err != nil {
		s.logger.Error("reset password - service - failed to delete password reset: %w", err)

		return failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("reset password - service - failed to commit transaction: %w", err)

		return failure.InternalError(err)
	}

	return nil
}

func (s *authService) tokenPair(user repository.User) (*dto.UserLoginResponse, error) {
	userID := helper.UUIDString(user.ID)

	accessToken, err := jwt.GenerateAccessToken(userID, user.Email, user.Role)
	if err != nil {
		s.logger.Error("auth - service - failed to generate access token: %w", err)

		return nil, failure.InternalError(err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(userID, user.Email, user.Role)
	if err != nil {
		s.logger.Error("auth - service - failed to generate refresh token: %w", err)

		return nil, failure.InternalError(err)
	}

	return new(dto.UserLoginResponse).ToLoginResponse(accessToken, refreshToken), nil
}
