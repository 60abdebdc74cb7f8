package service

import (
	"context"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/cache"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	ValidateToken(ctx context.Context, token string) (*utils.TokenClaims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError)
}

type AuthService struct {
	repo  repository.AuthRepository
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepository, c cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	logger.Info("AuthService:Login:Start", "email", req.Email)

	blocked, err := s.cache.IsLoginBlocked(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check login attempts", err)
	}
	if blocked {
		return nil, errors.New(errors.ErrUnauthorized, "too many failed attempts, try again later")
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			_, _ = s.cache.IncrementLoginAttempt(ctx, req.Email)
			return nil, errors.New(errors.ErrUnauthorized, "invalid credentials")
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		_, _ = s.cache.IncrementLoginAttempt(ctx, req.Email)
		return nil, errors.New(errors.ErrUnauthorized, "invalid credentials")
	}

	_ = s.cache.ResetLoginAttempts(ctx, req.Email)

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID, "role", user.Role)
	return &dto.LoginResponse{
		AccessToken: token,
		Name:        user.Name,
		Role:        user.Role,
	}, nil
}

// Logout blacklists the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:Blacklist:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to blacklist token", err)
	}
	return nil
}

// ValidateToken is the middleware entry point: it rejects blacklisted tokens
// before verifying signature and expiry.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*utils.TokenClaims, error) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.New(errors.ErrUnauthorized, "token is blacklisted")
	}
	return utils.ValidateAndParseToken(token)
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.New(errors.ErrNotFound, "user not found")
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get user", err)
	}
	return user, nil
}
