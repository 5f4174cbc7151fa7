package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/models"
	"task-tracker-api/domain/repositories"
	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	tokens     *utils.TokenManager
	bcryptCost int
	// compared against when the email is unknown so both login failures cost a bcrypt round
	dummyHash []byte
}

func NewAuthService(userRepo repositories.UserRepository, tokens *utils.TokenManager, bcryptCost int) services.AuthService {
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcryptCost)
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	email := dto.NormalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.ErrorContext(ctx, "Failed to look up email", "error", err)
		return "", nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return "", nil, services.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		logger.WarnContext(ctx, "Password too long to hash", "email", email)
		return "", nil, fmt.Errorf("%w: password exceeds %d bytes", services.ErrInvalidInput, utils.MaxPasswordBytes)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.WarnContext(ctx, "Email already exists", "email", email)
			return "", nil, services.ErrDuplicateEmail
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered successfully", "user_id", user.ID)

	return token, user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	email := dto.NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			logger.WarnContext(ctx, "Login failed - email not found", "email", email)
			return "", nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Failed to look up user", "error", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID)

	return token, user, nil
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		logger.ErrorContext(ctx, "Failed to load user", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		logger.DebugContext(ctx, "Token rejected", "error", err)
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
