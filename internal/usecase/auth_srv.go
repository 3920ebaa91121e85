package usecase

import (
	"context"
	"fmt"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cache    *cachePolicy
	tokens   *utils.TokenIssuer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, cache *cachePolicy, tokens *utils.TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cache:    cache,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Signup always creates a plain user, elevated roles come from fixtures
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Phone:          req.Phone,
		Role:           entity.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// a previous lookup of this id may have been negatively cached
	if err := s.cache.invalidate(ctx,
		s.cache.keys.User(user.ID),
		s.cache.keys.UserReservations(user.ID),
	); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if user == nil || !utils.CheckPassword(user.HashedPassword, req.Password) {
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, utils.Unauthorized("Incorrect username or password")
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &response.LoginResponse{AccessToken: token}, nil
}
