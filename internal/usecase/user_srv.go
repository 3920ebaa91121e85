package usecase

import (
	"context"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
	GetReservations(ctx context.Context, userID int64) ([]response.ReservationResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteProfile(ctx context.Context, userID int64) error
}

type userService struct {
	repo  *repository.Repository
	cache *cachePolicy
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, cache *cachePolicy, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	return fetchOne(ctx, s.cache, s.cache.keys.User(userID), func(ctx context.Context) (*response.UserResponse, error) {
		user, err := s.repo.User.FindByID(ctx, userID)
		if err != nil || user == nil {
			return nil, err
		}
		resp := response.UserToResponse(user)
		return &resp, nil
	}, "User not found")
}

func (s *userService) GetReservations(ctx context.Context, userID int64) ([]response.ReservationResponse, error) {
	return fetchMany(ctx, s.cache, s.cache.keys.UserReservations(userID), func(ctx context.Context) ([]response.ReservationResponse, error) {
		reservations, err := s.repo.Reservation.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return response.ReservationsToResponse(reservations), nil
	}, "Reservations not found")
}

// UpdateProfile re-hashes a supplied password before storing it
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	patch := entity.UserPatch{
		Username: req.Username,
		Phone:    req.Phone,
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err), zap.Int64("user_id", userID))
			return nil, err
		}
		patch.HashedPassword = &hashed
	}

	user, err := s.repo.User.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}

	if err := s.cache.invalidate(ctx, s.cache.keys.User(userID)); err != nil {
		return nil, err
	}

	s.log.Info("User updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteProfile removes the user together with their reservations
func (s *userService) DeleteProfile(ctx context.Context, userID int64) error {
	reservations, err := s.repo.Reservation.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.User.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("User not found")
	}

	keys := []string{
		s.cache.keys.User(userID),
		s.cache.keys.UserReservations(userID),
	}
	for _, reservation := range reservations {
		keys = append(keys, s.cache.keys.ReservationViews(reservation)...)
	}
	if err := s.cache.invalidate(ctx, keys...); err != nil {
		return err
	}

	s.log.Info("User deleted",
		zap.Int64("user_id", userID),
		zap.Int("reservations", len(reservations)),
	)
	return nil
}
