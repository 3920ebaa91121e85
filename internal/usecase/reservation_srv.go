package usecase

import (
	"context"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	GetReservationByID(ctx context.Context, caller Caller, reservationID int64) (*response.ReservationResponse, error)
	GetRestaurantReservations(ctx context.Context, restaurantID int64) ([]response.ReservationResponse, error)

	CreateReservation(ctx context.Context, caller Caller, req *request.ReservationRequest) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, reservationID int64, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID int64) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	cache           *cachePolicy
	log             *zap.Logger
}

func NewReservationService(reservationRepo repository.ReservationRepository, cache *cachePolicy, log *zap.Logger) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		cache:           cache,
		log:             log.With(zap.String("service", "reservation")),
	}
}

// GetReservationByID lets staff and admins read any reservation,
// other callers only their own.
func (s *reservationService) GetReservationByID(ctx context.Context, caller Caller, reservationID int64) (*response.ReservationResponse, error) {
	reservation, err := fetchOne(ctx, s.cache, s.cache.keys.Reservation(reservationID), func(ctx context.Context) (*response.ReservationResponse, error) {
		reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
		if err != nil || reservation == nil {
			return nil, err
		}
		resp := response.ReservationToResponse(reservation)
		return &resp, nil
	}, "Reservation not found")
	if err != nil {
		return nil, err
	}

	if !access.SeesAll(caller.Role) && reservation.UserID != caller.UserID {
		s.log.Warn("Reservation read denied",
			zap.Int64("reservation_id", reservationID),
			zap.Int64("user_id", caller.UserID),
		)
		return nil, utils.Forbidden("Access denied for this reservation")
	}

	return reservation, nil
}

func (s *reservationService) GetRestaurantReservations(ctx context.Context, restaurantID int64) ([]response.ReservationResponse, error) {
	return fetchMany(ctx, s.cache, s.cache.keys.Reservations(restaurantID), func(ctx context.Context) ([]response.ReservationResponse, error) {
		reservations, err := s.reservationRepo.FindByRestaurant(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		return response.ReservationsToResponse(reservations), nil
	}, "Reservations not found")
}

// CreateReservation books for the caller unless staff or an admin names
// another user. A missing or zero user_id means the caller.
func (s *reservationService) CreateReservation(ctx context.Context, caller Caller, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	userID := caller.UserID
	if req.UserID != nil && *req.UserID != 0 {
		if *req.UserID != caller.UserID && !access.SeesAll(caller.Role) {
			s.log.Warn("Reservation for another user denied",
				zap.Int64("user_id", caller.UserID),
				zap.Int64("target_user_id", *req.UserID),
			)
			return nil, utils.Forbidden("Access denied for this operation")
		}
		userID = *req.UserID
	}

	reservation := &entity.Reservation{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		DateReserv:   *req.DateReserv,
		GuestCount:   req.GuestCount,
		Comment:      req.Comment,
	}
	if req.Status != nil {
		reservation.Status = *req.Status
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := s.cache.invalidate(ctx, s.cache.keys.ReservationViews(reservation)...); err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("user_id", reservation.UserID),
		zap.Int64("restaurant_id", reservation.RestaurantID),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID int64, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error) {
	before, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, utils.NotFound("Reservation not found")
	}

	after, err := s.reservationRepo.Update(ctx, reservationID, entity.ReservationPatch{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		DateReserv:   req.DateReserv,
		GuestCount:   req.GuestCount,
		Status:       req.Status,
		Comment:      req.Comment,
	})
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, utils.NotFound("Reservation not found")
	}

	keys := append(s.cache.keys.ReservationViews(before), s.cache.keys.ReservationViews(after)...)
	if err := s.cache.invalidate(ctx, keys...); err != nil {
		return nil, err
	}

	s.log.Info("Reservation updated", zap.Int64("reservation_id", reservationID))

	resp := response.ReservationToResponse(after)
	return &resp, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID int64) error {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return utils.NotFound("Reservation not found")
	}

	deleted, err := s.reservationRepo.Delete(ctx, reservationID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Reservation not found")
	}

	if err := s.cache.invalidate(ctx, s.cache.keys.ReservationViews(reservation)...); err != nil {
		return err
	}

	s.log.Info("Reservation deleted", zap.Int64("reservation_id", reservationID))
	return nil
}
