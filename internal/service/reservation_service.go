package service

import (
	"context"

	"gorm.io/gorm"

	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/repository"
)

// ReservationService exposes reservation record operations. Capacity and
// conflict checks are intentionally absent.
type ReservationService interface {
	CreateReservation(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error)
	GetReservation(ctx context.Context, id uint) (*model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
	CancelReservation(ctx context.Context, id uint) error
}

type reservationService struct {
	repo      repository.ReservationRepository
	tableRepo repository.TableRepository
}

// NewReservationService builds a ReservationService.
func NewReservationService(repo repository.ReservationRepository, tableRepo repository.TableRepository) ReservationService {
	return &reservationService{repo: repo, tableRepo: tableRepo}
}

func (s *reservationService) CreateReservation(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error) {
	if _, err := s.tableRepo.FindByID(ctx, reservation.TableID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, err
	}
	reservation.Status = model.ReservationPending
	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*model.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.List(ctx)
}

func (s *reservationService) ListReservationsByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *reservationService) CancelReservation(ctx context.Context, id uint) error {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrReservationNotFound
		}
		return err
	}
	reservation.Status = model.ReservationCancelled
	return s.repo.Update(ctx, reservation)
}
