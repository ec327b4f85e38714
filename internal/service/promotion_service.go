package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/repository"
)

// PromotionService exposes promotion operations.
type PromotionService interface {
	CreatePromotion(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error)
	GetPromotion(ctx context.Context, id uint) (*model.Promotion, error)
	ListPromotions(ctx context.Context) ([]model.Promotion, error)
	UpdatePromotion(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, id uint) error
}

type promotionService struct {
	repo repository.PromotionRepository
}

// NewPromotionService builds a PromotionService.
func NewPromotionService(repo repository.PromotionRepository) PromotionService {
	return &promotionService{repo: repo}
}

func (s *promotionService) CreatePromotion(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error) {
	if promotion.Code == "" {
		promotion.Code = uuid.New().String()
	}
	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) GetPromotion(ctx context.Context, id uint) (*model.Promotion, error) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPromotionNotFound
		}
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) ListPromotions(ctx context.Context) ([]model.Promotion, error) {
	return s.repo.List(ctx)
}

func (s *promotionService) UpdatePromotion(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error) {
	if _, err := s.repo.FindByID(ctx, promotion.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPromotionNotFound
		}
		return nil, err
	}
	if err := s.repo.Update(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrPromotionNotFound
	}
	return nil
}
