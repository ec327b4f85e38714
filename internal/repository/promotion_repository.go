package repository

import (
	"context"

	"gorm.io/gorm"

	"reservabar/internal/model"
)

// PromotionRepository defines persistence operations for promotions.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *model.Promotion) error
	FindByID(ctx context.Context, id uint) (*model.Promotion, error)
	Update(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Promotion, error)
}

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository builds a GORM-backed repository.
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) FindByID(ctx context.Context, id uint) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) Update(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Promotion{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *promotionRepository) List(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.WithContext(ctx).Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}
