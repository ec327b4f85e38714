package repository

import (
	"context"

	"gorm.io/gorm"

	"reservabar/internal/model"
)

// TableRepository defines persistence operations for tables.
type TableRepository interface {
	Create(ctx context.Context, table *model.Table) error
	FindByID(ctx context.Context, id uint) (*model.Table, error)
	FindByNumber(ctx context.Context, number string) (*model.Table, error)
	Update(ctx context.Context, table *model.Table) error
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Table, error)
}

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository builds a GORM-backed repository.
func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *model.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) FindByID(ctx context.Context, id uint) (*model.Table, error) {
	var table model.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindByNumber(ctx context.Context, number string) (*model.Table, error) {
	var table model.Table
	if err := r.db.WithContext(ctx).Where("table_number = ?", number).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) Update(ctx context.Context, table *model.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Table{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tableRepository) List(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	if err := r.db.WithContext(ctx).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
