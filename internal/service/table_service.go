package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reservabar/internal/cache"
	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/repository"
)

const tableListCacheKey = "tables:all"
const tableListCacheTTL = time.Minute

// TableService exposes table management operations.
type TableService interface {
	CreateTable(ctx context.Context, table *model.Table) (*model.Table, error)
	GetTable(ctx context.Context, id uint) (*model.Table, error)
	ListTables(ctx context.Context) ([]model.Table, error)
	UpdateTable(ctx context.Context, table *model.Table) (*model.Table, error)
	DeleteTable(ctx context.Context, id uint) error
}

type tableService struct {
	repo  repository.TableRepository
	cache *cache.Client
}

// NewTableService builds a TableService with repository and cache.
func NewTableService(repo repository.TableRepository, cache *cache.Client) TableService {
	return &tableService{repo: repo, cache: cache}
}

func (s *tableService) CreateTable(ctx context.Context, table *model.Table) (*model.Table, error) {
	existing, err := s.repo.FindByNumber(ctx, table.TableNumber)
	if err == nil && existing != nil {
		return nil, apperrors.ErrTableNumberTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check table number: %w", err)
	}
	if err := s.repo.Create(ctx, table); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, tableListCacheKey)
	return table, nil
}

func (s *tableService) GetTable(ctx context.Context, id uint) (*model.Table, error) {
	table, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *tableService) ListTables(ctx context.Context) ([]model.Table, error) {
	if data, _ := s.cache.Get(ctx, tableListCacheKey); data != nil {
		var cached []model.Table
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	tables, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(tables); err == nil {
		_ = s.cache.Set(ctx, tableListCacheKey, payload, tableListCacheTTL)
	}
	return tables, nil
}

func (s *tableService) UpdateTable(ctx context.Context, table *model.Table) (*model.Table, error) {
	if _, err := s.repo.FindByID(ctx, table.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTableNotFound
		}
		return nil, err
	}
	if err := s.repo.Update(ctx, table); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, tableListCacheKey)
	return table, nil
}

func (s *tableService) DeleteTable(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTableNotFound
	}
	_ = s.cache.Delete(ctx, tableListCacheKey)
	return nil
}
