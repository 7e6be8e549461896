package services

import (
	"context"
	"errors"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"

	"gorm.io/gorm"
)

// BrandService resolves brand references for the voucher ledger
type BrandService struct {
	brandRepo repositories.BrandRepository
}

// NewBrandService creates a new brand service
func NewBrandService(brandRepo repositories.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// Read gets a brand by name
func (s *BrandService) Read(ctx context.Context, name string) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

// ReadByID gets a brand by id
func (s *BrandService) ReadByID(ctx context.Context, id uint) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}
