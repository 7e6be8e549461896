package repositories

import (
	"context"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// brandRepository implements BrandRepository interface
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Create creates a new brand
func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

// GetByID gets a brand by id
func (r *brandRepository) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetByName gets a brand by its unique name
func (r *brandRepository) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// ExistsByName checks if a brand name is already registered
func (r *brandRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Brand{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
