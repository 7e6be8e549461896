package repositories

import (
	"context"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// voucherUsageRepository implements VoucherUsageRepository interface
type voucherUsageRepository struct {
	db *gorm.DB
}

// NewVoucherUsageRepository creates a new usage history repository
func NewVoucherUsageRepository(db *gorm.DB) VoucherUsageRepository {
	return &voucherUsageRepository{db: db}
}

// FindAllByVoucherID gets the full usage history of a voucher, oldest first
func (r *voucherUsageRepository) FindAllByVoucherID(ctx context.Context, voucherID uint) ([]*models.VoucherUsage, error) {
	var usages []*models.VoucherUsage
	err := r.db.WithContext(ctx).
		Where("voucher_id = ?", voucherID).
		Order("created_at ASC").
		Find(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}

// SumAmountByVoucherID sums all redeemed amounts for a voucher
func (r *voucherUsageRepository) SumAmountByVoucherID(ctx context.Context, voucherID uint) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.VoucherUsage{}).
		Where("voucher_id = ?", voucherID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return int(total), err
}
