package repositories

import (
	"context"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// voucherRepository implements VoucherRepository interface
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

// Create creates a new voucher
func (r *voucherRepository) Create(ctx context.Context, voucher *models.Voucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

// GetByID gets a voucher by id
func (r *voucherRepository) GetByID(ctx context.Context, id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.WithContext(ctx).First(&voucher, id).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// FindAllByUsername gets all vouchers owned by a member
func (r *voucherRepository) FindAllByUsername(ctx context.Context, username string) ([]*models.Voucher, error) {
	var vouchers []*models.Voucher
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Find(&vouchers).Error
	if err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Save persists all fields of an existing voucher
func (r *voucherRepository) Save(ctx context.Context, voucher *models.Voucher) error {
	return r.db.WithContext(ctx).Save(voucher).Error
}

// Redeem executes the sum-check-append sequence in one transaction. The
// voucher row is locked with SELECT ... FOR UPDATE, so a concurrent Redeem
// for the same voucher blocks until this one commits and then recomputes
// the usage total against the appended row.
func (r *voucherRepository) Redeem(ctx context.Context, voucherID uint, check RedeemCheck, usage *models.VoucherUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var voucher models.Voucher
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&voucher, voucherID).Error; err != nil {
			return err
		}

		var totalUsed int64
		if err := tx.Model(&models.VoucherUsage{}).
			Where("voucher_id = ?", voucherID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalUsed).Error; err != nil {
			return err
		}

		if err := check(&voucher, int(totalUsed)); err != nil {
			return err
		}

		usage.VoucherID = voucherID
		return tx.Create(usage).Error
	})
}

// FindExpiringBetween gets vouchers whose expiration date falls in [from, to)
func (r *voucherRepository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.Voucher, error) {
	var vouchers []*models.Voucher
	err := r.db.WithContext(ctx).
		Where("expires_at >= ? AND expires_at < ?", from, to).
		Find(&vouchers).Error
	if err != nil {
		return nil, err
	}
	return vouchers, nil
}
