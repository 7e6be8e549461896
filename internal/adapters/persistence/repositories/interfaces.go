package repositories

import (
	"context"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByUsername(ctx context.Context, username string) (*models.Member, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface.
// The store holds at most one row per username.
type RefreshTokenRepository interface {
	// Upsert replaces any existing row for the token's username in a single
	// atomic write keyed by the unique username index.
	Upsert(ctx context.Context, token *models.RefreshToken) error
	FindByUsername(ctx context.Context, username string) (*models.RefreshToken, error)
	// DeleteByUsername returns gorm.ErrRecordNotFound when no row exists.
	DeleteByUsername(ctx context.Context, username string) error
}

// BrandRepository defines brand repository interface
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id uint) (*models.Brand, error)
	GetByName(ctx context.Context, name string) (*models.Brand, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// RedeemCheck decides whether a redemption may proceed. It runs with the
// voucher row locked and receives the usage total computed under that lock.
type RedeemCheck func(voucher *models.Voucher, totalUsed int) error

// VoucherRepository defines voucher repository interface
type VoucherRepository interface {
	Create(ctx context.Context, voucher *models.Voucher) error
	GetByID(ctx context.Context, id uint) (*models.Voucher, error)
	FindAllByUsername(ctx context.Context, username string) ([]*models.Voucher, error)
	Save(ctx context.Context, voucher *models.Voucher) error
	// Redeem runs sum-check-append as one transaction: it locks the voucher
	// row, sums its usage history, calls check, and appends usage only when
	// check returns nil. A concurrent redeemer waits on the row lock and
	// sees the committed total.
	Redeem(ctx context.Context, voucherID uint, check RedeemCheck, usage *models.VoucherUsage) error
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.Voucher, error)
}

// VoucherUsageRepository defines usage history repository interface.
// The log is append-only and rows are written exclusively by
// VoucherRepository.Redeem under its row lock; this repository reads.
type VoucherUsageRepository interface {
	FindAllByVoucherID(ctx context.Context, voucherID uint) ([]*models.VoucherUsage, error)
	SumAmountByVoucherID(ctx context.Context, voucherID uint) (int, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindAllByUsername(ctx context.Context, username string, limit, offset int) ([]*models.Notification, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	ExistsSince(ctx context.Context, username string, voucherID uint, notificationType string, since time.Time) (bool, error)
}
