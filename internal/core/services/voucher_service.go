package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/dateutil"

	"gorm.io/gorm"
)

// VoucherService computes voucher balances from the append-only usage
// history and enforces ownership, expiration and sufficiency on redemption.
type VoucherService struct {
	voucherRepo    repositories.VoucherRepository
	usageRepo      repositories.VoucherUsageRepository
	brandRepo      repositories.BrandRepository
	productRepo    repositories.ProductRepository
	memberRepo     repositories.MemberRepository
	storageService *StorageService
	voucherDir     string
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo repositories.VoucherRepository,
	usageRepo repositories.VoucherUsageRepository,
	brandRepo repositories.BrandRepository,
	productRepo repositories.ProductRepository,
	memberRepo repositories.MemberRepository,
	storageService *StorageService,
	voucherDir string,
) *VoucherService {
	return &VoucherService{
		voucherRepo:    voucherRepo,
		usageRepo:      usageRepo,
		brandRepo:      brandRepo,
		productRepo:    productRepo,
		memberRepo:     memberRepo,
		storageService: storageService,
		voucherDir:     voucherDir,
	}
}

// SaveInput represents voucher registration input
type SaveInput struct {
	BrandName   string `json:"brand_name"`
	ProductName string `json:"product_name"`
	Barcode     string `json:"barcode"`
	ExpiresAt   string `json:"expires_at"`
	Balance     int    `json:"balance"`
	ImageFile   string `json:"image_url"`
}

// UpdateInput represents a partial voucher update. A nil field leaves the
// stored value unchanged; a non-nil field overwrites it.
type UpdateInput struct {
	Barcode     *string `json:"barcode"`
	BrandName   *string `json:"brand_name"`
	ProductName *string `json:"product_name"`
	ExpiresAt   *string `json:"expires_at"`
}

// UseResult represents the outcome of a redemption
type UseResult struct {
	UsageID   uint `json:"usage_id"`
	VoucherID uint `json:"voucher_id"`
	Balance   int  `json:"balance"`
}

// HistoryResult represents a voucher's usage history and remaining balance
type HistoryResult struct {
	VoucherID uint                   `json:"voucher_id"`
	Balance   int                    `json:"balance"`
	Usages    []*models.VoucherUsage `json:"usages"`
}

// Save registers a new voucher for a member. Brand and product are resolved
// by name through the catalog; the image URL is composed from the object
// storage bucket address.
func (s *VoucherService) Save(ctx context.Context, username string, input *SaveInput) (uint, error) {
	if _, err := s.memberRepo.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrMemberNotFound
		}
		return 0, err
	}

	brand, err := s.brandRepo.GetByName(ctx, input.BrandName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrBrandNotFound
		}
		return 0, err
	}

	product, err := s.productRepo.GetByName(ctx, input.ProductName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrProductNotFound
		}
		return 0, err
	}

	expiresAt, err := dateutil.ParseDate(input.ExpiresAt)
	if err != nil {
		return 0, err
	}

	voucher := &models.Voucher{
		BrandID:   brand.ID,
		ProductID: product.ID,
		Barcode:   input.Barcode,
		ExpiresAt: expiresAt,
		Balance:   input.Balance,
		ImageURL:  s.storageService.BucketAddress(s.voucherDir) + input.ImageFile,
		Username:  username,
	}
	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return 0, err
	}

	log.Printf("✅ Voucher registered: %d (member: %s)", voucher.ID, username)
	return voucher.ID, nil
}

// Read returns a voucher's details. Ownership is decided by membership in
// the caller's full voucher set, the same source of truth List uses.
func (s *VoucherService) Read(ctx context.Context, voucherID uint, username string) (*models.VoucherReadResponse, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}

	owned, err := s.ownsVoucher(ctx, username, voucherID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrVoucherAccessDenied
	}

	return voucher.ToReadResponse(), nil
}

// List returns the ids of all vouchers owned by a member
func (s *VoucherService) List(ctx context.Context, username string) ([]uint, error) {
	vouchers, err := s.voucherRepo.FindAllByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(vouchers))
	for _, voucher := range vouchers {
		ids = append(ids, voucher.ID)
	}
	return ids, nil
}

// Update applies a partial update to a voucher. Ownership is not checked
// on this path.
func (s *VoucherService) Update(ctx context.Context, voucherID uint, input *UpdateInput) (uint, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrVoucherNotFound
		}
		return 0, err
	}

	if input.Barcode != nil {
		voucher.Barcode = *input.Barcode
	}
	if input.BrandName != nil {
		brand, err := s.brandRepo.GetByName(ctx, *input.BrandName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, domain.ErrBrandNotFound
			}
			return 0, err
		}
		voucher.BrandID = brand.ID
	}
	if input.ProductName != nil {
		product, err := s.productRepo.GetByName(ctx, *input.ProductName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, domain.ErrProductNotFound
			}
			return 0, err
		}
		voucher.ProductID = product.ID
	}
	if input.ExpiresAt != nil {
		expiresAt, err := dateutil.ParseDate(*input.ExpiresAt)
		if err != nil {
			return 0, err
		}
		voucher.ExpiresAt = expiresAt
	}

	if err := s.voucherRepo.Save(ctx, voucher); err != nil {
		return 0, err
	}
	return voucherID, nil
}

// Use redeems an amount against a voucher and appends a usage record.
// Check order is load, ownership, already-used, sufficiency, expiration;
// sufficiency is checked before expiration, so a request that fails both
// reports insufficient balance. The sum-check-append sequence runs under
// a row lock so concurrent redemptions cannot overdraw the balance.
func (s *VoucherService) Use(ctx context.Context, username string, voucherID uint, amount int, place string) (*UseResult, error) {
	if _, err := s.voucherRepo.GetByID(ctx, voucherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}

	owned, err := s.ownsVoucher(ctx, username, voucherID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrVoucherAccessDenied
	}

	today := dateutil.Today()
	var newBalance int
	check := func(voucher *models.Voucher, totalUsed int) error {
		if totalUsed < 0 {
			totalUsed = 0
		}
		if totalUsed == voucher.Balance {
			return domain.ErrVoucherAlreadyUsed
		}

		remaining := voucher.Balance - totalUsed
		if amount > remaining {
			return domain.ErrVoucherInsufficientBalance
		}
		if voucher.ExpiresAt.Before(today) {
			return domain.ErrVoucherExpired
		}

		newBalance = remaining - amount
		return nil
	}

	usage := &models.VoucherUsage{
		Username:  username,
		Amount:    amount,
		Place:     place,
		CreatedAt: time.Now(),
	}
	if err := s.voucherRepo.Redeem(ctx, voucherID, check, usage); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}

	log.Printf("✅ Voucher %d redeemed: %d (member: %s, remaining: %d)", voucherID, amount, username, newBalance)

	return &UseResult{
		UsageID:   usage.ID,
		VoucherID: voucherID,
		Balance:   newBalance,
	}, nil
}

// History returns a voucher's usage records, oldest first, with the balance
// remaining after them. Ownership is checked the same way Read checks it.
func (s *VoucherService) History(ctx context.Context, voucherID uint, username string) (*HistoryResult, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}

	owned, err := s.ownsVoucher(ctx, username, voucherID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrVoucherAccessDenied
	}

	usages, err := s.usageRepo.FindAllByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	totalUsed, err := s.usageRepo.SumAmountByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if totalUsed < 0 {
		totalUsed = 0
	}

	if usages == nil {
		usages = []*models.VoucherUsage{}
	}
	return &HistoryResult{
		VoucherID: voucherID,
		Balance:   voucher.Balance - totalUsed,
		Usages:    usages,
	}, nil
}

func (s *VoucherService) ownsVoucher(ctx context.Context, username string, voucherID uint) (bool, error) {
	vouchers, err := s.voucherRepo.FindAllByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	for _, v := range vouchers {
		if v.ID == voucherID {
			return true, nil
		}
	}
	return false, nil
}
