package services

import (
	"context"
	"sync"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the gorm sentinel-error
// behavior the services map on, including ErrRecordNotFound.

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Upsert(_ context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.tokens[token.Username]; ok {
		token.ID = existing.ID
	} else {
		r.nextID++
		token.ID = r.nextID
	}
	copied := *token
	r.tokens[token.Username] = &copied
	return nil
}

func (r *fakeRefreshTokenRepo) FindByUsername(_ context.Context, username string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *token
	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteByUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[username]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.tokens, username)
	return nil
}

func (r *fakeRefreshTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[string]*models.Member
	nextID  uint
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*models.Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	member.ID = r.nextID
	copied := *member
	r.members[member.Username] = &copied
	return nil
}

func (r *fakeMemberRepo) GetByUsername(_ context.Context, username string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeMemberRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.members[username]
	return ok, nil
}

type fakeBrandRepo struct {
	brands map[string]*models.Brand
}

func newFakeBrandRepo(brands ...*models.Brand) *fakeBrandRepo {
	r := &fakeBrandRepo{brands: make(map[string]*models.Brand)}
	for _, b := range brands {
		r.brands[b.Name] = b
	}
	return r
}

func (r *fakeBrandRepo) Create(_ context.Context, brand *models.Brand) error {
	r.brands[brand.Name] = brand
	return nil
}

func (r *fakeBrandRepo) GetByID(_ context.Context, id uint) (*models.Brand, error) {
	for _, b := range r.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBrandRepo) GetByName(_ context.Context, name string) (*models.Brand, error) {
	b, ok := r.brands[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeBrandRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.brands[name]
	return ok, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*models.Product)}
	for _, p := range products {
		r.products[p.Name] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	r.products[product.Name] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*models.Product, error) {
	p, ok := r.products[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.products[name]
	return ok, nil
}

type fakeVoucherRepo struct {
	mu          sync.Mutex
	vouchers    map[uint]*models.Voucher
	usages      []*models.VoucherUsage
	nextID      uint
	nextUsageID uint
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: make(map[uint]*models.Voucher)}
}

func (r *fakeVoucherRepo) Create(_ context.Context, voucher *models.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	voucher.ID = r.nextID
	copied := *voucher
	r.vouchers[voucher.ID] = &copied
	return nil
}

func (r *fakeVoucherRepo) GetByID(_ context.Context, id uint) (*models.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	voucher, ok := r.vouchers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *voucher
	return &copied, nil
}

func (r *fakeVoucherRepo) FindAllByUsername(_ context.Context, username string) ([]*models.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Voucher
	for _, v := range r.vouchers {
		if v.Username == username {
			copied := *v
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeVoucherRepo) Save(_ context.Context, voucher *models.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vouchers[voucher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *voucher
	r.vouchers[voucher.ID] = &copied
	return nil
}

func (r *fakeVoucherRepo) Redeem(_ context.Context, voucherID uint, check repositories.RedeemCheck, usage *models.VoucherUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	voucher, ok := r.vouchers[voucherID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	totalUsed := 0
	for _, u := range r.usages {
		if u.VoucherID == voucherID {
			totalUsed += u.Amount
		}
	}

	if err := check(voucher, totalUsed); err != nil {
		return err
	}

	r.nextUsageID++
	usage.ID = r.nextUsageID
	usage.VoucherID = voucherID
	copied := *usage
	r.usages = append(r.usages, &copied)
	return nil
}

func (r *fakeVoucherRepo) FindExpiringBetween(_ context.Context, from, to time.Time) ([]*models.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Voucher
	for _, v := range r.vouchers {
		if !v.ExpiresAt.Before(from) && v.ExpiresAt.Before(to) {
			copied := *v
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeVoucherRepo) usageCount(voucherID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, u := range r.usages {
		if u.VoucherID == voucherID {
			count++
		}
	}
	return count
}

type fakeVoucherUsageRepo struct {
	voucherRepo *fakeVoucherRepo
}

func (r *fakeVoucherUsageRepo) FindAllByVoucherID(_ context.Context, voucherID uint) ([]*models.VoucherUsage, error) {
	r.voucherRepo.mu.Lock()
	defer r.voucherRepo.mu.Unlock()
	var result []*models.VoucherUsage
	for _, u := range r.voucherRepo.usages {
		if u.VoucherID == voucherID {
			copied := *u
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeVoucherUsageRepo) SumAmountByVoucherID(_ context.Context, voucherID uint) (int, error) {
	r.voucherRepo.mu.Lock()
	defer r.voucherRepo.mu.Unlock()
	total := 0
	for _, u := range r.voucherRepo.usages {
		if u.VoucherID == voucherID {
			total += u.Amount
		}
	}
	return total, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
	nextID        uint
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	notification.ID = r.nextID
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) FindAllByUsername(_ context.Context, username string, limit, offset int) ([]*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.Notification
	for _, n := range r.notifications {
		if n.Username == username {
			copied := *n
			matched = append(matched, &copied)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeNotificationRepo) CountByUsername(_ context.Context, username string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.Username == username {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) ExistsSince(_ context.Context, username string, voucherID uint, notificationType string, since time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Username == username && n.VoucherID == voucherID && n.Type == notificationType && !n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}
