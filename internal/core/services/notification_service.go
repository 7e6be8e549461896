package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/dateutil"
)

// NotificationService records voucher expiry notices for members
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	voucherRepo      repositories.VoucherRepository
	noticeDays       int
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	voucherRepo repositories.VoucherRepository,
	noticeDays int,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		voucherRepo:      voucherRepo,
		noticeDays:       noticeDays,
	}
}

// List gets one page of a member's notifications, newest first, along with
// the member's total notification count
func (s *NotificationService) List(ctx context.Context, username string, limit, offset int) ([]*models.Notification, int64, error) {
	notifications, err := s.notificationRepo.FindAllByUsername(ctx, username, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.notificationRepo.CountByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// SweepExpiring records a notice for every voucher expiring within the
// configured window. A voucher already noticed in the last 24 hours is
// skipped, so the daily sweep does not pile up duplicates.
func (s *NotificationService) SweepExpiring(ctx context.Context) error {
	today := dateutil.Today()
	until := today.AddDate(0, 0, s.noticeDays+1)

	vouchers, err := s.voucherRepo.FindExpiringBetween(ctx, today, until)
	if err != nil {
		return err
	}

	var created int
	for _, voucher := range vouchers {
		exists, err := s.notificationRepo.ExistsSince(ctx,
			voucher.Username, voucher.ID, models.NotificationTypeExpiration,
			time.Now().Add(-24*time.Hour))
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		notification := &models.Notification{
			Username:  voucher.Username,
			VoucherID: voucher.ID,
			Type:      models.NotificationTypeExpiration,
			Message:   fmt.Sprintf("기프티콘 유효기간이 %s까지입니다.", dateutil.FormatDate(voucher.ExpiresAt)),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		log.Printf("✅ Expiry sweep created %d notifications", created)
	}
	return nil
}
