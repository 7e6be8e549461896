package services

import (
	"context"
	"testing"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/dateutil"

	"github.com/stretchr/testify/require"
)

func TestNotificationService_SweepExpiring(t *testing.T) {
	ctx := context.Background()
	today := dateutil.Today()

	addVoucher := func(t *testing.T, repo *fakeVoucherRepo, username string, expiresAt time.Time) uint {
		t.Helper()
		voucher := &models.Voucher{
			BrandID:   1,
			ProductID: 1,
			Barcode:   "880000000001",
			ExpiresAt: expiresAt,
			Balance:   5000,
			Username:  username,
		}
		require.NoError(t, repo.Create(ctx, voucher))
		return voucher.ID
	}

	t.Run("notices vouchers inside the window only", func(t *testing.T) {
		voucherRepo := newFakeVoucherRepo()
		notificationRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(notificationRepo, voucherRepo, 3)

		expiringID := addVoucher(t, voucherRepo, "woody", today.AddDate(0, 0, 2))
		addVoucher(t, voucherRepo, "woody", today.AddDate(0, 0, 10))
		addVoucher(t, voucherRepo, "buzz", today.AddDate(0, 0, -1))

		require.NoError(t, svc.SweepExpiring(ctx))

		notices, total, err := svc.List(ctx, "woody", 20, 0)
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Len(t, notices, 1)
		require.Equal(t, expiringID, notices[0].VoucherID)
		require.Equal(t, models.NotificationTypeExpiration, notices[0].Type)
		require.Contains(t, notices[0].Message, dateutil.FormatDate(today.AddDate(0, 0, 2)))

		buzzNotices, buzzTotal, err := svc.List(ctx, "buzz", 20, 0)
		require.NoError(t, err)
		require.Zero(t, buzzTotal)
		require.Empty(t, buzzNotices)
	})

	t.Run("repeated sweeps do not duplicate notices", func(t *testing.T) {
		voucherRepo := newFakeVoucherRepo()
		notificationRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(notificationRepo, voucherRepo, 3)

		addVoucher(t, voucherRepo, "woody", today.AddDate(0, 0, 1))

		require.NoError(t, svc.SweepExpiring(ctx))
		require.NoError(t, svc.SweepExpiring(ctx))

		notices, _, err := svc.List(ctx, "woody", 20, 0)
		require.NoError(t, err)
		require.Len(t, notices, 1)
	})

	t.Run("list pages through notices", func(t *testing.T) {
		voucherRepo := newFakeVoucherRepo()
		notificationRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(notificationRepo, voucherRepo, 3)

		for i := 0; i < 5; i++ {
			require.NoError(t, notificationRepo.Create(ctx, &models.Notification{
				Username:  "woody",
				VoucherID: uint(i + 1),
				Type:      models.NotificationTypeExpiration,
			}))
		}

		page, total, err := svc.List(ctx, "woody", 2, 0)
		require.NoError(t, err)
		require.EqualValues(t, 5, total)
		require.Len(t, page, 2)

		lastPage, _, err := svc.List(ctx, "woody", 2, 4)
		require.NoError(t, err)
		require.Len(t, lastPage, 1)
	})

	t.Run("voucher expiring today is noticed", func(t *testing.T) {
		voucherRepo := newFakeVoucherRepo()
		notificationRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(notificationRepo, voucherRepo, 3)

		addVoucher(t, voucherRepo, "woody", today)

		require.NoError(t, svc.SweepExpiring(ctx))

		notices, _, err := svc.List(ctx, "woody", 20, 0)
		require.NoError(t, err)
		require.Len(t, notices, 1)
	})
}
