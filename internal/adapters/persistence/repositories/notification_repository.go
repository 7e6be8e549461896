package repositories

import (
	"context"
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// FindAllByUsername gets a page of a member's notifications, newest first
func (r *notificationRepository) FindAllByUsername(ctx context.Context, username string, limit, offset int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountByUsername counts all notifications for a member
func (r *notificationRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}

// ExistsSince checks whether an equivalent notification was already sent
// after the given time. Used by the expiry sweep to avoid duplicates.
func (r *notificationRepository) ExistsSince(ctx context.Context, username string, voucherID uint, notificationType string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("username = ? AND voucher_id = ? AND type = ? AND created_at >= ?",
			username, voucherID, notificationType, since).
		Count(&count).Error
	return count > 0, err
}
