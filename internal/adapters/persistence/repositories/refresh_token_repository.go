package repositories

import (
	"context"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements RefreshTokenRepository interface
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Upsert stores a refresh token, replacing any prior row for the username.
// The conflict target is the unique username index, so two concurrent logins
// cannot leave two live rows or none.
func (r *refreshTokenRepository) Upsert(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
		}).
		Create(token).Error
}

// FindByUsername gets the stored refresh token for a username
func (r *refreshTokenRepository) FindByUsername(ctx context.Context, username string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByUsername removes the stored refresh token for a username.
// Returns gorm.ErrRecordNotFound when there is no active session.
func (r *refreshTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
