package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/dateutil"
)

// ============================================================
// Auth tables
// ============================================================

// Member represents members table
type Member struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Nickname  string         `gorm:"size:50" json:"nickname"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO
type MemberResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:       m.ID,
		Username: m.Username,
		Nickname: m.Nickname,
	}
}

// RefreshToken represents refresh_tokens table.
// At most one row per username; CreatedAt carries the token's issued-at
// claim, not the insert time, so there is no autoCreateTime here.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// ============================================================
// Catalog tables
// ============================================================

// Brand represents brands table
type Brand struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	ImageURL string `gorm:"size:255" json:"image_url"`
}

func (Brand) TableName() string {
	return "brands"
}

// Product represents products table
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BrandID     uint   `gorm:"index;not null" json:"brand_id"`
	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IsReusable  bool   `gorm:"default:false" json:"is_reusable"`
	Price       int    `gorm:"not null" json:"price"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
}

func (Product) TableName() string {
	return "products"
}

// ============================================================
// Voucher tables
// ============================================================

// Voucher represents vouchers table. Balance is the original face value and
// is never decremented; the spendable remainder is derived from usage rows.
type Voucher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BrandID   uint      `gorm:"index;not null" json:"brand_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Barcode   string    `gorm:"size:64;not null" json:"barcode"`
	ExpiresAt time.Time `gorm:"type:date;not null" json:"expires_at"`
	Balance   int       `gorm:"not null" json:"balance"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	Username  string    `gorm:"index;size:50;not null" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Voucher) TableName() string {
	return "vouchers"
}

// VoucherReadResponse DTO
type VoucherReadResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Barcode   string `json:"barcode"`
	ExpiresAt string `json:"expires_at"`
}

func (v *Voucher) ToReadResponse() *VoucherReadResponse {
	return &VoucherReadResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Barcode:   v.Barcode,
		ExpiresAt: dateutil.FormatDate(v.ExpiresAt),
	}
}

// VoucherUsage represents voucher_usage_histories table. Rows are append-only.
type VoucherUsage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VoucherID uint      `gorm:"index;not null" json:"voucher_id"`
	Username  string    `gorm:"index;size:50;not null" json:"username"`
	Amount    int       `gorm:"not null" json:"amount"`
	Place     string    `gorm:"size:100" json:"place"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (VoucherUsage) TableName() string {
	return "voucher_usage_histories"
}

// ============================================================
// Notification table
// ============================================================

// Notification types
const (
	NotificationTypeExpiration = "EXPIRATION"
)

// Notification represents notifications table
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;size:50;not null" json:"username"`
	VoucherID uint      `gorm:"index;not null" json:"voucher_id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Message   string    `gorm:"size:200;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&RefreshToken{},
		&Brand{},
		&Product{},
		&Voucher{},
		&VoucherUsage{},
		&Notification{},
	)
}
