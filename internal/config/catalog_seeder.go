package config

import (
	"log"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedCatalogData seeds the initial brand/product catalog
func SeedCatalogData(db *gorm.DB) error {
	if err := seedBrands(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}

	log.Println("✅ Catalog data seeded successfully")
	return nil
}

func seedBrands(db *gorm.DB) error {
	brands := []models.Brand{
		{Name: "스타벅스", ImageURL: "https://image.gifthub.kr/brand/starbucks.png"},
		{Name: "배스킨라빈스", ImageURL: "https://image.gifthub.kr/brand/baskinrobbins.png"},
		{Name: "CU", ImageURL: "https://image.gifthub.kr/brand/cu.png"},
		{Name: "GS25", ImageURL: "https://image.gifthub.kr/brand/gs25.png"},
	}

	for _, brand := range brands {
		var count int64
		if err := db.Model(&models.Brand{}).Where("name = ?", brand.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&brand).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	type seedProduct struct {
		brandName string
		product   models.Product
	}

	products := []seedProduct{
		{
			brandName: "스타벅스",
			product: models.Product{
				Name:        "아이스 카페 아메리카노 T",
				Description: "국민 커피, 아이스 아메리카노 Tall 사이즈",
				IsReusable:  false,
				Price:       4500,
			},
		},
		{
			brandName: "스타벅스",
			product: models.Product{
				Name:        "카페 라떼 T",
				Description: "진한 에스프레소와 우유, Tall 사이즈",
				IsReusable:  false,
				Price:       5000,
			},
		},
		{
			brandName: "배스킨라빈스",
			product: models.Product{
				Name:        "파인트 아이스크림",
				Description: "3가지 맛을 골라 담는 파인트",
				IsReusable:  false,
				Price:       9800,
			},
		},
		{
			brandName: "CU",
			product: models.Product{
				Name:        "모바일 상품권 1만원권",
				Description: "잔액 관리형 금액권",
				IsReusable:  true,
				Price:       10000,
			},
		},
	}

	for _, sp := range products {
		var brand models.Brand
		if err := db.Where("name = ?", sp.brandName).First(&brand).Error; err != nil {
			return err
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("name = ?", sp.product.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			sp.product.BrandID = brand.ID
			if err := db.Create(&sp.product).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
