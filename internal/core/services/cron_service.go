package services

import (
	"context"
	"log"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/config"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService schedules the daily voucher expiry sweep
type CronService struct {
	cron          *cron.Cron
	notifyService *NotificationService
	spec          string
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB, cfg *config.Config) *CronService {
	notifyService := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewVoucherRepository(db),
		cfg.Notify.ExpiryNoticeDays,
	)

	return &CronService{
		cron:          cron.New(),
		notifyService: notifyService,
		spec:          cfg.Notify.CronSpec,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.notifyService.SweepExpiring(context.Background()); err != nil {
			log.Printf("❌ Expiry sweep error: %v", err)
		}
	})
	if err != nil {
		log.Printf("❌ Failed to schedule expiry sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Printf("🚀 CronService started [spec: %s]", s.spec)
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}
