package utils

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeExpiryScheduler sets up the daily expiry sweep
func InitializeExpiryScheduler() {
	log.Println("[EXPIRY-SCHEDULER] Initializing expiry scheduler...")

	c := cron.New()

	// Run daily at midnight
	c.AddFunc("0 0 * * *", func() {
		log.Println("[EXPIRY-SCHEDULER] Running daily expiry sweep...")
		ExpireCertificates()
		DeactivateExpiredNotices()
	})

	c.Start()
	log.Println("[EXPIRY-SCHEDULER] Expiry scheduler started - runs daily at midnight")
}

// ExpireCertificates marks certificates past their validity as EXPIRED
func ExpireCertificates() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&courseModels.Certificate{}).
		Where("status = ? AND is_deleted = ? AND valid_until IS NOT NULL AND valid_until < ?", "ACTIVE", false, now).
		Updates(map[string]interface{}{"status": "EXPIRED"})

	if result.Error != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error expiring certificates: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[EXPIRY-SCHEDULER] Expired %d certificates", result.RowsAffected)
	}
}

// DeactivateExpiredNotices turns off notices past their expiry timestamp
func DeactivateExpiredNotices() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Notice{}).
		Where("is_active = ? AND is_deleted = ? AND expires_at IS NOT NULL AND expires_at < ?", true, false, now).
		Updates(map[string]interface{}{"is_active": false})

	if result.Error != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error deactivating notices: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[EXPIRY-SCHEDULER] Deactivated %d expired notices", result.RowsAffected)
	}
}
