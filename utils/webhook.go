package utils

import (
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyCertificateIssued posts a certificate-issued event to the configured
// webhook endpoint, used by the HR system to sync training records. A missing
// WEBHOOK_URL disables the integration.
func NotifyCertificateIssued(certificateNumber string, userID, courseID uint, grade string) {
	if config.AppConfig == nil || config.AppConfig.WebhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Webhook-Secret", config.AppConfig.WebhookSecret).
		SetBody(map[string]interface{}{
			"event":              "certificate.issued",
			"certificate_number": certificateNumber,
			"user_id":            userID,
			"course_id":          courseID,
			"grade":              grade,
			"issued_at":          time.Now().UTC().Format(time.RFC3339),
		}).
		Post(config.AppConfig.WebhookURL)

	if err != nil {
		log.Printf("[WEBHOOK] Failed to deliver certificate event: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[WEBHOOK] Certificate event rejected with status %d: %s", resp.StatusCode(), resp.String())
	}
}
