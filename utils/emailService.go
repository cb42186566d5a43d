package utils

import (
	"fmt"
	"lms/config"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email over SMTP
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ZBS Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #2D6A4F; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ZBS ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ZBS Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to ZBS Academy! Your account has been created successfully.</p>
		<p>Browse the course catalog, enroll in a training course and start learning today.</p>
	`, name)

	SendEmail([]string{email}, "Welcome to ZBS Academy!", getEmailTemplate("Welcome Aboard", body))
}

// SendOTPEmail mails a password reset code
func SendOTPEmail(email, name, otp string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to reset your password. It is valid for 10 minutes.</p>
		<div class="info-box"><strong style="font-size: 20px; letter-spacing: 4px;">%s</strong></div>
		<p>If you did not request a password reset, you can safely ignore this email.</p>
	`, name, otp)

	SendEmail([]string{email}, "Your ZBS Academy Password Reset Code", getEmailTemplate("Password Reset", body))
}

// SendCertificateEmail congratulates a user on a newly issued certificate
func SendCertificateEmail(email, name, certificateName, certificateNumber, grade string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You passed the final quiz and earned your certificate.</p>
		<div class="info-box">
			<strong>%s</strong><br>
			Certificate Number: %s<br>
			Grade: %s
		</div>
		<p>You can view and share your certificate from your dashboard.</p>
	`, name, certificateName, certificateNumber, grade)

	SendEmail([]string{email}, "Your Course Certificate Has Been Issued!", getEmailTemplate("Certificate Issued", body))
}

// SendTicketReplyEmail notifies a ticket owner that support responded
func SendTicketReplyEmail(email, name, subject, message string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Our support team has replied to your ticket <strong>%s</strong>:</p>
		<div class="info-box">%s</div>
		<p>Log in to your dashboard to continue the conversation.</p>
	`, name, subject, message)

	SendEmail([]string{email}, "Support Has Replied to Your Ticket", getEmailTemplate("Ticket Update", body))
}
