package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"educa/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Educa <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #212121; line-height: 1.6; }
			.content h2 { color: #1B5E20; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #1B5E20; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUCA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Educa. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Educa"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Educa</strong>! Your account has been created.</p>
		<p>Browse the catalog, enroll in a course, and start learning.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment Confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open the course and work through its modules in order.
		</div>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Weekly digest of newly published courses
func SendCourseDigestEmail(email, name string, courseTitles []string) {
	subject := "New courses on Educa this week"

	items := ""
	for _, title := range courseTitles {
		items += fmt.Sprintf("<li><strong>%s</strong></li>", title)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>These courses were added in the last week:</p>
		<ul>%s</ul>
		<p>Log in to browse the full catalog.</p>
	`, name, items)

	go SendEmail([]string{email}, subject, getEmailTemplate("Weekly Course Digest", body))
}
