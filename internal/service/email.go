package service

import (
	"fmt"
	"net/smtp"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/models"
)

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

var _ IEmailService = (*EmailService)(nil)

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.EmailFrom,
		fromName:     cfg.EmailFromName,
	}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log the email instead
	if s.smtpHost == "" || s.smtpPort == "" {
		fmt.Printf("SMTP not configured, logging email:\n")
		fmt.Printf("To: %s\n", to)
		fmt.Printf("Subject: %s\n", subject)
		fmt.Printf("Body:\n%s\n", body)
		fmt.Printf("--- End Email ---\n")
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendWelcomeEmail(user *models.User) error {
	subject := "Welcome to NutriPlan!"
	body := s.buildWelcomeEmailBody(user)
	return s.SendEmail(user.Email, subject, body)
}

func (s *EmailService) buildWelcomeEmailBody(user *models.User) string {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173" // Development fallback
	}

	caser := cases.Title(language.English)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Welcome to NutriPlan!</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background-color: #4CAF50; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="margin: 0; font-size: 28px;">🥗 NutriPlan</h1>
		<p style="margin: 10px 0 0 0; font-size: 16px;">Your Personal Nutrition Companion</p>
	</div>

	<div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
		<h2 style="color: #4CAF50; margin-top: 0;">Hello %s!</h2>
		<p>Welcome to NutriPlan. Your account is ready.</p>

		<h3 style="color: #4CAF50;">What can you do now?</h3>
		<ul style="padding-left: 20px;">
			<li style="margin-bottom: 10px;">📋 <strong>Complete Your Profile:</strong> Tell us your goals and we'll compute a daily calorie target</li>
			<li style="margin-bottom: 10px;">🍽️ <strong>Log Your Meals:</strong> Track calories and macros throughout the day</li>
			<li style="margin-bottom: 10px;">💧 <strong>Track Water:</strong> See your hydration progress by time of day</li>
			<li style="margin-bottom: 10px;">📈 <strong>Watch Your Progress:</strong> Weight trends and goal progress at a glance</li>
		</ul>

		<div style="text-align: center; margin: 30px 0;">
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold; font-size: 16px; display: inline-block;">
				Get Started
			</a>
		</div>

		<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;">
			<p style="color: #666; font-size: 12px; margin: 0;">
				Stay healthy!<br>
				The %s Team
			</p>
		</div>
	</div>
</body>
</html>
	`, user.Name, frontendURL, caser.String("nutriplan"))
}
