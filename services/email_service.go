package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"souq-api/config"

	"gopkg.in/gomail.v2"
)

// EmailSender is the pluggable notification adapter. Both the SMTP and the
// Brevo API providers implement it; registration and password-reset flows
// depend only on the interface.
type EmailSender interface {
	SendVerificationEmail(toEmail, name, otp, lang string) error
	SendPasswordResetEmail(toEmail, name, otp, lang string) error
	SendWelcomeEmail(toEmail, name, lang string) error
}

// NewEmailSender picks the provider from configuration. With nothing
// configured it falls back to a log-only sender so local development
// works without SMTP credentials.
func NewEmailSender() EmailSender {
	cfg := config.AppConfig

	if cfg.EmailProvider == "brevo" && cfg.BrevoAPIKey != "" {
		return &BrevoSender{
			apiKey: cfg.BrevoAPIKey,
			apiURL: cfg.BrevoAPIURL,
			from:   cfg.SMTPFrom,
			client: &http.Client{Timeout: 10 * time.Second},
		}
	}

	if cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		return &SMTPSender{
			dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
			from:   cfg.SMTPFrom,
		}
	}

	log.Println("Email provider not configured, emails will be logged only")
	return &logSender{}
}

type emailContent struct {
	subject string
	heading string
	body    string
	footer  string
}

func verificationContent(name, otp, lang string) emailContent {
	if lang == "ar" {
		return emailContent{
			subject: "رمز التحقق من البريد الإلكتروني - سوق",
			heading: "مرحباً " + name + "،",
			body:    fmt.Sprintf("استخدم الرمز التالي للتحقق من بريدك الإلكتروني: <b>%s</b>", otp),
			footer:  "هذه رسالة آلية، يرجى عدم الرد عليها.",
		}
	}
	return emailContent{
		subject: "Email Verification Code - Souq",
		heading: "Hello " + name + ",",
		body:    fmt.Sprintf("Use the following code to verify your email address: <b>%s</b>", otp),
		footer:  "This is an automated email. Please do not reply.",
	}
}

func passwordResetContent(name, otp, lang string) emailContent {
	if lang == "ar" {
		return emailContent{
			subject: "رمز إعادة تعيين كلمة المرور - سوق",
			heading: "مرحباً " + name + "،",
			body:    fmt.Sprintf("استخدم الرمز التالي لإعادة تعيين كلمة المرور: <b>%s</b>", otp),
			footer:  "إذا لم تطلب إعادة التعيين، تجاهل هذه الرسالة.",
		}
	}
	return emailContent{
		subject: "Password Reset Code - Souq",
		heading: "Hello " + name + ",",
		body:    fmt.Sprintf("Use the following code to reset your password: <b>%s</b>", otp),
		footer:  "If you did not request a reset, please ignore this email.",
	}
}

func welcomeContent(name, lang string) emailContent {
	if lang == "ar" {
		return emailContent{
			subject: "أهلاً بك في سوق",
			heading: "مرحباً " + name + "،",
			body:    "تم التحقق من حسابك بنجاح. نتمنى لك تجربة تسوق ممتعة!",
			footer:  "فريق سوق",
		}
	}
	return emailContent{
		subject: "Welcome to Souq",
		heading: "Hello " + name + ",",
		body:    "Your account has been verified successfully. Happy shopping!",
		footer:  "The Souq Team",
	}
}

func renderHTML(content emailContent) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .code { font-size: 28px; font-weight: bold; letter-spacing: 6px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>%s</h2>
        <p>%s</p>
        <div class="footer"><p>%s</p></div>
    </div>
</body>
</html>
	`, content.heading, content.body, content.footer)
}

// SMTPSender delivers through a plain SMTP dialer.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *SMTPSender) send(toEmail string, content emailContent) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", content.subject)
	m.SetBody("text/html", renderHTML(content))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPSender) SendVerificationEmail(toEmail, name, otp, lang string) error {
	return s.send(toEmail, verificationContent(name, otp, lang))
}

func (s *SMTPSender) SendPasswordResetEmail(toEmail, name, otp, lang string) error {
	return s.send(toEmail, passwordResetContent(name, otp, lang))
}

func (s *SMTPSender) SendWelcomeEmail(toEmail, name, lang string) error {
	return s.send(toEmail, welcomeContent(name, lang))
}

// BrevoSender delivers through the Brevo transactional email REST API.
type BrevoSender struct {
	apiKey string
	apiURL string
	from   string
	client *http.Client
}

func (b *BrevoSender) send(toEmail string, content emailContent) error {
	payload := map[string]interface{}{
		"sender":      map[string]string{"email": b.from},
		"to":          []map[string]string{{"email": toEmail}},
		"subject":     content.subject,
		"htmlContent": renderHTML(content),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, b.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo API returned status %d", resp.StatusCode)
	}
	return nil
}

func (b *BrevoSender) SendVerificationEmail(toEmail, name, otp, lang string) error {
	return b.send(toEmail, verificationContent(name, otp, lang))
}

func (b *BrevoSender) SendPasswordResetEmail(toEmail, name, otp, lang string) error {
	return b.send(toEmail, passwordResetContent(name, otp, lang))
}

func (b *BrevoSender) SendWelcomeEmail(toEmail, name, lang string) error {
	return b.send(toEmail, welcomeContent(name, lang))
}

type logSender struct{}

func (l *logSender) SendVerificationEmail(toEmail, name, otp, lang string) error {
	log.Printf("verification email to %s (otp: %s)", toEmail, otp)
	return nil
}

func (l *logSender) SendPasswordResetEmail(toEmail, name, otp, lang string) error {
	log.Printf("password reset email to %s (otp: %s)", toEmail, otp)
	return nil
}

func (l *logSender) SendWelcomeEmail(toEmail, name, lang string) error {
	log.Printf("welcome email to %s", toEmail)
	return nil
}
