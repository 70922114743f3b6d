package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderConfirmationEmail notifies a customer after checkout. A
// multi-vendor checkout produces several orders, so the mail lists one
// line per order id.
func (s *EmailService) SendOrderConfirmationEmail(toEmail string, orderIDs []string, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Order Confirmation - Marketplace")

	orderList := ""
	for _, id := range orderIDs {
		orderList += fmt.Sprintf("<li>%s</li>", id)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .order-box { background-color: #f0f7ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Orders:</strong></p>
            <ul>%s</ul>
            <p><strong>Total Amount:</strong> $%.2f</p>
        </div>

        <p>Your order has been received and is being processed. Each vendor ships their part separately.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, orderList, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
