package utils

import (
	"fmt"
	"log/slog"
	"os"

	"go-storefront/models"

	"github.com/keighl/postmark"
)

// EmailService sends transactional mail through Postmark. When no API
// token is configured the service is a no-op, so local development
// does not require a Postmark account.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes the service from POSTMARK_API_TOKEN and
// EMAIL_SENDER.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		slog.Warn("POSTMARK_API_TOKEN not set, outgoing email disabled")

		return &EmailService{}
	}

	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOrderConfirmationEmail notifies the customer that the order was
// placed, echoing the frozen total.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order *models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.BillingDetails.FirstName,
		order.ID.Hex(),
		order.TotalAmount,
		order.PaymentMethod,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendContactNotification forwards a contact-form inquiry to the shop
// inbox configured in CONTACT_INBOX.
func (es *EmailService) SendContactNotification(contact *models.Contact) error {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		return nil
	}

	subject := fmt.Sprintf("New inquiry: %s", contact.Subject)
	htmlContent := fmt.Sprintf(
		"<strong>%s %s</strong> (%s, %s) wrote:<br><br>%s",
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.PhoneNumber,
		contact.Message,
	)

	return es.SendEmail(inbox, subject, htmlContent)
}
