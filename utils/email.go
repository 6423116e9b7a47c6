// utils/email.go
package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/keighl/postmark"

	"go-register/catalog"
	"go-register/models"
)

// EmailService sends the end-of-day sales report using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes an EmailService, or nil when no API token
// is configured (the register then simply has no report mail).
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, textContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		TextBody: textContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendSalesReport mails a summary of the day's completed sales.
func (es *EmailService) SendSalesReport(toEmail string, sales []models.Sale) error {
	subject := fmt.Sprintf("Kassenbericht %s", time.Now().Format("02.01.2006"))
	return es.SendEmail(toEmail, subject, BuildSalesReport(sales))
}

// BuildSalesReport renders the report body: one line per sale plus
// totals. Kept separate from sending so it can be tested offline.
func BuildSalesReport(sales []models.Sale) string {
	var revenue int64
	items := 0
	body := "Kassenbericht\n\n"
	for _, s := range sales {
		n := 0
		for _, it := range s.Items {
			n += it.Quantity
		}
		body += fmt.Sprintf("%s  %2d Artikel  %s\n",
			s.Time.Format("15:04"), n, catalog.FormatCents(s.TotalCents, false))
		revenue += s.TotalCents
		items += n
	}
	body += fmt.Sprintf("\nVerkäufe: %d\nArtikel:  %d\nUmsatz:   %s\n",
		len(sales), items, catalog.FormatCents(revenue, false))
	return body
}
