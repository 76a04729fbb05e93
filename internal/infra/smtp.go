package infra

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending notification emails.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	alertsTo []string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		alertsTo: cfg.AlertRecipients,
	}
}

// SendLowStockAlert mails the configured recipients that an item fell to or
// below its minimum quantity.
func (m *Mailer) SendLowStockAlert(itemName, sku string, quantity, minQty int) error {
	if len(m.alertsTo) == 0 {
		return fmt.Errorf("mailer: no alert recipients configured")
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = m.alertsTo
	e.Subject = fmt.Sprintf("Low stock alert: %s (%s)", itemName, sku)

	var body strings.Builder
	fmt.Fprintf(&body, "Item %q (%s) is low on stock.\n\n", itemName, sku)
	fmt.Fprintf(&body, "Current quantity: %d\n", quantity)
	fmt.Fprintf(&body, "Minimum quantity: %d\n\n", minQty)
	body.WriteString("Restock or adjust the minimum threshold from the inventory dashboard.\n")
	e.Text = []byte(body.String())

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}

// SendReport mails a generated report file as an attachment.
func (m *Mailer) SendReport(to, subject, body, filePath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if filePath != "" {
		if _, err := e.AttachFile(filePath); err != nil {
			return fmt.Errorf("mailer: attach report: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
