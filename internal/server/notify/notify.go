// Package notify delivers credentials and login details to buyers. Template
// rendering and SMTP delivery live outside this server; the log-backed
// notifier records what would be sent.
package notify

import (
	"context"

	"github.com/dmitrijs2005/memoria/internal/logging"
)

// LoginDetails is the message sent once a claim has its URLs.
type LoginDetails struct {
	Email         string
	Tenant        string
	PublicPageURL string
	LoginURL      string
	LoginEmail    string
	// LoginPassword is delivered to the buyer and must never be logged.
	LoginPassword string
}

// Notifier sends outbound messages to buyers.
type Notifier interface {
	SendCredential(ctx context.Context, email, tenant, credential string) error
	SendLoginDetails(ctx context.Context, d LoginDetails) error
}

// LogNotifier writes every message to the log instead of delivering it.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("module", "notify")}
}

func (n *LogNotifier) SendCredential(ctx context.Context, email, tenant, credential string) error {
	n.logger.Info(ctx, "credential issued", "email", email, "tenant", tenant, "credential_suffix", suffix(credential))
	return nil
}

func (n *LogNotifier) SendLoginDetails(ctx context.Context, d LoginDetails) error {
	n.logger.Info(ctx, "login details", "email", d.Email, "tenant", d.Tenant,
		"public_page_url", d.PublicPageURL, "login_url", d.LoginURL, "login_email", d.LoginEmail,
		"with_password", d.LoginPassword != "")
	return nil
}

// suffix keeps the last four characters so logs never carry a usable key.
func suffix(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
