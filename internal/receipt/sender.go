// Package receipt defines the boundary to the receipt delivery channel.
// Actual email delivery is an external collaborator; the in-repo sender
// only logs what would be sent.
package receipt

import (
	"context"
	"log/slog"
	"strings"
)

// Sender delivers the itemized bill to the shopper.
type Sender interface {
	Send(ctx context.Context, to string, bill []string) error
}

// SMTPConfig carries the settings of the store's outgoing mail account.
// It is loaded from config and handed to whichever real sender is plugged
// in at deployment time.
type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// LogSender writes the receipt to the structured log instead of sending
// mail. Used in the demo deployment and in tests.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to string, bill []string) error {
	slog.InfoContext(ctx, "receipt", "to", to, "bill", strings.Join(bill, "; "))
	return nil
}
