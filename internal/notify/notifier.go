package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/gsushant/task-reminder-api/internal/model"
)

// sender is the slice of the SendGrid client the notifier needs.
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Notifier sends due-date reminder mail to a fixed recipient.
type Notifier struct {
	sender sender
	from   string
	to     string
}

func New(apiKey, from, to string) *Notifier {
	return &Notifier{
		sender: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

// Notify sends a reminder for one task. The returned error is an
// outcome for the caller to log; delivery failures are never surfaced
// to API clients.
func (n *Notifier) Notify(ctx context.Context, t model.Task) error {
	subject := fmt.Sprintf("Reminder: Task '%s' is due soon!", t.Name)
	body := fmt.Sprintf(
		"Hi there!\n\nThis is a reminder that the task '%s' is due on %s. Please make sure to complete it.\n\nBest regards, Your Task Management System.",
		t.Name, t.DueDate.Format(time.RFC3339),
	)

	msg := mail.NewSingleEmail(
		mail.NewEmail("", n.from),
		subject,
		mail.NewEmail("", n.to),
		body,
		body,
	)

	resp, err := n.sender.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
