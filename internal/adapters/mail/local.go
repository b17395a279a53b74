package mail

import (
	"context"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
	"github.com/irkoudo/yehoshua-focus/internal/observability"
)

// LocalMailer is the dev-mode transport: Send only logs, FetchBody
// returns a canned reflection so the pipeline can run end to end
// without a Resend account.
type LocalMailer struct {
	Body string
}

func NewLocalMailer() *LocalMailer {
	return &LocalMailer{Body: "Aujourd'hui je veux finir le module d'authentification."}
}

// Send implements domain.MailSender.
func (m *LocalMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	observability.LoggerFromContext(ctx).Info("local mailer: send skipped",
		"to", to,
		"subject", subject,
		"html_length", len(htmlBody))
	return nil
}

// FetchBody implements domain.MailFetcher.
func (m *LocalMailer) FetchBody(ctx context.Context, id domain.MessageID) (domain.InboundContent, error) {
	observability.LoggerFromContext(ctx).Info("local mailer: returning canned body", "message_id", id)
	return domain.InboundContent{Text: m.Body}, nil
}
