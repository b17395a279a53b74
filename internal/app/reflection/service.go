// Package reflection hosts the inbound-email flow around the
// interpretation pipeline: fetch the body, load today's memory, run the
// orchestrator, persist the record, deliver the reply.
package reflection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/irkoudo/yehoshua-focus/internal/app/interpret"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
	"github.com/irkoudo/yehoshua-focus/internal/emails"
	"github.com/irkoudo/yehoshua-focus/internal/htmltext"
	"github.com/irkoudo/yehoshua-focus/internal/observability"
)

// InboundPayload is what the webhook delivers: metadata only, the body
// is fetched separately.
type InboundPayload struct {
	From      string
	MessageID domain.MessageID
	Subject   string
}

type Service struct {
	fetcher      domain.MailFetcher
	store        domain.ReflectionStore
	sender       domain.MailSender
	generator    domain.Generator
	orchestrator *interpret.Orchestrator

	// deliver gates actual email sending; off in local mode so dev
	// runs never mail the user twice.
	deliver bool

	now func() time.Time
}

func NewService(
	fetcher domain.MailFetcher,
	store domain.ReflectionStore,
	sender domain.MailSender,
	generator domain.Generator,
	deliver bool,
) *Service {
	return &Service{
		fetcher:      fetcher,
		store:        store,
		sender:       sender,
		generator:    generator,
		orchestrator: interpret.NewDefaultOrchestrator(),
		deliver:      deliver,
		now:          time.Now,
	}
}

// ProcessInbound handles one inbound reply end to end and returns the
// pipeline outcome. Fetch failure is the only hard error: without a
// body there is nothing to interpret. Store failures degrade — an
// unreadable memory means "no memory", an unwritable log is logged and
// the reply still goes out.
func (s *Service) ProcessInbound(ctx context.Context, p InboundPayload) (domain.OutcomeRecord, error) {
	log := observability.LoggerFromContext(ctx).With(
		"sender", p.From,
		"message_id", p.MessageID,
	)
	log.Info("processing inbound reflection")

	content, err := s.fetcher.FetchBody(ctx, p.MessageID)
	if err != nil {
		log.Error("failed to fetch email content", "error", err)
		return domain.OutcomeRecord{}, fmt.Errorf("fetching inbound body %s: %w", p.MessageID, err)
	}

	body := content.Text
	if strings.TrimSpace(body) == "" {
		body = htmltext.Flatten(content.HTML)
	}

	now := s.now()
	raw := domain.RawInboundMessage{
		SenderAddress: p.From,
		Subject:       p.Subject,
		Body:          body,
		ReceivedAt:    now,
		MessageID:     p.MessageID,
	}

	memory, err := s.store.QueryToday(ctx, p.From, now)
	if err != nil {
		log.Error("memory query failed, proceeding without memory", "error", err)
		memory = nil
	}
	log.Info("memory retrieved", "record_count", len(memory))

	outcome := s.orchestrator.Process(ctx, raw, memory, s.generator)

	moment := interpret.MomentAt(now)
	rec := &domain.ReflectionRecord{
		ID:            uuid.NewString(),
		SenderAddress: p.From,
		Content:       interpret.Normalize(body),
		Moment:        moment,
		Subject:       p.Subject,
		AIResponse:    outcome.ReplyMessage,
		CreatedAt:     now,
	}
	if err := s.store.AppendReflection(ctx, rec); err != nil {
		// The reply still goes out; tomorrow's memory just has a hole.
		log.Error("failed to save reflection", "error", err)
	}

	if !s.deliver {
		log.Info("local mode: email delivery skipped", "reply", outcome.ReplyMessage)
		return outcome, nil
	}

	html, err := emails.RenderReplyEmail(outcome.ReplyMessage, moment, len(memory)+1)
	if err != nil {
		return outcome, fmt.Errorf("rendering reply for %s: %w", p.From, err)
	}

	if err := s.sender.Send(ctx, p.From, "Re: "+p.Subject, html); err != nil {
		return outcome, fmt.Errorf("sending reply to %s: %w", p.From, err)
	}

	log.Info("reply delivered",
		"used_fallback", outcome.UsedFallback,
		"reply_length", len(outcome.ReplyMessage))

	return outcome, nil
}
