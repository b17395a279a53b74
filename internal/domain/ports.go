package domain

import "context"

// Generator defines how the core hands a composed instruction to a
// generative model. Implementations own their timeout; they may fail,
// time out, or return degenerate output — the tone gate deals with it.
type Generator interface {
	Generate(ctx context.Context, instr ComposedInstruction) (string, error)
}

// ReflectionStore defines persistence of the per-user daily log.
type ReflectionStore interface {
	// QueryToday returns the sender's records for the calendar day of
	// `day`, ascending by creation time. An empty snapshot is not an error.
	QueryToday(ctx context.Context, sender string, day Timestamp) (MemorySnapshot, error)

	AppendReflection(ctx context.Context, rec *ReflectionRecord) error
}

// InboundContent is the full content of an inbound message. The webhook
// delivers metadata only; the body has to be fetched separately.
type InboundContent struct {
	Text string
	HTML string
}

// MailFetcher retrieves the full content of an inbound message.
type MailFetcher interface {
	FetchBody(ctx context.Context, id MessageID) (InboundContent, error)
}

// MailSender delivers an outbound email.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
