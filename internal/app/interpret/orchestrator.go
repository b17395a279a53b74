package interpret

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
	"github.com/irkoudo/yehoshua-focus/internal/observability"
)

// ToneGate is the acceptance check applied to generated text before it
// may reach the user. Ceiling and denylist are data, not control flow.
type ToneGate struct {
	// MaxLength is the rune ceiling on a generated reply.
	MaxLength int

	// Denylist holds softness markers (greeting, gratitude, praise
	// tokens) that disqualify a reply outright.
	Denylist []string
}

// DefaultToneGate reflects the persona's hard limits: two short
// sentences fit well under 200 runes, and the listed tokens are exactly
// what the persona forbids.
func DefaultToneGate() ToneGate {
	return ToneGate{
		MaxLength: 200,
		Denylist:  []string{"Merci", "Bravo", "Bonjour", "Cordialement"},
	}
}

// Reject returns a non-empty reason when the reply must not be sent.
func (g ToneGate) Reject(reply string) string {
	if strings.TrimSpace(reply) == "" {
		return "empty reply"
	}
	if utf8.RuneCountInString(reply) > g.MaxLength {
		return "reply over length ceiling"
	}
	for _, token := range g.Denylist {
		if strings.Contains(reply, token) {
			return "soft token: " + token
		}
	}
	return ""
}

// Orchestrator sequences the pipeline: normalize, classify, compose,
// generate, tone-gate, fall back. Its contract is total — any failure
// of the generation collaborator is absorbed into the fallback path.
type Orchestrator struct {
	gate     ToneGate
	fallback *FallbackResponder
}

func NewOrchestrator(gate ToneGate, fallback *FallbackResponder) *Orchestrator {
	return &Orchestrator{gate: gate, fallback: fallback}
}

// NewDefaultOrchestrator wires the default gate and responder.
func NewDefaultOrchestrator() *Orchestrator {
	return NewOrchestrator(DefaultToneGate(), NewFallbackResponder())
}

// Process runs one inbound message through the pipeline and always
// returns an outcome record. The memory snapshot is read-only input;
// persisting the resulting record is the caller's job.
func (o *Orchestrator) Process(
	ctx context.Context,
	raw domain.RawInboundMessage,
	memory domain.MemorySnapshot,
	gen domain.Generator,
) domain.OutcomeRecord {
	log := observability.LoggerFromContext(ctx).With(
		"sender", raw.SenderAddress,
		"message_id", raw.MessageID,
	)

	reflection := domain.NormalizedReflection{
		Text:         Normalize(raw.Body),
		SourceLength: len(raw.Body),
	}
	moment := MomentAt(raw.ReceivedAt)
	flags := Classify(reflection.Text)
	intention := MorningIntention(memory, moment)

	log.Info("reflection interpreted",
		"moment", moment,
		"clean_length", len(reflection.Text),
		"vague", flags.Vague,
		"evasive", flags.Evasive,
		"memory_count", len(memory))

	outcome := domain.OutcomeRecord{
		Processed:   true,
		MemoryCount: len(memory),
		Flags:       flags,
	}

	// An empty reflection has nothing to confront; answer it directly.
	if strings.TrimSpace(reflection.Text) == "" {
		outcome.ReplyMessage = o.fallback.Respond(reflection.Text, flags, intention)
		outcome.UsedFallback = true
		return outcome
	}

	instr := Compose(reflection, moment, memory, flags)

	reply, err := gen.Generate(ctx, instr)
	if err != nil {
		log.Warn("generation failed, using fallback", "error", err)
		outcome.ReplyMessage = o.fallback.Respond(reflection.Text, flags, intention)
		outcome.UsedFallback = true
		return outcome
	}

	reply = strings.TrimSpace(reply)
	if reason := o.gate.Reject(reply); reason != "" {
		log.Warn("generated reply rejected, using fallback", "reason", reason)
		outcome.ReplyMessage = o.fallback.Respond(reflection.Text, flags, intention)
		outcome.UsedFallback = true
		return outcome
	}

	outcome.ReplyMessage = reply
	return outcome
}
