package interpret_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irkoudo/yehoshua-focus/internal/app/interpret"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// generatorFunc adapts a function to domain.Generator for tests.
type generatorFunc func(ctx context.Context, instr domain.ComposedInstruction) (string, error)

func (f generatorFunc) Generate(ctx context.Context, instr domain.ComposedInstruction) (string, error) {
	return f(ctx, instr)
}

func inboundAt(hour int, body string) domain.RawInboundMessage {
	return domain.RawInboundMessage{
		SenderAddress: "user@example.com",
		Subject:       "Re: [Yehoshua Focus] La Vérité",
		Body:          body,
		ReceivedAt:    time.Date(2026, 3, 3, hour, 15, 0, 0, time.Local),
		MessageID:     "msg-1",
	}
}

func TestProcessGeneratorErrorFallsBack(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		return "", errors.New("model unavailable")
	})

	out := o.Process(context.Background(), inboundAt(13, "beaucoup de choses"), nil, gen)

	assert.True(t, out.Processed)
	assert.True(t, out.UsedFallback)
	assert.NotEmpty(t, out.ReplyMessage)
}

func TestProcessOverlongReplyFallsBack(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		return strings.Repeat("x", 250), nil
	})

	out := o.Process(context.Background(), inboundAt(13, "Finir le module auth avant 18h"), nil, gen)

	assert.True(t, out.UsedFallback)
	assert.NotEmpty(t, out.ReplyMessage)
}

func TestProcessSoftReplyFallsBack(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		return "Bravo pour cette clarté !", nil
	})

	out := o.Process(context.Background(), inboundAt(13, "Finir le module auth avant 18h"), nil, gen)

	assert.True(t, out.UsedFallback)
	assert.NotContains(t, out.ReplyMessage, "Bravo")
}

func TestProcessAcceptsHardReply(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		return "C'est noté. On verra ce soir.", nil
	})

	out := o.Process(context.Background(), inboundAt(13, "Finir le module auth avant 18h"), nil, gen)

	assert.False(t, out.UsedFallback)
	assert.Equal(t, "C'est noté. On verra ce soir.", out.ReplyMessage)
}

func TestProcessEmptyBodySkipsGeneration(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	called := false
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		called = true
		return "whatever", nil
	})

	out := o.Process(context.Background(), inboundAt(13, "   \n"), nil, gen)

	assert.False(t, called)
	assert.True(t, out.UsedFallback)
	assert.Contains(t, out.ReplyMessage, "Silence")
}

func TestProcessFallbackQuotesMorningIntention(t *testing.T) {
	// Midday, one morning record, vague reflection, generator down: the
	// deterministic reply must carry the morning words verbatim.
	memory := domain.MemorySnapshot{{
		SenderAddress: "user@example.com",
		Content:       "Finir le module auth",
		Moment:        domain.MomentMorning,
		CreatedAt:     time.Date(2026, 3, 3, 8, 0, 0, 0, time.Local),
	}}
	gen := generatorFunc(func(context.Context, domain.ComposedInstruction) (string, error) {
		return "", errors.New("timeout")
	})

	o := interpret.NewDefaultOrchestrator()
	out := o.Process(context.Background(), inboundAt(13, "beaucoup de choses"), memory, gen)

	require.True(t, out.UsedFallback)
	assert.Contains(t, out.ReplyMessage, "Finir le module auth")
	assert.Equal(t, 1, out.MemoryCount)
	assert.True(t, out.Flags.Vague)
}

func TestProcessReportsClassification(t *testing.T) {
	o := interpret.NewDefaultOrchestrator()
	gen := generatorFunc(func(_ context.Context, instr domain.ComposedInstruction) (string, error) {
		// The composer feeds the normalized text, not the raw body.
		assert.Equal(t, "J'ai eu une urgence, je verrai demain", instr.User)
		return "Urgence ou fuite ? Tranche.", nil
	})

	raw := inboundAt(19, "J'ai eu une urgence, je verrai demain\n\nLe 3 mars, Yehoshua a écrit :\n> La Vérité")
	out := o.Process(context.Background(), raw, nil, gen)

	assert.True(t, out.Flags.Evasive)
	assert.False(t, out.Flags.Vague)
	assert.False(t, out.UsedFallback)
}

func TestToneGateReasons(t *testing.T) {
	gate := interpret.DefaultToneGate()

	assert.NotEmpty(t, gate.Reject(""))
	assert.NotEmpty(t, gate.Reject(strings.Repeat("a", 201)))
	assert.NotEmpty(t, gate.Reject("Merci pour ta réponse."))
	assert.Empty(t, gate.Reject("C'est noté."))
}
