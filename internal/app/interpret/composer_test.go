package interpret_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irkoudo/yehoshua-focus/internal/app/interpret"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

func morningRecord(content string) domain.ReflectionRecord {
	return domain.ReflectionRecord{
		SenderAddress: "user@example.com",
		Content:       content,
		Moment:        domain.MomentMorning,
		CreatedAt:     time.Date(2026, 3, 3, 8, 5, 0, 0, time.Local),
	}
}

func TestComposeMiddayWithMorningIntention(t *testing.T) {
	memory := domain.MemorySnapshot{morningRecord("Finir le module auth")}
	reflection := domain.NormalizedReflection{Text: "beaucoup de choses", SourceLength: 18}
	flags := interpret.Classify(reflection.Text)
	require.True(t, flags.Vague)

	instr := interpret.Compose(reflection, domain.MomentMidday, memory, flags)

	assert.Contains(t, instr.System, "[MORNING] Finir le module auth")
	assert.Contains(t, instr.System, "MIDDAY CONFRONTATION INSTRUCTIONS")
	assert.Contains(t, instr.System, "Demand ONE specific thing")
	assert.Equal(t, "beaucoup de choses", instr.User)
}

func TestComposeEveningWithMorningIntention(t *testing.T) {
	memory := domain.MemorySnapshot{morningRecord("Finir le module auth")}
	reflection := domain.NormalizedReflection{Text: "J'ai fait autre chose finalement"}

	instr := interpret.Compose(reflection, domain.MomentEvening, memory, domain.ClassificationFlags{})

	assert.Contains(t, instr.System, "EVENING CONFRONTATION INSTRUCTIONS")
	assert.Contains(t, instr.System, "Finir le module auth")
}

func TestComposeEmptyMemoryUsesSentinel(t *testing.T) {
	instr := interpret.Compose(
		domain.NormalizedReflection{Text: "Finir le module auth"},
		domain.MomentMorning,
		nil,
		domain.ClassificationFlags{},
	)

	assert.Contains(t, instr.System, "No previous records for today.")
	assert.NotContains(t, instr.System, "CONFRONTATION INSTRUCTIONS")
}

func TestComposePersonaConstraintsAlwaysPresent(t *testing.T) {
	for _, moment := range []domain.Moment{domain.MomentMorning, domain.MomentMidday, domain.MomentEvening} {
		instr := interpret.Compose(
			domain.NormalizedReflection{Text: "peu importe"},
			moment,
			nil,
			domain.ClassificationFlags{},
		)
		assert.Contains(t, instr.System, "stoic challenger", "moment=%s", moment)
		assert.Contains(t, instr.System, "Maximum 2 short sentences", "moment=%s", moment)
		assert.Contains(t, instr.System, "closed, direct questions", "moment=%s", moment)
	}
}

func TestComposeEvasiveAlert(t *testing.T) {
	instr := interpret.Compose(
		domain.NormalizedReflection{Text: "j'ai eu une urgence"},
		domain.MomentEvening,
		nil,
		domain.ClassificationFlags{Evasive: true},
	)
	assert.Contains(t, instr.System, "User is making an excuse")
}

func TestMorningIntentionAbsentDuringMorning(t *testing.T) {
	memory := domain.MemorySnapshot{morningRecord("Finir le module auth")}
	assert.Equal(t, "", interpret.MorningIntention(memory, domain.MomentMorning))
	assert.Equal(t, "Finir le module auth", interpret.MorningIntention(memory, domain.MomentMidday))
}

func TestMorningIntentionFirstRecordWins(t *testing.T) {
	// Duplicate same-moment records accumulate in the store; the
	// composer reads the first one of the day.
	memory := domain.MemorySnapshot{
		morningRecord("Finir le module auth"),
		morningRecord("En fait, autre chose"),
	}
	assert.Equal(t, "Finir le module auth", interpret.MorningIntention(memory, domain.MomentEvening))
}

func TestComposeMemoryDigestPreservesOrder(t *testing.T) {
	memory := domain.MemorySnapshot{
		morningRecord("Finir le module auth"),
		{Content: "toujours dessus", Moment: domain.MomentMidday},
	}
	instr := interpret.Compose(
		domain.NormalizedReflection{Text: "c'est fait"},
		domain.MomentEvening,
		memory,
		domain.ClassificationFlags{},
	)

	morningIdx := strings.Index(instr.System, "[MORNING] Finir le module auth")
	middayIdx := strings.Index(instr.System, "[MIDDAY] toujours dessus")
	require.GreaterOrEqual(t, morningIdx, 0)
	require.GreaterOrEqual(t, middayIdx, 0)
	assert.Less(t, morningIdx, middayIdx)
}
