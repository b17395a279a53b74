package interpret

import (
	"fmt"
	"strings"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// noMemorySentinel stands in for the digest when the day has no records.
const noMemorySentinel = "No previous records for today."

// basePersona carries the non-negotiable constraints. It is present in
// every composed instruction, independent of moment or flags.
const basePersona = `You are Yehoshua, a stoic challenger. Not a coach. Not a therapist.

Your role: Confront the user with the truth using their OWN WORDS from earlier today.

STRICT RULES:
1. NO politeness (no "Bonjour", "Merci", "Cordialement")
2. NO open-ended soft questions ("Comment te sens-tu ?")
3. ALWAYS use closed, direct questions
4. Maximum 2 short sentences
5. Use "tu" (informal French)
6. If vague → demand precision with ONE sharp question
7. If excuse → confront without mercy using their morning words
8. If clear → validate coldly ("C'est noté.")
`

const middayConfrontation = `
MIDDAY CONFRONTATION INSTRUCTIONS:
This morning, user committed to: %q
Now they respond: %q

Your job: Compare morning intention vs current reality. Are they still aligned?
Use their exact morning words to create cognitive dissonance if they're drifting.

Example: "Ce matin : '%s'. Maintenant : [their current state]. C'est cohérent ?"`

const eveningConfrontation = `
EVENING CONFRONTATION INSTRUCTIONS:
This morning, user said this was the priority: %q
End of day response: %q

Your job: Expose the gap between what they said mattered and what actually happened.
No judgment. Just truth. Use their own words to show the disconnect.

Example: "Ce matin : '%s'. Qu'est-ce qui s'est vraiment passé ?"`

const evasiveAlert = `
ALERT: User is making an excuse. Confront it directly by comparing to their morning intention.`

const vagueAlert = `
ALERT: Response is vague (generic phrases like "beaucoup de choses"). Demand ONE specific thing they accomplished.`

const toneExamples = `
EXAMPLES OF CORRECT TONE:
BAD: "Peux-tu m'en dire plus ?"
GOOD: "Ce matin tu as dit X. Maintenant Y. Pourquoi ?"

BAD: "Je comprends que ce soit difficile."
GOOD: "Difficile ou pas prioritaire ? Pas la même chose."

BAD: "Bravo pour cette clarté !"
GOOD: "C'est noté. On verra demain."

Respond ONLY in French. Maximum 2 sentences.`

// momentGoal states what the user is supposed to be doing at each
// moment; it anchors the generator's reading of the reflection.
func momentGoal(moment domain.Moment) string {
	switch moment {
	case domain.MomentMorning:
		return "User is defining their daily priority"
	case domain.MomentMidday:
		return "User is checking alignment with morning intention"
	default:
		return "User is reflecting on the gap between intention and reality"
	}
}

// MorningIntention extracts the content of the day's first morning
// record. It is absent when the snapshot has none, and deliberately
// absent while the morning exchange itself is being processed.
func MorningIntention(memory domain.MemorySnapshot, moment domain.Moment) string {
	if moment == domain.MomentMorning {
		return ""
	}
	for _, rec := range memory {
		if rec.Moment == domain.MomentMorning {
			return rec.Content
		}
	}
	return ""
}

// memoryDigest renders the day's records as tagged lines in
// chronological order, or the sentinel when there are none.
func memoryDigest(memory domain.MemorySnapshot) string {
	if len(memory) == 0 {
		return noMemorySentinel
	}

	lines := make([]string, 0, len(memory))
	for _, rec := range memory {
		lines = append(lines, fmt.Sprintf("[%s] %s",
			strings.ToUpper(string(rec.Moment)), rec.Content))
	}
	return strings.Join(lines, "\n")
}

// Compose builds the instruction for the generative step: persona and
// memory digest always, confrontation directives when the morning
// intention exists, alert directives per classifier flags. It performs
// no generation itself and treats missing inputs permissively.
func Compose(
	reflection domain.NormalizedReflection,
	moment domain.Moment,
	memory domain.MemorySnapshot,
	flags domain.ClassificationFlags,
) domain.ComposedInstruction {
	intention := MorningIntention(memory, moment)

	var b strings.Builder
	b.WriteString(basePersona)
	b.WriteString("\nCURRENT CONTEXT: ")
	b.WriteString(momentGoal(moment))
	b.WriteString("\n\nTODAY'S MEMORY FROM DATABASE:\n")
	b.WriteString(memoryDigest(memory))
	b.WriteString("\n")

	if intention != "" {
		switch moment {
		case domain.MomentMidday:
			fmt.Fprintf(&b, middayConfrontation, intention, reflection.Text, intention)
		case domain.MomentEvening:
			fmt.Fprintf(&b, eveningConfrontation, intention, reflection.Text, intention)
		}
	}

	if flags.Evasive {
		b.WriteString(evasiveAlert)
	}
	if flags.Vague {
		b.WriteString(vagueAlert)
	}

	b.WriteString("\n")
	b.WriteString(toneExamples)

	return domain.ComposedInstruction{
		System: b.String(),
		User:   reflection.Text,
	}
}
