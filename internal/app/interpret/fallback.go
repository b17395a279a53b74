package interpret

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// silenceResponse answers an empty reflection.
const silenceResponse = "Silence. C'est une réponse aussi. Mais à quelle question ?"

// Response pools for the memoryless cases. The contract is pool
// membership, not which member gets picked.
var (
	vagueResponses = []string{
		"Trop flou. Quelle est LA chose en une phrase ?",
		"Précise. Je ne peux pas challenger du brouillard.",
		`"Beaucoup de choses" = rien de précis. Quoi exactement ?`,
	}

	evasiveResponses = []string{
		"Des urgences. Ça fait combien de fois cette semaine ?",
		"Pas eu le temps ou pas choisi de faire le temps ?",
		"Les urgences révèlent tes priorités réelles. C'est quoi ?",
	}

	clearResponses = []string{
		"C'est noté. On verra ce soir.",
		"Ok. Mais si tu dévies à midi, assume-le.",
		"Bien. Une seule chose. Ne l'oublie pas.",
	}
)

// FallbackResponder produces the deterministic reply used when
// generation is unavailable or rejected. The random source is injected
// so tests can pin the selection.
type FallbackResponder struct {
	intn func(n int) int
}

// NewFallbackResponder builds a responder on the default random source.
func NewFallbackResponder() *FallbackResponder {
	return &FallbackResponder{intn: rand.Intn}
}

// NewFallbackResponderWithSource builds a responder drawing pool
// selections from intn, which must return a value in [0, n).
func NewFallbackResponderWithSource(intn func(n int) int) *FallbackResponder {
	return &FallbackResponder{intn: intn}
}

func (f *FallbackResponder) pick(pool []string) string {
	return pool[f.intn(len(pool))]
}

// Respond is the last line of defense: it always returns non-empty
// text. Cases are mutually exclusive and checked in precedence order.
func (f *FallbackResponder) Respond(
	text string,
	flags domain.ClassificationFlags,
	morningIntention string,
) string {
	if strings.TrimSpace(text) == "" {
		return silenceResponse
	}

	if flags.Vague && morningIntention != "" {
		return fmt.Sprintf("Ce matin : %q. \"Beaucoup de choses\" n'est pas une réponse. Quoi exactement ?", morningIntention)
	}
	if flags.Vague {
		return f.pick(vagueResponses)
	}

	if flags.Evasive && morningIntention != "" {
		return fmt.Sprintf("Ce matin : %q. Maintenant : des excuses. C'est la vérité ?", morningIntention)
	}
	if flags.Evasive {
		return f.pick(evasiveResponses)
	}

	return f.pick(clearResponses)
}
