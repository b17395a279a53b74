package interpret

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// minReflectionLength is the rune count under which a reflection is
// vague no matter what it says.
const minReflectionLength = 15

type flagKind int

const (
	flagVague flagKind = iota
	flagEvasive
)

// responseRules is the declarative classification table. Each flag is an
// OR across its patterns, so evaluation order never changes the result.
// Patterns are French because the bot speaks French; extending the table
// is how the classifier gets localized.
var responseRules = []struct {
	re   *regexp.Regexp
	flag flagKind
}{
	// Generic, non-committal answers.
	{regexp.MustCompile(`(?i)^(oui|non|ok|bien|ça va)$`), flagVague},
	{regexp.MustCompile(`(?i)je ne sais pas`), flagVague},
	{regexp.MustCompile(`(?i)un peu`), flagVague},
	{regexp.MustCompile(`(?i)beaucoup de choses`), flagVague},
	{regexp.MustCompile(`(?i)j'ai accompli`), flagVague},

	// Excuses, deferral, hedging.
	{regexp.MustCompile(`(?i)j'ai eu`), flagEvasive},
	{regexp.MustCompile(`(?i)urgence`), flagEvasive},
	{regexp.MustCompile(`(?i)pas eu le temps`), flagEvasive},
	{regexp.MustCompile(`(?i)compliqué`), flagEvasive},
	{regexp.MustCompile(`(?i)difficile`), flagEvasive},
	{regexp.MustCompile(`(?i)je vais`), flagEvasive},
	{regexp.MustCompile(`(?i)demain`), flagEvasive},
	{regexp.MustCompile(`(?i)bientôt`), flagEvasive},
	{regexp.MustCompile(`(?i)essayer`), flagEvasive},
	{regexp.MustCompile(`(?i)peut-être`), flagEvasive},
}

// Classify labels normalized text as vague and/or evasive. The flags
// are independent; both can be true. Stateless, recomputed every call.
func Classify(text string) domain.ClassificationFlags {
	clean := strings.TrimSpace(text)

	var flags domain.ClassificationFlags
	if utf8.RuneCountInString(clean) < minReflectionLength {
		flags.Vague = true
	}

	for _, rule := range responseRules {
		if !rule.re.MatchString(clean) {
			continue
		}
		switch rule.flag {
		case flagVague:
			flags.Vague = true
		case flagEvasive:
			flags.Evasive = true
		}
	}

	return flags
}
