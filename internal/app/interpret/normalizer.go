package interpret

import "strings"

// quoteMarkers are boundaries of quoted history or signatures inside an
// email body. Order does not matter for the result: the leftmost
// occurrence of any marker wins.
var quoteMarkers = []string{
	"\nLe ", // French reply opener: "Le [date], X a écrit :"
	"\nOn ", // English reply opener: "On [date], X wrote:"
	"---",
	"________________________________",
	"Sent from my iPhone",
	"Envoyé de mon iPhone",
	"Get Outlook for",
	"\n>", // quoted lines
	"a écrit :",
	"wrote:",
}

// Normalize strips quoted-reply and signature noise from a raw email
// body: the text is truncated at the earliest occurrence of any marker,
// then trimmed. Empty input yields an empty string; it never fails.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	cut := len(raw)
	for _, m := range quoteMarkers {
		if i := strings.Index(raw, m); i >= 0 && i < cut {
			cut = i
		}
	}

	return strings.TrimSpace(raw[:cut])
}
