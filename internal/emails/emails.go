// Package emails renders the two outbound email bodies: the scheduled
// focus prompt and the reply carrying the confrontational response.
package emails

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// SessionData is the cognitive prompt for one moment of the day.
type SessionData struct {
	Title   string
	Prompt  string
	Subtext string
	Moment  domain.Moment
}

// SessionFor picks the session prompt for an hour of the day. The send
// hours are 08, 12 and 19, but the selection tolerates drift: any
// morning-band hour gets L'Intention, and so on.
func SessionFor(hour int) SessionData {
	if hour >= 6 && hour < 12 {
		return SessionData{
			Title:   "L'Intention",
			Prompt:  "Quelle est l'unique chose qui mérite ton attention aujourd'hui ? Pourquoi ?",
			Subtext: "Définis ton critère de succès pour ce soir.",
			Moment:  domain.MomentMorning,
		}
	}

	if hour >= 18 || hour < 6 {
		return SessionData{
			Title:   "Le Bilan",
			Prompt:  "Qu'as-tu appris aujourd'hui ? Qu'est-ce que tu devrais arrêter de répéter ?",
			Subtext: "Convertis l'effort du jour en sagesse pour demain.",
			Moment:  domain.MomentEvening,
		}
	}

	return SessionData{
		Title:   "La Vérité",
		Prompt:  "Es-tu toujours aligné avec ton intention du matin ? Quel bruit as-tu laissé entrer ?",
		Subtext: "Identifie la distraction. Corrige la trajectoire maintenant.",
		Moment:  domain.MomentMidday,
	}
}

// MomentBadge is the label shown at the bottom of the focus email.
func (s SessionData) MomentBadge() string {
	switch s.Moment {
	case domain.MomentMorning:
		return "☀️ Matin"
	case domain.MomentMidday:
		return "🎯 Midi"
	default:
		return "🌙 Soir"
	}
}

// RenderFocusEmail renders the scheduled prompt email.
func RenderFocusEmail(session SessionData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "focus.html.tmpl", session); err != nil {
		return "", fmt.Errorf("rendering focus email: %w", err)
	}
	return buf.String(), nil
}

type replyData struct {
	ReplyMessage string
	MomentUpper  string
	MemoryCount  int
	MemoryLabel  string
}

// RenderReplyEmail renders the reply email around a confrontational
// response. memoryCount shows the day's reflection tally; zero hides it.
func RenderReplyEmail(replyMessage string, moment domain.Moment, memoryCount int) (string, error) {
	label := fmt.Sprintf("Mémoire du jour : %d réflexion", memoryCount)
	if memoryCount > 1 {
		label += "s"
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "reply.html.tmpl", replyData{
		ReplyMessage: replyMessage,
		MomentUpper:  strings.ToUpper(string(moment)),
		MemoryCount:  memoryCount,
		MemoryLabel:  label,
	})
	if err != nil {
		return "", fmt.Errorf("rendering reply email: %w", err)
	}
	return buf.String(), nil
}
