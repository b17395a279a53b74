// Package dispatch sends the three daily cognitive prompts. The
// schedule is fixed: 08:00, 12:00 and 19:00 local time.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
	"github.com/irkoudo/yehoshua-focus/internal/emails"
	"github.com/irkoudo/yehoshua-focus/internal/observability"
)

// sendHours are the daily send times, ascending.
var sendHours = []int{8, 12, 19}

// NextRun returns the first scheduled send strictly after `after`,
// in `after`'s location.
func NextRun(after time.Time) time.Time {
	year, month, day := after.Date()
	for _, hour := range sendHours {
		candidate := time.Date(year, month, day, hour, 0, 0, 0, after.Location())
		if candidate.After(after) {
			return candidate
		}
	}
	// Past today's last slot: first slot tomorrow.
	return time.Date(year, month, day+1, sendHours[0], 0, 0, 0, after.Location())
}

// Dispatcher renders and delivers the scheduled prompt emails.
type Dispatcher struct {
	sender   domain.MailSender
	receiver string
	now      func() time.Time
}

func NewDispatcher(sender domain.MailSender, receiver string) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		receiver: receiver,
		now:      time.Now,
	}
}

// SendPrompt delivers the prompt matching the given send time.
func (d *Dispatcher) SendPrompt(ctx context.Context, at time.Time) error {
	if d.receiver == "" {
		return fmt.Errorf("receiver email is not configured")
	}

	session := emails.SessionFor(at.Hour())

	html, err := emails.RenderFocusEmail(session)
	if err != nil {
		return err
	}

	subject := "[Yehoshua Focus] " + session.Title
	if err := d.sender.Send(ctx, d.receiver, subject, html); err != nil {
		return fmt.Errorf("sending %s prompt: %w", session.Moment, err)
	}

	observability.LoggerFromContext(ctx).Info("prompt sent",
		"moment", session.Moment,
		"title", session.Title,
		"at", at)
	return nil
}

// Run loops forever, sending each scheduled prompt as its time comes,
// until the context is cancelled. A failed send is logged and the loop
// moves to the next slot; there is no retry within a slot.
func (d *Dispatcher) Run(ctx context.Context) error {
	log := observability.LoggerFromContext(ctx)

	for {
		next := NextRun(d.now())
		log.Info("next prompt scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if err := d.SendPrompt(ctx, next); err != nil {
			log.Error("prompt delivery failed", "error", err, "at", next)
		}
	}
}
