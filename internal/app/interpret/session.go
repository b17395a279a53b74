package interpret

import (
	"time"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// Half-open hour bands partitioning the day. Morning is [06,12),
// midday [12,18); everything else, including overnight, is evening.
const (
	morningStartHour = 6
	middayStartHour  = 12
	eveningStartHour = 18
)

// MomentAt maps a timestamp's local hour to a Moment. Total: every hour
// of the day classifies to exactly one moment.
func MomentAt(at time.Time) domain.Moment {
	hour := at.Hour()

	switch {
	case hour >= morningStartHour && hour < middayStartHour:
		return domain.MomentMorning
	case hour >= middayStartHour && hour < eveningStartHour:
		return domain.MomentMidday
	default:
		return domain.MomentEvening
	}
}
