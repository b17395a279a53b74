package domain

import "time"

type MessageID string

// Moment is one of the three fixed times of day the bot engages the user.
type Moment string

const (
	MomentMorning Moment = "morning" // user defines the daily priority
	MomentMidday  Moment = "midday"  // user checks alignment with the morning intention
	MomentEvening Moment = "evening" // user faces the gap between intention and reality
)

type Timestamp = time.Time

// RawInboundMessage is the inbound email as delivered by the mail receiver.
type RawInboundMessage struct {
	SenderAddress string
	Subject       string
	Body          string
	ReceivedAt    Timestamp
	MessageID     MessageID
}

// NormalizedReflection is the user's reply after quote/signature stripping.
// Ephemeral; never persisted on its own.
type NormalizedReflection struct {
	Text         string
	SourceLength int
}

// ClassificationFlags labels a normalized reflection. Both flags can be
// true at once; they are recomputed on every invocation.
type ClassificationFlags struct {
	Vague   bool
	Evasive bool
}

// ReflectionRecord is one processed inbound message, appended to the
// per-user, per-day log owned by the ReflectionStore.
type ReflectionRecord struct {
	ID            string    `json:"id"`
	SenderAddress string    `json:"user_email"`
	Content       string    `json:"content"`
	Moment        Moment    `json:"moment"`
	Subject       string    `json:"subject"`
	AIResponse    string    `json:"ai_response"`
	CreatedAt     Timestamp `json:"created_at"`
}

// MemorySnapshot is one sender's same-day records, ascending by creation
// time. Read-only input to the pipeline; fetched once per invocation.
type MemorySnapshot []ReflectionRecord

// ComposedInstruction is the structured text handed to the generator:
// a system instruction plus the conversational turn. Built fresh per
// invocation, never persisted.
type ComposedInstruction struct {
	System string
	User   string
}

// OutcomeRecord is the terminal value the orchestrator returns to its
// host, which owns persistence and delivery side effects.
type OutcomeRecord struct {
	Processed    bool
	ReplyMessage string
	UsedFallback bool
	MemoryCount  int
	Flags        ClassificationFlags
}
