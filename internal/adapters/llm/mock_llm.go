package llm

import (
	"context"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// MockGenerator is a cold canned generator for local mode. Its reply
// always clears the tone gate.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Generate(ctx context.Context, instr domain.ComposedInstruction) (string, error) {
	return "C'est noté. On verra ce soir.", nil
}
