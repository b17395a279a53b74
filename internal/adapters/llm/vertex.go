package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// VertexClient implements domain.Generator on Vertex AI (Gemini), for
// deployments without a Groq key.
type VertexClient struct {
	client    *genai.Client
	modelName string
}

func NewVertexClient(ctx context.Context, projectID, location, modelName string) (*VertexClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("project and location are required for the vertex backend")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Generate implements domain.Generator using Vertex AI.
func (v *VertexClient) Generate(ctx context.Context, instr domain.ComposedInstruction) (string, error) {
	temp := float32(0.7)
	outputTokens := int32(100)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instr.System, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   outputTokens,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(instr.User, genai.RoleUser),
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}

	return text, nil
}
