package generativeAI

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-assistant/config"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.5
)

var _ Generator = (*AIClient)(nil)

// Generator is the external generative-text collaborator contract. The
// response is forced into a single JSON object.
type Generator interface {
	GenerateStructuredContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AIClient wraps the Gemini client with its credentials held as constructor
// state so tests can substitute fakes without touching process-wide state.
type AIClient struct {
	client *genai.Client
	model  string
}

// NewAIClient builds the Gemini client. A missing API key surfaces eagerly as
// a configuration error rather than on first call.
func NewAIClient(ctx context.Context, cfg *config.Config) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if cfg.Providers.Gemini.APIKey == "" {
		err := fmt.Errorf("gemini API key: %w", types.ErrConfiguration)
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}

	model := cfg.Providers.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Providers.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateStructuredContent sends a prompt constrained by a system
// instruction and a forced application/json response mode, and returns the
// raw response text.
func (ai *AIClient) GenerateStructuredContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateStructuredContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(userPrompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](defaultTemperature),
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(userPrompt), genConfig)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("generate content: %w: %w", types.ErrUpstreamProvider, err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}
