package extract

import (
	"context"
	"fmt"
	"strings"

	"invoice-reconciler/feature/document/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Generator is the model-call boundary of the assisted strategy. It allows
// tests to substitute a canned generator for the real Gemini client.
type Generator interface {
	// Generate sends the prompt, optionally accompanied by raw document
	// bytes tagged with a media type, and returns the model's text.
	Generate(ctx context.Context, prompt string, document []byte, mimeType string) (string, error)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("assisted extraction requires an API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: cfg.Model}, nil
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, document []byte, mimeType string) (string, error) {
	model := g.client.GenerativeModel(g.model)

	parts := []genai.Part{}
	if len(document) > 0 {
		parts = append(parts, genai.Blob{MIMEType: mimeType, Data: document})
	}
	parts = append(parts, genai.Text(prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("gemini candidate has no content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(fmt.Sprintf("%v", part))
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Assisted extracts records by delegating to a generative model and
// validating its response.
type Assisted struct {
	gen    Generator
	logger *zap.Logger
}

// NewAssisted creates the assisted extractor.
func NewAssisted(gen Generator, logger *zap.Logger) *Assisted {
	return &Assisted{gen: gen, logger: logger}
}

// ExtractText asks the model to structure already-extracted document text.
func (a *Assisted) ExtractText(ctx context.Context, text string) ([]models.ProductRecord, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ProductRecord{}, nil
	}

	prompt := extractionPrompt + "\n\nDocument text:\n" + text
	raw, err := a.gen.Generate(ctx, prompt, nil, "")
	if err != nil {
		return nil, err
	}
	return a.validate(raw)
}

// ExtractDocument sends the raw document bytes to the model, for documents
// whose embedded text layer is unusable.
func (a *Assisted) ExtractDocument(ctx context.Context, document []byte, mimeType string) ([]models.ProductRecord, error) {
	if len(document) == 0 {
		return []models.ProductRecord{}, nil
	}

	raw, err := a.gen.Generate(ctx, extractionPrompt, document, mimeType)
	if err != nil {
		return nil, err
	}
	return a.validate(raw)
}

func (a *Assisted) validate(raw string) ([]models.ProductRecord, error) {
	records, err := ParseResponse(raw)
	if err != nil {
		a.logger.Warn("Model response rejected", zap.Error(err))
		return nil, err
	}
	a.logger.Debug("Model response accepted", zap.Int("records", len(records)))
	return records, nil
}
