package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.5-flash"

// systemPreamble frames every enhancement request.
const systemPreamble = "You are a professional resume writer. Your task is to enhance resume content to be more impactful, professional, and well-written."

// Enhancer rewrites the text of one resume section.
type Enhancer interface {
	// EnhanceSection rewrites inputText for the named section. Identical
	// inputs are not guaranteed identical outputs: each call carries a
	// uniqueness token and the provider samples with non-zero temperature.
	EnhanceSection(ctx context.Context, section, inputText string) (string, error)
	// Configured reports whether the gateway can reach the provider at all.
	Configured() bool
	// Close releases provider resources.
	Close() error
}

// New builds the gateway. When the credential is absent or malformed it
// returns the unavailable stand-in instead of an error: the process keeps
// running and every enhancement call fails gracefully with ErrUnavailable.
func New(ctx context.Context, cfg Config) (Enhancer, error) {
	if !cfg.Configured() {
		return unavailableEnhancer{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEnhancer{client: client, model: defaultModel}, nil
}

// GeminiEnhancer implements Enhancer against Google Gemini.
type GeminiEnhancer struct {
	client *genai.Client
	model  string
}

var _ Enhancer = (*GeminiEnhancer)(nil)

// Configured is always true for a live Gemini enhancer; availability was
// established when the gateway was built.
func (g *GeminiEnhancer) Configured() bool { return true }

// EnhanceSection rewrites one section's text via the provider.
func (g *GeminiEnhancer) EnhanceSection(ctx context.Context, section, inputText string) (string, error) {
	prompt, maxTokens := sectionPrompt(section, inputText)

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPreamble)}}
	// Intentionally non-deterministic: rewrites should read fresh, not canned.
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Section: section, Err: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return "", &ProviderError{Section: section, Err: err}
	}
	return strings.TrimSpace(text), nil
}

// Close releases the underlying client.
func (g *GeminiEnhancer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// sectionPrompt builds the instruction for a section and its output-length
// budget. The appended request token keeps repeated calls from collapsing
// into identical completions.
func sectionPrompt(section, inputText string) (string, int32) {
	var instruction string
	var maxTokens int32

	switch section {
	case "summary":
		instruction = "Enhance the following professional summary to be more impactful and well-written"
		maxTokens = 300
	case "experience", "accomplishment":
		instruction = "Enhance the following work experience description to be more impactful, using strong action verbs and quantifiable achievements"
		maxTokens = 300
	case "education":
		instruction = "Enhance the following education description to be more impactful and relevant"
		maxTokens = 200
	default:
		instruction = fmt.Sprintf("Enhance the following %s section for a professional resume. Make it well-written, impactful, and unique", section)
		maxTokens = 500
	}

	return fmt.Sprintf("%s: %s. Request token: %s", instruction, inputText, uuid.NewString()), maxTokens
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
