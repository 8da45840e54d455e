package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/relationship-game/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/narrate_line.txt
var narrateLinePrompt string

var narrateLineTmpl = template.Must(template.New("narrate_line").Parse(narrateLinePrompt))

// GeminiNarrator rephrases static lines with Gemini. Any failure falls back
// to the static text.
type GeminiNarrator struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback Narrator
	logger   *slog.Logger
}

func NewGeminiNarrator(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiNarrator{
		client:   client,
		model:    client.GenerativeModel(modelName),
		fallback: StaticNarrator{},
		logger:   logger,
	}, nil
}

func (g *GeminiNarrator) Close() {
	g.client.Close()
}

func (g *GeminiNarrator) Line(ctx context.Context, key LineKey, c *models.Character) string {
	base := g.fallback.Line(ctx, key, c)

	var buf bytes.Buffer
	data := struct {
		Name        string
		Personality models.Personality
		Mood        models.Mood
		Event       string
	}{c.Name, c.Personality, c.Mood, base}
	if err := narrateLineTmpl.Execute(&buf, data); err != nil {
		g.logger.Warn("narration prompt failed", "key", key, "err", err)
		return base
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		g.logger.Warn("gemini narration failed", "key", key, "err", err)
		return base
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		g.logger.Warn("gemini returned no content", "key", key)
		return base
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		g.logger.Warn("unexpected gemini response type", "key", key)
		return base
	}
	line := strings.TrimSpace(string(text))
	if line == "" {
		return base
	}
	return line
}
