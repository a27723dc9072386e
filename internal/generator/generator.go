// Package generator produces methodology text from the prompt catalog via
// OpenAI chat completions, with an offline fallback when the API fails.
package generator

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/uxcanvas/promptflow/internal/templates"
)

// Request identifies what to generate. Tool selects the catalog template;
// the remaining fields fill its placeholders.
type Request struct {
	Tool      string
	Framework string
	Stage     string
	Topic     string
}

// Result is the generated text plus provenance. Fallback is true when the
// API call failed and the rendered template itself was returned instead.
type Result struct {
	Text     string
	Template string
	Fallback bool
}

type Generator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func New(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *Generator {
	return &Generator{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Generate renders the template for the requested tool and asks the model
// to expand it. API failures degrade to the rendered template text so
// callers always get analyzable content.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	tpl := templates.Lookup(req.Tool)
	rendered := templates.Render(tpl, g.vars(req))

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: tpl.System,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: rendered,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get completion, using template fallback",
			zap.Error(err),
			zap.String("tool", req.Tool),
			zap.String("model", g.model))
		return Result{Text: rendered, Template: tpl.Key, Fallback: true}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		g.logger.Warn("Empty completion, using template fallback",
			zap.String("tool", req.Tool))
		return Result{Text: rendered, Template: tpl.Key, Fallback: true}
	}

	return Result{Text: text, Template: tpl.Key}
}

func (g *Generator) vars(req Request) map[string]string {
	vars := map[string]string{
		"tool":      req.Tool,
		"framework": req.Framework,
		"stage":     req.Stage,
		"topic":     req.Topic,
	}
	// keep placeholders readable when the caller gave no context
	for name, value := range vars {
		if value == "" {
			vars[name] = "your project"
		}
	}
	return vars
}
