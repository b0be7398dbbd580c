// Package insight is the boundary to the external reasoning service that
// writes dashboard summaries and chat replies. Callers must treat every
// failure here as non-fatal and fall back to static text.
package insight

import (
	"ProjectWafeer/pkg/response"
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	ErrProviderUnavailable = response.NewError(503, "insight provider unavailable")
	ErrProviderError       = response.NewError(503, "insight provider error")
)

type Message struct {
	Role string
	Text string
}

type IInsight interface {
	Summarize(ctx context.Context, prompt string) (string, error)
	Respond(ctx context.Context, systemInstruction string, history []Message, message string) (string, error)
}

type geminiProvider struct {
	modelName string
	client    *genai.Client
}

func New() (IInsight, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrProviderUnavailable
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Join(ErrProviderUnavailable, err)
	}

	return &geminiProvider{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Join(ErrProviderError, err)
	}

	return extractText(res)
}

func (g *geminiProvider) Respond(ctx context.Context, systemInstruction string, history []Message, message string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	chat := model.StartChat()
	for _, turn := range history {
		role := turn.Role
		if role != "user" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	res, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", errors.Join(ErrProviderError, err)
	}

	return extractText(res)
}

func (g *geminiProvider) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func extractText(res *genai.GenerateContentResponse) (string, error) {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", ErrProviderError
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrProviderError
	}

	return string(text), nil
}
