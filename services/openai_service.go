package services

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the match service uses.
// *openai.Client satisfies it; tests substitute doubles.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// InitializeOpenAIClient initializes the chat-completion client
func InitializeOpenAIClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
