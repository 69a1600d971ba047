package output

import (
	"context"

	"alfred/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Temperature float32
}

type ChatResponse struct {
	Message entity.Message
}
