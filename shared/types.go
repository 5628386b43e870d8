package shared

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// ToolEndPoint is a tool offered to a chat model. Handler receives the raw
// JSON arguments chosen by the model.
type ToolEndPoint struct {
	Name    string
	Def     openai.FunctionDefinition
	Handler func(ctx context.Context, args string) (string, error)
}
