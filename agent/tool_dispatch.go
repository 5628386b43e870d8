package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"hello-mcp/shared"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ToolDispatcher routes the model's tool calls to registered endpoints.
type ToolDispatcher struct {
	toolMap map[string]shared.ToolEndPoint
}

func NewToolDispatcher() *ToolDispatcher {
	return &ToolDispatcher{
		toolMap: map[string]shared.ToolEndPoint{},
	}
}

func (td *ToolDispatcher) RegisterToolEndpoint(endpoints ...shared.ToolEndPoint) error {
	err := []error{}
	for _, endpoint := range endpoints {
		_, exist := td.toolMap[endpoint.Name]
		if exist {
			err = append(err, fmt.Errorf("tool with name %s already exist", endpoint.Name))
		} else {
			td.toolMap[endpoint.Name] = endpoint
		}
	}
	return errors.Join(err...)
}

// Run executes one tool call and wraps the outcome in a tool message.
// Failures are written into the message so the model can react to them.
func (td *ToolDispatcher) Run(ctx context.Context, toolCall openai.ToolCall) openai.ChatCompletionMessage {
	res := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		ToolCallID: toolCall.ID,
		Name:       toolCall.Function.Name,
	}
	endpoint, exist := td.toolMap[toolCall.Function.Name]
	if !exist {
		res.Content = fmt.Sprintf("Run tool call failed, can not find tool with name %s", toolCall.Function.Name)
		log.Warn().Str("tool", toolCall.Function.Name).Msg("model called an unknown tool")
		return res
	}
	content, err := endpoint.Handler(ctx, toolCall.Function.Arguments)
	if err != nil {
		res.Content = fmt.Sprintf("Run tool call failed, error: %s", err)
		log.Warn().Err(err).Str("tool", toolCall.Function.Name).Str("args", toolCall.Function.Arguments).Msg("tool call failed")
		return res
	}
	log.Debug().Str("tool", toolCall.Function.Name).Str("args", toolCall.Function.Arguments).Str("result", content).Msg("tool call success")
	res.Content = content
	return res
}

// GetTools returns the registered tools sorted by name.
func (td *ToolDispatcher) GetTools() []openai.Tool {
	names := make([]string, 0, len(td.toolMap))
	for name := range td.toolMap {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]openai.Tool, 0, len(names))
	for _, name := range names {
		def := td.toolMap[name].Def
		res = append(res, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &def,
		})
	}
	return res
}
