package agent

import (
	"context"
	"errors"
	"fmt"

	"hello-mcp/shared"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

var systemPrompt = `
You are a chemistry assistant with access to a periodic table.
Use the get_element tool to look elements up by Chinese name, English name or symbol,
and the get_element_by_position tool to look them up by atomic number.
Answer using only the facts returned by the tools. Keep the answer short.
`

var ErrNoAnswer = errors.New("model did not produce a final answer")

type Agent struct {
	client       *openai.Client
	model        string
	maxTurns     int
	toolDispatch *ToolDispatcher
}

func NewAgent(client *openai.Client, model string, maxTurns int) *Agent {
	if maxTurns < 1 {
		maxTurns = 1
	}
	return &Agent{
		client:       client,
		model:        model,
		maxTurns:     maxTurns,
		toolDispatch: NewToolDispatcher(),
	}
}

func (a *Agent) AddTools(endpoints []shared.ToolEndPoint) error {
	return a.toolDispatch.RegisterToolEndpoint(endpoints...)
}

func (a *Agent) chat(ctx context.Context, msgs []openai.ChatCompletionMessage) (*openai.ChatCompletionChoice, error) {
	req := openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: msgs,
		Tools:    a.toolDispatch.GetTools(),
	}
	response, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	return &response.Choices[0], nil
}

// Run answers input, letting the model call tools for at most maxTurns rounds.
func (a *Agent) Run(ctx context.Context, input string) (string, error) {
	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: input},
	}
	for turn := 1; turn <= a.maxTurns; turn++ {
		resp, err := a.chat(ctx, msgs)
		if err != nil {
			log.Error().Err(err).Int("turn", turn).Msg("chat failed")
			return "", fmt.Errorf("chat turn %d: %w", turn, err)
		}
		if len(resp.Message.ToolCalls) == 0 {
			log.Info().Int("turn", turn).Str("finish_reason", string(resp.FinishReason)).Msg("agent finished")
			return resp.Message.Content, nil
		}
		log.Info().Int("turn", turn).Int("tool_calls", len(resp.Message.ToolCalls)).Msg("model requested tools")
		msgs = append(msgs, resp.Message)
		for _, call := range resp.Message.ToolCalls {
			msgs = append(msgs, a.toolDispatch.Run(ctx, call))
		}
	}
	return "", fmt.Errorf("%w after %d turns", ErrNoAnswer, a.maxTurns)
}
