package agent

import (
	"context"

	mcpclient "hello-mcp/mcp-client"
	"hello-mcp/shared"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

const DefaultQuestion = "请帮我查询氢元素的详细信息，包括原子序数、符号和相对原子质量"

// Workflow connects an MCP server to an OpenAI-compatible chat model.
type Workflow struct {
	cfg       shared.Config
	mcpclient *mcpclient.Client
	client    *openai.Client
}

func NewWorkflow(cfg shared.Config) *Workflow {
	return &Workflow{cfg: cfg}
}

func (w *Workflow) Close() error {
	if w.mcpclient == nil {
		return nil
	}
	return w.mcpclient.Close()
}

func (w *Workflow) Init(ctx context.Context) error {
	config := openai.DefaultConfig(w.cfg.LLMAPIKey)
	config.BaseURL = w.cfg.LLMBaseURL
	w.client = openai.NewClientWithConfig(config)
	log.Info().Str("base_url", w.cfg.LLMBaseURL).Str("model", w.cfg.LLMModel).Msg("create openai client success")

	c, err := mcpclient.Connect(ctx, w.cfg.ClientURL(), w.cfg.Transport)
	if err != nil {
		return err
	}
	w.mcpclient = c
	log.Info().Str("server", c.ServerName()).Msg("create mcp client success")
	return nil
}

// Ask runs a fresh agent on question with the server's tools.
func (w *Workflow) Ask(ctx context.Context, question string) (string, error) {
	endpoints, err := w.mcpclient.LoadTools(ctx)
	if err != nil {
		log.Error().Err(err).Msg("load mcp tools failed")
		return "", err
	}
	agent := NewAgent(w.client, w.cfg.LLMModel, w.cfg.AgentMaxTurns)
	if err := agent.AddTools(endpoints); err != nil {
		return "", err
	}
	return agent.Run(ctx, question)
}
