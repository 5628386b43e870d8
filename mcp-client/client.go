package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hello-mcp/service"
	"hello-mcp/shared"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
)

const (
	clientName    = "hello-mcp-client"
	clientVersion = "1.0.0"
)

// Client is an initialized session with one MCP server.
type Client struct {
	c          *client.Client
	serverName string
}

// Result is the text of a tool call and whether the server flagged it as an error.
type Result struct {
	Text    string
	IsError bool
}

// Connect dials url with the given transport (streamable or sse) and performs
// the initialize handshake.
func Connect(ctx context.Context, url string, transport string) (*Client, error) {
	var (
		c   *client.Client
		err error
	)
	switch transport {
	case shared.TransportStreamable, "":
		c, err = client.NewStreamableHttpClient(url)
	case shared.TransportSSE:
		c, err = client.NewSSEMCPClient(url)
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client for %s: %w", transport, url, err)
	}
	return NewClient(ctx, c)
}

// NewClient starts c and initializes the session. c is closed on failure.
func NewClient(ctx context.Context, c *client.Client) (*Client, error) {
	if err := c.Start(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("start mcp client: %w", err)
	}
	res, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: mcp.Implementation{
				Name:    clientName,
				Version: clientVersion,
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize mcp session: %w", err)
	}
	log.Info().Str("server", res.ServerInfo.Name).Str("version", res.ServerInfo.Version).Msg("mcp session initialized")
	return &Client{c: c, serverName: res.ServerInfo.Name}, nil
}

func (cl *Client) ServerName() string {
	return cl.serverName
}

func (cl *Client) Close() error {
	return cl.c.Close()
}

func (cl *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	res, err := cl.c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return res.Tools, nil
}

// CallTool calls name with args. A tool-level failure is reported through
// Result.IsError; the error return is for transport and protocol failures.
func (cl *Client) CallTool(ctx context.Context, name string, args any) (Result, error) {
	reqID := uuid.NewString()
	logger := log.With().Str("request_id", reqID).Str("tool", name).Logger()
	logger.Debug().Any("args", args).Msg("call tool")

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := cl.c.CallTool(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("call tool failed")
		return Result{}, fmt.Errorf("call tool %s: %w", name, err)
	}
	var builder strings.Builder
	for _, content := range res.Content {
		switch text := content.(type) {
		case mcp.TextContent:
			builder.WriteString(text.Text)
		case *mcp.TextContent:
			builder.WriteString(text.Text)
		}
	}
	if builder.Len() == 0 {
		return Result{}, fmt.Errorf("call tool %s: no text content in result", name)
	}
	logger.Debug().Bool("is_error", res.IsError).Str("text", builder.String()).Msg("call tool done")
	return Result{Text: builder.String(), IsError: res.IsError}, nil
}

// GetElement looks an element up by Chinese name, English name or symbol.
func (cl *Client) GetElement(ctx context.Context, name string) (Result, error) {
	return cl.CallTool(ctx, service.ToolGetElement, map[string]any{service.ParamName: name})
}

// GetElementByPosition looks an element up by atomic number.
func (cl *Client) GetElementByPosition(ctx context.Context, position int) (Result, error) {
	return cl.CallTool(ctx, service.ToolGetElementByPosition, map[string]any{service.ParamPosition: position})
}

// LoadTools exposes every server tool as an endpoint a chat model can call.
// A tool result flagged as an error is returned as a Go error.
func (cl *Client) LoadTools(ctx context.Context) ([]shared.ToolEndPoint, error) {
	tools, err := cl.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	endpoints := make([]shared.ToolEndPoint, 0, len(tools))
	var errList []error
	for _, tool := range tools {
		def, err := shared.ConvertToFunctionDefinition(tool)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		name := tool.Name
		endpoints = append(endpoints, shared.ToolEndPoint{
			Name: name,
			Def:  def,
			Handler: func(ctx context.Context, args string) (string, error) {
				var argMap map[string]any
				if strings.TrimSpace(args) != "" {
					if err := json.Unmarshal([]byte(args), &argMap); err != nil {
						return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
					}
				}
				res, err := cl.CallTool(ctx, name, argMap)
				if err != nil {
					return "", err
				}
				if res.IsError {
					return "", errors.New(res.Text)
				}
				return res.Text, nil
			},
		})
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return endpoints, nil
}
