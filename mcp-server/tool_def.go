package mcpserver

import (
	"context"
	"fmt"
	"time"

	"hello-mcp/service"
	"hello-mcp/shared"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *Server) registerTools() error {
	for _, def := range s.svc.ListTools() {
		tool, err := shared.ConvertToMcpTool(def)
		if err != nil {
			return fmt.Errorf("convert tool %s: %w", def.Name, err)
		}
		s.mcpServer.AddTool(tool, s.toolHandler(def.Name))
	}
	return nil
}

// toolHandler forwards one MCP tool to the ToolService. Failures are reported
// in the tool result, so the returned error is always nil.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := s.tracer.Start(ctx, "tools/call "+name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool.name", name)),
		)
		defer span.End()

		start := time.Now()
		res := s.svc.CallTool(ctx, service.ToolInvocation{
			Name:      request.Params.Name,
			Arguments: request.Params.Arguments,
		})
		elapsed := time.Since(start)

		s.metrics.observe(name, res.Kind, elapsed)
		span.SetAttributes(attribute.String("mcp.tool.result", res.Kind.String()))
		if res.IsError {
			span.SetStatus(codes.Error, res.Text)
			log.Warn().Str("tool", name).Str("result", res.Kind.String()).Str("text", res.Text).Dur("elapsed", elapsed).Msg("tools/call failed")
			return mcp.NewToolResultError(res.Text), nil
		}
		log.Debug().Str("tool", name).Dur("elapsed", elapsed).Msg("tools/call")
		return mcp.NewToolResultText(res.Text), nil
	}
}
