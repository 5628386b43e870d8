package shared

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sashabaranov/go-openai"
)

// ConvertToMcpTool turns an OpenAI function definition into an MCP tool with
// the same name, description and input schema.
func ConvertToMcpTool(def openai.FunctionDefinition) (mcp.Tool, error) {
	data, err := json.Marshal(def.Parameters)
	if err != nil {
		return mcp.Tool{}, err
	}

	tool := mcp.NewToolWithRawSchema(def.Name, def.Description, data)
	return tool, nil
}

// ConvertToFunctionDefinition is the inverse of ConvertToMcpTool, used to offer
// MCP tools to a chat model.
func ConvertToFunctionDefinition(tool mcp.Tool) (openai.FunctionDefinition, error) {
	data, err := json.Marshal(tool)
	if err != nil {
		return openai.FunctionDefinition{}, err
	}
	var wire struct {
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return openai.FunctionDefinition{}, fmt.Errorf("decode input schema of tool %s: %w", tool.Name, err)
	}
	def := openai.FunctionDefinition{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if len(wire.InputSchema) != 0 && string(wire.InputSchema) != "null" {
		def.Parameters = wire.InputSchema
	} else {
		def.Parameters = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return def, nil
}
