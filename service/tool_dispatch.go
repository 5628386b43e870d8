package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	ToolGetElement           = "get_element"
	ToolGetElementByPosition = "get_element_by_position"

	ParamName     = "name"
	ParamPosition = "position"

	// MaxPosition is the documented upper bound of the position tool.
	MaxPosition = 118
)

// ToolDescriptor describes one tool: name, description and JSON schema of its input.
type ToolDescriptor = openai.FunctionDefinition

// ToolInvocation is a single call as delivered by the transport. Arguments is
// the raw argument bag and is expected to be a JSON object.
type ToolInvocation struct {
	Name      string
	Arguments any
}

type ToolResult struct {
	Text    string
	IsError bool
	Kind    ErrorKind
}

type toolHandler func(ctx context.Context, args Arguments) (string, error)

type toolEndpoint struct {
	Name    string
	Def     ToolDescriptor
	Handler toolHandler
}

// ToolService dispatches tool calls to the periodic table. It holds no
// mutable state after construction and is safe for concurrent use.
type ToolService struct {
	catalog *Catalog
	order   []string
	toolMap map[string]toolEndpoint
}

func NewToolService(catalog *Catalog) *ToolService {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	ts := &ToolService{
		catalog: catalog,
		toolMap: map[string]toolEndpoint{},
	}
	err := ts.registerToolEndpoint(ts.getElementTool(), ts.getElementByPositionTool())
	if err != nil {
		panic(err)
	}
	return ts
}

func (ts *ToolService) Catalog() *Catalog {
	return ts.catalog
}

func (ts *ToolService) registerToolEndpoint(endpoints ...toolEndpoint) error {
	errList := []error{}
	for _, endpoint := range endpoints {
		_, exist := ts.toolMap[endpoint.Name]
		if exist {
			errList = append(errList, fmt.Errorf("tool with name %s already exist", endpoint.Name))
		} else {
			ts.toolMap[endpoint.Name] = endpoint
			ts.order = append(ts.order, endpoint.Name)
		}
	}
	return errors.Join(errList...)
}

// ListTools returns the descriptors in registration order. They do not depend
// on the catalog contents.
func (ts *ToolService) ListTools() []ToolDescriptor {
	res := make([]ToolDescriptor, 0, len(ts.order))
	for _, name := range ts.order {
		res = append(res, ts.toolMap[name].Def)
	}
	return res
}

// CallTool runs one invocation. Every failure, including a panic inside a
// handler, comes back as a result with IsError set.
func (ts *ToolService) CallTool(ctx context.Context, inv ToolInvocation) (res ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("tool", inv.Name).Any("panic", r).Bytes("stack", debug.Stack()).Msg("tool handler panicked")
			res = errorResult(newToolError(InternalFault, "internal error: %v", r))
		}
	}()

	endpoint, exist := ts.toolMap[inv.Name]
	if !exist {
		return errorResult(newToolError(UnknownTool, "unknown tool: %s", inv.Name))
	}
	args, err := asArguments(inv.Arguments)
	if err != nil {
		return errorResult(newToolError(InternalFault, "%s", err.Error()))
	}
	text, err := endpoint.Handler(ctx, args)
	if err != nil {
		return errorResult(err)
	}
	return ToolResult{Text: text}
}

func errorResult(err error) ToolResult {
	return ToolResult{Text: err.Error(), IsError: true, Kind: KindOf(err)}
}

func (ts *ToolService) getElementTool() toolEndpoint {
	def := openai.FunctionDefinition{
		Name:        ToolGetElement,
		Description: "Look up a periodic table element by its Chinese name (e.g. 氢), English name (e.g. Hydrogen) or symbol (e.g. H).",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				ParamName: {
					Type:        jsonschema.String,
					Description: "Element name in Chinese or English, or the element symbol.",
				},
			},
			Required: []string{ParamName},
		},
	}
	handler := func(ctx context.Context, args Arguments) (string, error) {
		name, err := args.RequireString(ParamName)
		if err != nil {
			return "", err
		}
		element, ok := ts.catalog.FindByIdentifier(name)
		if !ok {
			return "", newToolError(NotFound, "element not found: %s", name)
		}
		return FormatElement(element), nil
	}
	return toolEndpoint{Name: def.Name, Def: def, Handler: handler}
}

func (ts *ToolService) getElementByPositionTool() toolEndpoint {
	def := openai.FunctionDefinition{
		Name:        ToolGetElementByPosition,
		Description: "Look up a periodic table element by its position (atomic number).",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				ParamPosition: {
					Type:        jsonschema.Integer,
					Description: fmt.Sprintf("Atomic number of the element, from 1 to %d.", MaxPosition),
				},
			},
			Required: []string{ParamPosition},
		},
	}
	handler := func(ctx context.Context, args Arguments) (string, error) {
		position, err := args.RequireInt(ParamPosition)
		if err != nil {
			return "", err
		}
		if position < 1 || position > MaxPosition {
			return "", newToolError(OutOfRange, "position out of range: %d (must be between 1 and %d)", position, MaxPosition)
		}
		element, ok := ts.catalog.FindByAtomicNumber(position)
		if !ok {
			return "", newToolError(NotFound, "element not found: %d", position)
		}
		return FormatElement(element), nil
	}
	return toolEndpoint{Name: def.Name, Def: def, Handler: handler}
}
