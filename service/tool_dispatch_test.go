package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"hello-mcp/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(ts *service.ToolService, name string, args any) service.ToolResult {
	return ts.CallTool(context.Background(), service.ToolInvocation{Name: name, Arguments: args})
}

func TestToolService_ListTools(t *testing.T) {
	ts := service.NewToolService(nil)
	tools := ts.ListTools()
	require.Len(t, tools, 2)
	assert.Equal(t, service.ToolGetElement, tools[0].Name)
	assert.Equal(t, service.ToolGetElementByPosition, tools[1].Name)

	t.Run("schemas", func(t *testing.T) {
		want := map[string]struct {
			param string
			typ   string
		}{
			service.ToolGetElement:           {service.ParamName, "string"},
			service.ToolGetElementByPosition: {service.ParamPosition, "integer"},
		}
		for _, tool := range tools {
			data, err := json.Marshal(tool.Parameters)
			require.NoError(t, err)
			var schema struct {
				Type       string                    `json:"type"`
				Properties map[string]map[string]any `json:"properties"`
				Required   []string                  `json:"required"`
			}
			require.NoError(t, json.Unmarshal(data, &schema))
			w := want[tool.Name]
			assert.Equal(t, "object", schema.Type)
			assert.Equal(t, []string{w.param}, schema.Required)
			assert.Equal(t, w.typ, schema.Properties[w.param]["type"])
			assert.NotEmpty(t, tool.Description)
		}
	})

	t.Run("independent of catalog size", func(t *testing.T) {
		small, err := service.NewCatalog(service.DefaultCatalog().Elements()[:18])
		require.NoError(t, err)
		assert.Equal(t, tools, service.NewToolService(small).ListTools())
	})
}

func TestToolService_GetElement(t *testing.T) {
	ts := service.NewToolService(nil)

	t.Run("found", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{"name": "氢"})
		assert.False(t, res.IsError)
		assert.Equal(t, service.NoError, res.Kind)
		assert.Contains(t, res.Text, "Hydrogen")
	})

	t.Run("symbol with surrounding spaces", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{"name": "  fe "})
		assert.False(t, res.IsError)
		assert.Contains(t, res.Text, "Iron")
	})

	t.Run("missing argument", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{})
		assert.True(t, res.IsError)
		assert.Equal(t, service.MissingParameter, res.Kind)
	})

	t.Run("nil argument bag", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, nil)
		assert.True(t, res.IsError)
		assert.Equal(t, service.MissingParameter, res.Kind)
	})

	t.Run("empty argument", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{"name": "   "})
		assert.True(t, res.IsError)
		assert.Equal(t, service.MissingParameter, res.Kind)
	})

	t.Run("wrong type", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{"name": 6.0})
		assert.True(t, res.IsError)
		assert.Equal(t, service.InvalidParameterType, res.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, map[string]any{"name": "XYZ"})
		assert.True(t, res.IsError)
		assert.Equal(t, service.NotFound, res.Kind)
		assert.Contains(t, res.Text, "element not found")
	})
}

func TestToolService_GetElementByPosition(t *testing.T) {
	ts := service.NewToolService(nil)

	t.Run("calcium", func(t *testing.T) {
		res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": 20})
		assert.False(t, res.IsError)
		assert.Contains(t, res.Text, "Ca")
		assert.Contains(t, res.Text, "Calcium")
	})

	t.Run("json number", func(t *testing.T) {
		var args map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{"position": 6}`), &args))
		res := call(ts, service.ToolGetElementByPosition, args)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Text, "Carbon")
	})

	t.Run("raw json arguments", func(t *testing.T) {
		res := call(ts, service.ToolGetElementByPosition, json.RawMessage(`{"position": 118}`))
		assert.False(t, res.IsError)
		assert.Contains(t, res.Text, "Oganesson")
	})

	t.Run("numeric string", func(t *testing.T) {
		res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": "8"})
		assert.False(t, res.IsError)
		assert.Contains(t, res.Text, "Oxygen")
	})

	t.Run("missing", func(t *testing.T) {
		res := call(ts, service.ToolGetElementByPosition, map[string]any{})
		assert.True(t, res.IsError)
		assert.Equal(t, service.MissingParameter, res.Kind)
	})

	t.Run("not an integer", func(t *testing.T) {
		for _, v := range []any{6.5, "six", true, []any{1}, map[string]any{"n": 1}} {
			res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": v})
			assert.True(t, res.IsError, "value %v", v)
			assert.Equal(t, service.InvalidParameterType, res.Kind, "value %v", v)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, v := range []int{0, -3, 119, 999} {
			res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": v})
			assert.True(t, res.IsError, "value %d", v)
			assert.Equal(t, service.OutOfRange, res.Kind, "value %d", v)
		}
	})

	t.Run("whole numbers beyond exact float precision", func(t *testing.T) {
		for _, v := range []any{1e20, -1e20, json.Number("100000000000000000000")} {
			res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": v})
			assert.True(t, res.IsError, "value %v", v)
			assert.Equal(t, service.InvalidParameterType, res.Kind, "value %v", v)
		}
		res := call(ts, service.ToolGetElementByPosition, map[string]any{"position": 1e15})
		assert.Equal(t, service.OutOfRange, res.Kind)
	})

	t.Run("in range but missing from a partial table", func(t *testing.T) {
		small, err := service.NewCatalog(service.DefaultCatalog().Elements()[:18])
		require.NoError(t, err)
		res := call(service.NewToolService(small), service.ToolGetElementByPosition, map[string]any{"position": 20})
		assert.True(t, res.IsError)
		assert.Equal(t, service.NotFound, res.Kind)
	})
}

func TestToolService_Faults(t *testing.T) {
	ts := service.NewToolService(nil)

	t.Run("unknown tool", func(t *testing.T) {
		res := call(ts, "get_weather", map[string]any{})
		assert.True(t, res.IsError)
		assert.Equal(t, service.UnknownTool, res.Kind)
		assert.Equal(t, "unknown tool: get_weather", res.Text)
	})

	t.Run("argument bag is not an object", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, []any{"氢"})
		assert.True(t, res.IsError)
		assert.Equal(t, service.InternalFault, res.Kind)
	})

	t.Run("malformed raw json", func(t *testing.T) {
		res := call(ts, service.ToolGetElement, json.RawMessage(`{"name":`))
		assert.True(t, res.IsError)
		assert.Equal(t, service.InternalFault, res.Kind)
	})
}

func TestToolService_Concurrent(t *testing.T) {
	ts := service.NewToolService(nil)
	var wg sync.WaitGroup
	results := make([]service.ToolResult, 118)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = call(ts, service.ToolGetElementByPosition, map[string]any{"position": i + 1})
		}(i)
	}
	wg.Wait()
	for i, res := range results {
		e, _ := ts.Catalog().FindByAtomicNumber(i + 1)
		assert.False(t, res.IsError)
		assert.Equal(t, service.FormatElement(e), res.Text)
	}
}
