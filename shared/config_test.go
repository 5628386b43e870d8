package shared_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hello-mcp/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		cfg, err := shared.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, shared.DefaultConfig(), cfg)
		assert.Equal(t, "127.0.0.1:9900", cfg.ListenAddr())
		assert.Equal(t, "http://localhost:9900/mcp", cfg.ClientURL())
	})

	t.Run("env file with quoting and references", func(t *testing.T) {
		path := writeEnvFile(t, `
# local overrides
HELLO_MCP_PORT=9911
HELLO_MCP_TRANSPORT="sse"
HELLO_MCP_LLM_MODEL='llama3.1:8b'
HELLO_MCP_SERVER_URL="http://example.test:${HELLO_MCP_PORT}/sse"
OPENAI_API_KEY=ignored
`)
		cfg, err := shared.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9911, cfg.Port)
		assert.Equal(t, shared.TransportSSE, cfg.Transport)
		assert.Equal(t, "llama3.1:8b", cfg.LLMModel)
		assert.Equal(t, "http://example.test:9911/sse", cfg.ClientURL())
	})

	t.Run("process environment wins over file", func(t *testing.T) {
		path := writeEnvFile(t, "HELLO_MCP_PORT=9911\n")
		t.Setenv("HELLO_MCP_PORT", "9922")
		cfg, err := shared.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9922, cfg.Port)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeEnvFile(t, "HELLO_MCP_PORT=70000\nHELLO_MCP_TRANSPORT=carrier-pigeon\n")
		_, err := shared.LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port 70000")
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})

	t.Run("port that is not a number", func(t *testing.T) {
		t.Setenv("HELLO_MCP_PORT", "nine")
		_, err := shared.LoadConfig("")
		assert.Error(t, err)
	})
}

func TestSourceEnvFile(t *testing.T) {
	t.Run("commands are not executed", func(t *testing.T) {
		path := writeEnvFile(t, "HELLO_MCP_HOST=0.0.0.0\ntouch should-not-exist\n")
		_, err := shared.SourceEnvFile(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"touch" not allowed`)
		_, statErr := os.Stat("should-not-exist")
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("builtins run and only prefixed variables are kept", func(t *testing.T) {
		path := writeEnvFile(t, "base=8000\nexport HELLO_MCP_PORT=$((base + 1))\necho loaded\nOTHER=1\n")
		vars, err := shared.SourceEnvFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "8001", vars["PORT"])
		assert.NotContains(t, vars, "OTHER")
		assert.NotContains(t, vars, "base")
	})

	t.Run("missing file", func(t *testing.T) {
		vars, err := shared.SourceEnvFile(context.Background(), filepath.Join(t.TempDir(), "none.env"))
		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeEnvFile(t, "HELLO_MCP_HOST=\"unterminated\n")
		_, err := shared.SourceEnvFile(context.Background(), path)
		assert.Error(t, err)
	})
}

