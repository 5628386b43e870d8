package shared

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const EnvPrefix = "HELLO_MCP_"

const (
	TransportStreamable = "streamable"
	TransportSSE        = "sse"
)

type Config struct {
	Host      string `mapstructure:"HOST"`
	Port      int    `mapstructure:"PORT"`
	ServerURL string `mapstructure:"SERVER_URL"`
	Transport string `mapstructure:"TRANSPORT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	OTLPProtocol string `mapstructure:"OTLP_PROTOCOL"`

	LLMBaseURL    string `mapstructure:"LLM_BASE_URL"`
	LLMModel      string `mapstructure:"LLM_MODEL"`
	LLMAPIKey     string `mapstructure:"LLM_API_KEY"`
	AgentMaxTurns int    `mapstructure:"AGENT_MAX_TURNS"`
}

func DefaultConfig() Config {
	return Config{
		Host:          "127.0.0.1",
		Port:          9900,
		Transport:     TransportStreamable,
		LogLevel:      "debug",
		OTLPProtocol:  "http",
		LLMBaseURL:    "http://localhost:11434/v1",
		LLMModel:      "qwen2.5:latest",
		LLMAPIKey:     "ollama",
		AgentMaxTurns: 5,
	}
}

// LoadConfig starts from DefaultConfig, applies HELLO_MCP_* variables from
// envFile (if it exists) and then from the process environment.
//
// envFile is evaluated as a shell script with command execution disabled, so
// quoting and ${VAR} references behave the way they do when sourcing it.
func LoadConfig(envFile string) (Config, error) {
	values := map[string]string{}
	if envFile != "" {
		fileVars, err := SourceEnvFile(context.Background(), envFile)
		if err != nil {
			return Config{}, err
		}
		for k, v := range fileVars {
			values[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			values[strings.TrimPrefix(k, EnvPrefix)] = v
		}
	}
	return decodeConfig(values)
}

// SourceEnvFile returns the HELLO_MCP_* variables set by envFile, without the
// prefix. A missing file yields an empty map.
func SourceEnvFile(ctx context.Context, envFile string) (map[string]string, error) {
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	f, err := os.Open(envFile)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", envFile, err)
	}
	defer f.Close()
	file, err := syntax.NewParser().Parse(f, envFile)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", envFile, err)
	}
	runner, err := interp.New(
		interp.StdIO(nil, io.Discard, io.Discard),
		interp.ExecHandlers(refuseCommands),
	)
	if err != nil {
		return nil, err
	}
	if err := runner.Run(ctx, file); err != nil {
		return nil, fmt.Errorf("source env file %s: %w", envFile, err)
	}
	res := map[string]string{}
	for name, v := range runner.Vars {
		if strings.HasPrefix(name, EnvPrefix) {
			res[strings.TrimPrefix(name, EnvPrefix)] = v.String()
		}
	}
	return res, nil
}

// refuseCommands stops the runner at the first external command.
func refuseCommands(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		return fmt.Errorf("command %q not allowed in env file", args[0])
	}
}

func decodeConfig(values map[string]string) (Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	if c.Port < 1 || c.Port > 65535 {
		errList = append(errList, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Transport != TransportStreamable && c.Transport != TransportSSE {
		errList = append(errList, fmt.Errorf("unknown transport %q, want %s or %s", c.Transport, TransportStreamable, TransportSSE))
	}
	if c.OTLPProtocol != "http" && c.OTLPProtocol != "grpc" {
		errList = append(errList, fmt.Errorf("unknown otlp protocol %q, want http or grpc", c.OTLPProtocol))
	}
	if c.AgentMaxTurns < 1 {
		errList = append(errList, fmt.Errorf("agent max turns must be positive, got %d", c.AgentMaxTurns))
	}
	return errors.Join(errList...)
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientURL is the endpoint a client dials: ServerURL when set, otherwise the
// local server's path for the configured transport.
func (c Config) ClientURL() string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	path := "/mcp"
	if c.Transport == TransportSSE {
		path = "/sse"
	}
	return fmt.Sprintf("http://localhost:%d%s", c.Port, path)
}
