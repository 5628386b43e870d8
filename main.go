package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hello-mcp/agent"
	mcpclient "hello-mcp/mcp-client"
	mcpserver "hello-mcp/mcp-server"
	"hello-mcp/service"
	"hello-mcp/shared"

	"github.com/rs/zerolog/log"
)

const usage = `usage: %s <server|stdio|client|agent> [options]

modes:
  server   serve the periodic table tools (streamable http on /mcp, sse on /sse)
  stdio    serve the periodic table tools on stdin/stdout
  client   list the tools and run two sample lookups (default)
  agent    ask a chat model a question it answers with the tools

options:
`

func main() {
	mode := "client"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(mode, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usage, os.Args[0])
		fs.PrintDefaults()
	}
	envFile := fs.String("env", ".env", "env file with HELLO_MCP_* settings")
	port := fs.Int("port", 0, "port to listen on or connect to (default from config, 9900)")
	host := fs.String("host", "", "address to listen on in server mode (default from config, 127.0.0.1)")
	url := fs.String("url", "", "MCP endpoint for client and agent modes")
	transport := fs.String("transport", "", "client transport: streamable or sse")
	question := fs.String("question", agent.DefaultQuestion, "question for agent mode")
	fs.Parse(args)

	cfg, err := shared.LoadConfig(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *url != "" {
		cfg.ServerURL = *url
	}
	if *transport != "" {
		cfg.Transport = *transport
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if err := shared.SetLogLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "server":
		err = runServer(ctx, cfg)
	case "stdio":
		err = runStdio(ctx, cfg)
	case "client", "test":
		err = runClient(ctx, cfg)
	case "agent", "ollama":
		err = runAgent(ctx, cfg, *question)
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", mode).Msg("run failed")
	}
}

func runServer(ctx context.Context, cfg shared.Config) error {
	s, err := mcpserver.NewServer(cfg, service.NewToolService(service.DefaultCatalog()))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func runStdio(ctx context.Context, cfg shared.Config) error {
	s, err := mcpserver.NewServer(cfg, service.NewToolService(service.DefaultCatalog()))
	if err != nil {
		return err
	}
	return s.ServeStdio(ctx, os.Stdin, os.Stdout)
}

func runClient(ctx context.Context, cfg shared.Config) error {
	log.Info().Str("url", cfg.ClientURL()).Str("transport", cfg.Transport).Msg("connect to mcp server")
	c, err := mcpclient.Connect(ctx, cfg.ClientURL(), cfg.Transport)
	if err != nil {
		return err
	}
	defer c.Close()
	return mcpclient.RunDemo(ctx, c, os.Stdout)
}

func runAgent(ctx context.Context, cfg shared.Config, question string) error {
	w := agent.NewWorkflow(cfg)
	if err := w.Init(ctx); err != nil {
		return err
	}
	defer w.Close()
	answer, err := w.Ask(ctx, question)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", answer)
	return nil
}
