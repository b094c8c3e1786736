package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nauticalab/tsconfig-engine/internal/api"
)

var (
	// Serve command flags
	servePort int
	serveBind string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parser HTTP API server",
	Long: `Start an HTTP API server exposing the parser.

The request body of POST /api/v1/parse is the raw configuration text.
Add ?trailingCommas=all to accept trailing commas before ']'.`,
	RunE: runServer,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveBind, "bind", "b", "0.0.0.0", "Address to bind to")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port := cliConfig.ServerPort
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	server, err := api.NewServer(api.ServerConfig{
		Port:      port,
		Bind:      serveBind,
		Version:   version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Printf("Starting tsconfig API server on %s:%d\n", serveBind, port)
	fmt.Printf("\nEndpoints:\n")
	fmt.Printf("  GET  /api/v1/health   - Health check\n")
	fmt.Printf("  GET  /api/v1/version  - Version information\n")
	fmt.Printf("  GET  /api/v1/enums    - Enum vocabularies\n")
	fmt.Printf("  POST /api/v1/parse    - Parse a configuration\n\n")

	return server.StartWithContext(ctx)
}
