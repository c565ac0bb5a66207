// Command morsed serves the Morse translation API over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/telegraphy/morse/httpapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes the server and centralizes error reporting, so deferred
// cleanup executes before the process exits.
func run() error {
	// A .env file is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	server := httpapi.NewServer(httpapi.ServerConfig{
		Addr:           fmt.Sprintf("%s:%d", config.Host, config.Port),
		AllowedOrigins: config.origins(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("morsed listening on %s:%d\n", config.Host, config.Port)
	return server.Run(ctx)
}
