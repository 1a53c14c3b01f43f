// Command contentdesk starts the dashboard sync core: it loads configuration,
// wires the resource stores to the remote API, and performs the initial
// fetch. Configuration comes from CONFIG_PATH (YAML) and environment
// variables.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/contentdesk/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("contentdesk: %v", err)
	}
}
