// Command hop-term runs the jump game in a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"hop/internal/config"
	"hop/internal/term"
)

func main() {
	// The screen owns the tty; logs are kept only when HOP_LOG_FILE is set.
	s, err := config.Load(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hop-term: %v\n", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, s)
	stop()
	if err != nil {
		s.Log.Error().Err(err).Msg("terminal front-end stopped")
		fmt.Fprintf(os.Stderr, "hop-term: %v\n", err)
	}
	s.Close()
	if err != nil {
		os.Exit(1)
	}
}
