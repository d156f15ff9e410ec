// Command hop runs the desktop build of the jump game.
package main

import (
	"fmt"
	"os"

	"hop/internal/config"
	"hop/internal/game"
)

func main() {
	s, err := config.Load(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hop: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	game.RunDesktop(s)
}
