// cmd/locator/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/locator/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	// A run is never resumed, so an interrupt simply ends the process
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupt received, stopping")
		os.Exit(130)
	}()

	cli.Execute()
}
