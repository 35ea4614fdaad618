package server

import (
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown delivers the first interrupt or terminate signal.
func waitForShutdown() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return quit
}
