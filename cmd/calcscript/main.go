package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bond-kaneko/go-calc-check/script"
	"github.com/bond-kaneko/go-calc-check/watcher"
)

func main() {
	// Configure command line arguments
	watchFlag := flag.Bool("w", false, "Re-evaluate the script whenever it changes")
	delayFlag := flag.Duration("d", 500*time.Millisecond, "Debounce delay for re-evaluation after changes")
	flag.Parse()

	logger := log.New(os.Stderr)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-w] [-d delay] <script-file>\n", os.Args[0])
		os.Exit(1)
	}
	path := flag.Arg(0)

	if !*watchFlag {
		result, err := script.EvalFile(path)
		if err != nil {
			logger.Fatal("script evaluation failed", "path", path, "err", err)
		}
		fmt.Printf("%g\n", result)
		return
	}

	scriptWatcher, err := watcher.New(path)
	if err != nil {
		logger.Fatal("failed to create script watcher", "path", path, "err", err)
	}
	scriptWatcher.SetDebounceDelay(*delayFlag)

	// Set up signal handling for graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	// Start watching in a goroutine
	go func() {
		if err := scriptWatcher.Run(); err != nil {
			logger.Error("watch failed", "err", err)
			os.Exit(1)
		}
	}()

	logger.Info("watching script", "path", path)

	// Wait for interrupt signal
	<-signalChan
	logger.Info("shutting down")
	scriptWatcher.Stop()
}
