// main is the entry point for the chakra CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/chakra/cmd"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code so deferred cleanup always runs.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.SetStoreManager(iocache.Manager)
	defer iocache.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Cannot stop profiling", err)
		}
	}()

	if err := cmd.Execute(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
