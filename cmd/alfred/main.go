package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfred/internal/infrastructure/env"
)

func main() {
	// Ctrl+C / SIGTERM отменяют контекст, контейнер закрывает браузер
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(env.NewEnvService()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop() // os.Exit не выполняет defer
		os.Exit(1)
	}
}
