package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tangfuhao/loginkit/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args); err != nil {
		if !errors.Is(err, cli.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "loginkit: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
