// SPDX-License-Identifier: Unlicense OR MIT

// Command flexui lays out, inspects and renders scene files.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"flexui.org/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
