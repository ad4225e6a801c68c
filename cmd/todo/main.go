// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/exitcode"
	"todo/internal/terminal"
)

func main() {
	tty := terminal.New(os.Stdin)

	// Raw mode delivers Ctrl-C as a key, so a signal here means the loop is
	// blocked outside raw mode. Leave the terminal usable and exit.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		_ = tty.Restore()
		os.Exit(exitcode.Interrupted)
	}()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, tty)

	code := dispatcher.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
