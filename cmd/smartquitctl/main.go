package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config := NewConfig()
	if err := config.LoadDotEnv(os.Getwd); err != nil {
		fmt.Fprintf(os.Stderr, "can't read .env file: %v\n", err)
		os.Exit(1)
	}
	config.LoadEnv(os.Getenv)

	args, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	app, err := NewApp(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize app, sorry: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
