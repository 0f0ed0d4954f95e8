package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "scan":
		err = c.runScan(ctx, args)
	case "get":
		err = c.runGet(ctx, args)
	case "list":
		err = c.runList(ctx)
	case "update":
		err = c.runUpdate(ctx, args)
	case "photo":
		err = c.runPhoto(ctx, args)
	case "sign":
		err = c.runSign(ctx, args)
	case "checkout":
		err = c.runCheckout(ctx, args)
	case "return":
		err = c.runReturn(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "queue":
		err = c.runQueue(ctx, args)
	case "watch":
		err = c.runWatch(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
