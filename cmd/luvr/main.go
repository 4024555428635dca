package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zWesleyDavid/prototipo-luvr/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rt := &cli.Runtime{}
	err := cli.NewRootCmd(rt).ExecuteContext(ctx)

	_ = rt.Close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
