package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/internal/server"
)

// ServeCmd returns the serve command.
func ServeCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the graph operations as a local JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (default from config: 127.0.0.1:7420)",
			},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	// Request logs are the server's console output.
	cmdCtx.Logger = newLogger(c, slog.LevelInfo)
	cmdCtx.Service.Logger = cmdCtx.Logger

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cmdCtx.Service, cmdCtx.Logger)
	return srv.ListenAndServe(ctx, cmdCtx.Config.Server.Addr)
}
