package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	app := cli.App{
		Name:      "bst",
		Usage:     "build, query and draw binary search trees",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: lvl})))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdPrint,
		cmdOps,
	}
	return app.Run(args)
}
