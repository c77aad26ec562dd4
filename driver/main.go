package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "konst",
		Usage: "Constitutional rule and procedure checker",
		Commands: []*cli.Command{
			&VoteCmd,
			&CheckCmd,
			&RunCmd,
			&ListCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
