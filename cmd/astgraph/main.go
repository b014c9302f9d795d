package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ks888/seqgrid/common/log"
	"github.com/ks888/seqgrid/demo"
	"github.com/urfave/cli/v2"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Print the shape statistics of Go syntax trees",
		ArgsUsage: "[go file or package directory]...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("no go file or package directory is specified")
			}

			log.EnableDebugLog(c.Bool("debug"))

			options := demo.ASTGraphOptions{Out: out}
			if path := c.String("csv"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				options.CSV = f
			}
			return demo.ASTGraphAction(c.Context, c.Args().Slice(), options)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "csv",
				Usage: "write the per-file statistics to the csv `file`",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "print the debug logs",
				Value: false,
			},
		},
		HideHelp: true, // to hide the `COMMANDS` section in the help message.
	}
}

func main() {
	log.SetProgram(filepath.Base(os.Args[0]))

	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
