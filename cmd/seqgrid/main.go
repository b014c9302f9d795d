package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ks888/seqgrid/common/log"
	"github.com/ks888/seqgrid/demo"
	"github.com/urfave/cli/v2"
)

func newApp(out io.Writer) *cli.App {
	defaults := demo.DefaultSequenceGridOptions()
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Sum a doubled sequence and print an index-sum grid",
		Action: func(c *cli.Context) error {
			log.EnableDebugLog(c.Bool("debug"))

			options := demo.SequenceGridOptions{
				Out:  out,
				Size: c.Int("size"),
				Rows: c.Int("rows"),
				Cols: c.Int("cols"),
			}
			return demo.SequenceGridAction(c.Context, options)
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Usage: "length of the summed sequence",
				Value: defaults.Size,
			},
			&cli.IntFlag{
				Name:  "rows",
				Usage: "number of grid rows",
				Value: defaults.Rows,
			},
			&cli.IntFlag{
				Name:  "cols",
				Usage: "number of grid columns",
				Value: defaults.Cols,
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
