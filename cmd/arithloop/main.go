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
	defaults := demo.DefaultArithmeticLoopOptions()
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Add two integers, check the result and run a counting loop",
		Action: func(c *cli.Context) error {
			log.EnableDebugLog(c.Bool("debug"))

			options := demo.ArithmeticLoopOptions{
				Out:        out,
				X:          c.Int("x"),
				Y:          c.Int("y"),
				Threshold:  c.Int("threshold"),
				Iterations: c.Int("iterations"),
				Values:     defaults.Values,
			}
			return demo.ArithmeticLoopAction(c.Context, options)
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "x",
				Usage: "first operand",
				Value: defaults.X,
			},
			&cli.IntFlag{
				Name:  "y",
				Usage: "second operand",
				Value: defaults.Y,
			},
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "the result is compared with this `value`",
				Value: defaults.Threshold,
			},
			&cli.IntFlag{
				Name:  "iterations",
				Usage: "number of loop iterations",
				Value: defaults.Iterations,
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
