package demo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ks888/seqgrid/arith"
	"github.com/ks888/seqgrid/common"
	"github.com/ks888/seqgrid/common/log"
	"github.com/ks888/seqgrid/seq"
)

// ArithmeticLoopOptions represents the options which the arithmetic/loop action accepts.
type ArithmeticLoopOptions struct {
	Out        io.Writer
	X, Y       int
	Threshold  int
	Iterations int
	Values     seq.Sequence
}

// DefaultArithmeticLoopOptions returns the options of the arithloop program without flags.
func DefaultArithmeticLoopOptions() ArithmeticLoopOptions {
	return ArithmeticLoopOptions{
		Out:        os.Stdout,
		X:          5,
		Y:          10,
		Threshold:  10,
		Iterations: 3,
		Values:     seq.Of(1, 2, 3, 4, 5),
	}
}

func (o ArithmeticLoopOptions) validate() error {
	if o.Out == nil {
		return fmt.Errorf("no output writer: %w", ErrInvalidOptions)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", o.Iterations, ErrInvalidOptions)
	}
	return nil
}

// ArithmeticLoopAction adds two integers, prints the sequence, checks the threshold and runs the loop.
func ArithmeticLoopAction(ctx context.Context, options ArithmeticLoopOptions) error {
	if err := options.validate(); err != nil {
		return err
	}

	result := arith.Add(options.X, options.Y)
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(options.Out, common.AddFormat, result); err != nil {
		return fmt.Errorf("failed to print the result: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := options.Values.WriteTo(options.Out); err != nil {
		return fmt.Errorf("failed to print the sequence: %w", err)
	}

	log.Debugf("compare %d with threshold %d\n", result, options.Threshold)
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(options.Out, arith.Classify(result, options.Threshold)); err != nil {
		return fmt.Errorf("failed to print the check: %w", err)
	}

	for i := 0; i < options.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(options.Out, common.LoopFormat, i); err != nil {
			return fmt.Errorf("failed to print the iteration %d: %w", i, err)
		}
	}
	return nil
}
