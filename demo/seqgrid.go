package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ks888/seqgrid/common"
	"github.com/ks888/seqgrid/common/log"
	"github.com/ks888/seqgrid/grid"
	"github.com/ks888/seqgrid/seq"
)

// ErrInvalidOptions is returned when the action options are unusable.
var ErrInvalidOptions = errors.New("demo: invalid options")

// SequenceGridOptions represents the options which the sequence/grid action accepts.
type SequenceGridOptions struct {
	Out  io.Writer
	Size int
	Rows int
	Cols int
}

// DefaultSequenceGridOptions returns the options of the seqgrid program without flags.
func DefaultSequenceGridOptions() SequenceGridOptions {
	return SequenceGridOptions{Out: os.Stdout, Size: 5, Rows: 3, Cols: 3}
}

func (o SequenceGridOptions) validate() error {
	if o.Out == nil {
		return fmt.Errorf("no output writer: %w", ErrInvalidOptions)
	}
	if o.Size < 0 || o.Rows < 0 || o.Cols < 0 {
		return fmt.Errorf("size %d, rows %d, cols %d: %w", o.Size, o.Rows, o.Cols, ErrInvalidOptions)
	}
	return nil
}

// SequenceGridAction sums the doubled sequence and prints the index-sum grid.
func SequenceGridAction(ctx context.Context, options SequenceGridOptions) error {
	if err := options.validate(); err != nil {
		return err
	}

	arr, err := seq.Doubled(options.Size)
	if err != nil {
		return err
	}
	total := seq.Sum(arr)
	log.Debugf("sequence %v (len %d), sum %d\n", arr, arr.Len(), total)

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(options.Out, common.SumFormat, total); err != nil {
		return fmt.Errorf("failed to print the sum: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	matrix, err := grid.IndexSum(options.Rows, options.Cols)
	if err != nil {
		return err
	}
	log.Debugf("grid %dx%d\n", matrix.Rows(), matrix.Cols())
	if log.DebugLogEnabled() {
		for i := 0; i < matrix.Rows(); i++ {
			row, _ := matrix.Row(i) // i is in range
			log.Debugf("row %d: sum %d\n", i, seq.Sum(row))
		}
	}

	if _, err := matrix.WriteTo(options.Out); err != nil {
		return fmt.Errorf("failed to print the grid: %w", err)
	}
	return nil
}
