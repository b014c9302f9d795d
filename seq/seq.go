// Package seq provides the fixed-length integer sequence used by the demo programs.
package seq

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrNegativeLength is returned when a sequence of negative length is requested.
var ErrNegativeLength = errors.New("seq: negative length")

// Sequence is an ordered, fixed-length list of integers. Its length is the length of the slice.
type Sequence []int

// Of returns the sequence which holds the specified values in order.
func Of(values ...int) Sequence {
	s := make(Sequence, len(values))
	copy(s, values)
	return s
}

// Fill returns the sequence of length n whose i-th element is fn(i).
func Fill(n int, fn func(i int) int) (Sequence, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	s := make(Sequence, n)
	for i := range s {
		s[i] = fn(i)
	}
	return s, nil
}

// Doubled returns [0, 2, 4, ...] of length n.
func Doubled(n int) (Sequence, error) {
	return Fill(n, func(i int) int { return i * 2 })
}

// Sum returns the sum of all the elements. The sum of the empty sequence is 0.
func Sum(s Sequence) int {
	sum := 0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	return len(s)
}

// String returns the space-separated elements.
func (s Sequence) String() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// WriteTo writes the space-separated elements followed by a newline.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String()+"\n")
	return int64(n), err
}
