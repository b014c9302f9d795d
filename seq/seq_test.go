package seq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ks888/seqgrid/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubled(t *testing.T) {
	s, err := seq.Doubled(5)
	require.NoError(t, err)
	if diff := cmp.Diff(seq.Sequence{0, 2, 4, 6, 8}, s); diff != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, s.Len())
}

func TestFill_NegativeLength(t *testing.T) {
	_, err := seq.Fill(-1, func(i int) int { return i })
	if !errors.Is(err, seq.ErrNegativeLength) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFill_Empty(t *testing.T) {
	s, err := seq.Fill(0, func(i int) int { return i })
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
}

func TestSum(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   seq.Sequence
		want int
	}{
		{"Doubled", seq.Sequence{0, 2, 4, 6, 8}, 20},
		{"Literal", seq.Of(1, 2, 3, 4, 5), 15},
		{"Negative", seq.Of(-3, 1), -2},
		{"Empty", seq.Sequence{}, 0},
		{"Nil", nil, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seq.Sum(tc.in))
		})
	}
}

func TestOf_Copies(t *testing.T) {
	values := []int{1, 2}
	s := seq.Of(values...)
	values[0] = 100
	assert.Equal(t, 1, s[0])
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 2 3 4 5", seq.Of(1, 2, 3, 4, 5).String())
	assert.Equal(t, "", seq.Of().String())
}

func TestWriteTo(t *testing.T) {
	out := &strings.Builder{}
	n, err := seq.Of(1, 2, 3, 4, 5).WriteTo(out)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5\n", out.String())
	assert.EqualValues(t, len("1 2 3 4 5\n"), n)
}
