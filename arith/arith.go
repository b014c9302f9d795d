// Package arith has the arithmetic helper and the threshold check of the arithloop program.
package arith

import (
	"fmt"

	"github.com/ks888/seqgrid/common"
)

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Classify returns the message which tells whether the result is greater than the threshold.
func Classify(result, threshold int) string {
	if result > threshold {
		return fmt.Sprintf(common.GreaterFormat, threshold)
	}
	return fmt.Sprintf(common.NotGreaterFormat, threshold)
}
