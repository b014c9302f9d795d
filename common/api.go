// Package common holds the output formats shared by the demo programs.
package common

// SumFormat is the line printed with the sum of the sequence.
const SumFormat = "Sum of array: %d\n"

// AddFormat is the line printed with the result of the addition.
const AddFormat = "Result of add: %d\n"

// GreaterFormat and NotGreaterFormat are the messages of the threshold check. The threshold is the argument.
const (
	GreaterFormat    = "Result is greater than %d"
	NotGreaterFormat = "Result is %d or less"
)

// LoopFormat is the line printed at each loop iteration.
const LoopFormat = "Loop iteration: %d\n"
