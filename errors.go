package charstats

import (
	"errors"
	"fmt"
)

// ErrEmptyDistribution is returned by BuildTree when the distribution has no
// symbols with a non-zero count.
var ErrEmptyDistribution = errors.New("cannot build Huffman tree from empty distribution")

// InputError is returned when a corpus cannot be opened or read.
type InputError struct {
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err *InputError) Error() string {
	return fmt.Sprintf("failed to read corpus %q: %v", err.Path, err.Err)
}

// Unwrap returns the underlying I/O error.
func (err *InputError) Unwrap() error {
	return err.Err
}

// DegenerateError is returned when a probability would be computed against a
// total count of zero.
type DegenerateError struct {
	Op string
}

// Error fulfills the error interface.
func (err *DegenerateError) Error() string {
	return fmt.Sprintf("%s: total count must be at least 1, got 0", err.Op)
}

// MissingSymbolError is returned when a distribution being scored against a
// Huffman tree contains a symbol that the tree has no code for.
type MissingSymbolError struct {
	Symbol Symbol
	Count  uint64
}

// Error fulfills the error interface.
func (err *MissingSymbolError) Error() string {
	return fmt.Sprintf("symbol %q (count %d) has no entry in the code length table", err.Symbol.String(), err.Count)
}

var (
	_ error = (*InputError)(nil)
	_ error = (*DegenerateError)(nil)
	_ error = (*MissingSymbolError)(nil)
)
