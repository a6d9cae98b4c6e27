package peano

import "errors"

// ErrInvalidInput is the single failure kind raised by the Peano engines:
// negative or non-natural operands, zero denominators, and division or
// modulo by zero. Match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
