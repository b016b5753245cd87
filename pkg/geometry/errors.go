package geometry

import "errors"

// ErrDivisionByZero is returned when an operation needs the multiplicative
// inverse of Zero. It is a precondition failure and is kept distinct from the
// NaN and Inf values ordinary floating-point arithmetic produces.
var ErrDivisionByZero = errors.New("geometry: division by zero")
