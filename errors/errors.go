// Package errors defines the error kinds surfaced across the signer's
// public boundary: malformed input, out-of-range values, undefined
// arithmetic, and unsupported HTTP methods.
package errors

import "github.com/pkg/errors"

// Sentinel kinds. Callers distinguish them with errors.Is.
var (
	// ErrParse marks malformed hex input: wrong length, non-hex characters,
	// missing prefix where one is required.
	ErrParse = errors.New("malformed input")

	// ErrRange marks a scalar or coordinate outside its required canonical
	// range, e.g. not reduced mod p or mod the subgroup order L.
	ErrRange = errors.New("value out of canonical range")

	// ErrArithmetic marks an undefined field or group operation: inversion
	// of zero, or a secret scalar that is zero mod the subgroup order.
	ErrArithmetic = errors.New("arithmetic operation undefined")

	// ErrMethod marks an HTTP method outside {GET, POST, PUT, DELETE}.
	ErrMethod = errors.New("unsupported http method")
)

// Parsef wraps ErrParse with a formatted message.
func Parsef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, format, args...)
}

// Rangef wraps ErrRange with a formatted message.
func Rangef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrRange, format, args...)
}

// Arithmeticf wraps ErrArithmetic with a formatted message.
func Arithmeticf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrArithmetic, format, args...)
}

// Methodf wraps ErrMethod with a formatted message.
func Methodf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMethod, format, args...)
}
