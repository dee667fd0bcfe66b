// Package deinterleave rewrites glTF documents so that every accessor owns a
// tightly packed buffer view instead of sharing a strided, interleaved one.
//
// The conversion is a single pass: Load resolves the document and its buffers,
// ExtractAll copies each accessor's elements out of its source view, Repack
// gives every accessor its own view, and Combine plus Write produce the new
// document and the combined binary file beside it.
package deinterleave

import "errors"

// Conversion errors. Every error returned by this package wraps one of these.
var (
	ErrParse             = errors.New("malformed document")
	ErrUnsupportedBuffer = errors.New("unsupported buffer")
	ErrIO                = errors.New("i/o failure")
	ErrUnknownType       = errors.New("unknown accessor layout")
	ErrOutOfRange        = errors.New("byte range out of bounds")
)

// ErrorKind returns a short name for the conversion error class of err,
// or "Error" if err does not wrap any of them.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrUnsupportedBuffer):
		return "UnsupportedBufferError"
	case errors.Is(err, ErrIO):
		return "IOError"
	case errors.Is(err, ErrUnknownType):
		return "UnknownTypeError"
	case errors.Is(err, ErrOutOfRange):
		return "OutOfRangeError"
	default:
		return "Error"
	}
}
